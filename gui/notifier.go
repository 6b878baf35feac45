package gui

import (
	"errors"

	"startup-manager/config"
	"startup-manager/constants"
	"startup-manager/logging"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"github.com/gen2brain/beeep"
	"go.uber.org/zap"
)

// dialogNotifier 用模态对话框提示用户；开启 toast 时成功提示改为系统通知
type dialogNotifier struct {
	win fyne.Window
}

func newDialogNotifier(w fyne.Window) *dialogNotifier {
	beeep.AppName = constants.TextAppTitle
	return &dialogNotifier{win: w}
}

func (n *dialogNotifier) Info(title, msg string) {
	if config.GetToastEnabled() {
		err := beeep.Notify(title, msg, "")
		if err == nil {
			return
		}
		logging.Debug("toast failed, falling back to dialog", zap.Error(err))
	}
	dialog.ShowInformation(title, msg, n.win)
}

func (n *dialogNotifier) Warn(title, msg string) {
	dialog.ShowInformation(title, msg, n.win)
}

// Error 对话框标题固定为 Error，直接显示原始错误文本
func (n *dialogNotifier) Error(_ string, msg string) {
	dialog.NewError(errors.New(msg), n.win).Show()
}
