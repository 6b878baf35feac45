package gui

import (
	"errors"
	"strings"

	"startup-manager/config"
	"startup-manager/constants"
	"startup-manager/logging"
	platformwin "startup-manager/platform/win"
	"startup-manager/sys_utils"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"
)

// showSettings 打开设置窗口，保存后调用 onSaved
func showSettings(onSaved func()) {
	sc := config.GetShortcut()

	entryDir := widget.NewEntry()
	entryDir.SetText(config.GetStartupDir())
	if p, err := sys_utils.StartupFolder(); err == nil {
		entryDir.SetPlaceHolder(p)
	}
	entryDirWrap := container.NewGridWrap(fyne.NewSize(360, entryDir.MinSize().Height), entryDir)

	var w fyne.Window
	chooseBtn := widget.NewButton(constants.TextChoose, func() {
		p, err := sys_utils.PickFolder(platformwin.WindowHandle(constants.TextSettingsTitle), constants.TextStartupDirTitle)
		if errors.Is(err, sys_utils.ErrUnsupported) {
			dialog.ShowFolderOpen(func(u fyne.ListableURI, err error) {
				if err == nil && u != nil {
					entryDir.SetText(u.Path())
				}
			}, w)
			return
		}
		if err != nil {
			logging.Warn("pick folder failed", zap.Error(err))
			return
		}
		if strings.TrimSpace(p) != "" {
			entryDir.SetText(p)
		}
	})
	resetBtn := widget.NewButton(constants.TextResetDefault, func() { entryDir.SetText("") })

	selectBackend := widget.NewSelect([]string{config.BackendPowerShell, config.BackendOLE}, nil)
	selectBackend.SetSelected(sc.Backend)
	entryTimeout := widget.NewEntry()
	entryTimeout.SetText(sc.Timeout.String())

	toggleToast := widget.NewCheck(constants.TextToastTitle, nil)
	toggleToast.SetChecked(config.GetToastEnabled())
	toggleTray := widget.NewCheck(constants.TextMinimizeToTray, nil)
	toggleTray.SetChecked(config.GetWindow().MinimizeToTray)

	save := widget.NewButton(constants.TextSave, func() {
		timeout, err := config.ParseDuration(entryTimeout.Text)
		if err != nil {
			dialog.ShowInformation(constants.TitleError, constants.MsgInvalidTimeout, w)
			return
		}
		sc.Backend = selectBackend.Selected
		sc.Timeout = timeout
		config.SetShortcut(sc)
		config.SetStartupDir(strings.TrimSpace(entryDir.Text))
		config.SetToastEnabled(toggleToast.Checked)
		config.SetMinimizeToTray(toggleTray.Checked)
		logging.Info("settings saved", zap.String("backend", sc.Backend), zap.Duration("timeout", timeout.Duration))
		w.Close()
		if onSaved != nil {
			onSaved()
		}
	})
	cancel := widget.NewButton(constants.TextCancel, func() { w.Close() })

	form := container.NewVBox(
		widget.NewLabel(constants.TextStartupDirTitle),
		container.NewHBox(entryDirWrap, chooseBtn, resetBtn),
		widget.NewLabel(constants.TextBackendTitle),
		selectBackend,
		widget.NewLabel(constants.TextTimeoutTitle),
		entryTimeout,
		toggleToast,
		toggleTray,
		container.NewHBox(save, cancel),
	)
	w = NewSingletonWindow(constants.TextSettingsTitle, container.NewPadded(form), fyne.NewSize(560, 420))
	w.Show()
}
