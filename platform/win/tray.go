package win

import (
	"startup-manager/constants"

	"fyne.io/systray"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	fynetooltip "github.com/dweymouth/fyne-tooltip"
)

// SetupSystemTray 初始化系统托盘菜单（显示/打开启动文件夹/退出）并绑定操作
func SetupSystemTray(myApp fyne.App, myWindow fyne.Window, openFolder func()) {
	if d, ok := myApp.(desktop.App); ok {
		// 显示：短暂抑制隐藏，避免立即被最小化逻辑隐藏
		showItem := fyne.NewMenuItem(constants.TextTrayShow, func() {
			minimizeGate.Hold(showGrace)
			myWindow.Show()
			myWindow.RequestFocus()
		})
		folderItem := fyne.NewMenuItem(constants.TextTrayOpenFolder, func() {
			if openFolder != nil {
				openFolder()
			}
		})
		// 退出：清理 Tooltip 图层并退出应用
		exitItem := fyne.NewMenuItem(constants.TextTrayExit, func() {
			fynetooltip.DestroyWindowToolTipLayer(myWindow.Canvas())
			fyne.CurrentApp().Quit()
		})
		d.SetSystemTrayMenu(fyne.NewMenu(constants.TextAppTitle, showItem, folderItem, exitItem))
		d.SetSystemTrayIcon(GetTrayIconResource())
		systray.SetTitle(constants.TextAppTitle)
		systray.SetTooltip(constants.TextAppTitle)
	}
}

// GetTrayIconResource 返回托盘/窗口图标资源
func GetTrayIconResource() fyne.Resource {
	return theme.FileApplicationIcon()
}
