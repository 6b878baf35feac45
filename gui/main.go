package gui

import (
	"context"
	"net/url"
	"path/filepath"

	appctrl "startup-manager/app"
	"startup-manager/config"
	"startup-manager/constants"
	"startup-manager/logging"
	platformwin "startup-manager/platform/win"
	"startup-manager/sys_utils"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	fynetooltip "github.com/dweymouth/fyne-tooltip"
	"go.uber.org/zap"
)

// Run 启动应用程序主界面与业务逻辑
func Run() {
	defer logging.RecoverPanic("gui.Run")
	if err := config.Init(); err != nil {
		// 配置损坏时沿用默认值继续运行
		logging.Warn("config load failed", zap.Error(err))
	}
	if err := logging.Init(config.Dir()); err == nil {
		logging.SetLevel(config.GetLogLevel())
	}
	defer logging.Close()
	logging.Info("config loaded", zap.String("path", config.Path()))

	myApp := app.New()
	myApp.Settings().SetTheme(&customTheme{})
	myApp.SetIcon(platformwin.GetTrayIconResource())
	myWindow := myApp.NewWindow(constants.TextAppTitle)

	folder := appctrl.ResolveStartupFolder(config.GetStartupDir(), sys_utils.StartupFolder)
	mgr := appctrl.NewManager(folder, appctrl.NewWriter(config.GetShortcut()), newDialogNotifier(myWindow))
	logging.Info("startup folder", zap.String("folder", folder))

	var entries []appctrl.StartupEntry
	list := widget.NewList(
		func() int { return len(entries) },
		func() fyne.CanvasObject { return NewEntryRow() },
		func(id widget.ListItemID, o fyne.CanvasObject) {
			if id < 0 || id >= len(entries) {
				return
			}
			row := o.(*EntryRow)
			row.SetEntry(entries[id])
			row.OnSecondary = func(path string) {
				owner := platformwin.WindowHandle(constants.TextAppTitle)
				mgr.ShowContextMenu(path, sys_utils.CursorPos(), owner)
			}
		},
	)
	mgr.OnEntriesChanged = func(e []appctrl.StartupEntry) {
		entries = e
		list.Refresh()
	}

	// 拖入文件：同步创建快捷方式后整体重新扫描
	myWindow.SetOnDropped(func(_ fyne.Position, uris []fyne.URI) {
		paths := make([]string, 0, len(uris))
		for _, u := range uris {
			if u == nil || u.Scheme() != "file" {
				continue
			}
			paths = append(paths, filepath.FromSlash(u.Path()))
		}
		if len(paths) == 0 {
			return
		}
		logging.Info("files dropped", zap.Strings("paths", paths))
		mgr.Drop(context.Background(), paths)
	})

	openFolder := func() {
		if err := sys_utils.OpenFolder(mgr.Folder); err != nil {
			logging.Warn("open startup folder failed", zap.String("folder", mgr.Folder), zap.Error(err))
		}
	}

	hint := widget.NewLabel(constants.TextDropHint)
	hint.Alignment = fyne.TextAlignCenter
	hint.Wrapping = fyne.TextWrapWord

	refreshBtn := widget.NewButton(constants.TextRefresh, func() { mgr.Reload() })
	openFolderBtn := widget.NewButton(constants.TextOpenStartupFolder, openFolder)
	settingsBtn := widget.NewButton(constants.TextSettings, func() {
		showSettings(func() {
			// 设置变更后重建快捷方式写入器与启动文件夹
			mgr.Writer = appctrl.NewWriter(config.GetShortcut())
			mgr.Folder = appctrl.ResolveStartupFolder(config.GetStartupDir(), sys_utils.StartupFolder)
			mgr.Reload()
		})
	})
	aboutBtn := widget.NewButton(constants.TextAbout, showAbout)

	actionsTop := container.NewGridWithColumns(2, refreshBtn, openFolderBtn)
	actionsBottom := container.NewGridWithColumns(2, settingsBtn, aboutBtn)
	content := container.NewBorder(
		hint,
		container.NewVBox(actionsTop, actionsBottom),
		nil, nil,
		NewStyledListContainer(constants.TextEntriesHeader, list, 240),
	)

	wrapped := fynetooltip.AddWindowToolTipLayer(container.NewPadded(content), myWindow.Canvas())
	myWindow.SetContent(wrapped)
	size := config.GetWindow()
	myWindow.Resize(fyne.NewSize(size.Width, size.Height))
	platformwin.SetupSystemTray(myApp, myWindow, openFolder)
	myWindow.SetCloseIntercept(myWindow.Hide)
	platformwin.StartHideOnMinimize(myWindow, constants.TextAppTitle, func() bool {
		return config.GetWindow().MinimizeToTray
	})
	myWindow.SetOnClosed(func() {
		fynetooltip.DestroyWindowToolTipLayer(myWindow.Canvas())
	})

	mgr.Reload()
	myWindow.ShowAndRun()
}

// showAbout 显示版本与说明
func showAbout() {
	l1 := widget.NewLabel(constants.TextVersion)
	l2 := widget.NewLabel(constants.TextAboutBody)
	l2.Wrapping = fyne.TextWrapWord
	logDir, _ := url.Parse("file:///" + filepath.ToSlash(logging.GetLogDir()))
	rowLogs := widget.NewRichText(&widget.TextSegment{Text: "Logs: "}, &widget.HyperlinkSegment{Text: logging.GetLogDir(), URL: logDir})
	form := container.NewVBox(l1, l2, rowLogs)
	w := NewSingletonWindow(constants.TextAbout, container.NewPadded(form), fyne.NewSize(460, 220))
	w.Show()
}
