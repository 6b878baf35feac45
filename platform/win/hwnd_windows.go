package win

import (
	"sync/atomic"
	"syscall"
	"time"

	"startup-manager/logging"

	"fyne.io/fyne/v2"
	"github.com/lxn/win"
)

// WindowHandle 按标题查找顶层窗口句柄，找不到返回 0
func WindowHandle(title string) uintptr {
	ptr, err := syscall.UTF16PtrFromString(title)
	if err != nil {
		return 0
	}
	return uintptr(win.FindWindow(nil, ptr))
}

var hideLoopStarted atomic.Bool

// StartHideOnMinimize 监听主窗口最小化并自动隐藏到托盘
// 使用轮询方式获取窗口句柄并检查最小化状态；enabled 每轮读取，可随时开关
func StartHideOnMinimize(myWindow fyne.Window, title string, enabled func() bool) {
	if !hideLoopStarted.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer logging.RecoverPanic("hideOnMinimizeLoop")
		for {
			// 轮询刷新句柄，防止窗口重建导致句柄变化
			hwnd := win.HWND(WindowHandle(title))
			if hwnd == 0 || !minimizeGate.Open() || (enabled != nil && !enabled()) {
				time.Sleep(300 * time.Millisecond)
				continue
			}
			if win.IsIconic(hwnd) {
				fyne.Do(func() { myWindow.Hide() })
				time.Sleep(500 * time.Millisecond)
			} else {
				time.Sleep(300 * time.Millisecond)
			}
		}
	}()
}
