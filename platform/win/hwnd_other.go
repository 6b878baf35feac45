//go:build !windows

package win

import "fyne.io/fyne/v2"

// WindowHandle 非 Windows 平台没有原生句柄
func WindowHandle(title string) uintptr { return 0 }

// StartHideOnMinimize 非 Windows 平台无法检测最小化，不做处理
func StartHideOnMinimize(myWindow fyne.Window, title string, enabled func() bool) {}
