package gui

import (
	"fyne.io/fyne/v2"
	fynetooltip "github.com/dweymouth/fyne-tooltip"
)

var currentPopup fyne.Window

// NewSingletonWindow 创建一个单例窗口，会自动关闭之前创建的窗口
// content 外包一层 Tooltip 图层，窗口关闭时一并销毁
func NewSingletonWindow(title string, content fyne.CanvasObject, size fyne.Size) fyne.Window {
	if currentPopup != nil {
		currentPopup.Close()
		currentPopup = nil
	}
	w := fyne.CurrentApp().NewWindow(title)
	currentPopup = w
	w.SetContent(fynetooltip.AddWindowToolTipLayer(content, w.Canvas()))
	w.Resize(size)
	w.SetOnClosed(func() {
		fynetooltip.DestroyWindowToolTipLayer(w.Canvas())
		if currentPopup == w {
			currentPopup = nil
		}
	})
	return w
}
