package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// NewStyledListContainer 创建一个统一风格的列表容器
// 包含粗体标题、边框和最小高度
func NewStyledListContainer(title string, list *widget.List, minHeight float32) *fyne.Container {
	// 禁止列表选中高亮
	list.OnSelected = func(id widget.ListItemID) {
		list.Unselect(id)
	}

	labelTitle := widget.NewLabel(title)
	labelTitle.TextStyle = fyne.TextStyle{Bold: true}

	rect := canvas.NewRectangle(color.Transparent)
	rect.SetMinSize(fyne.NewSize(0, minHeight))
	rect.StrokeWidth = 1
	rect.StrokeColor = theme.Color(theme.ColorNameDisabled)

	// 使用 Stack 叠加边框和列表
	return container.NewBorder(labelTitle, nil, nil, nil, container.NewStack(list, rect))
}
