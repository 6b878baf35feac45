package gui

import (
	"image/color"

	appctrl "startup-manager/app"
	"startup-manager/constants"
	"startup-manager/utils"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"
)

// EntryRow 列表中的一行：图标、名称、运行标记，悬停显示快捷方式路径
// 右键交给 OnSecondary 弹出系统菜单
type EntryRow struct {
	ttwidget.ToolTipWidget
	icon   *canvas.Image
	name   *widget.Label
	marker *canvas.Text
	path   string

	OnSecondary func(path string)
}

// NewEntryRow 创建一个空行，由列表的 UpdateItem 填充内容
func NewEntryRow() *EntryRow {
	r := &EntryRow{}
	r.icon = canvas.NewImageFromResource(theme.FileIcon())
	r.icon.FillMode = canvas.ImageFillContain
	r.icon.SetMinSize(fyne.NewSize(utils.IconSize, utils.IconSize))
	r.name = widget.NewLabel("")
	r.name.Truncation = fyne.TextTruncateEllipsis
	r.marker = canvas.NewText("", color.NRGBA{R: 120, G: 220, B: 120, A: 255})
	r.marker.TextSize = theme.Size(theme.SizeNameCaptionText)
	r.ExtendBaseWidget(r)
	return r
}

func (r *EntryRow) CreateRenderer() fyne.WidgetRenderer {
	right := container.NewCenter(r.marker)
	return widget.NewSimpleRenderer(container.NewBorder(nil, nil, r.icon, right, r.name))
}

// SetEntry 用扫描结果刷新这一行
func (r *EntryRow) SetEntry(e appctrl.StartupEntry) {
	r.path = e.Path
	if e.Icon != nil {
		r.icon.Resource = nil
		r.icon.Image = e.Icon
	} else {
		r.icon.Image = nil
		r.icon.Resource = theme.FileIcon()
	}
	r.icon.Refresh()
	r.name.SetText(e.Name)
	if e.Running {
		r.marker.Text = constants.TextRunningMarker
	} else {
		r.marker.Text = ""
	}
	r.marker.Refresh()
	r.SetToolTip(e.Path)
}

func (r *EntryRow) TappedSecondary(_ *fyne.PointEvent) {
	if r.path != "" && r.OnSecondary != nil {
		r.OnSecondary(r.path)
	}
}
