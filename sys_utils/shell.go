package sys_utils

import "errors"

// ErrUnsupported 当前平台没有 Windows Shell 支持
var ErrUnsupported = errors.New("windows shell integration is not available on this platform")

// Point 屏幕坐标（像素）
type Point struct {
	X, Y int32
}

// ShowNormal 对应 SW_SHOWNORMAL
const ShowNormal int32 = 1

// 右键菜单命令编号范围，QueryContextMenu 使用 [MenuFirstCommand, MenuLastCommand]
const (
	MenuFirstCommand uint32 = 1
	MenuLastCommand  uint32 = 0x7FFF
)

// InvokeCommandInfo 执行右键菜单命令所需的参数
// Verb: 命令偏移（所选命令编号减去 MenuFirstCommand）；
// Directory: 为空表示默认工作目录；Show: 窗口显示方式
type InvokeCommandInfo struct {
	Verb      int
	Owner     uintptr
	Directory string
	Show      int32
	Point     Point
}
