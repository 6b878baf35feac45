package app

import (
	"fmt"

	"startup-manager/logging"
	"startup-manager/sys_utils"

	"go.uber.org/zap"
)

// Shell 系统右键菜单所需的原生操作，每个获取操作都有对应的释放操作
type Shell interface {
	EnterApartment() (func(), error)
	ParseDisplayName(path string) (uintptr, error)
	FreeIDList(pidl uintptr)
	BindToParent(pidl uintptr) (folder, child uintptr, err error)
	GetContextMenu(folder, child, owner uintptr) (uintptr, error)
	ReleaseObject(obj uintptr)
	CreatePopupMenu() (uintptr, error)
	DestroyMenu(hmenu uintptr)
	QueryContextMenu(menu, hmenu uintptr, first, last uint32) error
	TrackPopupMenu(hmenu uintptr, pt sys_utils.Point, owner uintptr) int
	InvokeCommand(menu uintptr, info sys_utils.InvokeCommandInfo) error
}

// releaseStack 按获取的逆序释放资源
type releaseStack []func()

func (s *releaseStack) push(f func()) { *s = append(*s, f) }

func (s *releaseStack) unwind() {
	for i := len(*s) - 1; i >= 0; i-- {
		(*s)[i]()
	}
	*s = nil
}

// ShowContextMenu 在 pt 处为 path 弹出资源管理器右键菜单，阻塞到菜单关闭
// invoked 表示用户选择了命令并已执行；解析、绑定、获取菜单失败时不弹出菜单
func ShowContextMenu(shell Shell, path string, pt sys_utils.Point, owner uintptr) (invoked bool, err error) {
	var rs releaseStack
	defer rs.unwind()

	leave, err := shell.EnterApartment()
	if err != nil {
		return false, fmt.Errorf("enter apartment: %w", err)
	}
	rs.push(leave)

	pidl, err := shell.ParseDisplayName(path)
	if err != nil {
		return false, fmt.Errorf("resolve %s: %w", path, err)
	}
	rs.push(func() { shell.FreeIDList(pidl) })

	folder, child, err := shell.BindToParent(pidl)
	if err != nil {
		return false, fmt.Errorf("bind %s: %w", path, err)
	}
	rs.push(func() { shell.ReleaseObject(folder) })

	menu, err := shell.GetContextMenu(folder, child, owner)
	if err != nil {
		return false, fmt.Errorf("context menu for %s: %w", path, err)
	}
	rs.push(func() { shell.ReleaseObject(menu) })

	hmenu, err := shell.CreatePopupMenu()
	if err != nil {
		return false, err
	}
	rs.push(func() { shell.DestroyMenu(hmenu) })

	// 填充失败时仍然弹出菜单，菜单可能为空，此时用户只能取消
	if err := shell.QueryContextMenu(menu, hmenu, sys_utils.MenuFirstCommand, sys_utils.MenuLastCommand); err != nil {
		logging.Warn("populate context menu failed", zap.String("path", path), zap.Error(err))
	}

	cmd := shell.TrackPopupMenu(hmenu, pt, owner)
	if cmd <= 0 {
		return false, nil
	}
	logging.Debug("context menu command", zap.String("path", path), zap.Int("cmd", cmd))
	err = shell.InvokeCommand(menu, sys_utils.InvokeCommandInfo{
		Verb:  cmd - int(sys_utils.MenuFirstCommand),
		Owner: owner,
		Show:  sys_utils.ShowNormal,
		Point: pt,
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
