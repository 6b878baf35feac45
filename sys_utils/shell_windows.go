package sys_utils

import (
	"errors"
	"path/filepath"
	"runtime"
	"unsafe"

	"github.com/go-ole/go-ole"
	"github.com/lxn/win"
	"golang.org/x/sys/windows"
)

var (
	iidIShellFolder = ole.NewGUID("{000214E6-0000-0000-C000-000000000046}")
	iidIContextMenu = ole.NewGUID("{000214E4-0000-0000-C000-000000000046}")
)

// 虚表序号（含 IUnknown 的三个方法）
const (
	vtblShellFolderGetUIObjectOf    = 10
	vtblContextMenuQueryContextMenu = 3
	vtblContextMenuInvokeCommand    = 4
)

const (
	cmfNormal        = 0x00000000
	cmicMaskUnicode  = 0x00004000
	cmicMaskPtInvoke = 0x20000000
)

// cmInvokeCommandInfoEx 对应 CMINVOKECOMMANDINFOEX
type cmInvokeCommandInfoEx struct {
	cbSize        uint32
	fMask         uint32
	hwnd          uintptr
	lpVerb        uintptr
	lpParameters  uintptr
	lpDirectory   uintptr
	nShow         int32
	dwHotKey      uint32
	hIcon         uintptr
	lpTitle       uintptr
	lpVerbW       uintptr
	lpParametersW uintptr
	lpDirectoryW  uintptr
	lpTitleW      uintptr
	ptInvoke      win.POINT
}

// NativeShell 通过 shell32 / IShellFolder / IContextMenu 实现资源管理器右键菜单
// 每个方法只做一次原生调用，获取到的句柄由调用方负责释放
type NativeShell struct{}

func NewShell() *NativeShell { return &NativeShell{} }

// EnterApartment 进入 COM 套间，返回值用于退出
func (s *NativeShell) EnterApartment() (func(), error) {
	return enterApartment()
}

// ParseDisplayName 将文件路径解析为绝对 PIDL，需用 FreeIDList 释放
func (s *NativeShell) ParseDisplayName(path string) (uintptr, error) {
	p, err := windows.UTF16PtrFromString(filepath.FromSlash(path))
	if err != nil {
		return 0, err
	}
	var pidl uintptr
	hr, _, _ := procSHParseDisplayName.Call(
		uintptr(unsafe.Pointer(p)),
		0,
		uintptr(unsafe.Pointer(&pidl)),
		0,
		0,
	)
	if failed(hr) {
		return 0, hrError("SHParseDisplayName", hr)
	}
	if pidl == 0 {
		return 0, errors.New("SHParseDisplayName: empty item id list")
	}
	return pidl, nil
}

func (s *NativeShell) FreeIDList(pidl uintptr) {
	if pidl != 0 {
		ole.CoTaskMemFree(pidl)
	}
}

// BindToParent 返回父文件夹的 IShellFolder 以及相对的子 PIDL
// 子 PIDL 指向 pidl 内部，不单独释放
func (s *NativeShell) BindToParent(pidl uintptr) (uintptr, uintptr, error) {
	var folder, child uintptr
	hr, _, _ := procSHBindToParent.Call(
		pidl,
		uintptr(unsafe.Pointer(iidIShellFolder)),
		uintptr(unsafe.Pointer(&folder)),
		uintptr(unsafe.Pointer(&child)),
	)
	if failed(hr) {
		return 0, 0, hrError("SHBindToParent", hr)
	}
	if folder == 0 {
		return 0, 0, errors.New("SHBindToParent: no folder interface")
	}
	return folder, child, nil
}

// GetContextMenu 通过 IShellFolder::GetUIObjectOf 获取子项的 IContextMenu
func (s *NativeShell) GetContextMenu(folder, child, owner uintptr) (uintptr, error) {
	children := [1]uintptr{child}
	var menu uintptr
	hr := comCall(folder, vtblShellFolderGetUIObjectOf,
		owner,
		1,
		uintptr(unsafe.Pointer(&children[0])),
		uintptr(unsafe.Pointer(iidIContextMenu)),
		0,
		uintptr(unsafe.Pointer(&menu)),
	)
	runtime.KeepAlive(children)
	if failed(hr) {
		return 0, hrError("IShellFolder::GetUIObjectOf", hr)
	}
	if menu == 0 {
		return 0, errors.New("IShellFolder::GetUIObjectOf: no context menu")
	}
	return menu, nil
}

// ReleaseObject 释放一个 COM 接口引用
func (s *NativeShell) ReleaseObject(obj uintptr) {
	if obj != 0 {
		(*ole.IUnknown)(unsafe.Pointer(obj)).Release()
	}
}

func (s *NativeShell) CreatePopupMenu() (uintptr, error) {
	h := win.CreatePopupMenu()
	if h == 0 {
		return 0, errors.New("CreatePopupMenu failed")
	}
	return uintptr(h), nil
}

func (s *NativeShell) DestroyMenu(hmenu uintptr) {
	if hmenu != 0 {
		win.DestroyMenu(win.HMENU(hmenu))
	}
}

// QueryContextMenu 让 IContextMenu 向弹出菜单填充标准命令（非扩展集合）
func (s *NativeShell) QueryContextMenu(menu, hmenu uintptr, first, last uint32) error {
	hr := comCall(menu, vtblContextMenuQueryContextMenu,
		hmenu,
		0,
		uintptr(first),
		uintptr(last),
		cmfNormal,
	)
	if failed(hr) {
		return hrError("IContextMenu::QueryContextMenu", hr)
	}
	return nil
}

// TrackPopupMenu 在 pt 处显示菜单并阻塞到用户选择或取消，返回命令编号（0 表示取消）
func (s *NativeShell) TrackPopupMenu(hmenu uintptr, pt Point, owner uintptr) int {
	if owner != 0 {
		// 菜单所有者需处于前台，否则点击别处时菜单不会关闭
		win.SetForegroundWindow(win.HWND(owner))
	}
	cmd := win.TrackPopupMenuEx(win.HMENU(hmenu), win.TPM_RETURNCMD|win.TPM_RIGHTBUTTON, pt.X, pt.Y, win.HWND(owner), nil)
	return int(cmd)
}

// InvokeCommand 以命令偏移作为 verb 调用 IContextMenu::InvokeCommand
func (s *NativeShell) InvokeCommand(menu uintptr, info InvokeCommandInfo) error {
	ci := cmInvokeCommandInfoEx{
		fMask:   cmicMaskUnicode,
		hwnd:    info.Owner,
		lpVerb:  uintptr(info.Verb),
		lpVerbW: uintptr(info.Verb),
		nShow:   info.Show,
	}
	ci.cbSize = uint32(unsafe.Sizeof(ci))

	var dirA *byte
	var dirW *uint16
	if info.Directory != "" {
		var err error
		if dirA, err = windows.BytePtrFromString(info.Directory); err != nil {
			return err
		}
		if dirW, err = windows.UTF16PtrFromString(info.Directory); err != nil {
			return err
		}
		ci.lpDirectory = uintptr(unsafe.Pointer(dirA))
		ci.lpDirectoryW = uintptr(unsafe.Pointer(dirW))
	}
	if info.Point != (Point{}) {
		ci.fMask |= cmicMaskPtInvoke
		ci.ptInvoke = win.POINT{X: info.Point.X, Y: info.Point.Y}
	}

	hr := comCall(menu, vtblContextMenuInvokeCommand, uintptr(unsafe.Pointer(&ci)))
	runtime.KeepAlive(dirA)
	runtime.KeepAlive(dirW)
	if failed(hr) {
		return hrError("IContextMenu::InvokeCommand", hr)
	}
	return nil
}

// CursorPos 返回当前鼠标的屏幕坐标
func CursorPos() Point {
	var pt win.POINT
	if !win.GetCursorPos(&pt) {
		return Point{}
	}
	return Point{X: pt.X, Y: pt.Y}
}
