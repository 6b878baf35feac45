//go:build !windows

package sys_utils

// NativeShell 在非 Windows 平台上不可用，所有获取操作都返回 ErrUnsupported
type NativeShell struct{}

func NewShell() *NativeShell { return &NativeShell{} }

func (s *NativeShell) EnterApartment() (func(), error) { return nil, ErrUnsupported }

func (s *NativeShell) ParseDisplayName(path string) (uintptr, error) { return 0, ErrUnsupported }

func (s *NativeShell) FreeIDList(pidl uintptr) {}

func (s *NativeShell) BindToParent(pidl uintptr) (uintptr, uintptr, error) {
	return 0, 0, ErrUnsupported
}

func (s *NativeShell) GetContextMenu(folder, child, owner uintptr) (uintptr, error) {
	return 0, ErrUnsupported
}

func (s *NativeShell) ReleaseObject(obj uintptr) {}

func (s *NativeShell) CreatePopupMenu() (uintptr, error) { return 0, ErrUnsupported }

func (s *NativeShell) DestroyMenu(hmenu uintptr) {}

func (s *NativeShell) QueryContextMenu(menu, hmenu uintptr, first, last uint32) error {
	return ErrUnsupported
}

func (s *NativeShell) TrackPopupMenu(hmenu uintptr, pt Point, owner uintptr) int { return 0 }

func (s *NativeShell) InvokeCommand(menu uintptr, info InvokeCommandInfo) error {
	return ErrUnsupported
}

func CursorPos() Point { return Point{} }
