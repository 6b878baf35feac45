package sys_utils

import (
	"errors"
	"fmt"
	"runtime"
	"syscall"
	"unsafe"

	"github.com/go-ole/go-ole"
	"golang.org/x/sys/windows"
)

var (
	modShell32 = windows.NewLazySystemDLL("shell32.dll")

	procSHParseDisplayName   = modShell32.NewProc("SHParseDisplayName")
	procSHBindToParent       = modShell32.NewProc("SHBindToParent")
	procSHBrowseForFolderW   = modShell32.NewProc("SHBrowseForFolderW")
	procSHGetPathFromIDListW = modShell32.NewProc("SHGetPathFromIDListW")
)

const (
	hrSFalse        = 0x00000001
	rpcEChangedMode = 0x80010106
)

// enterApartment 锁定当前 OS 线程并进入 STA 套间，返回的函数负责退出
// 线程已初始化（S_FALSE）同样需要配对 CoUninitialize；已是 MTA 时沿用现状
func enterApartment() (func(), error) {
	runtime.LockOSThread()
	err := ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED|ole.COINIT_SPEED_OVER_MEMORY)
	if err == nil {
		return leaveApartment, nil
	}
	var oleErr *ole.OleError
	if errors.As(err, &oleErr) {
		switch uint32(oleErr.Code()) {
		case hrSFalse:
			return leaveApartment, nil
		case rpcEChangedMode:
			return runtime.UnlockOSThread, nil
		}
	}
	runtime.UnlockOSThread()
	return nil, fmt.Errorf("CoInitializeEx: %w", err)
}

func leaveApartment() {
	ole.CoUninitialize()
	runtime.UnlockOSThread()
}

// comCall 按虚表序号调用 COM 方法，obj 作为 this 传入
func comCall(obj uintptr, index int, args ...uintptr) uintptr {
	vtbl := *(*uintptr)(unsafe.Pointer(obj))
	fn := *(*uintptr)(unsafe.Pointer(vtbl + uintptr(index)*unsafe.Sizeof(uintptr(0))))
	ret, _, _ := syscall.SyscallN(fn, append([]uintptr{obj}, args...)...)
	return ret
}

func failed(hr uintptr) bool { return int32(uint32(hr)) < 0 }

func hrError(op string, hr uintptr) error {
	return fmt.Errorf("%s: %w", op, ole.NewError(hr))
}
