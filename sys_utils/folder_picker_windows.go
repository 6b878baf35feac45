package sys_utils

import (
	"unsafe"

	"github.com/go-ole/go-ole"
	"golang.org/x/sys/windows"
)

type browseInfoW struct {
	HwndOwner      uintptr
	PidlRoot       uintptr
	PszDisplayName *uint16
	LpszTitle      *uint16
	UlFlags        uint32
	Lpfn           uintptr
	LParam         uintptr
	IImage         int32
}

// PickFolder 调用 Windows 原生 SHBrowseForFolder 弹出文件夹选择对话框；取消时返回空串
func PickFolder(owner uintptr, title string) (string, error) {
	leave, err := enterApartment()
	if err != nil {
		return "", err
	}
	defer leave()

	t, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return "", err
	}
	var bi browseInfoW
	bi.HwndOwner = owner
	bi.LpszTitle = t
	bi.UlFlags = 0x0040 | 0x0001 // BIF_NEWDIALOGSTYLE | BIF_RETURNONLYFSDIRS
	pidl, _, _ := procSHBrowseForFolderW.Call(uintptr(unsafe.Pointer(&bi)))
	if pidl == 0 {
		return "", nil
	}
	defer ole.CoTaskMemFree(pidl)

	buf := make([]uint16, windows.MAX_PATH)
	ok, _, _ := procSHGetPathFromIDListW.Call(pidl, uintptr(unsafe.Pointer(&buf[0])))
	if ok == 0 {
		return "", nil
	}
	return windows.UTF16ToString(buf), nil
}
