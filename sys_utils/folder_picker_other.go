//go:build !windows

package sys_utils

// PickFolder 非 Windows 平台没有原生文件夹选择框
func PickFolder(owner uintptr, title string) (string, error) {
	return "", ErrUnsupported
}
