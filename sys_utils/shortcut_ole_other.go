//go:build !windows

package sys_utils

// CreateShortcutOLE 需要 WScript.Shell，非 Windows 平台不可用
func CreateShortcutOLE(linkPath, target string) error {
	return ErrUnsupported
}
