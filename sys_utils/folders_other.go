//go:build !windows

package sys_utils

// StartupFolder 非 Windows 平台没有“启动”文件夹，需通过配置指定
func StartupFolder() (string, error) {
	return "", ErrUnsupported
}
