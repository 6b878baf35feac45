//go:build !windows

package sys_utils

import "image"

// FileIcon 非 Windows 平台不提供系统图标，界面使用通用文件图标
func FileIcon(path string) (image.Image, error) {
	return nil, ErrUnsupported
}
