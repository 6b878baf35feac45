package app

import (
	"path/filepath"
	"strings"

	"startup-manager/logging"

	"go.uber.org/zap"
)

// ResolveStartupFolder 配置中指定了目录时优先使用，否则取系统的启动文件夹
// 两者都拿不到时返回空串，扫描时按文件夹不存在处理
func ResolveStartupFolder(override string, system func() (string, error)) string {
	if v := strings.TrimSpace(override); v != "" {
		return filepath.Clean(v)
	}
	if system == nil {
		return ""
	}
	dir, err := system()
	if err != nil {
		logging.Warn("startup folder lookup failed", zap.Error(err))
		return ""
	}
	return dir
}
