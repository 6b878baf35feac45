package app

import (
	"os"

	"startup-manager/logging"
	"startup-manager/utils"

	"go.uber.org/zap"
)

// targetKey 快捷方式文本中目标路径的标记
const targetKey = "Target"

// ResolveShortcutTarget 以文本方式读取快捷方式，返回第一处 Target= 的值
// 只是启发式匹配，.lnk 格式并不保证包含此标记；读取失败或找不到时返回空串
func ResolveShortcutTarget(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		logging.Debug("read shortcut failed", zap.String("path", path), zap.Error(err))
		return ""
	}
	return utils.ExtractValue(string(data), targetKey)
}
