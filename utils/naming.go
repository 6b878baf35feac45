package utils

import (
	"path/filepath"
	"strings"
	"unicode"

	"startup-manager/constants"
)

// DisplayName 去掉路径，并从第一个点开始截掉全部扩展名：my.tool.exe -> my
// 拖入的路径可能是 Windows 风格，两种分隔符都按目录处理
func DisplayName(path string) string {
	base := path
	if i := strings.LastIndexAny(base, `/\`); i >= 0 {
		base = base[i+1:]
	}
	if i := strings.Index(base, "."); i >= 0 {
		base = base[:i]
	}
	return base
}

// LinkName 由源文件名生成启动快捷方式文件名：app.exe -> app.lnk
func LinkName(src string) string {
	return SanitizeFileName(DisplayName(src)) + constants.TextShortcutExt
}

// IsShortcut 判断路径是否为 .lnk 快捷方式（不区分大小写）
func IsShortcut(path string) bool {
	return strings.EqualFold(filepath.Ext(path), constants.TextShortcutExt)
}

// SanitizeFileName 去掉 Windows 文件名中的非法字符与控制字符，空格和点原样保留
func SanitizeFileName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch r {
		case '<', '>', ':', '\\', '/', '|', '?', '*', '"':
			continue
		}
		if r < 0x20 || (unicode.IsSpace(r) && r != ' ') {
			continue
		}
		b.WriteRune(r)
	}
	out := b.String()
	if strings.TrimSpace(out) == "" {
		return constants.TextUnknownName
	}
	return out
}
