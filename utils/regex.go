package utils

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// ExtractValue 在文本中查找第一处 key=value，返回去除首尾空白的 value
// value 取到行尾为止；找不到或 key 为空时返回空串
func ExtractValue(content, key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}
	re, err := regexp2.Compile(regexp2.Escape(key)+`=([^\r\n]*)`, regexp2.None)
	if err != nil {
		return ""
	}
	m, err := re.FindStringMatch(content)
	if err != nil || m == nil {
		return ""
	}
	gps := m.Groups()
	if len(gps) < 2 {
		return ""
	}
	return strings.TrimSpace(gps[1].String())
}
