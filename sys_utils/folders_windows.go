package sys_utils

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/windows"
)

// StartupFolder 返回当前用户的“启动”文件夹（FOLDERID_Startup）
// 查询失败时回退到 %APPDATA% 下的默认位置；不会创建该目录
func StartupFolder() (string, error) {
	p, err := windows.KnownFolderPath(windows.FOLDERID_Startup, 0)
	if err == nil && p != "" {
		return p, nil
	}
	if appdata := os.Getenv("APPDATA"); appdata != "" {
		return filepath.Join(appdata, "Microsoft", "Windows", "Start Menu", "Programs", "Startup"), nil
	}
	return "", fmt.Errorf("locating startup folder: %w", err)
}
