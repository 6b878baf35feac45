package app

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"startup-manager/logging"
	"startup-manager/utils"

	"go.uber.org/zap"
)

// ErrFolderMissing 启动文件夹不存在
var ErrFolderMissing = errors.New("startup folder does not exist")

// StartupEntry 列表中的一行
// Path 是快捷方式文件本身的绝对路径；Icon 为 nil 时界面显示通用文件图标
type StartupEntry struct {
	Name    string
	Path    string
	Icon    image.Image
	Running bool
}

// IconProvider 返回文件的系统图标
type IconProvider func(path string) (image.Image, error)

// ProcessLister 返回正在运行的进程名集合（小写）
type ProcessLister func() (map[string]struct{}, error)

// ScanStartupFolder 非递归枚举 dir 下的 .lnk 文件，按文件系统返回顺序生成条目
// icons、procs 可为 nil
func ScanStartupFolder(dir string, icons IconProvider, procs ProcessLister) ([]StartupEntry, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, ErrFolderMissing
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve startup folder: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrFolderMissing
		}
		return nil, fmt.Errorf("stat startup folder: %w", err)
	}
	if !info.IsDir() {
		return nil, ErrFolderMissing
	}

	f, err := os.Open(abs)
	if err != nil {
		return nil, fmt.Errorf("open startup folder: %w", err)
	}
	defer f.Close()
	// os.ReadDir 会按名称排序，这里保持目录的原始枚举顺序
	des, err := f.ReadDir(0)
	des, err = keepPartial(abs, des, err)
	if err != nil {
		return nil, err
	}

	running := runningSet(procs)
	entries := make([]StartupEntry, 0, len(des))
	for _, de := range des {
		if !utils.IsShortcut(de.Name()) {
			continue
		}
		p := filepath.Join(abs, de.Name())
		if !isFile(de, p) {
			continue
		}
		name := utils.DisplayName(p)
		e := StartupEntry{
			Name: name,
			Path: p,
			Icon: loadIcon(icons, p),
		}
		if running != nil {
			_, e.Running = running[strings.ToLower(name)+".exe"]
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// keepPartial 目录读到一半出错时保留已读到的条目，只记录警告
func keepPartial(dir string, des []fs.DirEntry, err error) ([]fs.DirEntry, error) {
	if err == nil {
		return des, nil
	}
	if len(des) == 0 {
		return nil, fmt.Errorf("read startup folder: %w", err)
	}
	logging.Warn("startup folder listing incomplete", zap.String("folder", dir), zap.Int("entries", len(des)), zap.Error(err))
	return des, nil
}

// isFile 普通文件或指向文件的符号链接
func isFile(de fs.DirEntry, path string) bool {
	if de.Type()&fs.ModeSymlink != 0 {
		fi, err := os.Stat(path)
		return err == nil && !fi.IsDir()
	}
	return !de.IsDir()
}

func loadIcon(icons IconProvider, path string) image.Image {
	if icons == nil {
		return nil
	}
	img, err := icons(path)
	if err != nil || img == nil {
		return nil
	}
	scaled := utils.ScaleIcon(img, utils.IconSize)
	if utils.IsBlank(scaled) {
		return nil
	}
	return scaled
}

func runningSet(procs ProcessLister) map[string]struct{} {
	if procs == nil {
		return nil
	}
	set, err := procs()
	if err != nil {
		logging.Debug("list processes failed", zap.Error(err))
		return nil
	}
	return set
}
