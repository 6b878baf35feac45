package app

import (
	"context"
	"errors"
	"path/filepath"
	"sync"

	"startup-manager/constants"
	"startup-manager/logging"
	"startup-manager/sys_utils"
	"startup-manager/utils"

	"go.uber.org/zap"
)

// Notifier 向用户展示一次性的提示
type Notifier interface {
	Info(title, msg string)
	Warn(title, msg string)
	Error(title, msg string)
}

// Manager 持有启动文件夹路径与当前条目列表，以及各个协作组件
// 所有操作都是同步的，由界面线程调用
type Manager struct {
	Folder    string
	Writer    ShortcutWriter
	Icons     IconProvider
	Processes ProcessLister
	Notify    Notifier
	Shell     Shell

	// OnEntriesChanged 每次重新扫描后以完整列表回调
	OnEntriesChanged func([]StartupEntry)

	mu      sync.RWMutex
	entries []StartupEntry
}

// NewManager 创建管理器；writer、notify 不可为 nil
func NewManager(folder string, writer ShortcutWriter, notify Notifier) *Manager {
	return &Manager{
		Folder:    folder,
		Writer:    writer,
		Notify:    notify,
		Icons:     sys_utils.FileIcon,
		Processes: sys_utils.RunningExecutables,
		Shell:     sys_utils.NewShell(),
	}
}

// Entries 返回最近一次扫描的结果
func (m *Manager) Entries() []StartupEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.entries
}

// LinkPath 返回 src 对应的启动快捷方式路径
func (m *Manager) LinkPath(src string) string {
	return filepath.Join(m.Folder, utils.LinkName(src))
}

// AddToStartup 在启动文件夹中为 path 创建快捷方式并提示结果，不会重新扫描
func (m *Manager) AddToStartup(ctx context.Context, path string) error {
	link := m.LinkPath(path)
	err := m.Writer.WriteShortcut(ctx, link, path)
	if err != nil {
		logging.Error("create startup shortcut failed", zap.String("target", path), zap.String("link", link), zap.Error(err))
		msg := err.Error()
		if errors.Is(err, ErrTimeout) {
			msg = constants.MsgShortcutTimedOut
		}
		m.notifyError(msg)
		return err
	}
	logging.Info("startup shortcut created", zap.String("target", path), zap.String("link", link))
	if m.Notify != nil {
		m.Notify.Info(constants.TitleSuccess, constants.MsgShortcutAdded)
	}
	return nil
}

// HandleShortcut 解析已有快捷方式的目标并重新创建；解析不到目标时什么也不做
func (m *Manager) HandleShortcut(ctx context.Context, path string) error {
	target := ResolveShortcutTarget(path)
	if target == "" {
		logging.Debug("no target in shortcut, skipped", zap.String("path", path))
		return nil
	}
	return m.AddToStartup(ctx, target)
}

// Drop 处理拖入的一组文件，全部处理完后重新扫描一次
func (m *Manager) Drop(ctx context.Context, paths []string) {
	for _, p := range paths {
		if p == "" {
			continue
		}
		if utils.IsShortcut(p) {
			_ = m.HandleShortcut(ctx, p)
		} else {
			_ = m.AddToStartup(ctx, p)
		}
	}
	m.Reload()
}

// Reload 完整重新扫描启动文件夹并替换条目列表
// 文件夹不存在时给出一次警告并清空列表
func (m *Manager) Reload() []StartupEntry {
	entries, err := ScanStartupFolder(m.Folder, m.Icons, m.Processes)
	if err != nil {
		entries = nil
		if errors.Is(err, ErrFolderMissing) {
			logging.Warn("startup folder missing", zap.String("folder", m.Folder))
			if m.Notify != nil {
				m.Notify.Warn(constants.TitleWarning, constants.MsgFolderMissing)
			}
		} else {
			logging.Error("scan startup folder failed", zap.String("folder", m.Folder), zap.Error(err))
			m.notifyError(err.Error())
		}
	}

	m.mu.Lock()
	m.entries = entries
	m.mu.Unlock()

	if m.OnEntriesChanged != nil {
		m.OnEntriesChanged(entries)
	}
	return entries
}

// ShowContextMenu 为条目弹出系统右键菜单；失败只记录日志，不提示用户
func (m *Manager) ShowContextMenu(path string, pt sys_utils.Point, owner uintptr) {
	if m.Shell == nil {
		return
	}
	invoked, err := ShowContextMenu(m.Shell, path, pt, owner)
	if err != nil {
		logging.Warn("context menu aborted", zap.String("path", path), zap.Error(err))
		return
	}
	if invoked {
		logging.Info("context menu command invoked", zap.String("path", path))
	}
}

func (m *Manager) notifyError(msg string) {
	if m.Notify != nil {
		m.Notify.Error(constants.TitleError, msg)
	}
}
