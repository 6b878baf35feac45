package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"startup-manager/config"
	"startup-manager/logging"
	"startup-manager/sys_utils"

	"go.uber.org/zap"
)

// ShortcutWriter 在 linkPath 处创建指向 target 的快捷方式，已存在则覆盖
type ShortcutWriter interface {
	WriteShortcut(ctx context.Context, linkPath, target string) error
}

// 传给 PowerShell 脚本的环境变量名
const (
	envLinkPath = "STARTUP_MANAGER_LINK"
	envTarget   = "STARTUP_MANAGER_TARGET"
)

// 路径通过环境变量传入，脚本本身保持固定
const createShortcutScript = `$ErrorActionPreference = 'Stop'
$shell = New-Object -ComObject WScript.Shell
$link = $shell.CreateShortcut($env:STARTUP_MANAGER_LINK)
$link.TargetPath = $env:STARTUP_MANAGER_TARGET
$link.Save()`

// killGrace 超时杀掉进程后等待输出管道关闭的上限
const killGrace = 2 * time.Second

// ErrTimeout 快捷方式创建超过配置的超时时间
var ErrTimeout = errors.New("shortcut creation timed out")

// AutomationError 自动化进程以非零状态退出，Stderr 为其原始错误输出
type AutomationError struct {
	ExitCode int
	Stderr   string
}

func (e *AutomationError) Error() string {
	if e.Stderr != "" {
		return e.Stderr
	}
	return fmt.Sprintf("automation process exited with status %d", e.ExitCode)
}

// PowerShellWriter 调用 powershell 执行 WScript.Shell 脚本创建快捷方式
// Timeout 为 0 时无限等待
type PowerShellWriter struct {
	Program string
	Timeout time.Duration

	command func(ctx context.Context, name string, args ...string) *exec.Cmd
}

func NewPowerShellWriter(program string, timeout time.Duration) *PowerShellWriter {
	if program == "" {
		program = config.DefaultPowerShell
	}
	return &PowerShellWriter{Program: program, Timeout: timeout, command: exec.CommandContext}
}

func (w *PowerShellWriter) WriteShortcut(ctx context.Context, linkPath, target string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if w.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.Timeout)
		defer cancel()
	}
	newCmd := w.command
	if newCmd == nil {
		newCmd = exec.CommandContext
	}
	cmd := newCmd(ctx, w.Program, "-NoProfile", "-NonInteractive", "-Command", createShortcutScript)
	if w.Timeout > 0 {
		// 子进程可能继承 stderr，不设上限时 Run 会一直等到它退出
		cmd.WaitDelay = killGrace
	}
	if cmd.Env == nil {
		cmd.Env = os.Environ()
	}
	cmd.Env = append(cmd.Env, envLinkPath+"="+linkPath, envTarget+"="+target)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	logging.Debug("create shortcut", zap.String("link", linkPath), zap.String("target", target), zap.String("program", w.Program))
	err := cmd.Run()
	if err == nil {
		return nil
	}
	if ctx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("%w after %s", ErrTimeout, w.Timeout)
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = exitErr.Error()
		}
		return &AutomationError{ExitCode: exitErr.ExitCode(), Stderr: msg}
	}
	return fmt.Errorf("run %s: %w", w.Program, err)
}

// OLEWriter 在进程内通过 go-ole 调用 WScript.Shell
type OLEWriter struct {
	create func(linkPath, target string) error
}

func NewOLEWriter() *OLEWriter {
	return &OLEWriter{create: sys_utils.CreateShortcutOLE}
}

func (w *OLEWriter) WriteShortcut(ctx context.Context, linkPath, target string) error {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	if err := w.create(linkPath, target); err != nil {
		return &AutomationError{ExitCode: -1, Stderr: err.Error()}
	}
	return nil
}

// NewWriter 按配置选择快捷方式创建方式
func NewWriter(cfg config.ShortcutConfig) ShortcutWriter {
	switch cfg.Backend {
	case config.BackendOLE:
		return NewOLEWriter()
	default:
		return NewPowerShellWriter(cfg.PowerShell, cfg.Timeout.Duration)
	}
}
