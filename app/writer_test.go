package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"startup-manager/config"
)

// helperWriter 用当前测试二进制代替 powershell，mode 决定其行为
func helperWriter(mode string, timeout time.Duration) *PowerShellWriter {
	w := NewPowerShellWriter("powershell", timeout)
	w.command = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		cs := append([]string{"-test.run=TestHelperProcess", "--", name}, args...)
		cmd := exec.CommandContext(ctx, os.Args[0], cs...)
		cmd.Env = append(os.Environ(), "GO_WANT_HELPER_PROCESS=1", "HELPER_MODE="+mode)
		return cmd
	}
	return w
}

// TestHelperProcess 不是真正的测试，被 helperWriter 作为子进程启动
func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}
	switch os.Getenv("HELPER_MODE") {
	case "ok":
		link := os.Getenv(envLinkPath)
		target := os.Getenv(envTarget)
		if err := os.WriteFile(link, []byte("L\x00\x00\x00Target="+target+"\n"), 0o644); err != nil {
			fmt.Fprint(os.Stderr, err)
			os.Exit(2)
		}
		os.Exit(0)
	case "fail":
		fmt.Fprint(os.Stderr, "Exception calling \"Save\": Access is denied.\n")
		os.Exit(1)
	case "silent-fail":
		os.Exit(3)
	case "hang":
		time.Sleep(time.Minute)
		os.Exit(0)
	case "hang-with-child":
		// 孙进程继承 stderr，父进程被杀后管道仍保持打开
		child := exec.Command(os.Args[0], "-test.run=TestHelperProcess", "--")
		child.Env = append(os.Environ(), "HELPER_MODE=sleep")
		child.Stderr = os.Stderr
		if err := child.Start(); err != nil {
			os.Exit(5)
		}
		time.Sleep(time.Minute)
		os.Exit(0)
	case "sleep":
		time.Sleep(20 * time.Second)
		os.Exit(0)
	}
	os.Exit(4)
}

func TestPowerShellWriter_Success(t *testing.T) {
	dir := t.TempDir()
	link := filepath.Join(dir, "app.lnk")
	w := helperWriter("ok", 0)
	if err := w.WriteShortcut(context.Background(), link, `C:\tools\app.exe`); err != nil {
		t.Fatalf("WriteShortcut: %v", err)
	}
	if got := ResolveShortcutTarget(link); got != `C:\tools\app.exe` {
		t.Errorf("target = %q", got)
	}
}

func TestPowerShellWriter_QuotesInPath(t *testing.T) {
	dir := t.TempDir()
	link := filepath.Join(dir, "it's.lnk")
	target := `C:\it's "quoted"\x.exe`
	if err := helperWriter("ok", 0).WriteShortcut(context.Background(), link, target); err != nil {
		t.Fatalf("WriteShortcut: %v", err)
	}
	if got := ResolveShortcutTarget(link); got != target {
		t.Errorf("target = %q, want %q", got, target)
	}
}

func TestPowerShellWriter_Failure(t *testing.T) {
	err := helperWriter("fail", 0).WriteShortcut(context.Background(), filepath.Join(t.TempDir(), "x.lnk"), "x.exe")
	var ae *AutomationError
	if !errors.As(err, &ae) {
		t.Fatalf("err = %v, want *AutomationError", err)
	}
	if ae.ExitCode != 1 {
		t.Errorf("exit code = %d", ae.ExitCode)
	}
	if !strings.Contains(ae.Error(), "Access is denied.") {
		t.Errorf("message = %q", ae.Error())
	}
}

func TestPowerShellWriter_FailureWithoutStderr(t *testing.T) {
	err := helperWriter("silent-fail", 0).WriteShortcut(context.Background(), filepath.Join(t.TempDir(), "x.lnk"), "x.exe")
	var ae *AutomationError
	if !errors.As(err, &ae) {
		t.Fatalf("err = %v, want *AutomationError", err)
	}
	if ae.ExitCode != 3 || ae.Stderr == "" {
		t.Errorf("got %+v", ae)
	}
}

func TestPowerShellWriter_Timeout(t *testing.T) {
	start := time.Now()
	err := helperWriter("hang", 200*time.Millisecond).WriteShortcut(context.Background(), filepath.Join(t.TempDir(), "x.lnk"), "x.exe")
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("err = %v, want ErrTimeout", err)
	}
	if time.Since(start) > 30*time.Second {
		t.Error("timeout did not stop the process")
	}
}

func TestPowerShellWriter_TimeoutWithInheritedStderr(t *testing.T) {
	start := time.Now()
	err := helperWriter("hang-with-child", 300*time.Millisecond).WriteShortcut(context.Background(), filepath.Join(t.TempDir(), "x.lnk"), "x.exe")
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("err = %v, want ErrTimeout", err)
	}
	if elapsed := time.Since(start); elapsed > 10*time.Second {
		t.Errorf("WriteShortcut returned after %s, still waiting on the inherited pipe", elapsed)
	}
}

func TestPowerShellWriter_MissingProgram(t *testing.T) {
	w := NewPowerShellWriter(filepath.Join(t.TempDir(), "no-such-powershell"), 0)
	err := w.WriteShortcut(context.Background(), "x.lnk", "x.exe")
	if err == nil {
		t.Fatal("expected error")
	}
	var ae *AutomationError
	if errors.As(err, &ae) {
		t.Errorf("missing program should not be an AutomationError: %v", err)
	}
}

func TestOLEWriter_WrapsError(t *testing.T) {
	w := &OLEWriter{create: func(linkPath, target string) error {
		return errors.New("CreateShortcut failed")
	}}
	err := w.WriteShortcut(context.Background(), "a.lnk", "a.exe")
	var ae *AutomationError
	if !errors.As(err, &ae) || ae.Stderr != "CreateShortcut failed" {
		t.Errorf("err = %v", err)
	}
}

func TestNewWriter(t *testing.T) {
	if _, ok := NewWriter(config.ShortcutConfig{Backend: config.BackendOLE}).(*OLEWriter); !ok {
		t.Error("ole backend should give *OLEWriter")
	}
	w, ok := NewWriter(config.ShortcutConfig{Backend: config.BackendPowerShell, Timeout: config.Duration{Duration: time.Second}}).(*PowerShellWriter)
	if !ok {
		t.Fatal("powershell backend should give *PowerShellWriter")
	}
	if w.Program != config.DefaultPowerShell || w.Timeout != time.Second {
		t.Errorf("got %+v", w)
	}
}
