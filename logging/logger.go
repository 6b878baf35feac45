package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const keepFiles = 5

var (
	mu      sync.RWMutex
	logDir  string
	logFile *os.File
	logger  = zap.NewNop()
	level   = zap.NewAtomicLevelAt(zapcore.InfoLevel)
)

// Init 在 baseConfigDir/logs 下创建本次运行的日志文件，并只保留最近几份
func Init(baseConfigDir string) error {
	dir := filepath.Join(baseConfigDir, "logs")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	ts := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("startupmanager_%s.log", ts))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05.000")
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(f), level)

	mu.Lock()
	old := logFile
	logDir = dir
	logFile = f
	logger = zap.New(core)
	mu.Unlock()
	if old != nil {
		_ = old.Close()
	}

	rotateKeep(dir, keepFiles)
	Info("logger initialized", zap.String("file", path))
	return nil
}

// SetLevel 设置日志级别：debug / info / warn / error，未知值按 info 处理
func SetLevel(name string) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		level.SetLevel(zapcore.DebugLevel)
	case "warn", "warning":
		level.SetLevel(zapcore.WarnLevel)
	case "error":
		level.SetLevel(zapcore.ErrorLevel)
	default:
		level.SetLevel(zapcore.InfoLevel)
	}
}

// Close 刷新并关闭日志文件
func Close() {
	mu.Lock()
	defer mu.Unlock()
	_ = logger.Sync()
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
	logger = zap.NewNop()
}

func rotateKeep(dir string, max int) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	type item struct {
		name string
		mod  time.Time
	}
	var items []item
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".log") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		items = append(items, item{name: e.Name(), mod: info.ModTime()})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].mod.After(items[j].mod) })
	if len(items) <= max {
		return
	}
	for _, it := range items[max:] {
		_ = os.Remove(filepath.Join(dir, it.name))
	}
}

func current() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func Debug(msg string, fields ...zap.Field) { current().Debug(msg, fields...) }
func Info(msg string, fields ...zap.Field)  { current().Info(msg, fields...) }
func Warn(msg string, fields ...zap.Field)  { current().Warn(msg, fields...) }
func Error(msg string, fields ...zap.Field) { current().Error(msg, fields...) }

// RecoverPanic 用于 defer：捕获 panic 并连同调用栈写入日志
func RecoverPanic(where string) {
	if r := recover(); r != nil {
		current().Error("panic recovered",
			zap.String("where", where),
			zap.Any("panic", r),
			zap.ByteString("stack", debug.Stack()))
		_ = current().Sync()
	}
}

func GetLogDir() string {
	mu.RLock()
	defer mu.RUnlock()
	return logDir
}
