package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"startup-manager/constants"

	"gopkg.in/yaml.v3"
)

// 快捷方式创建后端
const (
	BackendPowerShell = "powershell"
	BackendOLE        = "ole"
)

// EnvStartupDir 覆盖配置文件中的启动文件夹
const EnvStartupDir = "STARTUP_MANAGER_DIR"

// DefaultPowerShell 默认的 PowerShell 程序名
const DefaultPowerShell = "powershell"

// Duration 支持 "30s"、"1m" 这类写法的 YAML 时长
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("unsupported duration format: %v", value.Kind)
	}
	parsed, err := ParseDuration(value.Value)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDuration 解析 "30s"、"2m" 这类时长；空串或 "0" 为 0，不接受负数
func ParseDuration(s string) (Duration, error) {
	v := strings.TrimSpace(s)
	if v == "" || v == "0" {
		return Duration{}, nil
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return Duration{}, fmt.Errorf("invalid duration %q: %w", s, err)
	}
	if parsed < 0 {
		return Duration{}, fmt.Errorf("invalid duration %q: negative", s)
	}
	return Duration{Duration: parsed}, nil
}

// String 0 显示为 "0"
func (d Duration) String() string {
	if d.Duration <= 0 {
		return "0"
	}
	return d.Duration.String()
}

func (d Duration) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

// ShortcutConfig 快捷方式创建设置
// Backend: powershell 或 ole；PowerShell: 可执行程序名；
// Timeout: 等待外部进程的上限，0 表示一直等待
type ShortcutConfig struct {
	Backend    string   `yaml:"backend"`
	PowerShell string   `yaml:"powershell"`
	Timeout    Duration `yaml:"timeout"`
}

type NotifyConfig struct {
	Toast bool `yaml:"toast"`
}

// WindowConfig 主窗口尺寸；MinimizeToTray 为 true 时最小化即隐藏到托盘
type WindowConfig struct {
	Width          float32 `yaml:"width"`
	Height         float32 `yaml:"height"`
	MinimizeToTray bool    `yaml:"minimize_to_tray"`
}

// AppConfig 应用整体配置
type AppConfig struct {
	StartupDir string         `yaml:"startup_dir"`
	Shortcut   ShortcutConfig `yaml:"shortcut"`
	Notify     NotifyConfig   `yaml:"notify"`
	LogLevel   string         `yaml:"log_level"`
	Window     WindowConfig   `yaml:"window"`
}

var (
	mu   sync.RWMutex
	app  = Default()
	path string
)

// Default 返回默认配置
func Default() AppConfig {
	return AppConfig{
		Shortcut: ShortcutConfig{
			Backend:    BackendPowerShell,
			PowerShell: DefaultPowerShell,
		},
		LogLevel: "info",
		Window:   WindowConfig{Width: 520, Height: 600},
	}
}

// Init 初始化默认配置并尝试加载持久化文件
func Init() error {
	mu.Lock()
	app = Default()
	path = defaultPath()
	mu.Unlock()
	return Load()
}

// Dir 返回配置目录：%APPDATA%/StartupManager
func Dir() string {
	dir, _ := os.UserConfigDir()
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, constants.TextAppDirName)
}

func defaultPath() string {
	return filepath.Join(Dir(), "config.yaml")
}

// Path 返回当前使用的配置文件路径
func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	if path == "" {
		return defaultPath()
	}
	return path
}

// Load 读取配置文件并覆盖默认值；文件不存在时保持默认
func Load() error {
	c, err := LoadFrom(Path())
	if err != nil {
		return err
	}
	mu.Lock()
	app = c
	mu.Unlock()
	return nil
}

// LoadFrom 从指定文件读取配置，缺省字段使用默认值，环境变量优先级最高
func LoadFrom(p string) (AppConfig, error) {
	c := Default()
	data, err := os.ReadFile(p)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return c, fmt.Errorf("reading config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &c); err != nil {
			return c, fmt.Errorf("parsing config: %w", err)
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvStartupDir)); v != "" {
		c.StartupDir = v
	}
	normalize(&c)
	return c, nil
}

func normalize(c *AppConfig) {
	d := Default()
	c.Shortcut.Backend = strings.ToLower(strings.TrimSpace(c.Shortcut.Backend))
	if c.Shortcut.Backend != BackendOLE {
		c.Shortcut.Backend = BackendPowerShell
	}
	if strings.TrimSpace(c.Shortcut.PowerShell) == "" {
		c.Shortcut.PowerShell = d.Shortcut.PowerShell
	}
	if c.Shortcut.Timeout.Duration < 0 {
		c.Shortcut.Timeout.Duration = 0
	}
	if c.Window.Width <= 0 {
		c.Window.Width = d.Window.Width
	}
	if c.Window.Height <= 0 {
		c.Window.Height = d.Window.Height
	}
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
}

// Save 写入当前配置
func Save() error {
	mu.RLock()
	c := app
	mu.RUnlock()
	return SaveTo(c, Path())
}

// SaveTo 将配置写入指定文件，必要时创建目录
func SaveTo(c AppConfig, p string) error {
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return os.WriteFile(p, data, 0644)
}

// Get 返回当前配置副本
func Get() AppConfig { mu.RLock(); defer mu.RUnlock(); return app }

// GetStartupDir 返回用户指定的启动文件夹（为空表示使用系统启动文件夹）
func GetStartupDir() string { mu.RLock(); defer mu.RUnlock(); return app.StartupDir }

// SetStartupDir 设置启动文件夹并持久化
func SetStartupDir(p string) {
	mu.Lock()
	app.StartupDir = strings.TrimSpace(p)
	mu.Unlock()
	_ = Save()
}

// GetShortcut 返回快捷方式创建设置
func GetShortcut() ShortcutConfig { mu.RLock(); defer mu.RUnlock(); return app.Shortcut }

// SetShortcut 设置快捷方式创建方式并持久化
func SetShortcut(s ShortcutConfig) {
	mu.Lock()
	app.Shortcut = s
	normalize(&app)
	mu.Unlock()
	_ = Save()
}

func GetToastEnabled() bool  { mu.RLock(); defer mu.RUnlock(); return app.Notify.Toast }
func SetToastEnabled(v bool) { mu.Lock(); app.Notify.Toast = v; mu.Unlock(); _ = Save() }

func GetLogLevel() string { mu.RLock(); defer mu.RUnlock(); return app.LogLevel }

func GetWindow() WindowConfig { mu.RLock(); defer mu.RUnlock(); return app.Window }

// SetMinimizeToTray 设置最小化到托盘并持久化
func SetMinimizeToTray(v bool) { mu.Lock(); app.Window.MinimizeToTray = v; mu.Unlock(); _ = Save() }
