package gui

import (
	"image/color"
	"os"
	"path/filepath"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// customTheme 黑底白字、大号字体
type customTheme struct{}

var (
	customFont fyne.Resource
	loadOnce   sync.Once
)

func (t *customTheme) Color(n fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch n {
	case theme.ColorNameBackground:
		return color.Black
	case theme.ColorNameForeground:
		return color.White
	case theme.ColorNameInputBackground, theme.ColorNameMenuBackground, theme.ColorNameOverlayBackground:
		return color.NRGBA{R: 0x1c, G: 0x1c, B: 0x1c, A: 0xff}
	}
	return theme.DefaultTheme().Color(n, theme.VariantDark)
}

func (t *customTheme) Font(s fyne.TextStyle) fyne.Resource {
	if s.Monospace || s.Symbol {
		return theme.DefaultTheme().Font(s)
	}
	loadOnce.Do(func() {
		// Windows 上使用 Segoe UI，取不到时回退到默认字体
		fontPath := filepath.Join(os.Getenv("SystemRoot"), "Fonts", "segoeui.ttf")
		data, err := os.ReadFile(fontPath)
		if err != nil {
			fontPath = `C:\Windows\Fonts\segoeui.ttf`
			data, err = os.ReadFile(fontPath)
		}
		if err == nil {
			customFont = fyne.NewStaticResource("segoeui.ttf", data)
		}
	})
	if customFont != nil && !s.Bold && !s.Italic {
		return customFont
	}
	return theme.DefaultTheme().Font(s)
}

func (t *customTheme) Icon(n fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(n)
}

func (t *customTheme) Size(n fyne.ThemeSizeName) float32 {
	switch n {
	case theme.SizeNameText:
		return 18
	case theme.SizeNamePadding:
		return 8
	default:
		return theme.DefaultTheme().Size(n)
	}
}
