package utils

import (
	"image"

	"golang.org/x/image/draw"
)

// IconSize 列表中图标的边长（像素）
const IconSize = 32

// ScaleIcon 将任意尺寸的图标缩放到 size×size；nil 或空图像返回 nil
func ScaleIcon(src image.Image, size int) *image.RGBA {
	if src == nil || size <= 0 {
		return nil
	}
	b := src.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil
	}
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	if b.Dx() == size && b.Dy() == size {
		draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
		return dst
	}
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

// IsBlank 判断图像是否完全透明（系统未给出可用图标时常见）
func IsBlank(img *image.RGBA) bool {
	if img == nil {
		return true
	}
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			return false
		}
	}
	return true
}
