package sys_utils

import (
	"errors"
	"fmt"
	"image"
	"unsafe"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"
)

// FileIcon 通过 SHGetFileInfo 获取文件在资源管理器中显示的大图标
func FileIcon(path string) (image.Image, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return nil, err
	}
	var sfi win.SHFILEINFO
	ret := win.SHGetFileInfo(p, 0, &sfi, uint32(unsafe.Sizeof(sfi)), win.SHGFI_ICON|win.SHGFI_LARGEICON)
	if ret == 0 || sfi.HIcon == 0 {
		return nil, fmt.Errorf("SHGetFileInfo: no icon for %s", path)
	}
	defer win.DestroyIcon(sfi.HIcon)
	return iconImage(sfi.HIcon)
}

// iconImage 读取 HICON 的颜色位图；没有 alpha 通道的旧式图标用掩码位图补齐透明度
func iconImage(hicon win.HICON) (*image.NRGBA, error) {
	var ii win.ICONINFO
	if !win.GetIconInfo(hicon, &ii) {
		return nil, errors.New("GetIconInfo failed")
	}
	if ii.HbmMask != 0 {
		defer win.DeleteObject(win.HGDIOBJ(ii.HbmMask))
	}
	if ii.HbmColor == 0 {
		return nil, errors.New("monochrome icon")
	}
	defer win.DeleteObject(win.HGDIOBJ(ii.HbmColor))

	var bm win.BITMAP
	if win.GetObject(win.HGDIOBJ(ii.HbmColor), unsafe.Sizeof(bm), unsafe.Pointer(&bm)) == 0 {
		return nil, errors.New("GetObject failed")
	}
	width, height := int(bm.BmWidth), int(bm.BmHeight)
	if width <= 0 || height <= 0 {
		return nil, errors.New("empty icon bitmap")
	}

	hdc := win.GetDC(0)
	defer win.ReleaseDC(0, hdc)

	color, err := readBitmap32(hdc, ii.HbmColor, width, height)
	if err != nil {
		return nil, err
	}
	hasAlpha := false
	for i := 3; i < len(color); i += 4 {
		if color[i] != 0 {
			hasAlpha = true
			break
		}
	}
	var mask []byte
	if !hasAlpha && ii.HbmMask != 0 {
		mask, _ = readBitmap32(hdc, ii.HbmMask, width, height)
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i := 0; i+3 < len(color); i += 4 {
		b, g, r, a := color[i], color[i+1], color[i+2], color[i+3]
		if !hasAlpha {
			a = 255
			// 掩码为白色表示透明
			if mask != nil && mask[i] != 0 {
				a = 0
			}
		}
		img.Pix[i+0] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img, nil
}

// readBitmap32 以 32 位自上而下 DIB 格式读取位图像素（BGRA）
func readBitmap32(hdc win.HDC, hbm win.HBITMAP, width, height int) ([]byte, error) {
	var bmi win.BITMAPINFO
	bmi.BmiHeader.BiSize = uint32(unsafe.Sizeof(bmi.BmiHeader))
	bmi.BmiHeader.BiWidth = int32(width)
	bmi.BmiHeader.BiHeight = -int32(height)
	bmi.BmiHeader.BiPlanes = 1
	bmi.BmiHeader.BiBitCount = 32
	bmi.BmiHeader.BiCompression = win.BI_RGB
	buf := make([]byte, width*height*4)
	if win.GetDIBits(hdc, hbm, 0, uint32(height), &buf[0], &bmi, win.DIB_RGB_COLORS) == 0 {
		return nil, errors.New("GetDIBits failed")
	}
	return buf, nil
}
