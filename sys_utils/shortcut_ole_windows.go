package sys_utils

import (
	"fmt"

	"github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
)

// CreateShortcutOLE 在进程内通过 WScript.Shell 创建快捷方式 linkPath -> target
func CreateShortcutOLE(linkPath, target string) error {
	leave, err := enterApartment()
	if err != nil {
		return err
	}
	defer leave()

	shell, err := oleutil.CreateObject("WScript.Shell")
	if err != nil {
		return fmt.Errorf("could not create WScript.Shell: %w", err)
	}
	defer shell.Release()

	wshell, err := shell.QueryInterface(ole.IID_IDispatch)
	if err != nil {
		return fmt.Errorf("could not query IDispatch: %w", err)
	}
	defer wshell.Release()

	cs, err := oleutil.CallMethod(wshell, "CreateShortcut", linkPath)
	if err != nil {
		return fmt.Errorf("could not call CreateShortcut: %w", err)
	}
	defer cs.Clear()

	link := cs.ToIDispatch()
	if _, err := oleutil.PutProperty(link, "TargetPath", target); err != nil {
		return fmt.Errorf("could not set target path: %w", err)
	}
	if _, err := oleutil.CallMethod(link, "Save"); err != nil {
		return fmt.Errorf("could not save link: %w", err)
	}
	return nil
}
