package app

import (
	"errors"
	"testing"

	"startup-manager/sys_utils"
)

// fakeShell 记录所有获取与释放的句柄，用于检查泄漏与释放顺序
type fakeShell struct {
	failAt   string
	command  int
	panicOn  string
	next     uintptr
	live     map[uintptr]string
	released []string
	invoked  []sys_utils.InvokeCommandInfo
	trackPt  sys_utils.Point
	apartIn  bool
}

func newFakeShell() *fakeShell {
	return &fakeShell{live: map[uintptr]string{}, next: 100}
}

func (f *fakeShell) acquire(kind string) uintptr {
	f.next++
	f.live[f.next] = kind
	return f.next
}

func (f *fakeShell) release(h uintptr, kind string) {
	if f.live[h] != kind {
		panic("release of unknown " + kind)
	}
	delete(f.live, h)
	f.released = append(f.released, kind)
}

var errFake = errors.New("fake failure")

func (f *fakeShell) EnterApartment() (func(), error) {
	if f.failAt == "apartment" {
		return nil, errFake
	}
	f.apartIn = true
	return func() {
		f.apartIn = false
		f.released = append(f.released, "apartment")
	}, nil
}

func (f *fakeShell) ParseDisplayName(path string) (uintptr, error) {
	if f.failAt == "parse" {
		return 0, errFake
	}
	return f.acquire("pidl"), nil
}

func (f *fakeShell) FreeIDList(pidl uintptr) { f.release(pidl, "pidl") }

func (f *fakeShell) BindToParent(pidl uintptr) (uintptr, uintptr, error) {
	if f.failAt == "bind" {
		return 0, 0, errFake
	}
	return f.acquire("folder"), pidl + 1000, nil
}

func (f *fakeShell) GetContextMenu(folder, child, owner uintptr) (uintptr, error) {
	if f.failAt == "menu" {
		return 0, errFake
	}
	return f.acquire("contextmenu"), nil
}

func (f *fakeShell) ReleaseObject(obj uintptr) { f.release(obj, f.live[obj]) }

func (f *fakeShell) CreatePopupMenu() (uintptr, error) {
	if f.failAt == "popup" {
		return 0, errFake
	}
	return f.acquire("hmenu"), nil
}

func (f *fakeShell) DestroyMenu(hmenu uintptr) { f.release(hmenu, "hmenu") }

func (f *fakeShell) QueryContextMenu(menu, hmenu uintptr, first, last uint32) error {
	if f.failAt == "query" {
		return errFake
	}
	if first != 1 || last != 0x7FFF {
		panic("unexpected command range")
	}
	return nil
}

func (f *fakeShell) TrackPopupMenu(hmenu uintptr, pt sys_utils.Point, owner uintptr) int {
	f.trackPt = pt
	return f.command
}

func (f *fakeShell) InvokeCommand(menu uintptr, info sys_utils.InvokeCommandInfo) error {
	if f.panicOn == "invoke" {
		panic("handler crashed")
	}
	f.invoked = append(f.invoked, info)
	if f.failAt == "invoke" {
		return errFake
	}
	return nil
}

func (f *fakeShell) assertClean(t *testing.T) {
	t.Helper()
	if len(f.live) != 0 {
		t.Errorf("leaked handles: %v", f.live)
	}
	if f.apartIn {
		t.Error("apartment was not left")
	}
}

func TestShowContextMenu_SelectInvokes(t *testing.T) {
	f := newFakeShell()
	f.command = 7
	pt := sys_utils.Point{X: 120, Y: 340}
	invoked, err := ShowContextMenu(f, `C:\Startup\app.lnk`, pt, 42)
	if err != nil || !invoked {
		t.Fatalf("invoked=%v err=%v", invoked, err)
	}
	if len(f.invoked) != 1 {
		t.Fatalf("invocations = %d, want 1", len(f.invoked))
	}
	info := f.invoked[0]
	if info.Verb != 6 || info.Owner != 42 || info.Show != sys_utils.ShowNormal || info.Directory != "" {
		t.Errorf("info = %+v", info)
	}
	if f.trackPt != pt {
		t.Errorf("menu shown at %+v, want %+v", f.trackPt, pt)
	}
	f.assertClean(t)
	want := []string{"hmenu", "contextmenu", "folder", "pidl", "apartment"}
	if len(f.released) != len(want) {
		t.Fatalf("released = %v, want %v", f.released, want)
	}
	for i := range want {
		if f.released[i] != want[i] {
			t.Fatalf("released = %v, want %v", f.released, want)
		}
	}
}

func TestShowContextMenu_Dismiss(t *testing.T) {
	f := newFakeShell()
	invoked, err := ShowContextMenu(f, "a.lnk", sys_utils.Point{}, 0)
	if err != nil || invoked {
		t.Fatalf("invoked=%v err=%v", invoked, err)
	}
	if len(f.invoked) != 0 {
		t.Error("dismiss must not invoke")
	}
	f.assertClean(t)
}

func TestShowContextMenu_EarlyAbortReleasesAll(t *testing.T) {
	tests := []struct {
		failAt       string
		wantReleased int
	}{
		{"apartment", 0},
		{"parse", 1},
		{"bind", 2},
		{"menu", 3},
		{"popup", 4},
	}
	for _, tt := range tests {
		t.Run(tt.failAt, func(t *testing.T) {
			f := newFakeShell()
			f.failAt = tt.failAt
			f.command = 3
			invoked, err := ShowContextMenu(f, "missing.lnk", sys_utils.Point{}, 0)
			if err == nil || invoked {
				t.Fatalf("invoked=%v err=%v", invoked, err)
			}
			if !errors.Is(err, errFake) {
				t.Errorf("err = %v, want wrapped errFake", err)
			}
			if len(f.invoked) != 0 {
				t.Error("aborted menu must not invoke")
			}
			if len(f.released) != tt.wantReleased {
				t.Errorf("released = %v", f.released)
			}
			f.assertClean(t)
		})
	}
}

func TestShowContextMenu_PopulateFailureStillPresents(t *testing.T) {
	f := newFakeShell()
	f.failAt = "query"
	f.command = 3
	pt := sys_utils.Point{X: 5, Y: 6}
	invoked, err := ShowContextMenu(f, "a.lnk", pt, 0)
	if err != nil || !invoked {
		t.Fatalf("invoked=%v err=%v", invoked, err)
	}
	if f.trackPt != pt {
		t.Errorf("menu shown at %+v, want %+v", f.trackPt, pt)
	}
	if len(f.invoked) != 1 || f.invoked[0].Verb != 2 {
		t.Errorf("invoked = %+v", f.invoked)
	}
	f.assertClean(t)
}

func TestShowContextMenu_InvokeErrorStillReleases(t *testing.T) {
	f := newFakeShell()
	f.command = 1
	f.failAt = "invoke"
	invoked, err := ShowContextMenu(f, "a.lnk", sys_utils.Point{}, 0)
	if err == nil || invoked {
		t.Fatalf("invoked=%v err=%v", invoked, err)
	}
	if len(f.invoked) != 1 || f.invoked[0].Verb != 0 {
		t.Errorf("invoked = %+v", f.invoked)
	}
	f.assertClean(t)
}

func TestShowContextMenu_PanicReleases(t *testing.T) {
	f := newFakeShell()
	f.command = 2
	f.panicOn = "invoke"
	func() {
		defer func() {
			if recover() == nil {
				t.Error("expected panic to propagate")
			}
		}()
		_, _ = ShowContextMenu(f, "a.lnk", sys_utils.Point{}, 0)
	}()
	f.assertClean(t)
}
