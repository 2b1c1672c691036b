//go:build windows

package keyhook

import (
	"errors"
	"fmt"
	"runtime"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	setWindowsHookEx    = user32.NewProc("SetWindowsHookExW")
	callNextHookEx      = user32.NewProc("CallNextHookEx")
	unhookWindowsHookEx = user32.NewProc("UnhookWindowsHookEx")
	getMessage          = user32.NewProc("GetMessageW")
	postThreadMessage   = user32.NewProc("PostThreadMessageW")
	getModuleHandle     = kernel32.NewProc("GetModuleHandleW")
	getCurrentThreadId  = kernel32.NewProc("GetCurrentThreadId")
)

const (
	whKeyboardLL = 13
	wmKeydown    = 0x0100
	wmKeyup      = 0x0101
	wmSyskeydown = 0x0104
	wmSyskeyup   = 0x0105
	wmQuit       = 0x0012
)

type kbdllhookstruct struct {
	vkCode      uint32
	scanCode    uint32
	flags       uint32
	time        uint32
	dwExtraInfo uintptr
}

type msg struct {
	hwnd    uintptr
	message uint32
	wParam  uintptr
	lParam  uintptr
	time    uint32
	pt      struct{ x, y int32 }
}

// Install registers the low-level keyboard hook against the process's
// main module and starts its message pump on a dedicated OS thread. The
// hook stays active until Close.
func (m *Manager) Install() error {
	if m.closed.Load() {
		return errors.New("keyhook: manager is closed")
	}
	if !m.installed.CompareAndSwap(false, true) {
		return errors.New("keyhook: hook already installed")
	}

	errCh := make(chan error, 1)
	go m.runHook(errCh)

	if err := <-errCh; err != nil {
		m.installed.Store(false)
		return err
	}
	runtime.SetFinalizer(m, (*Manager).finalize)
	return nil
}

func (m *Manager) runHook(errCh chan<- error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	// The callback stays referenced for the lifetime of the hook.
	hookProc := func(nCode int32, wParam uintptr, lParam uintptr) uintptr {
		if nCode >= 0 {
			kb := (*kbdllhookstruct)(unsafe.Pointer(lParam))
			handled := false
			switch wParam {
			case wmKeydown, wmSyskeydown:
				handled = m.ProcessKeyDown(Key(kb.vkCode))
			case wmKeyup, wmSyskeyup:
				handled = m.ProcessKeyUp(Key(kb.vkCode))
			}
			if handled {
				// Nonzero stops the key from reaching the focused window.
				return 1
			}
		}
		r, _, _ := callNextHookEx.Call(0, uintptr(nCode), wParam, lParam)
		return r
	}

	hmod, _, _ := getModuleHandle.Call(0)
	hook, _, err := setWindowsHookEx.Call(
		whKeyboardLL,
		windows.NewCallback(hookProc),
		hmod,
		0,
	)
	if hook == 0 {
		errCh <- fmt.Errorf("SetWindowsHookEx failed: %w", err)
		return
	}

	tid, _, _ := getCurrentThreadId.Call()
	m.release = func() error {
		if r, _, err := unhookWindowsHookEx.Call(hook); r == 0 {
			return fmt.Errorf("UnhookWindowsHookEx failed: %w", err)
		}
		postThreadMessage.Call(tid, wmQuit, 0, 0)
		return nil
	}
	errCh <- nil

	// The hook is serviced while this thread waits in GetMessage.
	// GetMessage returns 0 once Close posts WM_QUIT.
	var mm msg
	for {
		r, _, _ := getMessage.Call(uintptr(unsafe.Pointer(&mm)), 0, 0, 0)
		if int32(r) <= 0 {
			return
		}
	}
}
