//go:build windows

package inject

import (
	"fmt"
	"log/slog"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	getForegroundWindow        = user32.NewProc("GetForegroundWindow")
	getWindowThreadProcessId   = user32.NewProc("GetWindowThreadProcessId")
	getGUIThreadInfo           = user32.NewProc("GetGUIThreadInfo")
	postMessage                = user32.NewProc("PostMessageW")
	openClipboard              = user32.NewProc("OpenClipboard")
	closeClipboard             = user32.NewProc("CloseClipboard")
	emptyClipboard             = user32.NewProc("EmptyClipboard")
	getClipboardData           = user32.NewProc("GetClipboardData")
	setClipboardData           = user32.NewProc("SetClipboardData")
	isClipboardFormatAvailable = user32.NewProc("IsClipboardFormatAvailable")
	setCursorPos               = user32.NewProc("SetCursorPos")
	sendInput                  = user32.NewProc("SendInput")
	globalAlloc                = kernel32.NewProc("GlobalAlloc")
	globalLock                 = kernel32.NewProc("GlobalLock")
	globalUnlock               = kernel32.NewProc("GlobalUnlock")
)

const (
	wmKeydown     = 0x0100
	cfUnicodeText = 13
	gmemMoveable  = 0x0002

	inputMouse         = 0
	mouseEventLeftDown = 0x0002
	mouseEventLeftUp   = 0x0004
)

type rect struct {
	left, top, right, bottom int32
}

type guiThreadInfo struct {
	cbSize        uint32
	flags         uint32
	hwndActive    uintptr
	hwndFocus     uintptr
	hwndCapture   uintptr
	hwndMenuOwner uintptr
	hwndMoveSize  uintptr
	hwndCaret     uintptr
	rcCaret       rect
}

type mouseInput struct {
	dx          int32
	dy          int32
	mouseData   uint32
	dwFlags     uint32
	time        uint32
	dwExtraInfo uintptr
}

type input struct {
	inputType uint32
	mi        mouseInput
}

// windowsSystem implements System over user32 and kernel32.
type windowsSystem struct{}

// NewSystem returns the native Windows implementation of System.
func NewSystem() System {
	return windowsSystem{}
}

// FocusedControl walks foreground window -> owning thread -> that
// thread's GUI state to find the control holding keyboard focus.
func (windowsSystem) FocusedControl() (Window, bool) {
	fg, _, _ := getForegroundWindow.Call()
	if fg == 0 {
		return 0, false
	}

	tid, _, _ := getWindowThreadProcessId.Call(fg, 0)
	if tid == 0 {
		return 0, false
	}

	var info guiThreadInfo
	info.cbSize = uint32(unsafe.Sizeof(info))
	if r, _, _ := getGUIThreadInfo.Call(tid, uintptr(unsafe.Pointer(&info))); r == 0 {
		return 0, false
	}
	if info.hwndFocus == 0 {
		return 0, false
	}
	return Window(info.hwndFocus), true
}

func (windowsSystem) PostKeyDown(w Window, key uint16) error {
	r, _, err := postMessage.Call(uintptr(w), wmKeydown, uintptr(key), 0)
	if r == 0 {
		return fmt.Errorf("PostMessage failed: %w", err)
	}
	return nil
}

// openRetry opens the clipboard, retrying briefly; another process may
// hold it at any moment.
func openRetry() error {
	for i := 0; i < 10; i++ {
		if r, _, _ := openClipboard.Call(0); r != 0 {
			return nil
		}
		time.Sleep(10 * time.Millisecond)
	}
	return fmt.Errorf("failed to open clipboard")
}

func (windowsSystem) ClipboardText() (string, bool) {
	if err := openRetry(); err != nil {
		slog.Warn("Failed to read clipboard", "error", err)
		return "", false
	}
	defer closeClipboard.Call()

	if r, _, _ := isClipboardFormatAvailable.Call(cfUnicodeText); r == 0 {
		return "", false
	}

	h, _, _ := getClipboardData.Call(cfUnicodeText)
	if h == 0 {
		return "", false
	}

	l, _, _ := globalLock.Call(h)
	if l == 0 {
		return "", false
	}
	defer globalUnlock.Call(h)

	return windows.UTF16PtrToString((*uint16)(unsafe.Pointer(l))), true
}

func (windowsSystem) SetClipboardText(text string) error {
	u16, err := windows.UTF16FromString(text)
	if err != nil {
		return fmt.Errorf("failed to encode clipboard text: %w", err)
	}

	if err := openRetry(); err != nil {
		return err
	}
	defer closeClipboard.Call()

	emptyClipboard.Call()

	// Allocate moveable global memory including the terminating NUL and
	// hand it to the clipboard; the system owns it after SetClipboardData.
	size := uintptr(len(u16)) * unsafe.Sizeof(u16[0])
	h, _, allocErr := globalAlloc.Call(gmemMoveable, size)
	if h == 0 {
		return fmt.Errorf("GlobalAlloc failed: %w", allocErr)
	}

	l, _, _ := globalLock.Call(h)
	if l == 0 {
		return fmt.Errorf("failed to lock clipboard memory")
	}
	copy(unsafe.Slice((*uint16)(unsafe.Pointer(l)), len(u16)), u16)
	globalUnlock.Call(h)

	if r, _, setErr := setClipboardData.Call(cfUnicodeText, h); r == 0 {
		return fmt.Errorf("SetClipboardData failed: %w", setErr)
	}
	return nil
}

func (windowsSystem) ClearClipboard() error {
	if err := openRetry(); err != nil {
		return err
	}
	defer closeClipboard.Call()

	if r, _, err := emptyClipboard.Call(); r == 0 {
		return fmt.Errorf("EmptyClipboard failed: %w", err)
	}
	return nil
}

func (windowsSystem) MoveCursor(x, y int) error {
	r, _, err := setCursorPos.Call(uintptr(x), uintptr(y))
	if r == 0 {
		return fmt.Errorf("SetCursorPos failed: %w", err)
	}
	return nil
}

// ClickMouse sends a left press and release at the current position.
func (windowsSystem) ClickMouse() error {
	inputs := []input{
		{inputType: inputMouse, mi: mouseInput{dwFlags: mouseEventLeftDown}},
		{inputType: inputMouse, mi: mouseInput{dwFlags: mouseEventLeftUp}},
	}

	r, _, err := sendInput.Call(
		uintptr(len(inputs)),
		uintptr(unsafe.Pointer(&inputs[0])),
		unsafe.Sizeof(inputs[0]),
	)
	if r != uintptr(len(inputs)) {
		return fmt.Errorf("SendInput failed: %w", err)
	}
	return nil
}
