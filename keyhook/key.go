package keyhook

// Key is a Windows virtual-key code as delivered by the low-level
// keyboard hook.
type Key uint16

// Virtual-key codes for the modifiers the manager tracks and a few keys
// callers commonly bind against. The low-level hook reports left/right
// specific codes for Ctrl, Alt and Shift; the generic codes appear when
// events are simulated.
const (
	KeyBackspace Key = 0x08
	KeyTab       Key = 0x09
	KeyEnter     Key = 0x0D
	KeyShift     Key = 0x10
	KeyControl   Key = 0x11
	KeyAlt       Key = 0x12
	KeyEscape    Key = 0x1B
	KeySpace     Key = 0x20
	KeyLWin      Key = 0x5B
	KeyRWin      Key = 0x5C
	KeyLShift    Key = 0xA0
	KeyRShift    Key = 0xA1
	KeyLControl  Key = 0xA2
	KeyRControl  Key = 0xA3
	KeyLAlt      Key = 0xA4
	KeyRAlt      Key = 0xA5
)
