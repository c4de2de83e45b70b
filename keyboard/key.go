// Package keyboard identifies physical keys by their USB HID usage code
// (Keyboard/Keypad usage page) and provides a fixed-size set type for them.
package keyboard

import "strconv"

// Key is the HID usage code of a physical key.
// KeyNone marks a key the platform could not resolve.
type Key uint8

// KeyNone is the "no event" usage code.
const KeyNone Key = 0x00

// Letters
const (
	KeyA Key = 0x04 + iota
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
)

// Top row digits. HID orders them 1..9 then 0.
const (
	Key1 Key = 0x1E + iota
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	Key0
)

const (
	KeyEnter      Key = 0x28
	KeyEscape     Key = 0x29
	KeyBackspace  Key = 0x2A
	KeyTab        Key = 0x2B
	KeySpace      Key = 0x2C
	KeyMinus      Key = 0x2D // - and _
	KeyEqual      Key = 0x2E // = and +
	KeyLeftBrace  Key = 0x2F // [ and {
	KeyRightBrace Key = 0x30 // ] and }
	KeyBackslash  Key = 0x31 // \ and |
	KeyNonUSHash  Key = 0x32
	KeySemicolon  Key = 0x33 // ; and :
	KeyApostrophe Key = 0x34 // ' and "
	KeyGrave      Key = 0x35 // ` and ~
	KeyComma      Key = 0x36 // , and <
	KeyPeriod     Key = 0x37 // . and >
	KeySlash      Key = 0x38 // / and ?
	KeyCapsLock   Key = 0x39
)

// Function keys F1-F12. F13-F24 live at 0x68.
const (
	KeyF1 Key = 0x3A + iota
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

const (
	KeyPrintScreen Key = 0x46
	KeyScrollLock  Key = 0x47
	KeyPause       Key = 0x48
	KeyInsert      Key = 0x49
	KeyHome        Key = 0x4A
	KeyPageUp      Key = 0x4B
	KeyDelete      Key = 0x4C
	KeyEnd         Key = 0x4D
	KeyPageDown    Key = 0x4E

	KeyRight Key = 0x4F
	KeyLeft  Key = 0x50
	KeyDown  Key = 0x51
	KeyUp    Key = 0x52
)

// Keypad
const (
	KeyNumLock    Key = 0x53
	KeyKpSlash    Key = 0x54
	KeyKpAsterisk Key = 0x55
	KeyKpMinus    Key = 0x56
	KeyKpPlus     Key = 0x57
	KeyKpEnter    Key = 0x58
	KeyKp1        Key = 0x59
	KeyKp2        Key = 0x5A
	KeyKp3        Key = 0x5B
	KeyKp4        Key = 0x5C
	KeyKp5        Key = 0x5D
	KeyKp6        Key = 0x5E
	KeyKp7        Key = 0x5F
	KeyKp8        Key = 0x60
	KeyKp9        Key = 0x61
	KeyKp0        Key = 0x62
	KeyKpDot      Key = 0x63
	KeyKpEqual    Key = 0x67
)

const (
	KeyNonUSBackslash Key = 0x64
	KeyApplication    Key = 0x65 // Windows menu key
	KeyPower          Key = 0x66

	KeyF13 Key = 0x68
	KeyF14 Key = 0x69
	KeyF15 Key = 0x6A
	KeyF16 Key = 0x6B
	KeyF17 Key = 0x6C
	KeyF18 Key = 0x6D
	KeyF19 Key = 0x6E
	KeyF20 Key = 0x6F
	KeyF21 Key = 0x70
	KeyF22 Key = 0x71
	KeyF23 Key = 0x72
	KeyF24 Key = 0x73

	KeyMute       Key = 0x7F
	KeyVolumeUp   Key = 0x80
	KeyVolumeDown Key = 0x81
)

// Modifier keys are reported as ordinary keys so they show up in the
// down/pressed/released sets like everything else.
const (
	KeyLeftCtrl   Key = 0xE0
	KeyLeftShift  Key = 0xE1
	KeyLeftAlt    Key = 0xE2
	KeyLeftGUI    Key = 0xE3
	KeyRightCtrl  Key = 0xE4
	KeyRightShift Key = 0xE5
	KeyRightAlt   Key = 0xE6
	KeyRightGUI   Key = 0xE7
)

const (
	KeyMediaPlayPause Key = 0xE8
	KeyMediaStop      Key = 0xE9
	KeyMediaNext      Key = 0xEB
	KeyMediaPrevious  Key = 0xEC
)

// String returns the key name, or a hex usage code for unnamed keys.
func (k Key) String() string {
	if n := keyNames[k]; n != "" {
		return n
	}
	if k == KeyNone {
		return "None"
	}
	return "0x" + strconv.FormatUint(uint64(k), 16)
}

// Valid reports whether k is a resolvable key.
func (k Key) Valid() bool {
	return k != KeyNone
}
