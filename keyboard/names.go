package keyboard

import "strings"

var keyNames = [256]string{
	KeyA: "A", KeyB: "B", KeyC: "C", KeyD: "D", KeyE: "E", KeyF: "F", KeyG: "G",
	KeyH: "H", KeyI: "I", KeyJ: "J", KeyK: "K", KeyL: "L", KeyM: "M", KeyN: "N",
	KeyO: "O", KeyP: "P", KeyQ: "Q", KeyR: "R", KeyS: "S", KeyT: "T", KeyU: "U",
	KeyV: "V", KeyW: "W", KeyX: "X", KeyY: "Y", KeyZ: "Z",

	Key1: "1", Key2: "2", Key3: "3", Key4: "4", Key5: "5",
	Key6: "6", Key7: "7", Key8: "8", Key9: "9", Key0: "0",

	KeyEnter:      "Enter",
	KeyEscape:     "Escape",
	KeyBackspace:  "Backspace",
	KeyTab:        "Tab",
	KeySpace:      "Space",
	KeyMinus:      "Minus",
	KeyEqual:      "Equal",
	KeyLeftBrace:  "LeftBrace",
	KeyRightBrace: "RightBrace",
	KeyBackslash:  "Backslash",
	KeyNonUSHash:  "NonUSHash",
	KeySemicolon:  "Semicolon",
	KeyApostrophe: "Apostrophe",
	KeyGrave:      "Grave",
	KeyComma:      "Comma",
	KeyPeriod:     "Period",
	KeySlash:      "Slash",
	KeyCapsLock:   "CapsLock",

	KeyF1: "F1", KeyF2: "F2", KeyF3: "F3", KeyF4: "F4", KeyF5: "F5", KeyF6: "F6",
	KeyF7: "F7", KeyF8: "F8", KeyF9: "F9", KeyF10: "F10", KeyF11: "F11", KeyF12: "F12",
	KeyF13: "F13", KeyF14: "F14", KeyF15: "F15", KeyF16: "F16", KeyF17: "F17", KeyF18: "F18",
	KeyF19: "F19", KeyF20: "F20", KeyF21: "F21", KeyF22: "F22", KeyF23: "F23", KeyF24: "F24",

	KeyPrintScreen: "PrintScreen",
	KeyScrollLock:  "ScrollLock",
	KeyPause:       "Pause",
	KeyInsert:      "Insert",
	KeyHome:        "Home",
	KeyPageUp:      "PageUp",
	KeyDelete:      "Delete",
	KeyEnd:         "End",
	KeyPageDown:    "PageDown",

	KeyRight: "Right",
	KeyLeft:  "Left",
	KeyDown:  "Down",
	KeyUp:    "Up",

	KeyNumLock:    "NumLock",
	KeyKpSlash:    "Kp/",
	KeyKpAsterisk: "Kp*",
	KeyKpMinus:    "Kp-",
	KeyKpPlus:     "Kp+",
	KeyKpEnter:    "KpEnter",
	KeyKp1:        "Kp1",
	KeyKp2:        "Kp2",
	KeyKp3:        "Kp3",
	KeyKp4:        "Kp4",
	KeyKp5:        "Kp5",
	KeyKp6:        "Kp6",
	KeyKp7:        "Kp7",
	KeyKp8:        "Kp8",
	KeyKp9:        "Kp9",
	KeyKp0:        "Kp0",
	KeyKpDot:      "Kp.",
	KeyKpEqual:    "Kp=",

	KeyNonUSBackslash: "NonUSBackslash",
	KeyApplication:    "Application",
	KeyPower:          "Power",
	KeyMute:           "Mute",
	KeyVolumeUp:       "VolumeUp",
	KeyVolumeDown:     "VolumeDown",

	KeyLeftCtrl:   "LeftCtrl",
	KeyLeftShift:  "LeftShift",
	KeyLeftAlt:    "LeftAlt",
	KeyLeftGUI:    "LeftGUI",
	KeyRightCtrl:  "RightCtrl",
	KeyRightShift: "RightShift",
	KeyRightAlt:   "RightAlt",
	KeyRightGUI:   "RightGUI",

	KeyMediaPlayPause: "MediaPlayPause",
	KeyMediaStop:      "MediaStop",
	KeyMediaNext:      "MediaNext",
	KeyMediaPrevious:  "MediaPrevious",
}

// Aliases accepted by ParseKey in addition to the canonical names.
var keyAliases = map[string]Key{
	"esc":       KeyEscape,
	"return":    KeyEnter,
	"ctrl":      KeyLeftCtrl,
	"shift":     KeyLeftShift,
	"alt":       KeyLeftAlt,
	"super":     KeyLeftGUI,
	"pgup":      KeyPageUp,
	"pgdn":      KeyPageDown,
	"del":       KeyDelete,
	"ins":       KeyInsert,
	"backquote": KeyGrave,
}

var keysByName = func() map[string]Key {
	m := make(map[string]Key, len(keyAliases)+160)
	for i, n := range keyNames {
		if n != "" {
			m[strings.ToLower(n)] = Key(i)
		}
	}
	for n, k := range keyAliases {
		m[n] = k
	}
	return m
}()

// ParseKey resolves a key name (case-insensitive) to its usage code.
// Unknown names return KeyNone and false.
func ParseKey(name string) (Key, bool) {
	k, ok := keysByName[strings.ToLower(strings.TrimSpace(name))]
	return k, ok
}

var charToKey = [128]Key{
	'a': KeyA, 'b': KeyB, 'c': KeyC, 'd': KeyD, 'e': KeyE, 'f': KeyF, 'g': KeyG,
	'h': KeyH, 'i': KeyI, 'j': KeyJ, 'k': KeyK, 'l': KeyL, 'm': KeyM, 'n': KeyN,
	'o': KeyO, 'p': KeyP, 'q': KeyQ, 'r': KeyR, 's': KeyS, 't': KeyT, 'u': KeyU,
	'v': KeyV, 'w': KeyW, 'x': KeyX, 'y': KeyY, 'z': KeyZ,

	'A': KeyA, 'B': KeyB, 'C': KeyC, 'D': KeyD, 'E': KeyE, 'F': KeyF, 'G': KeyG,
	'H': KeyH, 'I': KeyI, 'J': KeyJ, 'K': KeyK, 'L': KeyL, 'M': KeyM, 'N': KeyN,
	'O': KeyO, 'P': KeyP, 'Q': KeyQ, 'R': KeyR, 'S': KeyS, 'T': KeyT, 'U': KeyU,
	'V': KeyV, 'W': KeyW, 'X': KeyX, 'Y': KeyY, 'Z': KeyZ,

	'1': Key1, '2': Key2, '3': Key3, '4': Key4, '5': Key5,
	'6': Key6, '7': Key7, '8': Key8, '9': Key9, '0': Key0,

	'!': Key1, '@': Key2, '#': Key3, '$': Key4, '%': Key5,
	'^': Key6, '&': Key7, '*': Key8, '(': Key9, ')': Key0,

	'-': KeyMinus, '_': KeyMinus,
	'=': KeyEqual, '+': KeyEqual,
	'[': KeyLeftBrace, '{': KeyLeftBrace,
	']': KeyRightBrace, '}': KeyRightBrace,
	'\\': KeyBackslash, '|': KeyBackslash,
	';': KeySemicolon, ':': KeySemicolon,
	'\'': KeyApostrophe, '"': KeyApostrophe,
	'`': KeyGrave, '~': KeyGrave,
	',': KeyComma, '<': KeyComma,
	'.': KeyPeriod, '>': KeyPeriod,
	'/': KeySlash, '?': KeySlash,

	' ':  KeySpace,
	'\n': KeyEnter,
	'\r': KeyEnter,
	'\t': KeyTab,
}

const shiftedSymbols = `!@#$%^&*()_+{}|:"~<>?`

// CharToKey returns the key that produces c on a US layout and whether Shift
// is needed. Characters outside ASCII resolve to KeyNone.
func CharToKey(c rune) (k Key, shift bool) {
	if c < 0 || c >= 128 {
		return KeyNone, false
	}
	k = charToKey[c]
	if k == KeyNone {
		return KeyNone, false
	}
	shift = (c >= 'A' && c <= 'Z') || strings.ContainsRune(shiftedSymbols, c)
	return k, shift
}
