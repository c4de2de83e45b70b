package tcellwin

import (
	"github.com/gdamore/tcell/v2"

	"github.com/Alia5/inputframe/event"
	"github.com/Alia5/inputframe/keyboard"
	"github.com/Alia5/inputframe/mouse"
)

var specialKeys = map[tcell.Key]keyboard.Key{
	tcell.KeyEnter:      keyboard.KeyEnter,
	tcell.KeyTab:        keyboard.KeyTab,
	tcell.KeyBackspace:  keyboard.KeyBackspace,
	tcell.KeyBackspace2: keyboard.KeyBackspace,
	tcell.KeyEscape:     keyboard.KeyEscape,
	tcell.KeyInsert:     keyboard.KeyInsert,
	tcell.KeyDelete:     keyboard.KeyDelete,
	tcell.KeyHome:       keyboard.KeyHome,
	tcell.KeyEnd:        keyboard.KeyEnd,
	tcell.KeyPgUp:       keyboard.KeyPageUp,
	tcell.KeyPgDn:       keyboard.KeyPageDown,
	tcell.KeyUp:         keyboard.KeyUp,
	tcell.KeyDown:       keyboard.KeyDown,
	tcell.KeyLeft:       keyboard.KeyLeft,
	tcell.KeyRight:      keyboard.KeyRight,
	tcell.KeyPrint:      keyboard.KeyPrintScreen,
	tcell.KeyPause:      keyboard.KeyPause,
	tcell.KeyCtrlSpace:  keyboard.KeySpace,
}

// buttonMasks maps tcell button bits to mouse buttons, in bit order.
var buttonMasks = [...]struct {
	mask   tcell.ButtonMask
	button mouse.Button
}{
	{tcell.Button1, mouse.ButtonLeft},
	{tcell.Button2, mouse.ButtonRight},
	{tcell.Button3, mouse.ButtonMiddle},
	{tcell.Button4, mouse.ButtonBack},
	{tcell.Button5, mouse.ButtonForward},
	{tcell.Button6, mouse.ButtonOther(5)},
	{tcell.Button7, mouse.ButtonOther(6)},
	{tcell.Button8, mouse.ButtonOther(7)},
}

const buttonBits = tcell.Button1 | tcell.Button2 | tcell.Button3 | tcell.Button4 |
	tcell.Button5 | tcell.Button6 | tcell.Button7 | tcell.Button8

// translateKey resolves a tcell key event to a HID key and the modifiers
// that must be held around it. Shift implied by the rune (upper case,
// shifted symbols) is included. Runes with no US-layout key yield KeyNone.
func translateKey(ev *tcell.EventKey) (keyboard.Key, []keyboard.Key) {
	var mods []keyboard.Key
	m := ev.Modifiers()
	if m&tcell.ModCtrl != 0 {
		mods = append(mods, keyboard.KeyLeftCtrl)
	}
	if m&tcell.ModAlt != 0 {
		mods = append(mods, keyboard.KeyLeftAlt)
	}
	if m&tcell.ModMeta != 0 {
		mods = append(mods, keyboard.KeyLeftGUI)
	}

	k := ev.Key()
	switch {
	case k == tcell.KeyRune:
		code, shift := keyboard.CharToKey(ev.Rune())
		if shift || m&tcell.ModShift != 0 {
			mods = append(mods, keyboard.KeyLeftShift)
		}
		return code, mods
	case k == tcell.KeyBacktab:
		return keyboard.KeyTab, append(mods, keyboard.KeyLeftShift)
	case k >= tcell.KeyF1 && k <= tcell.KeyF12:
		return keyboard.KeyF1 + keyboard.Key(k-tcell.KeyF1), withShift(mods, m)
	case k >= tcell.KeyF13 && k <= tcell.KeyF24:
		return keyboard.KeyF13 + keyboard.Key(k-tcell.KeyF13), withShift(mods, m)
	}
	if code, ok := specialKeys[k]; ok {
		return code, withShift(mods, m)
	}
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		if len(mods) == 0 || mods[0] != keyboard.KeyLeftCtrl {
			mods = append([]keyboard.Key{keyboard.KeyLeftCtrl}, mods...)
		}
		return keyboard.KeyA + keyboard.Key(k-tcell.KeyCtrlA), mods
	}
	return keyboard.KeyNone, nil
}

func withShift(mods []keyboard.Key, m tcell.ModMask) []keyboard.Key {
	if m&tcell.ModShift != 0 {
		return append(mods, keyboard.KeyLeftShift)
	}
	return mods
}

// tap emits a full press/release sequence for code with mods held around it.
func tap(dst []event.RawEvent, code keyboard.Key, mods []keyboard.Key) []event.RawEvent {
	for _, m := range mods {
		dst = append(dst, event.Key{State: event.Pressed, Code: m})
	}
	dst = append(dst,
		event.Key{State: event.Pressed, Code: code},
		event.Key{State: event.Released, Code: code},
	)
	for i := len(mods) - 1; i >= 0; i-- {
		dst = append(dst, event.Key{State: event.Released, Code: mods[i]})
	}
	return dst
}
