// Package mouse identifies mouse buttons and provides a bitfield set for them.
package mouse

import (
	"math/bits"
	"strconv"
	"strings"
)

// Button identifies a mouse button. Ids 0-4 are the common five-button
// layout; platforms with more buttons report them as ButtonOther(n).
type Button uint8

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
	ButtonBack
	ButtonForward
)

// MaxButtons is the number of button ids a ButtonSet can hold.
const MaxButtons = 32

// ButtonOther returns the id for an extra platform button.
func ButtonOther(n uint8) Button {
	return Button(n)
}

// Valid reports whether b fits in a ButtonSet.
func (b Button) Valid() bool {
	return b < MaxButtons
}

var buttonNames = [...]string{
	ButtonLeft:    "Left",
	ButtonRight:   "Right",
	ButtonMiddle:  "Middle",
	ButtonBack:    "Back",
	ButtonForward: "Forward",
}

func (b Button) String() string {
	if int(b) < len(buttonNames) {
		return buttonNames[b]
	}
	return "Button" + strconv.Itoa(int(b))
}

// ParseButton accepts a button name ("left", "Middle"), "ButtonN" or a plain id.
func ParseButton(s string) (Button, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range buttonNames {
		if strings.ToLower(n) == s {
			return Button(i), true
		}
	}
	s = strings.TrimPrefix(s, "button")
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, false
	}
	return Button(n), true
}

// ButtonSet is a bitfield of held or transitioned buttons, bit n = Button(n).
type ButtonSet uint32

// Add inserts b. Ids outside the set range are ignored.
func (s *ButtonSet) Add(b Button) {
	if !b.Valid() {
		return
	}
	*s |= 1 << b
}

// Remove deletes b.
func (s *ButtonSet) Remove(b Button) {
	if !b.Valid() {
		return
	}
	*s &^= 1 << b
}

// Has reports whether b is in the set.
func (s ButtonSet) Has(b Button) bool {
	return b.Valid() && s&(1<<b) != 0
}

// Len returns the number of buttons in the set.
func (s ButtonSet) Len() int {
	return bits.OnesCount32(uint32(s))
}

// Buttons returns the members in ascending id order.
func (s ButtonSet) Buttons() []Button {
	out := make([]Button, 0, s.Len())
	for b := Button(0); b < MaxButtons; b++ {
		if s.Has(b) {
			out = append(out, b)
		}
	}
	return out
}

func (s ButtonSet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, b := range s.Buttons() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(b.String())
	}
	sb.WriteByte('}')
	return sb.String()
}
