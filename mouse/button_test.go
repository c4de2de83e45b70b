package mouse_test

import (
	"testing"

	"github.com/Alia5/inputframe/mouse"

	"github.com/stretchr/testify/assert"
)

func TestButtonSet(t *testing.T) {
	var s mouse.ButtonSet
	s.Add(mouse.ButtonLeft)
	s.Add(mouse.ButtonOther(9))
	s.Add(mouse.ButtonLeft)
	s.Add(mouse.ButtonOther(40))

	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Has(mouse.ButtonLeft))
	assert.True(t, s.Has(mouse.ButtonOther(9)))
	assert.False(t, s.Has(mouse.ButtonOther(40)))
	assert.Equal(t, []mouse.Button{mouse.ButtonLeft, mouse.ButtonOther(9)}, s.Buttons())
	assert.Equal(t, "{Left Button9}", s.String())

	s.Remove(mouse.ButtonRight)
	s.Remove(mouse.ButtonLeft)
	assert.Equal(t, mouse.ButtonSet(1<<9), s)
}

func TestParseButton(t *testing.T) {
	tests := []struct {
		in     string
		want   mouse.Button
		wantOK bool
	}{
		{in: "left", want: mouse.ButtonLeft, wantOK: true},
		{in: "Middle", want: mouse.ButtonMiddle, wantOK: true},
		{in: "forward", want: mouse.ButtonForward, wantOK: true},
		{in: "button7", want: mouse.ButtonOther(7), wantOK: true},
		{in: "12", want: mouse.ButtonOther(12), wantOK: true},
		{in: "thumb", wantOK: false},
		{in: "300", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			b, ok := mouse.ParseButton(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, b)
			}
		})
	}
}
