package input_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/inputframe/event"
	"github.com/Alia5/inputframe/input"
	"github.com/Alia5/inputframe/keyboard"
	"github.com/Alia5/inputframe/mouse"
)

var window = input.Extent{Width: 800, Height: 600}

func press(k keyboard.Key) event.Key   { return event.Key{State: event.Pressed, Code: k} }
func release(k keyboard.Key) event.Key { return event.Key{State: event.Released, Code: k} }

func reduce(t *testing.T, s *input.Snapshot, ext input.Extent, events ...event.RawEvent) error {
	t.Helper()
	s.BeginFrame()
	return input.Reduce(s, ext, events)
}

func TestReduceKeys(t *testing.T) {
	tests := []struct {
		name         string
		held         []keyboard.Key
		events       []event.RawEvent
		wantDown     []keyboard.Key
		wantPressed  []keyboard.Key
		wantReleased []keyboard.Key
	}{
		{
			name:        "press",
			events:      []event.RawEvent{press(keyboard.KeyA)},
			wantDown:    []keyboard.Key{keyboard.KeyA},
			wantPressed: []keyboard.Key{keyboard.KeyA},
		},
		{
			name:         "press then release in one batch",
			events:       []event.RawEvent{press(keyboard.KeyA), release(keyboard.KeyA)},
			wantPressed:  []keyboard.Key{keyboard.KeyA},
			wantReleased: []keyboard.Key{keyboard.KeyA},
		},
		{
			name:         "release without press",
			events:       []event.RawEvent{release(keyboard.KeyQ)},
			wantReleased: []keyboard.Key{keyboard.KeyQ},
		},
		{
			name:        "repeat while held",
			held:        []keyboard.Key{keyboard.KeyW},
			events:      []event.RawEvent{press(keyboard.KeyW)},
			wantDown:    []keyboard.Key{keyboard.KeyW},
			wantPressed: []keyboard.Key{keyboard.KeyW},
		},
		{
			name:     "untouched keys keep level state",
			held:     []keyboard.Key{keyboard.KeyLeftShift, keyboard.KeyD},
			events:   []event.RawEvent{press(keyboard.KeyE), release(keyboard.KeyE)},
			wantDown: []keyboard.Key{keyboard.KeyD, keyboard.KeyLeftShift},
			wantPressed: []keyboard.Key{
				keyboard.KeyE,
			},
			wantReleased: []keyboard.Key{keyboard.KeyE},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := input.NewSnapshot()
			for _, k := range tt.held {
				s.KeysDown.Add(k)
			}
			require.NoError(t, reduce(t, s, window, tt.events...))

			assert.ElementsMatch(t, tt.wantDown, s.KeysDown.Keys())
			assert.ElementsMatch(t, tt.wantPressed, s.KeysPressed.Keys())
			assert.ElementsMatch(t, tt.wantReleased, s.KeysReleased.Keys())
			for _, k := range tt.wantReleased {
				assert.False(t, s.KeyDown(k), "%s released but still down", k)
			}
		})
	}
}

func TestReduceKeyRoundTrip(t *testing.T) {
	s := input.NewSnapshot()

	require.NoError(t, reduce(t, s, window, press(keyboard.KeySpace)))
	assert.True(t, s.KeyDown(keyboard.KeySpace))
	assert.True(t, s.KeyPressed(keyboard.KeySpace))

	require.NoError(t, reduce(t, s, window, release(keyboard.KeySpace)))
	assert.False(t, s.KeyDown(keyboard.KeySpace))
	assert.False(t, s.KeyPressed(keyboard.KeySpace))
	assert.True(t, s.KeyReleased(keyboard.KeySpace))

	require.NoError(t, reduce(t, s, window))
	assert.True(t, s.KeysDown.Empty())
	assert.True(t, s.KeysPressed.Empty())
	assert.True(t, s.KeysReleased.Empty())
}

func TestReduceButtons(t *testing.T) {
	s := input.NewSnapshot()
	err := reduce(t, s, window,
		event.Button{State: event.Pressed, Button: mouse.ButtonLeft},
		event.Button{State: event.Pressed, Button: mouse.ButtonRight},
		event.Button{State: event.Released, Button: mouse.ButtonRight},
	)
	require.NoError(t, err)

	assert.True(t, s.ButtonDown(mouse.ButtonLeft))
	assert.False(t, s.ButtonDown(mouse.ButtonRight))
	assert.True(t, s.ButtonPressed(mouse.ButtonRight))
	assert.True(t, s.ButtonReleased(mouse.ButtonRight))

	require.NoError(t, reduce(t, s, window))
	assert.True(t, s.ButtonDown(mouse.ButtonLeft))
	assert.Zero(t, s.ButtonsPressed)
	assert.Zero(t, s.ButtonsReleased)
}

func TestReducePointer(t *testing.T) {
	tests := []struct {
		name      string
		ext       input.Extent
		events    []event.RawEvent
		wantDelta input.Vec2
		wantPos   input.Vec2
		wantErr   error
	}{
		{
			name:      "offset from center",
			ext:       window,
			events:    []event.RawEvent{event.CursorMoved{X: 200, Y: 150}},
			wantDelta: input.Vec2{X: 0.25, Y: 0.25},
			wantPos:   input.Vec2{X: 200, Y: 150},
		},
		{
			name:      "at center",
			ext:       window,
			events:    []event.RawEvent{event.CursorMoved{X: 400, Y: 300}},
			wantDelta: input.Vec2{},
			wantPos:   input.Vec2{X: 400, Y: 300},
		},
		{
			name:      "last move wins",
			ext:       window,
			events:    []event.RawEvent{event.CursorMoved{X: 0, Y: 0}, event.CursorMoved{X: 800, Y: 600}},
			wantDelta: input.Vec2{X: -0.5, Y: -0.5},
			wantPos:   input.Vec2{X: 800, Y: 600},
		},
		{
			name:      "odd extent halves in integers",
			ext:       input.Extent{Width: 5, Height: 5},
			events:    []event.RawEvent{event.CursorMoved{X: 2, Y: 2}},
			wantDelta: input.Vec2{},
			wantPos:   input.Vec2{X: 2, Y: 2},
		},
		{
			name:      "zero extent",
			ext:       input.Extent{},
			events:    []event.RawEvent{event.CursorMoved{X: 10, Y: 10}},
			wantDelta: input.Vec2{},
			wantPos:   input.Vec2{X: 10, Y: 10},
			wantErr:   input.ErrConfiguration,
		},
		{
			name:      "zero height only",
			ext:       input.Extent{Width: 100, Height: 0},
			events:    []event.RawEvent{event.CursorMoved{X: 25, Y: 10}},
			wantDelta: input.Vec2{X: 0.25},
			wantPos:   input.Vec2{X: 25, Y: 10},
			wantErr:   input.ErrConfiguration,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := input.NewSnapshot()
			err := reduce(t, s, tt.ext, tt.events...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantDelta, s.PointerDelta)
			assert.Equal(t, tt.wantPos, s.PointerPosition)
		})
	}
}

func TestReduceLastWriteWins(t *testing.T) {
	s := input.NewSnapshot()
	err := reduce(t, s, window,
		event.Wheel{Unit: event.Lines, X: 0, Y: 1},
		event.Wheel{Unit: event.Lines, X: 0, Y: -3},
		event.Motion{DX: 5, DY: 5},
		event.Motion{DX: -1, DY: 2},
		event.Axis{Axis: 0, Value: 0},
		event.Axis{Axis: 0, Value: 200},
		event.Axis{Axis: 1, Value: 150},
		event.Axis{Axis: 7, Value: 99},
	)
	require.NoError(t, err)

	assert.Equal(t, input.Vec2{X: 0, Y: -3}, s.WheelDelta)
	assert.Equal(t, input.Vec2{X: -1, Y: 2}, s.RawPointerDelta)
	assert.Equal(t, input.Vec2{X: 0.25, Y: 0.25}, s.AxisMotion)
}

func TestReduceText(t *testing.T) {
	s := input.NewSnapshot()
	require.NoError(t, reduce(t, s, window, event.Text("hé!")...))
	assert.Equal(t, "hé!", s.TextString())

	require.NoError(t, reduce(t, s, window, event.Char{Rune: 'x'}))
	assert.Equal(t, "x", s.TextString())
}

func TestReduceUnmappable(t *testing.T) {
	s := input.NewSnapshot()
	bad := event.Key{State: event.Pressed, Code: keyboard.KeyNone}
	err := reduce(t, s, window,
		bad,
		event.Button{State: event.Pressed, Button: mouse.Button(40)},
		press(keyboard.KeyZ),
		event.Unknown{Tag: 0x7f},
		nil,
	)
	require.ErrorIs(t, err, input.ErrUnmappableEvent)

	var ue *input.UnmappableEventError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, bad, ue.Event)

	assert.Equal(t, []keyboard.Key{keyboard.KeyZ}, s.KeysDown.Keys())
	assert.Zero(t, s.ButtonsDown)
}

func TestBeginFrameIdempotent(t *testing.T) {
	s := input.NewSnapshot()
	require.NoError(t, reduce(t, s, window,
		press(keyboard.KeyA),
		event.Button{State: event.Released, Button: mouse.ButtonMiddle},
		event.CursorMoved{X: 1, Y: 1},
		event.Motion{DX: 1, DY: 1},
		event.Wheel{Unit: event.Pixels, Y: 4},
		event.Char{Rune: 'a'},
	))

	s.BeginFrame()
	once := s.Clone()
	s.BeginFrame()
	assert.Equal(t, once, s.Clone())

	assert.True(t, s.KeysPressed.Empty())
	assert.Zero(t, s.ButtonsReleased)
	assert.Zero(t, s.PointerDelta)
	assert.Zero(t, s.RawPointerDelta)
	assert.Zero(t, s.WheelDelta)
	assert.Empty(t, s.Text)
	assert.True(t, s.KeyDown(keyboard.KeyA))
	assert.Equal(t, input.Vec2{X: 1, Y: 1}, s.PointerPosition)
}
