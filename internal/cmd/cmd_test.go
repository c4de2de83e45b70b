package cmd

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	toml "github.com/pelletier/go-toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v3"

	"github.com/Alia5/inputframe/event"
	"github.com/Alia5/inputframe/internal/log"
	"github.com/Alia5/inputframe/keyboard"
)

const scenario = `
window: {width: 800, height: 600}
frames:
  - events:
      - {kind: key, state: pressed, key: a}
      - {kind: cursor, x: 200, y: 150}
  - events:
      - {kind: key, state: released, key: a}
      - {kind: wheel, y: 1}
      - {kind: wheel, y: -3}
  - hideCursor: false
    events:
      - {kind: key, state: pressed, key: nosuchkey}
`

func discard() *slog.Logger { return slog.New(slog.DiscardHandler) }

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(data), 0o644))
	return p
}

func TestReplayScriptText(t *testing.T) {
	r := &Replay{Input: writeFile(t, "s.yaml", scenario), Format: "text"}
	steps, err := r.load(discard())
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, r.replay(steps, &out, discard(), log.NewEventLogger(nil)))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "frame 0 800x600 cursor=grabbed down={A} pressed={A} released={}")
	assert.Contains(t, lines[0], "delta=[0.25 0.25]")
	assert.Contains(t, lines[1], "down={} pressed={} released={A}")
	assert.Contains(t, lines[1], "wheel=[0 -3]")
	assert.Contains(t, lines[2], "frame 2 800x600 cursor=free")
	assert.Contains(t, lines[3], "! unmappable event")
}

func TestReplayStrict(t *testing.T) {
	r := &Replay{Input: writeFile(t, "s.yaml", scenario), Format: "text", Strict: true}
	steps, err := r.load(discard())
	require.NoError(t, err)

	err = r.replay(steps, &bytes.Buffer{}, discard(), log.NewEventLogger(nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "frame 2")

	r = &Replay{Input: writeFile(t, "bad.yaml", "frames:\n  - events:\n      - {kind: teleport}\n"), Strict: true}
	_, err = r.load(discard())
	assert.Error(t, err)
}

func TestReplayRecordingJSON(t *testing.T) {
	var rec bytes.Buffer
	enc := event.NewEncoder(&rec)
	require.NoError(t, enc.WriteFrame(event.Frame{Width: 100, Height: 50, Events: []event.RawEvent{
		event.Key{State: event.Pressed, Code: keyboard.KeyLeftShift},
		event.Char{Rune: 'Q'},
	}}))
	require.NoError(t, enc.WriteFrame(event.Frame{Width: 100, Height: 50, Events: []event.RawEvent{
		event.Motion{DX: 3, DY: -2},
	}}))

	r := &Replay{Input: writeFile(t, "in"+RecordingExt, rec.String()), Format: "json", HideCursor: false}
	steps, err := r.load(discard())
	require.NoError(t, err)
	require.Len(t, steps, 2)

	var out bytes.Buffer
	require.NoError(t, r.replay(steps, &out, discard(), log.NewEventLogger(nil)))

	var reports []FrameReport
	require.NoError(t, json.Unmarshal(out.Bytes(), &reports))
	require.Len(t, reports, 2)
	assert.Equal(t, []string{"LeftShift"}, reports[0].KeysDown)
	assert.Equal(t, "Q", reports[0].Text)
	assert.Equal(t, "free", reports[0].CursorMode)
	assert.Equal(t, [2]float32{3, -2}, reports[1].RawPointerDelta)
	assert.Equal(t, []string{"LeftShift"}, reports[1].KeysDown)
	assert.Empty(t, reports[1].KeysPressed)
}

func TestReadRecordingTruncated(t *testing.T) {
	var rec bytes.Buffer
	require.NoError(t, event.NewEncoder(&rec).WriteFrame(event.Frame{Width: 1, Height: 1, Events: event.Text("ab")}))
	b := rec.Bytes()

	steps, err := readRecording(bytes.NewReader(b[:len(b)-1]), true, discard())
	assert.Error(t, err)
	assert.Empty(t, steps)
}

func TestReplayRunTruncatedRecording(t *testing.T) {
	var rec bytes.Buffer
	enc := event.NewEncoder(&rec)
	require.NoError(t, enc.WriteFrame(event.Frame{Width: 10, Height: 10, Events: event.Text("ok")}))
	require.NoError(t, enc.WriteFrame(event.Frame{Width: 10, Height: 10, Events: event.Text("ab")}))
	b := rec.Bytes()

	out := filepath.Join(t.TempDir(), "out.txt")
	r := &Replay{
		Input:  writeFile(t, "cut"+RecordingExt, string(b[:len(b)-1])),
		Format: "text",
		Output: out,
	}
	err := r.Run(discard(), log.NewEventLogger(nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "frame 1")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "frame 0 10x10")
	assert.Contains(t, lines[0], `text="ok"`)
}

func TestReplayYAMLOutput(t *testing.T) {
	r := &Replay{Input: writeFile(t, "s.yml", scenario), Format: "yaml"}
	steps, err := r.load(discard())
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, r.replay(steps, &out, discard(), log.NewEventLogger(nil)))

	var reports []FrameReport
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &reports))
	require.Len(t, reports, 3)
	assert.Equal(t, [2]float32{0.25, 0.25}, reports[0].PointerDelta)
	assert.NotEmpty(t, reports[2].Problems)
}

func TestConfigInit(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		command string
		format  string
		check   func(t *testing.T, data []byte)
	}{
		{
			name:    "replay json",
			command: "replay",
			format:  "json",
			check: func(t *testing.T, data []byte) {
				var m map[string]any
				require.NoError(t, json.Unmarshal(data, &m))
				assert.Equal(t, "text", m["format"])
				assert.Equal(t, true, m["hide_cursor"])
				assert.NotContains(t, m, "input")
			},
		},
		{
			name:    "watch yaml",
			command: "watch",
			format:  "yaml",
			check: func(t *testing.T, data []byte) {
				var m map[string]any
				require.NoError(t, yaml.Unmarshal(data, &m))
				assert.Equal(t, "16ms", m["rate"])
			},
		},
		{
			name:    "record toml",
			command: "record",
			format:  "toml",
			check: func(t *testing.T, data []byte) {
				tree, err := toml.LoadBytes(data)
				require.NoError(t, err)
				assert.Equal(t, "0s", tree.Get("duration"))
				assert.Equal(t, false, tree.Get("keep_empty"))
				assert.False(t, tree.Has("output"))
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dest := filepath.Join(dir, tt.command+"."+tt.format)
			c := &ConfigInit{Command: tt.command, Format: tt.format, Output: dest}
			require.NoError(t, c.Run())
			data, err := os.ReadFile(dest)
			require.NoError(t, err)
			tt.check(t, data)

			assert.Error(t, c.Run(), "existing file without --force")
			c.Force = true
			assert.NoError(t, c.Run())
		})
	}
}

func newTestSession(t *testing.T) (*session, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)
	return newSession(screen, discard(), log.NewEventLogger(nil), time.Millisecond, true), screen
}

func TestSessionQuitsOnEscape(t *testing.T) {
	s, screen := newTestSession(t)

	screen.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	done := make(chan error, 1)
	go func() { done <- s.run(t.Context()) }()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("session did not stop on Escape")
	}
	assert.Positive(t, s.frames)
}

func TestSessionToggleAndDraw(t *testing.T) {
	s, screen := newTestSession(t)

	quit, err := s.tick()
	require.NoError(t, err)
	assert.False(t, quit)
	assert.True(t, s.win.Grabbed())

	require.NoError(t, screen.PostEvent(tcell.NewEventKey(tcell.KeyF2, 0, tcell.ModNone)))
	require.Eventually(t, func() bool { return screen.HasPendingEvent() }, time.Second, time.Millisecond)
	_, err = s.tick()
	require.NoError(t, err)
	assert.False(t, s.in.HideCursor())

	_, err = s.tick()
	require.NoError(t, err)
	assert.False(t, s.win.Grabbed())

	cells, w, _ := screen.GetContents()
	var first strings.Builder
	for x := 0; x < w; x++ {
		if len(cells[x].Runes) > 0 {
			first.WriteRune(cells[x].Runes[0])
		}
	}
	assert.True(t, strings.HasPrefix(first.String(), "inputframe  frame 2"))
}

func TestRecordWritesFrames(t *testing.T) {
	s, screen := newTestSession(t)
	screen.InjectKey(tcell.KeyRune, 'h', tcell.ModNone)
	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	var buf bytes.Buffer
	r := &Record{}
	written, err := r.record(t.Context(), s, event.NewEncoder(&buf))
	require.NoError(t, err)
	require.Positive(t, written)

	steps, err := readRecording(&buf, true, discard())
	require.NoError(t, err)
	require.Len(t, steps, written)

	var all []event.RawEvent
	for _, st := range steps {
		assert.Equal(t, 80, st.Width)
		all = append(all, st.Events...)
	}
	assert.Contains(t, all, event.Char{Rune: 'h'})
	assert.Contains(t, all, event.Key{State: event.Pressed, Code: keyboard.KeyEscape})
}
