package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	yaml "gopkg.in/yaml.v3"

	"github.com/Alia5/inputframe/input"
	"github.com/Alia5/inputframe/keyboard"
	"github.com/Alia5/inputframe/mouse"
)

// FrameReport is the printable form of one updated snapshot.
type FrameReport struct {
	Frame           int        `json:"frame" yaml:"frame"`
	Width           int        `json:"width" yaml:"width"`
	Height          int        `json:"height" yaml:"height"`
	CursorMode      string     `json:"cursorMode" yaml:"cursorMode"`
	HideCursor      bool       `json:"hideCursor" yaml:"hideCursor"`
	KeysDown        []string   `json:"keysDown" yaml:"keysDown,flow"`
	KeysPressed     []string   `json:"keysPressed" yaml:"keysPressed,flow"`
	KeysReleased    []string   `json:"keysReleased" yaml:"keysReleased,flow"`
	ButtonsDown     []string   `json:"buttonsDown" yaml:"buttonsDown,flow"`
	ButtonsPressed  []string   `json:"buttonsPressed" yaml:"buttonsPressed,flow"`
	ButtonsReleased []string   `json:"buttonsReleased" yaml:"buttonsReleased,flow"`
	PointerPosition [2]float32 `json:"pointerPosition" yaml:"pointerPosition,flow"`
	PointerDelta    [2]float32 `json:"pointerDelta" yaml:"pointerDelta,flow"`
	RawPointerDelta [2]float32 `json:"rawPointerDelta" yaml:"rawPointerDelta,flow"`
	AxisMotion      [2]float32 `json:"axisMotion" yaml:"axisMotion,flow"`
	WheelDelta      [2]float32 `json:"wheelDelta" yaml:"wheelDelta,flow"`
	Text            string     `json:"text" yaml:"text"`
	Problems        []string   `json:"problems,omitempty" yaml:"problems,omitempty"`
}

func newFrameReport(n int, ext input.Extent, in *input.Input, err error) FrameReport {
	s := in.Snapshot()
	r := FrameReport{
		Frame:           n,
		Width:           ext.Width,
		Height:          ext.Height,
		CursorMode:      in.CursorMode().String(),
		HideCursor:      s.HideCursor,
		KeysDown:        keyNames(s.KeysDown.Keys()),
		KeysPressed:     keyNames(s.KeysPressed.Keys()),
		KeysReleased:    keyNames(s.KeysReleased.Keys()),
		ButtonsDown:     buttonNames(s.ButtonsDown.Buttons()),
		ButtonsPressed:  buttonNames(s.ButtonsPressed.Buttons()),
		ButtonsReleased: buttonNames(s.ButtonsReleased.Buttons()),
		PointerPosition: vec(s.PointerPosition),
		PointerDelta:    vec(s.PointerDelta),
		RawPointerDelta: vec(s.RawPointerDelta),
		AxisMotion:      vec(s.AxisMotion),
		WheelDelta:      vec(s.WheelDelta),
		Text:            s.TextString(),
	}
	r.Problems = problems(err)
	return r
}

func vec(v input.Vec2) [2]float32 { return [2]float32{v.X, v.Y} }

func keyNames(keys []keyboard.Key) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = k.String()
	}
	return out
}

func buttonNames(buttons []mouse.Button) []string {
	out := make([]string, len(buttons))
	for i, b := range buttons {
		out[i] = b.String()
	}
	return out
}

// problems flattens a joined error into its messages.
func problems(err error) []string {
	if err == nil {
		return nil
	}
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		var out []string
		for _, e := range j.Unwrap() {
			out = append(out, problems(e)...)
		}
		return out
	}
	return []string{err.Error()}
}

// String renders the report as a single line.
func (r FrameReport) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "frame %d %dx%d cursor=%s", r.Frame, r.Width, r.Height, r.CursorMode)
	fmt.Fprintf(&b, " down={%s} pressed={%s} released={%s}",
		strings.Join(r.KeysDown, " "), strings.Join(r.KeysPressed, " "), strings.Join(r.KeysReleased, " "))
	fmt.Fprintf(&b, " buttons={%s} bpressed={%s} breleased={%s}",
		strings.Join(r.ButtonsDown, " "), strings.Join(r.ButtonsPressed, " "), strings.Join(r.ButtonsReleased, " "))
	fmt.Fprintf(&b, " pos=%v delta=%v raw=%v axis=%v wheel=%v text=%q",
		r.PointerPosition, r.PointerDelta, r.RawPointerDelta, r.AxisMotion, r.WheelDelta, r.Text)
	for _, p := range r.Problems {
		fmt.Fprintf(&b, "\n  ! %s", p)
	}
	return b.String()
}

// reportWriter prints reports in one of the supported output formats.
type reportWriter struct {
	w       io.Writer
	format  string
	reports []FrameReport
}

func (rw *reportWriter) write(r FrameReport) error {
	switch rw.format {
	case "json", "yaml":
		rw.reports = append(rw.reports, r)
		return nil
	default:
		_, err := fmt.Fprintln(rw.w, r.String())
		return err
	}
}

func (rw *reportWriter) flush() error {
	switch rw.format {
	case "json":
		enc := json.NewEncoder(rw.w)
		enc.SetIndent("", "  ")
		return enc.Encode(rw.reports)
	case "yaml":
		enc := yaml.NewEncoder(rw.w)
		enc.SetIndent(2)
		if err := enc.Encode(rw.reports); err != nil {
			return err
		}
		return enc.Close()
	}
	return nil
}
