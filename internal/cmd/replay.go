package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Alia5/inputframe/event"
	"github.com/Alia5/inputframe/input"
	"github.com/Alia5/inputframe/internal/log"
	"github.com/Alia5/inputframe/script"
)

// RecordingExt is the file extension of binary recordings.
const RecordingExt = ".ifrm"

// Replay feeds a scenario file or recording through the input core without a
// window and prints the snapshot after every frame.
type Replay struct {
	Input      string `arg:"" help:"Scenario (.yaml, .yml, .toml, .json) or recording (.ifrm)" type:"existingfile"`
	Format     string `help:"Output format" enum:"text,json,yaml" default:"text" env:"INPUTFRAME_REPLAY_FORMAT"`
	Output     string `help:"Write snapshots to this file instead of stdout" env:"INPUTFRAME_REPLAY_OUTPUT"`
	HideCursor bool   `help:"Desired cursor mode for recordings (scripts carry their own)" default:"true" negatable:"" env:"INPUTFRAME_REPLAY_HIDE_CURSOR"`
	Strict     bool   `help:"Fail when a frame reports a problem" env:"INPUTFRAME_REPLAY_STRICT"`
}

// Run is called by Kong when the replay command is executed.
func (r *Replay) Run(logger *slog.Logger, eventLogger log.EventLogger) error {
	// A truncated recording still yields the frames before the damage; those
	// are replayed and the load error is returned afterwards.
	steps, loadErr := r.load(logger)
	if loadErr != nil && len(steps) == 0 {
		return loadErr
	}
	if err := r.run(steps, logger, eventLogger); err != nil {
		return err
	}
	if loadErr != nil {
		return fmt.Errorf("replay stopped early: %w", loadErr)
	}
	return nil
}

func (r *Replay) run(steps []script.Step, logger *slog.Logger, eventLogger log.EventLogger) error {
	out := io.Writer(os.Stdout)
	if r.Output != "" {
		f, err := os.Create(r.Output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}
	bw := bufio.NewWriter(out)
	if err := r.replay(steps, bw, logger, eventLogger); err != nil {
		_ = bw.Flush()
		return err
	}
	return bw.Flush()
}

func (r *Replay) load(logger *slog.Logger) ([]script.Step, error) {
	if strings.EqualFold(filepath.Ext(r.Input), RecordingExt) {
		f, err := os.Open(r.Input)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return readRecording(f, r.HideCursor, logger)
	}

	s, err := script.Load(r.Input)
	if err != nil {
		return nil, err
	}
	steps, err := s.Steps()
	if err != nil {
		if r.Strict {
			return nil, fmt.Errorf("invalid script: %w", err)
		}
		for _, p := range problems(err) {
			logger.Warn("skipped script entry", "file", r.Input, "error", p)
		}
	}
	return steps, nil
}

// readRecording decodes every frame of a recording. Malformed records are
// logged and dropped; a truncated tail ends the recording with an error.
func readRecording(rd io.Reader, hide bool, logger *slog.Logger) ([]script.Step, error) {
	dec := event.NewDecoder(rd)
	var steps []script.Step
	for {
		f, err := dec.ReadFrame()
		if errors.Is(err, io.EOF) {
			return steps, nil
		}
		var skip *event.SkipError
		if errors.As(err, &skip) {
			logger.Warn("skipped malformed records", "frame", len(steps), "count", len(skip.Errs))
			err = nil
		}
		if err != nil {
			return steps, fmt.Errorf("frame %d: %w", len(steps), err)
		}
		steps = append(steps, script.Step{Frame: f, HideCursor: hide})
	}
}

func (r *Replay) replay(steps []script.Step, w io.Writer, logger *slog.Logger, eventLogger log.EventLogger) error {
	in := input.New(logger)
	cur := &headlessCursor{logger: logger}
	rw := &reportWriter{w: w, format: r.Format}

	for i, st := range steps {
		eventLogger.Log("replay", st.Frame)
		in.SetHideCursor(st.HideCursor)
		ext := input.Extent{Width: st.Width, Height: st.Height}
		err := in.Update(cur, ext, st.Events)
		if err != nil && r.Strict {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		if err := rw.write(newFrameReport(i, ext, in, err)); err != nil {
			return err
		}
	}
	logger.Debug("replay finished", "frames", len(steps))
	return rw.flush()
}

// headlessCursor accepts every cursor request and only logs it.
type headlessCursor struct {
	logger *slog.Logger
}

func (c *headlessCursor) SetCursorVisible(visible bool) error {
	c.logger.Log(context.Background(), log.LevelTrace, "cursor visibility", "visible", visible)
	return nil
}

func (c *headlessCursor) SetCursorGrab(grab bool) error {
	c.logger.Log(context.Background(), log.LevelTrace, "cursor grab", "grab", grab)
	return nil
}

func (c *headlessCursor) SetCursorPosition(x, y float32) error {
	c.logger.Log(context.Background(), log.LevelTrace, "cursor position", "x", x, "y", y)
	return nil
}
