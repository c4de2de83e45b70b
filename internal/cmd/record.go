package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/Alia5/inputframe/event"
	"github.com/Alia5/inputframe/internal/log"
)

// Record captures terminal input into a recording that replay can play back.
type Record struct {
	Output     string        `arg:"" help:"Recording file to write (.ifrm)"`
	Rate       time.Duration `help:"Update interval" default:"16ms" env:"INPUTFRAME_RECORD_RATE"`
	Duration   time.Duration `help:"Stop after this long; 0 records until Esc" default:"0s" env:"INPUTFRAME_RECORD_DURATION"`
	HideCursor bool          `help:"Start with the pointer grabbed (mouse reporting on)" default:"true" negatable:"" env:"INPUTFRAME_RECORD_HIDE_CURSOR"`
	KeepEmpty  bool          `help:"Also record frames without events" env:"INPUTFRAME_RECORD_KEEP_EMPTY"`
	Force      bool          `help:"Overwrite if the file already exists"`
}

// Run is called by Kong when the record command is executed.
func (r *Record) Run(logger *slog.Logger, eventLogger log.EventLogger) error {
	if !strings.EqualFold(filepath.Ext(r.Output), RecordingExt) {
		return fmt.Errorf("recording must have the %s extension", RecordingExt)
	}
	if !r.Force {
		if _, err := os.Stat(r.Output); err == nil {
			return errors.New("destination exists; use --force to overwrite")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if r.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Duration)
		defer cancel()
	}

	screen, err := openScreen()
	if err != nil {
		return err
	}
	defer screen.Fini()

	f, err := os.Create(r.Output)
	if err != nil {
		return fmt.Errorf("failed to create recording: %w", err)
	}
	defer f.Close()
	bw := bufio.NewWriter(f)

	s := newSession(screen, logger, eventLogger, r.Rate, r.HideCursor)
	s.title = "record"
	written, err := r.record(ctx, s, event.NewEncoder(bw))
	if ferr := bw.Flush(); err == nil {
		err = ferr
	}
	logger.Info("recording stopped", "file", r.Output, "frames", written)
	return err
}

func (r *Record) record(ctx context.Context, s *session, enc *event.Encoder) (int, error) {
	written := 0
	s.onFrame = func(f event.Frame) error {
		if len(f.Events) == 0 && !r.KeepEmpty {
			return nil
		}
		if err := enc.WriteFrame(f); err != nil {
			return fmt.Errorf("failed to write frame: %w", err)
		}
		written++
		return nil
	}
	err := s.run(ctx)
	return written, err
}
