package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Alia5/inputframe/internal/log"
)

// Watch shows the live snapshot for terminal input.
type Watch struct {
	Rate       time.Duration `help:"Update interval" default:"16ms" env:"INPUTFRAME_WATCH_RATE"`
	HideCursor bool          `help:"Start with the pointer grabbed (mouse reporting on)" default:"true" negatable:"" env:"INPUTFRAME_WATCH_HIDE_CURSOR"`
}

// Run is called by Kong when the watch command is executed.
func (w *Watch) Run(logger *slog.Logger, eventLogger log.EventLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	screen, err := openScreen()
	if err != nil {
		return err
	}
	defer screen.Fini()

	s := newSession(screen, logger, eventLogger, w.Rate, w.HideCursor)
	s.title = "watch"
	err = s.run(ctx)
	logger.Info("watch stopped", "frames", s.frames)
	return err
}
