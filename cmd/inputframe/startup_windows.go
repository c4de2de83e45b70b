//go:build windows

package main

import (
	"log/slog"
	"os"

	"github.com/Alia5/inputframe/internal/util"
)

func init() {
	if len(os.Args) < 2 && util.IsRunFromGUI() {
		slog.Info("Detected GUI startup, running 'watch'")
		slog.Warn("Run from a terminal for replay and record")
		os.Args = append(os.Args, "watch")
	}
}
