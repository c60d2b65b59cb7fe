package main

import (
	"log/slog"
	"os"
	"runtime/debug"
	"time"

	"github.com/lmittmann/tint"

	"github.com/calebmorten/studypilot/config"
)

// setupLogging installs the process-wide logger. Development runs get a
// colorized Info-level sink; packaged builds only surface warnings so the
// shell stays quiet in the background.
func setupLogging() {
	if debugRun() {
		slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: time.Kitchen,
		})))
		return
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))
}

// debugRun reports whether this is a development run: either requested
// via the environment or a `go run`/workspace build without a version.
func debugRun() bool {
	if config.Debug() {
		return true
	}
	if info, ok := debug.ReadBuildInfo(); ok && info != nil {
		return info.Main.Version == "" || info.Main.Version == "(devel)"
	}
	return false
}
