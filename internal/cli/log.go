// Package cli implements the honeycomb command-line interface.
//
// The CLI computes honeycomb layouts, renders them to SVG, PNG or PDF,
// serves them over HTTP and previews them in the terminal. It is built on
// cobra and logs through charmbracelet/log.
//
// # Commands
//
// The main commands are:
//   - layout: Compute a layout and write it as JSON
//   - visualize: Render a layout file to SVG, PNG or PDF
//   - render: Compute and render in one step
//   - preview: Interactive terminal preview with a settings panel
//   - serve: Run the HTTP API
//   - preset: Save and recall named settings
//   - settings: Create or locate the settings file
//   - cache: Manage the local artifact cache
//
// # Logging
//
// Logs go to stderr; status lines go to stdout. The level defaults to info
// and can be set with HONEYCOMB_LOG_LEVEL (debug, info, warn, error).
// --verbose (-v) always selects debug, which adds per-stage timings such as
// "layout computed cells=220 layers=6 elapsed=1ms".
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// logLevelEnv names the environment variable that sets the default level.
const logLevelEnv = "HONEYCOMB_LOG_LEVEL"

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          appName,
	})
}

// levelFromEnv returns the level named by HONEYCOMB_LOG_LEVEL, or fallback
// when it is unset.
func levelFromEnv(fallback log.Level) (log.Level, error) {
	v := os.Getenv(logLevelEnv)
	if v == "" {
		return fallback, nil
	}
	level, err := log.ParseLevel(v)
	if err != nil {
		return fallback, fmt.Errorf("%s: %w", logLevelEnv, err)
	}
	return level, nil
}

// step times one stage of a command. Stage timings are debug output, so
// they only appear with --verbose; startup milestones use milestone.
type step struct {
	logger *log.Logger
	level  log.Level
	start  time.Time
}

func newStep(l *log.Logger) *step {
	return &step{logger: l, level: log.DebugLevel, start: time.Now()}
}

func newMilestone(l *log.Logger) *step {
	return &step{logger: l, level: log.InfoLevel, start: time.Now()}
}

// done logs msg with keyvals and the elapsed time rounded to milliseconds.
func (s *step) done(msg string, keyvals ...any) {
	elapsed := time.Since(s.start).Round(time.Millisecond)
	s.logger.Log(s.level, msg, append(keyvals, "elapsed", elapsed)...)
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger installed by the root command, or
// log.Default() when ctx carries none.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
