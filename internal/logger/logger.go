// Package logger configures the application's structured logging.
//
// It uses zerolog and writes one JSON object per line. Timestamps are
// rendered in the configured location so request, database and tracing
// logs share the same clock.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a logger writing JSON lines to w at the given level.
// An unknown level falls back to info.
func New(w io.Writer, level string, loc *time.Location) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	if loc == nil {
		loc = time.UTC
	}

	return zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Logger().
		Hook(locationHook{loc: loc})
}

// NewDefault returns a stdout logger configured from level and timezone names.
func NewDefault(level, timezone string) (zerolog.Logger, *time.Location) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
	}
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.TimestampFunc = func() time.Time { return time.Now().In(loc) }
	return New(os.Stdout, level, loc), loc
}

// locationHook adds the timezone name so consumers can tell the clock apart.
type locationHook struct {
	loc *time.Location
}

func (h locationHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	e.Str("tz", h.loc.String())
}
