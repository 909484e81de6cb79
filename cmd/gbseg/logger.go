package main

import (
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/gbseg/segment"
)

// newLogger returns a console logger writing to w at the named level.
func newLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}

	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}

// progress logs a line every n merge decisions. n ≤ 0 returns nil so the
// engine skips the callback entirely.
func progress(log zerolog.Logger, n int) func(segment.Decision) {
	if n <= 0 {
		return nil
	}
	var decided, accepted int

	return func(d segment.Decision) {
		decided++
		if d.Accepted {
			accepted++
		}
		if decided%n == 0 {
			log.Info().
				Str("component", "merge").
				Int("step", d.Step).
				Int("decided", decided).
				Int("accepted", accepted).
				Float64("weight", d.Edge.Weight).
				Msg("progress")
		}
	}
}
