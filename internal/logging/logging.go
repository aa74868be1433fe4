// Package logging wires a rotated, structured server log, upgrading the
// teacher's ad hoc fmt.Printf calls to the pack's daemon-logging idiom
// (logrus + lumberjack) since orbitald is expected to run unattended
// under a supervisor.
package logging

import (
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures the rotated log file; an empty Path logs to
// stderr only (useful for the dev/Ebiten backend run from a terminal).
type Options struct {
	Path       string
	Level      string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// New builds the server's root logger. Fields attached downstream via
// .WithField/.WithFields (orbitald's "component", the event loop's "fd",
// a failed display resize's "width"/"height") let a log aggregator
// correlate a supervisor-triggered restart with the last lines a crashing
// server wrote.
func New(opts Options) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	if level, err := logrus.ParseLevel(opts.Level); err == nil {
		log.SetLevel(level)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}

	if opts.Path != "" {
		log.SetOutput(&lumberjack.Logger{
			Filename:   opts.Path,
			MaxSize:    orDefault(opts.MaxSizeMB, 50),
			MaxBackups: orDefault(opts.MaxBackups, 5),
			MaxAge:     orDefault(opts.MaxAgeDays, 28),
			Compress:   true,
		})
	}
	return log
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
