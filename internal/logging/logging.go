// Package logging builds the structured loggers used by the starfield tools.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options selects level, format and destination.
type Options struct {
	Level string
	// Format is "text" or "json".
	Format string
	// File, when set, receives rotated log output instead of stderr.
	File       string
	MaxSizeMB  int
	MaxBackups int
}

// DefaultOptions logs info and above as text to stderr.
func DefaultOptions() Options {
	return Options{Level: "info", Format: "text", MaxSizeMB: 10, MaxBackups: 3}
}

// New returns a logger configured by opts. The returned closer releases the
// log file, if any.
func New(opts Options) (*logrus.Logger, io.Closer, error) {
	level := logrus.InfoLevel
	if opts.Level != "" {
		parsed, err := logrus.ParseLevel(opts.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("log level: %w", err)
		}
		level = parsed
	}

	l := logrus.New()
	l.SetLevel(level)
	switch opts.Format {
	case "", "text":
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, nil, fmt.Errorf("log format %q: want text or json", opts.Format)
	}

	var closer io.Closer = nopCloser{}
	if opts.File != "" {
		rotated := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
		}
		l.SetOutput(rotated)
		closer = rotated
	} else {
		l.SetOutput(os.Stderr)
	}
	return l, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
