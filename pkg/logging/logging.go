// Package logging builds the structured logger shared by every command.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config is the subset of the application configuration logging reads.
type Config interface {
	LogFile() string
	LogLevel() string
}

// Options controls where log lines go.
type Options struct {
	// Stderr is used when no log file is configured. Nil discards.
	Stderr io.Writer
	// Prefix is printed before every line.
	Prefix string
}

// New builds a logger from cfg. A configured log_file always wins over
// Stderr and is rotated by lumberjack.
func New(cfg Config, o Options) (*log.Logger, io.Closer, error) {
	level := log.InfoLevel
	if cfg != nil && cfg.LogLevel() != "" {
		l, err := log.ParseLevel(cfg.LogLevel())
		if err != nil {
			return nil, nil, fmt.Errorf("logging: %w", err)
		}
		level = l
	}

	var (
		out    io.Writer = io.Discard
		closer io.Closer = nopCloser{}
	)
	if o.Stderr != nil {
		out = o.Stderr
	}
	file := ""
	if cfg != nil {
		file = cfg.LogFile()
	}
	if file != "" {
		rotating := &lumberjack.Logger{
			Filename:   file,
			MaxSize:    5, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}
		out, closer = rotating, rotating
	}

	logger := log.NewWithOptions(out, log.Options{
		Level:           level,
		Prefix:          o.Prefix,
		ReportTimestamp: file != "",
		TimeFormat:      time.RFC3339,
	})
	return logger, closer, nil
}

// Stderr is the default CLI destination.
func Stderr() Options {
	return Options{Stderr: os.Stderr, Prefix: "onthisday"}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
