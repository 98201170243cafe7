package logging

import (
	"io"
	"os"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxLogSizeMB  = 10
	maxLogBackups = 3
	maxLogAgeDays = 30
)

// Options configures the process-wide logger.
type Options struct {
	Verbose bool
	LogFile string // when set, logs are also written to this rotated file
}

// Setup configures logrus the same way for every entry point: colored text on
// stderr, debug level when verbose or DEBUG=true. The returned closer flushes
// the log file, if any.
func Setup(opts Options) io.Closer {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   opts.LogFile == "",
		FullTimestamp: true,
	})

	logger.SetLevel(logger.InfoLevel)
	if opts.Verbose || os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	if opts.LogFile == "" {
		logger.SetOutput(os.Stderr)
		return nopCloser{}
	}

	file := &lumberjack.Logger{
		Filename:   opts.LogFile,
		MaxSize:    maxLogSizeMB,
		MaxBackups: maxLogBackups,
		MaxAge:     maxLogAgeDays,
	}
	logger.SetOutput(io.MultiWriter(os.Stderr, file))
	return file
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
