package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation settings for the optional log file.
const (
	LogMaxSizeMB  = 10
	LogMaxBackups = 3
	LogMaxAgeDays = 30
)

// zerologConfigOnce ensures zerolog global settings are configured exactly once.
var zerologConfigOnce sync.Once //nolint:gochecknoglobals // One-time configuration

// Options controls how New builds a logger.
type Options struct {
	// Verbose selects debug level.
	Verbose bool
	// Quiet selects warn level. Ignored when Verbose is set.
	Quiet bool
	// File, when set, also writes JSON logs to a rotating file at this path.
	File string
	// Console overrides the console writer. Defaults to stderr, pretty-printed on a TTY.
	Console io.Writer
}

// New creates a zerolog.Logger from opts and installs it as the zerolog global logger.
//
// Log levels are set as follows:
//   - Verbose: Debug level
//   - Quiet: Warn level
//   - default: Info level
//
// The returned closer releases the log file and is never nil.
// A log file that cannot be created is reported through the error while the
// returned logger still writes to the console, so callers may proceed.
func New(opts Options) (zerolog.Logger, io.Closer, error) {
	zerologConfigOnce.Do(func() {
		zerolog.TimeFieldFormat = time.RFC3339
	})

	console := opts.Console
	if console == nil {
		console = selectOutput()
	}

	var (
		writer io.Writer = console
		closer io.Closer = nopCloser{}
		err    error
	)

	if opts.File != "" {
		var fileWriter io.WriteCloser
		fileWriter, err = createLogFileWriter(opts.File)
		if err == nil {
			writer = zerolog.MultiLevelWriter(console, fileWriter)
			closer = fileWriter
		}
	}

	logger := zerolog.New(writer).
		Level(selectLevel(opts.Verbose, opts.Quiet)).
		Hook(NewSensitiveDataHook()).
		With().Timestamp().Logger()

	log.Logger = logger
	return logger, closer, err
}

// selectLevel determines the appropriate log level based on flags.
func selectLevel(verbose, quiet bool) zerolog.Level {
	switch {
	case verbose:
		return zerolog.DebugLevel
	case quiet:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}

// selectOutput returns a console writer on a TTY without NO_COLOR, JSON on stderr otherwise.
func selectOutput() io.Writer {
	if term.IsTerminal(int(os.Stderr.Fd())) && os.Getenv("NO_COLOR") == "" {
		return zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.Kitchen,
		}
	}
	return os.Stderr
}

// nopCloser is returned when no log file is open.
type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// filteringWriteCloser redacts sensitive data before it reaches the log file.
type filteringWriteCloser struct {
	filter *FilteringWriter
	closer io.Closer
}

// Write implements io.Writer by delegating to the filtering writer.
func (fwc *filteringWriteCloser) Write(p []byte) (n int, err error) {
	return fwc.filter.Write(p)
}

// Close implements io.Closer by delegating to the underlying closer.
func (fwc *filteringWriteCloser) Close() error {
	return fwc.closer.Close()
}

// createLogFileWriter creates a rotating, filtering writer for path.
func createLogFileWriter(path string) (io.WriteCloser, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	lj := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    LogMaxSizeMB,
		MaxBackups: LogMaxBackups,
		MaxAge:     LogMaxAgeDays,
		Compress:   true,
	}

	return &filteringWriteCloser{
		filter: NewFilteringWriter(lj),
		closer: lj,
	}, nil
}
