// Package debug provides logging infrastructure for semtheme.
// Console output goes to stderr at the configured level. When --debug is
// passed at startup, JSON records are additionally written at debug level to
// ~/.semtheme/debug.log, rotated by size.
package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	// LogFileName is the name of the debug log file.
	LogFileName = "debug.log"
	// LogDirName is the name of the directory containing the log file.
	LogDirName = ".semtheme"

	maxLogSizeMB  = 5
	maxLogBackups = 3
)

// Options configures Init.
type Options struct {
	// Debug enables the rotating debug log file.
	Debug bool
	// Level is the console level name ("debug", "info", "warn", ...).
	Level string
	// Console receives human-readable output. Defaults to stderr.
	Console io.Writer
}

var (
	mu      sync.RWMutex
	enabled bool
	logger  = zerolog.Nop()
	logFile *lumberjack.Logger

	// getLogPath is a function variable to allow overriding in tests.
	getLogPath = defaultGetLogPath
)

// Init initializes the process-wide logger.
func Init(opts Options) error {
	mu.Lock()
	defer mu.Unlock()

	level, err := parseLevel(opts.Level)
	if err != nil {
		return err
	}

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}
	consoleWriter := zerolog.LevelWriterAdapter{Writer: zerolog.ConsoleWriter{
		Out:        console,
		TimeFormat: time.Kitchen,
		NoColor:    !isTerminal(console),
	}}
	writers := []io.Writer{&levelFilter{min: level, w: consoleWriter}}

	enabled = opts.Debug
	if opts.Debug {
		logPath, err := getLogPath()
		if err != nil {
			return fmt.Errorf("determine log path: %w", err)
		}
		//nolint:gosec // G301: User config directory needs standard permissions
		if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
			return fmt.Errorf("create log directory: %w", err)
		}
		logFile = &lumberjack.Logger{
			Filename:   logPath,
			MaxSize:    maxLogSizeMB,
			MaxBackups: maxLogBackups,
		}
		writers = append(writers, logFile)
	}

	minLevel := level
	if opts.Debug {
		minLevel = zerolog.DebugLevel
	}
	logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(minLevel).
		With().Timestamp().Logger()

	if opts.Debug {
		logger.Debug().Str("started", time.Now().Format(time.RFC3339)).Msg("semtheme debug log started")
	}
	return nil
}

// Close flushes and closes the debug log file if open.
// Safe to call even if logging is disabled.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

// Logger returns the process-wide logger.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Component returns the process-wide logger tagged with a component name.
func Component(name string) zerolog.Logger {
	return Logger().With().Str("component", name).Logger()
}

// Logf writes a formatted debug message.
func Logf(format string, v ...any) {
	l := Logger()
	l.Debug().Msgf(format, v...)
}

// Enabled returns whether the debug log file is active.
func Enabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// defaultGetLogPath returns the path to the debug log file.
func defaultGetLogPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determine user home: %w", err)
	}
	return filepath.Join(home, LogDirName, LogFileName), nil
}

// GetLogPath returns the path to the debug log file.
func GetLogPath() (string, error) {
	return getLogPath()
}

func parseLevel(name string) (zerolog.Level, error) {
	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" {
		return zerolog.InfoLevel, nil
	}
	if name == "warning" {
		name = "warn"
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q", name)
	}
	return level, nil
}

// levelFilter keeps console output at its own level while the file sink
// receives debug records.
type levelFilter struct {
	min zerolog.Level
	w   zerolog.LevelWriter
}

func (f *levelFilter) Write(p []byte) (int, error) {
	return f.w.Write(p)
}

func (f *levelFilter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	if level < f.min {
		return len(p), nil
	}
	return f.w.WriteLevel(level, p)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
