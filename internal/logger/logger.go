package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Level represents the severity of a log message
type Level int

// Log levels
const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
	FATAL
)

// levelColors maps log levels to ANSI color codes
var levelColors = map[Level]string{
	DEBUG: "\033[36m", // Cyan
	INFO:  "\033[32m", // Green
	WARN:  "\033[33m", // Yellow
	ERROR: "\033[31m", // Red
	FATAL: "\033[35m", // Magenta
}

// levelPrefixes maps log levels to text prefixes
var levelPrefixes = map[Level]string{
	DEBUG: "DEBUG",
	INFO:  "INFO ",
	WARN:  "WARN ",
	ERROR: "ERROR",
	FATAL: "FATAL",
}

// ParseLevel maps a level name to a Level, defaulting to INFO
func ParseLevel(name string) Level {
	switch strings.ToLower(name) {
	case "debug":
		return DEBUG
	case "info":
		return INFO
	case "warn":
		return WARN
	case "error":
		return ERROR
	case "fatal":
		return FATAL
	default:
		return INFO
	}
}

// Logger is a leveled console/file logger. Its Printf method satisfies the
// renderer's core.Logger interface, logging at INFO.
type Logger struct {
	level     Level
	logger    *log.Logger
	file      *os.File
	useColors bool
}

// New creates a logger writing to stdout at the given level name
func New(levelName string) *Logger {
	l := &Logger{
		level:     ParseLevel(levelName),
		logger:    log.New(os.Stdout, "", 0), // Prefix is formatted manually
		useColors: true,
	}

	// Disable colors when stdout is not a terminal
	if fileInfo, _ := os.Stdout.Stat(); (fileInfo.Mode() & os.ModeCharDevice) == 0 {
		l.useColors = false
	}

	return l
}

// NewFileLogger creates a logger that writes to a file
func NewFileLogger(levelName, filePath string) (*Logger, error) {
	file, err := openLogFile(filePath)
	if err != nil {
		return nil, err
	}

	l := New(levelName)
	l.logger.SetOutput(file)
	l.file = file
	l.useColors = false
	return l, nil
}

// NewMultiLogger creates a logger that writes to both stdout and a file
func NewMultiLogger(levelName, filePath string) (*Logger, error) {
	file, err := openLogFile(filePath)
	if err != nil {
		return nil, err
	}

	l := New(levelName)
	l.logger.SetOutput(io.MultiWriter(os.Stdout, file))
	l.file = file
	return l, nil
}

func openLogFile(filePath string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, nil
}

// Close releases the log file, if any
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// logf writes a formatted message at the given level
func (l *Logger) logf(level Level, format string, v ...interface{}) {
	if level < l.level {
		return
	}

	now := time.Now().Format("2006/01/02 15:04:05")
	prefix := fmt.Sprintf("%s [%s]", now, levelPrefixes[level])
	if l.useColors {
		prefix = fmt.Sprintf("%s%s\033[0m", levelColors[level], prefix)
	}

	l.logger.Println(prefix, fmt.Sprintf(format, v...))

	if level == FATAL {
		l.Close()
		os.Exit(1)
	}
}

// Printf logs a formatted message at INFO, satisfying core.Logger
func (l *Logger) Printf(format string, v ...interface{}) {
	l.logf(INFO, format, v...)
}

// Debugf logs a formatted debug message
func (l *Logger) Debugf(format string, v ...interface{}) {
	l.logf(DEBUG, format, v...)
}

// Infof logs a formatted info message
func (l *Logger) Infof(format string, v ...interface{}) {
	l.logf(INFO, format, v...)
}

// Warnf logs a formatted warning message
func (l *Logger) Warnf(format string, v ...interface{}) {
	l.logf(WARN, format, v...)
}

// Errorf logs a formatted error message
func (l *Logger) Errorf(format string, v ...interface{}) {
	l.logf(ERROR, format, v...)
}

// Fatalf logs a formatted fatal message and exits the program
func (l *Logger) Fatalf(format string, v ...interface{}) {
	l.logf(FATAL, format, v...)
}
