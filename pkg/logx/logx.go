package logx

import (
	"fmt"
	"log"
	"os"
	"sync/atomic"
)

// Level controls which messages are emitted
type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var currentLevel atomic.Int32

var std = log.New(os.Stdout, "", log.LstdFlags)

// SetLevel sets the minimum level that will be logged
func SetLevel(l Level) {
	currentLevel.Store(int32(l))
}

func enabled(l Level) bool {
	return int32(l) >= currentLevel.Load()
}

func output(prefix, msg string) {
	std.Output(3, prefix+" "+msg)
}

// Debug logs a debug message
func Debug(msg string) {
	if enabled(LevelDebug) {
		output("[DEBUG]", msg)
	}
}

// Debugf logs a formatted debug message
func Debugf(format string, args ...any) {
	if enabled(LevelDebug) {
		output("[DEBUG]", fmt.Sprintf(format, args...))
	}
}

// Info logs an info message
func Info(msg string) {
	if enabled(LevelInfo) {
		output("[INFO]", msg)
	}
}

// Infof logs a formatted info message
func Infof(format string, args ...any) {
	if enabled(LevelInfo) {
		output("[INFO]", fmt.Sprintf(format, args...))
	}
}

// Warn logs a warning message
func Warn(msg string) {
	if enabled(LevelWarn) {
		output("[WARN]", msg)
	}
}

// Warnf logs a formatted warning message
func Warnf(format string, args ...any) {
	if enabled(LevelWarn) {
		output("[WARN]", fmt.Sprintf(format, args...))
	}
}

// Error logs an error message
func Error(msg string) {
	if enabled(LevelError) {
		output("[ERROR]", msg)
	}
}

// Errorf logs a formatted error message
func Errorf(format string, args ...any) {
	if enabled(LevelError) {
		output("[ERROR]", fmt.Sprintf(format, args...))
	}
}

// Fatal logs an error message and exits
func Fatal(msg string) {
	output("[FATAL]", msg)
	os.Exit(1)
}

// Fatalf logs a formatted error message and exits
func Fatalf(format string, args ...any) {
	output("[FATAL]", fmt.Sprintf(format, args...))
	os.Exit(1)
}
