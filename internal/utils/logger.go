package utils

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

var (
	CurrentLevel   LogLevel = LevelWarn
	ShowRaylibInfo bool
	ShowDebugUI    = true
)

var base = newConsoleLogger(os.Stderr)

func newConsoleLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger()
}

// SetOutput redirects every logger, including module loggers created
// afterwards, to w as plain JSON lines.
func SetOutput(w io.Writer) {
	base = zerolog.New(w).With().Timestamp().Logger()
}

func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	}
	return "UNKNOWN"
}

func (l LogLevel) zerolog() zerolog.Level {
	switch l {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelInfo:
		return zerolog.InfoLevel
	case LevelWarn:
		return zerolog.WarnLevel
	}
	return zerolog.ErrorLevel
}

// ParseLogLevel accepts the names printed by LogLevel.String, case-insensitively.
func ParseLogLevel(s string) (LogLevel, error) {
	level, err := zerolog.ParseLevel(s)
	if err != nil {
		return LevelWarn, fmt.Errorf("utils: unknown log level %q", s)
	}
	switch level {
	case zerolog.TraceLevel, zerolog.DebugLevel:
		return LevelDebug, nil
	case zerolog.InfoLevel:
		return LevelInfo, nil
	case zerolog.WarnLevel:
		return LevelWarn, nil
	case zerolog.ErrorLevel, zerolog.FatalLevel, zerolog.PanicLevel:
		return LevelError, nil
	}
	return LevelWarn, fmt.Errorf("utils: unknown log level %q", s)
}

// Logger is a sub-logger tagged with the package it belongs to.
type Logger struct {
	module string
}

func Module(name string) Logger {
	return Logger{module: name}
}

func (lg Logger) log(level LogLevel, format string, v ...interface{}) {
	if level < CurrentLevel {
		return
	}
	event := base.WithLevel(level.zerolog())
	if lg.module != "" {
		event = event.Str("module", lg.module)
	}
	event.Msgf(format, v...)
}

func (lg Logger) Info(format string, v ...interface{})  { lg.log(LevelInfo, format, v...) }
func (lg Logger) Debug(format string, v ...interface{}) { lg.log(LevelDebug, format, v...) }
func (lg Logger) Warn(format string, v ...interface{})  { lg.log(LevelWarn, format, v...) }
func (lg Logger) Error(format string, v ...interface{}) { lg.log(LevelError, format, v...) }

var std Logger

func Info(format string, v ...interface{})  { std.log(LevelInfo, format, v...) }
func Debug(format string, v ...interface{}) { std.log(LevelDebug, format, v...) }
func Warn(format string, v ...interface{})  { std.log(LevelWarn, format, v...) }
func Error(format string, v ...interface{}) { std.log(LevelError, format, v...) }

func RaylibLogCallback(level int, text string) {
	raylib := Module("raylib")
	switch level {
	case 1, 2: // LOG_TRACE, LOG_DEBUG
		raylib.Debug("%s", text)
	case 3: // LOG_INFO
		if ShowRaylibInfo || CurrentLevel <= LevelInfo {
			raylib.log(max(CurrentLevel, LevelInfo), "%s", text)
		}
	case 4: // LOG_WARNING
		raylib.Warn("%s", text)
	case 5, 6: // LOG_ERROR, LOG_FATAL
		raylib.Error("%s", text)
	}
}
