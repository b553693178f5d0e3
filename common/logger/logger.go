package logger

import (
	"io"
	"log"
	"os"
	"strings"
)

type LogLevel int

const (
	ERROR LogLevel = iota
	WARN
	INFO
	DEBUG
	TRACE
)

const flags = log.Ldate | log.Ltime | log.Lshortfile

var (
	nullWriter   = &NullWriter{}
	currentLevel = ERROR
	Info         *log.Logger
	Warn         *log.Logger
	Error        *log.Logger
	Debug        *log.Logger
	Trace        *log.Logger
)

func StringToLogLevel(value string) LogLevel {
	switch strings.ToLower(value) {
	case "error":
		return ERROR
	case "warn":
		return WARN
	case "info":
		return INFO
	case "debug":
		return DEBUG
	case "trace":
		return TRACE
	}
	log.Printf("Invalid log level: '%s'. Returning INFO", value)
	return INFO
}

func (s LogLevel) String() string {
	switch s {
	case ERROR:
		return "ERROR"
	case WARN:
		return "WARN"
	case INFO:
		return "INFO"
	case DEBUG:
		return "DEBUG"
	case TRACE:
		return "TRACE"
	}
	return "UNKNOWN"
}

type NullWriter struct {
	io.Writer
}

func (s *NullWriter) Write(p []byte) (n int, err error) {
	return len(p), nil
}

func init() {
	Error = log.New(nullWriter, "ERROR: ", flags)
	Warn = log.New(nullWriter, "WARN:  ", flags)
	Info = log.New(nullWriter, "INFO:  ", flags)
	Debug = log.New(nullWriter, "DEBUG: ", flags)
	Trace = log.New(nullWriter, "TRACE: ", flags)
}

// Initialize enables every logger up to the given level. Errors go to
// stderr, everything else to stdout.
func Initialize(logLevel LogLevel) {
	InitializeWithWriters(logLevel, os.Stdout, os.Stderr)
}

func InitializeWithWriters(logLevel LogLevel, out io.Writer, errOut io.Writer) {
	log.Printf("Initialize loggers: '%s'", logLevel.String())
	currentLevel = logLevel

	Error.SetOutput(writerFor(logLevel, ERROR, errOut))
	Warn.SetOutput(writerFor(logLevel, WARN, out))
	Info.SetOutput(writerFor(logLevel, INFO, out))
	Debug.SetOutput(writerFor(logLevel, DEBUG, out))
	Trace.SetOutput(writerFor(logLevel, TRACE, out))
}

func IsLogLevel(logLevel LogLevel) bool {
	return currentLevel >= logLevel
}

func writerFor(configured LogLevel, level LogLevel, writer io.Writer) io.Writer {
	if configured >= level {
		return writer
	}
	return nullWriter
}
