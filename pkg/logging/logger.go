package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
)

// EnvironmentVariable is the environment variable used to select the level of
// the root logger.
const EnvironmentVariable = "OSUTIL_LOG_LEVEL"

// Logger is the main logger type. It has the novel property that it still
// functions if nil, but it doesn't log anything. It is safe for concurrent
// usage, and subloggers share the output and level of their parent.
type Logger struct {
	// prefix is any prefix specified for the logger.
	prefix string
	// output is the shared output state.
	output *output
}

// output is the state shared between a logger and all of its subloggers.
type output struct {
	// lock serializes access to the fields below.
	lock sync.Mutex
	// level is the maximum level that will be emitted.
	level Level
	// logger performs the actual formatting and writing.
	logger *log.Logger
}

// NewLogger creates a new root logger that writes entries at or below the
// specified level to the specified writer.
func NewLogger(level Level, writer io.Writer) *Logger {
	return &Logger{
		output: &output{
			level:  level,
			logger: log.New(writer, "", log.LstdFlags|log.Lmicroseconds),
		},
	}
}

// RootLogger is the root logger from which all other loggers derive. It writes
// to standard error at the level named by OSUTIL_LOG_LEVEL (defaulting to
// warnings and errors only).
var RootLogger *Logger

func init() {
	level := LevelWarn
	if name := os.Getenv(EnvironmentVariable); name != "" {
		if l, ok := NameToLevel(name); ok {
			level = l
		}
	}
	RootLogger = NewLogger(level, os.Stderr)
}

// Sublogger creates a new sublogger with the specified name.
func (l *Logger) Sublogger(name string) *Logger {
	// If the logger is nil, then the sublogger will be as well.
	if l == nil {
		return nil
	}

	// Compute the new prefix.
	prefix := name
	if l.prefix != "" {
		prefix = l.prefix + "." + name
	}

	// Create the new logger.
	return &Logger{
		prefix: prefix,
		output: l.output,
	}
}

// SetLevel sets the level for the logger. Since the level is shared, the
// change applies to the logger's parent and to all of its subloggers.
func (l *Logger) SetLevel(level Level) {
	if l != nil {
		l.output.lock.Lock()
		l.output.level = level
		l.output.lock.Unlock()
	}
}

// Level returns the current level of the logger.
func (l *Logger) Level() Level {
	if l == nil {
		return LevelDisabled
	}
	l.output.lock.Lock()
	defer l.output.lock.Unlock()
	return l.output.level
}

// write is the internal logging method.
func (l *Logger) write(level Level, line string) {
	// Check whether or not the entry should be emitted.
	if l == nil {
		return
	}
	l.output.lock.Lock()
	defer l.output.lock.Unlock()
	if level > l.output.level {
		return
	}

	// Add a prefix if necessary.
	line = strings.TrimSuffix(line, "\n")
	if l.prefix != "" {
		line = fmt.Sprintf("[%s] %s", l.prefix, line)
	}

	// Log.
	l.output.logger.Println(line)
}

// Error logs error information with an error prefix and red color.
func (l *Logger) Error(v ...interface{}) {
	l.write(LevelError, color.RedString("Error: %s", fmt.Sprint(v...)))
}

// Errorf logs error information with an error prefix and red color, using
// semantics equivalent to fmt.Printf.
func (l *Logger) Errorf(format string, v ...interface{}) {
	l.write(LevelError, color.RedString("Error: %s", fmt.Sprintf(format, v...)))
}

// Warn logs error information with a warning prefix and yellow color.
func (l *Logger) Warn(v ...interface{}) {
	l.write(LevelWarn, color.YellowString("Warning: %s", fmt.Sprint(v...)))
}

// Warnf logs error information with a warning prefix and yellow color, using
// semantics equivalent to fmt.Printf.
func (l *Logger) Warnf(format string, v ...interface{}) {
	l.write(LevelWarn, color.YellowString("Warning: %s", fmt.Sprintf(format, v...)))
}

// Info logs basic execution information with semantics equivalent to
// fmt.Print.
func (l *Logger) Info(v ...interface{}) {
	l.write(LevelInfo, fmt.Sprint(v...))
}

// Infof logs basic execution information with semantics equivalent to
// fmt.Printf.
func (l *Logger) Infof(format string, v ...interface{}) {
	l.write(LevelInfo, fmt.Sprintf(format, v...))
}

// Debug logs advanced execution information with semantics equivalent to
// fmt.Print.
func (l *Logger) Debug(v ...interface{}) {
	l.write(LevelDebug, fmt.Sprint(v...))
}

// Debugf logs advanced execution information with semantics equivalent to
// fmt.Printf.
func (l *Logger) Debugf(format string, v ...interface{}) {
	l.write(LevelDebug, fmt.Sprintf(format, v...))
}

// Trace logs low-level execution information with semantics equivalent to
// fmt.Print.
func (l *Logger) Trace(v ...interface{}) {
	l.write(LevelTrace, fmt.Sprint(v...))
}

// Tracef logs low-level execution information with semantics equivalent to
// fmt.Printf.
func (l *Logger) Tracef(format string, v ...interface{}) {
	l.write(LevelTrace, fmt.Sprintf(format, v...))
}
