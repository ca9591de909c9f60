// Package output provides logging and terminal output utilities.
package output

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// LoggerName is the prefix every log line carries.
const LoggerName = "skeleton"

// timeFormat is the timestamp layout of log lines.
const timeFormat = "2006-01-02 15:04:05"

var (
	// logger is the process-wide logger instance.
	logger *log.Logger

	// logOut is where logger currently writes.
	logOut io.Writer = os.Stderr
)

func init() {
	logger = newLogger(logOut, LogConfig{})
}

// LogConfig controls how SetupLogging configures the logger.
type LogConfig struct {
	// Verbose enables debug level and caller reporting. Forces timestamps on.
	Verbose bool

	// Timestamps controls timestamps in log lines. nil means on.
	Timestamps *bool
}

// timestamps resolves the effective timestamp setting.
func (c LogConfig) timestamps() bool {
	if c.Verbose {
		return true
	}
	if c.Timestamps != nil {
		return *c.Timestamps
	}
	return true
}

func newLogger(w io.Writer, cfg LogConfig) *log.Logger {
	level := log.InfoLevel
	if cfg.Verbose {
		level = log.DebugLevel
	}

	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          LoggerName,
		ReportTimestamp: cfg.timestamps(),
		ReportCaller:    cfg.Verbose,
		TimeFormat:      timeFormat,
	})
}

// SetupLogging configures the logger based on verbosity and timestamp settings.
func SetupLogging(cfg LogConfig) {
	logger = newLogger(logOut, cfg)
}

// SetOutput redirects log output, keeping the current configuration.
func SetOutput(w io.Writer) {
	logOut = w
	logger.SetOutput(w)
}

// Logger returns the current logger.
func Logger() *log.Logger {
	return logger
}

// TemplateLogger returns a logger whose prefix carries the template name.
func TemplateLogger(templateName string) *log.Logger {
	return logger.WithPrefix(LoggerName + "/" + templateName)
}

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool {
	return &b
}

// Debug logs a debug message.
func Debug(msg string, keyvals ...interface{}) {
	logger.Debug(msg, keyvals...)
}

// Info logs an info message.
func Info(msg string, keyvals ...interface{}) {
	logger.Info(msg, keyvals...)
}

// Warn logs a warning message.
func Warn(msg string, keyvals ...interface{}) {
	logger.Warn(msg, keyvals...)
}

// Error logs an error message.
func Error(msg string, keyvals ...interface{}) {
	logger.Error(msg, keyvals...)
}

// Details writes a multi-line block to the log output without formatting.
// Used for DetailError renderings that do not fit a key/value line.
func Details(text string) {
	_, _ = io.WriteString(logOut, text)
}

// Print prints a message to stdout without any formatting.
func Print(msg string) {
	os.Stdout.WriteString(msg)
}

// Println prints a message to stdout with a newline.
func Println(msg string) {
	os.Stdout.WriteString(msg + "\n")
}
