// Package log provides named, leveled loggers for the renderer and its tools.
// All loggers share one sink and one verbosity setting.
package log

import (
	"io"
	"os"
	"sync"

	"github.com/op/go-logging"
)

// Level selects how much render progress and diagnostic output is emitted
type Level int

const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

var backendLevels = map[Level]logging.Level{
	Debug:   logging.DEBUG,
	Info:    logging.INFO,
	Notice:  logging.NOTICE,
	Warning: logging.WARNING,
	Error:   logging.ERROR,
}

var lineFormat = logging.MustStringFormatter(
	`%{color}%{time:15:04:05.000} %{level:.4s} [%{module}]%{color:reset} %{message}`,
)

// Logger is the subset of the go-logging API used by scene builders, loaders and the renderer
type Logger interface {
	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Notice(args ...interface{})
	Noticef(format string, args ...interface{})
	Warning(args ...interface{})
	Warningf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
}

var (
	mu      sync.Mutex
	current = logging.NOTICE
	backend logging.LeveledBackend
)

// New returns the logger for a module name; the name appears in every line it writes
func New(module string) Logger {
	return logging.MustGetLogger(module)
}

// SetSink redirects all output to w, keeping the current level
func SetSink(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	formatted := logging.NewBackendFormatter(logging.NewLogBackend(w, "", 0), lineFormat)
	backend = logging.AddModuleLevel(formatted)
	backend.SetLevel(current, "")
	logging.SetBackend(backend)
}

// SetLevel changes verbosity for every module. Unknown levels are ignored.
func SetLevel(level Level) {
	mu.Lock()
	defer mu.Unlock()

	l, ok := backendLevels[level]
	if !ok {
		return
	}
	current = l
	backend.SetLevel(current, "")
}

func init() {
	SetSink(os.Stdout)
}
