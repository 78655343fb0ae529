// Package log configures the slog logger shared by the editor, the stores and
// the notepad command.
//
// The terminal belongs to the editor while it runs, so console output can be
// redirected (or discarded) and a rotating file can carry the records instead.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	lj "gopkg.in/natefinch/lumberjack.v2"

	"github.com/iw2rmb/notepad"
)

// Options controls logger initialization.
// Values can be provided directly or via environment variables:
//   - NOTEPAD_LOG_LEVEL=debug|info|warn|error
//   - NOTEPAD_LOG_FORMAT=console|json|off
//   - NOTEPAD_LOG_FILE=<path> (enables file logging with rotation)
//   - NOTEPAD_LOG_SOURCE=true|false
//
// Defaults: INFO level, console format on stderr, no source.
type Options struct {
	Level     string
	Format    string // "console", "json" or "off"
	AddSource bool
	File      string
	// Writer receives console output. Nil means os.Stderr.
	Writer io.Writer
}

var (
	defaultMu     sync.RWMutex
	defaultLogger *slog.Logger
	closeFile     func() error
)

// L returns the default logger, initializing it from the environment on first
// use.
func L() *slog.Logger {
	defaultMu.RLock()
	l := defaultLogger
	defaultMu.RUnlock()
	if l != nil {
		return l
	}
	Init(FromEnv())
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// Init configures the default logger and installs it as slog.Default.
func Init(opts Options) {
	lvl := ParseLevel(opts.Level)
	format := strings.ToLower(strings.TrimSpace(opts.Format))
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	var handlers []slog.Handler
	switch format {
	case "off", "none":
	case "json":
		handlers = append(handlers, slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl, AddSource: opts.AddSource}))
	default:
		handlers = append(handlers, &consoleHandler{level: lvl, addSource: opts.AddSource, w: w, mu: &sync.Mutex{}})
	}

	var closer func() error
	if path := strings.TrimSpace(opts.File); path != "" {
		fw := &lj.Logger{Filename: path, MaxSize: 10, MaxBackups: 3, MaxAge: 28, Compress: true}
		handlers = append(handlers, slog.NewJSONHandler(fw, &slog.HandlerOptions{Level: lvl, AddSource: opts.AddSource}))
		closer = fw.Close
	}

	var h slog.Handler
	switch len(handlers) {
	case 0:
		h = discardHandler{}
	case 1:
		h = handlers[0]
	default:
		h = &fanout{hs: handlers}
	}

	logger := slog.New(h).With(
		slog.String("app", "notepad"),
		slog.String("ver", notepad.Version()),
	)

	defaultMu.Lock()
	prevClose := closeFile
	defaultLogger = logger
	closeFile = closer
	defaultMu.Unlock()
	if prevClose != nil {
		_ = prevClose()
	}
	slog.SetDefault(logger)
}

// Close releases the rotating log file, if one is open.
func Close() error {
	defaultMu.Lock()
	c := closeFile
	closeFile = nil
	defaultMu.Unlock()
	if c == nil {
		return nil
	}
	return c()
}

// FromEnv builds Options from NOTEPAD_LOG_* variables.
func FromEnv() Options {
	return Options{
		Level:     getenv("NOTEPAD_LOG_LEVEL", "info"),
		Format:    getenv("NOTEPAD_LOG_FORMAT", "console"),
		AddSource: strings.EqualFold(getenv("NOTEPAD_LOG_SOURCE", "false"), "true"),
		File:      os.Getenv("NOTEPAD_LOG_FILE"),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// WithComponent returns the default logger tagged with a component name.
func WithComponent(name string) *slog.Logger { return L().With(slog.String("component", name)) }

// WithOperation tags l with an operation name.
func WithOperation(l *slog.Logger, op string) *slog.Logger { return l.With(slog.String("op", op)) }

// Discard returns a logger that drops every record.
func Discard() *slog.Logger { return slog.New(discardHandler{}) }

// ParseLevel converts a level name to slog.Level. Unknown names mean INFO.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type fanout struct{ hs []slog.Handler }

func (m *fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.hs {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m *fanout) Handle(ctx context.Context, r slog.Record) error {
	var firstErr error
	for _, h := range m.hs {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (m *fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	res := make([]slog.Handler, len(m.hs))
	for i, h := range m.hs {
		res[i] = h.WithAttrs(attrs)
	}
	return &fanout{hs: res}
}

func (m *fanout) WithGroup(name string) slog.Handler {
	res := make([]slog.Handler, len(m.hs))
	for i, h := range m.hs {
		res[i] = h.WithGroup(name)
	}
	return &fanout{hs: res}
}

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }

// consoleHandler prints one line per record: ts level msg key=val...
type consoleHandler struct {
	level     slog.Level
	addSource bool
	w         io.Writer
	attrs     []slog.Attr
	groups    []string

	mu *sync.Mutex
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *consoleHandler) Handle(_ context.Context, r slog.Record) error {
	b := &strings.Builder{}
	b.Grow(256)
	ts := r.Time
	if ts.IsZero() {
		ts = time.Now()
	}
	b.WriteString(ts.Format(time.RFC3339))
	b.WriteString(" ")
	b.WriteString(levelString(r.Level))
	if r.Message != "" {
		b.WriteString(" ")
		b.WriteString(r.Message)
	}

	write := func(prefix string) func(slog.Attr) bool {
		return func(a slog.Attr) bool {
			b.WriteString(" ")
			b.WriteString(prefix)
			b.WriteString(a.Key)
			b.WriteString("=")
			b.WriteString(attrValueString(a.Value))
			return true
		}
	}
	for _, a := range h.attrs {
		write("")(a)
	}
	r.Attrs(write(h.prefix()))

	if h.addSource {
		if r.PC != 0 {
			f, _ := runtime.CallersFrames([]uintptr{r.PC}).Next()
			b.WriteString(" src=")
			b.WriteString(f.File)
			b.WriteString(":")
			b.WriteString(strconv.Itoa(f.Line))
		}
	}
	b.WriteString("\n")

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	// Attributes are qualified by the groups open when they were added.
	prefix := h.prefix()
	na := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	na = append(na, h.attrs...)
	for _, a := range attrs {
		na = append(na, slog.Attr{Key: prefix + a.Key, Value: a.Value})
	}
	return &consoleHandler{level: h.level, addSource: h.addSource, w: h.w, attrs: na, groups: h.groups, mu: h.mu}
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	ng := append([]string(nil), h.groups...)
	ng = append(ng, name)
	return &consoleHandler{level: h.level, addSource: h.addSource, w: h.w, attrs: h.attrs, groups: ng, mu: h.mu}
}

func (h *consoleHandler) prefix() string {
	if len(h.groups) == 0 {
		return ""
	}
	return strings.Join(h.groups, ".") + "."
}

func levelString(l slog.Level) string {
	switch l {
	case slog.LevelDebug:
		return "DBG"
	case slog.LevelInfo:
		return "INF"
	case slog.LevelWarn:
		return "WRN"
	case slog.LevelError:
		return "ERR"
	default:
		return l.String()
	}
}

func attrValueString(v slog.Value) string {
	v = v.Resolve()
	switch v.Kind() {
	case slog.KindString:
		s := v.String()
		if strings.ContainsAny(s, " \t\n\"=") {
			return strconv.Quote(s)
		}
		return s
	case slog.KindInt64:
		return strconv.FormatInt(v.Int64(), 10)
	case slog.KindUint64:
		return strconv.FormatUint(v.Uint64(), 10)
	case slog.KindFloat64:
		return strconv.FormatFloat(v.Float64(), 'f', -1, 64)
	case slog.KindBool:
		return strconv.FormatBool(v.Bool())
	case slog.KindDuration:
		return v.Duration().String()
	case slog.KindTime:
		return v.Time().Format(time.RFC3339)
	default:
		return v.String()
	}
}
