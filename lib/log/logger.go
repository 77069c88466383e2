package log

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"
	"sync"
)

type LogHandler struct {
	subHandler  slog.Handler
	buffer      *bytes.Buffer
	bufferMutex *sync.Mutex
	out         io.Writer
	colour      bool
}

const (
	reset = "\033[0m"

	darkGray    = 90
	cyan        = 36
	lightGray   = 37
	lightYellow = 93
	lightRed    = 91
)

func (h *LogHandler) colorize(colorCode int, v string) string {
	if !h.colour {
		return v
	}
	return fmt.Sprintf("\033[%sm%s%s", strconv.Itoa(colorCode), v, reset)
}

func (h *LogHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.subHandler.Enabled(ctx, level)
}

func (h *LogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *h
	c.subHandler = h.subHandler.WithAttrs(attrs)
	return &c
}

func (h *LogHandler) WithGroup(name string) slog.Handler {
	c := *h
	c.subHandler = h.subHandler.WithGroup(name)
	return &c
}

func (h *LogHandler) Handle(ctx context.Context, r slog.Record) error {
	level := r.Level.String() + " "

	switch r.Level {
	case slog.LevelDebug:
		level = h.colorize(darkGray, level)
	case slog.LevelInfo:
		level = h.colorize(cyan, level)
	case slog.LevelWarn:
		level = h.colorize(lightYellow, level)
	case slog.LevelError:
		level = h.colorize(lightRed, level)
	}

	attrs, err := h.parseAttributes(ctx, r)
	if err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString(h.colorize(lightGray, r.Time.Format("15:04:05.000 ")))
	b.WriteString(level)
	if attrs["module"] != nil {
		b.WriteString(h.colorize(lightGray, fmt.Sprintf("[%s] ", attrs["module"])))
	}
	b.WriteString(r.Message)
	for _, k := range extraKeys(attrs) {
		fmt.Fprintf(&b, " %s=%v", k, attrs[k])
	}
	b.WriteByte('\n')

	// one write per record so lines from the watcher goroutine don't interleave
	h.bufferMutex.Lock()
	defer h.bufferMutex.Unlock()
	_, err = io.WriteString(h.out, b.String())
	return err
}

func (h *LogHandler) parseAttributes(ctx context.Context, r slog.Record) (map[string]any, error) {
	h.bufferMutex.Lock()
	defer func() {
		h.buffer.Reset()
		h.bufferMutex.Unlock()
	}()
	if err := h.subHandler.Handle(ctx, r); err != nil {
		return nil, fmt.Errorf("error when calling inner handler's Handle: %w", err)
	}

	var attrs map[string]any
	err := json.Unmarshal(h.buffer.Bytes(), &attrs)
	if err != nil {
		return nil, fmt.Errorf("error when unmarshaling inner handler's Handle result: %w", err)
	}
	return attrs, nil
}

// NewHandler writes to stdout, colouring levels when stdout is a terminal.
func NewHandler(opts *slog.HandlerOptions) *LogHandler {
	return NewHandlerTo(os.Stdout, opts)
}

func NewHandlerTo(out io.Writer, opts *slog.HandlerOptions) *LogHandler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	b := &bytes.Buffer{}
	return &LogHandler{
		buffer: b,
		subHandler: slog.NewJSONHandler(b, &slog.HandlerOptions{
			Level:       opts.Level,
			AddSource:   opts.AddSource,
			ReplaceAttr: opts.ReplaceAttr,
		}),
		bufferMutex: &sync.Mutex{},
		out:         out,
		colour:      isTerminal(out),
	}
}

// Module returns a logger tagged with the given module name.
func Module(name string) *slog.Logger {
	return slog.Default().With("module", name)
}

// ParseLevel accepts debug, info, warn and error.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	err := l.UnmarshalText([]byte(s))
	if err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
	return l, nil
}

func extraKeys(attrs map[string]any) []string {
	var keys []string
	for k := range attrs {
		switch k {
		case slog.TimeKey, slog.LevelKey, slog.MessageKey, slog.SourceKey, "module":
			continue
		}
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
