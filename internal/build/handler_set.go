package build

import (
	"context"
	"log/slog"

	"github.com/btcsuite/btclog"
	btclogv2 "github.com/btcsuite/btclog/v2"
)

// DualHandler is an implementation of btclog.Handler that fans a log record
// out to a console handler and, optionally, a second handler writing to a
// rotating log file. uchanctl never needs more than these two destinations,
// so unlike the teacher's arbitrary-N HandlerSet this is a fixed two-slot
// fan-out with no slice bookkeeping.
type DualHandler struct {
	level   btclog.Level
	console btclogv2.Handler
	file    btclogv2.Handler // nil when file logging is disabled
}

// NewHandlerSet constructs a DualHandler from a console handler and an
// optional file handler. Passing a nil file handler disables the file
// stream entirely; Handle/Enabled then only consult console.
func NewHandlerSet(console, file btclogv2.Handler) *DualHandler {
	h := &DualHandler{
		level:   btclog.LevelInfo,
		console: console,
		file:    file,
	}
	h.SetLevel(h.level)

	return h
}

// Enabled reports whether the handler handles records at the given level.
//
// NOTE: this is part of the slog.Handler interface.
func (h *DualHandler) Enabled(ctx context.Context, level slog.Level) bool {
	if !h.console.Enabled(ctx, level) {
		return false
	}

	return h.file == nil || h.file.Enabled(ctx, level)
}

// Handle handles the Record by dispatching to the console handler and, if
// present, the file handler.
//
// NOTE: this is part of the slog.Handler interface.
func (h *DualHandler) Handle(ctx context.Context, record slog.Record) error {
	if err := h.console.Handle(ctx, record); err != nil {
		return err
	}

	if h.file != nil {
		return h.file.Handle(ctx, record)
	}

	return nil
}

// WithAttrs returns a new Handler whose attributes consist of both the
// receiver's attributes and the arguments.
//
// NOTE: this is part of the slog.Handler interface.
func (h *DualHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	pair := &slogPair{console: h.console.WithAttrs(attrs)}
	if h.file != nil {
		pair.file = h.file.WithAttrs(attrs)
	}

	return pair
}

// WithGroup returns a new Handler with the given group appended to the
// receiver's existing groups.
//
// NOTE: this is part of the slog.Handler interface.
func (h *DualHandler) WithGroup(name string) slog.Handler {
	pair := &slogPair{console: h.console.WithGroup(name)}
	if h.file != nil {
		pair.file = h.file.WithGroup(name)
	}

	return pair
}

// SubSystem creates a new Handler with the given sub-system tag.
//
// NOTE: this is part of the btclog.Handler interface.
func (h *DualHandler) SubSystem(tag string) btclogv2.Handler {
	dup := &DualHandler{
		level:   h.level,
		console: h.console.SubSystem(tag),
	}
	if h.file != nil {
		dup.file = h.file.SubSystem(tag)
	}

	return dup
}

// SetLevel changes the logging level on both underlying handlers.
//
// NOTE: this is part of the btclog.Handler interface.
func (h *DualHandler) SetLevel(level btclog.Level) {
	h.console.SetLevel(level)
	if h.file != nil {
		h.file.SetLevel(level)
	}
	h.level = level
}

// Level returns the current logging level.
//
// NOTE: this is part of the btclog.Handler interface.
func (h *DualHandler) Level() btclog.Level {
	return h.level
}

// WithPrefix returns a copy of the Handler but with the given string
// prefixed to each log message. uchanctl uses this to tag each of the
// queue/countdown/uchan package loggers.
//
// NOTE: this is part of the btclog.Handler interface.
func (h *DualHandler) WithPrefix(prefix string) btclogv2.Handler {
	dup := &DualHandler{
		level:   h.level,
		console: h.console.WithPrefix(prefix),
	}
	if h.file != nil {
		dup.file = h.file.WithPrefix(prefix)
	}

	return dup
}

// Ensure DualHandler implements btclog.Handler at compile time.
var _ btclogv2.Handler = (*DualHandler)(nil)

// slogPair is the slog.Handler counterpart of DualHandler, returned by
// WithAttrs/WithGroup once the teacher's btclog.Handler-specific methods
// (SubSystem, SetLevel, WithPrefix) no longer apply.
type slogPair struct {
	console slog.Handler
	file    slog.Handler // nil when file logging is disabled
}

// Enabled reports whether the handler handles records at the given level.
//
// NOTE: this is part of the slog.Handler interface.
func (p *slogPair) Enabled(ctx context.Context, level slog.Level) bool {
	if !p.console.Enabled(ctx, level) {
		return false
	}

	return p.file == nil || p.file.Enabled(ctx, level)
}

// Handle handles the Record by dispatching to the console handler and, if
// present, the file handler.
//
// NOTE: this is part of the slog.Handler interface.
func (p *slogPair) Handle(ctx context.Context, record slog.Record) error {
	if err := p.console.Handle(ctx, record); err != nil {
		return err
	}

	if p.file != nil {
		return p.file.Handle(ctx, record)
	}

	return nil
}

// WithAttrs returns a new Handler whose attributes consist of both the
// receiver's attributes and the arguments.
//
// NOTE: this is part of the slog.Handler interface.
func (p *slogPair) WithAttrs(attrs []slog.Attr) slog.Handler {
	pair := &slogPair{console: p.console.WithAttrs(attrs)}
	if p.file != nil {
		pair.file = p.file.WithAttrs(attrs)
	}

	return pair
}

// WithGroup returns a new Handler with the given group appended to the
// receiver's existing groups.
//
// NOTE: this is part of the slog.Handler interface.
func (p *slogPair) WithGroup(name string) slog.Handler {
	pair := &slogPair{console: p.console.WithGroup(name)}
	if p.file != nil {
		pair.file = p.file.WithGroup(name)
	}

	return pair
}

// Ensure slogPair implements slog.Handler at compile time.
var _ slog.Handler = (*slogPair)(nil)
