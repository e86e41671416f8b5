package jsontree

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cybergodev/jsontree/internal"
)

// Parser parses JSON text into Value trees.
//
// A Parser is safe for concurrent use: every call checks out a private
// decoder, so the scratch arenas are never shared between parses.
type Parser struct {
	config  *Config
	logger  *slog.Logger
	metrics *internal.MetricsCollector
	pool    sync.Pool
}

// NewParser creates a parser with the given configuration.
// If no configuration is provided, uses default configuration.
func NewParser(config ...*Config) *Parser {
	var cfg *Config
	if len(config) > 0 && config[0] != nil {
		cfg = config[0].Clone()
	} else {
		cfg = DefaultConfig()
	}

	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("invalid configuration: %v", err))
	}

	p := &Parser{
		config: cfg,
		logger: slog.Default().With("component", "jsontree-parser"),
	}
	if cfg.EnableMetrics {
		p.metrics = internal.NewMetricsCollector()
	}
	p.pool.New = func() any { return new(decoder) }
	return p
}

// SetLogger sets a custom structured logger for the parser
func (p *Parser) SetLogger(logger *slog.Logger) {
	if logger != nil {
		p.logger = logger.With("component", "jsontree-parser")
	} else {
		p.logger = slog.Default().With("component", "jsontree-parser")
	}
}

// Config returns a copy of the parser configuration.
func (p *Parser) Config() *Config {
	return p.config.Clone()
}

// Parse parses text into v. Any payload v already holds is freed first.
// On failure v is null and the returned error is a *ParseError.
func (p *Parser) Parse(v *Value, text string) error {
	return p.ParseContext(context.Background(), v, text)
}

// ParseBytes is Parse for a byte slice. The tree does not alias b.
func (p *Parser) ParseBytes(v *Value, b []byte) error {
	return p.ParseContext(context.Background(), v, string(b))
}

// ParseContext is Parse with a context carried into log records.
// Parsing itself never blocks and is not cancellable.
func (p *Parser) ParseContext(ctx context.Context, v *Value, text string) error {
	return p.parse(ctx, v, text, slog.LevelError)
}

// parse logs failures at failLevel.
func (p *Parser) parse(ctx context.Context, v *Value, text string, failLevel slog.Level) error {
	if v == nil {
		panic(&ContractError{Op: "Parse", Expected: TypeNull, Actual: TypeNull, Size: -1})
	}
	v.Free()

	start := time.Now()
	if limit := p.config.MaxInputSize; limit > 0 && int64(len(text)) > limit {
		err := newParseError(StatusSizeLimit, 0, fmt.Sprintf("input size %d exceeds limit %d", len(text), limit))
		p.record(ctx, len(text), 0, time.Since(start), err, failLevel)
		return err
	}

	d := p.pool.Get().(*decoder)
	d.reset(text, p.config.MaxNestingDepth)
	err := d.parseRoot(v, p.config.AllowTrailingContent)
	if d.staged() {
		// Every path through the decoder consumes or rewinds what it staged.
		panic("jsontree: scratch arena not empty after parse")
	}
	deepest := d.deepest
	d.release(p.config.MaxRetainedScratch)
	p.pool.Put(d)

	p.record(ctx, len(text), deepest, time.Since(start), err, failLevel)
	return err
}

// Valid reports whether text is a single well-formed JSON value. Rejected
// input is logged at Debug level.
func (p *Parser) Valid(text string) bool {
	var v Value
	err := p.parse(context.Background(), &v, text, slog.LevelDebug)
	v.Free()
	return err == nil
}

// Metrics returns a snapshot of parse statistics. It is the zero Metrics
// when metrics are disabled.
func (p *Parser) Metrics() internal.Metrics {
	if p.metrics == nil {
		return internal.Metrics{ErrorsByStatus: map[string]int64{}}
	}
	return p.metrics.GetMetrics()
}

// ResetMetrics clears collected statistics.
func (p *Parser) ResetMetrics() {
	if p.metrics != nil {
		p.metrics.Reset()
	}
}

func (p *Parser) record(ctx context.Context, size, depth int, duration time.Duration, err error, failLevel slog.Level) {
	if p.metrics != nil {
		p.metrics.RecordParse(duration, err == nil, int64(size), depth)
		if err != nil {
			p.metrics.RecordError(StatusOf(err).String())
		}
	}
	if err != nil {
		p.logError(ctx, failLevel, size, err)
		return
	}
	p.logParse(ctx, size, depth, duration)
}

// logError logs a failed parse with structured attributes.
func (p *Parser) logError(ctx context.Context, level slog.Level, size int, err error) {
	if p.logger == nil {
		return
	}

	offset := 0
	if pe, ok := err.(*ParseError); ok {
		offset = pe.Offset
	}

	p.logger.LogAttrs(ctx, level, "JSON parse failed",
		slog.String("operation", "parse"),
		slog.String("status", StatusOf(err).String()),
		slog.Int("offset", offset),
		slog.Int("size", size),
		slog.String("error", sanitizeError(err)),
	)
}

// logParse logs a successful parse, as a warning when it was slow.
func (p *Parser) logParse(ctx context.Context, size, depth int, duration time.Duration) {
	if p.logger == nil {
		return
	}

	attrs := []slog.Attr{
		slog.String("operation", "parse"),
		slog.Int("size", size),
		slog.Int("depth", depth),
		slog.Int64("duration_us", duration.Microseconds()),
	}

	if duration > SlowParseThreshold {
		attrs = append(attrs, slog.Int64("threshold_ms", SlowParseThreshold.Milliseconds()))
		p.logger.LogAttrs(ctx, slog.LevelWarn, "Slow JSON parse detected", attrs...)
	} else {
		p.logger.LogAttrs(ctx, slog.LevelDebug, "JSON parse completed", attrs...)
	}
}

// sanitizeError bounds the length of a logged error message; messages can
// quote pieces of the input.
func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if len(msg) > maxLoggedErrorLen {
		return msg[:maxLoggedErrorLen/2] + "...[truncated]"
	}
	return msg
}
