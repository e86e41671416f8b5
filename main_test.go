package jsontree

import (
	"io"
	"log/slog"
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	quiet := NewParser()
	quiet.SetLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	SetGlobalParser(quiet)

	goleak.VerifyTestMain(m)
}

// newQuietParser returns a parser that does not log parse failures.
func newQuietParser(cfg *Config) *Parser {
	p := NewParser(cfg)
	p.SetLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return p
}
