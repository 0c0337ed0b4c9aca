package log

import (
	"context"
	"io"
	"log"
	"os"

	"github.com/cleitonmarx/symbiont/depend"
)

// NewLogger creates the process logger. Every line carries the prefix after the
// timestamp, e.g. "2026/01/10 10:00:00 [agentruntime] RunAgent: ...".
func NewLogger(w io.Writer, prefix string, utc bool) *log.Logger {
	flags := log.LstdFlags | log.Lmsgprefix
	if utc {
		flags |= log.LUTC
	}
	if prefix != "" {
		prefix = "[" + prefix + "] "
	}
	return log.New(w, prefix, flags)
}

// InitLogger is the initializer for the logger dependency.
type InitLogger struct {
	Prefix string `config:"LOG_PREFIX" default:"agentruntime"`
	UTC    bool   `config:"LOG_UTC" default:"true"`
}

// Initialize registers the logger in the dependency container.
func (il InitLogger) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register(NewLogger(os.Stdout, il.Prefix, il.UTC))
	return ctx, nil
}
