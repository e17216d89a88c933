// Package cli implements the pixelforge command-line interface.
//
// Commands load a sprite document, run it through the export pipeline or
// a drawing tool, and write the results next to the input.
//
// # Commands
//
//   - export: PNG, SVG, ICO and PDF output
//   - favicon: website favicon package as a zip
//   - draw: apply one tool stroke to a sprite
//   - inspect: describe an .ico, .svg or sprite file
//   - cache: manage the artifact cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger
// travels through context.Context so the pipeline logs with the same
// settings.
package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns a logger that stamps each line with "15:04:05.00"
// time and drops messages below level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress times one export and reports its outcome. Not safe for
// concurrent use.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// exported logs "Exported N artifact(s) (12ms)", noting when every
// artifact came from the cache.
func (p *progress) exported(n int, cached bool) {
	msg := fmt.Sprintf("Exported %d artifact(s)", n)
	if cached {
		msg += " from cache"
	}
	p.done(msg)
}

// done logs msg with the elapsed time.
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger attaches l to ctx for the pipeline and subcommands.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached by withLogger, or
// log.Default when commands run outside the root command.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
