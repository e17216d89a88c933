package favicon

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/bward3321/pixelforge/pkg/errors"
	"github.com/bward3321/pixelforge/pkg/grid"
	"github.com/bward3321/pixelforge/pkg/render/sink"
)

// Default colors written into the manifest and browserconfig.
var (
	DefaultThemeColor      = grid.White
	DefaultBackgroundColor = grid.White
)

// ICOSizes are the images embedded in favicon.ico.
var ICOSizes = []int{16, 32, 48}

// Options configures Build.
type Options struct {
	SiteName        string
	ThemeColor      *grid.Color // nil means DefaultThemeColor
	BackgroundColor *grid.Color // nil means DefaultBackgroundColor
	Logger          *log.Logger
}

// ValidateAndSetDefaults checks the site name and fills unset colors.
func (o *Options) ValidateAndSetDefaults() error {
	if err := errors.ValidateSiteName(o.SiteName); err != nil {
		return err
	}
	if o.ThemeColor == nil {
		c := DefaultThemeColor
		o.ThemeColor = &c
	}
	if o.BackgroundColor == nil {
		c := DefaultBackgroundColor
		o.BackgroundColor = &c
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return nil
}

// Entry is one file of the package. Exactly one of Data and Err is set.
type Entry struct {
	Name string
	Data []byte
	Err  error
}

// Bundle is the ordered result of Build.
type Bundle struct {
	Entries []Entry
}

// Err joins the failures of all entries, or returns nil.
func (b *Bundle) Err() error {
	var errs []error
	for _, e := range b.Entries {
		if e.Err != nil {
			errs = append(errs, e.Err)
		}
	}
	return errors.Join(errs...)
}

// Get returns the entry with the given file name.
func (b *Bundle) Get(name string) (Entry, bool) {
	for _, e := range b.Entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

type encoder func(g *grid.Grid, opts Options) ([]byte, error)

type entrySpec struct {
	name   string
	encode encoder
}

func pngEntry(size int) entrySpec {
	return entrySpec{
		name: pngName(size),
		encode: func(g *grid.Grid, _ Options) ([]byte, error) {
			return sink.RenderPNG(g, sink.WithSize(size, size))
		},
	}
}

func pngName(size int) string {
	if size >= 192 {
		return fmt.Sprintf("android-chrome-%dx%d.png", size, size)
	}
	return fmt.Sprintf("favicon-%dx%d.png", size, size)
}

func entrySpecs() []entrySpec {
	return []entrySpec{
		{name: "favicon.ico", encode: func(g *grid.Grid, _ Options) ([]byte, error) {
			return sink.RenderICO(g, ICOSizes)
		}},
		pngEntry(16),
		pngEntry(32),
		pngEntry(192),
		pngEntry(512),
		{name: "favicon.svg", encode: func(g *grid.Grid, _ Options) ([]byte, error) {
			return sink.RenderSVG(g), nil
		}},
		{name: "site.webmanifest", encode: func(_ *grid.Grid, o Options) ([]byte, error) {
			return Manifest(o)
		}},
		{name: "browserconfig.xml", encode: func(_ *grid.Grid, o Options) ([]byte, error) {
			return BrowserConfig(o)
		}},
		{name: "README.txt", encode: func(_ *grid.Grid, o Options) ([]byte, error) {
			return Readme(o), nil
		}},
	}
}

// Build renders the favicon package for g.
//
// Options are validated first; an invalid site name fails before any
// rendering. Per-entry encoding failures are recorded in the bundle rather
// than returned, so the returned error is only non-nil for invalid input
// or a cancelled context.
func Build(ctx context.Context, g *grid.Grid, opts Options) (*Bundle, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	return build(ctx, g, opts, entrySpecs())
}

func build(ctx context.Context, g *grid.Grid, opts Options, specs []entrySpec) (*Bundle, error) {
	logger := opts.Logger
	start := time.Now()

	entries := make([]Entry, len(specs))
	eg, ctx := errgroup.WithContext(ctx)
	for i, spec := range specs {
		i, spec := i, spec
		entries[i].Name = spec.name
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := spec.encode(g, opts)
			if err != nil {
				entries[i].Err = errors.Wrap(errors.ErrCodeEncodingFailure, err, "encode %s", spec.name)
				logger.Warn("favicon entry failed", "file", spec.name, "error", err)
				return nil
			}
			entries[i].Data = data
			logger.Debug("favicon entry", "file", spec.name, "bytes", len(data))
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	b := &Bundle{Entries: entries}
	logger.Info("favicon package built", "files", len(entries), "failed", countFailed(entries), "elapsed", time.Since(start))
	return b, nil
}

func countFailed(entries []Entry) int {
	n := 0
	for _, e := range entries {
		if e.Err != nil {
			n++
		}
	}
	return n
}
