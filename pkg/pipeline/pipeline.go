// Package pipeline provides the export pipeline for pixelforge.
//
// The pipeline turns one color grid into any combination of output
// artifacts (PNG, SVG, ICO, PDF sheet, favicon zip). It is shared by every
// CLI command so option defaults, validation and caching behave the same
// everywhere.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Formats: []string{"png", "ico"},
//	    Scale:   8,
//	}
//	result, err := runner.Export(ctx, g, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	png := result.Artifacts["png"]
//
// Render a single format without caching:
//
//	data, err := pipeline.Render(ctx, g, pipeline.FormatSVG, opts)
package pipeline

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/bward3321/pixelforge/pkg/cache"
	"github.com/bward3321/pixelforge/pkg/errors"
	"github.com/bward3321/pixelforge/pkg/grid"
	"github.com/bward3321/pixelforge/pkg/render/sink"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultScale is the PNG/SVG scale factor when none is given.
	DefaultScale = 1

	// DefaultSiteName names the site in a favicon package.
	DefaultSiteName = "pixelforge"
)

// Format constants for output formats.
const (
	FormatPNG = "png"
	FormatSVG = "svg"
	FormatICO = "ico"
	FormatPDF = "pdf"
	FormatZip = "zip"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatPNG: true,
	FormatSVG: true,
	FormatICO: true,
	FormatPDF: true,
	FormatZip: true,
}

// FormatNames lists the formats in display order.
var FormatNames = []string{FormatPNG, FormatSVG, FormatICO, FormatPDF, FormatZip}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for an export.
type Options struct {
	Formats []string `json:"formats,omitempty"`

	// Raster options
	Scale      int    `json:"scale,omitempty"`
	Background string `json:"background,omitempty"` // hex; empty keeps absent cells transparent

	// ICO options
	Sizes []int `json:"sizes,omitempty"`

	// PDF options
	Title     string `json:"title,omitempty"`
	GridLines bool   `json:"grid_lines,omitempty"`

	// Favicon package options
	SiteName        string `json:"site_name,omitempty"`
	ThemeColor      string `json:"theme_color,omitempty"`
	BackgroundColor string `json:"background_color,omitempty"`

	// Refresh ignores cached artifacts (results are still stored).
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	background *grid.Color
	theme      *grid.Color
	tileBg     *grid.Color
	validated  bool
}

// Result contains the outputs of an export.
type Result struct {
	// GridHash is the content hash of the exported grid.
	GridHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which formats came from the cache.
	CacheInfo CacheInfo
}

// Stats contains export statistics.
type Stats struct {
	Width      int
	Height     int
	Cells      int // set cells
	Colors     int
	Bytes      int // total artifact size
	RenderTime time.Duration
}

// CacheInfo tracks cache hits per format.
type CacheInfo struct {
	Hits      []string // formats served from cache, in request order
	RenderHit bool     // whether every artifact came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: %s)", format, strings.Join(FormatNames, ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ParseFormats splits a comma-separated format list, trimming blanks and
// dropping duplicates.
func ParseFormats(s string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	return out
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks every field and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := errors.ValidateDimension("scale", o.Scale); err != nil {
		return err
	}
	for _, s := range o.Sizes {
		if err := errors.ValidateDimension("icon size", s); err != nil {
			return err
		}
	}

	var err error
	if o.background, err = parseOptionalColor("background", o.Background); err != nil {
		return err
	}
	if o.theme, err = parseOptionalColor("theme color", o.ThemeColor); err != nil {
		return err
	}
	if o.tileBg, err = parseOptionalColor("background color", o.BackgroundColor); err != nil {
		return err
	}
	if o.Has(FormatZip) {
		if err := errors.ValidateSiteName(o.SiteName); err != nil {
			return err
		}
	}
	o.validated = true
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatPNG}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if len(o.Sizes) == 0 {
		o.Sizes = append([]int(nil), sink.DefaultICOSizes...)
	}
	if o.SiteName == "" {
		o.SiteName = DefaultSiteName
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Has reports whether format was requested.
func (o *Options) Has(format string) bool {
	for _, f := range o.Formats {
		if f == format {
			return true
		}
	}
	return false
}

// ArtifactKeyOpts returns cache key options for one format. Only the
// options that affect that format's bytes are included.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Format: format}
	switch format {
	case FormatPNG:
		k.Scale = o.Scale
		k.Background = o.Background
	case FormatSVG:
		k.Scale = o.Scale
	case FormatICO:
		k.Sizes = o.Sizes
	case FormatPDF:
		k.Title = o.Title
		k.GridLines = o.GridLines
	case FormatZip:
		k.SiteName = o.SiteName
		k.ThemeColor = o.ThemeColor
		k.BgColor = o.BackgroundColor
	}
	return k
}

func parseOptionalColor(label, s string) (*grid.Color, error) {
	if s == "" {
		return nil, nil
	}
	c, err := grid.ParseHex(s)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid %s", label)
	}
	return &c, nil
}
