package pipeline

import (
	"context"

	"github.com/bward3321/pixelforge/pkg/errors"
	"github.com/bward3321/pixelforge/pkg/favicon"
	"github.com/bward3321/pixelforge/pkg/grid"
	"github.com/bward3321/pixelforge/pkg/render/sink"
)

// Render generates the artifact for a single format. Options must have
// passed ValidateAndSetDefaults.
func Render(ctx context.Context, g *grid.Grid, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatPNG:
		pngOpts := []sink.PNGOption{sink.WithScale(opts.Scale)}
		if opts.background != nil {
			pngOpts = append(pngOpts, sink.WithBackground(*opts.background))
		}
		return sink.RenderPNG(g, pngOpts...)
	case FormatSVG:
		return sink.RenderSVG(g, sink.WithPixelSize(opts.Scale)), nil
	case FormatICO:
		return sink.RenderICO(g, opts.Sizes)
	case FormatPDF:
		var pdfOpts []sink.PDFOption
		if opts.Title != "" {
			pdfOpts = append(pdfOpts, sink.WithTitle(opts.Title))
		}
		if opts.GridLines {
			pdfOpts = append(pdfOpts, sink.WithGridLines())
		}
		return sink.RenderPDF(g, pdfOpts...)
	case FormatZip:
		return renderFavicon(ctx, g, opts)
	default:
		return nil, ValidateFormat(format)
	}
}

func renderFavicon(ctx context.Context, g *grid.Grid, opts Options) ([]byte, error) {
	bundle, err := favicon.Build(ctx, g, favicon.Options{
		SiteName:        opts.SiteName,
		ThemeColor:      opts.theme,
		BackgroundColor: opts.tileBg,
		Logger:          opts.Logger,
	})
	if err != nil {
		return nil, err
	}
	data, err := bundle.Zip()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeEncodingFailure, err, "favicon package")
	}
	return data, nil
}
