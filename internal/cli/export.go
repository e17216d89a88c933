package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/bward3321/pixelforge/pkg/pipeline"
)

// exportOpts holds the command-line flags for the export command.
type exportOpts struct {
	output     string // output file (single format) or base path (multiple)
	formats    string // comma-separated formats
	scale      int    // integer scale for png/svg
	sizes      string // comma-separated ico sizes
	background string // hex fill for absent cells in png
	title      string // pdf heading
	gridLines  bool   // pdf cell boundaries
	noCache    bool
	refresh    bool
}

// exportCommand creates the export command.
func (c *CLI) exportCommand() *cobra.Command {
	opts := exportOpts{formats: pipeline.FormatPNG, scale: 8}

	cmd := &cobra.Command{
		Use:   "export [sprite]",
		Short: "Export a sprite to PNG, SVG, ICO or PDF",
		Long: `Export a sprite document (.toml, .json or .png) to one or more formats.

With a single format, -o names the output file. With several, -o is a base
path and each format gets its own extension.`,
		Example: `  pixelforge export heart.toml -f png --scale 16
  pixelforge export heart.toml -f png,svg,ico,pdf -o build/heart`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runExport(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file or base path")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", opts.formats, "output format(s): png, svg, ico, pdf, zip (comma-separated)")
	cmd.Flags().IntVar(&opts.scale, "scale", opts.scale, "pixels per cell for png/svg")
	cmd.Flags().StringVar(&opts.sizes, "sizes", "", "ico image sizes (default 16,32,48)")
	cmd.Flags().StringVar(&opts.background, "background", "", "fill absent cells with this color (png)")
	cmd.Flags().StringVar(&opts.title, "title", "", "heading printed on the pdf sheet")
	cmd.Flags().BoolVar(&opts.gridLines, "grid-lines", false, "draw cell boundaries on the pdf sheet")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even when cached")

	return cmd
}

func (c *CLI) runExport(ctx context.Context, input string, opts exportOpts) error {
	logger := loggerFromContext(ctx)
	sizes, err := parseSizes(opts.sizes)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	g, err := runner.Load(input)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	result, err := runner.Export(ctx, g, pipeline.Options{
		Formats:    pipeline.ParseFormats(opts.formats),
		Scale:      opts.scale,
		Sizes:      sizes,
		Background: opts.background,
		Title:      opts.title,
		GridLines:  opts.gridLines,
		Refresh:    opts.refresh,
		Logger:     logger,
	})
	if err != nil {
		return err
	}
	prog.exported(len(result.Artifacts), result.CacheInfo.RenderHit)

	formats := pipeline.ParseFormats(opts.formats)
	paths := outputPaths(opts.output, input, formats)
	for _, f := range formats {
		if err := writeOutput(paths[f], result.Artifacts[f]); err != nil {
			return err
		}
	}

	printSuccess("Exported %s", input)
	printStats(result.Stats, result.CacheInfo.RenderHit)
	for _, f := range formats {
		printFile(paths[f])
	}
	return nil
}

// outputPaths maps each format to its output file.
func outputPaths(output, input string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" {
		paths[formats[0]] = output
		return paths
	}
	base := basePath(output, input)
	for _, f := range formats {
		paths[f] = base + "." + f
	}
	return paths
}
