package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/bward3321/pixelforge/pkg/favicon"
	"github.com/bward3321/pixelforge/pkg/pipeline"
)

type faviconOpts struct {
	output          string
	siteName        string
	themeColor      string
	backgroundColor string
	noCache         bool
}

// faviconCommand creates the favicon command.
func (c *CLI) faviconCommand() *cobra.Command {
	opts := faviconOpts{siteName: pipeline.DefaultSiteName}

	cmd := &cobra.Command{
		Use:   "favicon [sprite]",
		Short: "Build a website favicon package (zip)",
		Long: `Build a zip with favicon.ico, PNG icons for browsers and Android,
an SVG icon, site.webmanifest, browserconfig.xml and a README with the
HTML snippet to paste into <head>.`,
		Example: `  pixelforge favicon logo.toml --name "My Site" --theme-color "#1e90ff"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runFavicon(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output zip (default <sprite>-favicon.zip)")
	cmd.Flags().StringVar(&opts.siteName, "name", opts.siteName, "site name for the web manifest")
	cmd.Flags().StringVar(&opts.themeColor, "theme-color", "", "theme color (default #ffffff)")
	cmd.Flags().StringVar(&opts.backgroundColor, "background-color", "", "manifest background color (default #ffffff)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

func (c *CLI) runFavicon(ctx context.Context, input string, opts faviconOpts) error {
	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	g, err := runner.Load(input)
	if err != nil {
		return err
	}

	prog := newProgress(loggerFromContext(ctx))
	result, err := runner.Export(ctx, g, pipeline.Options{
		Formats:         []string{pipeline.FormatZip},
		SiteName:        opts.siteName,
		ThemeColor:      opts.themeColor,
		BackgroundColor: opts.backgroundColor,
		Logger:          loggerFromContext(ctx),
	})
	if err != nil {
		return err
	}
	prog.exported(len(result.Artifacts), result.CacheInfo.RenderHit)

	out := opts.output
	if out == "" {
		out = basePath("", input) + "-favicon.zip"
	}
	if err := writeOutput(out, result.Artifacts[pipeline.FormatZip]); err != nil {
		return err
	}

	printSuccess("Favicon package for %s", StyleHighlight.Render(opts.siteName))
	printStats(result.Stats, result.CacheInfo.RenderHit)
	printFile(out)
	for _, s := range favicon.ICOSizes {
		printDetail("favicon.ico includes %dx%d", s, s)
	}
	return nil
}
