package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bward3321/pixelforge/pkg/errors"
	"github.com/bward3321/pixelforge/pkg/grid"
	"github.com/bward3321/pixelforge/pkg/ico"
	"github.com/bward3321/pixelforge/pkg/render/sink"
	"github.com/bward3321/pixelforge/pkg/source"
)

// inspectCommand creates the inspect command.
func (c *CLI) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [file]",
		Short: "Describe an .ico, .svg or sprite file",
		Long: `Print the image directory of an .ico file, or the size and palette of
an exported .svg or a sprite document.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd.Context(), args[0])
		},
	}
}

func (c *CLI) runInspect(ctx context.Context, path string) error {
	logger := loggerFromContext(ctx)
	ext := strings.ToLower(filepath.Ext(path))

	if ext != ".ico" && ext != ".svg" {
		g, err := source.LoadFile(path)
		if err != nil {
			return err
		}
		printGrid(path, g)
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrap(errors.ErrCodeFileNotFound, err, "inspect %s", path)
		}
		return err
	}
	logger.Debug("inspecting", "path", path, "bytes", len(data))

	if ext == ".svg" {
		g, err := sink.ParseSVG(data)
		if err != nil {
			return err
		}
		printGrid(path, g)
		return nil
	}

	hdr, entries, err := ico.Decode(data)
	if err != nil {
		return err
	}
	fmt.Println(StyleTitle.Render(filepath.Base(path)))
	printKeyValue("images", fmt.Sprintf("%d", hdr.Count))
	printKeyValue("bytes", fmt.Sprintf("%d", len(data)))
	for i, e := range entries {
		printDetail("#%d  %dx%d  %d bpp  %d bytes at offset %d",
			i, e.Width, e.Height, e.BitDepth, e.Length, e.Offset)
	}
	return nil
}

func printGrid(path string, g *grid.Grid) {
	palette := g.Palette()
	fmt.Println(StyleTitle.Render(filepath.Base(path)))
	printKeyValue("size", fmt.Sprintf("%dx%d", g.Width(), g.Height()))
	printKeyValue("cells", fmt.Sprintf("%d set, %d absent", g.Count(), g.Len()-g.Count()))
	printKeyValue("colors", fmt.Sprintf("%d", len(palette)))
	for _, c := range palette {
		printSwatch(c)
	}
}
