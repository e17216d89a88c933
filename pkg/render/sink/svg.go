package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/bward3321/pixelforge/pkg/errors"
	"github.com/bward3321/pixelforge/pkg/grid"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	pixelSize int
}

// WithPixelSize sets how many user units the width/height attributes
// allot per cell (default 1). The viewBox always stays in grid units.
func WithPixelSize(n int) SVGOption {
	return func(r *svgRenderer) {
		if n > 0 {
			r.pixelSize = n
		}
	}
}

// RenderSVG renders g as an SVG document with one rect per same-color run.
func RenderSVG(g *grid.Grid, opts ...SVGOption) []byte {
	r := svgRenderer{pixelSize: 1}
	for _, opt := range opts {
		opt(&r)
	}

	w, h := g.Width(), g.Height()
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d" shape-rendering="crispEdges">`+"\n",
		w, h, w*r.pixelSize, h*r.pixelSize)
	for _, run := range Runs(g) {
		fmt.Fprintf(&buf, `  <rect x="%d" y="%d" width="%d" height="1" fill="%s"`,
			run.X, run.Y, run.Len, run.Color.RGBHex())
		if !run.Color.Opaque() {
			fmt.Fprintf(&buf, ` fill-opacity="%s"`, formatOpacity(run.Color.A))
		}
		buf.WriteString("/>\n")
	}
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func formatOpacity(a uint8) string {
	return strconv.FormatFloat(float64(a)/255, 'f', 2, 64)
}

type svgDoc struct {
	XMLName xml.Name  `xml:"svg"`
	ViewBox string    `xml:"viewBox,attr"`
	Rects   []svgRect `xml:"rect"`
}

// MaxParseSide bounds each viewBox dimension accepted by ParseSVG.
const MaxParseSide = 4096

type svgRect struct {
	X       string `xml:"x,attr"`
	Y       string `xml:"y,attr"`
	Width   string `xml:"width,attr"`
	Height  string `xml:"height,attr"`
	Fill    string `xml:"fill,attr"`
	Opacity string `xml:"fill-opacity,attr"`
}

// ParseSVG rasterizes an SVG produced by RenderSVG back into a grid,
// sampling once per unit cell. Grid dimensions come from the viewBox.
func ParseSVG(data []byte) (*grid.Grid, error) {
	var doc svgDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse svg")
	}
	fields := strings.Fields(doc.ViewBox)
	if len(fields) != 4 {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid viewBox %q", doc.ViewBox)
	}
	w, errW := strconv.Atoi(fields[2])
	h, errH := strconv.Atoi(fields[3])
	if errW != nil || errH != nil {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "non-integer viewBox %q", doc.ViewBox)
	}
	if w > MaxParseSide || h > MaxParseSide {
		return nil, errors.New(errors.ErrCodeInvalidDimension, "viewBox %dx%d exceeds %d", w, h, MaxParseSide)
	}
	g, err := grid.New(w, h)
	if err != nil {
		return nil, err
	}

	var writes []grid.Write
	for _, r := range doc.Rects {
		x, y, rw, rh, err := rectInts(r)
		if err != nil {
			return nil, err
		}
		c, err := grid.ParseHex(r.Fill)
		if err != nil {
			return nil, err
		}
		if r.Opacity != "" {
			op, err := strconv.ParseFloat(r.Opacity, 64)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "invalid fill-opacity %q", r.Opacity)
			}
			c.A = uint8(math.Round(math.Max(0, math.Min(1, op)) * 255))
		}
		x0, x1 := clampSpan(x, rw, w)
		y0, y1 := clampSpan(y, rh, h)
		for py := y0; py < y1; py++ {
			for px := x0; px < x1; px++ {
				writes = append(writes, grid.Write{X: px, Y: py, Cell: grid.Filled(c)})
			}
		}
	}
	return g.Apply(writes...)
}

// clampSpan intersects [pos, pos+length) with [0, limit) without
// overflowing on extreme attribute values.
func clampSpan(pos, length, limit int) (lo, hi int) {
	if length <= 0 || pos >= limit {
		return 0, 0
	}
	if pos < 0 {
		if length <= -pos {
			return 0, 0
		}
		length += pos
		pos = 0
	}
	return pos, pos + min(length, limit-pos)
}

func rectInts(r svgRect) (x, y, w, h int, err error) {
	vals := []string{r.X, r.Y, r.Width, r.Height}
	out := make([]int, 4)
	for i, v := range vals {
		if v == "" {
			continue
		}
		if out[i], err = strconv.Atoi(v); err != nil {
			return 0, 0, 0, 0, errors.Wrap(errors.ErrCodeInvalidFormat, err, "non-integer rect attribute %q", v)
		}
	}
	return out[0], out[1], out[2], out[3], nil
}
