package sink

import (
	"bytes"
	"image/color"
	"image/png"
	"math/rand"
	"strings"
	"testing"

	"github.com/bward3321/pixelforge/pkg/errors"
	"github.com/bward3321/pixelforge/pkg/grid"
	"github.com/bward3321/pixelforge/pkg/ico"
)

var (
	red  = grid.Color{R: 255, A: 255}
	blue = grid.Color{B: 255, A: 255}
)

// sample is a 4x2 grid: row 0 = red red absent blue, row 1 = blue blue blue blue.
func sample(t *testing.T) *grid.Grid {
	t.Helper()
	g := grid.MustNew(4, 2)
	g, err := g.Apply(
		grid.Write{X: 0, Y: 0, Cell: grid.Filled(red)},
		grid.Write{X: 1, Y: 0, Cell: grid.Filled(red)},
		grid.Write{X: 3, Y: 0, Cell: grid.Filled(blue)},
		grid.Write{X: 0, Y: 1, Cell: grid.Filled(blue)},
		grid.Write{X: 1, Y: 1, Cell: grid.Filled(blue)},
		grid.Write{X: 2, Y: 1, Cell: grid.Filled(blue)},
		grid.Write{X: 3, Y: 1, Cell: grid.Filled(blue)},
	)
	if err != nil {
		t.Fatalf("Apply() error: %v", err)
	}
	return g
}

func TestRuns(t *testing.T) {
	runs := Runs(sample(t))
	want := []Run{
		{X: 0, Y: 0, Len: 2, Color: red},
		{X: 3, Y: 0, Len: 1, Color: blue},
		{X: 0, Y: 1, Len: 4, Color: blue},
	}
	if len(runs) != len(want) {
		t.Fatalf("Runs() = %v, want %v", runs, want)
	}
	for i := range want {
		if runs[i] != want[i] {
			t.Errorf("Runs()[%d] = %+v, want %+v", i, runs[i], want[i])
		}
	}
}

func TestRenderPNG(t *testing.T) {
	g := sample(t)

	tests := []struct {
		name  string
		opts  []PNGOption
		wantW int
		wantH int
	}{
		{"default", nil, 4, 2},
		{"scale", []PNGOption{WithScale(8)}, 32, 16},
		{"size", []PNGOption{WithSize(10, 5)}, 10, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := RenderPNG(g, tt.opts...)
			if err != nil {
				t.Fatalf("RenderPNG() error: %v", err)
			}
			img, err := png.Decode(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("png.Decode() error: %v", err)
			}
			b := img.Bounds()
			if b.Dx() != tt.wantW || b.Dy() != tt.wantH {
				t.Errorf("size = %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestRenderPNG_ScaledPixels(t *testing.T) {
	data, err := RenderPNG(sample(t), WithScale(3))
	if err != nil {
		t.Fatalf("RenderPNG() error: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error: %v", err)
	}
	for _, tc := range []struct {
		x, y int
		want uint32 // alpha
		r    uint32
	}{
		{0, 0, 0xffff, 0xffff},
		{5, 2, 0xffff, 0xffff},
		{7, 1, 0, 0}, // absent cell (2,0)
	} {
		r, _, _, a := img.At(tc.x, tc.y).RGBA()
		if a != tc.want || r != tc.r {
			t.Errorf("pixel (%d,%d) r=%#x a=%#x, want r=%#x a=%#x", tc.x, tc.y, r, a, tc.r, tc.want)
		}
	}
}

func TestRenderPNG_Background(t *testing.T) {
	data, err := RenderPNG(sample(t), WithBackground(grid.White))
	if err != nil {
		t.Fatalf("RenderPNG() error: %v", err)
	}
	img, _ := png.Decode(bytes.NewReader(data))
	r, g, b, a := img.At(2, 0).RGBA()
	if r != 0xffff || g != 0xffff || b != 0xffff || a != 0xffff {
		t.Errorf("absent cell with background = %d,%d,%d,%d, want white", r, g, b, a)
	}
}

func TestRenderPNG_InvalidSize(t *testing.T) {
	for _, opts := range [][]PNGOption{
		{WithScale(0)},
		{WithScale(-2)},
		{WithSize(0, 10)},
		{WithSize(10, -1)},
	} {
		if _, err := RenderPNG(sample(t), opts...); !errors.Is(err, errors.ErrCodeInvalidDimension) {
			t.Errorf("RenderPNG() error = %v, want INVALID_DIMENSION", err)
		}
	}
}

func TestRenderSVG(t *testing.T) {
	out := string(RenderSVG(sample(t)))

	for _, want := range []string{
		`viewBox="0 0 4 2"`,
		`width="4" height="2"`,
		`shape-rendering="crispEdges"`,
		`<rect x="0" y="0" width="2" height="1" fill="#ff0000"/>`,
		`<rect x="3" y="0" width="1" height="1" fill="#0000ff"/>`,
		`<rect x="0" y="1" width="4" height="1" fill="#0000ff"/>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderSVG() missing %q\n%s", want, out)
		}
	}
	if n := strings.Count(out, "<rect"); n != 3 {
		t.Errorf("rect count = %d, want 3", n)
	}
	if strings.Contains(out, "fill-opacity") {
		t.Error("opaque colors should not carry fill-opacity")
	}
}

func TestRenderSVG_Translucent(t *testing.T) {
	g := grid.MustNew(1, 1)
	g, _ = g.Set(0, 0, grid.Filled(grid.Color{R: 10, G: 20, B: 30, A: 128}))
	out := string(RenderSVG(g))
	if !strings.Contains(out, `fill="#0a141e" fill-opacity="0.50"`) {
		t.Errorf("RenderSVG() = %s, want fill-opacity 0.50", out)
	}
}

func TestRenderSVG_PixelSize(t *testing.T) {
	out := string(RenderSVG(sample(t), WithPixelSize(10)))
	if !strings.Contains(out, `viewBox="0 0 4 2" width="40" height="20"`) {
		t.Errorf("RenderSVG() = %s", out)
	}
}

func TestRenderSVG_EmptyGrid(t *testing.T) {
	out := string(RenderSVG(grid.MustNew(3, 3)))
	if strings.Contains(out, "<rect") {
		t.Errorf("all-absent grid emitted rects: %s", out)
	}
}

func TestSVGRoundTrip(t *testing.T) {
	g := sample(t)
	back, err := ParseSVG(RenderSVG(g))
	if err != nil {
		t.Fatalf("ParseSVG() error: %v", err)
	}
	if !back.Equal(g) {
		t.Error("ParseSVG(RenderSVG(g)) != g")
	}
}

func TestSVGRoundTrip_RandomOpaque(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	palette := []grid.Color{red, blue, grid.Black, grid.White, {R: 12, G: 200, B: 90, A: 255}}
	for i := 0; i < 200; i++ {
		w, h := rng.Intn(12)+1, rng.Intn(12)+1
		var writes []grid.Write
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if n := rng.Intn(len(palette) + 1); n < len(palette) {
					writes = append(writes, grid.Write{X: x, Y: y, Cell: grid.Filled(palette[n])})
				}
			}
		}
		g, err := grid.MustNew(w, h).Apply(writes...)
		if err != nil {
			t.Fatalf("Apply() error: %v", err)
		}
		back, err := ParseSVG(RenderSVG(g))
		if err != nil {
			t.Fatalf("ParseSVG() error: %v", err)
		}
		if !back.Equal(g) {
			t.Fatalf("round %d: %dx%d grid changed through svg", i, w, h)
		}
	}
}

func TestParseSVG_ClampsRects(t *testing.T) {
	in := `<svg viewBox="0 0 3 2">` +
		`<rect x="-9000000000000000000" y="1" width="9000000000000000001" height="2000000000" fill="#ff0000"/>` +
		`<rect x="2" y="0" width="2000000000" height="1" fill="#0000ff"/>` +
		`<rect x="5" y="0" width="2" height="1" fill="#0000ff"/>` +
		`</svg>`
	g, err := ParseSVG([]byte(in))
	if err != nil {
		t.Fatalf("ParseSVG() error: %v", err)
	}
	if got := g.Count(); got != 2 {
		t.Errorf("Count() = %d, want 2", got)
	}
	if !g.At(0, 1).Equal(grid.Filled(red)) {
		t.Errorf("At(0,1) = %v, want red", g.At(0, 1))
	}
	if !g.At(2, 0).Equal(grid.Filled(blue)) {
		t.Errorf("At(2,0) = %v, want blue", g.At(2, 0))
	}

	big := `<svg viewBox="0 0 2000000000 1"></svg>`
	if _, err := ParseSVG([]byte(big)); !errors.Is(err, errors.ErrCodeInvalidDimension) {
		t.Errorf("oversized viewBox error = %v, want INVALID_DIMENSION", err)
	}
}

func TestRenderPNG_TranslucentScaled(t *testing.T) {
	c := grid.Color{R: 1, G: 1, B: 1, A: 127}
	g, err := grid.MustNew(2, 1).Set(1, 0, grid.Filled(c))
	if err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	data, err := RenderPNG(g, WithScale(5))
	if err != nil {
		t.Fatalf("RenderPNG() error: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error: %v", err)
	}
	want := color.NRGBA{R: 1, G: 1, B: 1, A: 127}
	for y := 0; y < 5; y++ {
		for x := 5; x < 10; x++ {
			if got := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestParseSVG_Invalid(t *testing.T) {
	for _, in := range []string{
		"not xml",
		`<svg viewBox="0 0 a 2"></svg>`,
		`<svg viewBox="0 0 2"></svg>`,
		`<svg viewBox="0 0 2 2"><rect x="0" y="0" width="1" height="1" fill="nope"/></svg>`,
	} {
		if _, err := ParseSVG([]byte(in)); err == nil {
			t.Errorf("ParseSVG(%q) expected error", in)
		}
	}
}

func TestRenderICO(t *testing.T) {
	data, err := RenderICO(sample(t), DefaultICOSizes)
	if err != nil {
		t.Fatalf("RenderICO() error: %v", err)
	}
	hdr, entries, err := ico.Decode(data)
	if err != nil {
		t.Fatalf("ico.Decode() error: %v", err)
	}
	if hdr.Count != 3 {
		t.Fatalf("Count = %d, want 3", hdr.Count)
	}
	for i, e := range entries {
		want := DefaultICOSizes[i]
		if e.Width != want || e.Height != want {
			t.Errorf("entry %d = %dx%d, want %dx%d", i, e.Width, e.Height, want, want)
		}
		img, err := png.Decode(bytes.NewReader(ico.Payload(data, e)))
		if err != nil {
			t.Fatalf("entry %d payload: %v", i, err)
		}
		if img.Bounds().Dx() != want {
			t.Errorf("entry %d payload width = %d, want %d", i, img.Bounds().Dx(), want)
		}
	}
}

func TestRenderICO_Empty(t *testing.T) {
	data, err := RenderICO(sample(t), nil)
	if err != nil {
		t.Fatalf("RenderICO() error: %v", err)
	}
	if len(data) != ico.HeaderSize {
		t.Errorf("len = %d, want %d", len(data), ico.HeaderSize)
	}
}

func TestRenderICO_InvalidSizes(t *testing.T) {
	for _, sizes := range [][]int{{16, 0}, {-1}, {512}} {
		if _, err := RenderICO(sample(t), sizes); !errors.Is(err, errors.ErrCodeInvalidDimension) {
			t.Errorf("RenderICO(%v) error = %v, want INVALID_DIMENSION", sizes, err)
		}
	}
}

func TestRenderPDF(t *testing.T) {
	data, err := RenderPDF(sample(t), WithTitle("sample"), WithGridLines(), WithCellSize(4))
	if err != nil {
		t.Fatalf("RenderPDF() error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("RenderPDF() output does not start with %%PDF- header")
	}
}
