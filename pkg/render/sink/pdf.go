package sink

import (
	"bytes"

	"github.com/jung-kurt/gofpdf"

	"github.com/bward3321/pixelforge/pkg/errors"
	"github.com/bward3321/pixelforge/pkg/grid"
)

const (
	pdfMargin          = 10.0 // mm
	pdfTitleSpace      = 10.0 // mm reserved above the grid when titled
	defaultPDFCellSize = 5.0  // mm
)

// PDFOption configures PDF rendering.
type PDFOption func(*pdfRenderer)

type pdfRenderer struct {
	cellSize  float64
	gridLines bool
	title     string
}

// WithCellSize sets the preferred cell edge in millimetres. Cells shrink if
// the grid would not fit the page.
func WithCellSize(mm float64) PDFOption {
	return func(r *pdfRenderer) {
		if mm > 0 {
			r.cellSize = mm
		}
	}
}

// WithGridLines draws thin cell boundaries, useful for cross-stitch or
// bead patterns.
func WithGridLines() PDFOption {
	return func(r *pdfRenderer) { r.gridLines = true }
}

// WithTitle prints a heading above the grid.
func WithTitle(title string) PDFOption {
	return func(r *pdfRenderer) { r.title = title }
}

// RenderPDF draws g on a single A4 page as filled rectangles, one per
// same-color run.
func RenderPDF(g *grid.Grid, opts ...PDFOption) ([]byte, error) {
	r := pdfRenderer{cellSize: defaultPDFCellSize}
	for _, opt := range opts {
		opt(&r)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCreator("pixelforge", false)
	if r.title != "" {
		pdf.SetTitle(r.title, true)
	}
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()
	top := pdfMargin
	if r.title != "" {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Text(pdfMargin, pdfMargin+4, r.title)
		top += pdfTitleSpace
	}

	cell := min(r.cellSize,
		(pageW-2*pdfMargin)/float64(g.Width()),
		(pageH-top-pdfMargin)/float64(g.Height()))

	for _, run := range Runs(g) {
		c := run.Color
		pdf.SetAlpha(float64(c.A)/255, "Normal")
		pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
		pdf.Rect(pdfMargin+float64(run.X)*cell, top+float64(run.Y)*cell,
			float64(run.Len)*cell, cell, "F")
	}
	pdf.SetAlpha(1, "Normal")

	if r.gridLines {
		pdf.SetDrawColor(190, 190, 190)
		pdf.SetLineWidth(0.1)
		right := pdfMargin + float64(g.Width())*cell
		bottom := top + float64(g.Height())*cell
		for x := 0; x <= g.Width(); x++ {
			px := pdfMargin + float64(x)*cell
			pdf.Line(px, top, px, bottom)
		}
		for y := 0; y <= g.Height(); y++ {
			py := top + float64(y)*cell
			pdf.Line(pdfMargin, py, right, py)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeEncodingFailure, err, "encode pdf")
	}
	return buf.Bytes(), nil
}
