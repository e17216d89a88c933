package source

import (
	"bytes"
	"encoding/json"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"

	"github.com/bward3321/pixelforge/pkg/errors"
	"github.com/bward3321/pixelforge/pkg/grid"
)

// AbsentKey marks an absent cell in rows unless the palette overrides it.
const AbsentKey = '.'

// paletteKeys are handed out to colors, in order, when encoding.
const paletteKeys = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Document is the text form of a sprite.
type Document struct {
	Width   int               `toml:"width" json:"width"`
	Height  int               `toml:"height" json:"height"`
	Rows    []string          `toml:"rows" json:"rows"`
	Palette map[string]string `toml:"palette" json:"palette"`
}

// Grid converts the document into a grid.
func (d *Document) Grid() (*grid.Grid, error) {
	if err := errors.ValidateDimension("width", d.Width); err != nil {
		return nil, err
	}
	if err := errors.ValidateDimension("height", d.Height); err != nil {
		return nil, err
	}

	palette := make(map[rune]grid.Cell, len(d.Palette)+1)
	palette[AbsentKey] = grid.Absent
	for k, v := range d.Palette {
		if utf8.RuneCountInString(k) != 1 {
			return nil, errors.New(errors.ErrCodeInvalidInput, "palette key %q must be a single character", k)
		}
		r, _ := utf8.DecodeRuneInString(k)
		if v == "" || strings.EqualFold(v, "transparent") {
			palette[r] = grid.Absent
			continue
		}
		c, err := grid.ParseHex(v)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "palette entry %q", k)
		}
		palette[r] = grid.Filled(c)
	}

	rows := make([][]grid.Cell, 0, len(d.Rows))
	for y, row := range d.Rows {
		cells := make([]grid.Cell, 0, utf8.RuneCountInString(row))
		for x, r := range []rune(row) {
			c, ok := palette[r]
			if !ok {
				return nil, errors.New(errors.ErrCodeInvalidInput, "unknown palette key %q at (%d,%d)", r, x, y)
			}
			cells = append(cells, c)
		}
		rows = append(rows, cells)
	}
	return grid.FromRows(rows, d.Width, d.Height)
}

// NewDocument builds a document from g. Palette keys are assigned in
// first-appearance order.
func NewDocument(g *grid.Grid) (*Document, error) {
	colors := g.Palette()
	if len(colors) > len(paletteKeys) {
		return nil, errors.New(errors.ErrCodeUnsupported,
			"%d colors exceed the %d available palette keys", len(colors), len(paletteKeys))
	}

	keys := make(map[grid.Color]rune, len(colors))
	d := &Document{
		Width:   g.Width(),
		Height:  g.Height(),
		Palette: make(map[string]string, len(colors)),
	}
	for i, c := range colors {
		k := rune(paletteKeys[i])
		keys[c] = k
		d.Palette[string(k)] = c.Hex()
	}

	var sb strings.Builder
	for y := 0; y < g.Height(); y++ {
		sb.Reset()
		for x := 0; x < g.Width(); x++ {
			if c, ok := g.At(x, y).Color(); ok {
				sb.WriteRune(keys[c])
			} else {
				sb.WriteRune(AbsentKey)
			}
		}
		d.Rows = append(d.Rows, sb.String())
	}
	return d, nil
}

// TOML reads and writes .toml sprite documents.
type TOML struct{}

func (TOML) Type() string              { return "toml" }
func (TOML) Supports(path string) bool { return hasExt(path, ".toml") }

func (TOML) Decode(data []byte) (*grid.Grid, error) {
	var d Document
	if err := toml.Unmarshal(data, &d); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse toml sprite")
	}
	return d.Grid()
}

func (TOML) Encode(g *grid.Grid) ([]byte, error) {
	d, err := NewDocument(g)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(d); err != nil {
		return nil, errors.Wrap(errors.ErrCodeEncodingFailure, err, "encode toml sprite")
	}
	return buf.Bytes(), nil
}

// JSON reads and writes .json sprite documents.
type JSON struct{}

func (JSON) Type() string              { return "json" }
func (JSON) Supports(path string) bool { return hasExt(path, ".json") }

func (JSON) Decode(data []byte) (*grid.Grid, error) {
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse json sprite")
	}
	return d.Grid()
}

func (JSON) Encode(g *grid.Grid) ([]byte, error) {
	d, err := NewDocument(g)
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeEncodingFailure, err, "encode json sprite")
	}
	return append(data, '\n'), nil
}
