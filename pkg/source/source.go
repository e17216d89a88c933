package source

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bward3321/pixelforge/pkg/errors"
	"github.com/bward3321/pixelforge/pkg/grid"
)

// Codec converts between a file format and a grid.
type Codec interface {
	Type() string
	Supports(path string) bool
	Decode(data []byte) (*grid.Grid, error)
	Encode(g *grid.Grid) ([]byte, error)
}

// Codecs lists every supported format.
var Codecs = []Codec{TOML{}, JSON{}, PNG{}}

// ForPath returns the codec handling path's extension.
func ForPath(path string) (Codec, error) {
	for _, c := range Codecs {
		if c.Supports(path) {
			return c, nil
		}
	}
	return nil, errors.New(errors.ErrCodeUnsupported, "unsupported sprite file %q (want .toml, .json or .png)", filepath.Base(path))
}

// LoadFile reads the sprite at path.
func LoadFile(path string) (*grid.Grid, error) {
	c, err := ForPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "sprite %s", path)
		}
		return nil, err
	}
	return c.Decode(data)
}

// SaveFile writes g to path in the format implied by its extension.
func SaveFile(path string, g *grid.Grid) error {
	c, err := ForPath(path)
	if err != nil {
		return err
	}
	data, err := c.Encode(g)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func hasExt(path string, exts ...string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}
