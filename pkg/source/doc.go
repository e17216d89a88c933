// Package source reads and writes sprite documents: the on-disk form of a
// color grid that the CLI loads, edits and exports.
//
// Three codecs are supported, chosen by file extension:
//
//   - .toml: text sprite document (github.com/BurntSushi/toml)
//   - .json: the same document as JSON
//   - .png:  a 1:1 raster image, alpha 0 meaning absent
//
// A text sprite document declares its size, a palette of single-rune keys
// and one string per row:
//
//	width = 4
//	height = 2
//	rows = ["aa.b", "bbbb"]
//
//	[palette]
//	a = "#ff0000"
//	b = "#0000ff"
//
// "." is absent unless the palette redefines it; a palette value of "" or
// "transparent" also means absent. Short rows are padded with absent
// cells, surplus rows and cells are dropped.
package source
