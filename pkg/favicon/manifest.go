package favicon

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/bward3321/pixelforge/pkg/errors"
)

// ShortNameLength bounds the manifest short_name, in runes.
const ShortNameLength = 12

type manifestIcon struct {
	Src   string `json:"src"`
	Sizes string `json:"sizes"`
	Type  string `json:"type"`
}

type manifest struct {
	Name            string         `json:"name"`
	ShortName       string         `json:"short_name"`
	Icons           []manifestIcon `json:"icons"`
	ThemeColor      string         `json:"theme_color"`
	BackgroundColor string         `json:"background_color"`
	Display         string         `json:"display"`
}

// Manifest returns the site.webmanifest JSON document.
func Manifest(o Options) ([]byte, error) {
	m := manifest{
		Name:      o.SiteName,
		ShortName: shortName(o.SiteName),
		Icons: []manifestIcon{
			{Src: "/" + pngName(192), Sizes: "192x192", Type: "image/png"},
			{Src: "/" + pngName(512), Sizes: "512x512", Type: "image/png"},
		},
		ThemeColor:      o.ThemeColor.RGBHex(),
		BackgroundColor: o.BackgroundColor.RGBHex(),
		Display:         "standalone",
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeEncodingFailure, err, "marshal manifest")
	}
	return append(data, '\n'), nil
}

func shortName(name string) string {
	r := []rune(name)
	if len(r) > ShortNameLength {
		r = r[:ShortNameLength]
	}
	return string(r)
}

type browserConfig struct {
	XMLName       xml.Name `xml:"browserconfig"`
	Msapplication struct {
		Tile struct {
			Square150 struct {
				Src string `xml:"src,attr"`
			} `xml:"square150x150logo"`
			TileColor string `xml:"TileColor"`
		} `xml:"tile"`
	} `xml:"msapplication"`
}

// BrowserConfig returns the browserconfig.xml document for Windows tiles.
func BrowserConfig(o Options) ([]byte, error) {
	var bc browserConfig
	bc.Msapplication.Tile.Square150.Src = "/" + pngName(192)
	bc.Msapplication.Tile.TileColor = o.ThemeColor.RGBHex()
	data, err := xml.MarshalIndent(bc, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeEncodingFailure, err, "marshal browserconfig")
	}
	out := append([]byte(xml.Header), data...)
	return append(out, '\n'), nil
}

// Readme returns installation notes with the HTML head snippet.
func Readme(o Options) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "Favicon package for %s\n\n", o.SiteName)
	b.WriteString("Copy these files to the root of your site and add to <head>:\n\n")
	b.WriteString(`  <link rel="icon" href="/favicon.ico" sizes="any">` + "\n")
	b.WriteString(`  <link rel="icon" href="/favicon.svg" type="image/svg+xml">` + "\n")
	b.WriteString(`  <link rel="icon" type="image/png" sizes="32x32" href="/favicon-32x32.png">` + "\n")
	b.WriteString(`  <link rel="icon" type="image/png" sizes="16x16" href="/favicon-16x16.png">` + "\n")
	b.WriteString(`  <link rel="manifest" href="/site.webmanifest">` + "\n")
	fmt.Fprintf(&b, "  <meta name=\"theme-color\" content=\"%s\">\n", o.ThemeColor.RGBHex())
	b.WriteString(`  <meta name="msapplication-config" content="/browserconfig.xml">` + "\n\n")
	b.WriteString("Files:\n")
	for _, s := range entrySpecs() {
		fmt.Fprintf(&b, "  %s\n", s.name)
	}
	return []byte(b.String())
}
