package cache

// ArtifactKeyOpts holds every option that changes an artifact's bytes.
type ArtifactKeyOpts struct {
	Format     string `json:"format"`
	Scale      int    `json:"scale,omitempty"`
	Sizes      []int  `json:"sizes,omitempty"`
	Background string `json:"background,omitempty"`
	Title      string `json:"title,omitempty"`
	SiteName   string `json:"site_name,omitempty"`
	ThemeColor string `json:"theme_color,omitempty"`
	BgColor    string `json:"bg_color,omitempty"`
	GridLines  bool   `json:"grid_lines,omitempty"`
}

// Keyer builds cache keys.
type Keyer interface {
	ArtifactKey(gridHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes the grid hash together with the options.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// ArtifactKey returns "artifact:<sha256>" for the grid and options.
func (DefaultKeyer) ArtifactKey(gridHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", gridHash, opts)
}
