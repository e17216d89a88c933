// Package buildinfo reports the pixelforge version.
//
// Release builds stamp the variables with ldflags:
//
//	go build -ldflags "-X github.com/bward3321/pixelforge/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/bward3321/pixelforge/pkg/buildinfo.Commit=$(git rev-parse --short HEAD)" \
//	    ./cmd/pixelforge
//
// A binary built with "go install ...@version" carries no ldflags; its
// module version is read from the embedded build info instead.
//
// Version also namespaces artifact cache keys, so upgrading invalidates
// artifacts rendered by an older encoder.
package buildinfo

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func init() {
	if Version != "dev" {
		return
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		Version = bi.Main.Version
	}
}

// String returns the multi-line form printed by "pixelforge version".
func String() string {
	return fmt.Sprintf("pixelforge %s\ncommit: %s\nbuilt: %s\ngo: %s", Version, Commit, Date, runtime.Version())
}

// Template returns the cobra --version template.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
