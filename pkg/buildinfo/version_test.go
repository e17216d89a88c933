package buildinfo

import (
	"runtime"
	"strings"
	"testing"
)

func TestTemplate(t *testing.T) {
	old := Version
	Version = "v1.2.3"
	defer func() { Version = old }()

	if tmpl := Template(); !strings.HasPrefix(tmpl, "{{.Name}} version v1.2.3\n") {
		t.Errorf("Template() = %q, want version line first", tmpl)
	}
}

func TestString(t *testing.T) {
	old := Version
	Version = "v0.3.0"
	defer func() { Version = old }()

	s := String()
	for _, want := range []string{"pixelforge v0.3.0", "commit: ", "go: " + runtime.Version()} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}
}
