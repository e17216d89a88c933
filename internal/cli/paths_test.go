package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bward3321/pixelforge/pkg/errors"
)

func TestCacheDir(t *testing.T) {
	t.Run("xdg", func(t *testing.T) {
		t.Setenv("XDG_CACHE_HOME", "/tmp/xdg")
		dir, err := cacheDir()
		if err != nil {
			t.Fatalf("cacheDir() error: %v", err)
		}
		if want := filepath.Join("/tmp/xdg", "pixelforge"); dir != want {
			t.Errorf("cacheDir() = %q, want %q", dir, want)
		}
	})
	t.Run("home", func(t *testing.T) {
		t.Setenv("XDG_CACHE_HOME", "")
		home := t.TempDir()
		t.Setenv("HOME", home)
		dir, err := cacheDir()
		if err != nil {
			t.Fatalf("cacheDir() error: %v", err)
		}
		if want := filepath.Join(home, ".cache", "pixelforge"); dir != want {
			t.Errorf("cacheDir() = %q, want %q", dir, want)
		}
	})
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		output, input, want string
	}{
		{"", "sprites/heart.toml", "sprites/heart"},
		{"", "heart.png", "heart"},
		{"build/heart.svg", "heart.toml", "build/heart"},
		{"build/heart.pdf", "heart.toml", "build/heart"},
		{"build/heart", "heart.toml", "build/heart"},
		{"build/heart.v2", "heart.toml", "build/heart.v2"},
	}
	for _, tt := range tests {
		if got := basePath(tt.output, tt.input); got != tt.want {
			t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
		}
	}
}

func TestOutputPaths(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		formats []string
		want    map[string]string
	}{
		{
			name:    "single format uses output verbatim",
			output:  "out/icon.bin",
			formats: []string{"ico"},
			want:    map[string]string{"ico": "out/icon.bin"},
		},
		{
			name:    "single format defaults next to input",
			formats: []string{"png"},
			want:    map[string]string{"png": "art/heart.png"},
		},
		{
			name:    "several formats share a base",
			output:  "build/heart.png",
			formats: []string{"png", "svg", "pdf"},
			want: map[string]string{
				"png": "build/heart.png",
				"svg": "build/heart.svg",
				"pdf": "build/heart.pdf",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := outputPaths(tt.output, "art/heart.toml", tt.formats)
			if len(got) != len(tt.want) {
				t.Fatalf("outputPaths() = %v, want %v", got, tt.want)
			}
			for f, p := range tt.want {
				if got[f] != p {
					t.Errorf("outputPaths()[%s] = %q, want %q", f, got[f], p)
				}
			}
		})
	}
}

func TestWriteOutput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "deeper", "heart.svg")
	if err := writeOutput(path, []byte("<svg/>")); err != nil {
		t.Fatalf("writeOutput() error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if string(data) != "<svg/>" {
		t.Errorf("written = %q", data)
	}

	for _, bad := range []string{"", "bad\x00name.png", strings.Repeat("a", 501)} {
		if err := writeOutput(bad, nil); !errors.Is(err, errors.ErrCodeInvalidPath) {
			t.Errorf("writeOutput(%q) error = %v, want INVALID_PATH", bad, err)
		}
	}
}
