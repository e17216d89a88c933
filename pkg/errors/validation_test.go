package errors

import (
	"strings"
	"testing"
)

func TestValidateDimension(t *testing.T) {
	tests := []struct {
		n       int
		wantErr bool
	}{
		{1, false},
		{256, false},
		{0, true},
		{-4, true},
	}

	for _, tt := range tests {
		err := ValidateDimension("size", tt.n)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateDimension(%d) error = %v, wantErr %v", tt.n, err, tt.wantErr)
		}
		if err != nil && !Is(err, ErrCodeInvalidDimension) {
			t.Errorf("ValidateDimension(%d) code = %v, want %v", tt.n, GetCode(err), ErrCodeInvalidDimension)
		}
	}
}

func TestValidateSiteName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "My Site", false},
		{"unicode", "Café Tools", false},
		{"max length", strings.Repeat("a", MaxSiteNameLength), false},

		{"empty", "", true},
		{"whitespace", "   ", true},
		{"too long", strings.Repeat("a", MaxSiteNameLength+1), true},
		{"newline", "foo\nbar", true},
		{"null byte", "foo\x00bar", true},
		{"invalid utf8", "foo\xffbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSiteName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSiteName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "out/favicon.zip", false},
		{"absolute", "/tmp/icon.ico", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 501), true},
		{"null byte", "icon\x00.ico", true},
		{"control char", "icon\x01.ico", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
