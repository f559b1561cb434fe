package printers

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
)

func TestDetectColor(t *testing.T) {
	defer func() { color.NoColor = true }()
	t.Setenv("CI", "")
	t.Setenv("CLICOLOR", "")

	tests := map[string]struct {
		noColor string
		force   string
		want    bool
	}{
		"piped":          {want: true},
		"forced":         {force: "1", want: false},
		"no color wins":  {noColor: "1", force: "1", want: true},
		"force disabled": {force: "0", want: true},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv("NO_COLOR", tc.noColor)
			t.Setenv("CLICOLOR_FORCE", tc.force)
			DetectColor(&bytes.Buffer{})
			if color.NoColor != tc.want {
				t.Fatalf("NoColor = %v, want %v", color.NoColor, tc.want)
			}
		})
	}
}
