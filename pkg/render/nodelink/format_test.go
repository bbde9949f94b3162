package nodelink

import (
	"testing"

	"github.com/matzehuels/fcviz/pkg/errors"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"svg", FormatSVG, false},
		{"PNG", FormatPNG, false},
		{"jpeg", FormatJPG, false},
		{" gif ", FormatGIF, false},
		{"dot", FormatDOT, false},
		{"json", FormatJSON, false},
		{"pdf", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidFormat) {
					t.Errorf("ParseFormat(%q) error = %v, want %v", tt.in, err, errors.ErrCodeInvalidFormat)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, %v, want %q", tt.in, got, err, tt.want)
			}
		})
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    Direction
		wantErr bool
	}{
		{"LR", LeftToRight, false},
		{"tb", TopToBottom, false},
		{"left-to-right", LeftToRight, false},
		{"Top-To-Bottom", TopToBottom, false},
		{"RL", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDirection(tt.in)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidDirection) {
					t.Errorf("ParseDirection(%q) error = %v, want %v", tt.in, err, errors.ErrCodeInvalidDirection)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseDirection(%q) = %q, %v, want %q", tt.in, got, err, tt.want)
			}
		})
	}
}

func TestFormatHelpers(t *testing.T) {
	if FormatSVG.IsRaster() || FormatDOT.IsRaster() {
		t.Error("svg/dot reported as raster")
	}
	if !FormatGIF.IsRaster() {
		t.Error("gif not reported as raster")
	}
	if got := FormatPNG.Ext(); got != ".png" {
		t.Errorf("Ext() = %q, want .png", got)
	}
}
