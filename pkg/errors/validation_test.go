package errors

import (
	"testing"
)

func TestValidateShape(t *testing.T) {
	tests := []struct {
		name    string
		shape   []int
		n       int
		wantErr bool
	}{
		{"matrix", []int{2, 3}, 6, false},
		{"vector", []int{4}, 4, false},
		{"scalar-like", []int{1}, 1, false},

		{"empty shape", nil, 0, true},
		{"zero dim", []int{0, 3}, 0, true},
		{"negative dim", []int{-1, 3}, 3, true},
		{"size mismatch", []int{2, 3}, 5, true},
		{"too many dims", []int{1, 1, 1, 1, 1, 1, 1, 1, 1}, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateShape("p", tt.shape, tt.n)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateShape(%v, %d) error = %v, wantErr %v", tt.shape, tt.n, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidModel) {
				t.Errorf("ValidateShape() code = %v, want %v", GetCode(err), ErrCodeInvalidModel)
			}
		})
	}
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"root", "", false},
		{"simple", "fc1.weight", false},
		{"nested", "encoder.layers.0.weight", false},

		{"leading dot", ".weight", true},
		{"trailing dot", "fc1.", true},
		{"double dot", "fc1..weight", true},
		{"space", "fc 1.weight", true},
		{"newline", "fc1\n.weight", true},
		{"null byte", "fc1\x00.weight", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
