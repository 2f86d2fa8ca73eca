package coordinates

import (
	"errors"
	"math"
	"testing"
)

func TestParseLeadingFloat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{name: "integer", input: "45", want: 45},
		{name: "decimal", input: "39.11539", want: 39.11539},
		{name: "explicit plus", input: "+12.5", want: 12.5},
		{name: "negative", input: "-107.6584", want: -107.6584},
		{name: "leading whitespace", input: " \t\n 7", want: 7},
		{name: "leading dot", input: ".5", want: 0.5},
		{name: "trailing dot", input: "5.", want: 5},
		{name: "trailing letters", input: "45abc", want: 45},
		{name: "trailing space and text", input: "12 north", want: 12},
		{name: "second dot stops", input: "1.2.3", want: 1.2},
		{name: "exponent", input: "1.5e2", want: 150},
		{name: "negative exponent", input: "25E-1", want: 2.5},
		{name: "dangling exponent", input: "3e", want: 3},
		{name: "dangling signed exponent", input: "3e+x", want: 3},
		{name: "hex is not special", input: "0x1A", want: 0},
		{name: "infinity", input: "Infinity", want: math.Inf(1)},
		{name: "negative infinity", input: "-Infinityabc", want: math.Inf(-1)},
		{name: "overflow", input: "1e400", want: math.Inf(1)},

		{name: "empty", input: "", wantErr: true},
		{name: "whitespace only", input: "   ", wantErr: true},
		{name: "letters", input: "abc", wantErr: true},
		{name: "sign only", input: "-", wantErr: true},
		{name: "dot only", input: ".", wantErr: true},
		{name: "nan literal", input: "NaN", wantErr: true},
		{name: "lowercase inf", input: "inf", wantErr: true},
		{name: "letter before digits", input: "x45", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLeadingFloat(tt.input)

			if tt.wantErr {
				if !errors.Is(err, ErrNotANumber) {
					t.Errorf("ParseLeadingFloat(%q) error = %v, want %v", tt.input, err, ErrNotANumber)
				}
				return
			}

			if err != nil {
				t.Fatalf("ParseLeadingFloat(%q) unexpected error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseLeadingFloat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
