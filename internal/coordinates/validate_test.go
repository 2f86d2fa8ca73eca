package coordinates

import (
	"errors"
	"fmt"
	"testing"

	"haversine/internal/types"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		want     types.Coords
		wantKind ErrorKind
	}{
		{name: "simple pair", raw: "10,10", want: types.NewCoords(10, 10)},
		{name: "negative decimals", raw: "-33.8688,151.2093", want: types.NewCoords(-33.8688, 151.2093)},
		{name: "whitespace around values", raw: "  39.11539 , -107.6584 ", want: types.NewCoords(39.11539, -107.6584)},
		{name: "trailing garbage on latitude", raw: "10abc,20", want: types.NewCoords(10, 20)},
		{name: "trailing garbage on longitude", raw: "10,20deg", want: types.NewCoords(10, 20)},
		{name: "latitude boundary", raw: "90,0", want: types.NewCoords(90, 0)},
		{name: "negative latitude boundary", raw: "-90,0", want: types.NewCoords(-90, 0)},
		{name: "longitude boundary", raw: "0,180", want: types.NewCoords(0, 180)},
		{name: "negative longitude boundary", raw: "0,-180", want: types.NewCoords(0, -180)},
		{name: "exponent notation", raw: "1e1,-2.5E1", want: types.NewCoords(10, -25)},

		{name: "empty string", raw: "", wantKind: InputNeeded},
		{name: "only whitespace", raw: "   ", wantKind: InputNeeded},
		{name: "empty first segment", raw: ",10", wantKind: InputNeeded},
		{name: "blank first segment", raw: "  ,10", wantKind: InputNeeded},
		{name: "no comma", raw: "45", wantKind: CommaNeeded},
		{name: "no comma with space", raw: "45 10", wantKind: CommaNeeded},
		{name: "two commas", raw: "1,2,3", wantKind: TooManyCommas},
		{name: "trailing extra comma", raw: "1,2,", wantKind: TooManyCommas},
		{name: "latitude not a number", raw: "x,10", wantKind: LatNotValidNumber},
		{name: "latitude lone sign", raw: "-,10", wantKind: LatNotValidNumber},
		{name: "longitude not a number", raw: "10,x", wantKind: LonNotValidNumber},
		{name: "longitude empty", raw: "10,", wantKind: LonNotValidNumber},
		{name: "latitude out of range", raw: "91,10", wantKind: NotInLatRange},
		{name: "negative latitude out of range", raw: "-90.0001,10", wantKind: NotInLatRange},
		{name: "longitude out of range", raw: "10,181", wantKind: NotInLonRange},
		{name: "negative longitude out of range", raw: "10,-180.5", wantKind: NotInLonRange},
		{name: "infinite latitude", raw: "Infinity,10", wantKind: NotInLatRange},
		{name: "overflowing longitude", raw: "10,1e400", wantKind: NotInLonRange},

		// order: both parses run before any range check
		{name: "bad longitude wins over latitude range", raw: "91,x", wantKind: LonNotValidNumber},
		{name: "latitude range wins over longitude range", raw: "91,181", wantKind: NotInLatRange},
		{name: "comma count wins over parse", raw: "x,y,z", wantKind: TooManyCommas},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Validate(tt.raw)

			if tt.wantKind != 0 {
				if err == nil {
					t.Fatalf("Validate(%q) expected error %v but got %v", tt.raw, tt.wantKind, got)
				}
				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("Validate(%q) error type = %T, want *ValidationError", tt.raw, err)
				}
				if verr.Kind != tt.wantKind {
					t.Errorf("Validate(%q) kind = %v, want %v", tt.raw, verr.Kind, tt.wantKind)
				}
				if got != (types.Coords{}) {
					t.Errorf("Validate(%q) returned coords %v alongside error", tt.raw, got)
				}
				return
			}

			if err != nil {
				t.Fatalf("Validate(%q) unexpected error = %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("Validate(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestValidate_RoundTrip(t *testing.T) {
	for lat := -90.0; lat <= 90; lat += 7.5 {
		for lon := -180.0; lon <= 180; lon += 11.25 {
			raw := fmt.Sprintf("%v,%v", lat, lon)
			got, err := Validate(raw)
			if err != nil {
				t.Fatalf("Validate(%q) unexpected error = %v", raw, err)
			}
			if got.Latitude != lat || got.Longitude != lon {
				t.Errorf("Validate(%q) = %v, want (%v, %v)", raw, got, lat, lon)
			}
		}
	}
}

func TestValidate_ErrorMessages(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "", want: "No input provided"},
		{raw: "45", want: "Separate latitude and longitude values with a comma for valid input."},
		{raw: "1,2,3", want: "Invalid input, too many commas."},
		{raw: "x,10", want: "Invalid input, latitude must be a number."},
		{raw: "10,x", want: "Invalid input, longitude must be a number."},
		{raw: "100,10", want: "Invalid input, latitude must be between -90 and 90."},
		{raw: "10,181", want: "Invalid input, longitude must be between -180 and 180."},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			_, err := Validate(tt.raw)
			if err == nil {
				t.Fatalf("Validate(%q) expected error", tt.raw)
			}
			if err.Error() != tt.want {
				t.Errorf("Validate(%q) error = %q, want %q", tt.raw, err.Error(), tt.want)
			}
		})
	}
}
