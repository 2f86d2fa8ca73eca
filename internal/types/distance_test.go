package types

import "testing"

func TestDistance_String(t *testing.T) {
	tests := []struct {
		name   string
		meters float64
		want   string
	}{
		{name: "zero keeps three decimals", meters: 0, want: "0.000km"},
		{name: "whole kilometers", meters: 877000, want: "877.000km"},
		{name: "rounds to meters", meters: 1411276.1834, want: "1411.276km"},
		{name: "rounds half meter up", meters: 111194.9266, want: "111.195km"},
		{name: "sub kilometer", meters: 42, want: "0.042km"},
		{name: "antipodal scale", meters: 20015086.796, want: "20015.087km"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewDistanceFromMeters(tt.meters).String()
			if got != tt.want {
				t.Errorf("String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDistance_Kilometers(t *testing.T) {
	d := NewDistanceFromMeters(2500)
	if d.Kilometers() != 2.5 {
		t.Errorf("Kilometers() = %v, want %v", d.Kilometers(), 2.5)
	}
}
