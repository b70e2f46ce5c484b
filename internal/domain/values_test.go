package domain

import (
	"errors"
	"testing"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "01-02-2024", want: "01-02-2024"},
		{in: "1-2-2024", want: "01-02-2024"},
		{in: " 31-12-1999 ", want: "31-12-1999"},
		{in: "31-02-2024", want: "31-02-2024"},
		{in: "5-1-999", want: "05-01-0999"},
		{in: "00-01-2024", wantErr: true},
		{in: "01-00-2024", wantErr: true},
		{in: "01-01-0", wantErr: true},
		{in: "01/01/2024", wantErr: true},
		{in: "aa-01-2024", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := NormalizeDate(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got %s", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{in: "100", want: 100},
		{in: " 12.75 ", want: 12.75},
		{in: "-3", want: -3},
		{in: "abc", wantErr: true},
		{in: "", wantErr: true},
		{in: "NaN", wantErr: true},
		{in: "nan", wantErr: true},
		{in: "Inf", wantErr: true},
		{in: "+Inf", wantErr: true},
		{in: "-Infinity", wantErr: true},
		{in: "1e400", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDecimal("value", tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrValidation) {
					t.Errorf("expected validation error, got %v (%v)", err, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
