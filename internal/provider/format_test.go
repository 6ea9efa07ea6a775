package provider

import (
	"math"
	"testing"
)

func ptr(f float64) *float64 { return &f }

func TestFormatMarketCap(t *testing.T) {
	tests := []struct {
		name  string
		value *float64
		want  string
	}{
		{"nil", nil, "N/A"},
		{"zero", ptr(0), "N/A"},
		{"nan", ptr(math.NaN()), "N/A"},
		{"trillions", ptr(2_950_000_000_000), "2.95T"},
		{"billions", ptr(812_400_000_000), "812.40B"},
		{"millions", ptr(13_071_000), "13.07M"},
		{"below million", ptr(987_654), "987,654"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatMarketCap(tt.value); got != tt.want {
				t.Errorf("FormatMarketCap() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalizeCurrency(t *testing.T) {
	tests := map[string]string{
		"":     "USD",
		"usd":  "USD",
		"TWD":  "TWD",
		" eur": "EUR",
		"XYZQ": "USD",
	}
	for in, want := range tests {
		if got := normalizeCurrency(in); got != want {
			t.Errorf("normalizeCurrency(%q) = %q, want %q", in, got, want)
		}
	}
}
