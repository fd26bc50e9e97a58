package core

import "testing"

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{50000, "+50.000 ₫"},
		{-50000, "-50.000 ₫"},
		{0, "0 ₫"},
		{1, "+1 ₫"},
		{1000000, "+1.000.000 ₫"},
	}
	for _, tt := range tests {
		if got := FormatCurrency(tt.amount); got != tt.want {
			t.Errorf("FormatCurrency(%d) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestFormatNoSignCurrency(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{50000, "50.000 ₫"},
		{0, "0 ₫"},
		{-5000, "-5.000 ₫"},
	}
	for _, tt := range tests {
		if got := FormatNoSignCurrency(tt.amount); got != tt.want {
			t.Errorf("FormatNoSignCurrency(%d) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"50000", 50000},
		{" 50000 ", 50000},
		{"12abc", 12},
		{"-5", -5},
		{"+7", 7},
		{"abc", 0},
		{"", 0},
		{"-", 0},
	}
	for _, tt := range tests {
		if got := ParseAmount(tt.input); got != tt.want {
			t.Errorf("ParseAmount(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}
