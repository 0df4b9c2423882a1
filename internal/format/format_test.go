package format

import (
	"testing"
)

// TestNumber tests thousands-separator formatting
func TestNumber(t *testing.T) {
	tests := []struct {
		input    int64
		expected string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{3300000, "3,300,000"},
		{1234567890, "1,234,567,890"},
		{-1500000, "-1,500,000"},
	}

	for _, test := range tests {
		if got := Number(test.input); got != test.expected {
			t.Errorf("Number(%d) = %q, want %q", test.input, got, test.expected)
		}
	}
}

// TestCurrency tests the won-sign prefix including negatives
func TestCurrency(t *testing.T) {
	if got := Currency(3300000); got != "₩3,300,000" {
		t.Errorf("Currency = %q", got)
	}
	if got := Currency(-500); got != "-₩500" {
		t.Errorf("negative Currency = %q", got)
	}
}

// TestPercent tests fraction-to-percentage rendering
func TestPercent(t *testing.T) {
	if got := Percent(0.045); got != "4.50%" {
		t.Errorf("Percent(0.045) = %q", got)
	}
	if got := Percent(0); got != "0.00%" {
		t.Errorf("Percent(0) = %q", got)
	}
}
