package vif

import "testing"

func TestFormatFixed_HalfToEven(t *testing.T) {
	testCases := []struct {
		name     string
		value    float64
		decimals int
		expected string
	}{
		{"tie_rounds_down_to_even", 2.5, 0, "2"},
		{"tie_rounds_up_to_even", 3.5, 0, "4"},
		{"tie_two_decimals", 2.345, 2, "2.34"},
		{"tie_two_decimals_up", 0.135, 2, "0.14"},
		{"tie_within_epsilon", 1.005, 2, "1.00"},
		{"plain_round_up", 2.346, 2, "2.35"},
		{"plain_round_down", 2.344, 2, "2.34"},
		{"negative_tie", -2.5, 0, "-2"},
		{"negative_plain", -1.26, 1, "-1.3"},
		{"zero", 0, 2, "0.00"},
		{"four_decimals", 1.23456, 4, "1.2346"},
		{"integer_value", 7, 1, "7.0"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatFixed(tc.value, tc.decimals); got != tc.expected {
				t.Errorf("FormatFixed(%v, %d) = %q, want %q", tc.value, tc.decimals, got, tc.expected)
			}
		})
	}
}

func TestFormatPackedFloat(t *testing.T) {
	testCases := []struct {
		name     string
		raw      uint16
		long     bool
		expected string
	}{
		{"zero", 0x0000, false, "0.00"},
		{"zero_long", 0x0000, true, "0.0000"},
		{"shift_zero", 0x0800, false, "0.00"},           // 2048 micro-units
		{"shift_five", 0x3000, false, "0.07"},           // 65536 micro-units
		{"shift_five_long", 0x3000, true, "0.0655"},     // 0.065536
		{"sentinel_empty", 0xFFFD, false, ""},
		{"overload_empty", 0xA000, false, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := formatPackedFloat(tc.raw, tc.long); got != tc.expected {
				t.Errorf("formatPackedFloat(%#04x, %v) = %q, want %q", tc.raw, tc.long, got, tc.expected)
			}
		})
	}
}

func TestFormatPackedInt16(t *testing.T) {
	testCases := []struct {
		name     string
		value    int16
		long     bool
		expected string
	}{
		{"positive", 25, false, "12.5"},
		{"positive_long", 25, true, "12.5000"},
		{"odd_half", 5, false, "2.5"},
		{"negative", -10, false, "-5.0"},
		{"sentinel_empty", -3, false, ""},
		{"below_sentinel_range", -5, false, "-2.5"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := formatPackedInt16(tc.value, tc.long); got != tc.expected {
				t.Errorf("formatPackedInt16(%d, %v) = %q, want %q", tc.value, tc.long, got, tc.expected)
			}
		})
	}
}
