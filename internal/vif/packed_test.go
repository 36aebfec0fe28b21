package vif

import "testing"

func TestDecodePackedFloat(t *testing.T) {
	testCases := []struct {
		name     string
		raw      uint16
		expected int64
	}{
		{"zero", 0x0000, 0},
		{"small_raw_verbatim", 0x0123, 0x0123},
		{"shift_zero", 0x0800, 0x800},
		{"shift_zero_mantissa", 0x0801, 0x801},
		{"shift_one", 0x1000, 0x800 << 1},
		{"shift_five", 0x3000, 0x800 << 5},
		{"max_shift", 0xA000, 0x800 << 19},
		{"beyond_max_shift_verbatim", 0xA800, -22528},
		{"sentinel_disconnected", 0xFFFF, -1},
		{"sentinel_data_invalid", 0xFFFE, -2},
		{"sentinel_no_data", 0xFFFD, -3},
		{"sentinel_not_responding", 0xFFFC, -4},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := decodePackedFloat(tc.raw); got != tc.expected {
				t.Errorf("decodePackedFloat(%#04x) = %d, want %d", tc.raw, got, tc.expected)
			}
		})
	}
}

func TestProbeRaw(t *testing.T) {
	testCases := []struct {
		name     string
		raw      uint16
		expected AxisStatus
	}{
		{"zero_is_normal", 0x0000, StatusNormal},
		{"small_value_normal", 0x0123, StatusNormal},
		{"packed_value_normal", 0x0800, StatusNormal},
		{"large_packed_normal", 0x3FFF, StatusNormal},
		{"overload", rawOverload, StatusOverload},
		{"overload_with_mantissa", 0xA7FF, StatusOverload},
		{"disconnected", 0xFFFF, StatusDisconnected},
		{"data_invalid", 0xFFFE, StatusDataInvalid},
		{"no_data", rawNoData, StatusNoData},
		{"not_responding", 0xFFFC, StatusNotResponding},
		{"below_sentinel_range_normal", 0xFFFB, StatusNormal},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := probeRaw(tc.raw); got != tc.expected {
				t.Errorf("probeRaw(%#04x) = %d, want %d", tc.raw, got, tc.expected)
			}
		})
	}
}

func TestSpecialAndOverloadRanges(t *testing.T) {
	for v := int64(-4); v <= -1; v++ {
		if !isSpecial(v) {
			t.Errorf("isSpecial(%d) = false, want true", v)
		}
	}
	for _, v := range []int64{-5, 0, 1, overloadLimit} {
		if isSpecial(v) {
			t.Errorf("isSpecial(%d) = true, want false", v)
		}
	}
	if isOverload(overloadLimit) {
		t.Errorf("isOverload(%d) should be false at the boundary", int64(overloadLimit))
	}
	if !isOverload(overloadLimit + 1) {
		t.Errorf("isOverload(%d) should be true", int64(overloadLimit+1))
	}
}
