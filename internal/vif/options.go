package vif

import (
	"fmt"
	"strconv"
)

// Options configure one conversion run. They are immutable once the
// converter is constructed.
type Options struct {
	Header  bool   // emit the two-line header before the first file
	Counter bool   // include the device counter column
	Today   bool   // only emit records stamped with the current date
	Day     string // only emit records from this normalized YYYY-MM-DD date
	Long    bool   // extended 4-decimal precision
	Stats   bool   // collect per-file velocity statistics
}

// DefaultOptions returns the option set matching a bare invocation:
// counter column on, everything else off.
func DefaultOptions() Options { return Options{Counter: true} }

// ValidDateFilter accepts YYYY-MM-DD or the two-digit YY-MM-DD
// shorthand.
func ValidDateFilter(s string) bool {
	switch len(s) {
	case 8:
		return s[2] == '-' && s[5] == '-' &&
			allDigits(s[:2]) && allDigits(s[3:5]) && allDigits(s[6:8])
	case 10:
		return s[4] == '-' && s[7] == '-' &&
			allDigits(s[:4]) && allDigits(s[5:7]) && allDigits(s[8:10])
	}
	return false
}

// NormalizeDateFilter expands the YY-MM-DD shorthand. The device's
// two-digit years all live in the 2000s.
func NormalizeDateFilter(s string) string {
	if len(s) == 8 {
		yy, _ := strconv.Atoi(s[:2])
		return fmt.Sprintf("%04d-%s", 2000+yy, s[3:])
	}
	return s
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
