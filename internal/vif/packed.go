package vif

// The device packs most measurements into a 16-bit scaled float: the
// top five bits select a left shift, the low 11 bits are a mantissa
// with an implied twelfth bit. Decoding yields integers in micro-units.
// A handful of signed 16-bit values are reserved as sentinels for
// device-reported axis states.
const (
	float16Divisor = 1_000_000.0
	int16Divisor   = 2.0

	// overloadLimit is the largest decodable measurement; anything
	// above it is the device's overload indication.
	overloadLimit = 99_999_999

	maxShift = 0x13
)

// decodePackedFloat expands a packed 16-bit float to integer
// micro-units. Raw values whose shift field falls outside 0..0x13 are
// taken verbatim as signed 16-bit integers, which is how the sentinel
// codes -1..-4 arrive.
func decodePackedFloat(raw uint16) int64 {
	shift := int(raw>>11) - 1
	if shift < 0 || shift > maxShift {
		return int64(int16(raw))
	}
	return int64(raw&0x7FF|0x800) << uint(shift)
}

// isSpecial reports whether a decoded value is one of the four
// device-reported sentinel states.
func isSpecial(v int64) bool { return v >= -4 && v <= -1 }

// isOverload reports whether a decoded value is in the overload range.
// Only packed-float fields can overload; the plain int16 encoding has
// no overload sentinel.
func isOverload(v int64) bool { return v > overloadLimit }

// probeRaw classifies a raw 16-bit field without fully decoding it.
// It mirrors decodePackedFloat's structure but applies the overload
// boundary check differently, so the two are deliberately kept as
// separate routines.
func probeRaw(raw uint16) AxisStatus {
	shift := int(raw>>11) - 1
	if shift < 0 || shift > maxShift {
		v := int64(int16(raw))
		if uint32(v) < 0xFFFFFFFC {
			return StatusNormal
		}
		return AxisStatus(v)
	}
	m := uint32(raw & 0x7FF)
	m = m&0xFF | ((m>>8|8)&0xFFFF)<<8
	v := int64(m) << uint(shift)
	if (uint64(v)+4)&0xFFFFFFFF > 3 {
		if v <= overloadLimit {
			return StatusNormal
		}
		return StatusOverload
	}
	return AxisStatus(v)
}
