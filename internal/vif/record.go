package vif

import (
	"encoding/binary"
	"time"
)

// VIF record layout constants. Offsets are relative to the start of the
// 3-byte "VIB" frame marker.
const (
	MarkerSize    = 3  // "VIB" frame marker
	HeaderSize    = 12 // marker + type byte + size word + 6-byte timestamp
	RecordSize    = 68 // the only declared size the decoder accepts
	recordBufSize = 70 // capture buffer; anything past it is skipped, not read

	offType      = 3  // record type tag (0x88, or 0x8A for extended captures)
	offSize      = 4  // declared record size, little-endian u16
	offTimestamp = 6  // second, minute, hour, day, month, 2-digit year
	offOverallV  = 12 // overall velocity magnitude, packed float
	offAxisX     = 14 // X axis block, 7 packed 16-bit fields
	offAxisY     = 28
	offAxisZ     = 42
	offTemp      = 56 // temperature, 0.5 degC per LSB offset by -27.5
	offBattery   = 57 // battery voltage, 10 mV per LSB offset by +2.45 V
	offMemory    = 58 // low 7 bits memory use %, top bit USB power
	offSignal    = 59 // low 5 bits signal strength, bits 5/6 transmit flags
	offPeak      = 60 // bits 0-1 peak type, bit 2 protocol code, bits 6-7 clock changed
	offError     = 61 // raw device error code
	offGeophone  = 62 // geophone serial, little-endian u16
	offCounter   = 64 // 3-byte device record counter

	recordTypeMask     = 0xFD
	recordTypeBase     = 0x88 // masked type accepted by the validator
	recordTypeExtended = 0x8A // selects KB decoding for the third axis word

	// Read types classified from the byte distance between consecutive
	// frames: exactly one record length apart means the capture ran
	// continuously, anything else means it was resumed.
	ReadTypeContinuous = 2
	ReadTypeResumed    = 5

	// Accepted read types {0,2,6} expressed as a bitmask.
	readTypeAcceptMask = 0x45
)

// Record is one raw frame captured by the Scanner. Data holds the frame
// bytes zero-padded to the buffer size; Offset is the byte position of
// the marker in the source stream. ReadType is assigned by the Scanner
// once the following frame's offset is known.
type Record struct {
	Data     [recordBufSize]byte
	Offset   int64
	ReadType int
}

// Type returns the record type tag.
func (r *Record) Type() byte { return r.Data[offType] }

// Extended reports whether the record carries the extended type tag.
func (r *Record) Extended() bool { return r.Type() == recordTypeExtended }

// DeclaredSize returns the record size stored in the frame header.
func (r *Record) DeclaredSize() int {
	return int(binary.LittleEndian.Uint16(r.Data[offSize : offSize+2]))
}

func (r *Record) u16(off int) uint16 {
	return binary.LittleEndian.Uint16(r.Data[off : off+2])
}

func (r *Record) i16(off int) int16 {
	return int16(r.u16(off))
}

// Counter returns the device's trailing 3-byte record counter, or false
// when the declared size says the record does not carry one.
func (r *Record) Counter() (uint32, bool) {
	if r.DeclaredSize() <= 0x43 {
		return 0, false
	}
	d := &r.Data
	return uint32(d[offCounter]) + (uint32(d[offCounter+1])+uint32(d[offCounter+2])<<8)<<8, true
}

// Timestamp returns the embedded record time. ok is false when any
// calendar component is out of range. Years are two digits offset from
// 2000; February follows the device's year%4 leap rule, which is exact
// for the 2000-2099 span the hardware can express.
func (r *Record) Timestamp() (time.Time, bool) {
	sec := int(r.Data[offTimestamp])
	min := int(r.Data[offTimestamp+1])
	hour := int(r.Data[offTimestamp+2])
	day := int(r.Data[offTimestamp+3])
	month := int(r.Data[offTimestamp+4])
	yy := int(r.Data[offTimestamp+5])

	if sec > 59 || min > 59 || hour > 23 || yy > 99 {
		return time.Time{}, false
	}
	if month < 1 || month > 12 {
		return time.Time{}, false
	}
	if day < 1 || day > daysInMonth(month, yy) {
		return time.Time{}, false
	}
	return time.Date(2000+yy, time.Month(month), day, hour, min, sec, 0, time.UTC), true
}

func daysInMonth(month, yy int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	default:
		if yy&3 == 0 {
			return 29
		}
		return 28
	}
}

// validToProcess is the first validation gate: the read type must be in
// the accepted set and the declared size must be exactly one record.
func validToProcess(size, readType int) bool {
	return readType <= 9 && size == RecordSize && (1<<uint(readType))&readTypeAcceptMask != 0
}

func validType(t byte) bool { return t&recordTypeMask == recordTypeBase }
