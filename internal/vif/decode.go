package vif

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// AxisData is the decoded projection of one 14-byte axis block. Value
// fields are pre-formatted strings; an abnormal axis carries only its
// state label.
type AxisData struct {
	State string // status label, empty when the axis is healthy
	V     string // velocity, mm/s
	KB    string // kb value (extended captures) or zero-crossing frequency, Hz
	FT    string // frequency, Hz
	U     string // displacement, mm
	A     string // acceleration, m/s2
	CV    string // category velocity, mm/s
	CF    string // category frequency, Hz
}

// Row is the flattened, human-readable projection of one accepted
// record. It is constructed per record, emitted to the sinks once and
// discarded.
type Row struct {
	Source string // file the record came from, set by the converter
	Date   string // YYYY-MM-DD
	Time   string // hh:mm:ss
	Stamp  time.Time

	Counter string // device record counter, empty when absent

	State    string // overall status label, empty when normal
	OverallV string // overall velocity magnitude, empty when abnormal

	X, Y, Z AxisData

	Temperature    string
	Battery        string
	MemoryUse      int
	USBPowered     int
	SignalStrength string // dBm, empty when the raw strength is zero
	SignalQuality  string
	Transmitted    int
	AllTransmitted int
	PeakType       string
	Code           string
	ErrorCode      int
	Geophone       string
	ClockChanged   int

	// Velocity carries the decoded overall magnitude in mm/s for the
	// stats and plot consumers; VelocityOK distinguishes a reading of
	// zero from an abnormal record.
	Velocity   float64
	VelocityOK bool
}

// Decode converts a validated record into a row. The caller supplies
// the file-wide extended flag from the pre-scan pass.
func Decode(rec *Record, extended, long bool) *Row {
	ts, _ := rec.Timestamp()

	x := axisStatus(rec, offAxisX)
	y := axisStatus(rec, offAxisY)
	z := axisStatus(rec, offAxisZ)
	overall := overallStatus(x, y, z)

	row := &Row{
		Date:  ts.Format("2006-01-02"),
		Time:  ts.Format("15:04:05"),
		Stamp: ts,
		State: overall.String(),
		X:     decodeAxis(rec, offAxisX, extended, long, x),
		Y:     decodeAxis(rec, offAxisY, extended, long, y),
		Z:     decodeAxis(rec, offAxisZ, extended, long, z),
	}

	if c, ok := rec.Counter(); ok {
		row.Counter = strconv.FormatUint(uint64(c), 10)
	}

	if overall == StatusNormal {
		row.OverallV = formatPackedFloat(rec.u16(offOverallV), long)
		if v := decodePackedFloat(rec.u16(offOverallV)); !isSpecial(v) && !isOverload(v) {
			row.Velocity = float64(v) / float16Divisor
			row.VelocityOK = true
		}
	}

	temperature := float64(rec.Data[offTemp])*0.5 - 27.5
	voltage := float64(rec.Data[offBattery])*0.01 + 2.45
	if long {
		row.Temperature = FormatFixed(temperature, 4)
		row.Battery = FormatFixed(voltage, 4)
	} else {
		row.Temperature = FormatFixed(temperature, 1)
		row.Battery = FormatFixed(voltage, 2)
	}

	row.MemoryUse = int(rec.Data[offMemory] & 0x7F)
	row.USBPowered = int(rec.Data[offMemory] >> 7)

	ss := rec.Data[offSignal] & 0x1F
	if ss != 0 {
		row.SignalStrength = strconv.Itoa(2*int(ss) - 113)
	}
	row.SignalQuality = signalQuality(ss)
	row.Transmitted = int(rec.Data[offSignal] >> 5 & 1)
	row.AllTransmitted = int(rec.Data[offSignal] >> 6 & 1)

	row.PeakType = peakTypeCategory(rec.Data[offPeak] & 3)
	row.Code = "DIN"
	if rec.Data[offPeak]&4 != 0 {
		row.Code = "SBR"
	}
	row.ErrorCode = int(rec.Data[offError])
	row.Geophone = formatGeophone(rec.u16(offGeophone))
	row.ClockChanged = int(rec.Data[offPeak] >> 6)

	return row
}

// decodeAxis decodes one axis block. An abnormal axis renders as its
// bare state label with every value column empty.
func decodeAxis(rec *Record, off int, extended, long bool, status AxisStatus) AxisData {
	if status != StatusNormal {
		return AxisData{State: status.String()}
	}
	return AxisData{
		V:  formatPackedFloat(rec.u16(off), long),
		KB: decodeKBZC(rec.i16(off+2), extended, long),
		FT: formatPackedInt16(rec.i16(off+4), long),
		U:  formatPackedFloat(rec.u16(off+6), long),
		A:  formatPackedFloat(rec.u16(off+8), long),
		CV: formatPackedFloat(rec.u16(off+10), long),
		CF: formatPackedInt16(rec.i16(off+12), long),
	}
}

// decodeKBZC handles the dual-mode third axis word. Extended captures
// store a packed kb value clamped to zero below 0.1; everything else
// stores a zero-crossing count that converts to a frequency, with
// non-positive counts rendered empty.
func decodeKBZC(raw int16, extended, long bool) string {
	if extended {
		kb := math.Sqrt(float64(decodePackedFloat(uint16(raw)))) * 0.01
		if math.IsNaN(kb) || kb <= 0.1 {
			kb = 0
		}
		return FormatFixed(kb, floatDecimals(long))
	}
	if raw <= 0 {
		return ""
	}
	return FormatFixed(1024.0/float64(raw), floatDecimals(long))
}

// signalQuality buckets the raw 5-bit signal strength.
func signalQuality(raw byte) string {
	switch {
	case raw == 0:
		return "Unknown"
	case raw > 23:
		return "Excellent"
	case raw > 15:
		return "Good"
	case raw > 7:
		return "Low"
	}
	return "Bad"
}

// peakTypeCategory maps the 2-bit peak type code to its label.
func peakTypeCategory(code byte) string {
	switch code {
	case 0:
		return "vcatnone"
	case 1:
		return "vcat1"
	case 2:
		return "vcat2"
	case 3:
		return "vcat3"
	}
	return "vcat"
}

// formatGeophone decodes the sensor serial word: the top two bits pick
// a model prefix, the low 14 bits are the serial number. The 11 pattern
// renders a fixed placeholder regardless of the low bits.
func formatGeophone(raw uint16) string {
	number := raw & 0x3FFF
	switch raw & 0xC000 {
	case 0x4000:
		return fmt.Sprintf("TDA%05d", number)
	case 0x8000:
		return fmt.Sprintf("TDS%05d", number)
	case 0xC000:
		return "???00000"
	}
	return fmt.Sprintf("unknown%05d", number)
}
