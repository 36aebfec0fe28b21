package vif

import (
	"strconv"
	"strings"
)

// Fields flattens the row into output column order.
func (r *Row) Fields(withCounter bool) []string {
	fields := make([]string, 0, 42)
	fields = append(fields, r.Date, r.Time)
	if withCounter {
		fields = append(fields, r.Counter)
	}
	fields = append(fields, r.State, r.OverallV)
	for _, a := range [...]AxisData{r.X, r.Y, r.Z} {
		fields = append(fields, a.State, a.V, a.KB, a.FT, a.U, a.A, a.CV, a.CF)
	}
	return append(fields,
		r.Temperature,
		r.Battery,
		strconv.Itoa(r.MemoryUse),
		strconv.Itoa(r.USBPowered),
		r.SignalStrength,
		r.SignalQuality,
		strconv.Itoa(r.Transmitted),
		strconv.Itoa(r.AllTransmitted),
		r.PeakType,
		r.Code,
		strconv.Itoa(r.ErrorCode),
		r.Geophone,
		strconv.Itoa(r.ClockChanged),
	)
}

// HeaderNames builds the column-name header line. The third axis
// column is labelled kb or f_zc depending on the file-wide extended
// flag, so the pre-scan must have run before this is emitted.
func HeaderNames(withCounter, extended bool) string {
	var b strings.Builder
	b.WriteString(`"date","time",`)
	if withCounter {
		b.WriteString(`"counter",`)
	}
	b.WriteString(`"state","|v|",`)
	for _, axis := range [...]string{"x", "y", "z"} {
		b.WriteString(`"state(` + axis + `)","v(` + axis + `)",`)
		if extended {
			b.WriteString(`"kb(` + axis + `)",`)
		} else {
			b.WriteString(`"f_zc(` + axis + `)",`)
		}
		b.WriteString(`"f_ft(` + axis + `)","u(` + axis + `)","a(` + axis + `)","v_cat(` + axis + `)","f_cat(` + axis + `)",`)
	}
	b.WriteString(`"temperature","battery","memory use","usb powered",`)
	b.WriteString(`"signal strength","signal quality","transmitted","all transmitted",`)
	b.WriteString(`"peak type","code","error code","geophone","clock changed",`)
	return strings.TrimSuffix(b.String(), ",")
}

// HeaderUnits builds the unit header line emitted under the names.
func HeaderUnits(withCounter bool) string {
	var b strings.Builder
	b.WriteString(`"YYYY-MM-DD","hh:mm:ss",`)
	if withCounter {
		b.WriteString(`"count",`)
	}
	b.WriteString(`"","mm/s",`)
	for i := 0; i < 3; i++ {
		b.WriteString(`"","mm/s","Hz","Hz","mm","m/s2","mm/s","Hz",`)
	}
	b.WriteString(`"°C","V","%","",`)
	b.WriteString(`"dBm","","","",`)
	b.WriteString(`"","","","","",`)
	return strings.TrimSuffix(b.String(), ",")
}
