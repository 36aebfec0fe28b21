package vif

import "math"

// AxisStatus is the per-axis health state probed from raw field bit
// patterns. The negative values are the device's own sentinel codes.
type AxisStatus int64

const (
	StatusNormal        AxisStatus = 0
	StatusDisconnected  AxisStatus = -1
	StatusDataInvalid   AxisStatus = -2
	StatusNoData        AxisStatus = -3
	StatusNotResponding AxisStatus = -4
	StatusOverload      AxisStatus = math.MaxInt64
)

// String renders the status for the CSV state columns. Normal is the
// empty string: a healthy axis shows values, not a label.
func (s AxisStatus) String() string {
	switch s {
	case StatusDisconnected:
		return "DISCONNECTED"
	case StatusDataInvalid:
		return "DATA INVALID"
	case StatusNoData:
		return "NO DATA"
	case StatusNotResponding:
		return "NOT RESPONDING"
	case StatusOverload:
		return "OVERLOAD"
	}
	return ""
}

// axisStatus probes velocity, displacement, acceleration and category
// velocity in that order; the first abnormal probe decides the axis.
func axisStatus(rec *Record, off int) AxisStatus {
	for _, fieldOff := range [...]int{off, off + 6, off + 8, off + 10} {
		if s := probeRaw(rec.u16(fieldOff)); s != StatusNormal {
			return s
		}
	}
	return StatusNormal
}

// overallStatus folds the three axis statuses into the record-level
// one. Overload on any axis wins; otherwise the first abnormal axis in
// X, Y, Z order.
func overallStatus(x, y, z AxisStatus) AxisStatus {
	if x == StatusOverload || y == StatusOverload || z == StatusOverload {
		return StatusOverload
	}
	for _, s := range [...]AxisStatus{x, y, z} {
		if s != StatusNormal {
			return s
		}
	}
	return StatusNormal
}
