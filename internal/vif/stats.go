package vif

import "gonum.org/v1/gonum/stat"

// VelocityStats summarises the overall |v| readings of a file's
// accepted records. Records whose overall status is abnormal contribute
// nothing.
type VelocityStats struct {
	Count  int
	Mean   float64
	StdDev float64
	Max    float64
}

// NewVelocityStats computes summary statistics over the given readings.
func NewVelocityStats(values []float64) *VelocityStats {
	s := &VelocityStats{Count: len(values)}
	if len(values) == 0 {
		return s
	}
	s.Mean = stat.Mean(values, nil)
	if len(values) > 1 {
		s.StdDev = stat.StdDev(values, nil)
	}
	s.Max = values[0]
	for _, v := range values[1:] {
		if v > s.Max {
			s.Max = v
		}
	}
	return s
}
