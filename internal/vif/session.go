package vif

import (
	"io"
	"os"

	"github.com/vibra-data/vif2csv/internal/monitoring"
	"github.com/vibra-data/vif2csv/internal/timeutil"
)

// Session holds the per-file decode state: the KB-mode flag from the
// pre-scan and the skip/process tallies. A fresh session is created
// for every input file; no decode state crosses files. The processed
// tally doubles as the 1-based row count, each acceptance emitting
// exactly one row.
type Session struct {
	opts     Options
	clock    timeutil.Clock
	extended bool

	scanned   int
	processed int
	skipped   int

	velocities []float64
}

// Summary reports the per-file outcome. Processed plus Skipped always
// equals Scanned.
type Summary struct {
	Scanned   int
	Processed int
	Skipped   int
	Stats     *VelocityStats
}

// decode applies the validation chain to one scanned record and, when
// it passes, decodes it. Every rejection, structural or filtered, lands
// in the same skip tally; downstream tooling relies on the combined
// figure, so the counts are deliberately not separated.
func (s *Session) decode(rec *Record) (*Row, bool) {
	if !validToProcess(rec.DeclaredSize(), rec.ReadType) {
		s.skipped++
		return nil, false
	}
	if !validType(rec.Type()) {
		s.skipped++
		return nil, false
	}
	if rec.DeclaredSize() != RecordSize {
		s.skipped++
		return nil, false
	}
	ts, ok := rec.Timestamp()
	if !ok {
		s.skipped++
		return nil, false
	}
	if s.opts.Today {
		now := s.clock.Now()
		if ts.Year() != now.Year() || ts.Month() != now.Month() || ts.Day() != now.Day() {
			s.skipped++
			return nil, false
		}
	} else if s.opts.Day != "" {
		if ts.Format("2006-01-02") != s.opts.Day {
			s.skipped++
			return nil, false
		}
	}

	s.processed++
	row := Decode(rec, s.extended, s.opts.Long)
	if s.opts.Stats && row.VelocityOK {
		s.velocities = append(s.velocities, row.Velocity)
	}
	return row, true
}

// Converter drives the scan, validate, decode, emit pipeline across a
// batch of files. Rows from all files interleave into the same sinks;
// counters and the KB pre-scan restart per file, the header is emitted
// at most once per batch.
type Converter struct {
	opts  Options
	clock timeutil.Clock
	sinks []RowSink

	headerDone bool
}

// NewConverter returns a converter emitting rows to the given sinks.
func NewConverter(opts Options, sinks ...RowSink) *Converter {
	return &Converter{opts: opts, clock: timeutil.NewRealClock(), sinks: sinks}
}

// SetClock replaces the wall clock consulted by the today filter.
func (c *Converter) SetClock(clock timeutil.Clock) { c.clock = clock }

// ConvertFile processes one input file.
func (c *Converter) ConvertFile(name string) (Summary, error) {
	f, err := os.Open(name)
	if err != nil {
		return Summary{}, err
	}
	defer f.Close()
	return c.convert(f, name)
}

// Convert processes a single seekable byte source. The source is read
// twice: once by the pre-scan, once by the record scan.
func (c *Converter) Convert(src io.ReadSeeker) (Summary, error) {
	return c.convert(src, "")
}

func (c *Converter) convert(src io.ReadSeeker, name string) (Summary, error) {
	extended := DetectExtended(src)
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return Summary{}, err
	}

	if c.opts.Header && !c.headerDone {
		names := HeaderNames(c.opts.Counter, extended)
		units := HeaderUnits(c.opts.Counter)
		for _, sink := range c.sinks {
			if hs, ok := sink.(HeaderSink); ok {
				if err := hs.WriteHeader(names, units); err != nil {
					return Summary{}, err
				}
			}
		}
		c.headerDone = true
	}

	sess := &Session{opts: c.opts, clock: c.clock, extended: extended}
	sc := NewScanner(src)
	for sc.Scan() {
		row, ok := sess.decode(sc.Record())
		if !ok {
			continue
		}
		row.Source = name
		for _, sink := range c.sinks {
			if err := sink.WriteRow(row); err != nil {
				return Summary{}, err
			}
		}
	}
	sess.scanned = sc.Scanned()

	monitoring.Logf("Total records: %d", sess.scanned)
	monitoring.Logf("Processed: %d, Skipped: %d", sess.processed, sess.skipped)

	sum := Summary{Scanned: sess.scanned, Processed: sess.processed, Skipped: sess.skipped}
	if c.opts.Stats {
		sum.Stats = NewVelocityStats(sess.velocities)
	}
	return sum, nil
}
