package vif

import (
	"bufio"
	"io"
)

// RowSink receives decoded rows from the converter. Rows never outlive
// the WriteRow call that delivers them.
type RowSink interface {
	WriteRow(row *Row) error
}

// HeaderSink is implemented by sinks that render the two-line header.
// The converter emits it once, before the first row of the first file.
type HeaderSink interface {
	WriteHeader(names, units string) error
}

// CSVSink writes rows in the quoted CSV dialect the format's tooling
// expects: every field double-quoted, comma-separated, no escaping.
// Decoded field values never contain quotes or commas, so the dialect
// is unambiguous. encoding/csv is unsuitable here because it only
// quotes fields that need it.
type CSVSink struct {
	w           *bufio.Writer
	withCounter bool
}

// NewCSVSink returns a sink writing to w.
func NewCSVSink(w io.Writer, withCounter bool) *CSVSink {
	return &CSVSink{w: bufio.NewWriter(w), withCounter: withCounter}
}

func (s *CSVSink) WriteHeader(names, units string) error {
	if _, err := s.w.WriteString(names + "\n"); err != nil {
		return err
	}
	_, err := s.w.WriteString(units + "\n")
	return err
}

func (s *CSVSink) WriteRow(row *Row) error {
	for i, f := range row.Fields(s.withCounter) {
		if i > 0 {
			if err := s.w.WriteByte(','); err != nil {
				return err
			}
		}
		if err := s.w.WriteByte('"'); err != nil {
			return err
		}
		if _, err := s.w.WriteString(f); err != nil {
			return err
		}
		if err := s.w.WriteByte('"'); err != nil {
			return err
		}
	}
	return s.w.WriteByte('\n')
}

// Flush drains the sink's buffer to the underlying writer.
func (s *CSVSink) Flush() error { return s.w.Flush() }
