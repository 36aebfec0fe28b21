// Package vif decodes the VIF binary telemetry container produced by
// vibration-monitoring hardware.
//
// A VIF file is an unstructured byte stream in which fixed-format
// records may appear anywhere. Each record starts with the literal
// marker "VIB" followed by a type tag, a little-endian declared size,
// a packed 6-byte timestamp, three 14-byte axis blocks and a block of
// device telemetry. The Scanner locates records, the validation chain
// in Session rejects malformed or filtered ones, and Decode expands the
// packed fields into a Row ready for CSV output.
package vif

import (
	"bufio"
	"encoding/binary"
	"io"
)

const scanBufSize = 256 * 1024

// Scanner extracts VIF frames from an arbitrary byte stream. It runs a
// four-state matcher (idle, V, VI, VIB) over the input; a mismatched
// byte resets the matcher, or restarts it when the byte is itself a
// marker start, so the scanner is robust to garbage between frames.
//
// A record's read type depends on the byte distance to the *next*
// record's marker, so the scanner holds exactly one captured frame back
// and only emits it once the following frame has been located or the
// stream has ended. The final buffered frame is emitted with the
// continuous read type, there being no successor to measure against.
type Scanner struct {
	r       *bufio.Reader
	offset  int64
	pending *Record // captured but awaiting the next frame's offset
	cur     *Record
	scanned int
	eof     bool
}

// NewScanner returns a Scanner reading frames from r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{r: bufio.NewReaderSize(r, scanBufSize)}
}

// Scan advances to the next classified record, returning false at end
// of stream. A truncated trailing frame is dropped silently; end of
// stream is a normal terminal condition, never an error.
func (s *Scanner) Scan() bool {
	for !s.eof {
		rec, ok := s.nextFrame()
		if !ok {
			s.eof = true
			break
		}
		s.scanned++
		if s.pending == nil {
			s.pending = rec
			continue
		}
		s.pending.ReadType = classifyReadType(rec.Offset - s.pending.Offset)
		s.cur, s.pending = s.pending, rec
		return true
	}
	if s.pending != nil {
		s.pending.ReadType = ReadTypeContinuous
		s.cur, s.pending = s.pending, nil
		return true
	}
	return false
}

// Record returns the record found by the last successful Scan.
func (s *Scanner) Record() *Record { return s.cur }

// Scanned reports how many frames the scanner has located so far,
// including the frame still held back for classification.
func (s *Scanner) Scanned() int { return s.scanned }

func classifyReadType(delta int64) int {
	if delta == RecordSize {
		return ReadTypeContinuous
	}
	return ReadTypeResumed
}

// nextFrame runs the marker matcher until a full frame is buffered or
// the stream ends.
func (s *Scanner) nextFrame() (*Record, bool) {
	state := 0
	for {
		b, err := s.r.ReadByte()
		if err != nil {
			return nil, false
		}
		s.offset++
		switch {
		case state == 0 && b == 'V':
			state = 1
		case state == 1 && b == 'I':
			state = 2
		case state == 2 && b == 'B':
			return s.captureFrame(s.offset - MarkerSize)
		case b == 'V':
			state = 1
		default:
			state = 0
		}
	}
}

// captureFrame reads the remainder of a frame whose marker starts at
// offset start. Bytes past the capture buffer are discarded rather than
// read into memory, which bounds the buffer regardless of the declared
// size.
func (s *Scanner) captureFrame(start int64) (*Record, bool) {
	rec := &Record{Offset: start}
	rec.Data[0], rec.Data[1], rec.Data[2] = 'V', 'I', 'B'
	if !s.readFull(rec.Data[MarkerSize:HeaderSize]) {
		return nil, false
	}
	remaining := rec.DeclaredSize() - HeaderSize
	if remaining <= 0 {
		return rec, true
	}
	n := remaining
	if n > recordBufSize-HeaderSize {
		n = recordBufSize - HeaderSize
	}
	if !s.readFull(rec.Data[HeaderSize : HeaderSize+n]) {
		return nil, false
	}
	if excess := remaining - n; excess > 0 && !s.discard(excess) {
		return nil, false
	}
	return rec, true
}

func (s *Scanner) readFull(buf []byte) bool {
	n, err := io.ReadFull(s.r, buf)
	s.offset += int64(n)
	return err == nil
}

func (s *Scanner) discard(n int) bool {
	d, err := s.r.Discard(n)
	s.offset += int64(d)
	return err == nil
}

// DetectExtended runs the marker matcher over the whole stream looking
// for any frame carrying the extended type tag. The result selects
// between KB and ZC decoding for the third axis word and changes the
// column headers, so it must be known before the first row or header is
// emitted. It therefore runs as a separate pass ahead of scanning.
func DetectExtended(r io.Reader) bool {
	br := bufio.NewReaderSize(r, scanBufSize)
	var hdr [HeaderSize - MarkerSize]byte
	state := 0
	for {
		b, err := br.ReadByte()
		if err != nil {
			return false
		}
		switch {
		case state == 0 && b == 'V':
			state = 1
		case state == 1 && b == 'I':
			state = 2
		case state == 2 && b == 'B':
			if _, err := io.ReadFull(br, hdr[:]); err != nil {
				return false
			}
			if hdr[0] == recordTypeExtended {
				return true
			}
			size := int(binary.LittleEndian.Uint16(hdr[1:3]))
			if rem := size - HeaderSize; rem > 0 {
				if _, err := br.Discard(rem); err != nil {
					return false
				}
			}
			state = 0
		case b == 'V':
			state = 1
		default:
			state = 0
		}
	}
}
