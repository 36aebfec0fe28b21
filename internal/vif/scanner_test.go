package vif

import (
	"bytes"
	"testing"
)

// collect drains a scanner, returning the emitted records.
func collect(t *testing.T, data []byte) (*Scanner, []*Record) {
	t.Helper()
	sc := NewScanner(bytes.NewReader(data))
	var recs []*Record
	for sc.Scan() {
		rec := sc.Record()
		recs = append(recs, rec)
	}
	return sc, recs
}

func TestScanner_SingleFrame(t *testing.T) {
	sc, recs := collect(t, makeFrame(nil))

	if len(recs) != 1 {
		t.Fatalf("got %d records, want 1", len(recs))
	}
	if recs[0].Offset != 0 {
		t.Errorf("Offset = %d, want 0", recs[0].Offset)
	}
	// The final buffered record falls back to the continuous type.
	if recs[0].ReadType != ReadTypeContinuous {
		t.Errorf("ReadType = %d, want %d", recs[0].ReadType, ReadTypeContinuous)
	}
	if sc.Scanned() != 1 {
		t.Errorf("Scanned() = %d, want 1", sc.Scanned())
	}
}

func TestScanner_ContinuousFrames(t *testing.T) {
	var data []byte
	data = append(data, makeFrame(nil)...)
	data = append(data, makeFrame(nil)...)

	sc, recs := collect(t, data)
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
	if recs[0].ReadType != ReadTypeContinuous {
		t.Errorf("first ReadType = %d, want continuous", recs[0].ReadType)
	}
	if recs[1].Offset != RecordSize {
		t.Errorf("second Offset = %d, want %d", recs[1].Offset, RecordSize)
	}
	if sc.Scanned() != 2 {
		t.Errorf("Scanned() = %d, want 2", sc.Scanned())
	}
}

func TestScanner_GarbageBetweenFrames(t *testing.T) {
	var data []byte
	data = append(data, []byte("leading garbage")...)
	data = append(data, makeFrame(nil)...)
	data = append(data, []byte{0x00, 0x42, 0x99}...)
	data = append(data, makeFrame(nil)...)
	data = append(data, []byte("trailing")...)

	_, recs := collect(t, data)
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
	// Frames more than one record apart come from a resumed capture.
	if recs[0].ReadType != ReadTypeResumed {
		t.Errorf("first ReadType = %d, want resumed", recs[0].ReadType)
	}
}

func TestScanner_OversizeFrameSkipsExcess(t *testing.T) {
	// A frame claiming 200 bytes: the scanner keeps the first 70 and
	// skips the rest, so a frame placed 200 bytes in is still found.
	big := make([]byte, 200)
	copy(big, makeFrame(func(b []byte) {
		putU16(b, offSize, 200)
	}))
	data := append(big, makeFrame(nil)...)

	sc, recs := collect(t, data)
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
	if recs[0].ReadType != ReadTypeResumed {
		t.Errorf("first ReadType = %d, want resumed", recs[0].ReadType)
	}
	if recs[1].Offset != 200 {
		t.Errorf("second Offset = %d, want 200", recs[1].Offset)
	}
	if sc.Scanned() != 2 {
		t.Errorf("Scanned() = %d, want 2", sc.Scanned())
	}
}

func TestScanner_TruncatedFrameDropped(t *testing.T) {
	// Marker plus a partial header: scanning ends silently with no
	// record emitted and nothing counted.
	data := []byte{'V', 'I', 'B', 0x88, 68}

	sc, recs := collect(t, data)
	if len(recs) != 0 {
		t.Fatalf("got %d records, want 0", len(recs))
	}
	if sc.Scanned() != 0 {
		t.Errorf("Scanned() = %d, want 0", sc.Scanned())
	}
}

func TestScanner_NoFrames(t *testing.T) {
	_, recs := collect(t, []byte("no markers anywhere in this stream"))
	if len(recs) != 0 {
		t.Fatalf("got %d records, want 0", len(recs))
	}
}

func TestScanner_MismatchResetsMatcher(t *testing.T) {
	// "VI" followed by a mismatch, then a real frame.
	var data []byte
	data = append(data, 'V', 'I', 'X')
	data = append(data, makeFrame(nil)...)

	_, recs := collect(t, data)
	if len(recs) != 1 {
		t.Fatalf("got %d records, want 1", len(recs))
	}
	if recs[0].Offset != 3 {
		t.Errorf("Offset = %d, want 3", recs[0].Offset)
	}
}

func TestScanner_OverlappingMarkerStart(t *testing.T) {
	// A stray 'V' directly before a real marker must not hide it.
	data := append([]byte{'V'}, makeFrame(nil)...)

	_, recs := collect(t, data)
	if len(recs) != 1 {
		t.Fatalf("got %d records, want 1", len(recs))
	}
	if recs[0].Offset != 1 {
		t.Errorf("Offset = %d, want 1", recs[0].Offset)
	}
}

func TestDetectExtended(t *testing.T) {
	plain := makeFrame(nil)
	extended := makeFrame(func(b []byte) { b[offType] = 0x8A })

	testCases := []struct {
		name     string
		data     []byte
		expected bool
	}{
		{"empty", nil, false},
		{"plain_only", plain, false},
		{"extended_only", extended, true},
		{"extended_after_plain", append(append([]byte{}, plain...), extended...), true},
		{"garbage_only", []byte("VIaVInothing"), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DetectExtended(bytes.NewReader(tc.data)); got != tc.expected {
				t.Errorf("DetectExtended = %v, want %v", got, tc.expected)
			}
		})
	}
}

func TestDetectExtended_DoesNotRecurseIntoPayload(t *testing.T) {
	// An 0x8A byte inside a plain record's payload must not count: the
	// pre-scan skips payload bytes after reading each header.
	frame := makeFrame(func(b []byte) { b[20] = 0x8A })
	if DetectExtended(bytes.NewReader(frame)) {
		t.Error("payload byte misread as an extended type tag")
	}
}

func TestClassifyReadType(t *testing.T) {
	if got := classifyReadType(RecordSize); got != ReadTypeContinuous {
		t.Errorf("classifyReadType(68) = %d, want continuous", got)
	}
	for _, delta := range []int64{1, 67, 69, 1000} {
		if got := classifyReadType(delta); got != ReadTypeResumed {
			t.Errorf("classifyReadType(%d) = %d, want resumed", delta, got)
		}
	}
}
