package vif

import "encoding/binary"

// Raw sentinel patterns reused across tests.
const (
	rawNoData       = 0xFFFD // decodes to -3
	rawDisconnected = 0xFFFF // decodes to -1
	rawOverload     = 0xA000 // shift 19, decodes to 1073741824
)

// makeFrame builds a well-formed 68-byte frame: type 0x88, declared
// size 68, timestamp 2024-01-15 10:30:00, all axis fields set to the
// no-data sentinel. mod can patch individual bytes before the frame is
// returned.
func makeFrame(mod func(b []byte)) []byte {
	b := make([]byte, RecordSize)
	copy(b, "VIB")
	b[offType] = 0x88
	binary.LittleEndian.PutUint16(b[offSize:], RecordSize)
	b[6], b[7], b[8] = 0, 30, 10 // 10:30:00
	b[9], b[10], b[11] = 15, 1, 24
	for _, off := range []int{offAxisX, offAxisY, offAxisZ} {
		for i := 0; i < 7; i++ {
			binary.LittleEndian.PutUint16(b[off+2*i:], rawNoData)
		}
	}
	if mod != nil {
		mod(b)
	}
	return b
}

// recordFromFrame wraps frame bytes in a Record the way the scanner
// would deliver it.
func recordFromFrame(frame []byte, readType int) *Record {
	rec := &Record{ReadType: readType}
	copy(rec.Data[:], frame)
	return rec
}

func putU16(b []byte, off int, v uint16) {
	binary.LittleEndian.PutUint16(b[off:], v)
}
