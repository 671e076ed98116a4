package section

import (
	"github.com/arloliu/polyblob/endian"
	"github.com/arloliu/polyblob/format"
)

// Record is one fixed-size chunk of a polyline blob body.
//
// The first two bytes are a little-endian type tag, the rest is the payload. The
// payload's meaning is unknown, so it is exposed under four independent numeric
// views. Each view holds as many whole elements as fit in the payload and is nil
// when not even one element fits.
type Record struct {
	// Index is the 0-based position of the record in the blob.
	Index int
	// Offset is the absolute byte offset of the record within the blob.
	Offset int
	// TypeTag is the uint16 read little-endian from the first two bytes of the record.
	TypeTag uint16
	// Payload is the remaining RecordLen-2 bytes. It aliases the decoded blob.
	Payload []byte

	F64LE []float64 // 8 bytes per element, little-endian
	F64BE []float64 // 8 bytes per element, big-endian
	F32LE []float32 // 4 bytes per element, little-endian
	I32LE []int32   // 4 bytes per element, little-endian
}

// ParseRecord decodes one record from data, which must hold exactly one record
// (at least the 2-byte type tag).
//
// Parameters:
//   - data: Record bytes, len(data) == record length
//   - index: Sequence position of the record
//   - offset: Absolute byte offset of data within the blob
//
// Returns:
//   - Record: Decoded record with all four numeric views populated best-effort
func ParseRecord(data []byte, index, offset int) Record {
	le := endian.GetLittleEndianEngine()
	be := endian.GetBigEndianEngine()

	payload := data[format.TypeTagSize:len(data):len(data)]

	return Record{
		Index:   index,
		Offset:  offset,
		TypeTag: le.Uint16(data[0:format.TypeTagSize]),
		Payload: payload,
		F64LE:   endian.Float64s(le, payload),
		F64BE:   endian.Float64s(be, payload),
		F32LE:   endian.Float32s(le, payload),
		I32LE:   endian.Int32s(le, payload),
	}
}

// Size returns the encoded size of the record in bytes.
func (r Record) Size() int {
	return format.TypeTagSize + len(r.Payload)
}

// Bytes re-encodes the record as type tag followed by payload.
func (r Record) Bytes() []byte {
	return AppendRecord(make([]byte, 0, r.Size()), r.TypeTag, r.Payload)
}

// AppendRecord appends a record made of tag and payload to dst.
func AppendRecord(dst []byte, tag uint16, payload []byte) []byte {
	dst = endian.GetLittleEndianEngine().AppendUint16(dst, tag)

	return append(dst, payload...)
}
