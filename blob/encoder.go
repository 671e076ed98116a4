package blob

import (
	"fmt"

	"github.com/arloliu/polyblob/endian"
	"github.com/arloliu/polyblob/errs"
	"github.com/arloliu/polyblob/format"
	"github.com/arloliu/polyblob/geom"
	"github.com/arloliu/polyblob/internal/pool"
	"github.com/arloliu/polyblob/section"
)

// pointPayloadSize is the size of an X, Y, Z big-endian float64 triplet.
const pointPayloadSize = 3 * 8

// Encoder builds polyline blobs of a fixed layout.
//
// Note: The Encoder is NOT thread-safe and NOT reusable. After Finish, a new encoder must
// be created. An encoder abandoned before Finish should be released with Release so its
// pooled buffer is returned.
type Encoder struct {
	format   format.Format
	buf      *pool.ByteBuffer
	count    int
	finished bool
}

// NewEncoder creates an Encoder that writes header followed by records of f.RecordLen bytes.
//
// Parameters:
//   - f: Target layout, f.HeaderLen must equal len(header)
//   - header: Opaque header bytes, copied into the blob
//
// Returns:
//   - *Encoder: Encoder ready to accept records
//   - error: *errs.FormatError for a record length of 2 or less, or a header length mismatch
func NewEncoder(f format.Format, header []byte) (*Encoder, error) {
	if f.RecordLen <= format.TypeTagSize {
		return nil, &errs.FormatError{HeaderLen: f.HeaderLen, RecordLen: f.RecordLen, BlobLen: len(header), Err: errs.ErrInvalidRecordLen}
	}
	if f.HeaderLen != len(header) {
		return nil, &errs.FormatError{HeaderLen: f.HeaderLen, RecordLen: f.RecordLen, BlobLen: len(header), Err: errs.ErrHeaderLenMismatch}
	}

	buf := pool.GetEncodeBuffer()
	_, _ = buf.Write(header)

	return &Encoder{format: f, buf: buf}, nil
}

// AddRecord appends a record with the given type tag and payload.
//
// Returns errs.ErrInvalidPayloadSize unless len(payload) == RecordLen-2.
func (e *Encoder) AddRecord(tag uint16, payload []byte) error {
	if e.finished {
		return errs.ErrEncoderFinished
	}
	if len(payload) != e.format.PayloadLen() {
		return fmt.Errorf("%w: got %d bytes, want %d", errs.ErrInvalidPayloadSize, len(payload), e.format.PayloadLen())
	}

	e.buf.Grow(e.format.RecordLen)
	e.buf.B = section.AppendRecord(e.buf.B, tag, payload)
	e.count++

	return nil
}

// AddPoint appends a record holding p as big-endian float64 X, Y, Z, zero padded to
// the payload size.
//
// Returns errs.ErrPayloadTooShort when the payload cannot hold three float64 values.
func (e *Encoder) AddPoint(tag uint16, p geom.Point3) error {
	if e.finished {
		return errs.ErrEncoderFinished
	}
	if e.format.PayloadLen() < pointPayloadSize {
		return fmt.Errorf("%w: payload is %d bytes", errs.ErrPayloadTooShort, e.format.PayloadLen())
	}

	e.buf.Grow(e.format.RecordLen)
	e.buf.B = section.AppendRecord(e.buf.B, tag, nil)
	e.buf.B = endian.AppendFloat64s(endian.GetBigEndianEngine(), e.buf.B, p.X, p.Y, p.Z)
	e.buf.AppendZeros(e.format.PayloadLen() - pointPayloadSize)
	e.count++

	return nil
}

// AddSentinel appends the (0, 0, 0) end-of-curve point.
func (e *Encoder) AddSentinel(tag uint16) error {
	return e.AddPoint(tag, geom.Point3{})
}

// Count returns the number of records added so far.
func (e *Encoder) Count() int {
	return e.count
}

// Finish returns the encoded blob and releases the encoder's buffer.
func (e *Encoder) Finish() ([]byte, error) {
	if e.finished {
		return nil, errs.ErrEncoderFinished
	}
	e.finished = true

	out := make([]byte, e.buf.Len())
	copy(out, e.buf.Bytes())
	e.release()

	return out, nil
}

// Release abandons the encoder and returns its buffer to the pool.
// It is a no-op after Finish or a previous Release, so it is safe to defer.
func (e *Encoder) Release() {
	e.finished = true
	e.release()
}

func (e *Encoder) release() {
	if e.buf == nil {
		return
	}
	pool.PutEncodeBuffer(e.buf)
	e.buf = nil
}
