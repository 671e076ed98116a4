package blob

import (
	"github.com/arloliu/polyblob/errs"
	"github.com/arloliu/polyblob/format"
	"github.com/arloliu/polyblob/section"
)

// Decoder splits a polyline blob into its header and fixed-size records.
//
// The decoder validates the format against the blob length up front; once
// NewDecoder succeeds, Decode cannot fail.
//
// Note: The Decoder borrows data and never mutates it. Header and payload slices of the
// decoded blob alias data, so data must not be modified while they are in use.
type Decoder struct {
	data        []byte
	format      format.Format
	recordCount int
}

// NewDecoder creates a Decoder for data laid out as f.
//
// Parameters:
//   - data: Raw polyline blob
//   - f: Header length and record length to decode with
//
// Returns:
//   - *Decoder: Decoder ready to produce records
//   - error: *errs.FormatError when the header is negative or longer than data, the record
//     length is 2 or less, or the body is not a whole number of records
func NewDecoder(data []byte, f format.Format) (*Decoder, error) {
	if err := validateFormat(len(data), f); err != nil {
		return nil, err
	}

	return &Decoder{
		data:        data,
		format:      f,
		recordCount: (len(data) - f.HeaderLen) / f.RecordLen,
	}, nil
}

// RecordCount returns the number of records Decode will produce.
func (d *Decoder) RecordCount() int {
	return d.recordCount
}

// Decode walks the body in consecutive record-sized windows starting right after the
// header and decodes each of them.
//
// Returns:
//   - PolylineBlob: Header bytes and records in blob order
func (d *Decoder) Decode() PolylineBlob {
	h, r := d.format.HeaderLen, d.format.RecordLen

	records := make([]section.Record, d.recordCount)
	for i := range records {
		off := h + i*r
		records[i] = section.ParseRecord(d.data[off:off+r], i, off)
	}

	return PolylineBlob{
		format:  d.format,
		header:  d.data[:h:h],
		records: records,
	}
}

// Decode decodes data laid out as f in one step.
//
// See NewDecoder for the error conditions. No partial result is returned on failure.
func Decode(data []byte, f format.Format) (PolylineBlob, error) {
	d, err := NewDecoder(data, f)
	if err != nil {
		return PolylineBlob{}, err
	}

	return d.Decode(), nil
}

func validateFormat(blobLen int, f format.Format) error {
	var reason error

	switch {
	case f.HeaderLen < 0:
		reason = errs.ErrNegativeHeaderLen
	case f.HeaderLen > blobLen:
		reason = errs.ErrHeaderLenOutOfRange
	case f.RecordLen <= format.TypeTagSize:
		reason = errs.ErrInvalidRecordLen
	case (blobLen-f.HeaderLen)%f.RecordLen != 0:
		reason = errs.ErrBodyNotDivisible
	default:
		return nil
	}

	return &errs.FormatError{
		HeaderLen: f.HeaderLen,
		RecordLen: f.RecordLen,
		BlobLen:   blobLen,
		Err:       reason,
	}
}
