package blob

import (
	"iter"

	"github.com/arloliu/polyblob/format"
	"github.com/arloliu/polyblob/section"
)

// PolylineBlob is the result of decoding one polyline blob.
//
// A PolylineBlob is created fresh by every decode call and shares no state with other
// blobs. It is safe for concurrent reads.
type PolylineBlob struct {
	format  format.Format
	header  []byte
	records []section.Record
}

// Format returns the layout the blob was decoded with.
func (b PolylineBlob) Format() format.Format {
	return b.format
}

// Header returns the first HeaderLen bytes of the blob.
func (b PolylineBlob) Header() []byte {
	return b.header
}

// Records returns the decoded records in blob order.
func (b PolylineBlob) Records() []section.Record {
	return b.records
}

// Len returns the number of records.
func (b PolylineBlob) Len() int {
	return len(b.records)
}

// Record returns the record at index i.
//
// Returns:
//   - section.Record: The record, zero value if i is out of range
//   - bool: Whether i is a valid index
func (b PolylineBlob) Record(i int) (section.Record, bool) {
	if i < 0 || i >= len(b.records) {
		return section.Record{}, false
	}

	return b.records[i], true
}

// All returns an iterator over (index, record) pairs in blob order.
//
// Example:
//
//	for i, rec := range decoded.All() {
//	    fmt.Printf("%d: type=%d\n", i, rec.TypeTag)
//	}
func (b PolylineBlob) All() iter.Seq2[int, section.Record] {
	return func(yield func(int, section.Record) bool) {
		for i, rec := range b.records {
			if !yield(i, rec) {
				return
			}
		}
	}
}
