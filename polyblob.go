// Package polyblob decodes opaque "polyline" blobs: a fixed-size header followed by
// fixed-size records, each record a little-endian uint16 type tag and a payload.
//
// The layout (header length, record length) is not stored in the blob. It is either
// known in advance or guessed from the data by scoring every candidate pair.
//
// # Basic Usage
//
// Decoding with a known layout:
//
//	b, err := polyblob.Decode(data, format.Format{HeaderLen: 32, RecordLen: 26})
//	if err != nil {
//	    return err // errors.Is(err, errs.ErrInvalidFormat)
//	}
//	for _, rec := range b.Records() {
//	    fmt.Println(rec.TypeTag, rec.F64BE)
//	}
//
// Guessing the layout and extracting points:
//
//	b, err := polyblob.DecodeAuto(data)
//	if err != nil {
//	    return err // errors.Is(err, errs.ErrFormatNotGuessed)
//	}
//	points := polyblob.ExtractPoints(b, blob.WithStopAtSentinel(true))
//
// # Package Structure
//
// This package wraps the most common calls. The blob package holds the decoder,
// guesser, encoder and point extraction; section holds record parsing; inspect renders
// diagnostics; source fetches stored blobs.
package polyblob

import (
	"context"
	"fmt"

	"github.com/arloliu/polyblob/blob"
	"github.com/arloliu/polyblob/errs"
	"github.com/arloliu/polyblob/format"
	"github.com/arloliu/polyblob/geom"
	"github.com/arloliu/polyblob/inspect"
	"github.com/arloliu/polyblob/source"
)

// Decode splits data into a header and records using the layout f.
//
// Returns *errs.FormatError (matching errs.ErrInvalidFormat) when f cannot describe data.
func Decode(data []byte, f format.Format) (blob.PolylineBlob, error) {
	return blob.Decode(data, f)
}

// Guess picks the most plausible layout for data using the default candidates and weights.
// ok is false when no candidate fits.
func Guess(data []byte) (f format.Format, ok bool) {
	return blob.Guess(data)
}

// DecodeAuto guesses the layout of data and decodes it.
//
// Parameters:
//   - data: Raw polyline blob
//   - opts: Guesser options; defaults are used when none are given
//
// Returns:
//   - blob.PolylineBlob: Decoded blob
//   - error: errs.ErrFormatNotGuessed if no candidate fits, or an invalid option error
func DecodeAuto(data []byte, opts ...blob.GuessOption) (blob.PolylineBlob, error) {
	g, err := blob.NewGuesser(opts...)
	if err != nil {
		return blob.PolylineBlob{}, err
	}

	f, ok := g.Guess(data)
	if !ok {
		return blob.PolylineBlob{}, fmt.Errorf("%w (blob_len=%d)", errs.ErrFormatNotGuessed, len(data))
	}

	return blob.Decode(data, f)
}

// Fetch reads blob id from src and decodes it with a guessed layout.
//
// Source errors (errs.ErrNotFound, errs.ErrTypeMismatch) are returned wrapped, never swallowed.
func Fetch(ctx context.Context, src source.Source, id int64, opts ...blob.GuessOption) (blob.PolylineBlob, error) {
	data, err := src.Fetch(ctx, id)
	if err != nil {
		return blob.PolylineBlob{}, fmt.Errorf("fetch polyline %d: %w", id, err)
	}

	b, err := DecodeAuto(data, opts...)
	if err != nil {
		return blob.PolylineBlob{}, fmt.Errorf("decode polyline %d: %w", id, err)
	}

	return b, nil
}

// ExtractPoints projects the records of b onto 3D points read from the big-endian float64 view.
func ExtractPoints(b blob.PolylineBlob, opts ...blob.PointOption) []geom.Point3 {
	return blob.ExtractPoints(b.Records(), opts...)
}

// SummarizeTypes counts the records of b per type tag, most frequent first.
func SummarizeTypes(b blob.PolylineBlob) []blob.TypeCount {
	return blob.SummarizeTypes(b.Records())
}

// Hexdump renders the leading inspect.DefaultHexMaxBytes bytes of data, 16 bytes per row.
func Hexdump(data []byte) string {
	return inspect.Hexdump(data, inspect.DefaultHexWidth, inspect.DefaultHexMaxBytes)
}
