// Package blob decodes, inspects and builds polyline blobs.
//
// A polyline blob is an undocumented binary record stream: an opaque header of
// HeaderLen bytes followed by records of RecordLen bytes each. Every record starts with
// a little-endian uint16 type tag; the rest is payload:
//
//	┌──────────────────────────────┐
//	│ Header (HeaderLen bytes)     │
//	├──────────────────────────────┤
//	│ Record 0                     │
//	│  - TypeTag (2 bytes, LE)     │
//	│  - Payload (RecordLen-2)     │
//	├──────────────────────────────┤
//	│ Record 1 ...                 │
//	└──────────────────────────────┘
//
// # Decoding
//
// When the layout is known, decode directly:
//
//	decoded, err := blob.Decode(data, format.Format{HeaderLen: 16, RecordLen: 26})
//	if err != nil {
//	    // *errs.FormatError: the layout does not fit data
//	}
//	for _, rec := range decoded.Records() {
//	    fmt.Println(rec.TypeTag, rec.F64BE)
//	}
//
// Otherwise let a Guesser infer it:
//
//	g, _ := blob.NewGuesser()
//	f, ok := g.Guess(data)
//	if !ok {
//	    // no candidate layout fits; supply one explicitly
//	}
//
// # Projections
//
// SummarizeTypes histograms record type tags and ExtractPoints projects records into
// geom.Point3 values read from the big-endian float64 view.
//
// # Encoding
//
// Encoder produces blobs in the same layout, mostly for fixtures and tooling.
//
// # Thread Safety
//
// Decode, Guess, SummarizeTypes and ExtractPoints are pure functions of their inputs and
// may run concurrently on independent or shared blobs. Guesser is immutable. Encoder is
// not safe for concurrent use.
package blob
