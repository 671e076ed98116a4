package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"

	"github.com/arloliu/polyblob/errs"
)

// S2Compressor stores captures as a single S2 block. It is the fastest of the
// built-in codecs and the default for captures written during live inspection,
// where a blob is fetched once and decoded immediately.
//
// A block records its decompressed length up front, so Decompress rejects captures
// that declare more than maxCaptureSize bytes before allocating anything.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 compressor.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress encodes a whole blob as one S2 block. An empty blob yields an empty capture.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.EncodeBetter(nil, data), nil
}

// Decompress restores a blob from an S2 capture.
//
// Returns:
//   - []byte: The blob bytes, nil for an empty capture
//   - error: errs.ErrCaptureTooLarge if the block declares an oversized blob, or the
//     s2 decoding error for a corrupt block
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}
	if n > maxCaptureSize {
		return nil, fmt.Errorf("%w: s2 block declares %d bytes", errs.ErrCaptureTooLarge, n)
	}

	blob, err := s2.Decode(make([]byte, n), data)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}

	return blob, nil
}
