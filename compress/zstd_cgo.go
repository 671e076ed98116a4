//go:build cgo && gozstd

package compress

import (
	"fmt"

	"github.com/valyala/gozstd"

	"github.com/arloliu/polyblob/errs"
)

// zstdCaptureLevel trades encode speed for ratio on archived captures. Captures are
// written once and read many times, so a mid level is used.
const zstdCaptureLevel = 5

// Compress encodes a whole blob as one zstd frame.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, zstdCaptureLevel), nil
}

// Decompress restores a blob from a zstd capture. Frames that inflate past
// maxCaptureSize are rejected with errs.ErrCaptureTooLarge.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	blob, err := gozstd.Decompress(nil, data)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}
	if len(blob) > maxCaptureSize {
		return nil, fmt.Errorf("%w: zstd frame holds %d bytes", errs.ErrCaptureTooLarge, len(blob))
	}

	return blob, nil
}
