// Package compress provides the codecs used for captured polyline blob files.
//
// Polyline blobs are small (a few hundred bytes to a few hundred KiB), but a capture
// directory may hold thousands of them. Captures can be stored raw or compressed with
// one of:
//   - None: no compression (format.CompressionNone)
//   - Zstd: best ratio (format.CompressionZstd)
//   - S2: balanced speed and ratio (format.CompressionS2)
//   - LZ4: fastest decompression (format.CompressionLZ4)
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	raw, err := codec.Decompress(fileBytes)
//
// # Zstd Backends
//
// Zstd uses the pure Go github.com/klauspost/compress/zstd by default. Building with
// cgo and the gozstd tag switches to github.com/valyala/gozstd. Both produce standard
// zstd frames and decode each other's output.
//
// # Thread Safety
//
// All codecs are stateless values and safe for concurrent use. Pooled encoder and
// decoder state is managed internally.
package compress
