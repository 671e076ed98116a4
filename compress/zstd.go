package compress

// ZstdCompressor provides Zstandard compression. It gives the best ratio of the
// built-in codecs and suits long-lived capture archives.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
