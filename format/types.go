package format

import "fmt"

// Format describes the physical layout of a polyline blob: a leading header of
// HeaderLen bytes followed by fixed-size records of RecordLen bytes each.
//
// A Format is only meaningful relative to a specific blob length; validity is
// checked when decoding, not at construction.
type Format struct {
	HeaderLen int
	RecordLen int
}

// String returns the format as "(header_len, record_len)".
func (f Format) String() string {
	return fmt.Sprintf("(%d, %d)", f.HeaderLen, f.RecordLen)
}

// PayloadLen returns the payload size of one record, RecordLen minus the type tag.
func (f Format) PayloadLen() int {
	return f.RecordLen - TypeTagSize
}

// TypeTagSize is the size of the little-endian uint16 type tag at the start of every record.
const TypeTagSize = 2

// Default guess candidates.
var (
	DefaultHeaderCandidates    = []int{0, 16, 32, 48, 64, 74, 80, 96}
	DefaultRecordLenCandidates = []int{16, 18, 20, 24, 26, 28, 32}
)

// CompressionType identifies the codec of a captured blob file.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Extension returns the file name suffix used for captures compressed with c.
func (c CompressionType) Extension() string {
	switch c {
	case CompressionZstd:
		return ".zst"
	case CompressionS2:
		return ".s2"
	case CompressionLZ4:
		return ".lz4"
	default:
		return ""
	}
}

// ParseCompressionType parses a codec name as accepted on the command line.
func ParseCompressionType(name string) (CompressionType, error) {
	switch name {
	case "", "none":
		return CompressionNone, nil
	case "zstd", "zst":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("unknown compression %q", name)
	}
}
