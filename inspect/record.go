package inspect

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/arloliu/polyblob/section"
)

// RecordLine renders one record on a single line: index, offset, type tag, payload
// length, the first previewBytes payload bytes in hex, then the leading elements of
// each numeric view (3 for float64 views, 6 for 4-byte views).
//
// Example output:
//
//	[   0] off=0x00000010 type=    76 payload_len=24 payload_head=4024... f64_le=(...) f64_be=(10, 0, 0) f32_le=(...) i32_le=(...)
func RecordLine(rec section.Record, previewBytes int) string {
	headLen := min(max(previewBytes, 0), len(rec.Payload))

	return fmt.Sprintf("[%4d] off=0x%08x type=%6d payload_len=%2d payload_head=%s f64_le=(%s) f64_be=(%s) f32_le=(%s) i32_le=(%s)",
		rec.Index,
		rec.Offset,
		rec.TypeTag,
		len(rec.Payload),
		hex.EncodeToString(rec.Payload[:headLen]),
		previewFloats(rec.F64LE, 3, 64),
		previewFloats(rec.F64BE, 3, 64),
		previewFloats(rec.F32LE, 6, 32),
		previewInts(rec.I32LE, 6),
	)
}

type float interface {
	~float32 | ~float64
}

// previewFloats formats up to n values with 6 significant digits, like %.6g.
func previewFloats[T float](values []T, n, bitSize int) string {
	values = values[:min(n, len(values))]

	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(float64(v), 'g', 6, bitSize)
	}

	return strings.Join(parts, ", ")
}

func previewInts(values []int32, n int) string {
	values = values[:min(n, len(values))]

	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatInt(int64(v), 10)
	}

	return strings.Join(parts, ", ")
}
