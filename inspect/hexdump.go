// Package inspect renders polyline blobs and records as text for diagnostics.
//
// Nothing in this package decodes; it only formats bytes and already decoded values.
package inspect

import (
	"fmt"
	"strings"
)

const (
	// DefaultHexWidth is the number of bytes per hexdump row.
	DefaultHexWidth = 16
	// DefaultHexMaxBytes is the number of leading bytes rendered by Hexdump.
	DefaultHexMaxBytes = 512
)

// Hexdump renders at most maxBytes leading bytes of data as rows of width bytes:
// an 8 digit hex address, the bytes in hex padded to a fixed column, and their ASCII
// form with non-printable bytes shown as '.'.
//
// When data is longer than maxBytes a final "... (N bytes total)" line is added.
// A non-positive width falls back to DefaultHexWidth and a negative maxBytes to
// DefaultHexMaxBytes.
//
// Example output:
//
//	00000000  4c 00 40 24 00 00 00 00 00 00 00 00 00 00 00 00   L.@$............
func Hexdump(data []byte, width, maxBytes int) string {
	if width <= 0 {
		width = DefaultHexWidth
	}
	if maxBytes < 0 {
		maxBytes = DefaultHexMaxBytes
	}

	head := data[:min(len(data), maxBytes)]

	var sb strings.Builder
	for off := 0; off < len(head); off += width {
		chunk := head[off:min(off+width, len(head))]
		if off > 0 {
			sb.WriteByte('\n')
		}

		fmt.Fprintf(&sb, "%08x  ", off)

		hexCol := make([]string, len(chunk))
		for i, b := range chunk {
			hexCol[i] = fmt.Sprintf("%02x", b)
		}
		fmt.Fprintf(&sb, "%-*s  ", width*3, strings.Join(hexCol, " "))

		for _, b := range chunk {
			if b >= 32 && b <= 126 {
				sb.WriteByte(b)
			} else {
				sb.WriteByte('.')
			}
		}
	}

	if len(data) > maxBytes {
		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "... (%d bytes total)", len(data))
	}

	return sb.String()
}
