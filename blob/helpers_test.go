package blob

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/polyblob/endian"
	"github.com/arloliu/polyblob/format"
	"github.com/arloliu/polyblob/section"
)

// buildBlob lays out header followed by one record per tag, payloads filled with fill.
func buildBlob(t testing.TB, header []byte, recordLen int, tags []uint16, fill byte) []byte {
	t.Helper()

	data := append([]byte(nil), header...)
	payload := bytes.Repeat([]byte{fill}, recordLen-format.TypeTagSize)
	for _, tag := range tags {
		data = section.AppendRecord(data, tag, payload)
	}

	require.Len(t, data, len(header)+len(tags)*recordLen)

	return data
}

// repeatTag returns n copies of tag.
func repeatTag(tag uint16, n int) []uint16 {
	tags := make([]uint16, n)
	for i := range tags {
		tags[i] = tag
	}

	return tags
}

// pointRecord builds a record whose big-endian float64 view holds values.
func pointRecord(index int, tag uint16, values ...float64) section.Record {
	payload := endian.AppendFloat64s(endian.GetBigEndianEngine(), nil, values...)
	data := section.AppendRecord(nil, tag, payload)

	return section.ParseRecord(data, index, 0)
}

// guessFixture is a 292 byte blob: a 32 byte 0xFF header and ten 26 byte records tagged 76
// with 0xFF payloads. Only (32, 20), (32, 26) and (96, 28) split it into whole records
// among the default candidates, and (32, 26) is the clear winner.
func guessFixture(t testing.TB) []byte {
	t.Helper()

	return buildBlob(t, bytes.Repeat([]byte{0xFF}, 32), 26, repeatTag(76, 10), 0xFF)
}
