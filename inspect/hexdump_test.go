package inspect

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/polyblob/endian"
	"github.com/arloliu/polyblob/section"
)

func TestHexdump_SingleRow(t *testing.T) {
	data := []byte("AB\x00\x7f~")

	got := Hexdump(data, 16, 512)

	want := "00000000  " + padRight("41 42 00 7f 7e", 48) + "  AB..~"
	require.Equal(t, want, got)
}

func TestHexdump_MultipleRows(t *testing.T) {
	data := make([]byte, 20)
	for i := range data {
		data[i] = byte('a' + i)
	}

	lines := strings.Split(Hexdump(data, 8, 512), "\n")
	require.Len(t, lines, 3)
	require.True(t, strings.HasPrefix(lines[0], "00000000  61 62 63"))
	require.True(t, strings.HasPrefix(lines[1], "00000008  69"))
	require.True(t, strings.HasPrefix(lines[2], "00000010  71 72 73 74"))
	require.True(t, strings.HasSuffix(lines[2], "  qrst"))

	// hex columns are padded so the ASCII column lines up
	require.Equal(t, strings.Index(lines[0], "abcdefgh"), strings.Index(lines[2], "qrst"))
}

func TestHexdump_Truncated(t *testing.T) {
	data := make([]byte, 40)

	got := Hexdump(data, 16, 32)

	lines := strings.Split(got, "\n")
	require.Len(t, lines, 3)
	require.True(t, strings.HasPrefix(lines[1], "00000010  "))
	require.Equal(t, "... (40 bytes total)", lines[2])
}

func TestHexdump_EdgeCases(t *testing.T) {
	require.Empty(t, Hexdump(nil, 16, 512))
	require.Equal(t, "... (3 bytes total)", Hexdump([]byte{1, 2, 3}, 16, 0))

	// invalid width and max fall back to defaults
	data := make([]byte, 600)
	got := Hexdump(data, 0, -1)
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 512/16+1)
	require.Equal(t, "... (600 bytes total)", lines[len(lines)-1])
}

func TestRecordLine(t *testing.T) {
	payload := endian.AppendFloat64s(endian.GetBigEndianEngine(), nil, 10, 2.5, 0)
	rec := section.ParseRecord(section.AppendRecord(nil, 76, payload), 3, 0x40)

	got := RecordLine(rec, 4)

	require.True(t, strings.HasPrefix(got, "[   3] off=0x00000040 type=    76 payload_len=24 payload_head=40240000 "), got)
	require.Contains(t, got, "f64_be=(10, 2.5, 0)")
	require.Contains(t, got, "i32_le=(9280, 0, 1088, 0, 0, 0)")
}

func TestRecordLine_EmptyViews(t *testing.T) {
	rec := section.ParseRecord([]byte{0x01, 0x00, 0xAB}, 0, 0)

	got := RecordLine(rec, 24)

	require.Contains(t, got, "payload_len= 1 payload_head=ab ")
	require.True(t, strings.HasSuffix(got, "f64_le=() f64_be=() f32_le=() i32_le=()"), got)
}

func padRight(s string, n int) string {
	return s + strings.Repeat(" ", n-len(s))
}
