package blob

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/polyblob/format"
	"github.com/arloliu/polyblob/section"
)

func TestSummarizeTypes_Order(t *testing.T) {
	data := buildBlob(t, nil, 4, []uint16{9, 76, 3, 76, 9, 76, 3, 500, 1}, 0)
	decoded, err := Decode(data, format.Format{RecordLen: 4})
	require.NoError(t, err)

	got := SummarizeTypes(decoded.Records())

	want := []TypeCount{
		{TypeTag: 76, Count: 3},
		{TypeTag: 3, Count: 2},
		{TypeTag: 9, Count: 2},
		{TypeTag: 1, Count: 1},
		{TypeTag: 500, Count: 1},
	}
	require.Equal(t, want, got)
}

func TestSummarizeTypes_SumEqualsRecordCount(t *testing.T) {
	tags := []uint16{0, 1, 1, 2, 2, 2, 65535, 65535, 0, 7, 7, 7, 7}
	data := buildBlob(t, make([]byte, 3), 5, tags, 0xEE)
	decoded, err := Decode(data, format.Format{HeaderLen: 3, RecordLen: 5})
	require.NoError(t, err)

	got := SummarizeTypes(decoded.Records())

	sum := 0
	for i, tc := range got {
		sum += tc.Count
		if i > 0 {
			prev := got[i-1]
			ordered := prev.Count > tc.Count || (prev.Count == tc.Count && prev.TypeTag < tc.TypeTag)
			require.True(t, ordered, "entries %d and %d out of order", i-1, i)
		}
	}
	require.Equal(t, decoded.Len(), sum)
}

func TestSummarizeTypes_Empty(t *testing.T) {
	require.Empty(t, SummarizeTypes(nil))
	require.Empty(t, SummarizeTypes([]section.Record{}))
}

func TestTypeHistogram_Merge(t *testing.T) {
	a := buildBlob(t, nil, 4, []uint16{76, 76, 2}, 0)
	b := buildBlob(t, nil, 4, []uint16{2, 2, 9}, 0)

	decodedA, err := Decode(a, format.Format{RecordLen: 4})
	require.NoError(t, err)
	decodedB, err := Decode(b, format.Format{RecordLen: 4})
	require.NoError(t, err)

	global := make(TypeHistogram)
	perBlob := make(TypeHistogram)
	perBlob.Add(decodedB.Records())

	global.Add(decodedA.Records())
	global.Merge(perBlob)

	require.Equal(t, 6, global.Total())
	require.Equal(t, []TypeCount{
		{TypeTag: 2, Count: 3},
		{TypeTag: 76, Count: 2},
		{TypeTag: 9, Count: 1},
	}, global.Sorted())
}
