package blob

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/polyblob/format"
	"github.com/arloliu/polyblob/geom"
	"github.com/arloliu/polyblob/section"
)

func TestExtractPoints_StopsAtSentinel(t *testing.T) {
	records := []section.Record{
		pointRecord(0, 5, 1.0, 2.0, 0.0),
		pointRecord(1, 5, 0.0, 0.0, 0.0),
		pointRecord(2, 5, 3.0, 4.0, 0.0),
	}

	got := ExtractPoints(records, WithOnlyType(5), WithStopAtSentinel(true))

	want := []geom.Point3{{X: 1.0, Y: 2.0, Z: 0.0}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ExtractPoints() mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractPoints_KeepsSentinelWhenDisabled(t *testing.T) {
	records := []section.Record{
		pointRecord(0, 5, 1.0, 2.0, 0.0),
		pointRecord(1, 5, 0.0, 0.0, 0.0),
		pointRecord(2, 5, 3.0, 4.0, 0.0),
	}

	got := ExtractPoints(records)
	require.Equal(t, []geom.Point3{{X: 1, Y: 2}, {}, {X: 3, Y: 4}}, got)
}

func TestExtractPoints_NegativeZeroIsSentinel(t *testing.T) {
	negZero := math.Copysign(0, -1)
	records := []section.Record{
		pointRecord(0, 1, 7, 8, 9),
		pointRecord(1, 1, negZero, 0, negZero),
	}

	got := ExtractPoints(records, WithStopAtSentinel(true))
	require.Equal(t, []geom.Point3{{X: 7, Y: 8, Z: 9}}, got)
}

func TestExtractPoints_TypeFilterNotCounted(t *testing.T) {
	records := []section.Record{
		pointRecord(0, 9, 100, 100, 100),
		pointRecord(1, 76, 1, 1, 1),
		pointRecord(2, 9, 200, 200, 200),
		pointRecord(3, 76, 2, 2, 2),
		pointRecord(4, 76, 3, 3, 3),
	}

	got := ExtractPoints(records, WithOnlyType(76), WithMaxPoints(2))
	require.Equal(t, []geom.Point3{{X: 1, Y: 1, Z: 1}, {X: 2, Y: 2, Z: 2}}, got)
}

func TestExtractPoints_MaxPoints(t *testing.T) {
	var records []section.Record
	for i := range 10 {
		records = append(records, pointRecord(i, 1, float64(i+1), 1, 1))
	}

	testCases := []struct {
		name string
		max  int
		want int
	}{
		{name: "no limit", max: 0, want: 10},
		{name: "negative is no limit", max: -3, want: 10},
		{name: "limit one", max: 1, want: 1},
		{name: "limit four", max: 4, want: 4},
		{name: "limit above count", max: 50, want: 10},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ExtractPoints(records, WithMaxPoints(tc.max))
			require.Len(t, got, tc.want)
			for i, p := range got {
				require.Equal(t, float64(i+1), p.X, "order must follow the records")
			}
		})
	}
}

func TestExtractPoints_UsableRecords(t *testing.T) {
	records := []section.Record{
		// one element: skipped
		pointRecord(0, 1, 4.5),
		// two elements: Z defaults to 0
		pointRecord(1, 1, 1.5, 2.5),
		// extra elements ignored
		pointRecord(2, 1, 1, 2, 3, 4),
		// empty payload: skipped
		section.ParseRecord([]byte{1, 0}, 3, 0),
	}

	got := ExtractPoints(records, WithStopAtSentinel(true))
	require.Equal(t, []geom.Point3{{X: 1.5, Y: 2.5}, {X: 1, Y: 2, Z: 3}}, got)
}

func TestExtractPoints_Empty(t *testing.T) {
	require.Empty(t, ExtractPoints(nil, WithStopAtSentinel(true)))
}

func TestExtractPoints_NeverEmitsSentinel(t *testing.T) {
	data := buildBlob(t, nil, 26, repeatTag(76, 4), 0)

	decoded, err := Decode(data, format.Format{RecordLen: 26})
	require.NoError(t, err)

	got := ExtractPoints(decoded.Records(), WithStopAtSentinel(true), WithMaxPoints(3))
	require.Empty(t, got)
}
