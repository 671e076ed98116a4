package blob

import (
	"github.com/arloliu/polyblob/geom"
	"github.com/arloliu/polyblob/internal/options"
	"github.com/arloliu/polyblob/section"
)

// PointQuery controls which records ExtractPoints turns into points.
type PointQuery struct {
	onlyType       uint16
	filterType     bool
	stopAtSentinel bool
	maxPoints      int
}

// PointOption configures ExtractPoints.
type PointOption = options.Option[*PointQuery]

// WithOnlyType restricts extraction to records tagged tag. Other records are skipped
// and do not count toward the point limit.
func WithOnlyType(tag uint16) PointOption {
	return options.NoError(func(q *PointQuery) {
		q.onlyType = tag
		q.filterType = true
	})
}

// WithStopAtSentinel ends extraction at the first (0, 0, 0) point, which is not
// included in the result.
func WithStopAtSentinel(stop bool) PointOption {
	return options.NoError(func(q *PointQuery) {
		q.stopAtSentinel = stop
	})
}

// WithMaxPoints caps the number of extracted points. Zero or a negative n means no limit.
func WithMaxPoints(n int) PointOption {
	return options.NoError(func(q *PointQuery) {
		q.maxPoints = n
	})
}

// ExtractPoints projects records into 3-D points read from their big-endian float64 view.
//
// A record is usable when the view has at least two elements: X and Y are the first two,
// Z the third or 0 when absent. Records are visited in order and points keep that order.
//
// Example:
//
//	pts := blob.ExtractPoints(decoded.Records(),
//	    blob.WithOnlyType(76),
//	    blob.WithStopAtSentinel(true),
//	)
func ExtractPoints(records []section.Record, opts ...PointOption) []geom.Point3 {
	q := &PointQuery{}
	_ = options.Apply(q, opts...) // point options cannot fail

	var points []geom.Point3
	for _, rec := range records {
		if q.filterType && rec.TypeTag != q.onlyType {
			continue
		}
		if len(rec.F64BE) < 2 {
			continue
		}

		p := geom.Point3{X: rec.F64BE[0], Y: rec.F64BE[1]}
		if len(rec.F64BE) >= 3 {
			p.Z = rec.F64BE[2]
		}

		if q.stopAtSentinel && p.IsSentinel() {
			break
		}

		points = append(points, p)
		if q.maxPoints > 0 && len(points) >= q.maxPoints {
			break
		}
	}

	return points
}
