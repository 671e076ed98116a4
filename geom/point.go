// Package geom holds the geometric values projected out of polyline records and a
// few helpers for working with them downstream.
//
// Point sequences are plain slices of Point3. Helpers that need vector maths
// convert to gonum's r3.Vec.
package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Point3 is a point in 3-D space.
type Point3 struct {
	X, Y, Z float64
}

// Vec returns p as a gonum r3 vector.
func (p Point3) Vec() r3.Vec {
	return r3.Vec{X: p.X, Y: p.Y, Z: p.Z}
}

// IsSentinel reports whether p is exactly (0, 0, 0), the end-of-curve marker.
func (p Point3) IsSentinel() bool {
	return p.X == 0 && p.Y == 0 && p.Z == 0
}

// Bounds returns the axis-aligned bounding box of points.
// The zero box is returned for an empty sequence.
func Bounds(points []Point3) r3.Box {
	if len(points) == 0 {
		return r3.Box{}
	}

	box := r3.Box{Min: points[0].Vec(), Max: points[0].Vec()}
	for _, p := range points[1:] {
		box.Min.X = math.Min(box.Min.X, p.X)
		box.Min.Y = math.Min(box.Min.Y, p.Y)
		box.Min.Z = math.Min(box.Min.Z, p.Z)
		box.Max.X = math.Max(box.Max.X, p.X)
		box.Max.Y = math.Max(box.Max.Y, p.Y)
		box.Max.Z = math.Max(box.Max.Z, p.Z)
	}

	return box
}

// PathLength returns the summed euclidean length of the segments joining points in order.
func PathLength(points []Point3) float64 {
	var total float64
	for i := 1; i < len(points); i++ {
		total += r3.Norm(r3.Sub(points[i].Vec(), points[i-1].Vec()))
	}

	return total
}
