package geom

import "slices"

// RZ is a point of a rotational section profile: radius R and axial position Z.
type RZ struct {
	R, Z float64
}

// ProfileTransform adjusts how points are read as a section profile.
type ProfileTransform struct {
	SwapRZ bool // read R from Y and Z from X
	FlipR  bool
	FlipZ  bool
}

func (t ProfileTransform) apply(r, z float64) RZ {
	if t.SwapRZ {
		r, z = z, r
	}
	if t.FlipR {
		r = -r
	}
	if t.FlipZ {
		z = -z
	}

	return RZ{R: r, Z: z}
}

// Profile reads points as one half of a rotational section, R=X and Z=Y, and
// applies t. The Z coordinate of the points is ignored.
func Profile(points []Point3, t ProfileTransform) []RZ {
	out := make([]RZ, len(points))
	for i, p := range points {
		out[i] = t.apply(p.X, p.Y)
	}

	return out
}

// MirrorProfile closes a half profile into a polygon: the input points followed by
// the same points in reverse order with R negated.
func MirrorProfile(half []RZ) []RZ {
	out := make([]RZ, 0, 2*len(half))
	out = append(out, half...)

	for _, p := range slices.Backward(half) {
		out = append(out, RZ{R: -p.R, Z: p.Z})
	}

	return out
}
