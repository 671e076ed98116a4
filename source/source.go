// Package source provides read-only access to stored polyline blobs by identifier.
//
// Sources only fetch bytes; decoding is left to the blob package. Lookup failures are
// reported as errs.ErrNotFound or errs.ErrTypeMismatch, possibly wrapped with context.
package source

import "context"

// Source fetches the raw polyline blob stored under id.
//
// Implementations return errs.ErrNotFound when nothing (or an empty value) is stored for
// id, and errs.ErrTypeMismatch when the stored value is not a byte sequence.
type Source interface {
	Fetch(ctx context.Context, id int64) ([]byte, error)
}

// Lister enumerates the identifiers of non-empty stored blobs in ascending order.
//
// Identifiers whose Fetch would report errs.ErrNotFound, such as nil or zero-length
// values, are not listed. A non-positive limit returns every listed identifier.
type Lister interface {
	IDs(ctx context.Context, limit int) ([]int64, error)
}

// Store is a Source that can also enumerate its identifiers.
type Store interface {
	Source
	Lister
}

func applyLimit(ids []int64, limit int) []int64 {
	if limit > 0 && len(ids) > limit {
		return ids[:limit]
	}

	return ids
}
