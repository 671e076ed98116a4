package blob

import (
	"cmp"
	"slices"

	"github.com/arloliu/polyblob/section"
)

// TypeCount is the number of records carrying one type tag.
type TypeCount struct {
	TypeTag uint16
	Count   int
}

// SummarizeTypes counts records per type tag.
//
// The result is ordered by descending count, ties by ascending type tag. The counts
// sum to len(records).
func SummarizeTypes(records []section.Record) []TypeCount {
	h := make(TypeHistogram)
	h.Add(records)

	return h.Sorted()
}

// TypeHistogram accumulates type tag counts across any number of blobs.
type TypeHistogram map[uint16]int

// Add counts the type tags of records.
func (h TypeHistogram) Add(records []section.Record) {
	for _, rec := range records {
		h[rec.TypeTag]++
	}
}

// Merge adds every count of other to h.
func (h TypeHistogram) Merge(other TypeHistogram) {
	for tag, n := range other {
		h[tag] += n
	}
}

// Total returns the sum of all counts.
func (h TypeHistogram) Total() int {
	total := 0
	for _, n := range h {
		total += n
	}

	return total
}

// Sorted returns the counts ordered by descending count, ties by ascending type tag.
func (h TypeHistogram) Sorted() []TypeCount {
	out := make([]TypeCount, 0, len(h))
	for tag, n := range h {
		out = append(out, TypeCount{TypeTag: tag, Count: n})
	}

	slices.SortFunc(out, func(a, b TypeCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}

		return cmp.Compare(a.TypeTag, b.TypeTag)
	})

	return out
}
