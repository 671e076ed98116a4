// Package collision tracks blob fingerprints within one run so that identical blobs
// can share work, and detects fingerprints shared by blobs that are provably different.
package collision

// entry records the first blob seen with a fingerprint.
type entry struct {
	id     int64
	length int
}

// Tracker maps blob fingerprints to the first blob seen with each of them.
//
// Two blobs with the same fingerprint but different lengths are a hash collision: they
// must not share derived results. Equal lengths are treated as the same blob.
type Tracker struct {
	seen         map[uint64]entry
	duplicates   int
	hasCollision bool
}

// NewTracker creates a new fingerprint tracker.
func NewTracker() *Tracker {
	return &Tracker{
		seen: make(map[uint64]entry),
	}
}

// Track records blob id with fingerprint fp and length.
//
// Returns:
//   - int64: Identifier of the first blob seen with fp (id itself when fp is new)
//   - bool: true when the blob duplicates an earlier one and may reuse its results
func (t *Tracker) Track(id int64, fp uint64, length int) (int64, bool) {
	first, exists := t.seen[fp]
	if !exists {
		t.seen[fp] = entry{id: id, length: length}
		return id, false
	}

	if first.length != length {
		t.hasCollision = true
		return first.id, false
	}

	t.duplicates++

	return first.id, true
}

// HasCollision returns true if two different blobs shared a fingerprint.
func (t *Tracker) HasCollision() bool {
	return t.hasCollision
}

// Distinct returns the number of distinct fingerprints tracked.
func (t *Tracker) Distinct() int {
	return len(t.seen)
}

// Duplicates returns the number of tracked blobs that repeated an earlier blob.
func (t *Tracker) Duplicates() int {
	return t.duplicates
}

// Reset clears all tracked fingerprints and collision state.
func (t *Tracker) Reset() {
	clear(t.seen)
	t.duplicates = 0
	t.hasCollision = false
}
