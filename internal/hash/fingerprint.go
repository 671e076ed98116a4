package hash

import "github.com/cespare/xxhash/v2"

// Fingerprint computes the xxHash64 of a blob's raw bytes.
// Identical blobs share a fingerprint, so reports can group them without
// keeping every blob in memory.
func Fingerprint(data []byte) uint64 {
	return xxhash.Sum64(data)
}
