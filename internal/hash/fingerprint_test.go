package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFingerprint(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		id   uint64
	}{
		{"empty blob", nil, 0xef46db3751d8e999},
		{"short blob", []byte("test"), 0x4fdcca5ddb678139},
		{"long blob", []byte("this is a longer test string to hash"), 0x69275f7f7ee59dbd},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.id, Fingerprint(tt.data))
		})
	}
}

func TestFingerprint_DistinguishesBlobs(t *testing.T) {
	a := []byte{0x4C, 0x00, 0x01, 0x02}
	b := []byte{0x4C, 0x00, 0x01, 0x03}

	assert.NotEqual(t, Fingerprint(a), Fingerprint(b))
	assert.Equal(t, Fingerprint(a), Fingerprint(append([]byte(nil), a...)))
}

func BenchmarkFingerprint(b *testing.B) {
	data := make([]byte, 4096)
	for i := range data {
		data[i] = byte(i)
	}
	b.ResetTimer()
	for b.Loop() {
		Fingerprint(data)
	}
}
