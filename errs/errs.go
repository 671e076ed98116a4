// Package errs defines the errors returned by polyblob packages.
//
// Structural problems with a (blob, format) pair are reported as *FormatError,
// which always matches ErrInvalidFormat and additionally wraps the sentinel that
// names the failed check:
//
//	_, err := blob.Decode(data, format.Format{HeaderLen: 16, RecordLen: 20})
//	if errors.Is(err, errs.ErrBodyNotDivisible) {
//	    // try another record length, or fall back to guessing
//	}
//
// Blob source lookups report ErrNotFound and ErrTypeMismatch. They are never
// swallowed by the decoding packages.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFormat is matched by every *FormatError.
	ErrInvalidFormat = errors.New("invalid polyline format")

	ErrNegativeHeaderLen   = errors.New("header length is negative")
	ErrHeaderLenOutOfRange = errors.New("header length exceeds blob length")
	ErrHeaderLenMismatch   = errors.New("header bytes do not match header length")
	ErrInvalidRecordLen    = errors.New("record length must be greater than 2")
	ErrBodyNotDivisible    = errors.New("body length is not divisible by record length")

	ErrInvalidPayloadSize = errors.New("payload size does not match record length")
	ErrPayloadTooShort    = errors.New("payload too short for a point record")
	ErrEncoderFinished    = errors.New("encoder already finished")
	ErrInvalidOption      = errors.New("invalid option")

	// ErrNotFound is returned by blob sources when no blob exists for an identifier.
	ErrNotFound = errors.New("polyline blob not found")
	// ErrTypeMismatch is returned by blob sources when the stored value is not a byte sequence.
	ErrTypeMismatch = errors.New("stored polyline value is not a byte sequence")

	ErrInvalidCapture = errors.New("invalid capture file")
	// ErrCaptureTooLarge is returned by codecs when a capture declares a decompressed size
	// beyond the capture size limit.
	ErrCaptureTooLarge = errors.New("capture exceeds maximum decompressed size")
	// ErrFormatNotGuessed is returned by auto-decoding helpers when no candidate format fits a blob.
	ErrFormatNotGuessed = errors.New("polyline format not guessed")
)

// FormatError reports a header/record length pair that cannot describe a blob.
type FormatError struct {
	HeaderLen int
	RecordLen int
	BlobLen   int
	// Err is one of the Err*HeaderLen*, ErrInvalidRecordLen or ErrBodyNotDivisible sentinels.
	Err error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid polyline format (header_len=%d, record_len=%d, blob_len=%d): %v",
		e.HeaderLen, e.RecordLen, e.BlobLen, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrInvalidFormat.
func (e *FormatError) Is(target error) bool {
	return target == ErrInvalidFormat
}
