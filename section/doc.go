// Package section defines the fixed-size record structure of polyline blobs.
//
// A record is RecordLen bytes: a little-endian uint16 type tag followed by a payload
// of RecordLen-2 bytes. The payload carries no declared type, so ParseRecord exposes
// four numeric views of it side by side:
//
//	┌──────────┬───────────────────────────────────────────┐
//	│ tag (2B) │ payload (RecordLen-2 bytes)               │
//	│ u16 LE   │ F64LE / F64BE: 8-byte elements            │
//	│          │ F32LE / I32LE: 4-byte elements            │
//	└──────────┴───────────────────────────────────────────┘
//
// Each view decodes as many whole elements as fit, starting at payload offset 0;
// trailing bytes are ignored. A payload shorter than one element yields a nil view.
//
// Records are parsed without copying: Payload aliases the blob and must not be
// modified by callers.
package section
