package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/arloliu/polyblob/blob"
	"github.com/arloliu/polyblob/compress"
	"github.com/arloliu/polyblob/endian"
	"github.com/arloliu/polyblob/errs"
	"github.com/arloliu/polyblob/format"
	"github.com/arloliu/polyblob/geom"
	"github.com/arloliu/polyblob/source"
)

// runSynth writes a synthetic capture: a stepped shaft profile of -n points closed by a
// sentinel, encoded with the requested layout and compressed with the requested codec.
func (a *app) runSynth(args []string) error {
	fs := newFlagSet("synth", a.stderr)
	id := fs.Int64("id", -1, "Blob identifier of the capture (required)")
	n := fs.Int("n", 24, "Number of profile points")
	tag := fs.Uint("tag", 76, "Type tag of point records")
	codecName := fs.String("compress", "none", "Capture compression: none, zstd, s2 or lz4")
	header := fs.Int("header", 32, "Header length")
	recordLen := fs.Int("record-len", 26, "Record length")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id < 0 || *n <= 0 || *tag > math.MaxUint16 || *header < 0 {
		fmt.Fprintln(a.stderr, "synth: -id is required, -n must be positive, -header must not be negative and -tag must fit in uint16")
		fs.PrintDefaults()

		return errUsage
	}

	ct, err := format.ParseCompressionType(*codecName)
	if err != nil {
		return err
	}
	codec, err := compress.GetCodec(ct)
	if err != nil {
		return err
	}

	data, err := synthesize(format.Format{HeaderLen: *header, RecordLen: *recordLen}, *n, uint16(*tag))
	if err != nil {
		return err
	}

	stored, err := codec.Compress(data)
	if err != nil {
		return fmt.Errorf("compress capture: %w", err)
	}

	if err := os.MkdirAll(a.cfg.BlobDir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(a.cfg.BlobDir, source.CaptureName(*id, ct))
	if err := os.WriteFile(path, stored, 0o644); err != nil { //nolint:gosec // captures are not secret
		return err
	}

	a.logger.Info("wrote synthetic polyline capture",
		zap.String("path", path),
		zap.Int("blob_len", len(data)),
		zap.Int("stored_len", len(stored)),
	)
	fmt.Fprintf(a.stdout, "wrote %s (%d bytes, %d stored)\n", path, len(data), len(stored))

	return nil
}

// synthesize encodes n points of a three step shaft, radius growing with Y, followed by
// a sentinel. The header carries the point count as a little-endian uint32.
func synthesize(f format.Format, n int, tag uint16) ([]byte, error) {
	if f.HeaderLen < 0 {
		return nil, &errs.FormatError{HeaderLen: f.HeaderLen, RecordLen: f.RecordLen, Err: errs.ErrNegativeHeaderLen}
	}

	header := make([]byte, f.HeaderLen)
	if len(header) >= 4 {
		endian.GetLittleEndianEngine().PutUint32(header, uint32(n)) //nolint:gosec // n is a small flag value
	}

	enc, err := blob.NewEncoder(f, header)
	if err != nil {
		return nil, err
	}
	defer enc.Release()

	step := max(n/3, 1)
	for i := range n {
		p := geom.Point3{
			X: 4 + 2*float64(i/step),
			Y: float64(i) * 1.5,
		}
		if err := enc.AddPoint(tag, p); err != nil {
			return nil, err
		}
	}
	if err := enc.AddSentinel(tag); err != nil {
		return nil, err
	}

	return enc.Finish()
}
