package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/arloliu/polyblob/compress"
	"github.com/arloliu/polyblob/errs"
	"github.com/arloliu/polyblob/format"
	"github.com/arloliu/polyblob/internal/options"
)

// CaptureExt is the base extension of a captured polyline blob file.
const CaptureExt = ".bin"

// captureTypes lists the lookup order of capture files for one identifier.
var captureTypes = []format.CompressionType{
	format.CompressionNone,
	format.CompressionZstd,
	format.CompressionS2,
	format.CompressionLZ4,
}

// CaptureName returns the file name of the capture for id compressed with ct,
// e.g. "42.bin" or "42.bin.zst".
func CaptureName(id int64, ct format.CompressionType) string {
	return strconv.FormatInt(id, 10) + CaptureExt + ct.Extension()
}

// DirOption configures a Dir.
type DirOption = options.Option[*Dir]

// WithDirLogger sets the logger used to report fetched captures. Nil keeps the no-op logger.
func WithDirLogger(logger *zap.Logger) DirOption {
	return options.NoError(func(d *Dir) {
		if logger != nil {
			d.logger = logger
		}
	})
}

// Dir is a Store reading captured blobs from a directory, one file per identifier.
//
// A capture is named "<id>.bin", optionally followed by a codec extension
// (".zst", ".s2" or ".lz4"); compressed captures are decompressed on Fetch.
// When several captures exist for one id, the uncompressed one wins.
type Dir struct {
	root   string
	logger *zap.Logger
}

var _ Store = (*Dir)(nil)

// NewDir creates a Dir rooted at root. The directory is not accessed until the first call.
func NewDir(root string, opts ...DirOption) (*Dir, error) {
	d := &Dir{root: root, logger: zap.NewNop()}
	if err := options.Apply(d, opts...); err != nil {
		return nil, err
	}

	return d, nil
}

// Root returns the directory the store reads from.
func (d *Dir) Root() string {
	return d.root
}

// Fetch reads and, if needed, decompresses the capture for id.
//
// Returns:
//   - []byte: Raw polyline blob
//   - error: errs.ErrNotFound if no capture exists or it is empty, errs.ErrTypeMismatch
//     if the capture path is not a regular file, errs.ErrInvalidCapture if it cannot be
//     decompressed
func (d *Dir) Fetch(ctx context.Context, id int64) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, ct := range captureTypes {
		path := filepath.Join(d.root, CaptureName(id, ct))

		info, err := os.Stat(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("stat capture %s: %w", path, err)
		}
		if !info.Mode().IsRegular() {
			return nil, fmt.Errorf("capture %s is %s: %w", path, info.Mode().Type(), errs.ErrTypeMismatch)
		}

		return d.read(path, id, ct)
	}

	return nil, fmt.Errorf("blob %d in %s: %w", id, d.root, errs.ErrNotFound)
}

func (d *Dir) read(path string, id int64, ct format.CompressionType) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read capture %s: %w", path, err)
	}

	codec, err := compress.GetCodec(ct)
	if err != nil {
		return nil, err
	}

	data, err := codec.Decompress(raw)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", errs.ErrInvalidCapture, path, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("blob %d is empty: %w", id, errs.ErrNotFound)
	}

	d.logger.Debug("fetched polyline blob",
		zap.Int64("id", id),
		zap.Stringer("compression", ct),
		zap.Int("stored_len", len(raw)),
		zap.Int("blob_len", len(data)),
	)

	return data, nil
}

// IDs lists the identifiers of the captures in the directory in ascending order.
// Files whose names do not follow the capture naming are ignored, and so is an id whose
// preferred capture is a zero-byte file, since Fetch reports it as errs.ErrNotFound.
func (d *Dir) IDs(ctx context.Context, limit int) ([]int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(d.root)
	if err != nil {
		return nil, fmt.Errorf("list captures in %s: %w", d.root, err)
	}

	type capture struct {
		rank  int
		empty bool
	}
	preferred := make(map[int64]capture, len(entries))
	for _, entry := range entries {
		id, rank, ok := parseCaptureName(entry.Name())
		if !ok {
			continue
		}
		if cur, seen := preferred[id]; seen && cur.rank < rank {
			continue
		}

		empty := false
		if entry.Type().IsRegular() {
			info, err := entry.Info()
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("stat capture %s: %w", filepath.Join(d.root, entry.Name()), err)
			}
			empty = info.Size() == 0
		}
		preferred[id] = capture{rank: rank, empty: empty}
	}

	ids := make([]int64, 0, len(preferred))
	for id, c := range preferred {
		if !c.empty {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)

	return applyLimit(ids, limit), nil
}

// parseCaptureName returns the identifier of a capture file name and the position of its
// codec in captureTypes.
func parseCaptureName(name string) (int64, int, bool) {
	for rank, ct := range captureTypes {
		stem, ok := strings.CutSuffix(name, CaptureExt+ct.Extension())
		if !ok {
			continue
		}
		id, err := strconv.ParseInt(stem, 10, 64)
		if err != nil {
			return 0, 0, false
		}

		return id, rank, true
	}

	return 0, 0, false
}
