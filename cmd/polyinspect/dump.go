package main

import (
	"context"
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/arloliu/polyblob/blob"
	"github.com/arloliu/polyblob/format"
	"github.com/arloliu/polyblob/geom"
	"github.com/arloliu/polyblob/inspect"
	"github.com/arloliu/polyblob/source"
)

var errFormatNotGuessed = errors.New("format not guessed, try -header and -record-len")

// runDump prints everything known about one capture: a hexdump of its head, the chosen
// layout and the ranked candidates, the type summary, the leading records and the
// points extracted from them.
func (a *app) runDump(ctx context.Context, args []string) error {
	fs := newFlagSet("dump", a.stderr)
	id := fs.Int64("id", -1, "Blob identifier (required)")
	maxRecs := fs.Int("max-recs", a.cfg.Dump.MaxRecords, "Number of leading records to print")
	onlyType := fs.Int("only-type", -1, "Only extract points from records with this type tag")
	stopAtSentinel := fs.Bool("stop-at-sentinel", true, "Stop point extraction at the first (0, 0, 0) point")
	maxPoints := fs.Int("max-points", a.cfg.Dump.MaxPoints, "Maximum number of points to extract (0 = no limit)")
	printProfile := fs.Bool("profile", false, "Print the mirrored (R, Z) section profile")
	var transform geom.ProfileTransform
	fs.BoolVar(&transform.SwapRZ, "swap-rz", false, "Read R from Y and Z from X")
	fs.BoolVar(&transform.FlipR, "flip-r", false, "Negate R")
	fs.BoolVar(&transform.FlipZ, "flip-z", false, "Negate Z")
	var ff formatFlags
	ff.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id < 0 {
		fmt.Fprintln(a.stderr, "dump: -id is required")
		fs.PrintDefaults()

		return errUsage
	}
	if *onlyType > math.MaxUint16 {
		return fmt.Errorf("-only-type %d exceeds the uint16 range", *onlyType)
	}

	store, err := source.NewDir(a.cfg.BlobDir, source.WithDirLogger(a.logger))
	if err != nil {
		return err
	}

	data, err := store.Fetch(ctx, *id)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "blob_id=%d  polyline_bytes=%d\n", *id, len(data))
	fmt.Fprintln(a.stdout, "\n--- hexdump(head) ---")
	fmt.Fprintln(a.stdout, inspect.Hexdump(data, a.cfg.Dump.HexWidth, a.cfg.Dump.HexMaxBytes))

	guesser, err := a.newGuesser()
	if err != nil {
		return err
	}

	ranked := guesser.Rank(data)
	fmt.Fprintln(a.stdout, "\n--- candidates ---")
	for _, cs := range ranked {
		fmt.Fprintf(a.stdout, "  %-9s score=%.4f records=%d small=%.3f unique=%.3f head=%.3f\n",
			cs.Format, cs.Score, cs.RecordCount, cs.SmallRatio, cs.UniqueRatio, cs.HeadBias)
	}

	f, forced := ff.forced()
	switch {
	case forced:
		fmt.Fprintln(a.stdout, "\n--- forced format ---")
	case len(ranked) > 0:
		f, _ = guesser.Guess(data)
		fmt.Fprintln(a.stdout, "\n--- guessed format ---")
	default:
		return errFormatNotGuessed
	}
	fmt.Fprintf(a.stdout, "header_len=%d, record_len=%d\n", f.HeaderLen, f.RecordLen)

	decoded, err := blob.Decode(data, f)
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}
	records := decoded.Records()

	fmt.Fprintf(a.stdout, "\nheader_bytes=%d records=%d\n", len(decoded.Header()), len(records))

	fmt.Fprintln(a.stdout, "\n--- record type summary ---")
	for _, tc := range blob.SummarizeTypes(records) {
		fmt.Fprintf(a.stdout, "  %6d : %d\n", tc.TypeTag, tc.Count)
	}

	fmt.Fprintln(a.stdout, "\n--- first records ---")
	for _, rec := range records[:min(max(*maxRecs, 0), len(records))] {
		fmt.Fprintln(a.stdout, inspect.RecordLine(rec, a.cfg.Dump.PreviewBytes))
	}

	opts := []blob.PointOption{
		blob.WithStopAtSentinel(*stopAtSentinel),
		blob.WithMaxPoints(*maxPoints),
	}
	if *onlyType >= 0 {
		opts = append(opts, blob.WithOnlyType(uint16(*onlyType)))
	}
	points := blob.ExtractPoints(records, opts...)
	a.printPoints(f, points, transform, *printProfile)

	a.logger.Debug("dumped polyline blob",
		zap.Int64("id", *id),
		zap.Stringer("format", f),
		zap.Int("records", len(records)),
		zap.Int("points", len(points)),
	)

	return nil
}

func (a *app) printPoints(f format.Format, points []geom.Point3, t geom.ProfileTransform, printProfile bool) {
	fmt.Fprintln(a.stdout, "\n--- points (f64_be) ---")
	if len(points) == 0 {
		fmt.Fprintf(a.stdout, "points=0 (record_len %d leaves %d payload bytes)\n", f.RecordLen, f.PayloadLen())
		return
	}

	box := geom.Bounds(points)
	fmt.Fprintf(a.stdout, "points=%d path_length=%.6g\n", len(points), geom.PathLength(points))
	fmt.Fprintf(a.stdout, "bounds min=(%.6g, %.6g, %.6g) max=(%.6g, %.6g, %.6g)\n",
		box.Min.X, box.Min.Y, box.Min.Z, box.Max.X, box.Max.Y, box.Max.Z)

	polygon := geom.MirrorProfile(geom.Profile(points, t))
	fmt.Fprintf(a.stdout, "profile vertices=%d\n", len(polygon))
	if !printProfile {
		return
	}
	for _, p := range polygon {
		fmt.Fprintf(a.stdout, "  %.6g %.6g\n", p.R, p.Z)
	}
}
