package main

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/arloliu/polyblob/blob"
	"github.com/arloliu/polyblob/format"
	"github.com/arloliu/polyblob/internal/collision"
	"github.com/arloliu/polyblob/internal/hash"
	"github.com/arloliu/polyblob/source"
)

var errNoBlobs = errors.New("no polyline blobs found")

type guessResult struct {
	format format.Format
	ok     bool
}

// runSummary decodes up to -n captures and prints the layouts used and the global
// type tag histogram. Blobs whose layout cannot be guessed or decoded are skipped.
func (a *app) runSummary(ctx context.Context, args []string) error {
	fs := newFlagSet("summary", a.stderr)
	sampleN := fs.Int("n", 50, "Number of blobs to sample")
	workers := fs.Int("workers", 4, "Number of captures fetched concurrently")
	var ff formatFlags
	ff.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	store, err := source.NewDir(a.cfg.BlobDir, source.WithDirLogger(a.logger))
	if err != nil {
		return err
	}

	ids, err := store.IDs(ctx, max(*sampleN, 1))
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return fmt.Errorf("%w in %s", errNoBlobs, store.Root())
	}

	guesser, err := a.newGuesser()
	if err != nil {
		return err
	}

	fetched, err := fetchAll(ctx, store, ids, *workers)
	if err != nil {
		return err
	}

	forced, isForced := ff.forced()
	// identical blobs are common; guess each distinct one once
	tracker := collision.NewTracker()
	guesses := make(map[int64]guessResult)
	usage := make(map[format.Format]int)
	hist := make(blob.TypeHistogram)

	for i, id := range ids {
		data, err := fetched[i].data, fetched[i].err
		if err != nil {
			fmt.Fprintf(a.stdout, "[skip] blob_id=%d: %v\n", id, err)
			continue
		}

		f := forced
		if !isForced {
			firstID, dup := tracker.Track(id, hash.Fingerprint(data), len(data))
			res, seen := guesses[firstID]
			if !dup || !seen {
				res.format, res.ok = guesser.Guess(data)
				guesses[id] = res
			}
			if !res.ok {
				fmt.Fprintf(a.stdout, "[skip] blob_id=%d: format not guessed\n", id)
				continue
			}
			f = res.format
		}
		usage[f]++

		decoded, err := blob.Decode(data, f)
		if err != nil {
			fmt.Fprintf(a.stdout, "[skip] blob_id=%d: parse failed: %v\n", id, err)
			continue
		}
		hist.Add(decoded.Records())
	}

	a.logger.Info("summarized polyline blobs",
		zap.Int("sampled", len(ids)),
		zap.Int("duplicates", tracker.Duplicates()),
		zap.Bool("fingerprint_collision", tracker.HasCollision()),
		zap.Int("records", hist.Total()),
	)

	fmt.Fprintln(a.stdout, "=== Format usage (header_len, record_len) ===")
	formats := slices.SortedFunc(maps.Keys(usage), func(x, y format.Format) int {
		return cmp.Or(
			cmp.Compare(usage[y], usage[x]),
			cmp.Compare(x.HeaderLen, y.HeaderLen),
			cmp.Compare(x.RecordLen, y.RecordLen),
		)
	})
	for _, f := range formats {
		fmt.Fprintf(a.stdout, "  %s : %d\n", f, usage[f])
	}

	fmt.Fprintln(a.stdout, "\n=== Record type global counts (u16) ===")
	for _, tc := range hist.Sorted() {
		fmt.Fprintf(a.stdout, "  %6d : %d\n", tc.TypeTag, tc.Count)
	}

	return nil
}

type fetchResult struct {
	data []byte
	err  error
}

// fetchAll fetches ids with at most workers concurrent reads. Per-blob failures are
// kept in the results; only context cancellation aborts the whole batch.
func fetchAll(ctx context.Context, src source.Source, ids []int64, workers int) ([]fetchResult, error) {
	results := make([]fetchResult, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for i, id := range ids {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			data, err := src.Fetch(gctx, id)
			results[i] = fetchResult{data: data, err: err}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
