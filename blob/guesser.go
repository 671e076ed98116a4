package blob

import (
	"slices"

	"go.uber.org/zap"

	"github.com/arloliu/polyblob/format"
	"github.com/arloliu/polyblob/internal/options"
	"github.com/arloliu/polyblob/section"
)

// CandidateScore is the score of one (header length, record length) candidate.
type CandidateScore struct {
	Format format.Format
	Score  float64

	RecordCount int
	SmallRatio  float64 // fraction of records whose type tag is small
	UniqueRatio float64 // distinct type tags / records
	HeadBias    float64 // share of the most frequent tag among the first records
}

// Guesser infers the layout of polyline blobs whose format is not known.
//
// Real curve data tends to use a small, low-cardinality set of type tags that repeat
// early and often. Every candidate layout that splits the blob into whole records is
// decoded and scored on exactly those three properties. The result is a best-effort
// heuristic: callers needing certainty must supply an explicit format.
//
// A Guesser is immutable after construction and safe for concurrent use.
type Guesser struct {
	cfg *GuesserConfig
}

// NewGuesser creates a Guesser with the default candidate space, adjusted by opts.
//
// Default header candidates are 0, 16, 32, 48, 64, 74, 80 and 96; default record
// lengths are 16, 18, 20, 24, 26, 28 and 32.
//
// Returns:
//   - *Guesser: Configured guesser
//   - error: errs.ErrInvalidOption for empty candidate lists or a non-positive head window
func NewGuesser(opts ...GuessOption) (*Guesser, error) {
	cfg := newGuesserConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return &Guesser{cfg: cfg}, nil
}

// Guess returns the best scoring format for data.
//
// Candidates are visited header-major in the configured order and the best is replaced
// only on a strictly greater score, so the first of several tied candidates wins.
//
// Returns:
//   - format.Format: Best candidate, zero value when ok is false
//   - bool: False when no candidate decodes data into at least one record
func (g *Guesser) Guess(data []byte) (format.Format, bool) {
	var (
		best  CandidateScore
		found bool
	)

	g.visit(data, func(cs CandidateScore) {
		if !found || cs.Score > best.Score {
			best = cs
			found = true
		}
	})

	if !found {
		g.cfg.logger.Debug("no polyline format candidate", zap.Int("blob_len", len(data)))
		return format.Format{}, false
	}

	g.cfg.logger.Debug("guessed polyline format",
		zap.Int("header_len", best.Format.HeaderLen),
		zap.Int("record_len", best.Format.RecordLen),
		zap.Float64("score", best.Score),
	)

	return best.Format, true
}

// Rank scores every viable candidate for data.
//
// The result is sorted by descending score. The sort is stable, so tied candidates keep
// their visiting order and Rank(data)[0] is the format Guess returns.
func (g *Guesser) Rank(data []byte) []CandidateScore {
	var ranked []CandidateScore
	g.visit(data, func(cs CandidateScore) {
		ranked = append(ranked, cs)
	})

	slices.SortStableFunc(ranked, func(a, b CandidateScore) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		default:
			return 0
		}
	})

	return ranked
}

// visit calls fn for every candidate that decodes data into at least one record,
// in header-major candidate order.
func (g *Guesser) visit(data []byte, fn func(CandidateScore)) {
	for _, h := range g.cfg.headerCandidates {
		if h < 0 || h >= len(data) {
			continue
		}
		bodyLen := len(data) - h

		for _, r := range g.cfg.recordLenCandidates {
			if r <= format.TypeTagSize || bodyLen <= 0 || bodyLen%r != 0 {
				continue
			}

			f := format.Format{HeaderLen: h, RecordLen: r}
			decoded, err := Decode(data, f)
			if err != nil || decoded.Len() == 0 {
				continue
			}

			cs := g.score(f, decoded.Records())
			g.cfg.logger.Debug("scored polyline format candidate",
				zap.Int("header_len", h),
				zap.Int("record_len", r),
				zap.Int("records", cs.RecordCount),
				zap.Float64("small_ratio", cs.SmallRatio),
				zap.Float64("unique_ratio", cs.UniqueRatio),
				zap.Float64("head_bias", cs.HeadBias),
				zap.Float64("score", cs.Score),
			)
			fn(cs)
		}
	}
}

func (g *Guesser) score(f format.Format, records []section.Record) CandidateScore {
	n := len(records)

	small := 0
	distinct := make(map[uint16]struct{}, n)
	for _, rec := range records {
		if rec.TypeTag <= g.cfg.smallTagLimit {
			small++
		}
		distinct[rec.TypeTag] = struct{}{}
	}

	head := records[:min(g.cfg.headWindow, n)]
	headCounts := make(map[uint16]int, len(head))
	most := 0
	for _, rec := range head {
		headCounts[rec.TypeTag]++
		most = max(most, headCounts[rec.TypeTag])
	}

	cs := CandidateScore{
		Format:      f,
		RecordCount: n,
		SmallRatio:  float64(small) / float64(n),
		UniqueRatio: float64(len(distinct)) / float64(n),
		HeadBias:    float64(most) / float64(len(head)),
	}

	w := g.cfg.weights
	// The conversions forbid fused multiply-add so tie-breaking is identical on every architecture.
	cs.Score = float64(cs.SmallRatio*w.Small) + float64((1.0-cs.UniqueRatio)*w.Unique) + float64(cs.HeadBias*w.Head)

	return cs
}

// Guess infers the format of data with the default candidate space.
//
// See Guesser.Guess.
func Guess(data []byte) (format.Format, bool) {
	return defaultGuesser.Guess(data)
}

var defaultGuesser = &Guesser{cfg: newGuesserConfig()}
