package blob

import (
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/arloliu/polyblob/errs"
	"github.com/arloliu/polyblob/format"
	"github.com/arloliu/polyblob/internal/options"
)

const (
	// DefaultSmallTagLimit is the largest type tag counted as "small" when scoring.
	DefaultSmallTagLimit = 1024
	// DefaultHeadWindow is the number of leading records inspected for early repetition.
	DefaultHeadWindow = 10
)

// ScoreWeights weights the three terms of the candidate score.
//
// The defaults are empirical. Downstream reports may depend on the exact outcome
// for known datasets, so change them only through configuration.
type ScoreWeights struct {
	Small  float64 // weight of the fraction of small type tags
	Unique float64 // weight of 1 - distinct tags / records
	Head   float64 // weight of the most frequent tag's share in the head window
}

// DefaultScoreWeights returns the weights 1.0, 0.6 and 0.2.
func DefaultScoreWeights() ScoreWeights {
	return ScoreWeights{Small: 1.0, Unique: 0.6, Head: 0.2}
}

// GuesserConfig holds the candidate space and scoring parameters of a Guesser.
type GuesserConfig struct {
	headerCandidates    []int
	recordLenCandidates []int
	weights             ScoreWeights
	smallTagLimit       uint16
	headWindow          int
	logger              *zap.Logger
}

func newGuesserConfig() *GuesserConfig {
	return &GuesserConfig{
		headerCandidates:    slices.Clone(format.DefaultHeaderCandidates),
		recordLenCandidates: slices.Clone(format.DefaultRecordLenCandidates),
		weights:             DefaultScoreWeights(),
		smallTagLimit:       DefaultSmallTagLimit,
		headWindow:          DefaultHeadWindow,
		logger:              zap.NewNop(),
	}
}

// GuessOption configures a Guesser.
type GuessOption = options.Option[*GuesserConfig]

// WithHeaderCandidates replaces the header lengths tried by the guesser.
// Candidates are tried in the given order; earlier candidates win ties.
func WithHeaderCandidates(headers ...int) GuessOption {
	return options.New(func(c *GuesserConfig) error {
		if len(headers) == 0 {
			return fmt.Errorf("%w: header candidates must not be empty", errs.ErrInvalidOption)
		}
		c.headerCandidates = slices.Clone(headers)

		return nil
	})
}

// WithRecordLenCandidates replaces the record lengths tried for every header candidate.
// Candidates are tried in the given order; earlier candidates win ties.
func WithRecordLenCandidates(recordLens ...int) GuessOption {
	return options.New(func(c *GuesserConfig) error {
		if len(recordLens) == 0 {
			return fmt.Errorf("%w: record length candidates must not be empty", errs.ErrInvalidOption)
		}
		c.recordLenCandidates = slices.Clone(recordLens)

		return nil
	})
}

// WithScoreWeights overrides the score weights.
func WithScoreWeights(w ScoreWeights) GuessOption {
	return options.NoError(func(c *GuesserConfig) {
		c.weights = w
	})
}

// WithSmallTagLimit sets the largest type tag counted as small. Default is 1024.
func WithSmallTagLimit(limit uint16) GuessOption {
	return options.NoError(func(c *GuesserConfig) {
		c.smallTagLimit = limit
	})
}

// WithHeadWindow sets how many leading records feed the head bias term. Default is 10.
func WithHeadWindow(n int) GuessOption {
	return options.New(func(c *GuesserConfig) error {
		if n <= 0 {
			return fmt.Errorf("%w: head window must be positive, got %d", errs.ErrInvalidOption, n)
		}
		c.headWindow = n

		return nil
	})
}

// WithGuessLogger sets the logger used to trace candidate scoring at debug level.
// A nil logger disables logging.
func WithGuessLogger(logger *zap.Logger) GuessOption {
	return options.NoError(func(c *GuesserConfig) {
		if logger == nil {
			logger = zap.NewNop()
		}
		c.logger = logger
	})
}
