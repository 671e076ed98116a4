package blob

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/arloliu/polyblob/errs"
	"github.com/arloliu/polyblob/format"
)

func TestGuess_PicksRepeatingSmallTags(t *testing.T) {
	data := guessFixture(t)

	f, ok := Guess(data)
	require.True(t, ok)
	require.Equal(t, format.Format{HeaderLen: 32, RecordLen: 26}, f)
}

func TestGuess_NoCandidate(t *testing.T) {
	testCases := []struct {
		name string
		data []byte
	}{
		{name: "empty blob", data: nil},
		{name: "shorter than any record", data: make([]byte, 10)},
		{name: "no divisible body", data: make([]byte, 17)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f, ok := Guess(tc.data)
			require.False(t, ok)
			require.Equal(t, format.Format{}, f)
		})
	}
}

func TestGuess_Deterministic(t *testing.T) {
	data := buildBlob(t, make([]byte, 16), 24, []uint16{5, 5, 9, 5, 700, 5, 5, 9, 5, 5, 5, 40000}, 0x11)

	g, err := NewGuesser()
	require.NoError(t, err)

	first, ok := g.Guess(data)
	require.True(t, ok)
	for range 20 {
		again, ok := g.Guess(data)
		require.True(t, ok)
		require.Equal(t, first, again)
	}
}

func TestGuess_FirstOfTiesWins(t *testing.T) {
	// 64 zero bytes: (0, 16) and (16, 12) both yield four records tagged 0 and score the same
	data := make([]byte, 64)

	g, err := NewGuesser(
		WithHeaderCandidates(0, 16),
		WithRecordLenCandidates(16, 12),
	)
	require.NoError(t, err)

	f, ok := g.Guess(data)
	require.True(t, ok)
	require.Equal(t, format.Format{HeaderLen: 0, RecordLen: 16}, f)

	g, err = NewGuesser(
		WithHeaderCandidates(16, 0),
		WithRecordLenCandidates(16, 12),
	)
	require.NoError(t, err)

	f, ok = g.Guess(data)
	require.True(t, ok)
	require.Equal(t, format.Format{HeaderLen: 16, RecordLen: 12}, f)
}

func TestGuess_ZeroWeightsKeepFirstViable(t *testing.T) {
	g, err := NewGuesser(WithScoreWeights(ScoreWeights{}))
	require.NoError(t, err)

	f, ok := g.Guess(guessFixture(t))
	require.True(t, ok)
	require.Equal(t, format.Format{HeaderLen: 32, RecordLen: 20}, f)
}

func TestGuess_SkipsInvalidCandidates(t *testing.T) {
	data := buildBlob(t, nil, 20, repeatTag(3, 5), 0)

	g, err := NewGuesser(
		WithHeaderCandidates(-20, 100, 0),
		WithRecordLenCandidates(0, 2, -5, 20),
	)
	require.NoError(t, err)

	ranked := g.Rank(data)
	require.Len(t, ranked, 1)
	require.Equal(t, format.Format{HeaderLen: 0, RecordLen: 20}, ranked[0].Format)
}

func TestGuesser_Rank(t *testing.T) {
	data := guessFixture(t)

	g, err := NewGuesser()
	require.NoError(t, err)

	ranked := g.Rank(data)
	require.Len(t, ranked, 3)

	for i := 1; i < len(ranked); i++ {
		require.GreaterOrEqual(t, ranked[i-1].Score, ranked[i].Score)
	}

	best, ok := g.Guess(data)
	require.True(t, ok)
	require.Equal(t, best, ranked[0].Format)

	top := ranked[0]
	require.Equal(t, 10, top.RecordCount)
	require.InDelta(t, 1.0, top.SmallRatio, 1e-12)
	require.InDelta(t, 0.1, top.UniqueRatio, 1e-12)
	require.InDelta(t, 1.0, top.HeadBias, 1e-12)
	require.InDelta(t, 1.74, top.Score, 1e-12)

	// (32, 20): one record tagged 76, twelve tagged 0xFFFF
	var misaligned CandidateScore
	for _, cs := range ranked {
		if cs.Format == (format.Format{HeaderLen: 32, RecordLen: 20}) {
			misaligned = cs
		}
	}
	require.Equal(t, 13, misaligned.RecordCount)
	require.InDelta(t, 1.0/13, misaligned.SmallRatio, 1e-12)
	require.InDelta(t, 2.0/13, misaligned.UniqueRatio, 1e-12)
	require.InDelta(t, 0.9, misaligned.HeadBias, 1e-12)
}

func TestGuesser_Rank_NoCandidate(t *testing.T) {
	g, err := NewGuesser()
	require.NoError(t, err)

	require.Empty(t, g.Rank([]byte{1, 2, 3}))
}

func TestGuesser_SmallTagLimit(t *testing.T) {
	data := guessFixture(t)

	g, err := NewGuesser(WithSmallTagLimit(50))
	require.NoError(t, err)

	ranked := g.Rank(data)
	require.NotEmpty(t, ranked)
	for _, cs := range ranked {
		require.Zero(t, cs.SmallRatio, cs.Format.String())
	}
}

func TestGuesser_HeadWindow(t *testing.T) {
	tags := []uint16{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 10, 10}
	data := buildBlob(t, nil, 16, tags, 0)

	g, err := NewGuesser(
		WithHeaderCandidates(0),
		WithRecordLenCandidates(16),
		WithHeadWindow(12),
	)
	require.NoError(t, err)

	ranked := g.Rank(data)
	require.Len(t, ranked, 1)
	require.InDelta(t, 3.0/12, ranked[0].HeadBias, 1e-12)

	g, err = NewGuesser(WithHeaderCandidates(0), WithRecordLenCandidates(16))
	require.NoError(t, err)
	require.InDelta(t, 0.1, g.Rank(data)[0].HeadBias, 1e-12)
}

func TestNewGuesser_InvalidOptions(t *testing.T) {
	testCases := []struct {
		name string
		opt  GuessOption
	}{
		{name: "empty headers", opt: WithHeaderCandidates()},
		{name: "empty record lengths", opt: WithRecordLenCandidates()},
		{name: "zero head window", opt: WithHeadWindow(0)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := NewGuesser(tc.opt)
			require.ErrorIs(t, err, errs.ErrInvalidOption)
			require.Nil(t, g)
		})
	}
}

func TestNewGuesser_CandidatesAreCopied(t *testing.T) {
	headers := []int{0, 16}
	g, err := NewGuesser(WithHeaderCandidates(headers...), WithRecordLenCandidates(16))
	require.NoError(t, err)

	headers[0] = 1000

	f, ok := g.Guess(make([]byte, 32))
	require.True(t, ok)
	require.Equal(t, format.Format{HeaderLen: 0, RecordLen: 16}, f)
}

func TestGuesser_Logging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	g, err := NewGuesser(WithGuessLogger(zap.New(core)))
	require.NoError(t, err)

	_, ok := g.Guess(guessFixture(t))
	require.True(t, ok)

	require.Equal(t, 3, logs.FilterMessage("scored polyline format candidate").Len())
	guessed := logs.FilterMessage("guessed polyline format").All()
	require.Len(t, guessed, 1)
	require.EqualValues(t, 26, guessed[0].ContextMap()["record_len"])

	_, ok = g.Guess(bytes.Repeat([]byte{1}, 5))
	require.False(t, ok)
	require.Equal(t, 1, logs.FilterMessage("no polyline format candidate").Len())
}

func BenchmarkGuess(b *testing.B) {
	data := buildBlob(b, make([]byte, 16), 26, repeatTag(76, 512), 0x3F)

	b.ReportAllocs()
	for b.Loop() {
		_, _ = Guess(data)
	}
}
