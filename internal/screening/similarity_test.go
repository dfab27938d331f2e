package screening_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tomszy91/sanctions-screening/internal/screening"
)

var allAlgorithms = []screening.Algorithm{
	screening.AlgorithmRatio,
	screening.AlgorithmTokenSortRatio,
	screening.AlgorithmTokenSetRatio,
}

func TestScoreIdentity(t *testing.T) {
	names := []string{"FRANK KAKORERE", "ALPHA BETA GAMMA", "X"}
	for _, alg := range allAlgorithms {
		for _, name := range names {
			assert.Equal(t, 100.0, screening.Score(name, name, alg),
				"alg=%s name=%q", alg, name)
		}
	}
}

func TestScoreSymmetry(t *testing.T) {
	pairs := [][2]string{
		{"FRANK KAKORERE ENTERPRISES", "FRANK KAKORERE"},
		{"ALPHA TRADING", "TRADING ALPHA"},
		{"ABCD", "ABCE"},
		{"JOHN SMITH", "SMITH JONES"},
	}
	for _, alg := range allAlgorithms {
		for _, pair := range pairs {
			assert.Equal(t,
				screening.Score(pair[0], pair[1], alg),
				screening.Score(pair[1], pair[0], alg),
				"alg=%s pair=%v", alg, pair)
		}
	}
}

func TestScoreBounds(t *testing.T) {
	pairs := [][2]string{
		{"FRANK KAKORERE ENTERPRISES", "FRANK KAKORERE"},
		{"ABCD", "WXYZ"},
		{"A", "ALPHA BETA GAMMA DELTA"},
	}
	for _, alg := range allAlgorithms {
		for _, pair := range pairs {
			score := screening.Score(pair[0], pair[1], alg)
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 100.0)
		}
	}
}

func TestRatio(t *testing.T) {
	// One substitution across four runes.
	assert.Equal(t, 75.0, screening.Score("ABCD", "ABCE", screening.AlgorithmRatio))
	assert.Equal(t, 0.0, screening.Score("AAAA", "BBBB", screening.AlgorithmRatio))
}

func TestTokenSortRatioOrderInsensitive(t *testing.T) {
	assert.Equal(t, 100.0,
		screening.Score("KAKORERE FRANK", "FRANK KAKORERE", screening.AlgorithmTokenSortRatio))

	// Extra tokens still cost: the sorted strings differ by the surplus.
	score := screening.Score("FRANK KAKORERE ENTERPRISES", "FRANK KAKORERE", screening.AlgorithmTokenSortRatio)
	assert.InDelta(t, 53.85, score, 0.05)
}

func TestTokenSetRatioSupersetTokens(t *testing.T) {
	// One name's tokens contain the other's: the intersection comparison
	// scores a full match.
	assert.Equal(t, 100.0,
		screening.Score("FRANK KAKORERE ENTERPRISES", "FRANK KAKORERE", screening.AlgorithmTokenSetRatio))
	assert.Equal(t, 100.0,
		screening.Score("FRANK KAKORERE", "FRANK KAKORERE ENTERPRISES", screening.AlgorithmTokenSetRatio))
}

func TestTokenSetRatioDisjoint(t *testing.T) {
	score := screening.Score("AAAA BBBB", "CCCC DDDD", screening.AlgorithmTokenSetRatio)
	assert.Less(t, score, 60.0)
}

func TestScoreUnknownAlgorithmFallsBackToRatio(t *testing.T) {
	a, b := "FRANK KAKORERE", "FRANK KAKORER"
	assert.Equal(t,
		screening.Score(a, b, screening.AlgorithmRatio),
		screening.Score(a, b, screening.Algorithm("unknown_value")))
}

func TestParseAlgorithm(t *testing.T) {
	alg, ok := screening.ParseAlgorithm("token_set_ratio")
	assert.True(t, ok)
	assert.Equal(t, screening.AlgorithmTokenSetRatio, alg)

	alg, ok = screening.ParseAlgorithm("unknown_value")
	assert.False(t, ok)
	assert.Equal(t, screening.AlgorithmRatio, alg)
}
