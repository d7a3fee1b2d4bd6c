package sentiment

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubScorer map[string]float64

func (s stubScorer) Compound(token string) (float64, error) {
	return s[token], nil
}

type failingScorer struct {
	failOn string
}

var errScorer = errors.New("scorer unavailable")

func (f failingScorer) Compound(token string) (float64, error) {
	if token == f.failOn {
		return 0, errScorer
	}
	return 0, nil
}

func TestClassify_Boundaries(t *testing.T) {
	scorer := stubScorer{
		"edgePos":   0.1,
		"edgeNeg":   -0.1,
		"justPos":   0.1000001,
		"justNeg":   -0.1000001,
		"zero":      0,
		"nearNeg":   -0.0999999,
		"strongPos": 0.9,
		"strongNeg": -0.9,
	}

	got, err := Classify("edgePos edgeNeg justPos justNeg zero nearNeg strongPos strongNeg", scorer)
	require.NoError(t, err)

	var pos, neg []string
	for _, ts := range got.Positives {
		pos = append(pos, ts.Token)
	}
	for _, ts := range got.Negatives {
		neg = append(neg, ts.Token)
	}

	assert.Equal(t, []string{"justPos", "strongPos"}, pos)
	assert.Equal(t, []string{"edgeNeg", "justNeg", "strongNeg"}, neg)
	assert.Equal(t, []string{"edgePos", "zero", "nearNeg"}, got.Neutral)
}

func TestClassify_KeepsScores(t *testing.T) {
	got, err := Classify("good bad", stubScorer{"good": 0.44, "bad": -0.54})
	require.NoError(t, err)

	require.Len(t, got.Positives, 1)
	require.Len(t, got.Negatives, 1)
	assert.InDelta(t, 0.44, got.Positives[0].Compound, 1e-9)
	assert.InDelta(t, -0.54, got.Negatives[0].Compound, 1e-9)
}

func TestClassify_EmptyInput(t *testing.T) {
	for _, text := range []string{"", "   ", "\t\n  "} {
		got, err := Classify(text, stubScorer{})
		require.NoError(t, err)
		assert.Empty(t, got.Positives)
		assert.Empty(t, got.Negatives)
		assert.Empty(t, got.Neutral)
		assert.NotNil(t, got.Neutral)
	}
}

func TestClassify_Partition(t *testing.T) {
	scorer := stubScorer{"great!": 0.6, "awful,": -0.5, "meh": 0.05, "ok": 0.1}
	inputs := []string{
		"great! awful, meh ok",
		"  great!\tgreat!\n awful, ",
		"ok ok ok meh",
		"unknown tokens only here",
	}

	for _, text := range inputs {
		got, err := Classify(text, scorer)
		require.NoError(t, err)

		tokens := strings.Fields(text)
		assert.Equal(t, len(tokens), got.Total(), text)

		var seen []string
		for _, ts := range got.Positives {
			seen = append(seen, ts.Token)
		}
		for _, ts := range got.Negatives {
			seen = append(seen, ts.Token)
		}
		seen = append(seen, got.Neutral...)
		assert.ElementsMatch(t, tokens, seen, text)
	}
}

func TestClassify_NoPunctuationStripping(t *testing.T) {
	got, err := Classify("nice, nice", stubScorer{"nice": 0.42})
	require.NoError(t, err)

	require.Len(t, got.Positives, 1)
	assert.Equal(t, "nice", got.Positives[0].Token)
	assert.Equal(t, []string{"nice,"}, got.Neutral)
}

func TestClassify_ScorerError(t *testing.T) {
	_, err := Classify("one two three", failingScorer{failOn: "two"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errScorer)
	assert.Contains(t, err.Error(), `"two"`)
}

func TestClassify_WithVader(t *testing.T) {
	got, err := Classify("I love this but hate that", NewAnalyzer())
	require.NoError(t, err)

	assert.Equal(t, 6, got.Total())
	require.NotEmpty(t, got.Positives)
	require.NotEmpty(t, got.Negatives)
	assert.Equal(t, "love", got.Positives[0].Token)
	assert.Equal(t, "hate", got.Negatives[0].Token)
}
