package sentiment

import (
	"github.com/jonreiter/govader"
	"github.com/spacesedan/sentiform/internal/models"
)

// Analyzer scores text with the VADER lexicon. It is safe for concurrent use;
// the lexicon is only read after construction.
type Analyzer struct {
	vader *govader.SentimentIntensityAnalyzer
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{vader: govader.NewSentimentIntensityAnalyzer()}
}

// Compound scores a single raw token.
func (a *Analyzer) Compound(token string) (float64, error) {
	return a.vader.PolarityScores(token).Compound, nil
}

// Analyze scores the whole text. Polarity is the VADER compound score and
// subjectivity is the share of the text carrying positive or negative valence.
func (a *Analyzer) Analyze(text string) (models.SentimentResult, error) {
	scores := a.vader.PolarityScores(ConvertMarkdownToText(text))

	return models.SentimentResult{
		Polarity:     clamp(scores.Compound, -1, 1),
		Subjectivity: clamp(scores.Positive+scores.Negative, 0, 1),
	}, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
