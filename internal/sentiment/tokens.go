package sentiment

import (
	"fmt"
	"strings"

	"github.com/spacesedan/sentiform/internal/models"
)

// Fixed policy. A score of exactly PositiveThreshold is neutral while a score
// of exactly NegativeThreshold is negative.
const (
	PositiveThreshold = 0.1
	NegativeThreshold = -0.1
)

type CompoundScorer interface {
	Compound(token string) (float64, error)
}

// Classify splits text on whitespace and places every token in exactly one
// bucket according to its compound score. Punctuation stays attached to the
// token it was written with.
func Classify(text string, scorer CompoundScorer) (models.TokenClassification, error) {
	result := models.TokenClassification{
		Positives: []models.TokenScore{},
		Negatives: []models.TokenScore{},
		Neutral:   []string{},
	}

	for i, token := range strings.Fields(text) {
		score, err := scorer.Compound(token)
		if err != nil {
			return models.TokenClassification{}, fmt.Errorf("score token %d %q: %w", i, token, err)
		}

		switch {
		case score > PositiveThreshold:
			result.Positives = append(result.Positives, models.TokenScore{Token: token, Compound: score})
		case score <= NegativeThreshold:
			result.Negatives = append(result.Negatives, models.TokenScore{Token: token, Compound: score})
		default:
			result.Neutral = append(result.Neutral, token)
		}
	}

	return result, nil
}
