package models

// SentimentResult is the whole-text score for one submission.
type SentimentResult struct {
	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`
}

type TokenScore struct {
	Token    string  `json:"token"`
	Compound float64 `json:"compound"`
}

// TokenClassification buckets every whitespace-delimited token of a text.
// Order inside each bucket follows the order of the tokens in the text.
type TokenClassification struct {
	Positives []TokenScore `json:"positives"`
	Negatives []TokenScore `json:"negatives"`
	Neutral   []string     `json:"neutral"`
}

func (c TokenClassification) Total() int {
	return len(c.Positives) + len(c.Negatives) + len(c.Neutral)
}
