package sentiment

import "github.com/spacesedan/sentiform/internal/models"

var (
	metricLabels     = []string{"polarity", "subjectivity"}
	tokenCountLabels = []string{"Positive", "Negative", "Neutral"}
)

func ToSeries(result models.SentimentResult) models.ChartSeries {
	return models.ChartSeries{
		Labels: append([]string(nil), metricLabels...),
		Values: []float64{result.Polarity, result.Subjectivity},
	}
}

func TokenCountSeries(c models.TokenClassification) models.ChartSeries {
	return models.ChartSeries{
		Labels: append([]string(nil), tokenCountLabels...),
		Values: []float64{
			float64(len(c.Positives)),
			float64(len(c.Negatives)),
			float64(len(c.Neutral)),
		},
	}
}
