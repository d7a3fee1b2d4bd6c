package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spacesedan/sentiform/internal/charts"
	"github.com/spacesedan/sentiform/internal/models"
	"github.com/spacesedan/sentiform/internal/sentiment"
)

type Scorer interface {
	sentiment.CompoundScorer
	Analyze(text string) (models.SentimentResult, error)
}

type ChartRenderer interface {
	Render(series models.ChartSeries, opts charts.BarChartOptions) ([]byte, error)
}

// Service runs one submission through scoring, classification and both charts.
type Service struct {
	scorer   Scorer
	renderer ChartRenderer
}

func NewService(scorer Scorer, renderer ChartRenderer) *Service {
	return &Service{scorer: scorer, renderer: renderer}
}

// Analyze either completes every step or returns the first error.
func (s *Service) Analyze(ctx context.Context, text string) (*models.AnalysisReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()

	result, err := s.scorer.Analyze(text)
	if err != nil {
		return nil, fmt.Errorf("score text: %w", err)
	}

	sentimentChart, err := s.renderer.Render(sentiment.ToSeries(result), charts.SentimentChartOptions())
	if err != nil {
		return nil, fmt.Errorf("render sentiment chart: %w", err)
	}

	tokens, err := sentiment.Classify(text, s.scorer)
	if err != nil {
		return nil, fmt.Errorf("classify tokens: %w", err)
	}

	tokenChart, err := s.renderer.Render(sentiment.TokenCountSeries(tokens), charts.TokenChartOptions())
	if err != nil {
		return nil, fmt.Errorf("render token chart: %w", err)
	}

	slog.Info("[Analysis] Text analyzed",
		slog.Int("tokens", tokens.Total()),
		slog.Int("positive", len(tokens.Positives)),
		slog.Int("negative", len(tokens.Negatives)),
		slog.Float64("polarity", result.Polarity),
		slog.Duration("elapsed", time.Since(start)))

	return &models.AnalysisReport{
		Text:           text,
		Sentiment:      result,
		Tokens:         tokens,
		SentimentChart: sentimentChart,
		TokenChart:     tokenChart,
	}, nil
}
