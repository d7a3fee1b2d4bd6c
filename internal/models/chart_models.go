package models

// ChartSeries is one labeled set of bars.
type ChartSeries struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}
