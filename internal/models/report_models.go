package models

import "encoding/base64"

type AnalysisReport struct {
	Text           string              `json:"text"`
	Sentiment      SentimentResult     `json:"sentiment"`
	Tokens         TokenClassification `json:"tokens"`
	SentimentChart []byte              `json:"-"`
	TokenChart     []byte              `json:"-"`
}

func (r *AnalysisReport) SentimentChartBase64() string {
	return base64.StdEncoding.EncodeToString(r.SentimentChart)
}

func (r *AnalysisReport) TokenChartBase64() string {
	return base64.StdEncoding.EncodeToString(r.TokenChart)
}
