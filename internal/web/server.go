// Package web serves the text form and renders analysis results.
package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/spacesedan/sentiform/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

type Analyzer interface {
	Analyze(ctx context.Context, text string) (*models.AnalysisReport, error)
}

// Server holds everything a request needs. Nothing in it changes after NewServer.
type Server struct {
	analyzer     Analyzer
	templates    *template.Template
	maxBodyBytes int64
}

func NewServer(analyzer Analyzer, maxBodyBytes int64) (*Server, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	return &Server{
		analyzer:     analyzer,
		templates:    tmpl,
		maxBodyBytes: maxBodyBytes,
	}, nil
}

// Routes uses Go 1.22 method+pattern routing.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.Index)
	mux.HandleFunc("POST /{$}", s.Submit)
	mux.HandleFunc("POST /api/v1/analyze", s.AnalyzeJSON)
	mux.HandleFunc("GET /healthz", s.Health)

	return logRequests(recoverPanics(mux))
}
