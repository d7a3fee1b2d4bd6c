package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/spacesedan/sentiform/internal/models"
)

var ErrEmptyText = errors.New("text is required")

type resultView struct {
	Text           string
	Sentiment      models.SentimentResult
	Tokens         models.TokenClassification
	SentimentChart template.URL
	TokenChart     template.URL
}

type analyzeRequest struct {
	Text string `json:"text"`
}

type analyzeResponse struct {
	Sentiment      models.SentimentResult     `json:"sentiment"`
	Tokens         models.TokenClassification `json:"tokens"`
	SentimentChart string                     `json:"sentiment_chart"`
	TokenChart     string                     `json:"token_chart"`
}

type response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func (s *Server) Index(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "index.html", nil)
}

// Submit analyzes the posted text field, urlencoded or multipart. A missing
// or empty field shows the form again.
func (s *Server) Submit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxBodyBytes)
	if err := r.ParseMultipartForm(s.maxBodyBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.render(w, http.StatusRequestEntityTooLarge, "error.html", "The submitted text is too long.")
			return
		}
		slog.Warn("[Server] Unreadable form, showing input form",
			slog.String("error", err.Error()))
		s.render(w, http.StatusOK, "index.html", nil)
		return
	}

	text := r.PostForm.Get("text")
	if text == "" {
		s.render(w, http.StatusOK, "index.html", nil)
		return
	}

	report, err := s.analyzer.Analyze(r.Context(), text)
	if err != nil {
		slog.Error("[Server] Analysis failed",
			slog.String("error", err.Error()))
		s.render(w, http.StatusInternalServerError, "error.html", "Something went wrong while analyzing your text.")
		return
	}

	s.render(w, http.StatusOK, "result.html", resultView{
		Text:           report.Text,
		Sentiment:      report.Sentiment,
		Tokens:         report.Tokens,
		SentimentChart: pngDataURL(report.SentimentChartBase64()),
		TokenChart:     pngDataURL(report.TokenChartBase64()),
	})
}

func (s *Server) AnalyzeJSON(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxBodyBytes)

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Text == "" {
		fail(w, http.StatusBadRequest, ErrEmptyText.Error())
		return
	}

	report, err := s.analyzer.Analyze(r.Context(), req.Text)
	if err != nil {
		slog.Error("[Server] Analysis failed",
			slog.String("error", err.Error()))
		fail(w, http.StatusInternalServerError, "analysis failed")
		return
	}

	ok(w, analyzeResponse{
		Sentiment:      report.Sentiment,
		Tokens:         report.Tokens,
		SentimentChart: report.SentimentChartBase64(),
		TokenChart:     report.TokenChartBase64(),
	})
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// render executes into a buffer first so a template error never leaves a
// half-written page behind.
func (s *Server) render(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, name, data); err != nil {
		slog.Error("[Server] Failed to render template",
			slog.String("template", name),
			slog.String("error", err.Error()))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

func pngDataURL(encoded string) template.URL {
	return template.URL("data:image/png;base64," + encoded)
}

func ok(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, response{Success: true, Data: data})
}

func fail(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, response{Success: false, Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
