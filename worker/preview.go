package worker

import (
	"context"
	"encoding/json"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"time"

	"snapshot-newsletter/internal/document"
	"snapshot-newsletter/internal/newsletter"
	"snapshot-newsletter/internal/report"
	"snapshot-newsletter/internal/validate"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

var problemPage = template.Must(template.New("problems").Parse(`<!DOCTYPE html>
<html lang="en"><head><meta charset="utf-8"><title>Newsletter not ready</title></head>
<body style="font-family: Helvetica, Arial, sans-serif; max-width: 720px; margin: 40px auto;">
<h1>Newsletter not ready ({{.Outcome}})</h1>
{{with .Error}}<p>{{.}}</p>{{end}}
{{with .Errors}}<h2>Errors (must fix)</h2><ul>{{range .}}<li>{{.Message}}</li>{{end}}</ul>{{end}}
{{with .Warnings}}<h2>Warnings (recommended to fix)</h2><ul>{{range .}}<li>{{.Message}}</li>{{end}}</ul>{{end}}
</body></html>
`))

// Preview serves the rendered newsletter and its validation report over
// HTTP. Inputs are re-read on every request.
type Preview struct {
	Addr         string
	DocumentPath string
	TemplatePath string // empty uses the built-in template
	Renderer     *newsletter.Renderer
	Validator    *validate.Validator
}

func (p *Preview) Name() string { return "preview" }

// Handler returns the preview routes.
func (p *Preview) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/", p.handleNewsletter)
	r.Get("/report", p.handleReport)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	return r
}

func (p *Preview) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              p.Addr,
		Handler:           p.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		slog.Info("preview: server starting", "addr", p.Addr, "document", p.DocumentPath)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// load prepares and checks the document. doc is nil when a prerequisite failed.
func (p *Preview) load() (*document.Document, report.ValidationReport) {
	doc, pre := validate.Prepare(p.DocumentPath)
	if pre != nil {
		return nil, report.ValidationReport{
			Outcome:  pre.Outcome,
			Error:    pre.Err.Error(),
			Errors:   []validate.Finding{},
			Warnings: []validate.Finding{},
		}
	}
	return doc, report.NewValidationReport(p.Validator.Check(doc))
}

func (p *Preview) handleNewsletter(w http.ResponseWriter, r *http.Request) {
	doc, rep := p.load()
	w.Header().Set("X-Validation-Outcome", string(rep.Outcome))
	if rep.Outcome.Blocking() {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusUnprocessableEntity)
		if err := problemPage.Execute(w, rep); err != nil {
			slog.Warn("preview: problem page failed", "err", err)
		}
		return
	}

	src := newsletter.DefaultTemplate(p.Renderer.Engine().Name())
	if p.TemplatePath != "" {
		b, err := os.ReadFile(p.TemplatePath)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		src = string(b)
	}
	html, err := p.Renderer.RenderDocument(src, doc)
	if err != nil {
		slog.Warn("preview: render failed", "err", err, "request_id", middleware.GetReqID(r.Context()))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(html))
}

func (p *Preview) handleReport(w http.ResponseWriter, r *http.Request) {
	_, rep := p.load()
	writeJSON(w, http.StatusOK, rep)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Warn("preview: encode response", "err", err)
	}
}
