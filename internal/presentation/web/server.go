package web

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/tesso57/highlights/internal/application/settings"
	"github.com/tesso57/highlights/internal/application/usecase"
	"github.com/tesso57/highlights/internal/presentation/surface"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static/*
var staticFS embed.FS

// Server hosts the web page surface.
type Server struct {
	settings  settings.Settings
	service   usecase.HighlightService
	logger    *log.Logger
	router    chi.Router
	templates *template.Template
}

// New creates a new server.
func New(cfg settings.Settings, service usecase.HighlightService, logger *log.Logger) (*Server, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"isCopyTitle": func(a surface.Action) bool { return a.Kind == surface.CopyTitle },
	}).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	if logger == nil {
		logger = log.Default()
	}

	s := &Server{
		settings:  cfg,
		service:   service,
		logger:    logger.WithPrefix("web"),
		templates: tmpl,
	}
	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))

	staticSub, _ := fs.Sub(staticFS, "static")
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticSub))))

	r.Get("/healthz", s.handleHealth)
	r.Group(func(r chi.Router) {
		r.Use(middleware.NoCache)
		r.Get("/", s.handlePage)
		r.Get("/highlights", s.handleHighlights)
	})

	s.router = r
}

// Handler exposes the router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves on addr until ctx is cancelled.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info("server shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("OK"))
}

// handlePage serves the shell in its loading state; the browser then
// requests the highlights fragment.
func (s *Server) handlePage(w http.ResponseWriter, _ *http.Request) {
	s.render(w, "layout.html", LoadingPage())
}

// handleHighlights runs one render cycle.
func (s *Server) handleHighlights(w http.ResponseWriter, r *http.Request) {
	out := s.service.Load(r.Context(), s.settings.FeedURL)
	page := BuildPage(out, s.service.CurrentTime())
	w.Header().Set("X-Highlights-State", page.State.String())
	s.render(w, "highlights.html", page)
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, name, data); err != nil {
		s.logger.Error("template render failed", "template", name, "err", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"dur", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
