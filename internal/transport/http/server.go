package http

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/joshdurbin/url-shortener-client/internal/logger"
	"github.com/joshdurbin/url-shortener-client/internal/metrics"
	"github.com/joshdurbin/url-shortener-client/internal/service"
)

// Route labels used for request metrics
const (
	RouteShorten  = "shorten"
	RouteRedirect = "redirect"
)

// Server represents the development HTTP server
type Server struct {
	handler *Handler
	server  *http.Server
	port    string
}

// NewServer creates a new HTTP server serving POST /shorten, GET /{code} and /metrics
func NewServer(shortener service.URLShortener, port, baseURL string, m *metrics.Metrics, verbose bool) *Server {
	handler := NewHandler(shortener, baseURL)

	mux := http.NewServeMux()
	mux.Handle("POST /shorten", instrument(m, RouteShorten, handler.Shorten))
	mux.Handle("GET /{code}", instrument(m, RouteRedirect, handler.Redirect))
	if m != nil {
		mux.Handle("GET /metrics", promhttp.HandlerFor(m.Registry(), promhttp.HandlerOpts{}))
	}

	// Logging middleware is the outermost layer
	finalHandler := NewLoggingMiddleware(verbose).Middleware(mux)

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      finalHandler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		handler: handler,
		server:  server,
		port:    port,
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	logger.Log.Infow("server starting", "port", s.port)
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Log.Info("server shutting down")
	return s.server.Shutdown(ctx)
}

// Port returns the server port
func (s *Server) Port() string {
	return s.port
}

// Handler returns the server handler (useful for testing)
func (s *Server) Handler() *Handler {
	return s.handler
}

// HTTPHandler returns the fully wrapped http.Handler (useful for httptest servers)
func (s *Server) HTTPHandler() http.Handler {
	return s.server.Handler
}
