package http

import (
	"bytes"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/joshdurbin/url-shortener-client/internal/logger"
	"github.com/joshdurbin/url-shortener-client/internal/metrics"
)

// LoggingMiddleware logs requests and responses through the global logger
type LoggingMiddleware struct {
	verbose bool
}

// NewLoggingMiddleware creates a new logging middleware; verbose adds bodies to the log
func NewLoggingMiddleware(verbose bool) *LoggingMiddleware {
	return &LoggingMiddleware{
		verbose: verbose,
	}
}

// statusRecorder wraps http.ResponseWriter to capture response details
type statusRecorder struct {
	http.ResponseWriter
	statusCode int
	body       *bytes.Buffer
}

func newStatusRecorder(w http.ResponseWriter, captureBody bool) *statusRecorder {
	rec := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}
	if captureBody {
		rec.body = &bytes.Buffer{}
	}
	return rec
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.statusCode = code
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *statusRecorder) Write(b []byte) (int, error) {
	if rec.body != nil {
		rec.body.Write(b)
	}
	return rec.ResponseWriter.Write(b)
}

// Middleware returns the HTTP logging middleware function
func (l *LoggingMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if l.verbose && r.Method == http.MethodPost && r.Body != nil {
			bodyBytes, err := io.ReadAll(r.Body)
			if err != nil {
				logger.Log.Errorw("error reading request body", "error", err)
			}
			// Create a new reader for the handler
			r.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
			if len(bodyBytes) > 0 {
				logger.Log.Debugw("request body", "path", r.URL.Path, "body", string(bodyBytes))
			}
		}

		rec := newStatusRecorder(w, l.verbose)
		next.ServeHTTP(rec, r)

		logger.Log.Infow("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"remote", r.RemoteAddr,
			"status", rec.statusCode,
			"duration", time.Since(start),
		)

		if rec.body != nil && rec.body.Len() > 0 && rec.statusCode >= 400 {
			logger.Log.Debugw("error response body", "path", r.URL.Path, "body", rec.body.String())
		}
	})
}

// instrument counts requests per route and status code
func instrument(m *metrics.Metrics, route string, next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := newStatusRecorder(w, false)
		next.ServeHTTP(rec, r)
		m.StubRequest(route, strconv.Itoa(rec.statusCode))
	})
}
