package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/joshdurbin/url-shortener-client/internal/domain"
	"github.com/joshdurbin/url-shortener-client/internal/logger"
	"github.com/joshdurbin/url-shortener-client/internal/service"
)

// Handler holds the HTTP handlers of the development backend
type Handler struct {
	shortener service.URLShortener
	baseURL   string
}

// NewHandler creates a new HTTP handler; short links are built as baseURL + "/" + code
func NewHandler(shortener service.URLShortener, baseURL string) *Handler {
	return &Handler{
		shortener: shortener,
		baseURL:   strings.TrimRight(baseURL, "/"),
	}
}

// Shorten handles POST /shorten
func (h *Handler) Shorten(w http.ResponseWriter, r *http.Request) {
	var req domain.ShortenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Log.Errorw("invalid JSON in shorten request", "error", err)
		writeJSON(w, http.StatusBadRequest, domain.ShortenResponse{Error: "Invalid JSON"})
		return
	}

	if req.URL == "" {
		logger.Log.Errorw("empty URL provided in shorten request")
		writeJSON(w, http.StatusBadRequest, domain.ShortenResponse{Error: "URL is required"})
		return
	}

	entry, err := h.shortener.CreateShortURL(r.Context(), req.URL)
	if err != nil {
		logger.Log.Errorw("failed to create short URL", "url", req.URL, "error", err)
		switch {
		case errors.Is(err, service.ErrInvalidURL):
			writeJSON(w, http.StatusBadRequest, domain.ShortenResponse{Error: err.Error()})
		case errors.Is(err, service.ErrTooManyAttempts):
			writeJSON(w, http.StatusServiceUnavailable, domain.ShortenResponse{Error: "Could not allocate a short code"})
		default:
			writeJSON(w, http.StatusInternalServerError, domain.ShortenResponse{Error: "Internal server error"})
		}
		return
	}

	writeJSON(w, http.StatusOK, domain.ShortenResponse{ShortURL: h.baseURL + "/" + entry.ShortCode})
}

// Redirect handles GET /{code}
func (h *Handler) Redirect(w http.ResponseWriter, r *http.Request) {
	shortCode := r.PathValue("code")
	if shortCode == "" {
		http.NotFound(w, r)
		return
	}

	originalURL, err := h.shortener.GetOriginalURL(r.Context(), shortCode)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		logger.Log.Errorw("failed to get original URL", "short_code", shortCode, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, originalURL, http.StatusFound)
}

func writeJSON(w http.ResponseWriter, status int, body domain.ShortenResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Log.Errorw("error encoding response", "error", err)
	}
}
