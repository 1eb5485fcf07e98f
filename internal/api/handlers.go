package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/maltedev/flipkart-scraper/internal/fetch"
	"github.com/maltedev/flipkart-scraper/internal/models"
	"github.com/maltedev/flipkart-scraper/internal/parser"
	"github.com/maltedev/flipkart-scraper/internal/scraper"
)

type Handlers struct {
	scraper *scraper.Service
	logger  *slog.Logger
}

func NewHandlers(scraper *scraper.Service, logger *slog.Logger) *Handlers {
	return &Handlers{
		scraper: scraper,
		logger:  logger.With("component", "api"),
	}
}

func (h *Handlers) Register(r chi.Router) {
	r.Get("/health", h.Health)
	r.Get("/product", h.GetProduct)
	r.Get("/search", h.GetSearch)
}

// ProductResponse wraps one extracted product page.
type ProductResponse struct {
	ExtractionID string                 `json:"extraction_id"`
	Product      *models.ProductDetails `json:"product,omitempty"`
	Error        string                 `json:"error,omitempty"`
}

// SearchResponse wraps one extracted search listing.
type SearchResponse struct {
	ExtractionID string                `json:"extraction_id"`
	Search       *models.SearchResults `json:"search,omitempty"`
	Error        string                `json:"error,omitempty"`
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetProduct handles product extraction requests for a product URL.
func (h *Handlers) GetProduct(w http.ResponseWriter, r *http.Request) {
	url := r.URL.Query().Get("url")
	if url == "" {
		h.respondError(w, http.StatusBadRequest, "url query parameter is required")
		return
	}

	id := uuid.NewString()
	details, err := h.scraper.Product(r.Context(), url)
	if err != nil {
		h.logger.Error("product extraction failed", "extraction_id", id, "url", url, "error", err)
		h.respondJSON(w, statusForError(err), ProductResponse{
			ExtractionID: id,
			Error:        err.Error(),
		})
		return
	}

	h.respondJSON(w, http.StatusOK, ProductResponse{
		ExtractionID: id,
		Product:      details,
	})
}

// GetSearch handles search extraction requests for a query string.
func (h *Handlers) GetSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		h.respondError(w, http.StatusBadRequest, "q query parameter is required")
		return
	}

	id := uuid.NewString()
	results, err := h.scraper.Search(r.Context(), query)
	if err != nil {
		h.logger.Error("search extraction failed", "extraction_id", id, "query", query, "error", err)
		h.respondJSON(w, statusForError(err), SearchResponse{
			ExtractionID: id,
			Error:        err.Error(),
		})
		return
	}

	h.respondJSON(w, http.StatusOK, SearchResponse{
		ExtractionID: id,
		Search:       results,
	})
}

func statusForError(err error) int {
	var missing *parser.MissingFieldError
	switch {
	case errors.As(err, &missing),
		errors.Is(err, parser.ErrNoResults),
		errors.Is(err, parser.ErrMalformedPrice):
		return http.StatusUnprocessableEntity
	case errors.Is(err, fetch.ErrProductNotFound):
		return http.StatusNotFound
	case errors.Is(err, fetch.ErrUnsupportedDomain),
		errors.Is(err, scraper.ErrEmptyQuery):
		return http.StatusBadRequest
	case errors.Is(err, fetch.ErrHostBlocked):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handlers) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *Handlers) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}
