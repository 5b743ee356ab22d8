package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dreamlog/backend/internal/domain"
	"github.com/dreamlog/backend/internal/service/journal"
)

// journalService defines the minimal interface needed by DreamHandler.
type journalService interface {
	Submit(ctx context.Context, in journal.SubmitInput) (*journal.SubmitResult, error)
	List(ctx context.Context, in journal.ListInput) ([]*domain.Dream, error)
	Get(ctx context.Context, dreamID uuid.UUID) (*domain.Dream, error)
	Update(ctx context.Context, dreamID uuid.UUID, in journal.UpdateInput) (*domain.Dream, error)
	Delete(ctx context.Context, dreamID uuid.UUID) error
	Stats(ctx context.Context) (*journal.Stats, error)
}

// DreamHandler serves the dream journal endpoints.
type DreamHandler struct {
	svc journalService
	log *slog.Logger
}

// NewDreamHandler creates a DreamHandler.
func NewDreamHandler(svc journalService, logger *slog.Logger) *DreamHandler {
	return &DreamHandler{svc: svc, log: logger.With("handler", "dreams")}
}

type submitRequest struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Category  string `json:"category"`
	Language  string `json:"language"`
	DreamDate string `json:"dreamDate"`
}

type updateRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Category *string `json:"category"`
}

type dreamResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Analysis  string    `json:"analysis"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type submitResponse struct {
	Dream   dreamResponse `json:"dream"`
	Warning string        `json:"warning,omitempty"`
}

type listResponse struct {
	Dreams []dreamResponse `json:"dreams"`
	Total  int             `json:"total"`
}

type statsResponse struct {
	Total       int            `json:"total"`
	Counts      map[string]int `json:"counts"`
	TopCategory string         `json:"topCategory,omitempty"`
}

// Submit handles POST /api/dreams.
func (h *DreamHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	in := journal.SubmitInput{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		Language: req.Language,
	}
	if req.DreamDate != "" {
		date, err := parseDreamDate(req.DreamDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid dreamDate")
			return
		}
		in.DreamDate = &date
	}

	result, err := h.svc.Submit(r.Context(), in)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := submitResponse{Dream: toDreamResponse(result.Dream)}
	if result.Warning != nil {
		resp.Warning = result.Warning.Error()
	}
	writeJSON(w, http.StatusCreated, resp)
}

// List handles GET /api/dreams.
func (h *DreamHandler) List(w http.ResponseWriter, r *http.Request) {
	fresh, _ := strconv.ParseBool(r.URL.Query().Get("fresh"))

	dreams, err := h.svc.List(r.Context(), journal.ListInput{
		Category: r.URL.Query().Get("category"),
		Search:   r.URL.Query().Get("search"),
		Fresh:    fresh,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := listResponse{Dreams: make([]dreamResponse, len(dreams)), Total: len(dreams)}
	for i, d := range dreams {
		resp.Dreams[i] = toDreamResponse(d)
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/dreams/{dreamID}.
func (h *DreamHandler) Get(w http.ResponseWriter, r *http.Request) {
	dreamID, ok := dreamIDParam(w, r)
	if !ok {
		return
	}

	d, err := h.svc.Get(r.Context(), dreamID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toDreamResponse(d))
}

// Update handles PATCH /api/dreams/{dreamID}.
func (h *DreamHandler) Update(w http.ResponseWriter, r *http.Request) {
	dreamID, ok := dreamIDParam(w, r)
	if !ok {
		return
	}

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	d, err := h.svc.Update(r.Context(), dreamID, journal.UpdateInput{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toDreamResponse(d))
}

// Delete handles DELETE /api/dreams/{dreamID}.
func (h *DreamHandler) Delete(w http.ResponseWriter, r *http.Request) {
	dreamID, ok := dreamIDParam(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), dreamID); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Stats handles GET /api/dreams/stats.
func (h *DreamHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := statsResponse{
		Total:       stats.Total,
		Counts:      make(map[string]int, len(stats.Counts)),
		TopCategory: string(stats.TopCategory),
	}
	for c, n := range stats.Counts {
		resp.Counts[string(c)] = n
	}
	writeJSON(w, http.StatusOK, resp)
}

func dreamIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "dreamID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid dream id")
		return uuid.Nil, false
	}
	return id, true
}

// parseDreamDate accepts a full timestamp or a bare date.
func parseDreamDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

func toDreamResponse(d *domain.Dream) dreamResponse {
	return dreamResponse{
		ID:        d.ID.String(),
		Title:     d.Title,
		Content:   d.Content,
		Analysis:  d.Analysis,
		Category:  string(d.Category),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
