package note

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	appnote "github.com/pulselabs/pulse-api/internal/application/note"
	infrahttp "github.com/pulselabs/pulse-api/internal/infrastructure/http"
)

// Handler bridges HTTP traffic with the note application service. Each
// endpoint is a single statement against the database; failures surface as a
// generic error envelope and are never retried.
type Handler struct {
	service *appnote.Service
	log     *slog.Logger
}

func NewHandler(service *appnote.Service, log *slog.Logger) *Handler {
	return &Handler{service: service, log: log}
}

type createRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Create serves POST /api/v1/notes.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		infrahttp.WriteError(w, http.StatusBadRequest, "invalid request body", []string{err.Error()}, h.log)
		return
	}

	created, err := h.service.Create(r.Context(), req.Title, req.Body)
	if err != nil {
		if errors.Is(err, appnote.ErrTitleRequired) {
			infrahttp.WriteError(w, http.StatusBadRequest, "title is required", nil, h.log)
			return
		}
		h.log.Error("create note failed", "error", err)
		infrahttp.WriteError(w, http.StatusInternalServerError, "could not create note", nil, h.log)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// List serves GET /api/v1/notes. An optional ?limit= caps the page size.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			infrahttp.WriteError(w, http.StatusBadRequest, "limit must be an integer", nil, h.log)
			return
		}
		limit = parsed
	}

	notes, err := h.service.List(r.Context(), limit)
	if err != nil {
		h.log.Error("list notes failed", "error", err)
		infrahttp.WriteError(w, http.StatusInternalServerError, "could not list notes", nil, h.log)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"notes": notes, "count": len(notes)})
}

// Get serves GET /api/v1/notes/{noteID}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "noteID")

	n, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.log.Error("get note failed", "error", err, "note_id", id)
		infrahttp.WriteError(w, http.StatusInternalServerError, "could not fetch note", nil, h.log)
		return
	}
	if n == nil {
		infrahttp.WriteError(w, http.StatusNotFound, "note not found", nil, h.log)
		return
	}

	writeJSON(w, http.StatusOK, n)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
