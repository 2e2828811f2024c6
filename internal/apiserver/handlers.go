package apiserver

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"

	"github.com/HazyCorp/statscalc/internal/hazyerr"
	"github.com/HazyCorp/statscalc/internal/statsapi"
	"github.com/HazyCorp/statscalc/pkg/common/hzlog"
	"github.com/HazyCorp/statscalc/pkg/statcalc"
)

type handlers struct {
	api *statsapi.API
	l   *slog.Logger
}

type createResponse struct {
	Handle int `json:"handle"`
}

type listResponse struct {
	Handles []int `json:"handles"`
}

type valueRequest struct {
	Value float64 `json:"value"`
}

type pathRequest struct {
	Path string `json:"path"`
}

type valueResponse struct {
	Value statcalc.Float `json:"value"`
}

func (h *handlers) create(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, createResponse{Handle: h.api.Create()})
}

func (h *handlers) list(w http.ResponseWriter, r *http.Request) {
	handles := h.api.Handles()
	if handles == nil {
		handles = []int{}
	}

	h.writeJSON(w, r, http.StatusOK, listResponse{Handles: handles})
}

func (h *handlers) destroy(w http.ResponseWriter, r *http.Request) {
	handle, ok := h.handleParam(w, r)
	if !ok {
		return
	}

	// destroying an unknown handle is a no-op by contract
	h.api.Destroy(handle)
	w.WriteHeader(http.StatusNoContent)
}

func (h *handlers) appendValue(w http.ResponseWriter, r *http.Request) {
	handle, ok := h.handleParam(w, r)
	if !ok {
		return
	}

	var req valueRequest
	if !h.readJSON(w, r, &req) {
		return
	}

	h.api.AppendValue(handle, req.Value)
	w.WriteHeader(http.StatusNoContent)
}

func (h *handlers) load(w http.ResponseWriter, r *http.Request) {
	handle, ok := h.handleParam(w, r)
	if !ok {
		return
	}

	var req pathRequest
	if !h.readJSON(w, r, &req) {
		return
	}

	h.api.ReadFile(handle, req.Path)
	w.WriteHeader(http.StatusNoContent)
}

func (h *handlers) dump(w http.ResponseWriter, r *http.Request) {
	handle, ok := h.handleParam(w, r)
	if !ok {
		return
	}

	var req pathRequest
	if !h.readJSON(w, r, &req) {
		return
	}

	h.api.WriteStats(handle, req.Path)
	w.WriteHeader(http.StatusNoContent)
}

func (h *handlers) sum(w http.ResponseWriter, r *http.Request) {
	h.scalar(w, r, h.api.Sum)
}

func (h *handlers) mean(w http.ResponseWriter, r *http.Request) {
	h.scalar(w, r, h.api.Mean)
}

func (h *handlers) stdDev(w http.ResponseWriter, r *http.Request) {
	h.scalar(w, r, h.api.StdDev)
}

// scalar getters keep the compat contract: an unknown handle yields
// plain 0.0, not an error status.
func (h *handlers) scalar(w http.ResponseWriter, r *http.Request, get func(handle int) float64) {
	handle, ok := h.handleParam(w, r)
	if !ok {
		return
	}

	h.writeJSON(w, r, http.StatusOK, valueResponse{Value: statcalc.Float(get(handle))})
}

func (h *handlers) stats(w http.ResponseWriter, r *http.Request) {
	handle, ok := h.handleParam(w, r)
	if !ok {
		return
	}

	summary, err := h.api.Report(handle)
	if err != nil {
		if errors.Is(err, hazyerr.ErrNotFound) {
			http.Error(w, "calculator not found", http.StatusNotFound)
			return
		}

		h.l.WarnContext(r.Context(), "cannot build report", hzlog.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, r, http.StatusOK, summary)
}

func (h *handlers) handleParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "handle")

	handle, err := strconv.Atoi(raw)
	if err != nil {
		http.Error(w, "handle must be an integer", http.StatusBadRequest)
		return 0, false
	}

	return handle, true
}

func (h *handlers) readJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return false
	}

	return true
}

func (h *handlers) writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.l.WarnContext(r.Context(), "cannot encode response", hzlog.Error(err))
	}
}
