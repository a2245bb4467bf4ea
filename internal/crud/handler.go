package crud

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/dwisusanto/perf-tracker/internal"
	"github.com/dwisusanto/perf-tracker/internal/transport"
	"github.com/go-chi/chi"
)

// ServiceAPI is the per-entity service surface the generic handler maps
// HTTP verbs onto. C and U are the entity's create and patch DTO types.
type ServiceAPI[M, C, U any] interface {
	Create(dto C) (*M, error)
	List(page, limit int) (*Page[M], error)
	GetByID(id int64) (*M, error)
	Update(id int64, dto U) (*M, error)
	Delete(id int64) error
}

// Handler serves one entity's REST endpoint. All five entities share this
// implementation; only the DTO types and the wired service differ.
type Handler[M, C, U any] struct {
	*transport.BaseHandler
	Service ServiceAPI[M, C, U]
	Entity  string
}

func NewHandler[M, C, U any](base *transport.BaseHandler, service ServiceAPI[M, C, U], entity string) *Handler[M, C, U] {
	return &Handler[M, C, U]{
		BaseHandler: base,
		Service:     service,
		Entity:      entity,
	}
}

func (h *Handler[M, C, U]) Create(w http.ResponseWriter, r *http.Request) {
	var dto C
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("invalid request body", "entity", h.Entity, "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	record, err := h.Service.Create(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("record created", "entity", h.Entity)
	h.WriteJSON(w, http.StatusCreated, record)
}

func (h *Handler[M, C, U]) List(w http.ResponseWriter, r *http.Request) {
	page, limit, err := parsePagination(r)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	result, err := h.Service.List(page, limit)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler[M, C, U]) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	record, err := h.Service.GetByID(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, record)
}

func (h *Handler[M, C, U]) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var dto U
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("invalid request body", "entity", h.Entity, "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	record, err := h.Service.Update(id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, record)
}

func (h *Handler[M, C, U]) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.Service.Delete(id); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusNoContent, nil)
}

func (h *Handler[M, C, U]) parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.Logger.Error("invalid id", "entity", h.Entity, "id", idStr)
		h.WriteError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

// parsePagination applies the page/limit defaults and rejects values below
// one; absent parameters are not an error.
func parsePagination(r *http.Request) (page, limit int, err error) {
	page = DefaultPage
	limit = DefaultLimit

	if raw := r.URL.Query().Get("page"); raw != "" {
		v, convErr := strconv.Atoi(raw)
		if convErr != nil || v < 1 {
			return 0, 0, internal.NewValidationFieldError("page", "page must be an integer >= 1", internal.ErrCodeInvalidPage)
		}
		page = v
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		v, convErr := strconv.Atoi(raw)
		if convErr != nil || v < 1 {
			return 0, 0, internal.NewValidationFieldError("limit", "limit must be an integer >= 1", internal.ErrCodeInvalidPage)
		}
		limit = v
	}

	return page, limit, nil
}
