package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/you-humble/emergency-supply/internal/converter"
	"github.com/you-humble/emergency-supply/internal/model"
	"github.com/you-humble/emergency-supply/platform/logger"
)

const maxBodyBytes = 1 << 20

type SupplyService interface {
	List(ctx context.Context) ([]*model.Supply, error)
	Get(ctx context.Context, name string) (*model.Supply, error)
	Create(ctx context.Context, payload model.SupplyPayload) (*model.Supply, error)
	Update(ctx context.Context, name string, payload model.SupplyPayload) (*model.Supply, error)
	Delete(ctx context.Context, name string) error
}

type handler struct {
	svc SupplyService
}

func NewSupplyHandler(service SupplyService) *handler {
	return &handler{svc: service}
}

// Routes mounts the supply endpoints on r.
func (h *handler) Routes(r chi.Router) {
	r.Route("/supplies", func(r chi.Router) {
		r.Get("/", h.ListSupplies)
		r.Post("/", h.CreateSupply)
		r.Get("/{name}", h.GetSupply)
		r.Put("/{name}", h.UpdateSupply)
		r.Delete("/{name}", h.DeleteSupply)
	})
}

func (h *handler) ListSupplies(w http.ResponseWriter, r *http.Request) {
	supplies, err := h.svc.List(r.Context())
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, converter.SuppliesToAPI(supplies))
}

func (h *handler) GetSupply(w http.ResponseWriter, r *http.Request) {
	supply, err := h.svc.Get(r.Context(), nameParam(r))
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, converter.SupplyToAPI(supply))
}

func (h *handler) CreateSupply(w http.ResponseWriter, r *http.Request) {
	payload, err := decodePayload(w, r)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	supply, err := h.svc.Create(r.Context(), payload)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusCreated, converter.SupplyToAPI(supply))
}

func (h *handler) UpdateSupply(w http.ResponseWriter, r *http.Request) {
	payload, err := decodePayload(w, r)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	supply, err := h.svc.Update(r.Context(), nameParam(r), payload)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, converter.SupplyToAPI(supply))
}

func (h *handler) DeleteSupply(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), nameParam(r)); err != nil {
		writeError(r.Context(), w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// nameParam returns the decoded {name} segment. chi matches on RawPath when
// it is set, so the segment is still escaped in that case.
func nameParam(r *http.Request) string {
	name := chi.URLParam(r, "name")
	if r.URL.RawPath == "" {
		return name
	}
	if unescaped, err := url.PathUnescape(name); err == nil {
		return unescaped
	}
	return name
}

// decodePayload reads a JSON object body. An empty body decodes to an empty payload.
func decodePayload(w http.ResponseWriter, r *http.Request) (model.SupplyPayload, error) {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.UseNumber()

	var payload model.SupplyPayload
	if err := dec.Decode(&payload); err != nil {
		if errors.Is(err, io.EOF) {
			return model.SupplyPayload{}, nil
		}
		return nil, model.NewValidationError("request body must be a JSON object")
	}
	if payload == nil {
		payload = model.SupplyPayload{}
	}

	return payload, nil
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error(ctx, "failed to encode response", logger.ErrorF(err))
	}
}
