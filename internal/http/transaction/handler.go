package transaction

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/bolao/internal/http/respond"
	"github.com/MrJamesThe3rd/bolao/internal/reconcile"
	"github.com/MrJamesThe3rd/bolao/internal/statement"
)

//go:generate mockgen -source=handler.go -destination=service_mock.go -package=transaction
type Service interface {
	List(ctx context.Context, filter statement.ListFilter) ([]*statement.Transaction, error)
	Review(ctx context.Context, id uuid.UUID, status reconcile.Status) (*statement.Transaction, error)
}

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/bolao/{id}/transacoes", h.list)
	r.Patch("/transacoes/{id}/status", h.updateStatus)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	poolID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	filter := statement.ListFilter{PoolID: &poolID}

	if s := r.URL.Query().Get("status"); s != "" {
		status := reconcile.Status(s)
		if !status.Valid() {
			respond.Error(w, http.StatusBadRequest, "invalid status")
			return
		}

		filter.Status = &status
	}

	if s := r.URL.Query().Get("lote"); s != "" {
		batchID, err := uuid.Parse(s)
		if err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid lote")
			return
		}

		filter.BatchID = &batchID
	}

	txs, err := h.svc.List(r.Context(), filter)
	if err != nil {
		respond.ErrorDetails(w, http.StatusInternalServerError, "internal error", err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(txs))
}

type updateStatusRequest struct {
	Status reconcile.Status `json:"status"`
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.ErrorDetails(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	tx, err := h.svc.Review(r.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, statement.ErrNotFound):
			respond.Error(w, http.StatusNotFound, "transaction not found")
		case errors.Is(err, statement.ErrInvalidTransition):
			respond.ErrorDetails(w, http.StatusConflict, "invalid status transition", err)
		default:
			respond.ErrorDetails(w, http.StatusInternalServerError, "internal error", err)
		}

		return
	}

	respond.JSON(w, http.StatusOK, toResponse(tx))
}
