package agent

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/bolao/internal/agent"
	"github.com/MrJamesThe3rd/bolao/internal/http/respond"
)

//go:generate mockgen -source=handler.go -destination=executor_mock.go -package=agent
type Executor interface {
	Execute(ctx context.Context, id uuid.UUID) (*agent.Execution, error)
}

type Handler struct {
	svc Executor
}

func NewHandler(svc Executor) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/agentes/{id}/execute", h.execute)
}

type executeResponse struct {
	Success     bool           `json:"success"`
	ExecutionID uuid.UUID      `json:"execucao_id"`
	Result      map[string]any `json:"resultado"`
	Tokens      int32          `json:"tokens_usados"`
}

type failedResponse struct {
	Error       string    `json:"error"`
	ExecutionID uuid.UUID `json:"execucao_id"`
}

func (h *Handler) execute(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "agente_id é obrigatório")
		return
	}

	exec, err := h.svc.Execute(r.Context(), id)

	switch {
	case err == nil:
		respond.JSON(w, http.StatusOK, executeResponse{
			Success:     true,
			ExecutionID: exec.ID,
			Result:      exec.Result,
			Tokens:      exec.Tokens,
		})
	case errors.Is(err, agent.ErrNotFound):
		respond.Error(w, http.StatusNotFound, "Agente não encontrado")
	case errors.Is(err, agent.ErrInactive):
		respond.Error(w, http.StatusBadRequest, "Agente está inativo")
	case errors.Is(err, agent.ErrExecutionFailed) && exec != nil:
		msg := err.Error()
		if exec.Error != nil {
			msg = *exec.Error
		}

		respond.JSON(w, http.StatusInternalServerError, failedResponse{Error: msg, ExecutionID: exec.ID})
	default:
		respond.ErrorDetails(w, http.StatusInternalServerError, "Erro interno do servidor", err)
	}
}
