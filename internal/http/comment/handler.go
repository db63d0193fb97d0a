package comment

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/bolao/internal/auth"
	"github.com/MrJamesThe3rd/bolao/internal/comment"
	"github.com/MrJamesThe3rd/bolao/internal/http/respond"
)

//go:generate mockgen -source=handler.go -destination=poster_mock.go -package=comment
type Poster interface {
	Post(ctx context.Context, author comment.Author, domain, message string) (*comment.Comment, error)
}

type Handler struct {
	svc Poster
}

func NewHandler(svc Poster) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
}

type createRequest struct {
	Message string `json:"mensagem"`
	Domain  string `json:"dominio"`
}

type commentResponse struct {
	ID            uuid.UUID `json:"id"`
	Domain        string    `json:"dominio"`
	UserName      string    `json:"user_name"`
	Message       string    `json:"mensagem"`
	ModeratedByAI bool      `json:"moderado_ia"`
	CreatedAt     time.Time `json:"created_at"`
}

type createResponse struct {
	Success bool            `json:"success"`
	Comment commentResponse `json:"comentario"`
}

type blockedResponse struct {
	Error   string `json:"error"`
	Blocked bool   `json:"bloqueado"`
}

type rejectedResponse struct {
	Error     string `json:"error"`
	Reason    string `json:"motivo"`
	Moderated bool   `json:"moderado"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	u := auth.FromContext(r.Context())
	if u == nil {
		respond.Error(w, http.StatusUnauthorized, "Não autorizado")
		return
	}

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.ErrorDetails(w, http.StatusBadRequest, "Mensagem e domínio são obrigatórios", err)
		return
	}

	c, err := h.svc.Post(r.Context(), comment.Author{ID: u.ID, Email: u.Email, Name: u.Name}, req.Domain, req.Message)
	if err != nil {
		var rejected *comment.RejectedError

		switch {
		case errors.As(err, &rejected):
			respond.JSON(w, http.StatusBadRequest, rejectedResponse{
				Error:     "Mensagem não aprovada pela moderação",
				Reason:    rejected.Reason,
				Moderated: true,
			})
		case errors.Is(err, comment.ErrChatDisabled):
			respond.JSON(w, http.StatusForbidden, blockedResponse{
				Error:   "O chat de sugestões está temporariamente desabilitado para este domínio",
				Blocked: true,
			})
		case errors.Is(err, comment.ErrMissingFields):
			respond.Error(w, http.StatusBadRequest, "Mensagem e domínio são obrigatórios")
		case errors.Is(err, comment.ErrTooLong):
			respond.Error(w, http.StatusBadRequest, "Mensagem deve ter no máximo 140 caracteres")
		default:
			respond.ErrorDetails(w, http.StatusInternalServerError, "Erro ao salvar comentário", err)
		}

		return
	}

	respond.JSON(w, http.StatusCreated, createResponse{
		Success: true,
		Comment: commentResponse{
			ID:            c.ID,
			Domain:        c.Domain,
			UserName:      c.UserName,
			Message:       c.Message,
			ModeratedByAI: c.ModeratedByAI,
			CreatedAt:     c.CreatedAt,
		},
	})
}
