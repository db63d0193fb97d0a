package registration

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/bolao/internal/http/respond"
	"github.com/MrJamesThe3rd/bolao/internal/registration"
)

//go:generate mockgen -source=handler.go -destination=checker_mock.go -package=registration
type Checker interface {
	Check(ctx context.Context, email string) registration.Result
}

type Handler struct {
	svc Checker
}

func NewHandler(svc Checker) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.checkEmail)
}

type checkResponse struct {
	Authorized bool   `json:"authorized"`
	Message    string `json:"message"`
}

func (h *Handler) checkEmail(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.URL.Query().Get("email"))
	if email == "" {
		respond.JSON(w, http.StatusBadRequest, checkResponse{Message: "Email é obrigatório"})
		return
	}

	res := h.svc.Check(r.Context(), email)

	respond.JSON(w, http.StatusOK, checkResponse{Authorized: res.Authorized, Message: res.Message})
}
