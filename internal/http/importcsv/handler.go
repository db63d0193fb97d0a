package importcsv

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/bolao/internal/encoding"
	"github.com/MrJamesThe3rd/bolao/internal/http/respond"
	"github.com/MrJamesThe3rd/bolao/internal/pool"
	"github.com/MrJamesThe3rd/bolao/internal/statement"
)

const formField = "csv"

//go:generate mockgen -source=handler.go -destination=importer_mock.go -package=importcsv
type Importer interface {
	Import(ctx context.Context, poolID uuid.UUID, csv string) (*statement.ImportResult, error)
}

type PoolFinder interface {
	Get(ctx context.Context, id uuid.UUID) (*pool.Pool, error)
}

type Handler struct {
	svc      Importer
	pools    PoolFinder
	maxBytes int64
}

func NewHandler(svc Importer, pools PoolFinder, maxBytes int64) *Handler {
	return &Handler{svc: svc, pools: pools, maxBytes: maxBytes}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/bolao/{id}/import-csv", h.importCSV)
}

func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	poolID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, http.StatusNotFound, "Bolão não encontrado")
		return
	}

	if _, err := h.pools.Get(r.Context(), poolID); err != nil {
		if errors.Is(err, pool.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "Bolão não encontrado")
			return
		}

		respond.ErrorDetails(w, http.StatusInternalServerError, "Erro ao buscar bolão", err)

		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)

	if err := r.ParseMultipartForm(h.maxBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respond.Error(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("Arquivo CSV excede o tamanho máximo de %d bytes", tooLarge.Limit))

			return
		}

		respond.ErrorDetails(w, http.StatusBadRequest, "Arquivo CSV é obrigatório", err)

		return
	}

	file, _, err := r.FormFile(formField)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Arquivo CSV é obrigatório")
		return
	}
	defer file.Close()

	content, err := encoding.ReadString(file)
	if err != nil {
		respond.ErrorDetails(w, http.StatusBadRequest, "Não foi possível ler o arquivo CSV", err)
		return
	}

	result, err := h.svc.Import(r.Context(), poolID, content)
	if err != nil {
		if errors.Is(err, pool.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "Bolão não encontrado")
			return
		}

		respond.ErrorDetails(w, http.StatusInternalServerError, "Erro ao salvar transações", err)

		return
	}

	respond.JSON(w, http.StatusOK, toImportResponse(result))
}
