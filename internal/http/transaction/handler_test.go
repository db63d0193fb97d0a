package transaction

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/bolao/internal/reconcile"
	"github.com/MrJamesThe3rd/bolao/internal/statement"
)

func newRouter(svc Service) http.Handler {
	r := chi.NewRouter()
	NewHandler(svc).Routes(r)

	return r
}

func TestHandler_List(t *testing.T) {
	poolID := uuid.New()
	batchID := uuid.New()

	type testCase struct {
		name       string
		query      string
		setupMock  func(m *MockService)
		wantStatus int
		wantLen    int
	}

	tests := []testCase{
		{
			name:       "FilterByStatusAndBatch",
			query:      "?status=pendente&lote=" + batchID.String(),
			wantStatus: http.StatusOK,
			wantLen:    1,
			setupMock: func(m *MockService) {
				m.EXPECT().List(gomock.Any(), statement.ListFilter{
					PoolID:  &poolID,
					Status:  new(reconcile.StatusPending),
					BatchID: &batchID,
				}).Return([]*statement.Transaction{{
					ID:      uuid.New(),
					PoolID:  poolID,
					BatchID: batchID,
					Transaction: reconcile.Transaction{
						Date:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
						Amount: 3000,
						Status: reconcile.StatusPending,
					},
				}}, nil)
			},
		},
		{
			name:       "UnknownStatus",
			query:      "?status=aceito",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "InvalidBatch",
			query:      "?lote=abc",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := NewMockService(ctrl)

			if tt.setupMock != nil {
				tt.setupMock(m)
			}

			req := httptest.NewRequest(http.MethodGet, "/bolao/"+poolID.String()+"/transacoes"+tt.query, nil)
			rec := httptest.NewRecorder()
			newRouter(m).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus != http.StatusOK {
				return
			}

			var got []transactionResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
			require.Len(t, got, tt.wantLen)
			assert.Equal(t, "2024-01-15", got[0].Date)
			assert.InDelta(t, 30.0, got[0].Amount, 0.001)
		})
	}
}

func TestHandler_UpdateStatus(t *testing.T) {
	id := uuid.New()

	type testCase struct {
		name       string
		body       string
		setupMock  func(m *MockService)
		wantStatus int
	}

	tests := []testCase{
		{
			name:       "Approve",
			body:       `{"status":"aprovado"}`,
			wantStatus: http.StatusOK,
			setupMock: func(m *MockService) {
				m.EXPECT().Review(gomock.Any(), id, reconcile.StatusApproved).Return(&statement.Transaction{
					ID:          id,
					Transaction: reconcile.Transaction{Status: reconcile.StatusApproved},
				}, nil)
			},
		},
		{
			name:       "NotPending",
			body:       `{"status":"ignorado"}`,
			wantStatus: http.StatusConflict,
			setupMock: func(m *MockService) {
				m.EXPECT().Review(gomock.Any(), id, reconcile.StatusIgnored).
					Return(nil, fmt.Errorf("%w: %q to %q", statement.ErrInvalidTransition, "aprovado", "ignorado"))
			},
		},
		{
			name:       "NotFound",
			body:       `{"status":"aprovado"}`,
			wantStatus: http.StatusNotFound,
			setupMock: func(m *MockService) {
				m.EXPECT().Review(gomock.Any(), id, reconcile.StatusApproved).Return(nil, statement.ErrNotFound)
			},
		},
		{
			name:       "MalformedBody",
			body:       `{`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := NewMockService(ctrl)

			if tt.setupMock != nil {
				tt.setupMock(m)
			}

			req := httptest.NewRequest(http.MethodPatch, "/transacoes/"+id.String()+"/status", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			newRouter(m).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
