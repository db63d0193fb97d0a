package agent

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/bolao/internal/agent"
)

func TestHandler_Execute(t *testing.T) {
	id := uuid.New()
	execID := uuid.New()

	type testCase struct {
		name       string
		setupMock  func(m *MockExecutor)
		wantStatus int
		wantBody   map[string]any
	}

	tests := []testCase{
		{
			name:       "Success",
			wantStatus: http.StatusOK,
			setupMock: func(m *MockExecutor) {
				m.EXPECT().Execute(gomock.Any(), id).Return(&agent.Execution{
					ID:     execID,
					Status: agent.ExecutionSuccess,
					Result: map[string]any{"modo": "fallback"},
					Tokens: 12,
				}, nil)
			},
			wantBody: map[string]any{
				"success":       true,
				"execucao_id":   execID.String(),
				"resultado":     map[string]any{"modo": "fallback"},
				"tokens_usados": float64(12),
			},
		},
		{
			name:       "NotFound",
			wantStatus: http.StatusNotFound,
			setupMock: func(m *MockExecutor) {
				m.EXPECT().Execute(gomock.Any(), id).Return(nil, agent.ErrNotFound)
			},
			wantBody: map[string]any{"error": "Agente não encontrado"},
		},
		{
			name:       "Inactive",
			wantStatus: http.StatusBadRequest,
			setupMock: func(m *MockExecutor) {
				m.EXPECT().Execute(gomock.Any(), id).Return(nil, agent.ErrInactive)
			},
			wantBody: map[string]any{"error": "Agente está inativo"},
		},
		{
			name:       "TaskFailed",
			wantStatus: http.StatusInternalServerError,
			setupMock: func(m *MockExecutor) {
				m.EXPECT().Execute(gomock.Any(), id).Return(&agent.Execution{
					ID:     execID,
					Status: agent.ExecutionError,
					Error:  new("list open pools: timeout"),
				}, fmt.Errorf("%w: list open pools: timeout", agent.ErrExecutionFailed))
			},
			wantBody: map[string]any{"error": "list open pools: timeout", "execucao_id": execID.String()},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := NewMockExecutor(ctrl)
			tt.setupMock(m)

			router := chi.NewRouter()
			NewHandler(m).Routes(router)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/agentes/"+id.String()+"/execute", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)

			var got map[string]any
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))

			for k, v := range tt.wantBody {
				assert.Equal(t, v, got[k], k)
			}
		})
	}
}
