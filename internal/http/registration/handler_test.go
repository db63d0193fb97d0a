package registration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/bolao/internal/registration"
)

func TestHandler_CheckEmail(t *testing.T) {
	type testCase struct {
		name       string
		query      string
		setupMock  func(m *MockChecker)
		wantStatus int
		want       checkResponse
	}

	tests := []testCase{
		{
			name:       "Authorized",
			query:      "?email=ana@empresa.com",
			wantStatus: http.StatusOK,
			want:       checkResponse{Authorized: true, Message: "Email autorizado"},
			setupMock: func(m *MockChecker) {
				m.EXPECT().Check(gomock.Any(), "ana@empresa.com").
					Return(registration.Result{Authorized: true, Message: "Email autorizado"})
			},
		},
		{
			name:       "MissingEmail",
			query:      "",
			wantStatus: http.StatusBadRequest,
			want:       checkResponse{Message: "Email é obrigatório"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := NewMockChecker(ctrl)

			if tt.setupMock != nil {
				tt.setupMock(m)
			}

			router := chi.NewRouter()
			NewHandler(m).Routes(router)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/"+tt.query, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)

			var got checkResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
			assert.Equal(t, tt.want, got)
		})
	}
}
