package comment

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/bolao/internal/auth"
	"github.com/MrJamesThe3rd/bolao/internal/comment"
)

func TestHandler_Create(t *testing.T) {
	user := &auth.User{ID: "u1", Email: "ana@empresa.com", Name: "Ana"}
	author := comment.Author{ID: "u1", Email: "ana@empresa.com", Name: "Ana"}

	type testCase struct {
		name       string
		user       *auth.User
		body       string
		setupMock  func(m *MockPoster)
		wantStatus int
		wantBody   map[string]any
	}

	tests := []testCase{
		{
			name:       "Created",
			user:       user,
			body:       `{"mensagem":"Bora bolão!","dominio":"empresa.com"}`,
			wantStatus: http.StatusCreated,
			setupMock: func(m *MockPoster) {
				m.EXPECT().Post(gomock.Any(), author, "empresa.com", "Bora bolão!").Return(&comment.Comment{
					ID:       uuid.New(),
					Domain:   "empresa.com",
					UserName: "Ana",
					Message:  "Bora bolão!",
				}, nil)
			},
			wantBody: map[string]any{"success": true},
		},
		{
			name:       "Unauthenticated",
			body:       `{"mensagem":"oi","dominio":"empresa.com"}`,
			wantStatus: http.StatusUnauthorized,
			wantBody:   map[string]any{"error": "Não autorizado"},
		},
		{
			name:       "ChatDisabled",
			user:       user,
			body:       `{"mensagem":"oi","dominio":"empresa.com"}`,
			wantStatus: http.StatusForbidden,
			setupMock: func(m *MockPoster) {
				m.EXPECT().Post(gomock.Any(), author, "empresa.com", "oi").Return(nil, comment.ErrChatDisabled)
			},
			wantBody: map[string]any{"bloqueado": true},
		},
		{
			name:       "Rejected",
			user:       user,
			body:       `{"mensagem":"idiota","dominio":"empresa.com"}`,
			wantStatus: http.StatusBadRequest,
			setupMock: func(m *MockPoster) {
				m.EXPECT().Post(gomock.Any(), author, "empresa.com", "idiota").
					Return(nil, &comment.RejectedError{Reason: "Linguagem inapropriada detectada"})
			},
			wantBody: map[string]any{"motivo": "Linguagem inapropriada detectada", "moderado": true},
		},
		{
			name:       "TooLong",
			user:       user,
			body:       `{"mensagem":"` + strings.Repeat("a", 141) + `","dominio":"empresa.com"}`,
			wantStatus: http.StatusBadRequest,
			setupMock: func(m *MockPoster) {
				m.EXPECT().Post(gomock.Any(), author, "empresa.com", gomock.Any()).Return(nil, comment.ErrTooLong)
			},
			wantBody: map[string]any{"error": "Mensagem deve ter no máximo 140 caracteres"},
		},
		{
			name:       "StoreFailure",
			user:       user,
			body:       `{"mensagem":"oi","dominio":"empresa.com"}`,
			wantStatus: http.StatusInternalServerError,
			setupMock: func(m *MockPoster) {
				m.EXPECT().Post(gomock.Any(), author, "empresa.com", "oi").Return(nil, errors.New("boom"))
			},
			wantBody: map[string]any{"error": "Erro ao salvar comentário", "details": "boom"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := NewMockPoster(ctrl)

			if tt.setupMock != nil {
				tt.setupMock(m)
			}

			router := chi.NewRouter()
			NewHandler(m).Routes(router)

			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			if tt.user != nil {
				req = req.WithContext(auth.WithUser(req.Context(), tt.user))
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var got map[string]any
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))

			for k, v := range tt.wantBody {
				assert.Equal(t, v, got[k], k)
			}
		})
	}
}
