package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/bolao/internal/agent"
	"github.com/MrJamesThe3rd/bolao/internal/auth"
	bolaohttp "github.com/MrJamesThe3rd/bolao/internal/http"
	agenthttp "github.com/MrJamesThe3rd/bolao/internal/http/agent"
	commenthttp "github.com/MrJamesThe3rd/bolao/internal/http/comment"
	"github.com/MrJamesThe3rd/bolao/internal/http/importcsv"
	registrationhttp "github.com/MrJamesThe3rd/bolao/internal/http/registration"
	"github.com/MrJamesThe3rd/bolao/internal/http/transaction"
	"github.com/MrJamesThe3rd/bolao/internal/registration"
)

func TestRouter(t *testing.T) {
	ctrl := gomock.NewController(t)

	checker := registrationhttp.NewMockChecker(ctrl)
	executor := agenthttp.NewMockExecutor(ctrl)

	authn := auth.New("secret", []string{"admin@empresa.com"})

	router := bolaohttp.New(bolaohttp.Handlers{
		Registration: registrationhttp.NewHandler(checker),
		Comments:     commenthttp.NewHandler(commenthttp.NewMockPoster(ctrl)),
		Import:       importcsv.NewHandler(importcsv.NewMockImporter(ctrl), importcsv.NewMockPoolFinder(ctrl), 1<<20),
		Transactions: transaction.NewHandler(transaction.NewMockService(ctrl)),
		Agents:       agenthttp.NewHandler(executor),
	}, authn, []string{"*"})

	adminToken, err := authn.Sign(auth.User{ID: "a1", Email: "admin@empresa.com"}, time.Hour)
	require.NoError(t, err)

	userToken, err := authn.Sign(auth.User{ID: "u1", Email: "ana@empresa.com"}, time.Hour)
	require.NoError(t, err)

	agentID := uuid.New()

	checker.EXPECT().Check(gomock.Any(), "ana@empresa.com").Return(registration.Result{Authorized: true})
	executor.EXPECT().Execute(gomock.Any(), agentID).Return(&agent.Execution{ID: uuid.New()}, nil)

	type testCase struct {
		name       string
		method     string
		path       string
		token      string
		wantStatus int
	}

	tests := []testCase{
		{name: "Health", method: http.MethodGet, path: "/health", wantStatus: http.StatusOK},
		{name: "Metrics", method: http.MethodGet, path: "/metrics", wantStatus: http.StatusOK},
		{name: "CheckEmailIsPublic", method: http.MethodGet, path: "/api/v1/check-email?email=ana@empresa.com", wantStatus: http.StatusOK},
		{name: "CommentsNeedToken", method: http.MethodPost, path: "/api/v1/comments", wantStatus: http.StatusUnauthorized},
		{name: "AdminWithoutToken", method: http.MethodPost, path: "/api/v1/admin/bolao/" + uuid.NewString() + "/import-csv", wantStatus: http.StatusUnauthorized},
		{name: "AdminAsUser", method: http.MethodPost, path: "/api/v1/admin/bolao/" + uuid.NewString() + "/import-csv", token: userToken, wantStatus: http.StatusUnauthorized},
		{name: "AdminAgent", method: http.MethodPost, path: "/api/v1/admin/agentes/" + agentID.String() + "/execute", token: adminToken, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
