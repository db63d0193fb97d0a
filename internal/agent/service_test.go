package agent_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/bolao/internal/agent"
	"github.com/MrJamesThe3rd/bolao/internal/ai"
	"github.com/MrJamesThe3rd/bolao/internal/comment"
	"github.com/MrJamesThe3rd/bolao/internal/pool"
	"github.com/MrJamesThe3rd/bolao/internal/statement"
)

type mocks struct {
	repo     *agent.MockRepository
	pools    *agent.MockPoolLister
	comments *agent.MockCommentReviewer
	stats    *agent.MockStatsReader
	gen      *ai.MockGenerator
}

func TestService_Execute(t *testing.T) {
	id := uuid.New()

	withAgent := func(m mocks, typ agent.Type) {
		m.repo.EXPECT().GetAgent(gomock.Any(), id).Return(&agent.Agent{ID: id, Type: typ, Prompt: "p", Active: true}, nil)
		m.repo.EXPECT().CreateExecution(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e *agent.Execution) error {
				assert.Equal(t, agent.ExecutionRunning, e.Status)
				e.ID = uuid.New()
				return nil
			})
		m.repo.EXPECT().FinishExecution(gomock.Any(), gomock.Any()).Return(nil)
	}

	type testCase struct {
		name       string
		useAI      bool
		setupMock  func(m mocks)
		wantErr    error
		wantStatus agent.ExecutionStatus
		wantFields map[string]any
		wantTokens int32
	}

	tests := []testCase{
		{
			name: "HomepageFallback",
			setupMock: func(m mocks) {
				withAgent(m, agent.TypeHomepage)
				m.pools.EXPECT().ListOpen(gomock.Any(), 5).Return([]*pool.Pool{{Name: "Mega"}, {Name: "Quina"}}, nil)
				m.repo.EXPECT().UpdateLastRun(gomock.Any(), id, gomock.Any()).Return(nil)
			},
			wantStatus: agent.ExecutionSuccess,
			wantFields: map[string]any{"destaque": "2 bolões ativos", "modo": "fallback"},
		},
		{
			name:  "HomepageModel",
			useAI: true,
			setupMock: func(m mocks) {
				withAgent(m, agent.TypeHomepage)
				m.pools.EXPECT().ListOpen(gomock.Any(), 5).Return(nil, nil)
				m.gen.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&ai.Response{Text: `Aqui: {"titulo": "Bora!"}`, TotalTokens: 42}, nil)
				m.repo.EXPECT().UpdateLastRun(gomock.Any(), id, gomock.Any()).Return(nil)
			},
			wantStatus: agent.ExecutionSuccess,
			wantFields: map[string]any{"titulo": "Bora!", "modo": "gemini"},
			wantTokens: 42,
		},
		{
			name: "Moderation",
			setupMock: func(m mocks) {
				withAgent(m, agent.TypeModeration)
				m.comments.EXPECT().ReviewPending(gomock.Any(), "p", 10).
					Return(&comment.ReviewResult{Processed: 2, Approved: 1, Rejected: 1, Tokens: 7}, nil)
				m.repo.EXPECT().UpdateLastRun(gomock.Any(), id, gomock.Any()).Return(nil)
			},
			wantStatus: agent.ExecutionSuccess,
			wantFields: map[string]any{"processados": 2, "rejeitados": 1},
			wantTokens: 7,
		},
		{
			name: "CSVStatsFallback",
			setupMock: func(m mocks) {
				withAgent(m, agent.TypeCSVStats)
				m.stats.EXPECT().Stats(gomock.Any(), 100).
					Return(&statement.Stats{Total: 3, Amount: 9000, Approved: 1, Pending: 1, Invalid: 1}, nil)
				m.repo.EXPECT().UpdateLastRun(gomock.Any(), id, gomock.Any()).Return(nil)
			},
			wantStatus: agent.ExecutionSuccess,
			wantFields: map[string]any{"total_transacoes": 3, "valor_total": 90.0, "modo": "fallback"},
		},
		{
			name:  "CSVStatsModelError",
			useAI: true,
			setupMock: func(m mocks) {
				withAgent(m, agent.TypeCSVStats)
				m.stats.EXPECT().Stats(gomock.Any(), 100).Return(&statement.Stats{Total: 1, Amount: 1000}, nil)
				m.gen.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))
			},
			wantErr:    agent.ErrExecutionFailed,
			wantStatus: agent.ExecutionError,
		},
		{
			name: "NotFound",
			setupMock: func(m mocks) {
				m.repo.EXPECT().GetAgent(gomock.Any(), id).Return(nil, agent.ErrNotFound)
			},
			wantErr: agent.ErrNotFound,
		},
		{
			name: "Inactive",
			setupMock: func(m mocks) {
				m.repo.EXPECT().GetAgent(gomock.Any(), id).Return(&agent.Agent{ID: id, Active: false}, nil)
			},
			wantErr: agent.ErrInactive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := mocks{
				repo:     agent.NewMockRepository(ctrl),
				pools:    agent.NewMockPoolLister(ctrl),
				comments: agent.NewMockCommentReviewer(ctrl),
				stats:    agent.NewMockStatsReader(ctrl),
				gen:      ai.NewMockGenerator(ctrl),
			}
			tt.setupMock(m)

			var gen ai.Generator
			if tt.useAI {
				gen = m.gen
			}

			svc := agent.NewService(m.repo, m.pools, m.comments, m.stats, gen)
			got, err := svc.Execute(context.Background(), id)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				if tt.wantStatus != "" {
					require.NotNil(t, got)
					assert.Equal(t, tt.wantStatus, got.Status)
					assert.NotNil(t, got.Error)
				}

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.NotNil(t, got.FinishedAt)
			assert.Equal(t, tt.wantTokens, got.Tokens)

			for k, v := range tt.wantFields {
				assert.EqualValues(t, v, got.Result[k], k)
			}
		})
	}
}
