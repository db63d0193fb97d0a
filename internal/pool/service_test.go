package pool_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/bolao/internal/pool"
)

func TestService_Get(t *testing.T) {
	id := uuid.New()

	type testCase struct {
		name      string
		setupMock func(m *pool.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			setupMock: func(m *pool.MockRepository) {
				m.EXPECT().GetPool(gomock.Any(), id).Return(&pool.Pool{ID: id, QuotaValue: 1000}, nil)
			},
		},
		{
			name: "NotFound",
			setupMock: func(m *pool.MockRepository) {
				m.EXPECT().GetPool(gomock.Any(), id).Return(nil, pool.ErrNotFound)
			},
			wantErr: pool.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := pool.NewMockRepository(ctrl)
			tt.setupMock(repo)

			got, err := pool.NewService(repo).Get(context.Background(), id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(1000), got.QuotaValue)
		})
	}
}

func TestService_ListOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := pool.NewMockRepository(ctrl)
	repo.EXPECT().ListByStatus(gomock.Any(), pool.StatusOpen, 5).Return([]*pool.Pool{{Name: "Mega da Virada"}}, nil)

	got, err := pool.NewService(repo).ListOpen(context.Background(), 5)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestService_Participants(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	repo := pool.NewMockRepository(ctrl)
	repo.EXPECT().ListParticipants(gomock.Any(), id).Return(nil, errors.New("db down"))

	_, err := pool.NewService(repo).Participants(context.Background(), id)
	assert.Error(t, err)
}
