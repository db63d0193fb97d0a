package statement_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/bolao/internal/pool"
	"github.com/MrJamesThe3rd/bolao/internal/reconcile"
	"github.com/MrJamesThe3rd/bolao/internal/statement"
)

const csv = "Data;Descrição;Valor\n" +
	"15/01/2024;PIX recebido de JOAO SILVA;R$ 30,00\n" +
	"16/01/2024;PIX recebido de EMPRESA XYZ LTDA;R$ 20,00\n"

func assignIDs(_ context.Context, txs []*statement.Transaction) error {
	for _, tx := range txs {
		tx.ID = uuid.New()
	}

	return nil
}

func TestService_Import(t *testing.T) {
	poolID := uuid.New()

	type testCase struct {
		name        string
		setupMock   func(repo *statement.MockRepository, pools *statement.MockPoolReader)
		wantErr     error
		wantAnyErr  bool
		wantSaved   int
		wantIgnored int
		wantStatus  []reconcile.Status
	}

	expectPool := func(pools *statement.MockPoolReader) {
		pools.EXPECT().Get(gomock.Any(), poolID).Return(&pool.Pool{ID: poolID, QuotaValue: 1000}, nil)
		pools.EXPECT().Participants(gomock.Any(), poolID).Return([]*pool.Participant{
			{UserID: uuid.New(), Email: "joao@x.com", Name: "João Silva"},
		}, nil)
	}

	tests := []testCase{
		{
			name: "FirstUpload",
			setupMock: func(repo *statement.MockRepository, pools *statement.MockPoolReader) {
				expectPool(pools)
				repo.EXPECT().ListHashes(gomock.Any(), poolID).Return(nil, nil)
				repo.EXPECT().InsertBatch(gomock.Any(), gomock.Len(2)).DoAndReturn(assignIDs)
			},
			wantSaved:   2,
			wantIgnored: 0,
			wantStatus:  []reconcile.Status{reconcile.StatusPending, reconcile.StatusUserNotFound},
		},
		{
			name: "SecondUpload",
			setupMock: func(repo *statement.MockRepository, pools *statement.MockPoolReader) {
				expectPool(pools)

				first := reconcile.New(nil).Reconcile(context.Background(), reconcile.Input{CSV: csv, QuotaValue: 1000})

				var hashes []string
				for _, tx := range first.Transactions {
					hashes = append(hashes, tx.Hash)
				}

				repo.EXPECT().ListHashes(gomock.Any(), poolID).Return(hashes, nil)
			},
			wantSaved:   0,
			wantIgnored: 2,
			wantStatus:  []reconcile.Status{reconcile.StatusIgnored, reconcile.StatusIgnored},
		},
		{
			name: "ConcurrentImportSkipsRow",
			setupMock: func(repo *statement.MockRepository, pools *statement.MockPoolReader) {
				expectPool(pools)
				repo.EXPECT().ListHashes(gomock.Any(), poolID).Return(nil, nil)
				repo.EXPECT().InsertBatch(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, txs []*statement.Transaction) error {
						txs[0].ID = uuid.New()
						return nil
					})
			},
			wantSaved:   1,
			wantIgnored: 1,
			wantStatus:  []reconcile.Status{reconcile.StatusPending, reconcile.StatusIgnored},
		},
		{
			name: "PoolNotFound",
			setupMock: func(_ *statement.MockRepository, pools *statement.MockPoolReader) {
				pools.EXPECT().Get(gomock.Any(), poolID).Return(nil, pool.ErrNotFound)
			},
			wantErr: pool.ErrNotFound,
		},
		{
			name: "InsertError",
			setupMock: func(repo *statement.MockRepository, pools *statement.MockPoolReader) {
				expectPool(pools)
				repo.EXPECT().ListHashes(gomock.Any(), poolID).Return(nil, nil)
				repo.EXPECT().InsertBatch(gomock.Any(), gomock.Any()).Return(errors.New("duplicate key"))
			},
			wantAnyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := statement.NewMockRepository(ctrl)
			pools := statement.NewMockPoolReader(ctrl)
			tt.setupMock(repo, pools)

			svc := statement.NewService(repo, pools, reconcile.New(nil))
			got, err := svc.Import(context.Background(), poolID, csv)

			if tt.wantErr != nil || tt.wantAnyErr {
				require.Error(t, err)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				}

				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, got.BatchID)
			assert.Equal(t, tt.wantSaved, got.Saved)
			assert.Equal(t, tt.wantIgnored, got.Ignored)
			assert.Equal(t, tt.wantIgnored, got.Analysis.Summary.AlreadyImported)

			require.Len(t, got.Analysis.Transactions, len(tt.wantStatus))
			for i, status := range tt.wantStatus {
				assert.Equal(t, status, got.Analysis.Transactions[i].Status)
			}
		})
	}
}

func TestService_Review(t *testing.T) {
	id := uuid.New()

	pending := func() *statement.Transaction {
		return &statement.Transaction{ID: id, Transaction: reconcile.Transaction{Status: reconcile.StatusPending}}
	}

	type args struct {
		status reconcile.Status
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(m *statement.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Approve",
			args: args{status: reconcile.StatusApproved},
			setupMock: func(m *statement.MockRepository) {
				m.EXPECT().GetTransaction(gomock.Any(), id).Return(pending(), nil)
				m.EXPECT().UpdateStatus(gomock.Any(), id, reconcile.StatusPending, reconcile.StatusApproved).Return(nil)
			},
		},
		{
			name: "Ignore",
			args: args{status: reconcile.StatusIgnored},
			setupMock: func(m *statement.MockRepository) {
				m.EXPECT().GetTransaction(gomock.Any(), id).Return(pending(), nil)
				m.EXPECT().UpdateStatus(gomock.Any(), id, reconcile.StatusPending, reconcile.StatusIgnored).Return(nil)
			},
		},
		{
			name:      "TargetNotAllowed",
			args:      args{status: reconcile.StatusInvalid},
			setupMock: func(_ *statement.MockRepository) {},
			wantErr:   statement.ErrInvalidTransition,
		},
		{
			name: "NotPending",
			args: args{status: reconcile.StatusApproved},
			setupMock: func(m *statement.MockRepository) {
				m.EXPECT().GetTransaction(gomock.Any(), id).Return(&statement.Transaction{
					ID:          id,
					Transaction: reconcile.Transaction{Status: reconcile.StatusInvalid},
				}, nil)
			},
			wantErr: statement.ErrInvalidTransition,
		},
		{
			name: "NotFound",
			args: args{status: reconcile.StatusApproved},
			setupMock: func(m *statement.MockRepository) {
				m.EXPECT().GetTransaction(gomock.Any(), id).Return(nil, statement.ErrNotFound)
			},
			wantErr: statement.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := statement.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := statement.NewService(repo, nil, nil)
			got, err := svc.Review(context.Background(), id, tt.args.status)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.args.status, got.Status)
		})
	}
}

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	poolID := uuid.New()
	filter := statement.ListFilter{PoolID: &poolID, Status: new(reconcile.StatusPending)}

	repo := statement.NewMockRepository(ctrl)
	repo.EXPECT().ListTransactions(gomock.Any(), filter).Return([]*statement.Transaction{{ID: uuid.New()}}, nil)

	got, err := statement.NewService(repo, nil, nil).List(context.Background(), filter)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
