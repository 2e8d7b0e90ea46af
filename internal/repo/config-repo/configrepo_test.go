package configrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/daikoshop/adminapi/internal/domain"
	"github.com/daikoshop/adminapi/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func TestRepository_Find(t *testing.T) {
	repo, mock, _ := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.ShopConfig
	}{
		{
			name: "Config row exists",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "is_shop_open"}).
					AddRow(domain.ConfigID, false)
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, is_shop_open FROM config WHERE id = $1")).
					WithArgs(domain.ConfigID).
					WillReturnRows(rows)
			},
			expectErr: false,
			result:    &domain.ShopConfig{ID: domain.ConfigID, IsShopOpen: false},
		},
		{
			name: "Config row was never written",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, is_shop_open FROM config WHERE id = $1")).
					WithArgs(domain.ConfigID).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, is_shop_open FROM config WHERE id = $1")).
					WithArgs(domain.ConfigID).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Find(context.Background())
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_Upsert(t *testing.T) {
	repo, mock, txManager := NewMock(t)

	tests := []struct {
		name      string
		isOpen    bool
		mockSetup func(isOpen bool)
		expectErr bool
	}{
		{
			name:   "Close the shop",
			isOpen: false,
			mockSetup: func(isOpen bool) {
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
						return fn(ctx)
					})
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO config (id, is_shop_open) VALUES ($1, $2) ON CONFLICT (id) DO UPDATE SET is_shop_open = EXCLUDED.is_shop_open")).
					WithArgs(domain.ConfigID, isOpen).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			expectErr: false,
		},
		{
			name:   "Reopen the shop",
			isOpen: true,
			mockSetup: func(isOpen bool) {
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
						return fn(ctx)
					})
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO config (id, is_shop_open) VALUES ($1, $2) ON CONFLICT (id) DO UPDATE SET is_shop_open = EXCLUDED.is_shop_open")).
					WithArgs(domain.ConfigID, isOpen).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expectErr: false,
		},
		{
			name:   "Database error",
			isOpen: true,
			mockSetup: func(isOpen bool) {
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
						return fn(ctx)
					})
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO config (id, is_shop_open) VALUES ($1, $2) ON CONFLICT (id) DO UPDATE SET is_shop_open = EXCLUDED.is_shop_open")).
					WithArgs(domain.ConfigID, isOpen).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup(tt.isOpen)
			err := repo.Upsert(context.Background(), tt.isOpen)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
