package orderrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

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

func orderColumns() []string {
	return []string{"id", "customer_id", "status", "total_price", "transfer_code", "auth_password", "created_at", "completed_at"}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	createdAt := time.Now()

	tests := []struct {
		name      string
		id        int
		mockSetup func()
		expectErr bool
		result    *domain.Order
	}{
		{
			name: "Order exists",
			id:   1,
			mockSetup: func() {
				rows := pgxmock.NewRows(orderColumns()).
					AddRow(1, "U100", "pending", 1000.0, "ABCD-1234", "hunter2", createdAt, nil)
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, customer_id, status, total_price, transfer_code, auth_password, created_at, completed_at FROM orders WHERE id = $1")).
					WithArgs(1).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.Order{
				ID:           1,
				CustomerID:   "U100",
				Status:       "pending",
				TotalPrice:   1000.0,
				TransferCode: "ABCD-1234",
				AuthPassword: "hunter2",
				CreatedAt:    createdAt,
			},
		},
		{
			name: "Order does not exist",
			id:   99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, customer_id, status, total_price, transfer_code, auth_password, created_at, completed_at FROM orders WHERE id = $1")).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name: "Database error",
			id:   1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, customer_id, status, total_price, transfer_code, auth_password, created_at, completed_at FROM orders WHERE id = $1")).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), tt.id)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			if tt.result == nil {
				assert.Nil(t, result)
			} else {
				assert.NotNil(t, result)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_FindAll(t *testing.T) {
	repo, mock, _ := NewMock(t)
	newer := time.Now()
	older := newer.Add(-time.Hour)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		count     int
	}{
		{
			name: "Orders found newest first",
			mockSetup: func() {
				rows := pgxmock.NewRows(orderColumns()).
					AddRow(2, "U200", "pending", 500.0, "EFGH-5678", "passw0rd", newer, nil).
					AddRow(1, "U100", "completed", 1000.0, "ABCD-1234", "hunter2", older, &newer)
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, customer_id, status, total_price, transfer_code, auth_password, created_at, completed_at FROM orders ORDER BY created_at DESC")).
					WillReturnRows(rows)
			},
			expectErr: false,
			count:     2,
		},
		{
			name: "No orders",
			mockSetup: func() {
				rows := pgxmock.NewRows(orderColumns())
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, customer_id, status, total_price, transfer_code, auth_password, created_at, completed_at FROM orders ORDER BY created_at DESC")).
					WillReturnRows(rows)
			},
			expectErr: false,
			count:     0,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, customer_id, status, total_price, transfer_code, auth_password, created_at, completed_at FROM orders ORDER BY created_at DESC")).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindAll(context.Background())
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
				return
			}
			assert.NoError(t, err)
			assert.Len(t, result, tt.count)
			if tt.count == 2 {
				assert.Equal(t, 2, result[0].ID)
				assert.Equal(t, 1, result[1].ID)
			}
		})
	}
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock, txManager := NewMock(t)
	completedAt := time.Now()

	tests := []struct {
		name      string
		order     *domain.Order
		mockSetup func(order *domain.Order)
		expectErr bool
	}{
		{
			name:  "Completion write persists the timestamp",
			order: &domain.Order{ID: 1, Status: "completed", CompletedAt: &completedAt},
			mockSetup: func(order *domain.Order) {
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
						return fn(ctx)
					})
				mock.ExpectExec(regexp.QuoteMeta("UPDATE orders SET status = $1, completed_at = $2 WHERE id = $3")).
					WithArgs(order.Status, order.CompletedAt, order.ID).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expectErr: false,
		},
		{
			name:  "Non-completion write passes completed_at through untouched",
			order: &domain.Order{ID: 1, Status: "in_progress", CompletedAt: &completedAt},
			mockSetup: func(order *domain.Order) {
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
						return fn(ctx)
					})
				mock.ExpectExec(regexp.QuoteMeta("UPDATE orders SET status = $1, completed_at = $2 WHERE id = $3")).
					WithArgs(order.Status, order.CompletedAt, order.ID).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expectErr: false,
		},
		{
			name:  "Database error",
			order: &domain.Order{ID: 1, Status: "in_progress"},
			mockSetup: func(order *domain.Order) {
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
						return fn(ctx)
					})
				mock.ExpectExec(regexp.QuoteMeta("UPDATE orders SET status = $1, completed_at = $2 WHERE id = $3")).
					WithArgs(order.Status, order.CompletedAt, order.ID).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup(tt.order)
			err := repo.UpdateStatus(context.Background(), tt.order)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Scrub(t *testing.T) {
	repo, mock, txManager := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Scrub succeeds",
			mockSetup: func() {
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
						return fn(ctx)
					})
				mock.ExpectExec(regexp.QuoteMeta("UPDATE orders SET transfer_code = $1, auth_password = $2 WHERE id = $3")).
					WithArgs(domain.ScrubbedTransferCode, domain.ScrubbedAuthPassword, 1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expectErr: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
						return fn(ctx)
					})
				mock.ExpectExec(regexp.QuoteMeta("UPDATE orders SET transfer_code = $1, auth_password = $2 WHERE id = $3")).
					WithArgs(domain.ScrubbedTransferCode, domain.ScrubbedAuthPassword, 1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Scrub(context.Background(), 1, domain.ScrubbedTransferCode, domain.ScrubbedAuthPassword)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
