package orderrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/daikoshop/adminapi/internal/domain"
	"github.com/daikoshop/adminapi/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Order, error) {
	query := `
        SELECT id, customer_id, status, total_price, transfer_code, auth_password, created_at, completed_at
        FROM orders
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)

	var order domain.Order
	err := row.Scan(&order.ID, &order.CustomerID, &order.Status, &order.TotalPrice,
		&order.TransferCode, &order.AuthPassword, &order.CreatedAt, &order.CompletedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find order", zap.Error(err))
		return nil, err
	}
	return &order, nil
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Order, error) {
	query := `
        SELECT id, customer_id, status, total_price, transfer_code, auth_password, created_at, completed_at
        FROM orders
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		err := rows.Scan(&order.ID, &order.CustomerID, &order.Status, &order.TotalPrice,
			&order.TransferCode, &order.AuthPassword, &order.CreatedAt, &order.CompletedAt)
		if err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

// UpdateStatus persists status and completed_at as held by the passed order.
// Non-completion advances pass the previously loaded completed_at back
// unchanged, so an already set completion timestamp is never reverted.
func (r *Repository) UpdateStatus(ctx context.Context, order *domain.Order) error {
	query := `
        UPDATE orders
        SET status = $1, completed_at = $2
        WHERE id = $3
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, order.Status, order.CompletedAt, order.ID)
		if err != nil {
			zap.L().Error("failed to update order status", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) Scrub(ctx context.Context, id int, transferCode, authPassword string) error {
	query := `
        UPDATE orders
        SET transfer_code = $1, auth_password = $2
        WHERE id = $3
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, transferCode, authPassword, id)
		if err != nil {
			zap.L().Error("failed to scrub order", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}
