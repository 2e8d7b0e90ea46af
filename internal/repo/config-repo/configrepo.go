package configrepo

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

// Find returns the singleton shop config row, or nil when it has never been written.
func (r *Repository) Find(ctx context.Context) (*domain.ShopConfig, error) {
	query := `
        SELECT id, is_shop_open
        FROM config
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, domain.ConfigID)

	var cfg domain.ShopConfig
	err := row.Scan(&cfg.ID, &cfg.IsShopOpen)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to get shop config", zap.Error(err))
		return nil, err
	}
	return &cfg, nil
}

func (r *Repository) Upsert(ctx context.Context, isOpen bool) error {
	query := `
        INSERT INTO config (id, is_shop_open)
        VALUES ($1, $2)
        ON CONFLICT (id) DO UPDATE SET is_shop_open = EXCLUDED.is_shop_open
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, domain.ConfigID, isOpen)
		if err != nil {
			zap.L().Error("failed to upsert shop config", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}
