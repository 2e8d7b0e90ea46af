package shopservice

import (
	"context"

	"github.com/daikoshop/adminapi/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	Find(ctx context.Context) (*domain.ShopConfig, error)
	Upsert(ctx context.Context, isOpen bool) error
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

// IsOpen reports whether the shop accepts new orders. A missing config row
// means open: absence must never silently close the shop.
func (s *Service) IsOpen(ctx context.Context) (bool, error) {
	cfg, err := s.repo.Find(ctx)
	if err != nil {
		zap.L().Error("can't read shop config", zap.Error(err))
		return false, err
	}
	if cfg == nil {
		return true, nil
	}
	return cfg.IsShopOpen, nil
}

func (s *Service) SetOpen(ctx context.Context, isOpen bool) error {
	if err := s.repo.Upsert(ctx, isOpen); err != nil {
		zap.L().Error("can't update shop config", zap.Error(err))
		return err
	}
	zap.L().Info("shop availability updated", zap.Bool("isShopOpen", isOpen))
	return nil
}
