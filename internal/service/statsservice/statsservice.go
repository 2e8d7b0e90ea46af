package statsservice

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/daikoshop/adminapi/internal/domain"
	"github.com/daikoshop/adminapi/internal/service/orderservice"
)

type OrderRepo interface {
	FindAll(ctx context.Context) ([]domain.Order, error)
}

type ShopProvider interface {
	IsOpen(ctx context.Context) (bool, error)
}

// Dashboard is recomputed from the full order set on every request.
type Dashboard struct {
	Orders       []domain.Order
	IsShopOpen   bool
	TodaySales   float64
	PendingCount int
}

type Service struct {
	orderRepo OrderRepo
	shop      ShopProvider
	loc       *time.Location
}

// New builds the aggregator. loc is the shop's reference zone: "today" is
// always that zone's calendar day, not the host's.
func New(orderRepo OrderRepo, shop ShopProvider, loc *time.Location) *Service {
	return &Service{
		orderRepo: orderRepo,
		shop:      shop,
		loc:       loc,
	}
}

func (s *Service) GetDashboard(ctx context.Context) (*Dashboard, error) {
	var (
		orders []domain.Order
		isOpen bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orders, err = s.orderRepo.FindAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		isOpen, err = s.shop.IsOpen(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("can't build dashboard", zap.Error(err))
		return nil, err
	}

	dash := &Dashboard{
		Orders:     orders,
		IsShopOpen: isOpen,
	}

	dayStart := startOfDay(time.Now().In(s.loc))
	dayEnd := dayStart.AddDate(0, 0, 1)

	for _, order := range orders {
		if order.Status == orderservice.PendingStatus {
			dash.PendingCount++
		}
		if order.Status != orderservice.CompletedStatus {
			continue
		}
		createdAt := order.CreatedAt.In(s.loc)
		if !createdAt.Before(dayStart) && createdAt.Before(dayEnd) {
			dash.TodaySales += order.TotalPrice
		}
	}

	return dash, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
