package service

import (
	"fmt"
	"time"

	"github.com/daikoshop/adminapi/internal/config"
	"github.com/daikoshop/adminapi/internal/handlers/orders"
	"github.com/daikoshop/adminapi/internal/handlers/shop"
	"github.com/daikoshop/adminapi/internal/handlers/stats"

	"github.com/daikoshop/adminapi/internal/repo"
	orderservice "github.com/daikoshop/adminapi/internal/service/orderservice"
	shopservice "github.com/daikoshop/adminapi/internal/service/shopservice"
	statsservice "github.com/daikoshop/adminapi/internal/service/statsservice"
)

type Services struct {
	OrderService orders.Service
	ShopService  shop.Service
	StatsService stats.Service
}

func New(repo *repo.Repositories, dispatcher orderservice.Dispatcher, cfg *config.Config) (*Services, error) {
	loc, err := time.LoadLocation(cfg.ShopTimezone)
	if err != nil {
		return nil, fmt.Errorf("invalid shop timezone %q: %w", cfg.ShopTimezone, err)
	}

	shopService := shopservice.New(repo.ConfigRepo)
	orderService := orderservice.New(repo.OrderRepo, dispatcher, cfg.StrictStatus)
	statsService := statsservice.New(repo.OrderRepo, shopService, loc)

	return &Services{
		OrderService: orderService,
		ShopService:  shopService,
		StatsService: statsService,
	}, nil
}
