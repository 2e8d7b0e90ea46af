package repo

import (
	"github.com/daikoshop/adminapi/internal/pg"
	configrepo "github.com/daikoshop/adminapi/internal/repo/config-repo"
	orderrepo "github.com/daikoshop/adminapi/internal/repo/order-repo"
	"github.com/daikoshop/adminapi/internal/service/orderservice"
	"github.com/daikoshop/adminapi/internal/service/shopservice"
)

type Repositories struct {
	OrderRepo  orderservice.Repo
	ConfigRepo shopservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	orderRepo := orderrepo.New(conn, txManager)
	configRepo := configrepo.New(conn, txManager)

	return &Repositories{
		OrderRepo:  orderRepo,
		ConfigRepo: configRepo,
	}
}
