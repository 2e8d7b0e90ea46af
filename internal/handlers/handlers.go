package handlers

import (
	"net/http"

	_ "github.com/daikoshop/adminapi/docs"
	authhandlers "github.com/daikoshop/adminapi/internal/handlers/auth"
	ordershandlers "github.com/daikoshop/adminapi/internal/handlers/orders"
	shophandlers "github.com/daikoshop/adminapi/internal/handlers/shop"
	statshandlers "github.com/daikoshop/adminapi/internal/handlers/stats"
	"github.com/daikoshop/adminapi/internal/service"
	"github.com/daikoshop/adminapi/pkg/auth"
	"github.com/daikoshop/adminapi/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Authenticate(w http.ResponseWriter, r *http.Request)
}

type OrderHandler interface {
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	ScrubOrder(w http.ResponseWriter, r *http.Request)
}

type ShopHandler interface {
	ToggleShop(w http.ResponseWriter, r *http.Request)
}

type StatsHandler interface {
	GetStats(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	gate *auth.Gate

	AuthHandler  AuthHandler
	OrderHandler OrderHandler
	ShopHandler  ShopHandler
	StatsHandler StatsHandler
}

func New(s *service.Services, gate *auth.Gate) *Handlers {
	return &Handlers{
		gate:         gate,
		AuthHandler:  authhandlers.New(gate),
		OrderHandler: ordershandlers.New(s.OrderService),
		ShopHandler:  shophandlers.New(s.ShopService),
		StatsHandler: statshandlers.New(s.StatsService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "API is running"})
	})
	r.Post("/auth", h.AuthHandler.Authenticate)

	r.Route("/admin", func(r chi.Router) {
		r.Use(h.gate.Middleware)
		r.Get("/stats", h.StatsHandler.GetStats)
		r.Post("/update-status", h.OrderHandler.UpdateStatus)
		r.Post("/scrub", h.OrderHandler.ScrubOrder)
		r.Post("/toggle", h.ShopHandler.ToggleShop)
	})

	return r
}
