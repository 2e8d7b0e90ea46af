package stats

import (
	"context"
	"net/http"
	"time"

	"github.com/daikoshop/adminapi/internal/dto"
	statsservice "github.com/daikoshop/adminapi/internal/service/statsservice"
	"github.com/daikoshop/adminapi/pkg/utils"
)

type Service interface {
	GetDashboard(ctx context.Context) (*statsservice.Dashboard, error)
}

type StatsHandler struct {
	statsService Service
}

func New(statsService Service) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// GetStats godoc
//
//	@Summary		Dashboard snapshot
//	@Description	All orders newest-first plus the shop flag, today's completed sales and the pending count.
//	@Tags			Stats
//	@Produce		json
//	@Security		AdminToken
//	@Success		200	{object}	dto.StatsResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Storage failure"
//	@Router			/admin/stats [get]
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	dash, err := h.statsService.GetDashboard(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	response := dto.StatsResponseDTO{
		Orders:       make([]dto.OrderDTO, 0, len(dash.Orders)),
		IsShopOpen:   dash.IsShopOpen,
		TodaySales:   dash.TodaySales,
		PendingCount: dash.PendingCount,
	}
	for _, order := range dash.Orders {
		item := dto.OrderDTO{
			ID:           order.ID,
			CustomerID:   order.CustomerID,
			Status:       order.Status,
			TotalPrice:   order.TotalPrice,
			TransferCode: order.TransferCode,
			AuthPassword: order.AuthPassword,
			Scrubbed:     order.Scrubbed(),
			CreatedAt:    order.CreatedAt.Format(time.RFC3339),
		}
		if order.CompletedAt != nil {
			completedAt := order.CompletedAt.Format(time.RFC3339)
			item.CompletedAt = &completedAt
		}
		response.Orders = append(response.Orders, item)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
