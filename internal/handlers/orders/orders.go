package orders

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/daikoshop/adminapi/internal/domain"
	"github.com/daikoshop/adminapi/internal/dto"

	orderservice "github.com/daikoshop/adminapi/internal/service/orderservice"
	"github.com/daikoshop/adminapi/pkg/utils"
)

type Service interface {
	Advance(ctx context.Context, id int, target string) (*domain.Order, error)
	ScrubOrder(ctx context.Context, id int) error
}

type OrderHandler struct {
	orderService Service
}

func New(orderService Service) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// UpdateStatus godoc
//
//	@Summary		Advance an order through its lifecycle
//	@Description	Set the order status; entering completed also stamps the completion time and notifies the customer.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.UpdateStatusRequestDTO	true	"Order id and target status"
//	@Security		AdminToken
//	@Success		200	{object}	dto.SuccessResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body or status"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Failure		500	{object}	utils.Response	"Storage failure"
//	@Router			/admin/update-status [post]
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateStatusRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	_, err = h.orderService.Advance(r.Context(), req.ID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, orderservice.ErrInvalidStatus), errors.Is(err, orderservice.ErrInvalidTransition):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, orderservice.ErrOrderNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SuccessResponseDTO{Success: true})
}

// ScrubOrder godoc
//
//	@Summary		Redact the handoff fields of a closed order
//	@Description	Irreversibly overwrite transferCode and authPassword with fixed sentinels. Idempotent.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.ScrubRequestDTO	true	"Order id"
//	@Security		AdminToken
//	@Success		200	{object}	dto.SuccessResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Failure		500	{object}	utils.Response	"Storage failure"
//	@Router			/admin/scrub [post]
func (h *OrderHandler) ScrubOrder(w http.ResponseWriter, r *http.Request) {
	var req dto.ScrubRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err = h.orderService.ScrubOrder(r.Context(), req.ID)
	if err != nil {
		switch {
		case errors.Is(err, orderservice.ErrOrderNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SuccessResponseDTO{Success: true})
}
