package shop

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/daikoshop/adminapi/internal/dto"
	"github.com/daikoshop/adminapi/pkg/utils"
)

type Service interface {
	SetOpen(ctx context.Context, isOpen bool) error
}

type ShopHandler struct {
	shopService Service
}

func New(shopService Service) *ShopHandler {
	return &ShopHandler{
		shopService: shopService,
	}
}

// ToggleShop godoc
//
//	@Summary		Open or close the shop for new orders
//	@Description	Upsert the singleton shop config row. Each call overwrites the prior value.
//	@Tags			Shop
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.ToggleRequestDTO	true	"Desired availability"
//	@Security		AdminToken
//	@Success		200	{object}	dto.SuccessResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Storage failure"
//	@Router			/admin/toggle [post]
func (h *ShopHandler) ToggleShop(w http.ResponseWriter, r *http.Request) {
	var req dto.ToggleRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.shopService.SetOpen(r.Context(), req.Open); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SuccessResponseDTO{Success: true})
}
