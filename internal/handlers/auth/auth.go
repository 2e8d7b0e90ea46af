package auth

import (
	"encoding/json"
	"net/http"

	"github.com/daikoshop/adminapi/internal/dto"
	pkgauth "github.com/daikoshop/adminapi/pkg/auth"
	"github.com/daikoshop/adminapi/pkg/utils"
)

type AuthHandler struct {
	gate *pkgauth.Gate
}

func New(gate *pkgauth.Gate) *AuthHandler {
	return &AuthHandler{
		gate: gate,
	}
}

// Authenticate godoc
//
//	@Summary		Validate the administrative secret
//	@Description	Check the dashboard password; the client caches it and resends it as a credential header on admin calls.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AuthRequestDTO	true	"Auth request body"
//	@Success		200		{object}	dto.AuthResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Router			/auth [post]
func (h *AuthHandler) Authenticate(w http.ResponseWriter, r *http.Request) {
	var req dto.AuthRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !h.gate.Verify(req.Password) {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AuthResponseDTO{
		Success: true,
	})
}
