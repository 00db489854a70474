package handler

import (
	"bizsuite/internal/service"
	"bizsuite/pkg/response"

	"github.com/gin-gonic/gin"
)

// AccountHandler handles HTTP requests for the authenticated account.
type AccountHandler struct {
	service service.AccountServicer
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(service service.AccountServicer) *AccountHandler {
	return &AccountHandler{service: service}
}

// GetMe godoc
// @Summary      Get current account
// @Description  Retrieve the authenticated account
// @Tags         account
// @Produce      json
// @Success      200  {object}  response.Response{data=models.Account}
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /me [get]
func (h *AccountHandler) GetMe(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	account, err := h.service.GetAccount(c.Request.Context(), id)
	if err != nil {
		handleError(c, err, "Failed to get account")
		return
	}

	response.Success(c, account)
}

// ClearDefaultBusiness godoc
// @Summary      Clear default business
// @Description  Forget the business selected on login when no session selection exists
// @Tags         account
// @Produce      json
// @Success      204
// @Failure      401  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /me/default-business [delete]
func (h *AccountHandler) ClearDefaultBusiness(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	if err := h.service.SetDefaultBusiness(c.Request.Context(), id, nil); err != nil {
		handleError(c, err, "Failed to clear default business")
		return
	}

	response.NoContent(c)
}
