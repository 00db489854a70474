package handler

import (
	"bizsuite/internal/middleware"
	"bizsuite/internal/models"
	"bizsuite/internal/service"
	"bizsuite/pkg/response"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BusinessHandler handles HTTP requests for business operations.
type BusinessHandler struct {
	service service.BusinessServicer
}

// NewBusinessHandler creates a new BusinessHandler.
func NewBusinessHandler(service service.BusinessServicer) *BusinessHandler {
	return &BusinessHandler{service: service}
}

// CreateBusiness godoc
// @Summary      Create a business
// @Description  Create a business. The caller becomes its owner. Limited by the caller's subscription plan.
// @Tags         businesses
// @Accept       json
// @Produce      json
// @Param        body  body      models.CreateBusinessRequest  true  "Business details"
// @Success      201   {object}  response.Response{data=models.Business}
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Security     BearerAuth
// @Router       /businesses [post]
func (h *BusinessHandler) CreateBusiness(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	var req models.CreateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	business, err := h.service.CreateBusiness(c.Request.Context(), uid, &req)
	if err != nil {
		handleError(c, err, "Failed to create business")
		return
	}

	response.Created(c, business)
}

// ListMyBusinesses godoc
// @Summary      List my businesses
// @Description  Retrieve businesses the caller is an accepted member of
// @Tags         businesses
// @Produce      json
// @Param        page   query     int  false  "Page number (default: 1)"
// @Param        limit  query     int  false  "Items per page (default: 10, max: 100)"
// @Success      200    {object}  response.Response{data=models.BusinessListResponse}
// @Failure      401    {object}  response.Response
// @Failure      500    {object}  response.Response
// @Security     BearerAuth
// @Router       /businesses [get]
func (h *BusinessHandler) ListMyBusinesses(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	page, limit := pageParams(c)
	result, err := h.service.ListMyBusinesses(c.Request.Context(), uid, page, limit)
	if err != nil {
		handleError(c, err, "Failed to list businesses")
		return
	}

	response.Success(c, result)
}

// ListAllBusinesses godoc
// @Summary      List all businesses
// @Description  Platform administrators only
// @Tags         admin
// @Produce      json
// @Param        page   query     int  false  "Page number (default: 1)"
// @Param        limit  query     int  false  "Items per page (default: 10, max: 100)"
// @Success      200    {object}  response.Response{data=models.BusinessListResponse}
// @Failure      401    {object}  response.Response
// @Failure      403    {object}  response.Response
// @Failure      500    {object}  response.Response
// @Security     BearerAuth
// @Router       /admin/businesses [get]
func (h *BusinessHandler) ListAllBusinesses(c *gin.Context) {
	page, limit := pageParams(c)
	result, err := h.service.ListAllBusinesses(c.Request.Context(), page, limit)
	if err != nil {
		handleError(c, err, "Failed to list all businesses")
		return
	}

	response.Success(c, result)
}

// GetBusiness godoc
// @Summary      Get business details
// @Tags         businesses
// @Produce      json
// @Param        businessId  path      string  true  "Business ID"
// @Success      200         {object}  response.Response{data=models.Business}
// @Failure      400         {object}  response.Response
// @Failure      401         {object}  response.Response
// @Failure      403         {object}  response.Response
// @Failure      404         {object}  response.Response
// @Security     BearerAuth
// @Router       /businesses/{businessId} [get]
func (h *BusinessHandler) GetBusiness(c *gin.Context) {
	business, ok := middleware.GetBusiness(c)
	if !ok {
		response.BadRequest(c, "business not found in context")
		return
	}

	response.Success(c, business)
}

// UpdateBusiness godoc
// @Summary      Update business profile
// @Description  Requires the business owner or the owner/admin role
// @Tags         businesses
// @Accept       json
// @Produce      json
// @Param        businessId  path      string                        true  "Business ID"
// @Param        body        body      models.UpdateBusinessRequest  true  "Fields to update"
// @Success      200         {object}  response.Response{data=models.Business}
// @Failure      400         {object}  response.Response
// @Failure      401         {object}  response.Response
// @Failure      403         {object}  response.Response
// @Failure      404         {object}  response.Response
// @Failure      500         {object}  response.Response
// @Security     BearerAuth
// @Router       /businesses/{businessId} [put]
func (h *BusinessHandler) UpdateBusiness(c *gin.Context) {
	business, ok := middleware.GetBusiness(c)
	if !ok {
		response.BadRequest(c, "business not found in context")
		return
	}

	var req models.UpdateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.service.UpdateBusiness(c.Request.Context(), business, &req)
	if err != nil {
		handleError(c, err, "Failed to update business")
		return
	}

	response.Success(c, updated)
}

// DeleteBusiness godoc
// @Summary      Delete business
// @Description  Soft-deletes the business with its records and memberships. Owner only.
// @Tags         businesses
// @Param        businessId  path  string  true  "Business ID"
// @Success      204
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /businesses/{businessId} [delete]
func (h *BusinessHandler) DeleteBusiness(c *gin.Context) {
	business, ok := middleware.GetBusiness(c)
	if !ok {
		response.BadRequest(c, "business not found in context")
		return
	}

	if err := h.service.DeleteBusiness(c.Request.Context(), business.ID); err != nil {
		handleError(c, err, "Failed to delete business")
		return
	}

	response.NoContent(c)
}

// UpdateSettings godoc
// @Summary      Replace business settings
// @Tags         businesses
// @Accept       json
// @Produce      json
// @Param        businessId  path      string                        true  "Business ID"
// @Param        body        body      models.UpdateSettingsRequest  true  "Settings"
// @Success      200         {object}  response.Response{data=models.Business}
// @Failure      400         {object}  response.Response
// @Failure      403         {object}  response.Response
// @Failure      500         {object}  response.Response
// @Security     BearerAuth
// @Router       /businesses/{businessId}/settings [put]
func (h *BusinessHandler) UpdateSettings(c *gin.Context) {
	business, ok := middleware.GetBusiness(c)
	if !ok {
		response.BadRequest(c, "business not found in context")
		return
	}

	var req models.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.service.UpdateSettings(c.Request.Context(), business.ID, req.Settings)
	if err != nil {
		handleError(c, err, "Failed to update settings")
		return
	}

	response.Success(c, updated)
}

// UpdateIntegrations godoc
// @Summary      Replace business integrations
// @Tags         businesses
// @Accept       json
// @Produce      json
// @Param        businessId  path      string                            true  "Business ID"
// @Param        body        body      models.UpdateIntegrationsRequest  true  "Integrations"
// @Success      200         {object}  response.Response{data=models.Business}
// @Failure      400         {object}  response.Response
// @Failure      403         {object}  response.Response
// @Failure      500         {object}  response.Response
// @Security     BearerAuth
// @Router       /businesses/{businessId}/integrations [put]
func (h *BusinessHandler) UpdateIntegrations(c *gin.Context) {
	business, ok := middleware.GetBusiness(c)
	if !ok {
		response.BadRequest(c, "business not found in context")
		return
	}

	var req models.UpdateIntegrationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.service.UpdateIntegrations(c.Request.Context(), business.ID, req.Integrations)
	if err != nil {
		handleError(c, err, "Failed to update integrations")
		return
	}

	response.Success(c, updated)
}

// UpdateSubscription godoc
// @Summary      Change subscription plan
// @Description  Owner only. Records the plan; no charge is made.
// @Tags         businesses
// @Accept       json
// @Produce      json
// @Param        businessId  path      string                            true  "Business ID"
// @Param        body        body      models.UpdateSubscriptionRequest  true  "Plan"
// @Success      200         {object}  response.Response{data=models.Business}
// @Failure      400         {object}  response.Response
// @Failure      403         {object}  response.Response
// @Failure      500         {object}  response.Response
// @Security     BearerAuth
// @Router       /businesses/{businessId}/subscription [put]
func (h *BusinessHandler) UpdateSubscription(c *gin.Context) {
	business, ok := middleware.GetBusiness(c)
	if !ok {
		response.BadRequest(c, "business not found in context")
		return
	}

	var req models.UpdateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.service.UpdateSubscription(c.Request.Context(), business.ID, req.Plan)
	if err != nil {
		handleError(c, err, "Failed to update subscription")
		return
	}

	response.Success(c, updated)
}

// SwitchBusiness godoc
// @Summary      Switch current business
// @Description  Select the business subsequent requests act in. Requires an accepted membership.
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      models.SwitchBusinessRequest  true  "Business to select"
// @Success      200   {object}  response.Response{data=models.CurrentBusinessResponse}
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Security     BearerAuth
// @Router       /me/business [put]
func (h *BusinessHandler) SwitchBusiness(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	var req models.SwitchBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	id, err := primitive.ObjectIDFromHex(req.BusinessID)
	if err != nil {
		response.BadRequest(c, "invalid business id format")
		return
	}

	result, err := h.service.SwitchBusiness(c.Request.Context(), actor, id)
	if err != nil {
		handleError(c, err, "Failed to switch business")
		return
	}

	response.Success(c, result)
}

// CurrentBusiness godoc
// @Summary      Get current business
// @Tags         session
// @Produce      json
// @Success      200  {object}  response.Response{data=models.CurrentBusinessResponse}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Security     BearerAuth
// @Router       /me/business [get]
func (h *BusinessHandler) CurrentBusiness(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	result, err := h.service.CurrentBusiness(actor)
	if err != nil {
		handleError(c, err, "Failed to get current business")
		return
	}

	response.Success(c, result)
}
