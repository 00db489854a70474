package handler

import (
	"context"

	"bizsuite/internal/authz"
	"bizsuite/internal/middleware"
	"bizsuite/internal/models"
	"bizsuite/internal/repository"
	"bizsuite/internal/service"
	"bizsuite/pkg/response"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RecordHandler handles HTTP requests for one kind of tenant record.
type RecordHandler struct {
	service service.RecordServicer
	kind    models.RecordKind
}

// NewRecordHandler creates a RecordHandler serving records of kind.
func NewRecordHandler(service service.RecordServicer, kind models.RecordKind) *RecordHandler {
	return &RecordHandler{service: service, kind: kind}
}

// Kind returns the record kind the handler serves.
func (h *RecordHandler) Kind() models.RecordKind {
	return h.kind
}

// Load fetches a record of the handler's kind for the resource authorization gate.
func (h *RecordHandler) Load(ctx context.Context, id primitive.ObjectID) (authz.Resource, error) {
	record, err := h.service.GetRecord(ctx, h.kind, id)
	if err != nil {
		return nil, err
	}
	return record, nil
}

// List godoc
// @Summary      List records
// @Description  Paginated records of one kind in the current business
// @Tags         records
// @Produce      json
// @Param        collection  path      string  true   "Record collection"  Enums(leads, offers, reports, kpis, lead-forms, custdev-surveys)
// @Param        status      query     string  false  "Filter by status"
// @Param        assigneeId  query     string  false  "Filter by assignee"
// @Param        page        query     int     false  "Page number (default: 1)"
// @Param        limit       query     int     false  "Items per page (default: 10, max: 100)"
// @Success      200         {object}  response.Response{data=models.RecordListResponse}
// @Failure      400         {object}  response.Response
// @Failure      403         {object}  response.Response
// @Failure      500         {object}  response.Response
// @Security     BearerAuth
// @Router       /{collection} [get]
func (h *RecordHandler) List(c *gin.Context) {
	bid, ok := businessID(c)
	if !ok {
		return
	}

	filter := repository.RecordFilter{Status: c.Query("status")}
	if raw := c.Query("assigneeId"); raw != "" {
		assignee, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			response.BadRequest(c, "invalid assigneeId format")
			return
		}
		filter.AssigneeID = &assignee
	}

	page, limit := pageParams(c)
	result, err := h.service.ListRecords(c.Request.Context(), bid, h.kind, filter, page, limit)
	if err != nil {
		handleError(c, err, "Failed to list records")
		return
	}

	response.Success(c, result)
}

// Create godoc
// @Summary      Create a record
// @Tags         records
// @Accept       json
// @Produce      json
// @Param        collection  path      string                      true  "Record collection"  Enums(leads, offers, reports, kpis, lead-forms, custdev-surveys)
// @Param        body        body      models.CreateRecordRequest  true  "Record"
// @Success      201         {object}  response.Response{data=models.Record}
// @Failure      400         {object}  response.Response
// @Failure      403         {object}  response.Response
// @Failure      500         {object}  response.Response
// @Security     BearerAuth
// @Router       /{collection} [post]
func (h *RecordHandler) Create(c *gin.Context) {
	bid, ok := businessID(c)
	if !ok {
		return
	}

	uid, ok := userID(c)
	if !ok {
		return
	}

	var req models.CreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	record, err := h.service.CreateRecord(c.Request.Context(), bid, uid, h.kind, &req)
	if err != nil {
		handleError(c, err, "Failed to create record")
		return
	}

	response.Created(c, record)
}

// Get godoc
// @Summary      Get a record
// @Tags         records
// @Produce      json
// @Param        collection  path      string  true  "Record collection"  Enums(leads, offers, reports, kpis, lead-forms, custdev-surveys)
// @Param        id          path      string  true  "Record ID"
// @Success      200         {object}  response.Response{data=models.Record}
// @Failure      403         {object}  response.Response
// @Failure      404         {object}  response.Response
// @Security     BearerAuth
// @Router       /{collection}/{id} [get]
func (h *RecordHandler) Get(c *gin.Context) {
	record, ok := recordFromContext(c)
	if !ok {
		return
	}

	response.Success(c, record)
}

// Update godoc
// @Summary      Update a record
// @Tags         records
// @Accept       json
// @Produce      json
// @Param        collection  path      string                      true  "Record collection"  Enums(leads, offers, reports, kpis, lead-forms, custdev-surveys)
// @Param        id          path      string                      true  "Record ID"
// @Param        body        body      models.UpdateRecordRequest  true  "Fields to update"
// @Success      200         {object}  response.Response{data=models.Record}
// @Failure      400         {object}  response.Response
// @Failure      403         {object}  response.Response
// @Failure      404         {object}  response.Response
// @Failure      500         {object}  response.Response
// @Security     BearerAuth
// @Router       /{collection}/{id} [put]
func (h *RecordHandler) Update(c *gin.Context) {
	record, ok := recordFromContext(c)
	if !ok {
		return
	}

	var req models.UpdateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.service.UpdateRecord(c.Request.Context(), record, &req)
	if err != nil {
		handleError(c, err, "Failed to update record")
		return
	}

	response.Success(c, updated)
}

// Delete godoc
// @Summary      Delete a record
// @Tags         records
// @Param        collection  path  string  true  "Record collection"  Enums(leads, offers, reports, kpis, lead-forms, custdev-surveys)
// @Param        id          path  string  true  "Record ID"
// @Success      204
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /{collection}/{id} [delete]
func (h *RecordHandler) Delete(c *gin.Context) {
	record, ok := recordFromContext(c)
	if !ok {
		return
	}

	if err := h.service.DeleteRecord(c.Request.Context(), record); err != nil {
		handleError(c, err, "Failed to delete record")
		return
	}

	response.NoContent(c)
}

// Assign godoc
// @Summary      Assign a lead
// @Description  The assignee must be an accepted member of the business
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        id    path      string                      true  "Lead ID"
// @Param        body  body      models.AssignRecordRequest  true  "Assignee"
// @Success      200   {object}  response.Response{data=models.Record}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Security     BearerAuth
// @Router       /leads/{id}/assign [post]
func (h *RecordHandler) Assign(c *gin.Context) {
	record, ok := recordFromContext(c)
	if !ok {
		return
	}

	var req models.AssignRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	assigneeID, err := primitive.ObjectIDFromHex(req.AssigneeID)
	if err != nil {
		response.BadRequest(c, "invalid assigneeId format")
		return
	}

	updated, err := h.service.AssignRecord(c.Request.Context(), record, assigneeID)
	if err != nil {
		handleError(c, err, "Failed to assign record")
		return
	}

	response.Success(c, updated)
}

// BulkUpdate godoc
// @Summary      Bulk update lead status
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        body  body      models.BulkUpdateRequest  true  "Lead ids and status"
// @Success      200   {object}  response.Response{data=models.BulkResult}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Security     BearerAuth
// @Router       /leads/bulk [put]
func (h *RecordHandler) BulkUpdate(c *gin.Context) {
	bid, ok := businessID(c)
	if !ok {
		return
	}

	var req models.BulkUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.BulkUpdateStatus(c.Request.Context(), bid, h.kind, &req)
	if err != nil {
		handleError(c, err, "Failed to bulk update records")
		return
	}

	response.Success(c, result)
}

// Import godoc
// @Summary      Import leads
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        body  body      models.ImportRecordsRequest  true  "Leads to create"
// @Success      201   {object}  response.Response{data=models.BulkResult}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Security     BearerAuth
// @Router       /leads/import [post]
func (h *RecordHandler) Import(c *gin.Context) {
	bid, ok := businessID(c)
	if !ok {
		return
	}

	uid, ok := userID(c)
	if !ok {
		return
	}

	var req models.ImportRecordsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.ImportRecords(c.Request.Context(), bid, uid, h.kind, &req)
	if err != nil {
		handleError(c, err, "Failed to import records")
		return
	}

	response.Created(c, result)
}

// Export godoc
// @Summary      Export records as CSV
// @Description  Uploads a CSV file and returns a temporary download link
// @Tags         records
// @Produce      json
// @Param        collection  path      string  true  "Record collection"  Enums(leads, kpis)
// @Success      200         {object}  response.Response{data=models.ExportResponse}
// @Failure      403         {object}  response.Response
// @Failure      500         {object}  response.Response
// @Failure      503         {object}  response.Response
// @Security     BearerAuth
// @Router       /{collection}/export [get]
func (h *RecordHandler) Export(c *gin.Context) {
	bid, ok := businessID(c)
	if !ok {
		return
	}

	result, err := h.service.ExportRecords(c.Request.Context(), bid, h.kind)
	if err != nil {
		handleError(c, err, "Failed to export records")
		return
	}

	response.Success(c, result)
}

// Publish godoc
// @Summary      Publish an offer
// @Tags         offers
// @Produce      json
// @Param        id  path      string  true  "Offer ID"
// @Success      200  {object}  response.Response{data=models.Record}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Security     BearerAuth
// @Router       /offers/{id}/publish [post]
func (h *RecordHandler) Publish(c *gin.Context) {
	h.setPublished(c, true)
}

// Unpublish godoc
// @Summary      Unpublish an offer
// @Tags         offers
// @Produce      json
// @Param        id  path      string  true  "Offer ID"
// @Success      200  {object}  response.Response{data=models.Record}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Security     BearerAuth
// @Router       /offers/{id}/unpublish [post]
func (h *RecordHandler) Unpublish(c *gin.Context) {
	h.setPublished(c, false)
}

func (h *RecordHandler) setPublished(c *gin.Context, published bool) {
	record, ok := recordFromContext(c)
	if !ok {
		return
	}

	updated, err := h.service.SetPublished(c.Request.Context(), record, published)
	if err != nil {
		handleError(c, err, "Failed to change publication")
		return
	}

	response.Success(c, updated)
}

// SetAutomation godoc
// @Summary      Replace offer automation
// @Tags         offers
// @Accept       json
// @Produce      json
// @Param        id    path      string                    true  "Offer ID"
// @Param        body  body      models.AutomationRequest  true  "Automation settings"
// @Success      200   {object}  response.Response{data=models.Record}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Security     BearerAuth
// @Router       /offers/{id}/automation [put]
func (h *RecordHandler) SetAutomation(c *gin.Context) {
	record, ok := recordFromContext(c)
	if !ok {
		return
	}

	var req models.AutomationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.service.SetAutomation(c.Request.Context(), record, req.Automation)
	if err != nil {
		handleError(c, err, "Failed to update automation")
		return
	}

	response.Success(c, updated)
}

// Duplicate godoc
// @Summary      Duplicate an offer
// @Description  The copy starts unpublished
// @Tags         offers
// @Produce      json
// @Param        id  path      string  true  "Offer ID"
// @Success      201  {object}  response.Response{data=models.Record}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Security     BearerAuth
// @Router       /offers/{id}/duplicate [post]
func (h *RecordHandler) Duplicate(c *gin.Context) {
	record, ok := recordFromContext(c)
	if !ok {
		return
	}

	uid, ok := userID(c)
	if !ok {
		return
	}

	dup, err := h.service.DuplicateRecord(c.Request.Context(), record, uid)
	if err != nil {
		handleError(c, err, "Failed to duplicate record")
		return
	}

	response.Created(c, dup)
}

// Analytics godoc
// @Summary      Offer analytics
// @Tags         offers
// @Produce      json
// @Param        id  path      string  true  "Offer ID"
// @Success      200  {object}  response.Response{data=models.OfferAnalytics}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Security     BearerAuth
// @Router       /offers/{id}/analytics [get]
func (h *RecordHandler) Analytics(c *gin.Context) {
	record, ok := recordFromContext(c)
	if !ok {
		return
	}

	result, err := h.service.OfferAnalytics(c.Request.Context(), record)
	if err != nil {
		handleError(c, err, "Failed to compute offer analytics")
		return
	}

	response.Success(c, result)
}

func recordFromContext(c *gin.Context) (*models.Record, bool) {
	record, ok := middleware.GetRecord(c)
	if !ok {
		response.BadRequest(c, "record not found in context")
		return nil, false
	}
	return record, true
}
