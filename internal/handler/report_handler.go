package handler

import (
	"context"
	"errors"

	"bizsuite/internal/authz"
	"bizsuite/internal/middleware"
	"bizsuite/internal/models"
	"bizsuite/internal/service"
	"bizsuite/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReportHandler handles generated report files and category report views.
type ReportHandler struct {
	service service.ReportServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(service service.ReportServicer) *ReportHandler {
	return &ReportHandler{service: service}
}

// CategoryActions maps each report category to the action gating its view.
var CategoryActions = map[string]authz.Action{
	models.CategorySales:     authz.ActionViewSales,
	models.CategoryMarketing: authz.ActionViewMarketing,
	models.CategoryFinancial: authz.ActionViewFinancial,
	models.CategoryHR:        authz.ActionViewHR,
}

// Load fetches a generated report for the resource authorization gate.
func (h *ReportHandler) Load(ctx context.Context, id primitive.ObjectID) (authz.Resource, error) {
	report, err := h.service.GetReport(ctx, id)
	if err != nil {
		return nil, err
	}
	return report, nil
}

// RequestedCategory reads the category of a generate request. The body stays
// readable for Generate.
func (h *ReportHandler) RequestedCategory(c *gin.Context) (string, error) {
	var req models.GenerateReportRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		return "", err
	}
	return req.Category, nil
}

// LoadedReportCategory returns the category of the report loaded by the
// resource gate.
func LoadedReportCategory(c *gin.Context) (string, error) {
	report, ok := middleware.GetGeneratedReport(c)
	if !ok {
		return "", errors.New("report not found in context")
	}
	return report.Category, nil
}

// Generate godoc
// @Summary      Generate a report
// @Description  Queues a report file for background generation
// @Tags         reports
// @Accept       json
// @Produce      json
// @Param        body  body      models.GenerateReportRequest  true  "Report category"
// @Success      201   {object}  response.Response{data=models.GeneratedReport}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      503   {object}  response.Response
// @Security     BearerAuth
// @Router       /generated-reports [post]
func (h *ReportHandler) Generate(c *gin.Context) {
	bid, ok := businessID(c)
	if !ok {
		return
	}

	uid, ok := userID(c)
	if !ok {
		return
	}

	var req models.GenerateReportRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	report, err := h.service.GenerateReport(c.Request.Context(), bid, uid, req.Category)
	if err != nil {
		handleError(c, err, "Failed to queue report")
		return
	}

	response.Created(c, report)
}

// List godoc
// @Summary      List generated reports
// @Description  Only reports in categories the caller may view are listed
// @Tags         reports
// @Produce      json
// @Param        page   query     int  false  "Page number (default: 1)"
// @Param        limit  query     int  false  "Items per page (default: 10, max: 100)"
// @Success      200    {object}  response.Response{data=models.GeneratedReportListResponse}
// @Failure      400    {object}  response.Response
// @Failure      403    {object}  response.Response
// @Security     BearerAuth
// @Router       /generated-reports [get]
func (h *ReportHandler) List(c *gin.Context) {
	bid, ok := businessID(c)
	if !ok {
		return
	}

	categories, ok := middleware.GetReadableCategories(c)
	if !ok {
		response.BadRequest(c, "report categories not resolved")
		return
	}

	page, limit := pageParams(c)
	result, err := h.service.ListReports(c.Request.Context(), bid, categories, page, limit)
	if err != nil {
		handleError(c, err, "Failed to list reports")
		return
	}

	response.Success(c, result)
}

// Get godoc
// @Summary      Get a generated report
// @Description  Ready reports include a temporary download link
// @Tags         reports
// @Produce      json
// @Param        id   path      string  true  "Report ID"
// @Success      200  {object}  response.Response{data=models.GeneratedReportResponse}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Security     BearerAuth
// @Router       /generated-reports/{id} [get]
func (h *ReportHandler) Get(c *gin.Context) {
	report, ok := reportFromContext(c)
	if !ok {
		return
	}

	result, err := h.service.DescribeReport(c.Request.Context(), report)
	if err != nil {
		handleError(c, err, "Failed to describe report")
		return
	}

	response.Success(c, result)
}

// Delete godoc
// @Summary      Delete a generated report
// @Tags         reports
// @Param        id  path  string  true  "Report ID"
// @Success      204
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Security     BearerAuth
// @Router       /generated-reports/{id} [delete]
func (h *ReportHandler) Delete(c *gin.Context) {
	report, ok := reportFromContext(c)
	if !ok {
		return
	}

	if err := h.service.DeleteReport(c.Request.Context(), report); err != nil {
		handleError(c, err, "Failed to delete report")
		return
	}

	response.NoContent(c)
}

// CategoryReport godoc
// @Summary      View a category report
// @Description  Live record counts for one report category
// @Tags         reports
// @Produce      json
// @Param        category  path      string  true  "Report category"  Enums(sales, marketing, financial, hr)
// @Success      200       {object}  response.Response{data=models.CategoryReportResponse}
// @Failure      403       {object}  response.Response
// @Security     BearerAuth
// @Router       /report-views/{category} [get]
func (h *ReportHandler) CategoryReport(category string) gin.HandlerFunc {
	return func(c *gin.Context) {
		bid, ok := businessID(c)
		if !ok {
			return
		}

		result, err := h.service.CategoryReport(c.Request.Context(), bid, category)
		if err != nil {
			handleError(c, err, "Failed to build category report")
			return
		}

		response.Success(c, result)
	}
}

func reportFromContext(c *gin.Context) (*models.GeneratedReport, bool) {
	report, ok := middleware.GetGeneratedReport(c)
	if !ok {
		response.BadRequest(c, "report not found in context")
		return nil, false
	}
	return report, true
}
