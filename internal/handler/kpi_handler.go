package handler

import (
	"bizsuite/internal/models"
	"bizsuite/internal/service"
	"bizsuite/pkg/response"

	"github.com/gin-gonic/gin"
)

// KPIHandler handles KPI configuration and dashboard requests.
type KPIHandler struct {
	service service.KPIServicer
	records service.RecordServicer
}

// NewKPIHandler creates a new KPIHandler.
func NewKPIHandler(service service.KPIServicer, records service.RecordServicer) *KPIHandler {
	return &KPIHandler{service: service, records: records}
}

// GetConfig godoc
// @Summary      Get KPI configuration
// @Tags         kpis
// @Produce      json
// @Success      200  {object}  response.Response{data=models.KPIConfig}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Security     BearerAuth
// @Router       /kpi-config [get]
func (h *KPIHandler) GetConfig(c *gin.Context) {
	bid, ok := businessID(c)
	if !ok {
		return
	}

	config, err := h.service.GetConfig(c.Request.Context(), bid)
	if err != nil {
		handleError(c, err, "Failed to get KPI configuration")
		return
	}

	response.Success(c, config)
}

// Configure godoc
// @Summary      Replace KPI settings
// @Tags         kpis
// @Accept       json
// @Produce      json
// @Param        body  body      models.KPISettingsRequest  true  "Settings"
// @Success      200   {object}  response.Response{data=models.KPIConfig}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Security     BearerAuth
// @Router       /kpi-config/settings [put]
func (h *KPIHandler) Configure(c *gin.Context) {
	bid, ok := businessID(c)
	if !ok {
		return
	}

	var req models.KPISettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	config, err := h.service.Configure(c.Request.Context(), bid, req.Settings)
	if err != nil {
		handleError(c, err, "Failed to configure KPIs")
		return
	}

	response.Success(c, config)
}

// SetTargets godoc
// @Summary      Replace KPI targets
// @Tags         kpis
// @Accept       json
// @Produce      json
// @Param        body  body      models.KPITargetsRequest  true  "Targets"
// @Success      200   {object}  response.Response{data=models.KPIConfig}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Security     BearerAuth
// @Router       /kpi-config/targets [put]
func (h *KPIHandler) SetTargets(c *gin.Context) {
	bid, ok := businessID(c)
	if !ok {
		return
	}

	var req models.KPITargetsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	config, err := h.service.SetTargets(c.Request.Context(), bid, req.Targets)
	if err != nil {
		handleError(c, err, "Failed to set KPI targets")
		return
	}

	response.Success(c, config)
}

// ConfigureAlerts godoc
// @Summary      Replace KPI alerts
// @Tags         kpis
// @Accept       json
// @Produce      json
// @Param        body  body      models.KPIAlertsRequest  true  "Alerts"
// @Success      200   {object}  response.Response{data=models.KPIConfig}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Security     BearerAuth
// @Router       /kpi-config/alerts [put]
func (h *KPIHandler) ConfigureAlerts(c *gin.Context) {
	bid, ok := businessID(c)
	if !ok {
		return
	}

	var req models.KPIAlertsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	config, err := h.service.ConfigureAlerts(c.Request.Context(), bid, req.Alerts)
	if err != nil {
		handleError(c, err, "Failed to configure KPI alerts")
		return
	}

	response.Success(c, config)
}

// CreateCustom godoc
// @Summary      Add a custom KPI
// @Tags         kpis
// @Accept       json
// @Produce      json
// @Param        body  body      models.CustomKPI  true  "Custom KPI"
// @Success      201   {object}  response.Response{data=models.KPIConfig}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Security     BearerAuth
// @Router       /kpi-config/custom [post]
func (h *KPIHandler) CreateCustom(c *gin.Context) {
	bid, ok := businessID(c)
	if !ok {
		return
	}

	var req models.CustomKPI
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	config, err := h.service.CreateCustomKPI(c.Request.Context(), bid, req)
	if err != nil {
		handleError(c, err, "Failed to create custom KPI")
		return
	}

	response.Created(c, config)
}

// Dashboard godoc
// @Summary      KPI dashboard
// @Description  Record counts per kind for the current business
// @Tags         kpis
// @Produce      json
// @Success      200  {object}  response.Response{data=models.DashboardResponse}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Security     BearerAuth
// @Router       /kpis/dashboard [get]
func (h *KPIHandler) Dashboard(c *gin.Context) {
	bid, ok := businessID(c)
	if !ok {
		return
	}

	dashboard, err := h.records.Dashboard(c.Request.Context(), bid)
	if err != nil {
		handleError(c, err, "Failed to load dashboard")
		return
	}

	response.Success(c, dashboard)
}
