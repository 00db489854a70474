// Package router sets up HTTP routes for the API.
package router

import (
	"net/http"

	_ "bizsuite/swagger" // Import registered swagger docs

	"bizsuite/internal/authz"
	"bizsuite/internal/handler"
	"bizsuite/internal/middleware"
	"bizsuite/internal/models"
	"bizsuite/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// CollectionPaths maps each record kind to its route segment.
var CollectionPaths = map[models.RecordKind]string{
	models.KindLead:          "/leads",
	models.KindOffer:         "/offers",
	models.KindReport:        "/reports",
	models.KindKPI:           "/kpis",
	models.KindLeadForm:      "/lead-forms",
	models.KindCustdevSurvey: "/custdev-surveys",
}

// Config holds all dependencies needed to set up routes.
type Config struct {
	AuthHandler       *handler.AuthHandler
	AccountHandler    *handler.AccountHandler
	BusinessHandler   *handler.BusinessHandler
	MembershipHandler *handler.MembershipHandler
	RecordHandlers    []*handler.RecordHandler
	KPIHandler        *handler.KPIHandler
	ReportHandler     *handler.ReportHandler

	Tokens         auth.TokenManager
	Actors         authz.ActorLoader
	BusinessPolicy *authz.BusinessPolicy
	LoadBusiness   middleware.BusinessLoader

	AllowedOrigins []string
}

// Setup creates and configures the Gin router.
func Setup(cfg *Config) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.RequestID(), middleware.RequestLogger(), middleware.CORS(cfg.AllowedOrigins...), gin.Recovery())

	// Swagger docs at /docs
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")

	// Auth routes (public)
	authRoutes := v1.Group("/auth")
	{
		authRoutes.POST("/register", cfg.AuthHandler.Register)
		authRoutes.POST("/login", cfg.AuthHandler.Login)
	}

	protected := v1.Group("")
	protected.Use(middleware.Auth(cfg.Tokens), middleware.LoadActor(cfg.Actors))

	setupAccountRoutes(protected, cfg)
	setupBusinessRoutes(protected, cfg)
	for _, h := range cfg.RecordHandlers {
		setupRecordRoutes(protected, h)
	}
	setupKPIRoutes(protected, cfg.KPIHandler)
	setupReportRoutes(protected, cfg.ReportHandler)

	return r
}

// setupAccountRoutes registers routes scoped to the caller's own account. They
// carry no tenant gate; switching business checks membership itself.
func setupAccountRoutes(rg *gin.RouterGroup, cfg *Config) {
	me := rg.Group("/me")
	{
		me.GET("", cfg.AccountHandler.GetMe)
		me.DELETE("/default-business", cfg.AccountHandler.ClearDefaultBusiness)
		me.GET("/business", cfg.BusinessHandler.CurrentBusiness)
		me.PUT("/business", cfg.BusinessHandler.SwitchBusiness)
		me.GET("/invitations", cfg.MembershipHandler.ListMyInvitations)
		me.POST("/invitations/:businessId/accept", cfg.MembershipHandler.AcceptInvitation)
	}
}

func setupBusinessRoutes(rg *gin.RouterGroup, cfg *Config) {
	policy := cfg.BusinessPolicy
	gate := func(action authz.Action) gin.HandlerFunc {
		return middleware.AuthorizeBusiness(policy, action, cfg.LoadBusiness)
	}

	rg.GET("/admin/businesses", middleware.AuthorizePlatform(authz.ActionListAllBusinesses), cfg.BusinessHandler.ListAllBusinesses)

	businesses := rg.Group("/businesses")
	{
		businesses.POST("", middleware.AuthorizeBusinessCreate(policy), cfg.BusinessHandler.CreateBusiness)
		businesses.GET("", cfg.BusinessHandler.ListMyBusinesses)

		business := businesses.Group("/:businessId")
		{
			business.GET("", gate(authz.ActionView), cfg.BusinessHandler.GetBusiness)
			business.PUT("", gate(authz.ActionUpdate), cfg.BusinessHandler.UpdateBusiness)
			business.DELETE("", gate(authz.ActionDelete), cfg.BusinessHandler.DeleteBusiness)
			business.PUT("/settings", gate(authz.ActionUpdateSettings), cfg.BusinessHandler.UpdateSettings)
			business.PUT("/integrations", gate(authz.ActionManageIntegrations), cfg.BusinessHandler.UpdateIntegrations)
			business.PUT("/subscription", gate(authz.ActionManageSubscription), cfg.BusinessHandler.UpdateSubscription)
			business.POST("/leave", gate(authz.ActionView), cfg.MembershipHandler.LeaveBusiness)

			members := business.Group("/members")
			{
				members.GET("", gate(authz.ActionView), cfg.MembershipHandler.ListMembers)
				members.POST("", gate(authz.ActionInvite), cfg.MembershipHandler.Invite)
				members.DELETE("/:userId", gate(authz.ActionRemoveUser), cfg.MembershipHandler.RemoveMember)
				members.PUT("/:userId/role", gate(authz.ActionUpdateSettings), cfg.MembershipHandler.UpdateRole)
			}
		}
	}
}

// setupRecordRoutes registers the CRUD routes of one record kind plus the
// kind-specific extras.
func setupRecordRoutes(rg *gin.RouterGroup, h *handler.RecordHandler) {
	policy, err := authz.PolicyFor(h.Kind())
	if err != nil {
		logrus.WithError(err).Fatal("No policy for record kind")
	}
	path, ok := CollectionPaths[h.Kind()]
	if !ok {
		logrus.WithField("kind", h.Kind()).Fatal("No route for record kind")
	}

	onType := func(action authz.Action) gin.HandlerFunc {
		return middleware.Authorize(policy, action)
	}
	onInstance := func(action authz.Action) gin.HandlerFunc {
		return middleware.AuthorizeResource(policy, action, h.Load)
	}

	records := rg.Group(path)
	{
		records.GET("", onType(authz.ActionViewAny), h.List)
		records.POST("", onType(authz.ActionCreate), h.Create)
		records.GET("/:id", onInstance(authz.ActionView), h.Get)
		records.PUT("/:id", onInstance(authz.ActionUpdate), h.Update)
		records.DELETE("/:id", onInstance(authz.ActionDelete), h.Delete)
	}

	switch h.Kind() {
	case models.KindLead:
		records.GET("/export", onType(authz.ActionExport), h.Export)
		records.POST("/import", onType(authz.ActionImport), h.Import)
		records.PUT("/bulk", onType(authz.ActionBulkUpdate), h.BulkUpdate)
		records.POST("/:id/assign", onInstance(authz.ActionAssign), h.Assign)
	case models.KindOffer:
		records.POST("/:id/publish", onInstance(authz.ActionPublish), h.Publish)
		records.POST("/:id/unpublish", onInstance(authz.ActionUnpublish), h.Unpublish)
		records.PUT("/:id/automation", onInstance(authz.ActionManageAutomation), h.SetAutomation)
		records.POST("/:id/duplicate", onInstance(authz.ActionDuplicate), h.Duplicate)
		records.GET("/:id/analytics", onInstance(authz.ActionViewAnalytics), h.Analytics)
	case models.KindKPI:
		records.GET("/export", onType(authz.ActionExport), h.Export)
	}
}

func setupKPIRoutes(rg *gin.RouterGroup, h *handler.KPIHandler) {
	policy := authz.KPIPolicy

	rg.GET("/kpis/dashboard", middleware.Authorize(policy, authz.ActionViewDashboard), h.Dashboard)

	config := rg.Group("/kpi-config")
	{
		config.GET("", middleware.Authorize(policy, authz.ActionViewAny), h.GetConfig)
		config.PUT("/settings", middleware.Authorize(policy, authz.ActionConfigure), h.Configure)
		config.PUT("/targets", middleware.Authorize(policy, authz.ActionSetTargets), h.SetTargets)
		config.PUT("/alerts", middleware.Authorize(policy, authz.ActionConfigureAlerts), h.ConfigureAlerts)
		config.POST("/custom", middleware.Authorize(policy, authz.ActionCreateCustom), h.CreateCustom)
	}
}

func setupReportRoutes(rg *gin.RouterGroup, h *handler.ReportHandler) {
	policy := authz.ReportPolicy

	generated := rg.Group("/generated-reports")
	{
		generated.POST("",
			middleware.Authorize(policy, authz.ActionGenerate),
			middleware.AuthorizeCategory(policy, handler.CategoryActions, h.RequestedCategory),
			h.Generate)
		generated.GET("",
			middleware.Authorize(policy, authz.ActionViewAny),
			middleware.ReadableCategories(policy, handler.CategoryActions),
			h.List)
		generated.GET("/:id",
			middleware.AuthorizeResource(policy, authz.ActionView, h.Load),
			middleware.AuthorizeCategory(policy, handler.CategoryActions, handler.LoadedReportCategory),
			h.Get)
		generated.DELETE("/:id", middleware.AuthorizeResource(policy, authz.ActionDelete, h.Load), h.Delete)
	}

	views := rg.Group("/report-views")
	for category, action := range handler.CategoryActions {
		views.GET("/"+category, middleware.Authorize(policy, action), h.CategoryReport(category))
	}
}
