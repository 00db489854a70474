// Package service contains business logic for the application.
package service

import (
	"context"

	"bizsuite/internal/authz"
	"bizsuite/internal/models"
	"bizsuite/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthServicer defines the interface for authentication operations.
type AuthServicer interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
}

// AccountServicer defines the interface for account operations.
type AccountServicer interface {
	GetAccount(ctx context.Context, id primitive.ObjectID) (*models.Account, error)
	SetDefaultBusiness(ctx context.Context, id primitive.ObjectID, businessID *primitive.ObjectID) error
}

// BusinessServicer defines the interface for business operations.
type BusinessServicer interface {
	CreateBusiness(ctx context.Context, userID primitive.ObjectID, req *models.CreateBusinessRequest) (*models.Business, error)
	ListMyBusinesses(ctx context.Context, userID primitive.ObjectID, page, limit int) (*models.BusinessListResponse, error)
	ListAllBusinesses(ctx context.Context, page, limit int) (*models.BusinessListResponse, error)
	GetBusiness(ctx context.Context, id primitive.ObjectID) (*models.Business, error)
	UpdateBusiness(ctx context.Context, business *models.Business, req *models.UpdateBusinessRequest) (*models.Business, error)
	DeleteBusiness(ctx context.Context, businessID primitive.ObjectID) error
	SwitchBusiness(ctx context.Context, actor *authz.Actor, businessID primitive.ObjectID) (*models.CurrentBusinessResponse, error)
	CurrentBusiness(actor *authz.Actor) (*models.CurrentBusinessResponse, error)
	UpdateSettings(ctx context.Context, businessID primitive.ObjectID, settings map[string]interface{}) (*models.Business, error)
	UpdateIntegrations(ctx context.Context, businessID primitive.ObjectID, integrations map[string]string) (*models.Business, error)
	UpdateSubscription(ctx context.Context, businessID primitive.ObjectID, plan string) (*models.Business, error)
}

// MembershipServicer defines the interface for membership operations.
type MembershipServicer interface {
	ListMembers(ctx context.Context, businessID primitive.ObjectID) (*models.MemberListResponse, error)
	Invite(ctx context.Context, business *models.Business, inviterID primitive.ObjectID, req *models.InviteMemberRequest) (*models.Membership, error)
	ListMyInvitations(ctx context.Context, userID primitive.ObjectID) (*models.InvitationListResponse, error)
	AcceptInvitation(ctx context.Context, businessID, userID primitive.ObjectID) (*models.Membership, error)
	RemoveMember(ctx context.Context, business *models.Business, targetUserID, requestingUserID primitive.ObjectID) error
	UpdateRole(ctx context.Context, business *models.Business, targetUserID, requestingUserID primitive.ObjectID, newRole string) (*models.Membership, error)
	LeaveBusiness(ctx context.Context, business *models.Business, userID primitive.ObjectID) error
}

// RecordServicer defines the interface for tenant record operations.
type RecordServicer interface {
	ListRecords(ctx context.Context, businessID primitive.ObjectID, kind models.RecordKind, filter repository.RecordFilter, page, limit int) (*models.RecordListResponse, error)
	GetRecord(ctx context.Context, kind models.RecordKind, id primitive.ObjectID) (*models.Record, error)
	CreateRecord(ctx context.Context, businessID, userID primitive.ObjectID, kind models.RecordKind, req *models.CreateRecordRequest) (*models.Record, error)
	UpdateRecord(ctx context.Context, record *models.Record, req *models.UpdateRecordRequest) (*models.Record, error)
	DeleteRecord(ctx context.Context, record *models.Record) error
	AssignRecord(ctx context.Context, record *models.Record, assigneeID primitive.ObjectID) (*models.Record, error)
	BulkUpdateStatus(ctx context.Context, businessID primitive.ObjectID, kind models.RecordKind, req *models.BulkUpdateRequest) (*models.BulkResult, error)
	ImportRecords(ctx context.Context, businessID, userID primitive.ObjectID, kind models.RecordKind, req *models.ImportRecordsRequest) (*models.BulkResult, error)
	ExportRecords(ctx context.Context, businessID primitive.ObjectID, kind models.RecordKind) (*models.ExportResponse, error)
	SetPublished(ctx context.Context, record *models.Record, published bool) (*models.Record, error)
	SetAutomation(ctx context.Context, record *models.Record, automation map[string]interface{}) (*models.Record, error)
	DuplicateRecord(ctx context.Context, record *models.Record, userID primitive.ObjectID) (*models.Record, error)
	OfferAnalytics(ctx context.Context, offer *models.Record) (*models.OfferAnalytics, error)
	Dashboard(ctx context.Context, businessID primitive.ObjectID) (*models.DashboardResponse, error)
}

// KPIServicer defines the interface for KPI configuration operations.
type KPIServicer interface {
	GetConfig(ctx context.Context, businessID primitive.ObjectID) (*models.KPIConfig, error)
	Configure(ctx context.Context, businessID primitive.ObjectID, settings map[string]interface{}) (*models.KPIConfig, error)
	SetTargets(ctx context.Context, businessID primitive.ObjectID, targets map[string]float64) (*models.KPIConfig, error)
	ConfigureAlerts(ctx context.Context, businessID primitive.ObjectID, alerts []models.KPIAlert) (*models.KPIConfig, error)
	CreateCustomKPI(ctx context.Context, businessID primitive.ObjectID, kpi models.CustomKPI) (*models.KPIConfig, error)
}

// ReportServicer defines the interface for generated report operations.
type ReportServicer interface {
	GenerateReport(ctx context.Context, businessID, userID primitive.ObjectID, category string) (*models.GeneratedReport, error)
	GetReport(ctx context.Context, id primitive.ObjectID) (*models.GeneratedReport, error)
	DescribeReport(ctx context.Context, report *models.GeneratedReport) (*models.GeneratedReportResponse, error)
	ListReports(ctx context.Context, businessID primitive.ObjectID, categories []string, page, limit int) (*models.GeneratedReportListResponse, error)
	DeleteReport(ctx context.Context, report *models.GeneratedReport) error
	CategoryReport(ctx context.Context, businessID primitive.ObjectID, category string) (*models.CategoryReportResponse, error)
}

// Ensure concrete types implement interfaces
var (
	_ AuthServicer       = (*AuthService)(nil)
	_ AccountServicer    = (*AccountService)(nil)
	_ BusinessServicer   = (*BusinessService)(nil)
	_ MembershipServicer = (*MembershipService)(nil)
	_ RecordServicer     = (*RecordService)(nil)
	_ KPIServicer        = (*KPIService)(nil)
	_ ReportServicer     = (*ReportService)(nil)
)
