// Package mocks provides mock implementations of service interfaces for testing.
package mocks

import (
	"context"

	"bizsuite/internal/authz"
	"bizsuite/internal/models"
	"bizsuite/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockAuthService is a mock implementation of AuthServicer.
type MockAuthService struct {
	LoginFunc    func(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	RegisterFunc func(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
}

func (m *MockAuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, req)
	}
	return nil, nil
}

// MockAccountService is a mock implementation of AccountServicer.
type MockAccountService struct {
	GetAccountFunc         func(ctx context.Context, id primitive.ObjectID) (*models.Account, error)
	SetDefaultBusinessFunc func(ctx context.Context, id primitive.ObjectID, businessID *primitive.ObjectID) error
}

func (m *MockAccountService) GetAccount(ctx context.Context, id primitive.ObjectID) (*models.Account, error) {
	if m.GetAccountFunc != nil {
		return m.GetAccountFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockAccountService) SetDefaultBusiness(ctx context.Context, id primitive.ObjectID, businessID *primitive.ObjectID) error {
	if m.SetDefaultBusinessFunc != nil {
		return m.SetDefaultBusinessFunc(ctx, id, businessID)
	}
	return nil
}

// MockBusinessService is a mock implementation of BusinessServicer.
type MockBusinessService struct {
	CreateBusinessFunc     func(ctx context.Context, userID primitive.ObjectID, req *models.CreateBusinessRequest) (*models.Business, error)
	CurrentBusinessFunc    func(actor *authz.Actor) (*models.CurrentBusinessResponse, error)
	DeleteBusinessFunc     func(ctx context.Context, businessID primitive.ObjectID) error
	GetBusinessFunc        func(ctx context.Context, id primitive.ObjectID) (*models.Business, error)
	ListAllBusinessesFunc  func(ctx context.Context, page int, limit int) (*models.BusinessListResponse, error)
	ListMyBusinessesFunc   func(ctx context.Context, userID primitive.ObjectID, page int, limit int) (*models.BusinessListResponse, error)
	SwitchBusinessFunc     func(ctx context.Context, actor *authz.Actor, businessID primitive.ObjectID) (*models.CurrentBusinessResponse, error)
	UpdateBusinessFunc     func(ctx context.Context, business *models.Business, req *models.UpdateBusinessRequest) (*models.Business, error)
	UpdateIntegrationsFunc func(ctx context.Context, businessID primitive.ObjectID, integrations map[string]string) (*models.Business, error)
	UpdateSettingsFunc     func(ctx context.Context, businessID primitive.ObjectID, settings map[string]interface{}) (*models.Business, error)
	UpdateSubscriptionFunc func(ctx context.Context, businessID primitive.ObjectID, plan string) (*models.Business, error)
}

func (m *MockBusinessService) CreateBusiness(ctx context.Context, userID primitive.ObjectID, req *models.CreateBusinessRequest) (*models.Business, error) {
	if m.CreateBusinessFunc != nil {
		return m.CreateBusinessFunc(ctx, userID, req)
	}
	return nil, nil
}

func (m *MockBusinessService) CurrentBusiness(actor *authz.Actor) (*models.CurrentBusinessResponse, error) {
	if m.CurrentBusinessFunc != nil {
		return m.CurrentBusinessFunc(actor)
	}
	return nil, nil
}

func (m *MockBusinessService) DeleteBusiness(ctx context.Context, businessID primitive.ObjectID) error {
	if m.DeleteBusinessFunc != nil {
		return m.DeleteBusinessFunc(ctx, businessID)
	}
	return nil
}

func (m *MockBusinessService) GetBusiness(ctx context.Context, id primitive.ObjectID) (*models.Business, error) {
	if m.GetBusinessFunc != nil {
		return m.GetBusinessFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockBusinessService) ListAllBusinesses(ctx context.Context, page int, limit int) (*models.BusinessListResponse, error) {
	if m.ListAllBusinessesFunc != nil {
		return m.ListAllBusinessesFunc(ctx, page, limit)
	}
	return nil, nil
}

func (m *MockBusinessService) ListMyBusinesses(ctx context.Context, userID primitive.ObjectID, page int, limit int) (*models.BusinessListResponse, error) {
	if m.ListMyBusinessesFunc != nil {
		return m.ListMyBusinessesFunc(ctx, userID, page, limit)
	}
	return nil, nil
}

func (m *MockBusinessService) SwitchBusiness(ctx context.Context, actor *authz.Actor, businessID primitive.ObjectID) (*models.CurrentBusinessResponse, error) {
	if m.SwitchBusinessFunc != nil {
		return m.SwitchBusinessFunc(ctx, actor, businessID)
	}
	return nil, nil
}

func (m *MockBusinessService) UpdateBusiness(ctx context.Context, business *models.Business, req *models.UpdateBusinessRequest) (*models.Business, error) {
	if m.UpdateBusinessFunc != nil {
		return m.UpdateBusinessFunc(ctx, business, req)
	}
	return nil, nil
}

func (m *MockBusinessService) UpdateIntegrations(ctx context.Context, businessID primitive.ObjectID, integrations map[string]string) (*models.Business, error) {
	if m.UpdateIntegrationsFunc != nil {
		return m.UpdateIntegrationsFunc(ctx, businessID, integrations)
	}
	return nil, nil
}

func (m *MockBusinessService) UpdateSettings(ctx context.Context, businessID primitive.ObjectID, settings map[string]interface{}) (*models.Business, error) {
	if m.UpdateSettingsFunc != nil {
		return m.UpdateSettingsFunc(ctx, businessID, settings)
	}
	return nil, nil
}

func (m *MockBusinessService) UpdateSubscription(ctx context.Context, businessID primitive.ObjectID, plan string) (*models.Business, error) {
	if m.UpdateSubscriptionFunc != nil {
		return m.UpdateSubscriptionFunc(ctx, businessID, plan)
	}
	return nil, nil
}

// MockMembershipService is a mock implementation of MembershipServicer.
type MockMembershipService struct {
	AcceptInvitationFunc  func(ctx context.Context, businessID primitive.ObjectID, userID primitive.ObjectID) (*models.Membership, error)
	InviteFunc            func(ctx context.Context, business *models.Business, inviterID primitive.ObjectID, req *models.InviteMemberRequest) (*models.Membership, error)
	LeaveBusinessFunc     func(ctx context.Context, business *models.Business, userID primitive.ObjectID) error
	ListMembersFunc       func(ctx context.Context, businessID primitive.ObjectID) (*models.MemberListResponse, error)
	ListMyInvitationsFunc func(ctx context.Context, userID primitive.ObjectID) (*models.InvitationListResponse, error)
	RemoveMemberFunc      func(ctx context.Context, business *models.Business, targetUserID primitive.ObjectID, requestingUserID primitive.ObjectID) error
	UpdateRoleFunc        func(ctx context.Context, business *models.Business, targetUserID primitive.ObjectID, requestingUserID primitive.ObjectID, newRole string) (*models.Membership, error)
}

func (m *MockMembershipService) AcceptInvitation(ctx context.Context, businessID primitive.ObjectID, userID primitive.ObjectID) (*models.Membership, error) {
	if m.AcceptInvitationFunc != nil {
		return m.AcceptInvitationFunc(ctx, businessID, userID)
	}
	return nil, nil
}

func (m *MockMembershipService) Invite(ctx context.Context, business *models.Business, inviterID primitive.ObjectID, req *models.InviteMemberRequest) (*models.Membership, error) {
	if m.InviteFunc != nil {
		return m.InviteFunc(ctx, business, inviterID, req)
	}
	return nil, nil
}

func (m *MockMembershipService) LeaveBusiness(ctx context.Context, business *models.Business, userID primitive.ObjectID) error {
	if m.LeaveBusinessFunc != nil {
		return m.LeaveBusinessFunc(ctx, business, userID)
	}
	return nil
}

func (m *MockMembershipService) ListMembers(ctx context.Context, businessID primitive.ObjectID) (*models.MemberListResponse, error) {
	if m.ListMembersFunc != nil {
		return m.ListMembersFunc(ctx, businessID)
	}
	return nil, nil
}

func (m *MockMembershipService) ListMyInvitations(ctx context.Context, userID primitive.ObjectID) (*models.InvitationListResponse, error) {
	if m.ListMyInvitationsFunc != nil {
		return m.ListMyInvitationsFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockMembershipService) RemoveMember(ctx context.Context, business *models.Business, targetUserID primitive.ObjectID, requestingUserID primitive.ObjectID) error {
	if m.RemoveMemberFunc != nil {
		return m.RemoveMemberFunc(ctx, business, targetUserID, requestingUserID)
	}
	return nil
}

func (m *MockMembershipService) UpdateRole(ctx context.Context, business *models.Business, targetUserID primitive.ObjectID, requestingUserID primitive.ObjectID, newRole string) (*models.Membership, error) {
	if m.UpdateRoleFunc != nil {
		return m.UpdateRoleFunc(ctx, business, targetUserID, requestingUserID, newRole)
	}
	return nil, nil
}

// MockRecordService is a mock implementation of RecordServicer.
type MockRecordService struct {
	AssignRecordFunc     func(ctx context.Context, record *models.Record, assigneeID primitive.ObjectID) (*models.Record, error)
	BulkUpdateStatusFunc func(ctx context.Context, businessID primitive.ObjectID, kind models.RecordKind, req *models.BulkUpdateRequest) (*models.BulkResult, error)
	CreateRecordFunc     func(ctx context.Context, businessID primitive.ObjectID, userID primitive.ObjectID, kind models.RecordKind, req *models.CreateRecordRequest) (*models.Record, error)
	DashboardFunc        func(ctx context.Context, businessID primitive.ObjectID) (*models.DashboardResponse, error)
	DeleteRecordFunc     func(ctx context.Context, record *models.Record) error
	DuplicateRecordFunc  func(ctx context.Context, record *models.Record, userID primitive.ObjectID) (*models.Record, error)
	ExportRecordsFunc    func(ctx context.Context, businessID primitive.ObjectID, kind models.RecordKind) (*models.ExportResponse, error)
	GetRecordFunc        func(ctx context.Context, kind models.RecordKind, id primitive.ObjectID) (*models.Record, error)
	ImportRecordsFunc    func(ctx context.Context, businessID primitive.ObjectID, userID primitive.ObjectID, kind models.RecordKind, req *models.ImportRecordsRequest) (*models.BulkResult, error)
	ListRecordsFunc      func(ctx context.Context, businessID primitive.ObjectID, kind models.RecordKind, filter repository.RecordFilter, page int, limit int) (*models.RecordListResponse, error)
	OfferAnalyticsFunc   func(ctx context.Context, offer *models.Record) (*models.OfferAnalytics, error)
	SetAutomationFunc    func(ctx context.Context, record *models.Record, automation map[string]interface{}) (*models.Record, error)
	SetPublishedFunc     func(ctx context.Context, record *models.Record, published bool) (*models.Record, error)
	UpdateRecordFunc     func(ctx context.Context, record *models.Record, req *models.UpdateRecordRequest) (*models.Record, error)
}

func (m *MockRecordService) AssignRecord(ctx context.Context, record *models.Record, assigneeID primitive.ObjectID) (*models.Record, error) {
	if m.AssignRecordFunc != nil {
		return m.AssignRecordFunc(ctx, record, assigneeID)
	}
	return nil, nil
}

func (m *MockRecordService) BulkUpdateStatus(ctx context.Context, businessID primitive.ObjectID, kind models.RecordKind, req *models.BulkUpdateRequest) (*models.BulkResult, error) {
	if m.BulkUpdateStatusFunc != nil {
		return m.BulkUpdateStatusFunc(ctx, businessID, kind, req)
	}
	return nil, nil
}

func (m *MockRecordService) CreateRecord(ctx context.Context, businessID primitive.ObjectID, userID primitive.ObjectID, kind models.RecordKind, req *models.CreateRecordRequest) (*models.Record, error) {
	if m.CreateRecordFunc != nil {
		return m.CreateRecordFunc(ctx, businessID, userID, kind, req)
	}
	return nil, nil
}

func (m *MockRecordService) Dashboard(ctx context.Context, businessID primitive.ObjectID) (*models.DashboardResponse, error) {
	if m.DashboardFunc != nil {
		return m.DashboardFunc(ctx, businessID)
	}
	return nil, nil
}

func (m *MockRecordService) DeleteRecord(ctx context.Context, record *models.Record) error {
	if m.DeleteRecordFunc != nil {
		return m.DeleteRecordFunc(ctx, record)
	}
	return nil
}

func (m *MockRecordService) DuplicateRecord(ctx context.Context, record *models.Record, userID primitive.ObjectID) (*models.Record, error) {
	if m.DuplicateRecordFunc != nil {
		return m.DuplicateRecordFunc(ctx, record, userID)
	}
	return nil, nil
}

func (m *MockRecordService) ExportRecords(ctx context.Context, businessID primitive.ObjectID, kind models.RecordKind) (*models.ExportResponse, error) {
	if m.ExportRecordsFunc != nil {
		return m.ExportRecordsFunc(ctx, businessID, kind)
	}
	return nil, nil
}

func (m *MockRecordService) GetRecord(ctx context.Context, kind models.RecordKind, id primitive.ObjectID) (*models.Record, error) {
	if m.GetRecordFunc != nil {
		return m.GetRecordFunc(ctx, kind, id)
	}
	return nil, nil
}

func (m *MockRecordService) ImportRecords(ctx context.Context, businessID primitive.ObjectID, userID primitive.ObjectID, kind models.RecordKind, req *models.ImportRecordsRequest) (*models.BulkResult, error) {
	if m.ImportRecordsFunc != nil {
		return m.ImportRecordsFunc(ctx, businessID, userID, kind, req)
	}
	return nil, nil
}

func (m *MockRecordService) ListRecords(ctx context.Context, businessID primitive.ObjectID, kind models.RecordKind, filter repository.RecordFilter, page int, limit int) (*models.RecordListResponse, error) {
	if m.ListRecordsFunc != nil {
		return m.ListRecordsFunc(ctx, businessID, kind, filter, page, limit)
	}
	return nil, nil
}

func (m *MockRecordService) OfferAnalytics(ctx context.Context, offer *models.Record) (*models.OfferAnalytics, error) {
	if m.OfferAnalyticsFunc != nil {
		return m.OfferAnalyticsFunc(ctx, offer)
	}
	return nil, nil
}

func (m *MockRecordService) SetAutomation(ctx context.Context, record *models.Record, automation map[string]interface{}) (*models.Record, error) {
	if m.SetAutomationFunc != nil {
		return m.SetAutomationFunc(ctx, record, automation)
	}
	return nil, nil
}

func (m *MockRecordService) SetPublished(ctx context.Context, record *models.Record, published bool) (*models.Record, error) {
	if m.SetPublishedFunc != nil {
		return m.SetPublishedFunc(ctx, record, published)
	}
	return nil, nil
}

func (m *MockRecordService) UpdateRecord(ctx context.Context, record *models.Record, req *models.UpdateRecordRequest) (*models.Record, error) {
	if m.UpdateRecordFunc != nil {
		return m.UpdateRecordFunc(ctx, record, req)
	}
	return nil, nil
}

// MockKPIService is a mock implementation of KPIServicer.
type MockKPIService struct {
	ConfigureFunc       func(ctx context.Context, businessID primitive.ObjectID, settings map[string]interface{}) (*models.KPIConfig, error)
	ConfigureAlertsFunc func(ctx context.Context, businessID primitive.ObjectID, alerts []models.KPIAlert) (*models.KPIConfig, error)
	CreateCustomKPIFunc func(ctx context.Context, businessID primitive.ObjectID, kpi models.CustomKPI) (*models.KPIConfig, error)
	GetConfigFunc       func(ctx context.Context, businessID primitive.ObjectID) (*models.KPIConfig, error)
	SetTargetsFunc      func(ctx context.Context, businessID primitive.ObjectID, targets map[string]float64) (*models.KPIConfig, error)
}

func (m *MockKPIService) Configure(ctx context.Context, businessID primitive.ObjectID, settings map[string]interface{}) (*models.KPIConfig, error) {
	if m.ConfigureFunc != nil {
		return m.ConfigureFunc(ctx, businessID, settings)
	}
	return nil, nil
}

func (m *MockKPIService) ConfigureAlerts(ctx context.Context, businessID primitive.ObjectID, alerts []models.KPIAlert) (*models.KPIConfig, error) {
	if m.ConfigureAlertsFunc != nil {
		return m.ConfigureAlertsFunc(ctx, businessID, alerts)
	}
	return nil, nil
}

func (m *MockKPIService) CreateCustomKPI(ctx context.Context, businessID primitive.ObjectID, kpi models.CustomKPI) (*models.KPIConfig, error) {
	if m.CreateCustomKPIFunc != nil {
		return m.CreateCustomKPIFunc(ctx, businessID, kpi)
	}
	return nil, nil
}

func (m *MockKPIService) GetConfig(ctx context.Context, businessID primitive.ObjectID) (*models.KPIConfig, error) {
	if m.GetConfigFunc != nil {
		return m.GetConfigFunc(ctx, businessID)
	}
	return nil, nil
}

func (m *MockKPIService) SetTargets(ctx context.Context, businessID primitive.ObjectID, targets map[string]float64) (*models.KPIConfig, error) {
	if m.SetTargetsFunc != nil {
		return m.SetTargetsFunc(ctx, businessID, targets)
	}
	return nil, nil
}

// MockReportService is a mock implementation of ReportServicer.
type MockReportService struct {
	CategoryReportFunc func(ctx context.Context, businessID primitive.ObjectID, category string) (*models.CategoryReportResponse, error)
	DeleteReportFunc   func(ctx context.Context, report *models.GeneratedReport) error
	DescribeReportFunc func(ctx context.Context, report *models.GeneratedReport) (*models.GeneratedReportResponse, error)
	GenerateReportFunc func(ctx context.Context, businessID primitive.ObjectID, userID primitive.ObjectID, category string) (*models.GeneratedReport, error)
	GetReportFunc      func(ctx context.Context, id primitive.ObjectID) (*models.GeneratedReport, error)
	ListReportsFunc    func(ctx context.Context, businessID primitive.ObjectID, categories []string, page int, limit int) (*models.GeneratedReportListResponse, error)
}

func (m *MockReportService) CategoryReport(ctx context.Context, businessID primitive.ObjectID, category string) (*models.CategoryReportResponse, error) {
	if m.CategoryReportFunc != nil {
		return m.CategoryReportFunc(ctx, businessID, category)
	}
	return nil, nil
}

func (m *MockReportService) DeleteReport(ctx context.Context, report *models.GeneratedReport) error {
	if m.DeleteReportFunc != nil {
		return m.DeleteReportFunc(ctx, report)
	}
	return nil
}

func (m *MockReportService) DescribeReport(ctx context.Context, report *models.GeneratedReport) (*models.GeneratedReportResponse, error) {
	if m.DescribeReportFunc != nil {
		return m.DescribeReportFunc(ctx, report)
	}
	return nil, nil
}

func (m *MockReportService) GenerateReport(ctx context.Context, businessID primitive.ObjectID, userID primitive.ObjectID, category string) (*models.GeneratedReport, error) {
	if m.GenerateReportFunc != nil {
		return m.GenerateReportFunc(ctx, businessID, userID, category)
	}
	return nil, nil
}

func (m *MockReportService) GetReport(ctx context.Context, id primitive.ObjectID) (*models.GeneratedReport, error) {
	if m.GetReportFunc != nil {
		return m.GetReportFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockReportService) ListReports(ctx context.Context, businessID primitive.ObjectID, categories []string, page int, limit int) (*models.GeneratedReportListResponse, error) {
	if m.ListReportsFunc != nil {
		return m.ListReportsFunc(ctx, businessID, categories, page, limit)
	}
	return nil, nil
}
