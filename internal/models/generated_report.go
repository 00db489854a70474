package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReportStatus is the processing state of a generated report.
type ReportStatus string

const (
	ReportPending ReportStatus = "pending"
	ReportReady   ReportStatus = "ready"
	ReportFailed  ReportStatus = "failed"
)

// Report categories.
const (
	CategorySales     = "sales"
	CategoryMarketing = "marketing"
	CategoryFinancial = "financial"
	CategoryHR        = "hr"
)

// GeneratedReport is a report file produced in the background for a business.
type GeneratedReport struct {
	ID          primitive.ObjectID   `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	BusinessID  primitive.ObjectID   `json:"businessId" bson:"businessId"`
	Category    string               `json:"category" bson:"category" example:"sales"`
	Status      ReportStatus         `json:"status" bson:"status" example:"ready"`
	FileKey     string               `json:"-" bson:"fileKey,omitempty"`
	Summary     map[RecordKind]int64 `json:"summary,omitempty" bson:"summary,omitempty"`
	RequestedBy primitive.ObjectID   `json:"requestedBy" bson:"requestedBy"`
	CreatedAt   time.Time            `json:"createdAt" bson:"createdAt"`
	CompletedAt *time.Time           `json:"completedAt,omitempty" bson:"completedAt,omitempty"`
}

// GetBusinessID returns the owning business.
func (r *GeneratedReport) GetBusinessID() primitive.ObjectID {
	return r.BusinessID
}

// GenerateReportRequest is the payload for requesting a report.
type GenerateReportRequest struct {
	Category string `json:"category" binding:"required,oneof=sales marketing financial hr" example:"sales"`
}

// GeneratedReportResponse is a report with a download link when ready.
type GeneratedReportResponse struct {
	GeneratedReport
	DownloadURL string `json:"downloadUrl,omitempty"`
}

// GeneratedReportListResponse is the response for listing generated reports.
type GeneratedReportListResponse struct {
	Items      []GeneratedReport `json:"items"`
	Pagination Pagination        `json:"pagination"`
}

// CategoryReportResponse holds live record counts for one report category.
type CategoryReportResponse struct {
	Category string               `json:"category" example:"sales"`
	Counts   map[RecordKind]int64 `json:"counts"`
}
