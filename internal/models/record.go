package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RecordKind names a tenant-scoped resource type.
type RecordKind string

const (
	KindLead          RecordKind = "lead"
	KindOffer         RecordKind = "offer"
	KindReport        RecordKind = "report"
	KindKPI           RecordKind = "kpi"
	KindLeadForm      RecordKind = "lead_form"
	KindCustdevSurvey RecordKind = "custdev_survey"
)

// RecordKinds lists every tenant record kind.
var RecordKinds = []RecordKind{KindLead, KindOffer, KindReport, KindKPI, KindLeadForm, KindCustdevSurvey}

// Valid reports whether k is a known record kind.
func (k RecordKind) Valid() bool {
	for _, kind := range RecordKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// Record is a tenant resource (lead, offer, KPI daily actual, ...). BusinessID is
// set at creation and never reassigned.
type Record struct {
	ID         primitive.ObjectID     `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Kind       RecordKind             `json:"kind" bson:"kind" example:"lead"`
	BusinessID primitive.ObjectID     `json:"businessId" bson:"businessId" example:"507f1f77bcf86cd799439012"`
	Title      string                 `json:"title" bson:"title" example:"Dilnoza - wholesale inquiry"`
	Status     string                 `json:"status,omitempty" bson:"status,omitempty" example:"new"`
	AssigneeID *primitive.ObjectID    `json:"assigneeId,omitempty" bson:"assigneeId,omitempty"`
	Published  bool                   `json:"published" bson:"published"`
	Automation map[string]interface{} `json:"automation,omitempty" bson:"automation,omitempty"`
	Data       map[string]interface{} `json:"data,omitempty" bson:"data,omitempty"`
	CreatedBy  primitive.ObjectID     `json:"createdBy" bson:"createdBy"`
	CreatedAt  time.Time              `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt  time.Time              `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}

// GetBusinessID returns the owning business.
func (r *Record) GetBusinessID() primitive.ObjectID {
	return r.BusinessID
}

// CreateRecordRequest is the payload for creating a record.
type CreateRecordRequest struct {
	Title  string                 `json:"title" binding:"required,min=1,max=200" example:"Dilnoza - wholesale inquiry"`
	Status string                 `json:"status" binding:"omitempty,max=50" example:"new"`
	Data   map[string]interface{} `json:"data"`
}

// UpdateRecordRequest is the payload for updating a record.
type UpdateRecordRequest struct {
	Title  *string                `json:"title" binding:"omitempty,min=1,max=200"`
	Status *string                `json:"status" binding:"omitempty,max=50"`
	Data   map[string]interface{} `json:"data"`
}

// AssignRecordRequest assigns a record to a business member.
type AssignRecordRequest struct {
	AssigneeID string `json:"assigneeId" binding:"required" example:"507f1f77bcf86cd799439013"`
}

// BulkUpdateRequest sets the status of several records at once.
type BulkUpdateRequest struct {
	IDs    []string `json:"ids" binding:"required,min=1,max=500,dive,required"`
	Status string   `json:"status" binding:"required,max=50" example:"contacted"`
}

// ImportRecordsRequest creates a batch of records.
type ImportRecordsRequest struct {
	Items []CreateRecordRequest `json:"items" binding:"required,min=1,max=1000,dive"`
}

// AutomationRequest replaces the automation settings of an offer.
type AutomationRequest struct {
	Automation map[string]interface{} `json:"automation" binding:"required"`
}

// RecordListResponse is the response for listing records.
type RecordListResponse struct {
	Items      []Record   `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// BulkResult reports how many records a batch operation touched.
type BulkResult struct {
	Count int64 `json:"count" example:"12"`
}

// ExportResponse points at an exported file.
type ExportResponse struct {
	URL       string    `json:"url" example:"https://storage.example.com/exports/leads.csv"`
	Count     int       `json:"count" example:"120"`
	ExpiresAt time.Time `json:"expiresAt" example:"2024-01-15T10:30:00Z"`
}

// OfferAnalytics summarises an offer.
type OfferAnalytics struct {
	OfferID       primitive.ObjectID `json:"offerId"`
	Published     bool               `json:"published"`
	AssignedLeads int64              `json:"assignedLeads" example:"7"`
}

// DashboardResponse holds record counts for the current business.
type DashboardResponse struct {
	Counts map[RecordKind]int64 `json:"counts"`
}
