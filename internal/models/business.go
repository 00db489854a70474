package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Subscription plans.
const (
	PlanFree     = "free"
	PlanPro      = "pro"
	PlanBusiness = "business"
)

// Business is the tenant root. OwnerID is set at creation and never reassigned.
type Business struct {
	ID           primitive.ObjectID     `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Name         string                 `json:"name" bson:"name" example:"Sardor Textiles"`
	Slug         string                 `json:"slug" bson:"slug" example:"sardor-textiles"`
	Industry     string                 `json:"industry,omitempty" bson:"industry,omitempty" example:"retail"`
	Description  string                 `json:"description,omitempty" bson:"description,omitempty"`
	OwnerID      primitive.ObjectID     `json:"ownerId" bson:"ownerId" example:"507f1f77bcf86cd799439012"`
	Plan         string                 `json:"plan" bson:"plan" example:"free"`
	Settings     map[string]interface{} `json:"settings,omitempty" bson:"settings,omitempty"`
	Integrations map[string]string      `json:"integrations,omitempty" bson:"integrations,omitempty"`
	CreatedAt    time.Time              `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt    time.Time              `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
	DeletedAt    *time.Time             `json:"deletedAt,omitempty" bson:"deletedAt,omitempty"`
}

// CreateBusinessRequest is the payload for creating a business.
type CreateBusinessRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100" example:"Sardor Textiles"`
	Slug        string `json:"slug" binding:"required,min=2,max=50,slug" example:"sardor-textiles"`
	Industry    string `json:"industry" binding:"omitempty,max=50" example:"retail"`
	Description string `json:"description" binding:"omitempty,max=500"`
}

// UpdateBusinessRequest is the payload for updating a business profile.
type UpdateBusinessRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2,max=100" example:"Sardor Textiles LLC"`
	Industry    *string `json:"industry" binding:"omitempty,max=50" example:"wholesale"`
	Description *string `json:"description" binding:"omitempty,max=500"`
}

// UpdateSettingsRequest replaces the business settings document.
type UpdateSettingsRequest struct {
	Settings map[string]interface{} `json:"settings" binding:"required"`
}

// UpdateIntegrationsRequest replaces the integration settings of a business.
type UpdateIntegrationsRequest struct {
	Integrations map[string]string `json:"integrations" binding:"required"`
}

// UpdateSubscriptionRequest changes the subscription plan of a business.
type UpdateSubscriptionRequest struct {
	Plan string `json:"plan" binding:"required,oneof=free pro business" example:"pro"`
}

// SwitchBusinessRequest selects the current business for the session.
type SwitchBusinessRequest struct {
	BusinessID string `json:"businessId" binding:"required" example:"507f1f77bcf86cd799439011"`
}

// BusinessListResponse is the response for listing businesses.
type BusinessListResponse struct {
	Items      []Business `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// CurrentBusinessResponse reports the session's current business.
type CurrentBusinessResponse struct {
	BusinessID string `json:"businessId" example:"507f1f77bcf86cd799439011"`
	Role       string `json:"role" example:"manager"`
}
