package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// KPIConfig holds the KPI configuration of a business. There is one per business.
type KPIConfig struct {
	ID         primitive.ObjectID     `json:"id" bson:"_id,omitempty"`
	BusinessID primitive.ObjectID     `json:"businessId" bson:"businessId"`
	Settings   map[string]interface{} `json:"settings,omitempty" bson:"settings,omitempty"`
	Targets    map[string]float64     `json:"targets,omitempty" bson:"targets,omitempty"`
	Alerts     []KPIAlert             `json:"alerts,omitempty" bson:"alerts,omitempty"`
	CustomKPIs []CustomKPI            `json:"customKpis,omitempty" bson:"customKpis,omitempty"`
	UpdatedAt  time.Time              `json:"updatedAt" bson:"updatedAt"`
}

// KPIAlert fires when a KPI crosses a threshold.
type KPIAlert struct {
	KPICode   string  `json:"kpiCode" bson:"kpiCode" binding:"required" example:"leads_count"`
	Operator  string  `json:"operator" bson:"operator" binding:"required,oneof=lt lte gt gte" example:"lt"`
	Threshold float64 `json:"threshold" bson:"threshold" example:"100"`
}

// CustomKPI is a business-defined KPI.
type CustomKPI struct {
	Code string `json:"code" bson:"code" binding:"required,min=2,max=50" example:"repeat_orders"`
	Name string `json:"name" bson:"name" binding:"required,min=2,max=100" example:"Repeat orders"`
	Unit string `json:"unit" bson:"unit" binding:"omitempty,max=20" example:"count"`
}

// KPISettingsRequest replaces KPI configuration settings.
type KPISettingsRequest struct {
	Settings map[string]interface{} `json:"settings" binding:"required"`
}

// KPITargetsRequest replaces KPI targets.
type KPITargetsRequest struct {
	Targets map[string]float64 `json:"targets" binding:"required"`
}

// KPIAlertsRequest replaces KPI alerts.
type KPIAlertsRequest struct {
	Alerts []KPIAlert `json:"alerts" binding:"required,dive"`
}
