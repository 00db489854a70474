// Package models defines data structures for the application.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Account is a registered user. Global roles are platform-wide labels
// (e.g. "super_admin") and never grant standing inside a business.
type Account struct {
	ID                primitive.ObjectID  `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Email             string              `json:"email" bson:"email" example:"user@example.com"`
	Password          string              `json:"-" bson:"password"`
	Name              string              `json:"name" bson:"name" example:"Aziz Karimov"`
	GlobalRoles       []string            `json:"globalRoles,omitempty" bson:"globalRoles,omitempty"`
	DefaultBusinessID *primitive.ObjectID `json:"defaultBusinessId,omitempty" bson:"defaultBusinessId,omitempty" example:"507f1f77bcf86cd799439012"`
	CreatedAt         time.Time           `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt         time.Time           `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}

// RegisterRequest is the payload for creating an account.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email" example:"user@example.com"`
	Password string `json:"password" binding:"required,min=8,max=72" example:"secret123"`
	Name     string `json:"name" binding:"required,min=2" example:"Aziz Karimov"`
}

// LoginRequest is the payload for login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"user@example.com"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// AuthResponse is returned after register or login.
type AuthResponse struct {
	AccessToken string  `json:"accessToken" example:"eyJhbGciOiJIUzI1NiIs..."`
	ExpiresIn   int64   `json:"expiresIn" example:"900"`
	Account     Account `json:"account"`
}

// AccountSummary is a minimal account representation for embedding.
type AccountSummary struct {
	ID    primitive.ObjectID `json:"id" example:"507f1f77bcf86cd799439013"`
	Email string             `json:"email" example:"user@example.com"`
	Name  string             `json:"name" example:"Aziz Karimov"`
}

// Pagination holds pagination metadata.
type Pagination struct {
	Page       int `json:"page" example:"1"`
	Limit      int `json:"limit" example:"10"`
	TotalItems int `json:"totalItems" example:"42"`
	TotalPages int `json:"totalPages" example:"5"`
}
