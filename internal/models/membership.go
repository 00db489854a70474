package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Membership links an account to a business with a role. A membership is
// created pending on invite and grants standing only once accepted.
// One membership exists per (business, user) pair.
type Membership struct {
	ID         primitive.ObjectID  `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	BusinessID primitive.ObjectID  `json:"businessId" bson:"businessId" example:"507f1f77bcf86cd799439012"`
	UserID     primitive.ObjectID  `json:"userId" bson:"userId" example:"507f1f77bcf86cd799439013"`
	Role       string              `json:"role" bson:"role" example:"manager"`
	InvitedBy  *primitive.ObjectID `json:"invitedBy,omitempty" bson:"invitedBy,omitempty"`
	InvitedAt  time.Time           `json:"invitedAt" bson:"invitedAt" example:"2024-01-15T09:30:00Z"`
	AcceptedAt *time.Time          `json:"acceptedAt,omitempty" bson:"acceptedAt,omitempty" example:"2024-01-16T09:30:00Z"`
}

// IsAccepted reports whether the invitation behind the membership was accepted.
func (m *Membership) IsAccepted() bool {
	return m.AcceptedAt != nil
}

// MemberWithAccount is a membership with expanded account information.
type MemberWithAccount struct {
	Membership
	Account *AccountSummary `json:"account,omitempty"`
}

// InviteMemberRequest is the payload for inviting an account into a business.
type InviteMemberRequest struct {
	Email string `json:"email" binding:"required,email" example:"newuser@example.com"`
	Role  string `json:"role" binding:"required,role" example:"marketer"`
}

// UpdateMemberRoleRequest is the payload for changing a member's role.
type UpdateMemberRoleRequest struct {
	Role string `json:"role" binding:"required,role" example:"sales_head"`
}

// MemberListResponse is the response for listing business members.
type MemberListResponse struct {
	Items []MemberWithAccount `json:"items"`
}

// InvitationListResponse lists pending memberships for the current account.
type InvitationListResponse struct {
	Items []Membership `json:"items"`
}
