// Package errors provides custom error types for the application.
package errors

import "errors"

// Account errors
var (
	ErrAccountNotFound      = errors.New("account not found")
	ErrAccountAlreadyExists = errors.New("account with this email already exists")
	ErrInvalidCredentials   = errors.New("invalid email or password")
)

// Auth errors
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// Authorization errors. ErrInvalidPolicyInput signals a bug in the caller or
// the loading layer, never a missing permission.
var (
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidPolicyInput = errors.New("invalid policy input")
	ErrInvalidRole        = errors.New("invalid role")
)

// Business errors
var (
	ErrBusinessNotFound       = errors.New("business not found")
	ErrBusinessSlugTaken      = errors.New("business slug is already taken")
	ErrBusinessLimitReached   = errors.New("subscription plan does not allow more businesses")
	ErrNotBusinessMember      = errors.New("you are not a member of this business")
	ErrNoCurrentBusiness      = errors.New("no current business selected")
	ErrOwnerCannotLeave       = errors.New("owner cannot leave the business")
	ErrCannotRemoveOwner      = errors.New("cannot remove business owner")
	ErrCannotRemoveSelf       = errors.New("cannot remove yourself, use leave endpoint")
	ErrOwnerRoleReserved      = errors.New("only the business owner can grant the owner role")
	ErrCannotChangeOwnerRole  = errors.New("cannot change the role of the business owner")
	ErrAlreadyMember          = errors.New("account is already a member of this business")
	ErrInvitationNotFound     = errors.New("invitation not found")
	ErrInvitationAlreadyTaken = errors.New("invitation already accepted")
)

// Record errors
var (
	ErrRecordNotFound  = errors.New("record not found")
	ErrInvalidRecordID = errors.New("invalid record id")
	ErrUnknownKind     = errors.New("unknown record kind")
	ErrAssigneeInvalid = errors.New("assignee is not a member of this business")
)

// Report errors
var (
	ErrReportNotFound    = errors.New("report not found")
	ErrReportQueueFull   = errors.New("report queue is full, please try again later")
	ErrReportNotReady    = errors.New("report is not ready yet")
	ErrUnknownCategory   = errors.New("unknown report category")
	ErrExportUnavailable = errors.New("export storage is unavailable")
)
