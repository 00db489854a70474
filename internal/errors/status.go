package errors

import (
	"errors"
	"net/http"
)

// statusByError maps sentinel errors to HTTP status codes.
var statusByError = []struct {
	err    error
	status int
}{
	{ErrInvalidPolicyInput, http.StatusInternalServerError},

	{ErrUnauthorized, http.StatusUnauthorized},
	{ErrInvalidToken, http.StatusUnauthorized},
	{ErrTokenExpired, http.StatusUnauthorized},
	{ErrInvalidCredentials, http.StatusUnauthorized},

	{ErrForbidden, http.StatusForbidden},
	{ErrBusinessLimitReached, http.StatusForbidden},
	{ErrNotBusinessMember, http.StatusForbidden},
	{ErrOwnerRoleReserved, http.StatusForbidden},
	{ErrCannotRemoveOwner, http.StatusForbidden},
	{ErrCannotChangeOwnerRole, http.StatusForbidden},
	{ErrOwnerCannotLeave, http.StatusForbidden},

	{ErrAccountNotFound, http.StatusNotFound},
	{ErrBusinessNotFound, http.StatusNotFound},
	{ErrInvitationNotFound, http.StatusNotFound},
	{ErrRecordNotFound, http.StatusNotFound},
	{ErrReportNotFound, http.StatusNotFound},
	{ErrUnknownKind, http.StatusNotFound},

	{ErrAccountAlreadyExists, http.StatusConflict},
	{ErrBusinessSlugTaken, http.StatusConflict},
	{ErrAlreadyMember, http.StatusConflict},
	{ErrInvitationAlreadyTaken, http.StatusConflict},
	{ErrReportNotReady, http.StatusConflict},

	{ErrInvalidRecordID, http.StatusBadRequest},
	{ErrInvalidRole, http.StatusBadRequest},
	{ErrAssigneeInvalid, http.StatusBadRequest},
	{ErrUnknownCategory, http.StatusBadRequest},
	{ErrCannotRemoveSelf, http.StatusBadRequest},
	{ErrNoCurrentBusiness, http.StatusBadRequest},

	{ErrReportQueueFull, http.StatusServiceUnavailable},
	{ErrExportUnavailable, http.StatusServiceUnavailable},
}

// StatusCode returns the HTTP status for err. Unknown errors are 500.
func StatusCode(err error) int {
	for _, e := range statusByError {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}
