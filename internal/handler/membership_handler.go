package handler

import (
	"bizsuite/internal/middleware"
	"bizsuite/internal/models"
	"bizsuite/internal/service"
	"bizsuite/pkg/response"

	"github.com/gin-gonic/gin"
)

// MembershipHandler handles HTTP requests for business membership operations.
type MembershipHandler struct {
	service service.MembershipServicer
}

// NewMembershipHandler creates a new MembershipHandler.
func NewMembershipHandler(service service.MembershipServicer) *MembershipHandler {
	return &MembershipHandler{service: service}
}

// ListMembers godoc
// @Summary      List business members
// @Description  Retrieve members of a business with their account details
// @Tags         members
// @Produce      json
// @Param        businessId  path      string  true  "Business ID"
// @Success      200         {object}  response.Response{data=models.MemberListResponse}
// @Failure      401         {object}  response.Response
// @Failure      403         {object}  response.Response
// @Failure      500         {object}  response.Response
// @Security     BearerAuth
// @Router       /businesses/{businessId}/members [get]
func (h *MembershipHandler) ListMembers(c *gin.Context) {
	business, ok := middleware.GetBusiness(c)
	if !ok {
		response.BadRequest(c, "business not found in context")
		return
	}

	result, err := h.service.ListMembers(c.Request.Context(), business.ID)
	if err != nil {
		handleError(c, err, "Failed to list members")
		return
	}

	response.Success(c, result)
}

// Invite godoc
// @Summary      Invite an account
// @Description  Create a pending membership for the account with the given email
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        businessId  path      string                      true  "Business ID"
// @Param        body        body      models.InviteMemberRequest  true  "Invitation"
// @Success      201         {object}  response.Response{data=models.Membership}
// @Failure      400         {object}  response.Response
// @Failure      403         {object}  response.Response
// @Failure      404         {object}  response.Response
// @Failure      409         {object}  response.Response
// @Failure      500         {object}  response.Response
// @Security     BearerAuth
// @Router       /businesses/{businessId}/members [post]
func (h *MembershipHandler) Invite(c *gin.Context) {
	business, ok := middleware.GetBusiness(c)
	if !ok {
		response.BadRequest(c, "business not found in context")
		return
	}

	inviterID, ok := userID(c)
	if !ok {
		return
	}

	var req models.InviteMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	membership, err := h.service.Invite(c.Request.Context(), business, inviterID, &req)
	if err != nil {
		handleError(c, err, "Failed to invite member")
		return
	}

	response.Created(c, membership)
}

// RemoveMember godoc
// @Summary      Remove a member
// @Description  The business owner cannot be removed
// @Tags         members
// @Param        businessId  path  string  true  "Business ID"
// @Param        userId      path  string  true  "Account ID to remove"
// @Success      204
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /businesses/{businessId}/members/{userId} [delete]
func (h *MembershipHandler) RemoveMember(c *gin.Context) {
	business, ok := middleware.GetBusiness(c)
	if !ok {
		response.BadRequest(c, "business not found in context")
		return
	}

	requesterID, ok := userID(c)
	if !ok {
		return
	}

	targetID, ok := pathObjectID(c, "userId")
	if !ok {
		return
	}

	if err := h.service.RemoveMember(c.Request.Context(), business, targetID, requesterID); err != nil {
		handleError(c, err, "Failed to remove member")
		return
	}

	response.NoContent(c)
}

// UpdateRole godoc
// @Summary      Change a member's role
// @Description  Only the business owner can grant the owner role
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        businessId  path      string                          true  "Business ID"
// @Param        userId      path      string                          true  "Account ID"
// @Param        body        body      models.UpdateMemberRoleRequest  true  "New role"
// @Success      200         {object}  response.Response{data=models.Membership}
// @Failure      400         {object}  response.Response
// @Failure      403         {object}  response.Response
// @Failure      404         {object}  response.Response
// @Failure      500         {object}  response.Response
// @Security     BearerAuth
// @Router       /businesses/{businessId}/members/{userId}/role [put]
func (h *MembershipHandler) UpdateRole(c *gin.Context) {
	business, ok := middleware.GetBusiness(c)
	if !ok {
		response.BadRequest(c, "business not found in context")
		return
	}

	requesterID, ok := userID(c)
	if !ok {
		return
	}

	targetID, ok := pathObjectID(c, "userId")
	if !ok {
		return
	}

	var req models.UpdateMemberRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	membership, err := h.service.UpdateRole(c.Request.Context(), business, targetID, requesterID, req.Role)
	if err != nil {
		handleError(c, err, "Failed to update member role")
		return
	}

	response.Success(c, membership)
}

// LeaveBusiness godoc
// @Summary      Leave a business
// @Description  The business owner cannot leave
// @Tags         members
// @Param        businessId  path  string  true  "Business ID"
// @Success      204
// @Failure      403  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /businesses/{businessId}/leave [post]
func (h *MembershipHandler) LeaveBusiness(c *gin.Context) {
	business, ok := middleware.GetBusiness(c)
	if !ok {
		response.BadRequest(c, "business not found in context")
		return
	}

	uid, ok := userID(c)
	if !ok {
		return
	}

	if err := h.service.LeaveBusiness(c.Request.Context(), business, uid); err != nil {
		handleError(c, err, "Failed to leave business")
		return
	}

	response.NoContent(c)
}

// ListMyInvitations godoc
// @Summary      List my invitations
// @Description  Pending memberships of the caller
// @Tags         invitations
// @Produce      json
// @Success      200  {object}  response.Response{data=models.InvitationListResponse}
// @Failure      401  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /me/invitations [get]
func (h *MembershipHandler) ListMyInvitations(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	result, err := h.service.ListMyInvitations(c.Request.Context(), uid)
	if err != nil {
		handleError(c, err, "Failed to list invitations")
		return
	}

	response.Success(c, result)
}

// AcceptInvitation godoc
// @Summary      Accept an invitation
// @Tags         invitations
// @Produce      json
// @Param        businessId  path      string  true  "Business ID"
// @Success      200         {object}  response.Response{data=models.Membership}
// @Failure      400         {object}  response.Response
// @Failure      404         {object}  response.Response
// @Failure      409         {object}  response.Response
// @Failure      500         {object}  response.Response
// @Security     BearerAuth
// @Router       /me/invitations/{businessId}/accept [post]
func (h *MembershipHandler) AcceptInvitation(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	bid, ok := pathObjectID(c, "businessId")
	if !ok {
		return
	}

	membership, err := h.service.AcceptInvitation(c.Request.Context(), bid, uid)
	if err != nil {
		handleError(c, err, "Failed to accept invitation")
		return
	}

	response.Success(c, membership)
}
