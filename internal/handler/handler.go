// Package handler contains HTTP handlers for the API.
package handler

import (
	"net/http"
	"strconv"

	apperrors "bizsuite/internal/errors"
	"bizsuite/internal/logger"
	"bizsuite/internal/middleware"
	"bizsuite/pkg/response"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// pageParams reads page and limit query parameters. Services clamp them.
func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	return page, limit
}

// handleError maps err to a response. Server errors are logged with msg.
func handleError(c *gin.Context, err error, msg string) {
	if apperrors.StatusCode(err) == http.StatusInternalServerError {
		logger.WithContext(c.Request.Context()).WithError(err).Error(msg)
	}
	response.FromError(c, err)
}

// userID returns the authenticated account id or writes 401.
func userID(c *gin.Context) (primitive.ObjectID, bool) {
	id, ok := middleware.GetUserObjectID(c)
	if !ok {
		response.Unauthorized(c, "user not authenticated")
		return primitive.NilObjectID, false
	}
	return id, true
}

// businessID returns the business the request was authorized in or writes 400.
func businessID(c *gin.Context) (primitive.ObjectID, bool) {
	id, ok := middleware.GetBusinessID(c)
	if !ok {
		response.BadRequest(c, apperrors.ErrNoCurrentBusiness.Error())
		return primitive.NilObjectID, false
	}
	return id, true
}

// pathObjectID parses a path parameter as an ObjectID or writes 400.
func pathObjectID(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		response.BadRequest(c, "invalid "+name+" format")
		return primitive.NilObjectID, false
	}
	return id, true
}
