package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"bizsuite/internal/authz"
	"bizsuite/internal/middleware"
	"bizsuite/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func init() {
	gin.SetMode(gin.TestMode)
	validator.RegisterCustomValidators()
}

// setUserID is a helper middleware to set user ID in context
func setUserID(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID)
		c.Next()
	}
}

// setBusinessID is a helper middleware to set the authorized business in context
func setBusinessID(businessID primitive.ObjectID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.BusinessIDKey, businessID)
		c.Next()
	}
}

// setActor is a helper middleware to set the actor in context
func setActor(actor *authz.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ActorKey, actor)
		c.Next()
	}
}

// setValue is a helper middleware to set an arbitrary context value
func setValue(key string, value interface{}) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(key, value)
		c.Next()
	}
}

// doRequest sends body as JSON. A string body is sent verbatim.
func doRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf []byte
	switch v := body.(type) {
	case nil:
	case string:
		buf = []byte(v)
	default:
		buf, _ = json.Marshal(v)
	}

	req := httptest.NewRequest(method, path, bytes.NewBuffer(buf))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodeData returns the data field of a success envelope.
func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, true, resp["success"])
	data, _ := resp["data"].(map[string]interface{})
	return data
}
