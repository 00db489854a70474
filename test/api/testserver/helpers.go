//go:build api

package testserver

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"bizsuite/internal/models"
	"bizsuite/test/testutil"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultPassword is the password every helper-created account uses.
const DefaultPassword = "password123"

// AuthHelper registers and logs in accounts through the API.
type AuthHelper struct {
	server *TestServer
}

// NewAuthHelper creates a new auth helper.
func NewAuthHelper(server *TestServer) *AuthHelper {
	return &AuthHelper{server: server}
}

// RegisterUser registers an account and returns the auth payload.
func (ah *AuthHelper) RegisterUser(t *testing.T, name, email, password string) map[string]interface{} {
	t.Helper()

	req := models.RegisterRequest{Name: name, Email: email, Password: password}
	w := testutil.MakeRequest(t, ah.server.Router, http.MethodPost, "/api/v1/auth/register", req)
	require.Equal(t, http.StatusCreated, w.Code, "register should return 201, got: %s", w.Body.String())

	resp := testutil.ParseAPIResponse(t, w)
	require.True(t, resp.Success)
	return resp.Data
}

// Login logs an account in and returns the auth payload.
func (ah *AuthHelper) Login(t *testing.T, email, password string) map[string]interface{} {
	t.Helper()

	req := models.LoginRequest{Email: email, Password: password}
	w := testutil.MakeRequest(t, ah.server.Router, http.MethodPost, "/api/v1/auth/login", req)
	require.Equal(t, http.StatusOK, w.Code, "login should return 200, got: %s", w.Body.String())

	resp := testutil.ParseAPIResponse(t, w)
	require.True(t, resp.Success)
	return resp.Data
}

// CreateAuthenticatedUser registers an account and returns its id and access token.
func (ah *AuthHelper) CreateAuthenticatedUser(t *testing.T, name, email string) (userID, accessToken string) {
	t.Helper()

	data := ah.RegisterUser(t, name, email, DefaultPassword)
	token, ok := data["accessToken"].(string)
	require.True(t, ok, "accessToken should be a string")

	return GetIDFromResponse(t, data), token
}

// BusinessHelper creates businesses and seeds memberships.
type BusinessHelper struct {
	server *TestServer
}

// NewBusinessHelper creates a new business helper.
func NewBusinessHelper(server *TestServer) *BusinessHelper {
	return &BusinessHelper{server: server}
}

// CreateBusiness creates a business through the API. The creator becomes its
// owner and the business becomes the creator's current business.
func (bh *BusinessHelper) CreateBusiness(t *testing.T, token, name, slug string) string {
	t.Helper()

	req := models.CreateBusinessRequest{Name: name, Slug: slug, Industry: "retail"}
	w := testutil.MakeAuthRequest(t, bh.server.Router, http.MethodPost, "/api/v1/businesses", token, req)
	require.Equal(t, http.StatusCreated, w.Code, "create business should return 201, got: %s", w.Body.String())

	resp := testutil.ParseAPIResponse(t, w)
	return GetIDFromResponse(t, resp.Data)
}

// SeedMember stores an accepted membership directly in the database.
func (bh *BusinessHelper) SeedMember(t *testing.T, businessID, userID, role string) {
	t.Helper()

	now := time.Now()
	member := &models.Membership{
		BusinessID: mustObjectID(t, businessID),
		UserID:     mustObjectID(t, userID),
		Role:       role,
		InvitedAt:  now,
		AcceptedAt: &now,
	}
	require.NoError(t, bh.server.MembershipRepo.Create(context.Background(), member), "failed to seed membership")
}

// SwitchTo makes businessID the current business of the token's account.
func (bh *BusinessHelper) SwitchTo(t *testing.T, token, businessID string) {
	t.Helper()

	req := models.SwitchBusinessRequest{BusinessID: businessID}
	w := testutil.MakeAuthRequest(t, bh.server.Router, http.MethodPut, "/api/v1/me/business", token, req)
	require.Equal(t, http.StatusOK, w.Code, "switch business should return 200, got: %s", w.Body.String())
}

// MemberWithRole registers an account, seeds it into businessID with role
// and selects that business. It returns the account id and token.
func (bh *BusinessHelper) MemberWithRole(t *testing.T, businessID, role string) (userID, token string) {
	t.Helper()

	userID, token = NewAuthHelper(bh.server).CreateAuthenticatedUser(t, role+" user", role+"."+businessID+"@example.com")
	bh.SeedMember(t, businessID, userID, role)
	bh.SwitchTo(t, token, businessID)
	return userID, token
}

// ParseResponseData converts a decoded payload into T.
func ParseResponseData[T any](t *testing.T, data map[string]interface{}) T {
	t.Helper()

	raw, err := json.Marshal(data)
	require.NoError(t, err, "failed to marshal response data")

	var result T
	require.NoError(t, json.Unmarshal(raw, &result), "failed to unmarshal response data")
	return result
}

// GetIDFromResponse extracts the id of a payload, looking inside the nested
// account object of auth responses.
func GetIDFromResponse(t *testing.T, data map[string]interface{}) string {
	t.Helper()

	if id, ok := data["id"].(string); ok {
		return id
	}
	if account, ok := data["account"].(map[string]interface{}); ok {
		if id, ok := account["id"].(string); ok {
			return id
		}
	}

	t.Fatal("id should be a string in response data (checked: id, account.id)")
	return ""
}

func mustObjectID(t *testing.T, hex string) primitive.ObjectID {
	t.Helper()

	oid, err := primitive.ObjectIDFromHex(hex)
	require.NoError(t, err, "invalid object id %q", hex)
	return oid
}
