//go:build api

package api

import (
	"context"
	"net/http"
	"testing"

	"bizsuite/internal/models"
	"bizsuite/test/api/testserver"
	"bizsuite/test/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createRecord(t *testing.T, token, collection, title string) string {
	t.Helper()

	req := models.CreateRecordRequest{Title: title, Status: "new"}
	w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/"+collection, token, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return testserver.GetIDFromResponse(t, testutil.ParseAPIResponse(t, w).Data)
}

func TestLeadLifecycle(t *testing.T) {
	testServer.CleanupBetweenTests(t)
	auth := testserver.NewAuthHelper(testServer)
	businesses := testserver.NewBusinessHelper(testServer)
	_, ownerToken := auth.CreateAuthenticatedUser(t, "Owner", "owner@example.com")
	businessID := businesses.CreateBusiness(t, ownerToken, "Sardor Textiles", "sardor-textiles")
	_, marketerToken := businesses.MemberWithRole(t, businessID, "marketer")

	leadID := createRecord(t, marketerToken, "leads", "Dilnoza - wholesale inquiry")
	leadPath := "/api/v1/leads/" + leadID

	t.Run("get", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, leadPath, marketerToken, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		data := testutil.ParseAPIResponse(t, w).Data
		assert.Equal(t, "lead", data["kind"])
		assert.Equal(t, businessID, data["businessId"])
	})

	t.Run("list", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/leads?status=new", ownerToken, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		list := testserver.ParseResponseData[models.RecordListResponse](t, testutil.ParseAPIResponse(t, w).Data)
		assert.Len(t, list.Items, 1)
	})

	t.Run("update", func(t *testing.T) {
		status := "contacted"
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPut, leadPath, marketerToken, models.UpdateRecordRequest{Status: &status})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "contacted", testutil.ParseAPIResponse(t, w).Data["status"])
	})

	t.Run("delete", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodDelete, leadPath, marketerToken, nil)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		w = testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, leadPath, marketerToken, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRecordTenantIsolation(t *testing.T) {
	testServer.CleanupBetweenTests(t)
	auth := testserver.NewAuthHelper(testServer)
	businesses := testserver.NewBusinessHelper(testServer)
	_, ownerA := auth.CreateAuthenticatedUser(t, "Owner A", "a@example.com")
	_, ownerB := auth.CreateAuthenticatedUser(t, "Owner B", "b@example.com")
	businesses.CreateBusiness(t, ownerA, "Shop A", "shop-a")
	businesses.CreateBusiness(t, ownerB, "Shop B", "shop-b")

	leadID := createRecord(t, ownerA, "leads", "A's lead")

	t.Run("foreign record is forbidden", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/leads/"+leadID, ownerB, nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("foreign list is empty", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/leads", ownerB, nil)
		require.Equal(t, http.StatusOK, w.Code)
		list := testserver.ParseResponseData[models.RecordListResponse](t, testutil.ParseAPIResponse(t, w).Data)
		assert.Empty(t, list.Items)
	})

	t.Run("no current business is forbidden", func(t *testing.T) {
		_, loner := auth.CreateAuthenticatedUser(t, "Loner", "loner@example.com")
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/leads", loner, nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestLeadManagement(t *testing.T) {
	testServer.CleanupBetweenTests(t)
	auth := testserver.NewAuthHelper(testServer)
	businesses := testserver.NewBusinessHelper(testServer)
	_, ownerToken := auth.CreateAuthenticatedUser(t, "Owner", "owner@example.com")
	businessID := businesses.CreateBusiness(t, ownerToken, "Sardor Textiles", "sardor-textiles")
	_, marketerToken := businesses.MemberWithRole(t, businessID, "marketer")
	salesID, salesToken := businesses.MemberWithRole(t, businessID, "sales_head")
	outsiderID, _ := auth.CreateAuthenticatedUser(t, "Outsider", "outsider@example.com")

	leadID := createRecord(t, marketerToken, "leads", "Bekzod - retail")
	assignPath := "/api/v1/leads/" + leadID + "/assign"

	t.Run("marketer cannot assign", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, assignPath, marketerToken, models.AssignRecordRequest{AssigneeID: salesID})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("assignee must be a member", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, assignPath, salesToken, models.AssignRecordRequest{AssigneeID: outsiderID})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("sales head assigns", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, assignPath, salesToken, models.AssignRecordRequest{AssigneeID: salesID})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, salesID, testutil.ParseAPIResponse(t, w).Data["assigneeId"])
	})

	t.Run("import and bulk update", func(t *testing.T) {
		imp := models.ImportRecordsRequest{Items: []models.CreateRecordRequest{{Title: "One"}, {Title: "Two"}}}
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/leads/import", salesToken, imp)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		assert.Equal(t, float64(2), testutil.ParseAPIResponse(t, w).Data["count"])

		bulk := models.BulkUpdateRequest{IDs: []string{leadID}, Status: "qualified"}
		w = testutil.MakeAuthRequest(t, testServer.Router, http.MethodPut, "/api/v1/leads/bulk", salesToken, bulk)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, float64(1), testutil.ParseAPIResponse(t, w).Data["count"])
	})

	t.Run("marketer cannot export", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/leads/export", marketerToken, nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("export uploads a csv", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/leads/export", salesToken, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		data := testutil.ParseAPIResponse(t, w).Data
		assert.Equal(t, float64(3), data["count"])
		assert.Contains(t, data["url"], testServer.MinIO.Endpoint)

		n, err := testServer.MinIO.CountObjects(context.Background(), "exports/"+businessID+"/")
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})
}

func TestOfferPublishing(t *testing.T) {
	testServer.CleanupBetweenTests(t)
	auth := testserver.NewAuthHelper(testServer)
	businesses := testserver.NewBusinessHelper(testServer)
	_, ownerToken := auth.CreateAuthenticatedUser(t, "Owner", "owner@example.com")
	businessID := businesses.CreateBusiness(t, ownerToken, "Sardor Textiles", "sardor-textiles")
	_, marketerToken := businesses.MemberWithRole(t, businessID, "marketer")
	_, financeToken := businesses.MemberWithRole(t, businessID, "finance")

	offerID := createRecord(t, financeToken, "offers", "Spring discount")
	offerPath := "/api/v1/offers/" + offerID

	t.Run("finance cannot publish", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, offerPath+"/publish", financeToken, nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("marketer publishes", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, offerPath+"/publish", marketerToken, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, true, testutil.ParseAPIResponse(t, w).Data["published"])
	})

	t.Run("finance duplicates", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, offerPath+"/duplicate", financeToken, nil)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		data := testutil.ParseAPIResponse(t, w).Data
		assert.NotEqual(t, offerID, data["id"])
		assert.Equal(t, false, data["published"])
	})
}
