package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"artifact-approval-service/internal/core/domain"
	"artifact-approval-service/internal/core/services"
	"artifact-approval-service/internal/testutil"
)

// setupApprovalRouter wires the engine over the in-memory fakes so decide
// flows run end to end through the HTTP layer.
func setupApprovalRouter() (*testutil.FakeVersionStore, *testutil.FakeDecisionLedger, *gin.Engine) {
	gin.SetMode(gin.TestMode)
	ledger := testutil.NewFakeDecisionLedger()
	store := testutil.NewFakeVersionStore(ledger)

	artifactRepo := new(testutil.MockArtifactRepo)
	versionSvc := services.NewArtifactVersionService(store, artifactRepo)
	approvalSvc := services.NewApprovalService(store, ledger)

	h := New(nil, nil, versionSvc, approvalSvc, nil)
	r := gin.New()
	api := r.Group("/api")
	h.RegisterRoutes(api)

	return store, ledger, r
}

func seedVersion(t *testing.T, store *testutil.FakeVersionStore) *domain.ArtifactVersion {
	t.Helper()
	version := &domain.ArtifactVersion{
		ID: uuid.New(), ArtifactID: uuid.New(),
		CreatedAt: time.Now(), UpdatedAt: time.Now(),
		URL: "https://cdn.example.com/banner-v1.png", SubmittedBy: "designer@x.com",
	}
	assert.NoError(t, store.Create(context.Background(), version))
	return version
}

func postJSON(r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req, _ := http.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func getJSON(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestApproveThenReject_Conflict(t *testing.T) {
	store, ledger, r := setupApprovalRouter()
	version := seedVersion(t, store)

	w := postJSON(r, "/api/artifact-versions/"+version.ID.String()+"/approve", gin.H{
		"decided_by": "client@x.com",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "APPROVED", resp["status"])
	decision := resp["decision"].(map[string]interface{})
	assert.Equal(t, "APPROVE", decision["decision"])
	assert.Equal(t, "client@x.com", decision["decided_by"])

	// Rejecting afterward conflicts and changes nothing.
	w = postJSON(r, "/api/artifact-versions/"+version.ID.String()+"/reject", gin.H{
		"decided_by": "other@x.com",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, 1, ledger.Count())

	w = getJSON(r, "/api/artifact-versions/"+version.ID.String())
	assert.Equal(t, http.StatusOK, w.Code)
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "APPROVED", resp["status"])
}

func TestRejectThenApprove_Conflict(t *testing.T) {
	store, _, r := setupApprovalRouter()
	version := seedVersion(t, store)

	w := postJSON(r, "/api/artifact-versions/"+version.ID.String()+"/reject", gin.H{
		"decided_by": "client@x.com",
		"reason":     "bad colors",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "REJECTED", resp["status"])
	decision := resp["decision"].(map[string]interface{})
	assert.Equal(t, "bad colors", decision["reason"])

	w = postJSON(r, "/api/artifact-versions/"+version.ID.String()+"/approve", gin.H{
		"decided_by": "client@x.com",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestApprove_MissingDecidedBy(t *testing.T) {
	store, ledger, r := setupApprovalRouter()
	version := seedVersion(t, store)

	w := postJSON(r, "/api/artifact-versions/"+version.ID.String()+"/approve", gin.H{
		"decided_by": "",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Contains(t, resp["error"], "decided_by is required")

	// No decision row was created; the version still awaits approval.
	assert.Equal(t, 0, ledger.Count())
	w = getJSON(r, "/api/artifact-versions/"+version.ID.String())
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "AWAITING_APPROVAL", resp["status"])
	assert.Nil(t, resp["decision"])
}

func TestApprove_UnknownVersion(t *testing.T) {
	_, _, r := setupApprovalRouter()

	w := postJSON(r, "/api/artifact-versions/"+uuid.NewString()+"/approve", gin.H{
		"decided_by": "client@x.com",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestApprove_MalformedVersionID(t *testing.T) {
	_, _, r := setupApprovalRouter()

	w := postJSON(r, "/api/artifact-versions/not-a-uuid/approve", gin.H{
		"decided_by": "client@x.com",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// Repeated GETs of a decided version return an identical body.
func TestGetDecidedVersion_Idempotent(t *testing.T) {
	store, _, r := setupApprovalRouter()
	version := seedVersion(t, store)

	w := postJSON(r, "/api/artifact-versions/"+version.ID.String()+"/approve", gin.H{
		"decided_by": "client@x.com",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	first := getJSON(r, "/api/artifact-versions/"+version.ID.String())
	assert.Equal(t, http.StatusOK, first.Code)

	for i := 0; i < 3; i++ {
		again := getJSON(r, "/api/artifact-versions/"+version.ID.String())
		assert.Equal(t, first.Body.String(), again.Body.String())
	}
}
