package mockapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store := NewStore()
	store.Seed(SeedData())
	return BuildRouter(RouterDeps{Store: store, Environment: "test", Version: "test"})
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)
	rec := doJSON(t, r, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestListAndGetSeededPersons(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/persons", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var persons []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &persons))
	assert.Len(t, persons, 2)

	rec = doJSON(t, r, http.MethodGet, "/persons/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var person map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &person))
	assert.Equal(t, "Luis", person["name"])

	rec = doJSON(t, r, http.MethodGet, "/persons/99", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPrefixedRoutesServeTheSameData(t *testing.T) {
	r := newTestRouter(t)
	rec := doJSON(t, r, http.MethodGet, "/api/v1/organizations/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var org map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &org))
	assert.Equal(t, "20123456789", org["ruc"])
}

func TestQueryFilterOnList(t *testing.T) {
	r := newTestRouter(t)
	rec := doJSON(t, r, http.MethodGet, "/accounts?email=luis.paredes@propgms.dev&password=secret123", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var accounts []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &accounts))
	require.Len(t, accounts, 1)
	assert.Equal(t, float64(1), accounts[0]["id"])
}

func TestCreateAssignsID(t *testing.T) {
	r := newTestRouter(t)
	rec := doJSON(t, r, http.MethodPost, "/persons", `{"name":"Ana","lastName":"Quispe","email":"ana@propgms.dev"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	// Seed tops out at id 2, so the next insert gets 3.
	assert.Equal(t, float64(3), created["id"])
}

func TestPatchMergesAndProtectsID(t *testing.T) {
	r := newTestRouter(t)
	rec := doJSON(t, r, http.MethodPatch, "/persons/1", `{"id": 77, "phone": "+51 900 000 000"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var updated map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, float64(1), updated["id"])
	assert.Equal(t, "+51 900 000 000", updated["phone"])
	assert.Equal(t, "Luis", updated["name"])
}

func TestDelete(t *testing.T) {
	r := newTestRouter(t)
	rec := doJSON(t, r, http.MethodDelete, "/tasks/1", `{}`)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(t, r, http.MethodGet, "/tasks/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAcceptInvitation(t *testing.T) {
	r := newTestRouter(t)
	rec := doJSON(t, r, http.MethodPost, "/invitations/1/accept", `{"id": 1}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var inv map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &inv))
	assert.Equal(t, "ACCEPTED", inv["status"])
	assert.NotEmpty(t, inv["acceptedAt"])
}

func TestPersonOrganizationsResolvesMemberships(t *testing.T) {
	r := newTestRouter(t)
	rec := doJSON(t, r, http.MethodGet, "/persons/1/organizations", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var orgs []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orgs))
	require.Len(t, orgs, 1)
	assert.Equal(t, "Constructora Andina S.A.C.", orgs[0]["legalName"])
}

func TestProjectTeamSubresource(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/projects/1/team", `{"role":"SPECIALIST","specialty":"STRUCTURAL","memberId":1}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var member map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &member))
	assert.Equal(t, float64(1), member["projectId"])

	rec = doJSON(t, r, http.MethodGet, "/projects/1/team", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var team []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &team))
	require.Len(t, team, 1)

	memberID := int(team[0]["id"].(float64))
	rec = doJSON(t, r, http.MethodDelete, "/projects/1/team/"+strconv.Itoa(memberID), `{}`)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestChangeProcessRoutes(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/change-process/by-project-id/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var processes []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &processes))
	require.Len(t, processes, 1)
	assert.Equal(t, "PENDING", processes[0]["status"])

	rec = doJSON(t, r, http.MethodPost, "/change-process/by-project-id/1", `{"justification":"Move the lobby entrance","requestedBy":2}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, float64(1), created["projectId"])
	assert.Equal(t, "PENDING", created["status"])
	assert.NotEmpty(t, created["createdAt"])

	rec = doJSON(t, r, http.MethodPatch, "/change-process/1", `{"status":"APPROVED","response":"approved"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var updated map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "APPROVED", updated["status"])
}

func TestTotalTaskBudget(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/tasks", `{"name":"Rebar detailing","specialty":"STRUCTURAL","milestoneId":1,"budget":5000}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/projects/1/total-task-budget", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	budget, ok := body["totalTaskBudget"].(map[string]any)
	require.True(t, ok)
	// Seeded task carries 15000 PEN; the bare-number task adds 5000.
	assert.Equal(t, "20000", budget["amount"])
	assert.Equal(t, "PEN", budget["currency"])
}
