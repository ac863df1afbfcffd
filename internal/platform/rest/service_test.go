package rest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingServer captures the last request for assertions.
type recordingServer struct {
	*httptest.Server
	method string
	path   string
	query  url.Values
	body   []byte
}

func newRecordingServer(t *testing.T, status int, response string) *recordingServer {
	t.Helper()
	rec := &recordingServer{}
	rec.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.query = r.URL.Query()
		rec.body, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(response))
	}))
	t.Cleanup(rec.Close)
	return rec
}

func TestCallSubstitutesPlaceholdersFromObjectPayload(t *testing.T) {
	srv := newRecordingServer(t, 200, `{"id":42,"status":"ACCEPTED"}`)
	svc := NewService(NewClient(srv.URL), "/invitations", Definition{
		"accept": {Verb: POST, Path: ":id/accept"},
	})

	_, err := svc.Call(context.Background(), "accept", map[string]any{"id": 42}, nil)
	require.NoError(t, err)
	assert.Equal(t, "/invitations/42/accept", srv.path)
	assert.Equal(t, http.MethodPost, srv.method)
}

func TestCallScalarPayloadFillsID(t *testing.T) {
	srv := newRecordingServer(t, 200, `{"id":42}`)
	svc := NewService(NewClient(srv.URL), "/organizations", Definition{
		"getById": {Verb: GET, Path: ":id"},
	})

	_, err := svc.Call(context.Background(), "getById", 42, nil)
	require.NoError(t, err)
	assert.Equal(t, "/organizations/42", srv.path)
	assert.Empty(t, srv.body)
}

func TestCallStripsIDFromNonPostBodies(t *testing.T) {
	srv := newRecordingServer(t, 200, `{"id":7}`)
	svc := NewService(NewClient(srv.URL), "/projects", Definition{
		"update": {Verb: PUT, Path: ":id"},
	})

	payload := map[string]any{"id": 7, "name": "Renamed"}
	_, err := svc.Call(context.Background(), "update", payload, nil)
	require.NoError(t, err)
	assert.Equal(t, "/projects/7", srv.path)

	var sent map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(srv.body, &sent))
	assert.NotContains(t, sent, "id")
	assert.Contains(t, sent, "name")
}

func TestCallKeepsIDInPostBodies(t *testing.T) {
	srv := newRecordingServer(t, 201, `{"id":8}`)
	svc := NewService(NewClient(srv.URL), "/invitations", Definition{
		"accept": {Verb: POST, Path: ":id/accept"},
	})

	_, err := svc.Call(context.Background(), "accept", map[string]any{"id": 8}, nil)
	require.NoError(t, err)

	var sent map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(srv.body, &sent))
	assert.Contains(t, sent, "id")
}

func TestCallFullPathRootsAtAPIBase(t *testing.T) {
	srv := newRecordingServer(t, 200, `[]`)
	svc := NewService(NewClient(srv.URL), "/organizations", Definition{
		"getByPersonId": {Verb: GET, Path: "persons/:personId/organizations", FullPath: true},
	})

	_, err := svc.Call(context.Background(), "getByPersonId", map[string]any{"personId": 5}, nil)
	require.NoError(t, err)
	assert.Equal(t, "/persons/5/organizations", srv.path)
}

func TestCallAppendsQueryParameters(t *testing.T) {
	srv := newRecordingServer(t, 200, `[]`)
	svc := NewService(NewClient(srv.URL), "/members", Definition{
		"getAll": {Verb: GET},
	})

	query := url.Values{"organizationId": {"3"}}
	_, err := svc.Call(context.Background(), "getAll", nil, query)
	require.NoError(t, err)
	assert.Equal(t, "/members", srv.path)
	assert.Equal(t, "3", srv.query.Get("organizationId"))
}

func TestCallUnresolvedPlaceholderPassesThrough(t *testing.T) {
	srv := newRecordingServer(t, 404, `{"message":"not found"}`)
	svc := NewService(NewClient(srv.URL), "/projects", Definition{
		"getById": {Verb: GET, Path: ":id"},
	})

	_, err := svc.Call(context.Background(), "getById", map[string]any{"name": "x"}, nil)
	require.Error(t, err)
	assert.Equal(t, "/projects/:id", srv.path)
}

func TestCallUnknownOperation(t *testing.T) {
	svc := NewService(NewClient("http://localhost:1"), "/projects", Definition{
		"getAll": {Verb: GET},
	})
	_, err := svc.Call(context.Background(), "nope", nil, nil)
	assert.Error(t, err)
}

func TestCallRejectsArrayPayload(t *testing.T) {
	svc := NewService(NewClient("http://localhost:1"), "/projects", Definition{
		"create": {Verb: POST},
	})
	_, err := svc.Call(context.Background(), "create", []int{1, 2}, nil)
	assert.Error(t, err)
}

func TestNewServicePanicsOnMalformedTable(t *testing.T) {
	client := NewClient("http://localhost:1")

	assert.Panics(t, func() { NewService(nil, "/projects", nil) })
	assert.Panics(t, func() { NewService(client, "", nil) })
	assert.Panics(t, func() { NewService(client, "/projects", Definition{"": {Verb: GET}}) })
	assert.Panics(t, func() { NewService(client, "/projects", Definition{"bad": {Verb: "FETCH"}}) })
}
