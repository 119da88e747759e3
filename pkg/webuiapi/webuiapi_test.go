package webuiapi_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/openoperator/webui-bridge/pkg/webuiapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *webuiapi.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return webuiapi.New(srv.URL)
}

func TestHealth(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/health", r.URL.Path)
		fmt.Fprint(w, `{"status":"ok"}`)
	})

	st, err := c.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", st.Status)
}

func TestHealth_Down(t *testing.T) {
	c := webuiapi.New("http://127.0.0.1:1")

	_, err := c.Health(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "webuiapi: health")
}

func TestRunAgent(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/run_agent", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "open example.com", body["task"])
		assert.Equal(t, "session-42", body["sessionId"])

		fmt.Fprint(w, `{"result":"opened","output":"page loaded","thinking":"navigating"}`)
	})

	res, err := c.RunAgent(context.Background(), "open example.com", "session-42")
	require.NoError(t, err)
	assert.Equal(t, "opened", res.Result)
	assert.Equal(t, "page loaded", res.Output)
	assert.Equal(t, "navigating", res.Thinking)
}

func TestRunAgent_ErrorField(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"error":"no session"}`)
	})

	_, err := c.RunAgent(context.Background(), "task", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no session")
}

func TestRunAgent_BadStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "teapot", http.StatusTeapot)
	})

	_, err := c.RunAgent(context.Background(), "task", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 418")
}
