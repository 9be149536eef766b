package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	srv, err := New(Config{Port: 0})
	require.NoError(t, err)
	return srv
}

func doRequest(t *testing.T, srv *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = &bytes.Buffer{}
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rec, req)
	return rec
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(t, srv, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHandleClassify_JobText(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(t, srv, http.MethodPost, "/classify", ClassifyRequest{
		JobText: "Android Developer, Kotlin, Android SDK, AOSP",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp ClassifyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Result)
	assert.Equal(t, "android_developer", resp.Result.BestCategory)
	assert.Greater(t, resp.Result.Confidence, 0.0)
	assert.Empty(t, resp.Fallback)
}

func TestHandleClassify_NoEvidenceSuggestsFallback(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(t, srv, http.MethodPost, "/classify", ClassifyRequest{
		JobText: "vi söker en trevlig kollega",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp ClassifyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "", resp.Result.BestCategory)
	assert.Equal(t, 0.0, resp.Result.Confidence)
	assert.Equal(t, "devops_cloud", resp.Fallback)
}

func TestHandleClassify_MissingBodyFields(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(t, srv, http.MethodPost, "/classify", ClassifyRequest{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "job_text or job_url")
}

func TestHandleClassify_MutuallyExclusiveFields(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(t, srv, http.MethodPost, "/classify", ClassifyRequest{
		JobText: "android",
		JobURL:  "https://example.com/job",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "mutually exclusive")
}

func TestHandleClassify_InvalidURL(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(t, srv, http.MethodPost, "/classify", ClassifyRequest{
		JobURL: "not a url",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleClassify_MalformedJSON(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/classify", bytes.NewBufferString("{broken"))
	rec := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleListCategories(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(t, srv, http.MethodGet, "/categories", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var categories []CategoryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &categories))
	require.NotEmpty(t, categories)

	keys := make([]string, len(categories))
	for i, cat := range categories {
		keys[i] = cat.Key
		assert.Greater(t, cat.Priority, 0)
		assert.NotEmpty(t, cat.Templates.CV)
	}
	assert.Contains(t, keys, "android_developer")
	assert.Contains(t, keys, "devops_cloud")
}

func TestHandleGetCategory(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(t, srv, http.MethodGet, "/categories/android_developer", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var cat CategoryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cat))
	assert.Equal(t, "android_developer", cat.Key)
	assert.NotEmpty(t, cat.Keywords)
}

func TestHandleGetCategory_Unknown(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(t, srv, http.MethodGet, "/categories/astronaut", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCORSHeaders(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(t, srv, http.MethodGet, "/health", nil)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
