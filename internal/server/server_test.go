package server

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tabsynth/tabsynth/pkg/config"
	"github.com/tabsynth/tabsynth/pkg/engine"
	"github.com/tabsynth/tabsynth/pkg/json"
)

func testServer(t *testing.T) *Server {
	t.Helper()

	cfg := config.NewServiceConfig()
	cfg.Storage.OutputDir = t.TempDir()
	cfg.Storage.UploadDir = t.TempDir()
	cfg.Observability.EnableMetrics = false

	log := zap.NewNop()
	eng := engine.New(cfg.Generation, log, engine.WithMetrics(false))
	return New(cfg, eng, log)
}

func do(s *Server, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.http.Handler.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	s := testServer(t)

	rec := do(s, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestGenerateEndpoint(t *testing.T) {
	s := testServer(t)

	payload := `{"request": "Generate 20 customer records"}`
	req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	rec := do(s, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var body generateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "customer", body.Intent)
	assert.Equal(t, 20, body.RecordsGenerated)
	assert.Contains(t, body.Filename, "synthetic_data_20_records_")
}

func TestGenerateEndpointBadBody(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader("{not json"))
	rec := do(s, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "validation", body.Type)
}

func TestGenerateEndpointWithSchema(t *testing.T) {
	s := testServer(t)

	payload := `{"request": "5 rows of bespoke data", "schema": {"code": "string", "total": "float"}}`
	req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(payload))

	rec := do(s, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var body generateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "custom_schema", body.Intent)
	assert.Equal(t, 5, body.RecordsGenerated)
}

func uploadRequest(t *testing.T, csvBody, request string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fw, err := mw.CreateFormFile("file", "sample.csv")
	require.NoError(t, err)
	_, err = fw.Write([]byte(csvBody))
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("request", request))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestUploadEndpoint(t *testing.T) {
	s := testServer(t)

	csvBody := "city,age\nNY,30\nLA,45\nNY,22\n"
	rec := do(s, uploadRequest(t, csvBody, "generate 15 more like this"))
	require.Equal(t, http.StatusOK, rec.Code)

	var body generateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "profile_conditioned", body.Intent)
	assert.Equal(t, 15, body.RecordsGenerated)
}

func TestUploadEndpointEmptyFileFallsBack(t *testing.T) {
	s := testServer(t)

	// An unprofilable sample degrades to template generation per the text.
	rec := do(s, uploadRequest(t, "", "generate 10 customer records"))
	require.Equal(t, http.StatusOK, rec.Code)

	var body generateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "customer", body.Intent)
	assert.Equal(t, 10, body.RecordsGenerated)
}

func TestUploadEndpointMissingFile(t *testing.T) {
	s := testServer(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("request", "customers"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	rec := do(s, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDownloadAndPreviewEndpoints(t *testing.T) {
	s := testServer(t)

	// Generate a file first.
	req := httptest.NewRequest(http.MethodPost, "/generate",
		strings.NewReader(`{"request": "8 customer records"}`))
	rec := do(s, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var gen generateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &gen))

	t.Run("download", func(t *testing.T) {
		rec := do(s, httptest.NewRequest(http.MethodGet, "/download/"+gen.Filename, nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Disposition"), gen.Filename)
		assert.Contains(t, rec.Body.String(), "customer_id")
	})

	t.Run("preview", func(t *testing.T) {
		rec := do(s, httptest.NewRequest(http.MethodGet, "/preview/"+gen.Filename, nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Success bool       `json:"success"`
			Columns []string   `json:"columns"`
			Rows    [][]string `json:"rows"`
			Total   int        `json:"total"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.Contains(t, body.Columns, "customer_id")
		assert.Len(t, body.Rows, 5, "preview is capped at 5 rows")
		assert.Equal(t, 8, body.Total)
	})

	t.Run("download missing file", func(t *testing.T) {
		rec := do(s, httptest.NewRequest(http.MethodGet, "/download/nope.csv", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("path traversal rejected", func(t *testing.T) {
		rec := do(s, httptest.NewRequest(http.MethodGet, "/preview/..%2Fsecret", nil))
		assert.NotEqual(t, http.StatusOK, rec.Code)
	})
}
