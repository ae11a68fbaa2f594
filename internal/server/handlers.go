package server

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"go.uber.org/zap"

	"github.com/tabsynth/tabsynth/internal/fileio"
	"github.com/tabsynth/tabsynth/pkg/engine"
	"github.com/tabsynth/tabsynth/pkg/errors"
	"github.com/tabsynth/tabsynth/pkg/json"
	"github.com/tabsynth/tabsynth/pkg/logger"
	"github.com/tabsynth/tabsynth/pkg/metrics"
	"github.com/tabsynth/tabsynth/pkg/profile"
	"github.com/tabsynth/tabsynth/pkg/sample"
)

// generateRequest is the JSON body of POST /generate.
type generateRequest struct {
	Request string            `json:"request"`
	Records int               `json:"records,omitempty"`
	Schema  map[string]string `json:"schema,omitempty"`
	Seed    int64             `json:"seed,omitempty"`
}

// generateResponse is the JSON body of a successful generation.
type generateResponse struct {
	Success          bool   `json:"success"`
	Intent           string `json:"intent"`
	RecordsGenerated int    `json:"records_generated"`
	Filename         string `json:"filename"`
}

// errorResponse is the JSON body of a failed request.
type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Type    string `json:"type"`
}

// previewRows caps how many data rows the preview endpoint returns.
const previewRows = 5

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, errors.Wrap(err, errors.ErrorTypeValidation, "invalid request body"))
		return
	}

	s.generateAndRespond(w, r, engine.Request{
		Text:      req.Request,
		CountHint: req.Records,
		Schema:    req.Schema,
		Seed:      req.Seed,
	})
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Server.MaxUploadBytes)
	if err := r.ParseMultipartForm(s.cfg.Server.MaxUploadBytes); err != nil {
		s.writeError(w, r, errors.Wrap(err, errors.ErrorTypeValidation, "invalid multipart upload"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.writeError(w, r, errors.Wrap(err, errors.ErrorTypeValidation, "missing uploaded file"))
		return
	}
	defer file.Close()

	metrics.UploadBytes.Observe(float64(header.Size))

	data, err := io.ReadAll(file)
	if err != nil {
		s.writeError(w, r, errors.Wrap(err, errors.ErrorTypeFile, "failed to read uploaded file"))
		return
	}

	if err := s.persistUpload(header.Filename, data); err != nil {
		// Keeping the raw upload is best-effort; the request proceeds.
		logger.WithContext(r.Context()).Warn("failed to persist upload", zap.Error(err))
	}

	req := engine.Request{
		Text:      r.FormValue("request"),
		CountHint: parseRecords(r.FormValue("records")),
	}

	// Learn a pattern profile from the sample. Profiling failures fall back
	// to template generation instead of failing the request.
	if p, err := s.buildProfile(data); err != nil {
		metrics.ProfilesBuilt.WithLabelValues("failure").Inc()
		logger.WithContext(r.Context()).Warn("profile build failed, falling back to template generation",
			zap.Error(err))
	} else {
		metrics.ProfilesBuilt.WithLabelValues("success").Inc()
		req.Profile = p
	}

	s.generateAndRespond(w, r, req)
}

// buildProfile decodes the uploaded CSV bytes and learns a pattern profile.
func (s *Server) buildProfile(data []byte) (*profile.PatternProfile, error) {
	table, err := fileio.ReadCSV(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return profile.Build(table)
}

// generateAndRespond runs the pipeline and writes the output dataset.
func (s *Server) generateAndRespond(w http.ResponseWriter, r *http.Request, req engine.Request) {
	ctx, cancel := s.requestContext(r)
	defer cancel()

	table, resolved, err := s.engine.Generate(ctx, req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	filename, err := fileio.WriteFile(s.cfg.Storage.OutputDir, table, s.cfg.Storage.Compression)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, generateResponse{
		Success:          true,
		Intent:           string(resolved.Type),
		RecordsGenerated: table.NumRows(),
		Filename:         filename,
	})
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	path, err := s.outputPath(r.PathValue("filename"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="`+filepath.Base(path)+`"`)
	http.ServeFile(w, r, path)
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	path, err := s.outputPath(r.PathValue("filename"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	table, err := s.readOutput(path)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"columns": table.Columns,
		"rows":    renderRows(table, previewRows),
		"total":   table.NumRows(),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// outputPath validates a user-supplied file name and resolves it inside the
// output directory. Path traversal is rejected.
func (s *Server) outputPath(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", errors.New(errors.ErrorTypeValidation, "invalid file name")
	}

	path := filepath.Join(s.cfg.Storage.OutputDir, name)
	if _, err := os.Stat(path); err != nil {
		return "", errors.Wrap(err, errors.ErrorTypeFile, "dataset not found")
	}
	return path, nil
}

// readOutput opens a stored dataset, transparently decompressing by
// extension, and decodes it back into a table.
func (s *Server) readOutput(path string) (*sample.Table, error) {
	file, err := os.Open(path) //nolint:gosec // G304: path validated by outputPath
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeFile, "failed to open dataset")
	}
	defer file.Close()

	var reader io.Reader = file
	switch filepath.Ext(path) {
	case ".gz":
		gz, err := gzip.NewReader(file)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeFile, "failed to open gzip stream")
		}
		defer gz.Close()
		reader = gz
	case ".zst":
		zr, err := zstd.NewReader(file)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeFile, "failed to open zstd stream")
		}
		defer zr.Close()
		reader = zr.IOReadCloser()
	}

	return fileio.ReadCSV(reader)
}

// persistUpload stores the raw uploaded bytes for later inspection.
func (s *Server) persistUpload(original string, data []byte) error {
	if s.cfg.Storage.UploadDir == "" {
		return nil
	}
	if err := os.MkdirAll(s.cfg.Storage.UploadDir, 0750); err != nil {
		return err
	}
	name := uuid.NewString()[:8] + "_" + filepath.Base(original)
	return os.WriteFile(filepath.Join(s.cfg.Storage.UploadDir, name), data, 0640)
}

// requestContext bounds one pipeline run with the configured timeout.
func (s *Server) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	if s.cfg.Generation.Timeout <= 0 {
		return context.WithCancel(r.Context())
	}
	return context.WithTimeout(r.Context(), s.cfg.Generation.Timeout)
}

// renderRows renders up to n leading rows in column order as text cells.
func renderRows(table *sample.Table, n int) [][]string {
	head := table.Head(n)
	rendered := make([][]string, len(head))
	for i, row := range head {
		cells := make([]string, len(table.Columns))
		for j, col := range table.Columns {
			cells[j] = sample.FormatValue(row[col])
		}
		rendered[i] = cells
	}
	return rendered
}

func parseRecords(s string) int {
	n := 0
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			return 0
		}
		n = n*10 + int(ch-'0')
		if n > 1<<30 {
			return 1 << 30
		}
	}
	return n
}

// writeJSON writes a JSON response with the given status.
func (s *Server) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

// writeError translates a component error into a JSON error payload with a
// non-success status code.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(errors.TypeOf(err))
	logger.WithContext(r.Context()).Error("request failed",
		zap.String("error_type", string(errors.TypeOf(err))),
		zap.Int("status", status),
		zap.Error(err))

	s.writeJSON(w, status, errorResponse{
		Success: false,
		Error:   err.Error(),
		Type:    string(errors.TypeOf(err)),
	})
}

// statusFor maps the error taxonomy to HTTP status codes.
func statusFor(t errors.ErrorType) int {
	switch t {
	case errors.ErrorTypeValidation, errors.ErrorTypeSchemaRequired,
		errors.ErrorTypeEmptySample, errors.ErrorTypeProfile,
		errors.ErrorTypeUnsupportedColumn:
		return http.StatusBadRequest
	case errors.ErrorTypeFile:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
