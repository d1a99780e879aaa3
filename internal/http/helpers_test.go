package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"proximity-ai/internal/repository"
	"proximity-ai/internal/service"
)

const testIndexHTML = "<!DOCTYPE html>\n<html><body><h1>Proximity AI</h1></body></html>\n"

type testEnv struct {
	router  *gin.Engine
	logPath string
	dir     string
}

func setupRouter(t *testing.T) testEnv {
	t.Helper()
	dir := t.TempDir()
	staticDir := filepath.Join(dir, "web")
	if err := os.MkdirAll(staticDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(staticDir, "index.html"), []byte(testIndexHTML), 0o644); err != nil {
		t.Fatalf("write index: %v", err)
	}
	if err := os.WriteFile(filepath.Join(staticDir, "script.js"), []byte("console.log('ok');\n"), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}
	logPath := filepath.Join(dir, "email_log.txt")
	return testEnv{
		router:  newTestRouter(logPath, staticDir),
		logPath: logPath,
		dir:     staticDir,
	}
}

func newTestRouter(logPath, staticDir string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()
	responses := service.NewDefaultResponseService()
	transcripts := service.NewTranscriptService(logger, repository.NewFileTranscriptRepository(logPath))
	return NewRouter(
		logger,
		NewChatHandler(logger, responses),
		NewTranscriptHandler(logger, transcripts),
		NewStaticHandler(logger, staticDir, "index.html"),
	)
}

func performRequest(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var payload []byte
	if body != nil {
		payload, _ = json.Marshal(body)
	}
	return performRawRequest(r, method, path, payload)
}

func performRawRequest(r http.Handler, method, path string, payload []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var out map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
	return out
}
