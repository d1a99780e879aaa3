package http

import (
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"golang.org/x/sync/errgroup"

	"proximity-ai/internal/domain"
)

var timestampLine = regexp.MustCompile(`(?m)^Timestamp: \d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`)

func TestTranscriptHandler_MissingTranscript(t *testing.T) {
	env := setupRouter(t)

	rec := performRequest(env.router, http.MethodPost, "/api/send-transcript", map[string]string{})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
	if got := decodeBody(t, rec)["error"]; got != "Missing data" {
		t.Fatalf("expected Missing data, got %q", got)
	}
	if _, err := os.Stat(env.logPath); !os.IsNotExist(err) {
		t.Fatalf("expected no log file to be created")
	}
}

func TestTranscriptHandler_NameAndEmailWithoutTranscript(t *testing.T) {
	env := setupRouter(t)

	rec := performRequest(env.router, http.MethodPost, "/api/send-transcript", map[string]string{
		"name":  "Ana",
		"email": "ana@example.com",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestTranscriptHandler_OnlyTranscript(t *testing.T) {
	env := setupRouter(t)

	rec := performRequest(env.router, http.MethodPost, "/api/send-transcript", map[string]string{
		"transcript": "hello world",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if got := decodeBody(t, rec)["message"]; got != "Transcript received" {
		t.Fatalf("expected acknowledgement, got %q", got)
	}

	raw, err := os.ReadFile(env.logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	content := string(raw)
	delim := strings.Repeat("=", 50)
	if !strings.HasPrefix(content, delim+"\n") || !strings.HasSuffix(content, "\n"+delim+"\n") {
		t.Fatalf("expected block bounded by delimiters, got:\n%s", content)
	}
	for _, want := range []string{"Name: Anonymous\n", "Email: Not Provided\n", "--- Transcript ---\nhello world\n"} {
		if !strings.Contains(content, want) {
			t.Fatalf("expected %q in log, got:\n%s", want, content)
		}
	}
	if !timestampLine.MatchString(content) {
		t.Fatalf("expected timestamp line, got:\n%s", content)
	}
}

func TestTranscriptHandler_WithLeadData(t *testing.T) {
	env := setupRouter(t)

	rec := performRequest(env.router, http.MethodPost, "/api/send-transcript", map[string]string{
		"name":       "Ana",
		"email":      "ana@example.com",
		"transcript": "User: pricing?\nAI: ...",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	raw, _ := os.ReadFile(env.logPath)
	if !strings.Contains(string(raw), "Name: Ana\nEmail: ana@example.com\n") {
		t.Fatalf("expected lead data in log, got:\n%s", raw)
	}
}

func TestTranscriptHandler_WriteFailure(t *testing.T) {
	dir := t.TempDir()
	router := newTestRouter(filepath.Join(dir, "missing-dir", "email_log.txt"), dir)

	rec := performRequest(router, http.MethodPost, "/api/send-transcript", map[string]string{
		"transcript": "hello world",
	})
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
	if got := decodeBody(t, rec)["error"]; got != "Internal logging error" {
		t.Fatalf("expected Internal logging error, got %q", got)
	}
}

func TestTranscriptHandler_MalformedJSON(t *testing.T) {
	env := setupRouter(t)

	rec := performRawRequest(env.router, http.MethodPost, "/api/send-transcript", []byte(`not json`))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestTranscriptHandler_ConcurrentSubmissions(t *testing.T) {
	env := setupRouter(t)

	var g errgroup.Group
	for _, body := range []string{"first transcript", "second transcript"} {
		body := body
		g.Go(func() error {
			rec := performRequest(env.router, http.MethodPost, "/api/send-transcript", map[string]string{
				"transcript": body,
			})
			if rec.Code != http.StatusOK {
				t.Errorf("expected status 200, got %d", rec.Code)
			}
			return nil
		})
	}
	_ = g.Wait()

	raw, err := os.ReadFile(env.logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	content := string(raw)
	if n := strings.Count(content, domain.LogDelimiter+"\n"); n != 4 {
		t.Fatalf("expected 4 delimiter lines, got %d:\n%s", n, content)
	}
	if n := len(timestampLine.FindAllString(content, -1)); n != 2 {
		t.Fatalf("expected 2 timestamp lines, got %d", n)
	}
	for _, want := range []string{"--- Transcript ---\nfirst transcript\n" + domain.LogDelimiter, "--- Transcript ---\nsecond transcript\n" + domain.LogDelimiter} {
		if !strings.Contains(content, want) {
			t.Fatalf("expected intact block %q, got:\n%s", want, content)
		}
	}
}
