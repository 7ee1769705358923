package docs

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoad(t *testing.T) {
	doc, err := Load("https://tasks.example.com/")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	body, err := doc.JSON()
	if err != nil {
		t.Fatalf("JSON() error = %v", err)
	}

	var rendered struct {
		OpenAPI string `json:"openapi"`
		Servers []struct {
			URL string `json:"url"`
		} `json:"servers"`
	}

	if err := json.Unmarshal(body, &rendered); err != nil {
		t.Fatalf("failed to decode rendered document: %v", err)
	}

	if !strings.HasPrefix(rendered.OpenAPI, "3.") {
		t.Errorf("openapi version = %q, want 3.x", rendered.OpenAPI)
	}

	if len(rendered.Servers) != 1 || rendered.Servers[0].URL != "https://tasks.example.com" {
		t.Errorf("servers = %+v, want the configured url", rendered.Servers)
	}
}

func TestOperations(t *testing.T) {
	doc, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	got := doc.Operations()
	sort.Strings(got)

	want := []string{
		"DELETE /api/tasks/{id}",
		"GET /api/tasks",
		"GET /api/tasks/{id}",
		"POST /api/tasks",
		"PUT /api/tasks/{id}",
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Operations() mismatch (-want +got):\n%s", diff)
	}
}

func TestSchema(t *testing.T) {
	doc, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	raw, err := doc.Schema("CreateTaskRequest")
	if err != nil {
		t.Fatalf("Schema() error = %v", err)
	}

	var schema map[string]any
	if err := json.Unmarshal(raw, &schema); err != nil {
		t.Fatalf("schema is not valid json: %v", err)
	}

	if schema["type"] != "object" {
		t.Errorf("schema type = %v, want object", schema["type"])
	}

	if _, err := doc.Schema("Missing"); !errors.Is(err, ErrSchemaNotFound) {
		t.Errorf("Schema(Missing) error = %v, want %v", err, ErrSchemaNotFound)
	}
}

func TestHandler(t *testing.T) {
	doc, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	h := Handler(doc, "/api-docs")

	tests := []struct {
		name        string
		path        string
		contentType string
		contains    string
	}{
		{name: "openapi json", path: "/openapi.json", contentType: "application/json", contains: `"openapi"`},
		{name: "swagger ui", path: "/", contentType: "text/html; charset=utf-8", contains: "/api-docs/openapi.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", w.Code)
			}

			if got := w.Header().Get("Content-Type"); got != tt.contentType {
				t.Errorf("Content-Type = %q, want %q", got, tt.contentType)
			}

			if !strings.Contains(w.Body.String(), tt.contains) {
				t.Errorf("body does not contain %q", tt.contains)
			}
		})
	}
}
