// Package docs serves the OpenAPI description of the task API and hands its
// request schemas to the validation layer.
package docs

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"gopkg.in/yaml.v3"
)

//go:embed openapi.yaml
var openAPIYAML []byte

type Document struct {
	raw map[string]any
}

// Load parses the embedded OpenAPI document. A non-empty serverURL replaces
// the servers list.
func Load(serverURL string) (*Document, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(openAPIYAML, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	if _, ok := raw["paths"].(map[string]any); !ok {
		return nil, fmt.Errorf("%w: paths section is missing", ErrInvalidDocument)
	}

	if serverURL != "" {
		raw["servers"] = []any{map[string]any{"url": strings.TrimRight(serverURL, "/")}}
	}

	return &Document{raw: raw}, nil
}

func (d *Document) JSON() ([]byte, error) {
	return json.Marshal(d.raw)
}

// Schema returns components.schemas[name] as a standalone JSON Schema document.
func (d *Document) Schema(name string) ([]byte, error) {
	components, _ := d.raw["components"].(map[string]any)
	schemas, _ := components["schemas"].(map[string]any)

	schema, ok := schemas[name].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSchemaNotFound, name)
	}

	return json.Marshal(schema)
}

// Operations lists "METHOD path" pairs declared in the document.
func (d *Document) Operations() []string {
	paths, _ := d.raw["paths"].(map[string]any)

	var ops []string

	for path, item := range paths {
		methods, ok := item.(map[string]any)
		if !ok {
			continue
		}

		for method := range methods {
			switch method {
			case "get", "post", "put", "patch", "delete":
				ops = append(ops, strings.ToUpper(method)+" "+path)
			}
		}
	}

	return ops
}

var swaggerUI = template.Must(template.New("swagger").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui" data-spec-url="{{.SpecURL}}"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    const el = document.getElementById("swagger-ui");
    window.ui = SwaggerUIBundle({ url: el.dataset.specUrl, dom_id: "#swagger-ui" });
  </script>
</body>
</html>
`))

// Handler serves the Swagger UI at "/" and the document at "/openapi.json".
// Mount it under the docs prefix.
func Handler(doc *Document, prefix string) http.Handler {
	logger := slog.Default().WithGroup("docs")

	r := chi.NewRouter()

	r.Get("/openapi.json", func(w http.ResponseWriter, _ *http.Request) {
		body, err := doc.JSON()
		if err != nil {
			logger.Error("failed to render openapi document", slog.String("error", err.Error()))
			http.Error(w, "failed to render openapi document", http.StatusInternalServerError)

			return
		}

		w.Header().Set("Content-Type", "application/json")

		if _, err := w.Write(body); err != nil {
			logger.Warn("failed to write openapi document", slog.String("error", err.Error()))
		}
	})

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")

		data := struct {
			Title   string
			SpecURL string
		}{
			Title:   doc.title(),
			SpecURL: strings.TrimRight(prefix, "/") + "/openapi.json",
		}

		if err := swaggerUI.Execute(w, data); err != nil {
			logger.Warn("failed to write swagger ui", slog.String("error", err.Error()))
		}
	})

	return r
}

func (d *Document) title() string {
	info, _ := d.raw["info"].(map[string]any)
	if title, ok := info["title"].(string); ok {
		return title
	}

	return "API"
}
