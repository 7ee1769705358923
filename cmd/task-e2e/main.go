package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/KasumiMercury/primind-task-api/internal/config"
	"github.com/KasumiMercury/primind-task-api/internal/health"
	"github.com/KasumiMercury/primind-task-api/internal/observability/tracing"
	"github.com/KasumiMercury/primind-task-api/internal/server"
	"github.com/joho/godotenv"
)

type taskBody struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Status      string  `json:"status"`
}

func main() {
	log.SetFlags(0)

	_ = godotenv.Load()

	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	appCfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load app config: %w", err)
	}

	store, err := server.OpenStore(ctx, appCfg.Persistence)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}

	defer func() {
		if err := store.Close(context.Background()); err != nil {
			log.Printf("failed to close store: %v", err)
		}
	}()

	handler, err := server.NewHandler(ctx, server.Options{
		Config:       appCfg.Server,
		Repositories: store.Repositories,
		Dependencies: []health.Dependency{store.Dependency},
		Version:      "e2e",
	})
	if err != nil {
		return fmt.Errorf("build handler: %w", err)
	}

	srv := httptest.NewServer(handler)
	defer srv.Close()

	client := &e2eClient{http: srv.Client(), baseURL: srv.URL}

	if err := client.expectStatus(ctx, http.MethodGet, "/health/ready", nil, http.StatusOK); err != nil {
		return fmt.Errorf("store not ready: %w", err)
	}

	created, err := client.createTask(ctx, map[string]any{"title": "Task e2e", "description": "from the e2e runner"})
	if err != nil {
		return err
	}

	log.Printf("task created with id %s", created.ID)

	if created.Status != "pending" {
		return fmt.Errorf("expected default status pending, got %q", created.Status)
	}

	if err := client.expectStatus(ctx, http.MethodPost, "/api/tasks", map[string]any{"description": "no title"}, http.StatusBadRequest); err != nil {
		return err
	}

	if err := client.expectStatus(ctx, http.MethodGet, "/api/tasks/not-a-valid-id", nil, http.StatusBadRequest); err != nil {
		return err
	}

	body, err := client.expectBody(ctx, http.MethodPut, "/api/tasks/"+created.ID, map[string]any{"status": "completed"}, http.StatusOK)
	if err != nil {
		return err
	}

	var updated taskBody
	if err := json.Unmarshal(body, &updated); err != nil {
		return fmt.Errorf("decode updated task: %w", err)
	}

	log.Println("task updated successfully:")
	log.Printf("  title: %s", updated.Title)
	log.Printf("  status: %s", updated.Status)

	body, err = client.expectBody(ctx, http.MethodGet, "/api/tasks?status=completed", nil, http.StatusOK)
	if err != nil {
		return err
	}

	var completed []taskBody
	if err := json.Unmarshal(body, &completed); err != nil {
		return fmt.Errorf("decode task list: %w", err)
	}

	if !containsTask(completed, created.ID) {
		return fmt.Errorf("completed list does not contain %s", created.ID)
	}

	if err := client.expectStatus(ctx, http.MethodDelete, "/api/tasks/"+created.ID, nil, http.StatusOK); err != nil {
		return err
	}

	if err := client.expectStatus(ctx, http.MethodDelete, "/api/tasks/"+created.ID, nil, http.StatusNotFound); err != nil {
		return err
	}

	log.Println("task e2e finished successfully")

	return nil
}

type e2eClient struct {
	http    *http.Client
	baseURL string
}

func (c *e2eClient) do(ctx context.Context, method, path string, payload any) (int, []byte, error) {
	var body io.Reader

	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, err
		}

		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return 0, nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	tracing.InjectToHTTPRequest(ctx, req)

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}

	return resp.StatusCode, respBody, nil
}

func (c *e2eClient) createTask(ctx context.Context, payload map[string]any) (*taskBody, error) {
	code, body, err := c.do(ctx, http.MethodPost, "/api/tasks", payload)
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	if code != http.StatusCreated {
		return nil, fmt.Errorf("create task: expected 201, got %d: %s", code, body)
	}

	var task taskBody
	if err := json.Unmarshal(body, &task); err != nil {
		return nil, fmt.Errorf("decode created task: %w", err)
	}

	return &task, nil
}

func (c *e2eClient) expectStatus(ctx context.Context, method, path string, payload any, want int) error {
	_, err := c.expectBody(ctx, method, path, payload, want)

	return err
}

func (c *e2eClient) expectBody(ctx context.Context, method, path string, payload any, want int) ([]byte, error) {
	code, body, err := c.do(ctx, method, path, payload)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}

	if code != want {
		return nil, fmt.Errorf("%s %s: expected %d, got %d: %s", method, path, want, code, body)
	}

	log.Printf("%s %s -> %d", method, path, code)

	return body, nil
}

func containsTask(tasks []taskBody, id string) bool {
	for _, task := range tasks {
		if task.ID == id {
			return true
		}
	}

	return false
}
