package task

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

const BasePath = "/api/tasks"

type route struct {
	method  string
	pattern string
	rules   []rule
	handle  http.HandlerFunc
}

func (s *Service) routes() []route {
	return []route{
		{http.MethodPost, "/", []rule{createBody(s.decoder)}, s.CreateTask},
		{http.MethodGet, "/", []rule{statusQuery}, s.ListTasks},
		{http.MethodGet, "/{id}", []rule{idParam}, s.GetTask},
		{http.MethodPut, "/{id}", []rule{idParam, updateBody(s.decoder)}, s.UpdateTask},
		{http.MethodDelete, "/{id}", []rule{idParam}, s.DeleteTask},
	}
}

// Routes returns the task routes. Each route runs its rules, stops with 400
// when any of them reported a violation, and only then reaches the handler.
// Mount the result at BasePath.
func (s *Service) Routes() chi.Router {
	r := chi.NewRouter()
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusMethodNotAllowed, errorResponse{Error: msgMethodNotAllowed})
	})

	for _, rt := range s.routes() {
		r.With(validate(rt.rules...), checkErrors(s.logger)).Method(rt.method, rt.pattern, rt.handle)
	}

	return r
}
