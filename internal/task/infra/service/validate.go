package task

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/KasumiMercury/primind-task-api/internal/task/app/validation"
	domaintask "github.com/KasumiMercury/primind-task-api/internal/task/domain/task"
	"github.com/go-chi/chi/v5"
)

const maxBodyBytes = 1 << 20

// input is what the rules of a route extracted from the request. Handlers only
// run when violations is empty.
type input struct {
	taskID     string
	create     validation.CreateTaskPayload
	update     validation.UpdateTaskPayload
	taskStatus *domaintask.Status
	violations validation.Violations
}

type inputKey struct{}

func inputFromContext(ctx context.Context) *input {
	if in, ok := ctx.Value(inputKey{}).(*input); ok {
		return in
	}

	return &input{}
}

type rule func(r *http.Request, in *input)

// validate runs every rule and stores the result on the request context.
// It never rejects a request itself; see checkErrors.
func validate(rules ...rule) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			in := &input{}

			for _, apply := range rules {
				apply(r, in)
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), inputKey{}, in)))
		})
	}
}

func checkErrors(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := inputFromContext(r.Context()).violations.Err(); err != nil {
				writeError(w, r, logger, err, "")

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func idParam(r *http.Request, in *input) {
	in.taskID = chi.URLParam(r, "id")
	in.violations = in.violations.Merge(validation.ValidateID(in.taskID))
}

func statusQuery(r *http.Request, in *input) {
	values, ok := r.URL.Query()["status"]
	if !ok {
		return
	}

	violations := validation.ValidateStatusQuery(values)
	in.violations = in.violations.Merge(violations)

	if len(violations) == 0 {
		s := domaintask.Status(values[0])
		in.taskStatus = &s
	}
}

func createBody(decoder *validation.BodyDecoder) rule {
	return func(r *http.Request, in *input) {
		body, ok := readBody(r, in)
		if !ok {
			return
		}

		payload, violations := decoder.DecodeCreate(body)
		in.create = payload
		in.violations = in.violations.Merge(violations, validation.ValidateCreate(payload))
	}
}

func updateBody(decoder *validation.BodyDecoder) rule {
	return func(r *http.Request, in *input) {
		body, ok := readBody(r, in)
		if !ok {
			return
		}

		payload, violations := decoder.DecodeUpdate(body)
		in.update = payload
		in.violations = in.violations.Merge(violations, validation.ValidateUpdate(payload))
	}
}

func readBody(r *http.Request, in *input) ([]byte, bool) {
	if r.Body == nil {
		return nil, true
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil || len(body) > maxBodyBytes {
		in.violations = in.violations.Merge(validation.Violations{{
			Field:    validation.FieldBody,
			Message:  validation.MsgBodyUnreadable,
			Location: validation.LocationBody,
		}})

		return nil, false
	}

	return body, true
}
