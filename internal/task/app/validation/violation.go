// Package validation holds the pure request checks that run before any store
// call. Every check returns all of its violations instead of the first one.
package validation

import (
	"fmt"
	"strings"
)

type Location string

const (
	LocationBody   Location = "body"
	LocationParams Location = "params"
	LocationQuery  Location = "query"
)

type Violation struct {
	Field    string   `json:"field"`
	Message  string   `json:"message"`
	Location Location `json:"location,omitempty"`
}

type Violations []Violation

// Merge concatenates violation lists, keeping the first violation reported for
// each location and field.
func (v Violations) Merge(others ...Violations) Violations {
	type key struct {
		location Location
		field    string
	}

	merged := make(Violations, 0, len(v))
	seen := make(map[key]struct{})

	add := func(list Violations) {
		for _, violation := range list {
			k := key{location: violation.Location, field: violation.Field}
			if _, ok := seen[k]; ok {
				continue
			}

			seen[k] = struct{}{}
			merged = append(merged, violation)
		}
	}

	add(v)

	for _, other := range others {
		add(other)
	}

	return merged
}

// Err returns nil when there are no violations.
func (v Violations) Err() error {
	if len(v) == 0 {
		return nil
	}

	return &ValidationError{Violations: v}
}

// ValidationError reports malformed client input. It always maps to 400.
type ValidationError struct {
	Violations Violations
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.Message))
	}

	return "validation failed: " + strings.Join(parts, "; ")
}
