package validation

import (
	"errors"
	"fmt"
	"strings"

	domaintask "github.com/KasumiMercury/primind-task-api/internal/task/domain/task"
)

const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldStatus      = "status"
	FieldID          = "id"
	FieldBody        = "body"
)

const (
	MsgTitleRequired  = "title is required"
	MsgTitleEmpty     = "title cannot be empty"
	MsgInvalidID      = "id must be a 24 character hex object id"
	MsgRepeatedStatus = "status must be given at most once"
	MsgBodyNotObject  = "request body must be a JSON object"
	MsgBodyUnreadable = "request body could not be read"
)

var MsgInvalidStatus = fmt.Sprintf("status must be either %s", quotedStatuses())

// CreateTaskPayload is the typed body of a create request. Nil means absent.
type CreateTaskPayload struct {
	Title       *string
	Description *string
	Status      *string
}

// UpdateTaskPayload is the typed body of an update request. Nil means absent.
type UpdateTaskPayload struct {
	Title       *string
	Description *string
	Status      *string
}

func (p UpdateTaskPayload) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Status == nil
}

// ValidateCreate requires a non-empty title and an enumerated status when one
// is given. Description type is checked while decoding the body.
func ValidateCreate(p CreateTaskPayload) Violations {
	var v Violations

	if p.Title == nil || *p.Title == "" {
		v = append(v, bodyViolation(FieldTitle, MsgTitleRequired))
	}

	if p.Status != nil && !isStatus(*p.Status) {
		v = append(v, bodyViolation(FieldStatus, MsgInvalidStatus))
	}

	return v
}

// ValidateUpdate applies the create rules to whichever fields are present.
// An empty payload is valid.
func ValidateUpdate(p UpdateTaskPayload) Violations {
	var v Violations

	if p.Title != nil && *p.Title == "" {
		v = append(v, bodyViolation(FieldTitle, MsgTitleEmpty))
	}

	if p.Status != nil && !isStatus(*p.Status) {
		v = append(v, bodyViolation(FieldStatus, MsgInvalidStatus))
	}

	return v
}

func ValidateID(id string) Violations {
	if domaintask.IsValidID(id) {
		return nil
	}

	return Violations{{Field: FieldID, Message: MsgInvalidID, Location: LocationParams}}
}

// ValidateStatusQuery checks the values of the status query parameter. A nil
// slice means the parameter was not sent.
func ValidateStatusQuery(values []string) Violations {
	switch {
	case values == nil:
		return nil
	case len(values) > 1:
		return Violations{{Field: FieldStatus, Message: MsgRepeatedStatus, Location: LocationQuery}}
	case !isStatus(values[0]):
		return Violations{{Field: FieldStatus, Message: MsgInvalidStatus, Location: LocationQuery}}
	default:
		return nil
	}
}

// FromDomainError turns a rejected domain value into a ValidationError.
// Any other error is returned unchanged.
func FromDomainError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domaintask.ErrTitleEmpty):
		return Violations{bodyViolation(FieldTitle, MsgTitleRequired)}.Err()
	case errors.Is(err, domaintask.ErrInvalidTaskStatus):
		return Violations{bodyViolation(FieldStatus, MsgInvalidStatus)}.Err()
	case errors.Is(err, domaintask.ErrIDInvalidFormat):
		return Violations{{Field: FieldID, Message: MsgInvalidID, Location: LocationParams}}.Err()
	default:
		return err
	}
}

func isStatus(s string) bool {
	_, err := domaintask.NewStatus(s)

	return err == nil
}

func quotedStatuses() string {
	statuses := domaintask.Statuses()
	quoted := make([]string, 0, len(statuses))

	for _, s := range statuses {
		quoted = append(quoted, fmt.Sprintf("%q", s))
	}

	return strings.Join(quoted, " or ")
}

func bodyViolation(field, message string) Violation {
	return Violation{Field: field, Message: message, Location: LocationBody}
}
