package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const (
	CreateTaskSchema = "CreateTaskRequest"
	UpdateTaskSchema = "UpdateTaskRequest"
)

// SchemaSource provides request body schemas by component name.
type SchemaSource interface {
	Schema(name string) ([]byte, error)
}

// BodyDecoder turns raw JSON bodies into typed payloads. Fields whose JSON type
// does not match the schema are reported and left out of the payload.
type BodyDecoder struct {
	create *bodySchema
	update *bodySchema
}

type bodySchema struct {
	schema *jsonschema.Schema
	types  map[string]string
}

func NewBodyDecoder(src SchemaSource) (*BodyDecoder, error) {
	create, err := compileBodySchema(src, CreateTaskSchema)
	if err != nil {
		return nil, err
	}

	update, err := compileBodySchema(src, UpdateTaskSchema)
	if err != nil {
		return nil, err
	}

	return &BodyDecoder{create: create, update: update}, nil
}

func (d *BodyDecoder) DecodeCreate(body []byte) (CreateTaskPayload, Violations) {
	fields, violations := d.create.decode(body)

	return CreateTaskPayload{
		Title:       fields[FieldTitle],
		Description: fields[FieldDescription],
		Status:      fields[FieldStatus],
	}, violations
}

func (d *BodyDecoder) DecodeUpdate(body []byte) (UpdateTaskPayload, Violations) {
	fields, violations := d.update.decode(body)

	return UpdateTaskPayload{
		Title:       fields[FieldTitle],
		Description: fields[FieldDescription],
		Status:      fields[FieldStatus],
	}, violations
}

func compileBodySchema(src SchemaSource, name string) (*bodySchema, error) {
	raw, err := src.Schema(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaCompile, err)
	}

	url := name + ".json"
	compiler := jsonschema.NewCompiler()

	if err := compiler.AddResource(url, bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSchemaCompile, name, err)
	}

	schema, err := compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSchemaCompile, name, err)
	}

	var declared struct {
		Properties map[string]struct {
			Type string `json:"type"`
		} `json:"properties"`
	}

	if err := json.Unmarshal(raw, &declared); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSchemaCompile, name, err)
	}

	types := make(map[string]string, len(declared.Properties))
	for field, prop := range declared.Properties {
		types[field] = prop.Type
	}

	return &bodySchema{schema: schema, types: types}, nil
}

// decode returns the string-typed properties of body. An empty body counts as
// an empty object.
func (s *bodySchema) decode(body []byte) (map[string]*string, Violations) {
	fields := map[string]*string{}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return fields, nil
	}

	var value any
	if err := json.Unmarshal(trimmed, &value); err != nil {
		return fields, Violations{bodyViolation(FieldBody, MsgBodyNotObject)}
	}

	obj, ok := value.(map[string]any)
	if !ok {
		return fields, Violations{bodyViolation(FieldBody, MsgBodyNotObject)}
	}

	invalid := map[string]struct{}{}

	if err := s.schema.Validate(obj); err != nil {
		var verr *jsonschema.ValidationError
		if errors.As(err, &verr) {
			collectTypeErrors(verr, invalid)
		}
	}

	for _, field := range s.fieldNames() {
		raw, present := obj[field]
		if !present {
			continue
		}

		str, isString := raw.(string)
		if _, flagged := invalid[field]; flagged || !isString {
			invalid[field] = struct{}{}

			continue
		}

		fields[field] = &str
	}

	var violations Violations

	for _, field := range s.fieldNames() {
		if _, ok := invalid[field]; ok {
			violations = append(violations, bodyViolation(field, fmt.Sprintf("%s must be a %s", field, s.types[field])))
		}
	}

	return fields, violations
}

func (s *bodySchema) fieldNames() []string {
	names := make([]string, 0, len(s.types))
	for name := range s.types {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// collectTypeErrors records top-level properties that failed a "type" keyword.
// Enum and emptiness checks are left to the typed rules.
func collectTypeErrors(err *jsonschema.ValidationError, invalid map[string]struct{}) {
	if err == nil {
		return
	}

	if len(err.Causes) == 0 {
		if !strings.HasSuffix(err.KeywordLocation, "/type") {
			return
		}

		field := strings.TrimPrefix(strings.TrimPrefix(err.InstanceLocation, "#"), "/")
		if field != "" && !strings.Contains(field, "/") {
			invalid[field] = struct{}{}
		}

		return
	}

	for _, cause := range err.Causes {
		collectTypeErrors(cause, invalid)
	}
}
