// Package schema converts caller-supplied schema representations into
// the canonical JSON Schema documents the NextRows API accepts on the
// wire. It recognizes a closed set of inputs: a canonical document
// (map[string]any), a github.com/google/jsonschema-go schema value, or
// any type implementing Provider. Nothing here validates data against a
// schema; it only converts the schema itself for transmission.
package schema

import (
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/nextrows/nextrows-go/pkg/api"
)

// Provider is the capability probe for types that can describe
// themselves as a JSON schema. Implement it on request/response model
// types to pass them directly as the schema of an extract request.
type Provider interface {
	JSONSchema() *jsonschema.Schema
}

// Normalize converts any supported schema representation into a
// canonical JSON Schema document. A canonical document is returned
// unchanged, so Normalize is idempotent. Unsupported inputs return a
// *api.SchemaError.
func Normalize(input any) (api.JSONSchema, error) {
	switch s := input.(type) {
	case nil:
		return nil, &api.SchemaError{Reason: "schema is nil"}
	case api.JSONSchema:
		return s, nil
	case *jsonschema.Schema:
		if s == nil {
			return nil, &api.SchemaError{Reason: "schema is a nil *jsonschema.Schema"}
		}
		return canonicalize(s)
	case jsonschema.Schema:
		return canonicalize(&s)
	case Provider:
		return canonicalize(s.JSONSchema())
	}

	return nil, &api.SchemaError{Reason: fmt.Sprintf(
		"unsupported representation %T: want a map[string]any JSON Schema document, a jsonschema.Schema from github.com/google/jsonschema-go v0.4.0 or newer, or a schema.Provider",
		input,
	)}
}

// For derives the canonical schema for the Go type T by reflection.
// Field names follow the usual json struct tags.
func For[T any]() (api.JSONSchema, error) {
	s, err := jsonschema.For[T](nil)
	if err != nil {
		return nil, &api.SchemaError{Reason: fmt.Sprintf("failed to derive schema for %T: %v", *new(T), err)}
	}
	return canonicalize(s)
}

// canonicalize round-trips a library schema through JSON to obtain the
// plain-mapping wire form.
func canonicalize(s *jsonschema.Schema) (api.JSONSchema, error) {
	if s == nil {
		return nil, &api.SchemaError{Reason: "schema provider returned nil"}
	}

	data, err := json.Marshal(s)
	if err != nil {
		return nil, &api.SchemaError{Reason: fmt.Sprintf("failed to marshal schema: %v", err)}
	}

	var doc api.JSONSchema
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &api.SchemaError{Reason: fmt.Sprintf("failed to rebuild schema document: %v", err)}
	}

	return doc, nil
}
