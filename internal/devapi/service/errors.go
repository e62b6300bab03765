package service

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrValidation         = errors.New("validation error")
	ErrConflict           = errors.New("conflict")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrForbidden          = errors.New("forbidden")
)

// FieldsError is a rejection that names the offending fields. Kind is
// ErrValidation or ErrConflict.
type FieldsError struct {
	Kind    error
	Message string
	Fields  map[string]string
}

func (e *FieldsError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	if len(parts) == 0 {
		return e.Message
	}
	return e.Message + " (" + strings.Join(parts, ", ") + ")"
}

func (e *FieldsError) Unwrap() error { return e.Kind }

func invalid(message string, fields map[string]string) error {
	return &FieldsError{Kind: ErrValidation, Message: message, Fields: fields}
}

func conflict(message string, fields map[string]string) error {
	return &FieldsError{Kind: ErrConflict, Message: message, Fields: fields}
}
