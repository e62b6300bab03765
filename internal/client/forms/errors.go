package forms

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/scribe/internal/client/api"
)

// GenericMessage is shown when a failure carries no structured message.
const GenericMessage = "An unexpected error occurred"

// ErrValidation is returned when a submit is refused before any request.
var ErrValidation = errors.New("validation failed")

// FieldError is a validation failure on a single field.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *FieldError) Unwrap() error { return ErrValidation }

// Errors is the error state of a form: one Result per known field plus a
// form-wide message.
type Errors struct {
	fields  []string
	results map[string]Result
	message string
}

// NewErrors builds an empty error state for the given fields.
func NewErrors(fields ...string) *Errors {
	e := &Errors{fields: fields}
	e.Reset()
	return e
}

// Reset marks every field Ok and clears the message.
func (e *Errors) Reset() {
	e.results = make(map[string]Result, len(e.fields))
	for _, f := range e.fields {
		e.results[f] = Ok()
	}
	e.message = ""
}

// Field returns the result for name. Unknown fields are Ok.
func (e *Errors) Field(name string) Result {
	if r, ok := e.results[name]; ok {
		return r
	}
	return Ok()
}

func (e *Errors) Set(name string, r Result) {
	e.results[name] = r
}

func (e *Errors) Message() string { return e.message }

func (e *Errors) SetMessage(msg string) { e.message = msg }

// Fields lists the tracked field names in declaration order.
func (e *Errors) Fields() []string {
	return append([]string(nil), e.fields...)
}

// HasErrors reports whether any field is Invalid or a message is set.
func (e *Errors) HasErrors() bool {
	if e.message != "" {
		return true
	}
	for _, r := range e.results {
		if !r.IsOk() {
			return true
		}
	}
	return false
}

// Apply records err: a server-reported *api.Error fills the message and the
// fields it names; anything else sets GenericMessage. The returned string is
// the notice to show the user.
func (e *Errors) Apply(err error) string {
	var fe *FieldError
	if errors.As(err, &fe) {
		e.Set(fe.Field, Invalid(fe.Reason))
		return fe.Reason
	}

	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		e.message = GenericMessage
		return GenericMessage
	}

	for name, reason := range apiErr.Fields {
		e.Set(name, Invalid(reason))
	}
	if apiErr.Message == "" {
		e.message = GenericMessage
		return GenericMessage
	}
	e.message = apiErr.Message
	return apiErr.Message
}
