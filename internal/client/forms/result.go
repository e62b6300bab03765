package forms

// Result is the validation state of one field.
type Result struct {
	reason string
	bad    bool
}

// Ok is the result of a field without an error.
func Ok() Result { return Result{} }

// Invalid marks a field as failing with reason.
func Invalid(reason string) Result { return Result{reason: reason, bad: true} }

func (r Result) IsOk() bool { return !r.bad }

// Reason is the message to display; empty for Ok.
func (r Result) Reason() string { return r.reason }
