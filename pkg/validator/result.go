package validator

import "slices"

// FieldErrors maps a field to its failure messages in chain order. A field
// with an empty list passed.
type FieldErrors map[string][]string

// Add appends a message for field.
func (e FieldErrors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// Get returns the first message of field, or "".
func (e FieldErrors) Get(field string) string {
	if msgs := e[field]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// Has reports whether field has at least one message.
func (e FieldErrors) Has(field string) bool {
	return len(e[field]) > 0
}

// Failed returns the fields with messages, sorted.
func (e FieldErrors) Failed() []string {
	var fields []string
	for field, msgs := range e {
		if len(msgs) > 0 {
			fields = append(fields, field)
		}
	}
	slices.Sort(fields)
	return fields
}

// IsEmpty reports whether no field has a message.
func (e FieldErrors) IsEmpty() bool {
	return len(e.Failed()) == 0
}

// Result is the outcome of validating one request.
type Result struct {
	OK       bool             `json:"ok"`
	Errors   FieldErrors      `json:"errors"`
	Failures ValidationErrors `json:"failures,omitempty"`
}

func newResult(fields []string) Result {
	r := Result{OK: true, Errors: make(FieldErrors, len(fields))}
	for _, f := range fields {
		r.Errors[f] = []string{}
	}
	return r
}

func (r *Result) add(err ValidationError) {
	r.OK = false
	r.Errors.Add(err.Field, err.Message)
	r.Failures.Add(err)
}

// Err returns the failures as ValidationErrors, or nil when the request is valid.
func (r Result) Err() error {
	if r.OK {
		return nil
	}
	return slices.Clone(r.Failures)
}
