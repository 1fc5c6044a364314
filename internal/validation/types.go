package validation

// Predicate reports whether a single field value passes a check.
type Predicate func(value string) bool

// Values holds the raw field input of a form, keyed by field name.
type Values map[string]string

// Get returns the value for field, or "" when the field is missing.
func (v Values) Get(field string) string {
	return v[field]
}

// RuleCode identifies a rule independently of its localized message
type RuleCode string

// FieldRule is a single ordered check bound to one form field.
type FieldRule struct {
	Field   string
	Code    RuleCode
	Check   Predicate
	Message string
}

// CrossFieldRule checks a condition spanning several fields and reports
// its failure against Field.
type CrossFieldRule struct {
	Field   string
	Code    RuleCode
	Check   func(values Values) bool
	Message string
}

// FormSchema is the ordered rule set of one form. Schemas are built once
// and never modified afterwards.
type FormSchema struct {
	Name       string
	Fields     []string
	Rules      []FieldRule
	CrossRules []CrossFieldRule
}

// ValidationError represents the single failure reported for a field
type ValidationError struct {
	Field   string
	Code    RuleCode
	Message string
}

// ValidationResult represents the outcome of validating a form. Fields
// without a failing rule are absent from Errors.
type ValidationResult struct {
	Errors map[string]ValidationError

	order []string
}

// Valid reports whether no field failed.
func (r ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// Message returns the error message recorded for field, or "".
func (r ValidationResult) Message(field string) string {
	if err, ok := r.Errors[field]; ok {
		return err.Message
	}
	return ""
}

// Messages flattens the result into a field to message map.
func (r ValidationResult) Messages() map[string]string {
	if r.Valid() {
		return nil
	}
	out := make(map[string]string, len(r.Errors))
	for field, err := range r.Errors {
		out[field] = err.Message
	}
	return out
}

// Fields returns the failing field names in schema order.
func (r ValidationResult) Fields() []string {
	var fields []string
	for _, field := range r.order {
		if _, ok := r.Errors[field]; ok {
			fields = append(fields, field)
		}
	}
	return fields
}
