package validation

// Validate applies schema to values. Field rules run first, in declared
// order, and stop at the first failure for each field. Cross-field rules
// then run for fields that have not failed yet.
func Validate(schema *FormSchema, values Values) ValidationResult {
	result := ValidationResult{
		Errors: make(map[string]ValidationError),
		order:  schema.Fields,
	}

	for _, rule := range schema.Rules {
		if _, failed := result.Errors[rule.Field]; failed {
			continue
		}
		if !rule.Check(values.Get(rule.Field)) {
			result.Errors[rule.Field] = ValidationError{
				Field:   rule.Field,
				Code:    rule.Code,
				Message: rule.Message,
			}
		}
	}

	for _, rule := range schema.CrossRules {
		if _, failed := result.Errors[rule.Field]; failed {
			continue
		}
		if !rule.Check(values) {
			result.Errors[rule.Field] = ValidationError{
				Field:   rule.Field,
				Code:    rule.Code,
				Message: rule.Message,
			}
		}
	}

	return result
}

// ValidateField runs only the field rules of a single field. Cross-field
// rules need the whole form and are skipped.
func ValidateField(schema *FormSchema, field, value string) (ValidationError, bool) {
	for _, rule := range schema.Rules {
		if rule.Field != field {
			continue
		}
		if !rule.Check(value) {
			return ValidationError{
				Field:   rule.Field,
				Code:    rule.Code,
				Message: rule.Message,
			}, false
		}
	}
	return ValidationError{}, true
}
