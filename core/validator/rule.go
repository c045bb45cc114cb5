package validator

// Rule pairs a lazy check with the error reported when it fails.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply runs rules in order and collects every failure.
// It returns nil when all checks pass.
func Apply(rules ...Rule) error {
	var errs ValidationErrors
	for _, rule := range rules {
		if rule.Check != nil && !rule.Check() {
			errs.Add(rule.Error)
		}
	}
	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// First runs rules in order and returns the first failure.
func First(rules ...Rule) (ValidationError, bool) {
	for _, rule := range rules {
		if rule.Check != nil && !rule.Check() {
			return rule.Error, true
		}
	}
	return ValidationError{}, false
}
