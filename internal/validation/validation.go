package validation

import (
	"errors"
	"fmt"
	"strings"
)

// Violation is a single failed field constraint
type Violation struct {
	Field  string `json:"field"`  // dotted path, e.g. "user.email" or "target_days[2]"
	Reason string `json:"reason"`
}

func (v Violation) String() string {
	if v.Field == "" {
		return v.Reason
	}
	return fmt.Sprintf("%s: %s", v.Field, v.Reason)
}

// ValidationError enumerates every violation found while constructing a record
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.String()
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Fields returns the violated field paths in the order they were found
func (e *ValidationError) Fields() []string {
	fields := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		fields[i] = v.Field
	}
	return fields
}

// Has reports whether field has at least one violation
func (e *ValidationError) Has(field string) bool {
	for _, v := range e.Violations {
		if v.Field == field {
			return true
		}
	}
	return false
}

// FormatReport returns a human-readable list of all violations
func (e *ValidationError) FormatReport() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d violation(s):\n", len(e.Violations))
	for _, v := range e.Violations {
		fmt.Fprintf(&b, "- %s\n", v)
	}
	return b.String()
}

// AsValidationError unwraps err into a *ValidationError if it holds one
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

// Result collects violations for one record. The zero value is ready to use.
type Result struct {
	violations []Violation
	seen       map[string]bool
}

// Add records a violation for field
func (r *Result) Add(field, reason string) {
	if r.seen == nil {
		r.seen = make(map[string]bool)
	}
	r.violations = append(r.violations, Violation{Field: field, Reason: reason})
	r.seen[field] = true
}

// Addf records a violation with a formatted reason
func (r *Result) Addf(field, format string, args ...interface{}) {
	r.Add(field, fmt.Sprintf(format, args...))
}

// Reported reports whether field already has a violation
func (r *Result) Reported(field string) bool {
	return r.seen[field]
}

// CheckStruct runs the tag rules on v. Fields that already failed a
// presence or type check, or whose parent did, are not reported twice.
func (r *Result) CheckStruct(v interface{}) {
	for _, violation := range Struct(v) {
		if r.covered(violation.Field) {
			continue
		}
		r.Add(violation.Field, violation.Reason)
	}
}

func (r *Result) covered(field string) bool {
	for field != "" {
		if r.seen[field] {
			return true
		}
		i := strings.LastIndexAny(field, ".[")
		if i < 0 {
			return false
		}
		field = field[:i]
	}
	return false
}

// HasViolations returns true if any violation was recorded
func (r *Result) HasViolations() bool {
	return len(r.violations) > 0
}

// Err returns nil when the record is valid, otherwise a *ValidationError
func (r *Result) Err() error {
	if !r.HasViolations() {
		return nil
	}
	violations := make([]Violation, len(r.violations))
	copy(violations, r.violations)
	return &ValidationError{Violations: violations}
}
