package docxwriter

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrElementMismatch is returned in strict mode when a writer is handed an
// element of the wrong kind.
var ErrElementMismatch = errors.New("element kind does not match writer")

// ElementError reports a failure while writing one element.
type ElementError struct {
	// Op is the writer operation, e.g. "write list item".
	Op string
	// Kind is the Go type of the element, e.g. "*model.Text".
	Kind  string
	Cause error
}

func (e *ElementError) Error() string {
	if e.Kind != "" {
		return fmt.Sprintf("%s (%s): %v", e.Op, e.Kind, e.Cause)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

func (e *ElementError) Unwrap() error {
	return e.Cause
}

func newElementError(op string, el interface{}, cause error) error {
	return &ElementError{Op: op, Kind: fmt.Sprintf("%T", el), Cause: cause}
}

// PackageError reports a failure while producing a package part or file.
type PackageError struct {
	Operation string
	// Part is the part name inside the package, e.g. "word/document.xml".
	Part string
	// Path is the file system path, if any.
	Path  string
	Cause error
}

func (e *PackageError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "package error during %s", e.Operation)
	if e.Part != "" {
		fmt.Fprintf(&b, " of part '%s'", e.Part)
	}
	if e.Path != "" {
		fmt.Fprintf(&b, " at '%s'", e.Path)
	}
	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}
	return b.String()
}

func (e *PackageError) Unwrap() error {
	return e.Cause
}

// ValidationIssue represents a single validation problem
type ValidationIssue struct {
	Field   string
	Message string
}

// ValidationError collects the problems found on an element before it is
// written.
type ValidationError struct {
	Issues []ValidationIssue
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "validation error"
	}
	if len(e.Issues) == 1 {
		return fmt.Sprintf("validation error: %s - %s", e.Issues[0].Field, e.Issues[0].Message)
	}

	parts := []string{fmt.Sprintf("%d validation issues:", len(e.Issues))}
	for _, issue := range e.Issues {
		parts = append(parts, fmt.Sprintf("  %s: %s", issue.Field, issue.Message))
	}
	return strings.Join(parts, "\n")
}

func (e *ValidationError) add(field, format string, args ...interface{}) {
	e.Issues = append(e.Issues, ValidationIssue{Field: field, Message: fmt.Sprintf(format, args...)})
}

func (e *ValidationError) err() error {
	if len(e.Issues) == 0 {
		return nil
	}
	return e
}

// MultiError collects multiple errors
type MultiError struct {
	errors []error
}

// NewMultiError creates a new multi-error collector
func NewMultiError() *MultiError {
	return &MultiError{}
}

// Add adds an error to the collection (ignores nil errors)
func (m *MultiError) Add(err error) {
	if err != nil {
		m.errors = append(m.errors, err)
	}
}

// Len returns the number of errors
func (m *MultiError) Len() int {
	return len(m.errors)
}

// Err returns the collected error, the single error itself, or nil.
func (m *MultiError) Err() error {
	switch len(m.errors) {
	case 0:
		return nil
	case 1:
		return m.errors[0]
	default:
		return m
	}
}

// Unwrap exposes the collected errors to errors.Is and errors.As.
func (m *MultiError) Unwrap() []error {
	return m.errors
}

func (m *MultiError) Error() string {
	if len(m.errors) == 0 {
		return "no errors"
	}
	if len(m.errors) == 1 {
		return m.errors[0].Error()
	}

	parts := []string{fmt.Sprintf("%d errors occurred:", len(m.errors))}
	for i, err := range m.errors {
		parts = append(parts, fmt.Sprintf("  [%d] %v", i+1, err))
	}
	return strings.Join(parts, "\n")
}

// ContextError adds context to an existing error
type ContextError struct {
	Operation string
	Context   map[string]interface{}
	Cause     error
}

func (e *ContextError) Error() string {
	keys := make([]string, 0, len(e.Context))
	for k := range e.Context {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	if len(keys) == 0 {
		return fmt.Sprintf("%s: %v", e.Operation, e.Cause)
	}
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%v", k, e.Context[k])
	}
	return fmt.Sprintf("%s [%s]: %v", e.Operation, strings.Join(parts, ", "), e.Cause)
}

func (e *ContextError) Unwrap() error {
	return e.Cause
}

// WithContext wraps an error with additional context
func WithContext(err error, operation string, context map[string]interface{}) error {
	if err == nil {
		return nil
	}
	return &ContextError{
		Operation: operation,
		Context:   context,
		Cause:     err,
	}
}

// IsValidationError reports whether err is or wraps a ValidationError.
func IsValidationError(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsElementError reports whether err is or wraps an ElementError.
func IsElementError(err error) bool {
	var target *ElementError
	return errors.As(err, &target)
}

// IsPackageError reports whether err is or wraps a PackageError.
func IsPackageError(err error) bool {
	var target *PackageError
	return errors.As(err, &target)
}
