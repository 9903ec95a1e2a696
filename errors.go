package attck

import (
	"errors"
	"fmt"
)

// Sentinel errors for common load-time failure conditions. These can be
// used with errors.Is().
var (
	// ErrSchemaInvalid indicates a source document lacks the expected
	// top-level collections.
	ErrSchemaInvalid = errors.New("document schema invalid")

	// ErrDataUnavailable indicates the dataset provider could not
	// produce a document from cache or source.
	ErrDataUnavailable = errors.New("dataset unavailable")

	// ErrInvalidConfig indicates the provided configuration is invalid
	// or incomplete.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Error kinds categorize errors by their type.
const (
	// KindSchema represents source documents missing expected structure.
	KindSchema = "schema"

	// KindUnavailable represents documents that could not be produced.
	KindUnavailable = "unavailable"

	// KindConfiguration represents errors in client configuration.
	KindConfiguration = "configuration"

	// KindQuery represents errors in filter expressions.
	KindQuery = "query"
)

// Error is a structured error that wraps underlying errors with the
// operation that failed and the category of failure.
//
// Error supports unwrapping, making it compatible with errors.Is() and
// errors.As().
type Error struct {
	// Op is the operation that failed (e.g. "Attck.Update").
	Op string

	// Kind categorizes the error (e.g. KindSchema, KindUnavailable).
	Kind string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("attck: %s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("attck: %s (%s): %v", e.Op, e.Kind, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error on Kind (and Op when the target sets one), or
// delegates to the underlying error.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		if t.Kind != "" && e.Kind == t.Kind {
			return t.Op == "" || e.Op == t.Op
		}
		return false
	}
	return errors.Is(e.Err, target)
}

// NewSchemaError creates an Error with KindSchema.
func NewSchemaError(op string, err error) *Error {
	return &Error{Op: op, Kind: KindSchema, Err: err}
}

// NewUnavailableError creates an Error with KindUnavailable.
func NewUnavailableError(op string, err error) *Error {
	return &Error{Op: op, Kind: KindUnavailable, Err: err}
}

// NewConfigurationError creates an Error with KindConfiguration.
func NewConfigurationError(op string, err error) *Error {
	return &Error{Op: op, Kind: KindConfiguration, Err: err}
}

// NewQueryError creates an Error with KindQuery.
func NewQueryError(op string, err error) *Error {
	return &Error{Op: op, Kind: KindQuery, Err: err}
}
