package genealogy

import (
	"github.com/cockroachdb/errors"
)

// Error categories. Every error returned by this package matches exactly one of them
// with errors.Is, plus the more specific sentinel below it.
var (
	// ErrSchema is a column-level problem: a required column is missing or an unknown one is present.
	ErrSchema = errors.New("genealogy: schema error")

	// ErrField is a per-record problem: a missing value, a non-integer, a malformed wbs.
	ErrField = errors.New("genealogy: field error")

	// ErrIntegrity is a cross-record problem: duplicates, unresolved or inconsistent parents.
	ErrIntegrity = errors.New("genealogy: integrity error")

	// ErrQuery is a caller problem on a read over an already built tree.
	ErrQuery = errors.New("genealogy: query error")
)

var (
	ErrMissingColumn   = errors.New("genealogy: missing required column")
	ErrUnknownColumn   = errors.New("genealogy: unknown column")
	ErrDuplicateColumn = errors.New("genealogy: duplicated column")

	ErrMissingField = errors.New("genealogy: missing required field")
	ErrNotInteger   = errors.New("genealogy: value is not an integer")
	ErrInvalidID    = errors.New("genealogy: id must be positive")
	ErrMalformedWBS = errors.New("genealogy: malformed wbs")
	ErrMalformedRow = errors.New("genealogy: malformed row")

	ErrDuplicateID        = errors.New("genealogy: duplicated id")
	ErrDuplicateWBS       = errors.New("genealogy: duplicated wbs")
	ErrUnresolvedParent   = errors.New("genealogy: parent wbs not found")
	ErrGenerationMismatch = errors.New("genealogy: generation does not match wbs depth")
	ErrParentMismatch     = errors.New("genealogy: wbs not under parent wbs")
	ErrDanglingParent     = errors.New("genealogy: parent id not found")

	ErrRootSelector = errors.New("genealogy: exactly one of root id or root wbs must be provided")
	ErrRootNotFound = errors.New("genealogy: root not found")
	ErrInvalidDepth = errors.New("genealogy: invalid max depth")
)

func classify(category, kind error, format string, args ...interface{}) error {
	err := errors.NewWithDepthf(1, format, args...)
	return errors.Mark(errors.Mark(err, kind), category)
}

func schemaErrorf(kind error, format string, args ...interface{}) error {
	return classify(ErrSchema, kind, format, args...)
}

func fieldErrorf(kind error, format string, args ...interface{}) error {
	return classify(ErrField, kind, format, args...)
}

func integrityErrorf(kind error, format string, args ...interface{}) error {
	return classify(ErrIntegrity, kind, format, args...)
}

func queryErrorf(kind error, format string, args ...interface{}) error {
	return classify(ErrQuery, kind, format, args...)
}
