package application

import "errors"

// ErrorKind is the closed set of business failure kinds. The wire status for
// every kind is 400 (historical contract); the taxonomy stays richer than the
// status code so callers and tests can discriminate.
type ErrorKind int

const (
	// KindNotFound means the referenced aggregate root is absent.
	KindNotFound ErrorKind = iota + 1
	// KindEntryNotFound means the root exists but the referenced embedded
	// entry does not.
	KindEntryNotFound
	// KindForbidden means the caller is authenticated but does not own the
	// field designated as the ownership key for the mutation.
	KindForbidden
	// KindConflict covers state-dependent rule violations (already liked,
	// not yet liked, duplicate registration).
	KindConflict
)

// Error carries a failure kind together with the exact message exposed on the
// wire in the {errors:[{msg}]} envelope.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return e.Message }

// NotFound builds an aggregate-miss error, e.g. "Post not found".
func NotFound(entity string) *Error {
	return &Error{Kind: KindNotFound, Message: entity + " not found"}
}

// EntryNotFound builds an embedded-entry-miss error, e.g. "Experience not found".
func EntryNotFound(entity string) *Error {
	return &Error{Kind: KindEntryNotFound, Message: entity + " not found"}
}

// Forbidden is returned whenever an ownership check fails.
func Forbidden() *Error {
	return &Error{Kind: KindForbidden, Message: "User not authorized"}
}

var (
	// ErrNoProfile is the historical message for a missing own profile.
	ErrNoProfile = &Error{Kind: KindNotFound, Message: "There is no profile for this user"}
	// ErrAlreadyLiked rejects a second like by the same user.
	ErrAlreadyLiked = &Error{Kind: KindConflict, Message: "Post already liked"}
	// ErrNotLiked rejects an unlike when no like by the user exists.
	ErrNotLiked = &Error{Kind: KindConflict, Message: "Post has not yet been liked"}
	// ErrUserExists rejects registration with a taken email.
	ErrUserExists = &Error{Kind: KindConflict, Message: "User already exists"}
	// ErrInvalidCredentials is returned for unknown email and bad password
	// alike, so login failures do not leak which one it was.
	ErrInvalidCredentials = &Error{Kind: KindConflict, Message: "Invalid credentials"}
)

// KindOf extracts the failure kind from an error chain; zero when the error is
// not a business error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
