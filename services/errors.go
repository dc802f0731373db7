package services

import "errors"

// ErrorKind tags every failure the services can return. All kinds except
// KindStoreUnavailable are expected control-flow outcomes.
type ErrorKind string

const (
	KindForbidden          ErrorKind = "forbidden"
	KindNotFound           ErrorKind = "not_found"
	KindCourseNotPublished ErrorKind = "course_not_published"
	KindInvalidStatus      ErrorKind = "invalid_status"
	KindStoreUnavailable   ErrorKind = "store_unavailable"
)

type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return string(e.Kind) + ": " + e.Message }

func fail(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func storeFailure(err error) *Error {
	return &Error{Kind: KindStoreUnavailable, Message: err.Error()}
}

// KindOf extracts the kind from a service error. Unknown errors are treated
// as store failures.
func KindOf(err error) ErrorKind {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Kind
	}
	return KindStoreUnavailable
}
