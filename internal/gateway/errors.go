package gateway

import (
	"errors"
	"fmt"
	"net/http"
)

// FetchError reports a non-success HTTP status or a transport failure.
// Status is 0 when no response was received.
type FetchError struct {
	Method string
	Path   string
	Status int
	Detail string
	Err    error
}

func (e *FetchError) Error() string {
	switch {
	case e.Status != 0 && e.Detail != "":
		return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.Status, e.Detail)
	case e.Status != 0:
		return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.Status)
	default:
		return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
	}
}

func (e *FetchError) Unwrap() error { return e.Err }

// IsNotFound reports whether err is a FetchError with status 404.
func IsNotFound(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe) && fe.Status == http.StatusNotFound
}

// IsUnauthorized reports whether err is a FetchError with status 401.
func IsUnauthorized(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe) && fe.Status == http.StatusUnauthorized
}
