package tidal

import (
	"errors"
	"fmt"
)

// ErrNotImplemented is returned when an operation is invoked for an entity
// kind that does not support it, such as resolving a URL for a kind that
// declares no route name.
var ErrNotImplemented = errors.New("tidal: not implemented")

// ErrFieldMissing is the sentinel wrapped by every FieldError. Use
// errors.Is(err, ErrFieldMissing) to test for missing-field conditions
// without caring which field was asked for.
var ErrFieldMissing = errors.New("tidal: field missing")

// FieldError reports access to a field that is absent from an entity's
// wire data. It carries both the logical snake_case name the caller used
// and the camelCase key that was looked up.
type FieldError struct {
	Name string
	Key  string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("tidal: no field %q (wire key %q)", e.Name, e.Key)
}

func (e *FieldError) Unwrap() error { return ErrFieldMissing }

// RequestError is a non-success response from the catalog API. The session
// produces it; the entity model propagates it to the caller unchanged,
// with no local retry.
type RequestError struct {
	Status int
	Method string
	URL    string
	Body   string
}

func (e *RequestError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("tidal: %s %s: HTTP %d: %s", e.Method, e.URL, e.Status, e.Body)
	}
	return fmt.Sprintf("tidal: %s %s: HTTP %d", e.Method, e.URL, e.Status)
}

// IsRetryable reports whether the response indicates a transient server
// condition. Acting on it is the session's business, not the entity
// model's.
func (e *RequestError) IsRetryable() bool {
	return e.Status == 429 || (e.Status >= 500 && e.Status < 600)
}

// InsufficientQualityError is returned by Track.FileURL when the server
// delivers a stream below the caller's required quality tier. The model
// never silently downgrades; the caller decides what to do with the
// shortfall.
type InsufficientQualityError struct {
	TrackID   string
	Delivered Quality
	Required  Quality
}

func (e *InsufficientQualityError) Error() string {
	return fmt.Sprintf("tidal: track %s delivered %s audio, required at least %s",
		e.TrackID, e.Delivered, e.Required)
}
