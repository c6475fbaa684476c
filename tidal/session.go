package tidal

import (
	"context"
	"net/url"
)

// Session is the network collaborator all catalog requests go through.
// Implementations own authentication, token refresh and any retry or
// backoff policy; the entity model only builds request paths and decodes
// response bodies. A non-success response must surface as a *RequestError
// so callers can inspect the status.
//
// The session package provides the standard implementation.
type Session interface {
	// Get issues a GET for path (relative to the API root) with the given
	// query parameters and decodes the JSON response body into out.
	Get(ctx context.Context, path string, query url.Values, out any) error

	// CountryCode is the locale the catalog is browsed under, passed on
	// every entity request.
	CountryCode() string

	// PreferredQuality is the tier requested when a stream resolution
	// does not name one.
	PreferredQuality() Quality

	// RequiredQuality is the minimum tier accepted when a stream
	// resolution does not name one.
	RequiredQuality() Quality
}
