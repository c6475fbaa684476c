package tidal

import (
	"context"
	"net/url"
)

// Entity is implemented by every catalog entity variant. There is no
// instantiable base entity: operations that only make sense on a concrete
// variant exist only on Track, Album and Playlist.
type Entity interface {
	// ID returns the entity identifier, or "" before one is known.
	ID() string

	// URL returns the entity's canonical catalog URL. The field is part
	// of the full catalog document, so it is only present after a reload.
	URL() (string, error)

	// Reload fetches the entity's full catalog document and replaces its
	// fields with it.
	Reload(ctx context.Context) error

	// Fields exposes the raw wire data for fields without a typed
	// accessor.
	Fields() Fields
}

// resource is the state shared by all entity variants: the owning session
// (shared, not owned), the raw wire fields, and the wire key of the
// identifier field ("id" for tracks and albums, "uuid" for playlists).
type resource struct {
	sess    Session
	fields  Fields
	idField string
}

// Fields exposes the raw wire data.
func (r *resource) Fields() Fields { return r.fields }

// ID returns the entity identifier, or "" before one is known.
func (r *resource) ID() string {
	v, ok := r.fields[r.idField]
	if !ok {
		return ""
	}
	return stringify(v)
}

// URL returns the entity's catalog URL.
func (r *resource) URL() (string, error) {
	return r.fields.String("url")
}

// reload issues one GET to the entity's canonical path under the
// session's country code and replaces the field mapping with the decoded
// body. Fetch errors propagate unchanged; the previous fields are kept on
// failure.
func (r *resource) reload(ctx context.Context, path string) error {
	q := url.Values{}
	q.Set("countryCode", r.sess.CountryCode())

	var body map[string]any
	if err := r.sess.Get(ctx, path, q, &body); err != nil {
		return err
	}
	r.fields = Fields(body)
	return nil
}
