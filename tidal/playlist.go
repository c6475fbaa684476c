package tidal

import "context"

// Playlist is a catalog playlist. Unlike tracks and albums it is keyed by
// a UUID, carried in the "uuid" wire field.
type Playlist struct {
	resource
}

// NewPlaylist wraps raw wire fields in a Playlist. It does not fetch
// anything; use PlaylistFromID for the cached, reloaded form.
func NewPlaylist(sess Session, fields Fields) *Playlist {
	return &Playlist{resource{sess: sess, fields: fields, idField: "uuid"}}
}

// Reload replaces the playlist's fields with its full catalog document.
func (p *Playlist) Reload(ctx context.Context) error {
	return p.reload(ctx, "/v1/playlists/"+p.ID())
}

// Title returns the playlist title.
func (p *Playlist) Title() (string, error) {
	return p.fields.String("title")
}

// Cover returns the playlist cover image. The service exposes both an
// "image" and a "squareImage" identifier and it is unsettled which one is
// authoritative; "image" wins when present, "squareImage" is the
// fallback.
func (p *Playlist) Cover() (Cover, error) {
	if id := optionalString(p.fields, "image"); id != "" {
		return Cover{id: id}, nil
	}
	if id := optionalString(p.fields, "square_image"); id != "" {
		return Cover{id: id}, nil
	}
	return Cover{}, &FieldError{Name: "image", Key: "image"}
}

// Tracks starts a traversal of the playlist's track listing in server
// order. Each call returns a fresh iterator beginning at offset zero;
// pageSize values below one fall back to DefaultPageSize.
func (p *Playlist) Tracks(pageSize int) *TrackIterator {
	return newTrackIterator(p.sess, "/v1/playlists/"+p.ID()+"/tracks", pageSize)
}
