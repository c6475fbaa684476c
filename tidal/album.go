package tidal

import (
	"context"
	"fmt"
	"strconv"
)

// Album is a catalog album: an entity in its own right and a paginated
// collection of tracks.
type Album struct {
	resource
}

// NewAlbum wraps raw wire fields in an Album. It does not fetch anything;
// use AlbumFromID for the cached, reloaded form.
func NewAlbum(sess Session, fields Fields) *Album {
	return &Album{resource{sess: sess, fields: fields, idField: "id"}}
}

// Reload replaces the album's fields with its full catalog document.
func (a *Album) Reload(ctx context.Context) error {
	return a.reload(ctx, "/v1/albums/"+a.ID())
}

// Title returns the raw album title.
func (a *Album) Title() (string, error) {
	return a.fields.String("title")
}

// ArtistName returns the album artist's name.
func (a *Album) ArtistName() (string, error) {
	artist, err := a.fields.Sub("artist")
	if err != nil {
		return "", err
	}
	return artist.String("name")
}

// Year returns the release year, derived from the wire release date
// ("2006-01-02"). A bare "year" field is accepted as a fallback.
func (a *Album) Year() (int, error) {
	if date := optionalString(a.fields, "release_date"); len(date) >= 4 {
		year, err := strconv.Atoi(date[:4])
		if err == nil {
			return year, nil
		}
	}
	if a.fields.Has("year") {
		return a.fields.Int("year")
	}
	return 0, fmt.Errorf("tidal: album %s has no release date", a.ID())
}

// Cover returns the album cover image.
func (a *Album) Cover() (Cover, error) {
	id, err := a.fields.String("cover")
	if err != nil {
		return Cover{}, err
	}
	return Cover{id: id}, nil
}

// Tracks starts a traversal of the album's track listing in server order.
// Each call returns a fresh iterator beginning at offset zero; pageSize
// values below one fall back to DefaultPageSize.
func (a *Album) Tracks(pageSize int) *TrackIterator {
	return newTrackIterator(a.sess, "/v1/albums/"+a.ID()+"/tracks", pageSize)
}
