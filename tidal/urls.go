package tidal

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// Route names as they appear in catalog URLs.
const (
	routeTrack    = "track"
	routeAlbum    = "album"
	routePlaylist = "playlist"
)

// IDFromURL extracts the entity identifier that follows the given route
// segment in a catalog URL. Recognized shapes include:
//
//	https://tidal.com/browse/track/152676381
//	https://listen.tidal.com/album/152676380
//	https://tidal.com/playlist/55b2c563-a238-4ebf-9a45-284fc5fa1b7c
//
// Track and album ids must be numeric; playlist ids must be UUIDs.
func IDFromURL(rawURL, route string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("tidal: parse url %q: %w", rawURL, err)
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i := 0; i+1 < len(segments); i++ {
		if segments[i] != route {
			continue
		}
		id := segments[i+1]
		if err := validateID(route, id); err != nil {
			return "", err
		}
		return id, nil
	}
	return "", fmt.Errorf("tidal: no %s id in url %q", route, rawURL)
}

// KindFromURL detects which entity kind a catalog URL points at from its
// route segment.
func KindFromURL(rawURL string) (Kind, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return 0, fmt.Errorf("tidal: parse url %q: %w", rawURL, err)
	}
	for _, segment := range strings.Split(strings.Trim(u.Path, "/"), "/") {
		switch segment {
		case routeTrack:
			return KindTrack, nil
		case routeAlbum:
			return KindAlbum, nil
		case routePlaylist:
			return KindPlaylist, nil
		}
	}
	return 0, fmt.Errorf("tidal: no known route in url %q", rawURL)
}

func validateID(route, id string) error {
	if route == routePlaylist {
		if _, err := uuid.Parse(id); err != nil {
			return fmt.Errorf("tidal: %q is not a playlist id: %w", id, err)
		}
		return nil
	}
	if id == "" {
		return fmt.Errorf("tidal: empty %s id", route)
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return fmt.Errorf("tidal: %q is not a %s id", id, route)
		}
	}
	return nil
}
