package tidal

import (
	"fmt"
	"strings"
)

// Cover is a reference to a catalog image. It is a plain value: building
// the URL is pure string work, so nothing is cached and no network is
// involved.
type Cover struct {
	id string
}

// NewCover wraps an opaque image identifier as served by the catalog,
// hyphen-separated like "aaaa-bbbb-cccc".
func NewCover(id string) Cover {
	return Cover{id: id}
}

// ID returns the opaque image identifier.
func (c Cover) ID() string { return c.id }

// URL builds the image URL for the given resolution. The identifier's
// hyphens become path separators. Resolutions the service actually
// serves: 80x80, 160x160, 320x320, 640x640, 1280x1280.
func (c Cover) URL(width, height int) string {
	return fmt.Sprintf("https://resources.tidal.com/images/%s/%dx%d.jpg",
		strings.ReplaceAll(c.id, "-", "/"), width, height)
}
