package tidal

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Kind identifies a concrete entity variant.
type Kind int

const (
	KindTrack Kind = iota
	KindAlbum
	KindPlaylist
)

// route returns the kind's URL route name. Kinds that declare no route
// cannot be resolved from URLs.
func (k Kind) route() (string, bool) {
	switch k {
	case KindTrack:
		return routeTrack, true
	case KindAlbum:
		return routeAlbum, true
	case KindPlaylist:
		return routePlaylist, true
	}
	return "", false
}

func (k Kind) String() string {
	switch k {
	case KindTrack:
		return "track"
	case KindAlbum:
		return "album"
	case KindPlaylist:
		return "playlist"
	}
	return "unknown"
}

// Registry memoizes catalog entities by (kind, id) so every identity is
// fetched at most once. Entries live for the registry's lifetime; bounded
// growth is an accepted tradeoff for a catalog-sized key space.
//
// Concurrent lookups for a key share a single in-flight reload. A caller
// that cancels its context abandons only its own wait: the shared fetch
// keeps running and its result still lands in the registry for the other
// waiters. A failed fetch is not memoized, so the next lookup retries.
type Registry struct {
	group singleflight.Group

	mu      sync.RWMutex
	entries map[registryKey]Entity
}

type registryKey struct {
	kind Kind
	id   string
}

// NewRegistry returns an empty registry. Most callers can use the
// package-level FromID/FromURL functions, which share DefaultRegistry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[registryKey]Entity)}
}

// DefaultRegistry is the process-wide registry behind the package-level
// lookup functions.
var DefaultRegistry = NewRegistry()

func (r *Registry) lookup(ctx context.Context, key registryKey, create func(context.Context) (Entity, error)) (Entity, error) {
	r.mu.RLock()
	e, ok := r.entries[key]
	r.mu.RUnlock()
	if ok {
		return e, nil
	}

	ch := r.group.DoChan(key.kind.String()+"/"+key.id, func() (any, error) {
		// The fetch must outlive any individual waiter.
		e, err := create(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		r.mu.Lock()
		r.entries[key] = e
		r.mu.Unlock()
		return e, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(Entity), nil
	}
}

// TrackByID returns the track with the given id, fetching it on first
// use.
func (r *Registry) TrackByID(ctx context.Context, sess Session, id string) (*Track, error) {
	e, err := r.lookup(ctx, registryKey{KindTrack, id}, func(ctx context.Context) (Entity, error) {
		t := NewTrack(sess, Fields{"id": id})
		if err := t.Reload(ctx); err != nil {
			return nil, err
		}
		return t, nil
	})
	if err != nil {
		return nil, err
	}
	return e.(*Track), nil
}

// AlbumByID returns the album with the given id, fetching it on first
// use.
func (r *Registry) AlbumByID(ctx context.Context, sess Session, id string) (*Album, error) {
	e, err := r.lookup(ctx, registryKey{KindAlbum, id}, func(ctx context.Context) (Entity, error) {
		a := NewAlbum(sess, Fields{"id": id})
		if err := a.Reload(ctx); err != nil {
			return nil, err
		}
		return a, nil
	})
	if err != nil {
		return nil, err
	}
	return e.(*Album), nil
}

// PlaylistByID returns the playlist with the given UUID, fetching it on
// first use.
func (r *Registry) PlaylistByID(ctx context.Context, sess Session, id string) (*Playlist, error) {
	e, err := r.lookup(ctx, registryKey{KindPlaylist, id}, func(ctx context.Context) (Entity, error) {
		p := NewPlaylist(sess, Fields{"uuid": id})
		if err := p.Reload(ctx); err != nil {
			return nil, err
		}
		return p, nil
	})
	if err != nil {
		return nil, err
	}
	return e.(*Playlist), nil
}

// EntityByURL resolves a catalog URL for the given kind through the
// registry. A kind without a route name cannot be resolved this way and
// returns ErrNotImplemented.
func (r *Registry) EntityByURL(ctx context.Context, sess Session, kind Kind, rawURL string) (Entity, error) {
	route, ok := kind.route()
	if !ok {
		return nil, ErrNotImplemented
	}
	id, err := IDFromURL(rawURL, route)
	if err != nil {
		return nil, err
	}
	switch kind {
	case KindTrack:
		return r.TrackByID(ctx, sess, id)
	case KindAlbum:
		return r.AlbumByID(ctx, sess, id)
	case KindPlaylist:
		return r.PlaylistByID(ctx, sess, id)
	}
	return nil, ErrNotImplemented
}

// TrackByURL resolves a track URL through the registry.
func (r *Registry) TrackByURL(ctx context.Context, sess Session, rawURL string) (*Track, error) {
	e, err := r.EntityByURL(ctx, sess, KindTrack, rawURL)
	if err != nil {
		return nil, err
	}
	return e.(*Track), nil
}

// AlbumByURL resolves an album URL through the registry.
func (r *Registry) AlbumByURL(ctx context.Context, sess Session, rawURL string) (*Album, error) {
	e, err := r.EntityByURL(ctx, sess, KindAlbum, rawURL)
	if err != nil {
		return nil, err
	}
	return e.(*Album), nil
}

// PlaylistByURL resolves a playlist URL through the registry.
func (r *Registry) PlaylistByURL(ctx context.Context, sess Session, rawURL string) (*Playlist, error) {
	e, err := r.EntityByURL(ctx, sess, KindPlaylist, rawURL)
	if err != nil {
		return nil, err
	}
	return e.(*Playlist), nil
}

// Resolve detects the entity kind from the URL's route segment and
// resolves it through the registry.
func (r *Registry) Resolve(ctx context.Context, sess Session, rawURL string) (Entity, error) {
	kind, err := KindFromURL(rawURL)
	if err != nil {
		return nil, err
	}
	return r.EntityByURL(ctx, sess, kind, rawURL)
}

// TrackFromID fetches a track through DefaultRegistry.
func TrackFromID(ctx context.Context, sess Session, id string) (*Track, error) {
	return DefaultRegistry.TrackByID(ctx, sess, id)
}

// AlbumFromID fetches an album through DefaultRegistry.
func AlbumFromID(ctx context.Context, sess Session, id string) (*Album, error) {
	return DefaultRegistry.AlbumByID(ctx, sess, id)
}

// PlaylistFromID fetches a playlist through DefaultRegistry.
func PlaylistFromID(ctx context.Context, sess Session, id string) (*Playlist, error) {
	return DefaultRegistry.PlaylistByID(ctx, sess, id)
}

// TrackFromURL resolves a track URL through DefaultRegistry.
func TrackFromURL(ctx context.Context, sess Session, rawURL string) (*Track, error) {
	return DefaultRegistry.TrackByURL(ctx, sess, rawURL)
}

// AlbumFromURL resolves an album URL through DefaultRegistry.
func AlbumFromURL(ctx context.Context, sess Session, rawURL string) (*Album, error) {
	return DefaultRegistry.AlbumByURL(ctx, sess, rawURL)
}

// PlaylistFromURL resolves a playlist URL through DefaultRegistry.
func PlaylistFromURL(ctx context.Context, sess Session, rawURL string) (*Playlist, error) {
	return DefaultRegistry.PlaylistByURL(ctx, sess, rawURL)
}
