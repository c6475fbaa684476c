package tidal

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"testing"
)

// pagedListing emulates a listing endpoint over n items, serving pages of
// at most serveLimit items regardless of the requested limit.
func pagedListing(n, serveLimit int) func(path string, query url.Values) (any, error) {
	return func(path string, query url.Values) (any, error) {
		offset, err := strconv.Atoi(query.Get("offset"))
		if err != nil {
			return nil, fmt.Errorf("bad offset %q", query.Get("offset"))
		}
		limit, err := strconv.Atoi(query.Get("limit"))
		if err != nil {
			return nil, fmt.Errorf("bad limit %q", query.Get("limit"))
		}
		if serveLimit > 0 && limit > serveLimit {
			limit = serveLimit
		}

		var items []map[string]any
		for i := offset; i < n && i < offset+limit; i++ {
			items = append(items, map[string]any{"id": i + 1, "title": fmt.Sprintf("track %d", i+1)})
		}
		return map[string]any{
			"items":              items,
			"offset":             offset,
			"limit":              limit,
			"totalNumberOfItems": n,
		}, nil
	}
}

func TestPlaylistTracksTwoPages(t *testing.T) {
	sess := newFakeSession()
	sess.handler = pagedListing(75, 0)

	playlist := NewPlaylist(sess, Fields{"uuid": "55b2c563-a238-4ebf-9a45-284fc5fa1b7c"})
	tracks, err := playlist.Tracks(50).Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}

	if len(tracks) != 75 {
		t.Fatalf("got %d tracks, want 75", len(tracks))
	}
	for i, track := range tracks {
		if track.ID() != strconv.Itoa(i+1) {
			t.Fatalf("track %d has id %q, want server order", i, track.ID())
		}
	}
	if n := sess.callCount("/v1/playlists/55b2c563-a238-4ebf-9a45-284fc5fa1b7c/tracks"); n != 2 {
		t.Errorf("listing fetches = %d, want 2", n)
	}
}

func TestAlbumTracksEmpty(t *testing.T) {
	sess := newFakeSession()
	sess.handler = pagedListing(0, 0)

	album := NewAlbum(sess, Fields{"id": "456"})
	tracks, err := album.Tracks(50).Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if len(tracks) != 0 {
		t.Errorf("got %d tracks, want 0", len(tracks))
	}
	// The sentinel forces exactly one probe fetch.
	if n := sess.callCount("/v1/albums/456/tracks"); n != 1 {
		t.Errorf("listing fetches = %d, want 1", n)
	}
}

func TestTracksServerWindowAuthoritative(t *testing.T) {
	// The server serves pages of 10 no matter that 50 was requested; the
	// iterator must follow the echoed window, not its own arithmetic.
	sess := newFakeSession()
	sess.handler = pagedListing(25, 10)

	album := NewAlbum(sess, Fields{"id": "456"})
	tracks, err := album.Tracks(50).Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if len(tracks) != 25 {
		t.Errorf("got %d tracks, want 25", len(tracks))
	}
	if n := sess.callCount("/v1/albums/456/tracks"); n != 3 {
		t.Errorf("listing fetches = %d, want 3", n)
	}
}

func TestTracksRestartable(t *testing.T) {
	sess := newFakeSession()
	sess.handler = pagedListing(5, 0)
	album := NewAlbum(sess, Fields{"id": "456"})

	first, err := album.Tracks(2).Collect(context.Background())
	if err != nil {
		t.Fatalf("first traversal: %v", err)
	}
	second, err := album.Tracks(2).Collect(context.Background())
	if err != nil {
		t.Fatalf("second traversal: %v", err)
	}
	if len(first) != 5 || len(second) != 5 {
		t.Errorf("traversals yielded %d and %d tracks, want 5 each", len(first), len(second))
	}
}

func TestTracksInterleavedTraversals(t *testing.T) {
	// Two traversals of the same album own independent offset state.
	sess := newFakeSession()
	sess.handler = pagedListing(4, 0)
	album := NewAlbum(sess, Fields{"id": "456"})

	a := album.Tracks(1)
	b := album.Tracks(1)
	ctx := context.Background()

	var aIDs, bIDs []string
	for a.Next(ctx) {
		aIDs = append(aIDs, a.Track().ID())
		if b.Next(ctx) {
			bIDs = append(bIDs, b.Track().ID())
		}
	}
	if err := a.Err(); err != nil {
		t.Fatalf("a: %v", err)
	}
	if err := b.Err(); err != nil {
		t.Fatalf("b: %v", err)
	}
	want := []string{"1", "2", "3", "4"}
	for i, id := range want {
		if aIDs[i] != id || bIDs[i] != id {
			t.Fatalf("interleaved traversals diverged: a=%v b=%v", aIDs, bIDs)
		}
	}
}

func TestTracksFetchFailure(t *testing.T) {
	sess := newFakeSession()
	sess.handler = func(path string, query url.Values) (any, error) {
		if query.Get("offset") != "0" {
			return nil, &RequestError{Status: 500, Method: "GET", URL: path}
		}
		return pagedListing(10, 5)(path, query)
	}

	album := NewAlbum(sess, Fields{"id": "456"})
	it := album.Tracks(5)
	ctx := context.Background()

	got := 0
	for it.Next(ctx) {
		got++
	}
	if got != 5 {
		t.Errorf("yielded %d tracks before the failure, want 5", got)
	}
	if it.Err() == nil {
		t.Fatal("expected fetch error to surface")
	}
	// A stopped iterator stays stopped.
	if it.Next(ctx) {
		t.Error("Next returned true after an error")
	}
}

func TestTracksDefaultPageSize(t *testing.T) {
	sess := newFakeSession()
	var askedLimit string
	sess.handler = func(path string, query url.Values) (any, error) {
		askedLimit = query.Get("limit")
		return pagedListing(1, 0)(path, query)
	}

	album := NewAlbum(sess, Fields{"id": "456"})
	if _, err := album.Tracks(0).Collect(context.Background()); err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if askedLimit != "50" {
		t.Errorf("limit = %q, want default 50", askedLimit)
	}
}
