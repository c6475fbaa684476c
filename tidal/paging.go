package tidal

import (
	"context"
	"net/url"
	"strconv"
)

// DefaultPageSize is the listing page size used when a caller does not
// pick one.
const DefaultPageSize = 50

// trackPage mirrors the paginated listing wire format.
type trackPage struct {
	Items  []map[string]any `json:"items"`
	Offset int              `json:"offset"`
	Limit  int              `json:"limit"`
	Total  int              `json:"totalNumberOfItems"`
}

// TrackIterator walks a paginated track listing endpoint lazily, fetching
// pages on demand and yielding tracks in server order. Every call to
// Album.Tracks or Playlist.Tracks returns a fresh iterator starting at
// offset zero, so traversals are restartable and independent; a single
// iterator is not safe for concurrent use.
//
// Tracks are built directly from the embedded listing items. They do not
// pass through the identity registry and are not individually reloaded.
//
// Termination rests on the server honoring its own pagination contract:
// the echoed offset+limit window must strictly increase and the reported
// total must stay bounded.
type TrackIterator struct {
	sess     Session
	path     string
	pageSize int

	offset int
	total  int
	queue  []*Track
	cur    *Track
	err    error
	done   bool
}

func newTrackIterator(sess Session, path string, pageSize int) *TrackIterator {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	// total starts at 1 so the first fetch always happens; the response
	// replaces it with the real count.
	return &TrackIterator{sess: sess, path: path, pageSize: pageSize, total: 1}
}

// Next advances to the next track, fetching a page when the local queue
// runs dry. It returns false when the listing is exhausted or a fetch
// failed; check Err to tell the two apart.
func (it *TrackIterator) Next(ctx context.Context) bool {
	if it.err != nil || it.done {
		return false
	}
	for len(it.queue) == 0 {
		if it.offset >= it.total {
			it.done = true
			return false
		}
		if err := it.fetch(ctx); err != nil {
			it.err = err
			return false
		}
	}
	it.cur = it.queue[0]
	it.queue = it.queue[1:]
	return true
}

func (it *TrackIterator) fetch(ctx context.Context) error {
	q := url.Values{}
	q.Set("countryCode", it.sess.CountryCode())
	q.Set("offset", strconv.Itoa(it.offset))
	q.Set("limit", strconv.Itoa(it.pageSize))

	var page trackPage
	if err := it.sess.Get(ctx, it.path, q, &page); err != nil {
		return err
	}

	it.total = page.Total
	// The server's echoed window is authoritative, not the requested
	// one: it may serve smaller pages than asked for.
	it.offset = page.Offset + page.Limit

	for _, item := range page.Items {
		it.queue = append(it.queue, NewTrack(it.sess, Fields(item)))
	}
	return nil
}

// Track returns the track Next advanced to.
func (it *TrackIterator) Track() *Track { return it.cur }

// Err returns the fetch error that stopped the traversal, if any.
func (it *TrackIterator) Err() error { return it.err }

// Collect drains the remaining traversal into a slice.
func (it *TrackIterator) Collect(ctx context.Context) ([]*Track, error) {
	var tracks []*Track
	for it.Next(ctx) {
		tracks = append(tracks, it.Track())
	}
	return tracks, it.Err()
}
