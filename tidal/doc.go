// Package tidal is a lazy, cached object model for the Tidal music
// catalog. Tracks, albums and playlists are identity-keyed entities
// backed by paginated REST lookups; each entity is fetched at most once
// per registry and concurrent lookups for the same identity share a
// single in-flight request.
//
// # Entities
//
// Resolve entities by id or catalog URL; the identity registry fetches
// and memoizes them:
//
//	track, err := tidal.TrackFromURL(ctx, sess, "https://tidal.com/browse/track/152676381")
//	title, _ := track.Title()
//	quality, _ := track.AudioQuality()
//
// All network traffic goes through the Session collaborator, which owns
// authentication and retry policy. The session package provides the
// standard implementation.
//
// # Collections
//
// Albums and playlists expose their track listings as lazy, restartable
// traversals in server order:
//
//	it := album.Tracks(tidal.DefaultPageSize)
//	for it.Next(ctx) {
//	    fmt.Println(it.Track().ID())
//	}
//	if err := it.Err(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Streams
//
// FileURL negotiates a playable stream URL under a quality contract: the
// preferred tier is requested, the tier the server actually delivered is
// checked against the required minimum, and a shortfall is an
// *InsufficientQualityError rather than a silent downgrade:
//
//	url, err := track.FileURL(ctx, tidal.StreamOptions{})
//	var iqe *tidal.InsufficientQualityError
//	if errors.As(err, &iqe) {
//	    log.Printf("only %s available", iqe.Delivered)
//	}
//
// # Wire fields
//
// Entities keep their raw server document in a Fields map. The service
// uses camelCase keys; accessors take snake_case names and translate, so
// track.Fields().String("audio_quality") reads the "audioQuality" key.
// Accessing an absent field is an error wrapping ErrFieldMissing, never a
// silent zero value.
package tidal
