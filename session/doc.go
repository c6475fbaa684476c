// Package session provides the standard HTTP implementation of
// tidal.Session: bearer-token requests against the catalog API with JSON
// decoding and typed error reporting.
//
// The session is the trust boundary for transport concerns. Retry,
// backoff and token refresh belong here (or in a wrapper around it),
// never in the entity model above it.
//
//	sess := session.New(session.Config{
//	    Token:            os.Getenv("TIDAL_TOKEN"),
//	    CountryCode:      "US",
//	    PreferredQuality: tidal.HiFi,
//	    RequiredQuality:  tidal.Normal,
//	})
package session
