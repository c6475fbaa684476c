package session

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/fumr/tidalgo/tidal"
)

// DefaultBaseURL is the catalog API root.
const DefaultBaseURL = "https://api.tidal.com"

const defaultTimeout = 60 * time.Second

// Config holds everything a Session needs. Zero values fall back to
// sensible defaults where one exists; Token has no default.
type Config struct {
	// Token is the OAuth access token sent as a bearer credential.
	// Obtaining and refreshing it is the caller's concern.
	Token string

	// CountryCode is the locale the catalog is browsed under.
	CountryCode string

	// PreferredQuality is the tier requested for streams when the caller
	// does not name one.
	PreferredQuality tidal.Quality

	// RequiredQuality is the minimum tier accepted for streams when the
	// caller does not name one.
	RequiredQuality tidal.Quality

	// BaseURL overrides the API root, mainly for tests.
	BaseURL string

	// Timeout bounds each request. Defaults to 60 seconds.
	Timeout time.Duration
}

// Session is the standard HTTP implementation of tidal.Session.
//
// It deliberately does not retry: a non-success response is returned to
// the entity model as a *tidal.RequestError and the caller decides.
//
// Example:
//
//	sess := session.New(session.Config{
//	    Token:            token,
//	    CountryCode:      "US",
//	    PreferredQuality: tidal.HiFi,
//	})
//	track, err := tidal.TrackFromID(ctx, sess, "152676381")
type Session struct {
	httpClient *http.Client
	baseURL    string
	token      string
	country    string
	preferred  tidal.Quality
	required   tidal.Quality
}

// New creates a Session from cfg.
func New(cfg Config) *Session {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Session{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		token:      cfg.Token,
		country:    cfg.CountryCode,
		preferred:  cfg.PreferredQuality,
		required:   cfg.RequiredQuality,
	}
}

// Get issues a GET against the API root and decodes the JSON response
// body into out. A non-2xx status is a *tidal.RequestError carrying the
// status and a bounded slice of the body.
func (s *Session) Get(ctx context.Context, path string, query url.Values, out any) error {
	requestURL := s.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &tidal.RequestError{
			Status: resp.StatusCode,
			Method: http.MethodGet,
			URL:    requestURL,
			Body:   string(body),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("session: decode %s: %w", requestURL, err)
	}
	return nil
}

// CountryCode implements tidal.Session.
func (s *Session) CountryCode() string { return s.country }

// PreferredQuality implements tidal.Session.
func (s *Session) PreferredQuality() tidal.Quality { return s.preferred }

// RequiredQuality implements tidal.Session.
func (s *Session) RequiredQuality() tidal.Quality { return s.required }
