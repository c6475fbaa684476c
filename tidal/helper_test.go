package tidal

import (
	"context"
	"encoding/json"
	"net/url"
	"sync"
)

// fakeSession serves canned JSON bodies keyed by request path, or
// delegates to a handler when one is set. It records every request so
// tests can count fetches.
type fakeSession struct {
	mu        sync.Mutex
	responses map[string]any
	handler   func(path string, query url.Values) (any, error)
	calls     []string

	country   string
	preferred Quality
	required  Quality
}

func newFakeSession() *fakeSession {
	return &fakeSession{
		responses: make(map[string]any),
		country:   "US",
		preferred: HiFi,
		required:  Normal,
	}
}

func (s *fakeSession) Get(_ context.Context, path string, query url.Values, out any) error {
	s.mu.Lock()
	s.calls = append(s.calls, path)
	handler := s.handler
	body, ok := s.responses[path]
	s.mu.Unlock()

	if handler != nil {
		var err error
		body, err = handler(path, query)
		if err != nil {
			return err
		}
	} else if !ok {
		return &RequestError{Status: 404, Method: "GET", URL: path}
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

func (s *fakeSession) CountryCode() string       { return s.country }
func (s *fakeSession) PreferredQuality() Quality { return s.preferred }
func (s *fakeSession) RequiredQuality() Quality  { return s.required }

func (s *fakeSession) callCount(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range s.calls {
		if c == path {
			n++
		}
	}
	return n
}
