package tidal

import (
	"context"
	"errors"
	"testing"
)

func TestPlaylistReload(t *testing.T) {
	const id = "55b2c563-a238-4ebf-9a45-284fc5fa1b7c"

	sess := newFakeSession()
	sess.responses["/v1/playlists/"+id] = map[string]any{
		"uuid":        id,
		"title":       "Road Trip",
		"image":       "aaaa-bbbb",
		"squareImage": "cccc-dddd",
	}

	playlist := NewPlaylist(sess, Fields{"uuid": id})
	if err := playlist.Reload(context.Background()); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if title, err := playlist.Title(); err != nil || title != "Road Trip" {
		t.Errorf("Title = %q, %v", title, err)
	}
	if playlist.ID() != id {
		t.Errorf("ID = %q", playlist.ID())
	}
}

func TestPlaylistCover(t *testing.T) {
	tests := []struct {
		name    string
		fields  Fields
		wantID  string
		wantErr bool
	}{
		{
			name:   "image preferred",
			fields: Fields{"image": "aaaa-bbbb", "squareImage": "cccc-dddd"},
			wantID: "aaaa-bbbb",
		},
		{
			name:   "square image fallback",
			fields: Fields{"squareImage": "cccc-dddd"},
			wantID: "cccc-dddd",
		},
		{
			name:   "null image falls back",
			fields: Fields{"image": nil, "squareImage": "cccc-dddd"},
			wantID: "cccc-dddd",
		},
		{
			name:    "neither present",
			fields:  Fields{"title": "x"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			playlist := NewPlaylist(newFakeSession(), tt.fields)
			cover, err := playlist.Cover()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if !errors.Is(err, ErrFieldMissing) {
					t.Errorf("error does not wrap ErrFieldMissing: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Cover: %v", err)
			}
			if cover.ID() != tt.wantID {
				t.Errorf("cover id = %q, want %q", cover.ID(), tt.wantID)
			}
		})
	}
}

func TestAlbumCoverAndYear(t *testing.T) {
	album := NewAlbum(newFakeSession(), Fields(albumDoc()))

	cover, err := album.Cover()
	if err != nil {
		t.Fatalf("Cover: %v", err)
	}
	if cover.ID() != "abcd-1234" {
		t.Errorf("cover id = %q", cover.ID())
	}

	year, err := album.Year()
	if err != nil {
		t.Fatalf("Year: %v", err)
	}
	if year != 1997 {
		t.Errorf("year = %d, want 1997", year)
	}
}
