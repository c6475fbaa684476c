package tidal

import (
	"errors"
	"testing"
)

func TestFieldCasingRoundTrip(t *testing.T) {
	// Every logical name used anywhere in the model must map to exactly
	// one wire key and back.
	tests := []struct {
		logical string
		wire    string
	}{
		{"title", "title"},
		{"audio_quality", "audioQuality"},
		{"audio_modes", "audioModes"},
		{"volume_number", "volumeNumber"},
		{"track_number", "trackNumber"},
		{"number_of_volumes", "numberOfVolumes"},
		{"number_of_tracks", "numberOfTracks"},
		{"release_date", "releaseDate"},
		{"square_image", "squareImage"},
		{"copyright", "copyright"},
		{"isrc", "isrc"},
		{"upc", "upc"},
	}

	for _, tt := range tests {
		t.Run(tt.logical, func(t *testing.T) {
			if got := wireKey(tt.logical); got != tt.wire {
				t.Errorf("wireKey(%q) = %q, want %q", tt.logical, got, tt.wire)
			}
			if got := logicalName(tt.wire); got != tt.logical {
				t.Errorf("logicalName(%q) = %q, want %q", tt.wire, got, tt.logical)
			}
		})
	}
}

func TestFieldsGet(t *testing.T) {
	f := Fields{
		"audioQuality": "LOSSLESS",
		"trackNumber":  float64(7),
		"album":        map[string]any{"id": float64(42), "title": "A"},
		"artists":      []any{map[string]any{"name": "X", "type": "MAIN"}},
	}

	if s, err := f.String("audio_quality"); err != nil || s != "LOSSLESS" {
		t.Errorf("String(audio_quality) = %q, %v", s, err)
	}
	if n, err := f.Int("track_number"); err != nil || n != 7 {
		t.Errorf("Int(track_number) = %d, %v", n, err)
	}
	if sub, err := f.Sub("album"); err != nil || sub["title"] != "A" {
		t.Errorf("Sub(album) = %v, %v", sub, err)
	}
	if list, err := f.List("artists"); err != nil || len(list) != 1 || list[0]["name"] != "X" {
		t.Errorf("List(artists) = %v, %v", list, err)
	}
	if !f.Has("audio_quality") || f.Has("popularity") {
		t.Error("Has gave wrong membership")
	}
}

func TestFieldsMissing(t *testing.T) {
	f := Fields{"title": "X"}

	_, err := f.String("audio_quality")
	if err == nil {
		t.Fatal("expected error for absent field")
	}
	if !errors.Is(err, ErrFieldMissing) {
		t.Errorf("error does not wrap ErrFieldMissing: %v", err)
	}
	var fe *FieldError
	if !errors.As(err, &fe) {
		t.Fatalf("error is not a *FieldError: %v", err)
	}
	if fe.Name != "audio_quality" || fe.Key != "audioQuality" {
		t.Errorf("FieldError = %+v", fe)
	}
}

func TestFieldsWrongType(t *testing.T) {
	f := Fields{"title": float64(3)}
	if _, err := f.String("title"); err == nil {
		t.Error("String on a number should fail")
	}
	if _, err := f.Sub("title"); err == nil {
		t.Error("Sub on a number should fail")
	}
}

func TestStringify(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{"abc", "abc"},
		{float64(152676381), "152676381"},
		{42, "42"},
	}
	for _, tt := range tests {
		if got := stringify(tt.in); got != tt.want {
			t.Errorf("stringify(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
