package tidal

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
)

// Track is a single catalog track.
//
// A track constructed from an id holds nothing but that id until Reload
// populates it. Tracks embedded in listing responses hold whatever fields
// the listing carried; Reload fetches the rest on demand.
type Track struct {
	resource
}

// NewTrack wraps raw wire fields in a Track. It does not fetch anything;
// use TrackFromID for the cached, reloaded form.
func NewTrack(sess Session, fields Fields) *Track {
	return &Track{resource{sess: sess, fields: fields, idField: "id"}}
}

// Reload replaces the track's fields with its full catalog document.
func (t *Track) Reload(ctx context.Context) error {
	return t.reload(ctx, "/v1/tracks/"+t.ID())
}

// Title returns the raw track title. See DisplayTitle for the annotated
// form used in metadata.
func (t *Track) Title() (string, error) {
	return t.fields.String("title")
}

// ArtistName returns the main artist's name.
func (t *Track) ArtistName() (string, error) {
	artist, err := t.fields.Sub("artist")
	if err != nil {
		return "", err
	}
	return artist.String("name")
}

// Album wraps the album sub-document embedded in the track fields. The
// result holds only the fields the track document embeds; call Reload on
// it for the full album document.
func (t *Track) Album() (*Album, error) {
	sub, err := t.fields.Sub("album")
	if err != nil {
		return nil, err
	}
	return NewAlbum(t.sess, sub), nil
}

// Cover returns the track's cover image, which is the album's.
func (t *Track) Cover() (Cover, error) {
	album, err := t.Album()
	if err != nil {
		return Cover{}, err
	}
	return album.Cover()
}

// AudioQuality returns the track's catalog quality tier.
func (t *Track) AudioQuality() (Quality, error) {
	s, err := t.fields.String("audio_quality")
	if err != nil {
		return 0, err
	}
	return ParseQuality(s)
}

// AudioModes returns the track's audio mode labels. Unknown labels are
// carried through, not rejected.
func (t *Track) AudioModes() ([]Mode, error) {
	v, err := t.fields.Get("audio_modes")
	if err != nil {
		return nil, err
	}
	raw, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("tidal: field %q is %T, not an array", "audio_modes", v)
	}
	modes := make([]Mode, 0, len(raw))
	for _, item := range raw {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("tidal: audio mode is %T, not a string", item)
		}
		modes = append(modes, ParseMode(s))
	}
	return modes, nil
}

// StreamOptions control quality negotiation in FileURL. A nil field falls
// back to the session's configured default for that role.
type StreamOptions struct {
	// Preferred is the tier to ask the server for.
	Preferred *Quality

	// Required is the minimum tier to accept.
	Required *Quality
}

// playbackInfo is the postpaywall playback-info response. The manifest is
// a base64 blob that decodes to JSON carrying the candidate stream URLs.
type playbackInfo struct {
	AudioQuality string `json:"audioQuality"`
	Manifest     string `json:"manifest"`
}

type streamManifest struct {
	URLs []string `json:"urls"`
}

// FileURL resolves a playable stream URL for the track.
//
// One playback-info request is made at the preferred tier. The server may
// downgrade; the tier it actually delivered is compared against the
// required tier and a shortfall is an *InsufficientQualityError, never a
// silent re-request at a lower tier.
func (t *Track) FileURL(ctx context.Context, opts StreamOptions) (string, error) {
	preferred := t.sess.PreferredQuality()
	if opts.Preferred != nil {
		preferred = *opts.Preferred
	}
	required := t.sess.RequiredQuality()
	if opts.Required != nil {
		required = *opts.Required
	}

	info, err := t.playbackInfo(ctx, preferred)
	if err != nil {
		return "", err
	}

	raw, err := base64.StdEncoding.DecodeString(info.Manifest)
	if err != nil {
		return "", fmt.Errorf("tidal: decode stream manifest: %w", err)
	}
	var manifest streamManifest
	if err := json.Unmarshal(raw, &manifest); err != nil {
		return "", fmt.Errorf("tidal: parse stream manifest: %w", err)
	}

	delivered, err := ParseQuality(info.AudioQuality)
	if err != nil {
		return "", err
	}
	if delivered < required {
		return "", &InsufficientQualityError{TrackID: t.ID(), Delivered: delivered, Required: required}
	}

	if len(manifest.URLs) == 0 {
		return "", errors.New("tidal: stream manifest carries no urls")
	}
	return manifest.URLs[0], nil
}

func (t *Track) playbackInfo(ctx context.Context, preferred Quality) (*playbackInfo, error) {
	q := url.Values{}
	q.Set("playbackmode", "STREAM")
	q.Set("assetpresentation", "FULL")
	q.Set("audioquality", preferred.Wire())

	var info playbackInfo
	if err := t.sess.Get(ctx, "/v1/tracks/"+t.ID()+"/playbackinfopostpaywall", q, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// Metadata assembles the track's tag mapping: artist, display title,
// album artist and title, release year, disc and track positions, plus
// copyright, ISRC and UPC when the catalog has them. Optional fields
// absent from both the track and the album are omitted, not errors.
//
// The album sub-document embedded in a track is partial, so the album is
// reloaded first for the disc/track totals and the UPC.
func (t *Track) Metadata(ctx context.Context) (map[string]string, error) {
	album, err := t.Album()
	if err != nil {
		return nil, err
	}
	if err := album.Reload(ctx); err != nil {
		return nil, err
	}

	artist, err := t.ArtistName()
	if err != nil {
		return nil, err
	}
	title, err := t.DisplayTitle()
	if err != nil {
		return nil, err
	}
	albumArtist, err := album.ArtistName()
	if err != nil {
		return nil, err
	}
	albumTitle, err := album.DisplayTitle()
	if err != nil {
		return nil, err
	}
	year, err := album.Year()
	if err != nil {
		return nil, err
	}
	discNumber, err := t.fields.Int("volume_number")
	if err != nil {
		return nil, err
	}
	discTotal, err := album.fields.Int("number_of_volumes")
	if err != nil {
		return nil, err
	}
	trackNumber, err := t.fields.Int("track_number")
	if err != nil {
		return nil, err
	}
	trackTotal, err := album.fields.Int("number_of_tracks")
	if err != nil {
		return nil, err
	}

	tags := map[string]string{
		"artist":      artist,
		"title":       title,
		"albumartist": albumArtist,
		"album":       albumTitle,
		"date":        fmt.Sprintf("%d", year),
		"discnumber":  fmt.Sprintf("%d", discNumber),
		"disctotal":   fmt.Sprintf("%d", discTotal),
		"tracknumber": fmt.Sprintf("%d", trackNumber),
		"tracktotal":  fmt.Sprintf("%d", trackTotal),
	}

	// The service sometimes returns null for the track copyright; the
	// album's is the fallback.
	if c := optionalString(t.fields, "copyright"); c != "" {
		tags["copyright"] = c
	} else if c := optionalString(album.fields, "copyright"); c != "" {
		tags["copyright"] = c
	}

	// Identifiers for use in music libraries later on.
	if isrc := optionalString(t.fields, "isrc"); isrc != "" {
		tags["isrc"] = isrc
	}
	if upc := optionalString(album.fields, "upc"); upc != "" {
		tags["upc"] = upc
	}

	return tags, nil
}

// optionalString reads a field that may be absent or JSON null.
func optionalString(f Fields, name string) string {
	v, err := f.Get(name)
	if err != nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
