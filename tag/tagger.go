package tag

import (
	"fmt"

	"github.com/bogem/id3v2"

	"github.com/fumr/tidalgo/internal/imaging"
)

// Config controls how tags are written.
type Config struct {
	// EmbedArtwork embeds cover art as an attached picture frame when
	// artwork bytes are supplied.
	EmbedArtwork bool

	// ResizeArtwork shrinks oversized artwork before embedding.
	ResizeArtwork bool

	// ArtworkMaxSize is the maximum edge length in pixels when resizing.
	ArtworkMaxSize int
}

// DefaultConfig embeds artwork, resized to at most 1000 pixels.
func DefaultConfig() *Config {
	return &Config{
		EmbedArtwork:   true,
		ResizeArtwork:  true,
		ArtworkMaxSize: 1000,
	}
}

// Tagger writes catalog metadata into ID3v2 frames of an audio file.
//
// The metadata mapping is the one tidal.Track.Metadata assembles: keys
// like "artist", "title", "tracknumber" and "tracktotal". Keys absent
// from the mapping leave the corresponding frame untouched.
//
// Example:
//
//	meta, err := track.Metadata(ctx)
//	if err != nil {
//	    return err
//	}
//	tagger := tag.NewTagger(nil)
//	err = tagger.Apply("01 Song.mp3", meta, artworkBytes)
type Tagger struct {
	config *Config
}

// NewTagger creates a Tagger. A nil config means DefaultConfig.
func NewTagger(config *Config) *Tagger {
	if config == nil {
		config = DefaultConfig()
	}
	return &Tagger{config: config}
}

// Apply writes the metadata mapping (and optionally cover art) into the
// file at path. The file must already exist; this package tags, it does
// not download.
func (t *Tagger) Apply(path string, meta map[string]string, artwork []byte) error {
	frames, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("tag: open %s: %w", path, err)
	}
	defer frames.Close()

	applyFrames(frames, meta)

	if artwork != nil && t.config.EmbedArtwork {
		art := artwork
		if t.config.ResizeArtwork {
			art, err = imaging.Resize(artwork, t.config.ArtworkMaxSize, t.config.ArtworkMaxSize)
			if err != nil {
				return fmt.Errorf("tag: resize artwork: %w", err)
			}
		}
		embedArtwork(frames, art)
	}

	return frames.Save()
}

// applyFrames maps metadata keys onto ID3v2 frames.
func applyFrames(frames *id3v2.Tag, meta map[string]string) {
	if v, ok := meta["artist"]; ok {
		frames.SetArtist(v)
	}
	if v, ok := meta["title"]; ok {
		frames.SetTitle(v)
	}
	if v, ok := meta["album"]; ok {
		frames.SetAlbum(v)
	}
	if v, ok := meta["albumartist"]; ok {
		frames.AddTextFrame("TPE2", id3v2.EncodingUTF8, v)
	}
	if v, ok := meta["date"]; ok {
		frames.AddTextFrame("TYER", id3v2.EncodingUTF8, v)
		frames.AddTextFrame("TDRC", id3v2.EncodingUTF8, v)
	}
	if v, ok := meta["tracknumber"]; ok {
		if total, ok := meta["tracktotal"]; ok {
			v = v + "/" + total
		}
		frames.AddTextFrame("TRCK", id3v2.EncodingUTF8, v)
	}
	if v, ok := meta["discnumber"]; ok {
		if total, ok := meta["disctotal"]; ok {
			v = v + "/" + total
		}
		frames.AddTextFrame("TPOS", id3v2.EncodingUTF8, v)
	}
	if v, ok := meta["copyright"]; ok {
		frames.AddTextFrame("TCOP", id3v2.EncodingUTF8, v)
	}
	if v, ok := meta["isrc"]; ok {
		frames.AddTextFrame("TSRC", id3v2.EncodingUTF8, v)
	}
	if v, ok := meta["upc"]; ok {
		frames.AddUserDefinedTextFrame(id3v2.UserDefinedTextFrame{
			Encoding:    id3v2.EncodingUTF8,
			Description: "BARCODE",
			Value:       v,
		})
	}
}

// embedArtwork replaces any attached pictures with the given JPEG bytes
// as the front cover.
func embedArtwork(frames *id3v2.Tag, artwork []byte) {
	frames.DeleteFrames(frames.CommonID("Attached picture"))
	frames.AddAttachedPicture(id3v2.PictureFrame{
		Encoding:    id3v2.EncodingUTF8,
		MimeType:    "image/jpeg",
		PictureType: id3v2.PTFrontCover,
		Description: "Cover",
		Picture:     artwork,
	})
}
