// Package tag writes catalog metadata into audio files as ID3v2 frames,
// including embedded cover art resized through internal/imaging.
package tag
