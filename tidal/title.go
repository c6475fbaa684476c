package tidal

import "strings"

// displayTitle renders the base display form for anything with a title:
// the wire "version" field ("Remastered", "Deluxe Edition") is appended
// in parentheses unless the title already contains it.
func displayTitle(f Fields) (string, error) {
	title, err := f.String("title")
	if err != nil {
		return "", err
	}
	if f.Has("version") {
		if v := optionalString(f, "version"); v != "" && !containsFold(title, v) {
			title += " (" + v + ")"
		}
	}
	return title, nil
}

// DisplayTitle returns the track title annotated for display and tagging:
// the version suffix plus featured-artist credits taken from the
// contributing artists list. Titles that already carry a "feat." credit
// are left alone, and a track without an artists list just keeps its base
// title.
func (t *Track) DisplayTitle() (string, error) {
	title, err := displayTitle(t.fields)
	if err != nil {
		return "", err
	}
	if containsFold(title, "feat.") {
		return title, nil
	}

	artists, err := t.fields.List("artists")
	if err != nil {
		return title, nil
	}
	var featured []string
	for _, artist := range artists {
		if optionalString(artist, "type") == "MAIN" {
			continue
		}
		if name := optionalString(artist, "name"); name != "" {
			featured = append(featured, name)
		}
	}
	if len(featured) > 0 {
		title += " (feat. " + strings.Join(featured, ", ") + ")"
	}
	return title, nil
}

// DisplayTitle returns the album title with its version suffix applied.
func (a *Album) DisplayTitle() (string, error) {
	return displayTitle(a.fields)
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
