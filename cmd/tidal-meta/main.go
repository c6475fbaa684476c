package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/fumr/tidalgo/internal/config"
	"github.com/fumr/tidalgo/session"
	"github.com/fumr/tidalgo/tag"
	"github.com/fumr/tidalgo/tidal"
)

const coverSize = 1280

func main() {
	// Command line flags
	var (
		urlFlag     = flag.String("url", "", "Tidal track, album or playlist URL")
		configFlag  = flag.String("config", "", "Path to config file (.env format)")
		qualityFlag = flag.String("quality", "", "Preferred audio quality (LOW, HIGH, LOSSLESS, HI_RES)")
		streamFlag  = flag.Bool("stream", false, "Print the stream URL for tracks")
		tagFlag     = flag.String("tag", "", "Write track metadata and cover into this MP3 file")
	)

	flag.Parse()

	url := *urlFlag
	if url == "" && flag.NArg() > 0 {
		url = flag.Arg(0)
	}
	if url == "" {
		fmt.Println("tidal-meta - inspect Tidal catalog entries")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  tidal-meta -url <URL> [options]")
		fmt.Println("  tidal-meta <URL> [options]")
		fmt.Println()
		fmt.Println("For interactive mode, use: tidal-tui")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *qualityFlag != "" {
		cfg.PreferredQuality = *qualityFlag
	}

	sessCfg, err := cfg.SessionConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	sess := session.New(sessCfg)

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, cancelling...")
		cancel()
	}()

	entity, err := tidal.DefaultRegistry.Resolve(ctx, sess, url)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving URL: %v\n", err)
		os.Exit(1)
	}

	switch e := entity.(type) {
	case *tidal.Track:
		err = showTrack(ctx, e, *streamFlag, *tagFlag)
	case *tidal.Album:
		err = showListing(ctx, "Album", e, e.Tracks(tidal.DefaultPageSize))
	case *tidal.Playlist:
		err = showListing(ctx, "Playlist", e, e.Tracks(tidal.DefaultPageSize))
	}
	if err != nil {
		if ctx.Err() != nil {
			fmt.Println("\nCancelled.")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func showTrack(ctx context.Context, t *tidal.Track, stream bool, tagPath string) error {
	meta, err := t.Metadata(ctx)
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(meta))
	for k := range meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("%-12s %s\n", k, meta[k])
	}

	if cover, err := t.Cover(); err == nil {
		fmt.Printf("%-12s %s\n", "cover", cover.URL(coverSize, coverSize))
	}

	if stream {
		fileURL, err := t.FileURL(ctx, tidal.StreamOptions{})
		if err != nil {
			return err
		}
		fmt.Printf("%-12s %s\n", "stream", fileURL)
	}

	if tagPath != "" {
		if err := applyTags(ctx, t, meta, tagPath); err != nil {
			return err
		}
		fmt.Printf("\nTagged %s\n", tagPath)
	}

	return nil
}

func applyTags(ctx context.Context, t *tidal.Track, meta map[string]string, path string) error {
	var artwork []byte
	if cover, err := t.Cover(); err == nil {
		artwork, err = fetchCover(ctx, cover.URL(coverSize, coverSize))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cover download failed: %v\n", err)
			artwork = nil
		}
	}

	tagger := tag.NewTagger(tag.DefaultConfig())
	return tagger.Apply(path, meta, artwork)
}

func fetchCover(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cover fetch: status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

type titled interface {
	Title() (string, error)
}

func showListing(ctx context.Context, kind string, parent titled, it *tidal.TrackIterator) error {
	if title, err := parent.Title(); err == nil {
		fmt.Printf("%s: %s\n\n", kind, title)
	} else {
		fmt.Printf("%s\n\n", kind)
	}

	n := 0
	for it.Next(ctx) {
		t := it.Track()
		n++

		title, err := t.DisplayTitle()
		if err != nil {
			title = t.ID()
		}
		artist, _ := t.ArtistName()

		fmt.Printf("%3d. %s", n, title)
		if artist != "" {
			fmt.Printf(" - %s", artist)
		}
		if quality, err := t.AudioQuality(); err == nil {
			fmt.Printf(" [%s]", quality)
		}
		fmt.Println()
	}
	if err := it.Err(); err != nil {
		return err
	}

	fmt.Printf("\n%d track(s)\n", n)
	return nil
}
