// Package tui provides a Bubble Tea terminal interface for browsing the
// Tidal catalog: paste a track, album or playlist URL and inspect what
// it resolves to.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fumr/tidalgo/internal/config"
	"github.com/fumr/tidalgo/session"
	"github.com/fumr/tidalgo/tidal"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4ECDC4")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	trackStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)
)

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateLoading
	StateResult
	StateError
)

// TrackRow is one rendered line of a resolved listing.
type TrackRow struct {
	Number  int
	Title   string
	Artist  string
	Quality string
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	spinner   spinner.Model

	cfg      *config.Config
	registry *tidal.Registry

	heading string
	rows    []TrackRow
	err     error

	ctx    context.Context
	cancel context.CancelFunc

	width  int
	height int
}

// NewModel creates a new TUI model.
func NewModel(cfg *config.Config) Model {
	ti := textinput.New()
	ti.Placeholder = "https://tidal.com/browse/album/91969976"
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ECDC4"))

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:     StateInput,
		textInput: ti,
		spinner:   sp,
		cfg:       cfg,
		registry:  tidal.NewRegistry(),
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// ResolveDoneMsg is sent when a URL has been resolved and listed.
	ResolveDoneMsg struct {
		Heading string
		Rows    []TrackRow
		Err     error
	}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			if m.state == StateInput {
				return m, tea.Quit
			}
			if m.state == StateLoading {
				m.cancel()
				m.ctx, m.cancel = context.WithCancel(context.Background())
				m.state = StateError
				m.err = fmt.Errorf("cancelled by user")
			}

		case "enter":
			if m.state == StateInput && m.textInput.Value() != "" {
				m.state = StateLoading
				return m, tea.Batch(m.resolve(), m.spinner.Tick)
			}

		case "q":
			if m.state == StateResult || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateResult || m.state == StateError {
				m.state = StateInput
				m.heading = ""
				m.rows = nil
				m.err = nil
				m.textInput.SetValue("")
				m.textInput.Focus()
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ResolveDoneMsg:
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
		} else {
			m.heading = msg.Heading
			m.rows = msg.Rows
			m.state = StateResult
		}
	}

	// Update text input
	if m.state == StateInput {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Tidal Catalog Browser"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Inspect tracks, albums and playlists"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateLoading:
		b.WriteString(m.viewLoading())
	case StateResult:
		b.WriteString(m.viewResult())
	case StateError:
		b.WriteString(m.viewError())
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Enter Tidal URL:"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf(
		"Country: %s | Preferred quality: %s",
		m.cfg.CountryCode, m.cfg.PreferredQuality,
	)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewLoading() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Resolving..."))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewResult() string {
	var b strings.Builder

	b.WriteString(successStyle.Render(m.heading))
	b.WriteString("\n\n")

	for _, row := range m.rows {
		b.WriteString(trackStyle.Render(fmt.Sprintf(
			"  %2d. %s", row.Number, row.Title,
		)))
		b.WriteString(dimStyle.Render(fmt.Sprintf(
			"  %s [%s]", row.Artist, row.Quality,
		)))
		b.WriteString("\n")
	}
	if len(m.rows) == 0 {
		b.WriteString(dimStyle.Render("  (no tracks)"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(boxStyle.Render(fmt.Sprintf("%d track(s)", len(m.rows))))

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("Error:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateInput:
		return "enter: resolve | esc: quit"
	case StateLoading:
		return "esc: cancel"
	case StateResult, StateError:
		return "r: new lookup | q: quit"
	}
	return ""
}

// resolve looks up the entered URL and builds the listing.
func (m *Model) resolve() tea.Cmd {
	registry := m.registry
	cfg := m.cfg
	ctx := m.ctx
	rawURL := m.textInput.Value()

	return func() tea.Msg {
		sessCfg, err := cfg.SessionConfig()
		if err != nil {
			return ResolveDoneMsg{Err: err}
		}
		sess := session.New(sessCfg)

		entity, err := registry.Resolve(ctx, sess, rawURL)
		if err != nil {
			return ResolveDoneMsg{Err: err}
		}

		switch e := entity.(type) {
		case *tidal.Track:
			return listTrack(e)
		case *tidal.Album:
			return listCollection(ctx, "Album", e, e.Tracks(tidal.DefaultPageSize))
		case *tidal.Playlist:
			return listCollection(ctx, "Playlist", e, e.Tracks(tidal.DefaultPageSize))
		default:
			return ResolveDoneMsg{Err: fmt.Errorf("unsupported entity %T", entity)}
		}
	}
}

func listTrack(t *tidal.Track) ResolveDoneMsg {
	title, err := t.DisplayTitle()
	if err != nil {
		return ResolveDoneMsg{Err: err}
	}
	artist, err := t.ArtistName()
	if err != nil {
		return ResolveDoneMsg{Err: err}
	}
	quality, err := t.AudioQuality()
	if err != nil {
		return ResolveDoneMsg{Err: err}
	}
	return ResolveDoneMsg{
		Heading: "Track",
		Rows: []TrackRow{{
			Number:  1,
			Title:   title,
			Artist:  artist,
			Quality: quality.String(),
		}},
	}
}

type titled interface {
	Title() (string, error)
}

func listCollection(ctx context.Context, kind string, parent titled, it *tidal.TrackIterator) ResolveDoneMsg {
	heading := kind
	if title, err := parent.Title(); err == nil {
		heading = fmt.Sprintf("%s: %s", kind, title)
	}

	var rows []TrackRow
	for it.Next(ctx) {
		t := it.Track()
		row := TrackRow{Number: len(rows) + 1}
		if title, err := t.DisplayTitle(); err == nil {
			row.Title = title
		} else {
			row.Title = t.ID()
		}
		if artist, err := t.ArtistName(); err == nil {
			row.Artist = artist
		}
		if quality, err := t.AudioQuality(); err == nil {
			row.Quality = quality.String()
		}
		rows = append(rows, row)
	}
	if err := it.Err(); err != nil {
		return ResolveDoneMsg{Err: err}
	}

	return ResolveDoneMsg{Heading: heading, Rows: rows}
}

// Run starts the TUI application.
func Run(cfg *config.Config) error {
	p := tea.NewProgram(NewModel(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
