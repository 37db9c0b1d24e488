package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jmvillaverde/horario/internal/api"
	"github.com/jmvillaverde/horario/internal/config"
	"github.com/jmvillaverde/horario/internal/layout"
	"github.com/jmvillaverde/horario/internal/timetable"
)

// Model is the bubbletea model for the timetable view.
type Model struct {
	client *api.Client
	cache  timetable.Cache
	config *config.Config
	id     string

	snapshot  *timetable.Snapshot
	fromCache bool
	zoom      float64
	focusDay  int

	spinner spinner.Model
	loading bool
	err     error

	width  int
	height int

	styles Styles
	keys   keyMap
}

// snapshotMsg carries a fetched timetable into the update loop.
type snapshotMsg struct {
	snapshot  *timetable.Snapshot
	fromCache bool
}

// errMsg carries a fetch failure into the update loop.
type errMsg struct {
	err error
}

// NewModel creates the timetable view model for one timetable ID.
func NewModel(client *api.Client, cache timetable.Cache, cfg *config.Config, id string) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		client:  client,
		cache:   cache,
		config:  cfg,
		id:      id,
		zoom:    layout.ClampZoom(cfg.UI.Zoom),
		spinner: sp,
		loading: true,
		styles:  NewStyles(),
		keys:    defaultKeyMap(),
	}
}

// Run starts the interactive timetable view.
func Run(client *api.Client, cache timetable.Cache, cfg *config.Config, id string) error {
	p := tea.NewProgram(NewModel(client, cache, cfg, id), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init kicks off the spinner and the initial fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, fetchSnapshot(m.client, m.cache, m.id))
}

// fetchSnapshot fetches the timetable, falling back to the cached copy when
// the service is unreachable. Successful fetches refresh the cache.
func fetchSnapshot(client *api.Client, cache timetable.Cache, id string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		snap, err := client.Timetable(ctx, id)
		if err != nil {
			cached, cerr := cache.LoadSnapshot(ctx, id)
			if cerr == nil && cached != nil {
				return snapshotMsg{snapshot: cached, fromCache: true}
			}
			return errMsg{err: err}
		}

		_ = cache.SaveSnapshot(ctx, snap)
		return snapshotMsg{snapshot: snap}
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case snapshotMsg:
		m.snapshot = msg.snapshot
		m.fromCache = msg.fromCache
		m.loading = false
		m.err = nil
		return m, nil

	case errMsg:
		m.err = msg.err
		m.loading = false
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.ZoomIn):
		m.zoom = layout.ClampZoom(m.zoom + layout.ZoomStep)

	case key.Matches(msg, m.keys.ZoomOut):
		m.zoom = layout.ClampZoom(m.zoom - layout.ZoomStep)

	case key.Matches(msg, m.keys.Left):
		if m.focusDay > 0 {
			m.focusDay--
		}

	case key.Matches(msg, m.keys.Right):
		if m.focusDay < m.config.UI.Days-1 {
			m.focusDay++
		}

	case key.Matches(msg, m.keys.Refresh):
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, fetchSnapshot(m.client, m.cache, m.id))
	}

	return m, nil
}

// focusedEntries returns the entries of the focused day, for the detail
// pane, in layout order.
func (m Model) focusedEntries(l *layout.Layout) []*timetable.Entry {
	if m.focusDay < 0 || m.focusDay >= len(l.Days) {
		return nil
	}
	var entries []*timetable.Entry
	for _, g := range l.Days[m.focusDay] {
		entries = append(entries, g.Entries...)
	}
	return entries
}

func (m Model) title() string {
	if m.snapshot == nil {
		return m.id
	}
	if m.snapshot.Name != "" {
		return m.snapshot.Name
	}
	return m.snapshot.ID
}

func (m Model) zoomLabel() string {
	return fmt.Sprintf("zoom %.1fx", m.zoom)
}
