// Package tui implements the interactive movie browser: a debounced search
// input, category and genre filters, and a paginated card grid.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/reelgrid/reelgrid/internal/browse"
	"github.com/reelgrid/reelgrid/internal/tmdb"
)

const fetchTimeout = 20 * time.Second

// Model is the Bubble Tea model for the browse view. The browse.State it
// owns is the single query-state instance for the session; all mutation
// happens inside Update.
type Model struct {
	ctx       context.Context
	client    *tmdb.Client
	state     *browse.State
	catalog   *browse.Catalog
	debouncer *browse.Debouncer
	logger    *slog.Logger

	textinput textinput.Model
	spinner   spinner.Model

	page     *tmdb.Page
	banner   string
	lastText string // last observed input value, to detect real keystrokes
	genreIdx int    // 0 = all genres, i>0 = catalog.Genres()[i-1]

	width  int
	height int
	ready  bool
}

// New creates the browse model.
func New(ctx context.Context, client *tmdb.Client, logger *slog.Logger) Model {
	ti := textinput.New()
	ti.Placeholder = "Search movies..."
	ti.Focus()
	ti.CharLimit = 200

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styleTitle

	if logger == nil {
		logger = slog.Default()
	}

	return Model{
		ctx:       ctx,
		client:    client,
		state:     browse.NewState(),
		catalog:   browse.NewCatalog(nil),
		debouncer: browse.NewDebouncer(browse.QuietPeriod),
		logger:    logger,
		textinput: ti,
		spinner:   s,
	}
}

// Init loads the genre catalog and the first trending page.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, m.loadGenres(), m.startFetch())
}

// Update handles incoming messages and user input.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.textinput.Width = min(m.width-4, 60)
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		if model, cmd, handled := m.handleKey(msg); handled {
			return model, cmd
		}
		return m.handleTyping(msg)

	case debounceMsg:
		return m.handleDebounce(msg)

	case pageMsg:
		return m.handlePage(msg)

	case genresMsg:
		return m.handleGenres(msg)

	case spinner.TickMsg:
		if m.state.Loading() {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	return m, nil
}

// handleKey handles control keys. Anything it does not consume falls
// through to the search input.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c":
		return *m, tea.Quit, true

	case "esc":
		if m.textinput.Value() == "" {
			return *m, tea.Quit, true
		}
		m.textinput.SetValue("")
		m.lastText = ""
		m.state.SetSearch("")
		return *m, m.startFetch(), true

	case "tab":
		m.cycleCategory()
		return *m, m.startFetch(), true

	case "ctrl+g":
		if !m.cycleGenre() {
			return *m, nil, true
		}
		return *m, m.startFetch(), true

	case "pgdown":
		if !m.state.Next() {
			return *m, nil, true
		}
		return *m, m.startFetch(), true

	case "pgup":
		if !m.state.Prev() {
			return *m, nil, true
		}
		return *m, m.startFetch(), true
	}

	return *m, nil, false
}

// handleTyping feeds a key into the search input and schedules a debounce
// timer when the text actually changed.
func (m Model) handleTyping(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.textinput, cmd = m.textinput.Update(msg)

	text := m.textinput.Value()
	if text == m.lastText {
		return m, cmd
	}
	m.lastText = text

	gen := m.debouncer.Trigger(text)
	return m, tea.Batch(cmd, m.scheduleDebounce(gen))
}

// handleDebounce fires a search intent if the quiet period held.
func (m Model) handleDebounce(msg debounceMsg) (tea.Model, tea.Cmd) {
	text, ok := m.debouncer.Resolve(msg.gen)
	if !ok || text == m.state.Search {
		return m, nil
	}
	m.state.SetSearch(text)
	return m, m.startFetch()
}

// handlePage applies a completed fetch: either the new result page or an
// error banner with the grid cleared.
func (m Model) handlePage(msg pageMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.state.Fail()
		m.page = nil
		m.banner = tmdb.UserMessage(msg.err)
		m.logger.Error("fetch failed", slog.String("error", msg.err.Error()))
		return m, nil
	}

	m.state.Complete(msg.page.TotalPages)
	m.page = msg.page
	m.banner = ""
	return m, nil
}

// handleGenres installs the genre catalog. A load failure is non-fatal: it
// is logged and the genre filter simply offers no options.
func (m Model) handleGenres(msg genresMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.logger.Warn("genre catalog unavailable", slog.String("error", msg.err.Error()))
		return m, nil
	}
	m.catalog = browse.NewCatalog(msg.genres)
	return m, nil
}

// startFetch begins a fetch for the current state. While one is already in
// flight the trigger is dropped, never queued.
func (m *Model) startFetch() tea.Cmd {
	if !m.state.BeginFetch() {
		return nil
	}
	return tea.Batch(m.spinner.Tick, m.fetchPage(m.state.Request()))
}

// cycleCategory advances to the next browsing mode, which also clears the
// search box to match the state transition.
func (m *Model) cycleCategory() {
	next := 0
	for i, c := range browse.Categories {
		if c == m.state.Category {
			next = (i + 1) % len(browse.Categories)
			break
		}
	}
	m.state.SetCategory(browse.Categories[next])
	m.textinput.SetValue("")
	m.lastText = ""
}

// cycleGenre advances the genre filter through all genres + "all". Reports
// false when the catalog is empty (degraded mode).
func (m *Model) cycleGenre() bool {
	genres := m.catalog.Genres()
	if len(genres) == 0 {
		return false
	}
	m.genreIdx = (m.genreIdx + 1) % (len(genres) + 1)
	if m.genreIdx == 0 {
		m.state.SetGenre(0)
	} else {
		m.state.SetGenre(genres[m.genreIdx-1].ID)
	}
	return true
}

// View renders the browse screen.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString("\n")
	b.WriteString(m.textinput.View())
	b.WriteString("\n\n")
	b.WriteString(m.viewBody())
	b.WriteString("\n")
	b.WriteString(m.viewFooter())
	return b.String()
}

func (m Model) viewHeader() string {
	tabs := make([]string, 0, len(browse.Categories))
	for _, c := range browse.Categories {
		label := strings.ReplaceAll(string(c), "_", " ")
		if c == m.state.Category && m.state.Search == "" {
			tabs = append(tabs, styleTabActive.Render(label))
		} else {
			tabs = append(tabs, styleTab.Render(label))
		}
	}

	genre := "all genres"
	if m.state.GenreID != 0 {
		if name := m.catalog.Name(m.state.GenreID); name != "" {
			genre = name
		}
	}

	return styleTitle.Render("reelgrid") + "  " +
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...) + "  " +
		styleDim.Render("genre: "+genre)
}

func (m Model) viewBody() string {
	switch {
	case m.banner != "":
		return styleBanner.Render(m.banner)
	case m.page == nil && m.state.Loading():
		return renderPlaceholderGrid(m.width)
	case m.page == nil:
		return ""
	case len(m.page.Movies) == 0:
		return styleEmpty.Render(emptyMessage)
	default:
		return renderGrid(m.page.Movies, m.width)
	}
}

func (m Model) viewFooter() string {
	var status string
	if m.state.Loading() {
		status = m.spinner.View() + " loading"
	} else {
		status = fmt.Sprintf("page %d/%d", m.state.Page, m.state.TotalPages)
	}

	hints := []string{"tab category", "ctrl+g genre", "ctrl+c quit"}
	if m.canPrev() {
		hints = append([]string{"pgup prev"}, hints...)
	}
	if m.canNext() {
		hints = append([]string{"pgdn next"}, hints...)
	}

	return status + "  " + styleDim.Render(strings.Join(hints, " · "))
}

// canNext reports whether the forward control is actionable.
func (m Model) canNext() bool {
	return !m.state.Loading() && m.state.Page < m.state.TotalPages
}

// canPrev reports whether the back control is actionable.
func (m Model) canPrev() bool {
	return !m.state.Loading() && m.state.Page > 1
}
