package ui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/palmcrest/showcase/internal/carousel"
	"github.com/palmcrest/showcase/internal/config"
	"github.com/palmcrest/showcase/internal/listing"
	"github.com/palmcrest/showcase/internal/prefs"
	"github.com/palmcrest/showcase/internal/state"
)

// Options configures the UI.
type Options struct {
	Context    context.Context
	Store      *state.Store
	Config     *config.Config
	Logger     *zap.Logger
	PollTick   time.Duration
	ThemeName  string
	WindowSize int // overrides Config.WindowSize when positive
	PrefsPath  string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	store     *state.Store
	logger    *zap.Logger
	prefsPath string
	pollTick  time.Duration
	title     string

	// UI state
	theme    Theme
	keys     keyMap
	help     help.Model
	width    int
	height   int
	ready    bool
	hovering bool
	showHelp bool

	// Data state
	snapshot state.Snapshot
	carousel carousel.Model[listing.Listing]
}

// New creates a new Bubble Tea model. The carousel is seeded from the current
// store snapshot and mounted on the first WindowSizeMsg.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := config.Default()
	if opts.Config != nil {
		cfg = *opts.Config
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	pollTick := opts.PollTick
	if pollTick == 0 {
		pollTick = time.Second
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	window := cfg.WindowSize
	if opts.WindowSize > 0 {
		window = opts.WindowSize
	}

	var snap state.Snapshot
	if opts.Store != nil {
		snap = opts.Store.Snapshot()
	}

	m := Model{
		ctx:       ctx,
		store:     opts.Store,
		logger:    logger,
		prefsPath: prefsPath,
		pollTick:  pollTick,
		title:     cfg.Title,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		snapshot:  snap,
		carousel: carousel.New(snap.Listings, carousel.Options{
			WindowSize: window,
			Interval:   cfg.AdvanceInterval,
			WrapDelay:  cfg.WrapDelay,
		}),
	}
	m.applyTheme(GetTheme(opts.ThemeName))
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tickCmd(m.pollTick),
	}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if !m.ready {
			m.ready = true
			return m, m.carousel.Start()
		}
		return m, nil

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		return m.applySnapshot(state.Snapshot(msg))

	case carousel.AdvanceMsg, carousel.WrapResetMsg:
		var cmd tea.Cmd
		m.carousel, cmd = m.carousel.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While help is open only quit and close keys do anything
	if m.showHelp && !key.Matches(msg, m.keys.Quit) {
		if key.Matches(msg, m.keys.Escape, m.keys.Help) {
			m.showHelp = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.carousel.Stop()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.applyTheme(GetTheme(NextTheme(m.theme.Name)))
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		return m, m.carousel.Prev()

	case key.Matches(msg, m.keys.Next):
		return m, m.carousel.Next()

	case key.Matches(msg, m.keys.First):
		return m, m.carousel.GoTo(0)

	case key.Matches(msg, m.keys.Pause):
		cmd := m.carousel.TogglePin()
		m.logger.Debug("pin toggled", zap.Bool("pinned", m.carousel.Pinned()))
		return m, cmd

	case key.Matches(msg, m.keys.JumpDot):
		dot := int(msg.String()[0] - '1')
		if dot >= m.carousel.DotCount() {
			return m, nil
		}
		return m, m.carousel.GoTo(dot)

	case key.Matches(msg, m.keys.Wider):
		return m, m.resize(1)

	case key.Matches(msg, m.keys.Narrower):
		return m, m.resize(-1)
	}

	return m, nil
}

// handleMouse pauses while the pointer is over the carousel and routes clicks
// on the controls and dots.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.ready || m.showHelp {
		return m, nil
	}

	l := m.layout()
	var cmds []tea.Cmd

	if inside := l.contains(msg.X, msg.Y); inside != m.hovering {
		m.hovering = inside
		if inside {
			cmds = append(cmds, m.carousel.Pause())
		} else {
			cmds = append(cmds, m.carousel.Resume())
		}
	}

	if msg.Action != tea.MouseActionPress || !m.hovering {
		return m, tea.Batch(cmds...)
	}

	switch msg.Button {
	case tea.MouseButtonLeft:
		switch kind, dot := l.hit(msg.X, msg.Y); kind {
		case hitPrev:
			cmds = append(cmds, m.carousel.Prev())
		case hitNext:
			cmds = append(cmds, m.carousel.Next())
		case hitDot:
			cmds = append(cmds, m.carousel.GoTo(dot))
		}
	case tea.MouseButtonWheelUp:
		cmds = append(cmds, m.carousel.Prev())
	case tea.MouseButtonWheelDown:
		cmds = append(cmds, m.carousel.Next())
	}
	return m, tea.Batch(cmds...)
}

// handleTick processes the polling tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	cmds = append(cmds, tickCmd(m.pollTick))
	return m, tea.Batch(cmds...)
}

// applySnapshot records the latest snapshot. Listings only reach the carousel
// when the store version moved, so an unchanged catalog never disturbs the
// current slide.
func (m Model) applySnapshot(snap state.Snapshot) (tea.Model, tea.Cmd) {
	changed := snap.Version != m.snapshot.Version
	m.snapshot = snap
	if !changed {
		return m, nil
	}
	m.logger.Debug("catalog changed",
		zap.Uint64("version", snap.Version),
		zap.Int("listings", len(snap.Listings)))
	return m, m.carousel.SetItems(snap.Listings)
}

func (m *Model) resize(delta int) tea.Cmd {
	current := m.carousel.WindowSize()
	next := current + delta
	if next < 1 {
		return nil
	}
	next = config.ClampWindow(next)
	if next == current {
		return nil
	}
	cmd := m.carousel.SetWindow(next)
	m.savePrefs()
	return cmd
}

func (m *Model) applyTheme(t Theme) {
	m.theme = t
	styles := t.Styles()
	m.help.Styles.ShortKey = styles.AccentText
	m.help.Styles.ShortDesc = styles.MutedText
	m.help.Styles.ShortSeparator = styles.FaintText
	m.help.Styles.Ellipsis = styles.FaintText
}

func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{Theme: m.theme.Name, WindowSize: m.carousel.WindowSize()}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.logger.Warn("save prefs failed", zap.String("path", m.prefsPath), zap.Error(err))
	}
}

func (m Model) layout() layout {
	return computeLayout(m.width, m.carousel.WindowSize(), m.carousel.DotCount())
}

// renderMain renders the full screen. Row positions must agree with layout.
func (m Model) renderMain() string {
	l := m.layout()
	body := strings.Join([]string{
		m.renderHeader(),
		m.renderTitleRow(l),
		m.renderTrack(l),
		m.renderDots(l),
	}, "\n")

	footer := m.theme.Styles().Footer.Width(m.width).MaxHeight(1).Render(m.help.View(m.keys))
	if gap := m.height - lipgloss.Height(body) - 1; gap > 0 {
		body += strings.Repeat("\n", gap)
	}
	return body + "\n" + footer
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program with mouse motion reporting enabled so
// hovering the carousel can pause it.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(m.ctx),
	)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
