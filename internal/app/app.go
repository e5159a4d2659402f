// Package app wires the store, config and speech into the root Bubble Tea
// model and runs the TUI.
package app

import (
	"fmt"
	"log/slog"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sidram/memoriz/internal/config"
	rev "github.com/sidram/memoriz/internal/review"
	"github.com/sidram/memoriz/internal/router"
	"github.com/sidram/memoriz/internal/screen"
	"github.com/sidram/memoriz/internal/screens/home"
	reviewscreen "github.com/sidram/memoriz/internal/screens/review"
	"github.com/sidram/memoriz/internal/speech"
	"github.com/sidram/memoriz/internal/store"
	"github.com/sidram/memoriz/internal/ui/layout"
)

// Options carries the dependencies the TUI needs.
type Options struct {
	Store   *store.Store
	Config  config.Config
	Speaker speech.Speaker
	Logger  *slog.Logger

	// DeckID, when set, skips the home screen and starts reviewing that
	// deck immediately.
	DeckID string
	Direct bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	home   *home.HomeScreen
	width  int
	height int
}

var _ rev.CardSource = (*store.Store)(nil)
var _ rev.SchedulingStore = (*store.Store)(nil)
var _ rev.ActivityLog = (*store.Store)(nil)

func newAppModel(opts Options) AppModel {
	sessions := func(deckID string) *rev.Controller {
		return rev.New(opts.Store, opts.Store, opts.Store, opts.Speaker, rev.Config{
			DeckID: deckID,
			Limit:  opts.Config.SessionLimit,
			Logger: opts.Logger,
		})
	}

	homeScreen := home.New(opts.Store, sessions)
	m := AppModel{
		router: router.New(homeScreen),
		home:   homeScreen,
	}
	if opts.Direct {
		m.router.Push(reviewscreen.New(sessions(opts.DeckID)))
	}
	return m
}

func (m AppModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.home.Init()}
	if m.router.Depth() > 1 {
		cmds = append(cmds, m.router.Active().Init())
	}
	return tea.Batch(cmds...)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if intercepts(m.router.Active()) {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func intercepts(s screen.Screen) bool {
	i, ok := s.(screen.EscInterceptor)
	return ok && i.InterceptsEsc()
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.home.DueCount(), m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		if hints := provider.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	if opts.Speaker == nil {
		opts.Speaker = speech.NopSpeaker{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
