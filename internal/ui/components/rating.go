package components

import (
	"fmt"
	"io"
	"strings"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nasir-khan01/dsaprep/internal/spacedrep"
	"github.com/nasir-khan01/dsaprep/internal/ui/theme"
)

type ratingKeys struct {
	Up     key.Binding
	Down   key.Binding
	Pick   key.Binding
	Submit key.Binding
	Cancel key.Binding
}

func (k ratingKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Pick, k.Submit, k.Cancel}
}

func (k ratingKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var defaultRatingKeys = ratingKeys{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Pick:   key.NewBinding(key.WithKeys("0", "1", "2", "3", "4", "5"), key.WithHelp("0-5", "rate")),
	Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
	Cancel: key.NewBinding(key.WithKeys("esc", "q", "ctrl+c"), key.WithHelp("esc", "cancel")),
}

// RatingPicker asks for a 0-5 recall rating. Pressing a digit rates at
// once; arrows plus enter pick from the list.
type RatingPicker struct {
	Title     string
	Cursor    spacedrep.Quality
	Chosen    spacedrep.Quality
	Submitted bool
	Cancelled bool

	keys ratingKeys
	help help.Model
}

// NewRatingPicker creates a picker with the cursor on Good.
func NewRatingPicker(title string) RatingPicker {
	return RatingPicker{
		Title:  title,
		Cursor: spacedrep.Good,
		Chosen: -1,
		keys:   defaultRatingKeys,
		help:   help.New(),
	}
}

// Init returns nil.
func (m RatingPicker) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (m RatingPicker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.Submitted || m.Cancelled {
		return m, tea.Quit
	}
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(kmsg, m.keys.Cancel):
		m.Cancelled = true
		return m, tea.Quit
	case key.Matches(kmsg, m.keys.Up):
		if m.Cursor > spacedrep.Blackout {
			m.Cursor--
		}
	case key.Matches(kmsg, m.keys.Down):
		if m.Cursor < spacedrep.Perfect {
			m.Cursor++
		}
	case key.Matches(kmsg, m.keys.Pick):
		m.Cursor = spacedrep.Quality(kmsg.String()[0] - '0')
		m.Chosen = m.Cursor
		m.Submitted = true
		return m, tea.Quit
	case key.Matches(kmsg, m.keys.Submit):
		m.Chosen = m.Cursor
		m.Submitted = true
		return m, tea.Quit
	}
	return m, nil
}

// Render draws the picker as plain styled text.
func (m RatingPicker) Render() string {
	var b strings.Builder
	if m.Title != "" {
		b.WriteString(theme.Title.Render(m.Title) + "\n\n")
	}
	for _, q := range spacedrep.AllQualities() {
		line := fmt.Sprintf("%d  %s", int(q), q.Describe())
		switch {
		case m.Submitted && q == m.Chosen:
			b.WriteString(qualityStyle(q).Bold(true).Render("✔ "+line) + "\n")
		case !m.Submitted && q == m.Cursor:
			b.WriteString(theme.Selected.Render("▸ "+line) + "\n")
		default:
			b.WriteString(theme.Unselected.Render("  "+line) + "\n")
		}
	}
	if !m.Submitted && !m.Cancelled {
		b.WriteString("\n" + m.help.View(m.keys))
	}
	return b.String()
}

// View renders the picker.
func (m RatingPicker) View() tea.View {
	return tea.NewView(m.Render())
}

func qualityStyle(q spacedrep.Quality) lipgloss.Style {
	switch {
	case q == spacedrep.Perfect:
		return lipgloss.NewStyle().Foreground(theme.Legendary)
	case q == spacedrep.Good:
		return lipgloss.NewStyle().Foreground(theme.Success)
	case q.IsSuccess():
		return lipgloss.NewStyle().Foreground(theme.Warning)
	default:
		return lipgloss.NewStyle().Foreground(theme.Primary)
	}
}

// PickRating runs the picker on the given terminal streams. ok is false
// when the user cancelled.
func PickRating(in io.Reader, out io.Writer, title string) (q spacedrep.Quality, ok bool, err error) {
	p := tea.NewProgram(NewRatingPicker(title), tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return 0, false, fmt.Errorf("run rating picker: %w", err)
	}
	m := final.(RatingPicker)
	if !m.Submitted {
		return 0, false, nil
	}
	return m.Chosen, true, nil
}
