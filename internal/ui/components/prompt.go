package components

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/nasir-khan01/dsaprep/internal/ui/theme"
)

// TextPrompt asks for one line of text. An empty answer takes the
// default value.
type TextPrompt struct {
	Label       string
	Default     string
	NumericOnly bool
	Submitted   bool
	Cancelled   bool

	input textinput.Model
}

// NewTextPrompt creates a focused prompt. The default is shown as the
// placeholder.
func NewTextPrompt(label, def string, numericOnly bool) TextPrompt {
	ti := textinput.New()
	ti.Placeholder = def
	ti.CharLimit = 200
	ti.Focus()
	return TextPrompt{Label: label, Default: def, NumericOnly: numericOnly, input: ti}
}

// Init returns nil.
func (t TextPrompt) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (t TextPrompt) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "enter":
			t.Submitted = true
			return t, tea.Quit
		case "esc", "ctrl+c":
			t.Cancelled = true
			return t, tea.Quit
		}
		if t.NumericOnly && kmsg.Text != "" {
			if _, err := strconv.Atoi(kmsg.Text); err != nil {
				return t, nil
			}
		}
	}
	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return t, cmd
}

// Value returns the trimmed answer, or the default when empty.
func (t TextPrompt) Value() string {
	v := strings.TrimSpace(t.input.Value())
	if v == "" {
		return t.Default
	}
	return v
}

// View renders the prompt.
func (t TextPrompt) View() tea.View {
	if t.Submitted {
		return tea.NewView(theme.Body.Render(t.Label+": ") + theme.Selected.Render(t.Value()) + "\n")
	}
	return tea.NewView(theme.Body.Render(t.Label+": ") + t.input.View() + "\n")
}

// Ask runs a TextPrompt on the given streams. ok is false when the user
// cancelled.
func Ask(in io.Reader, out io.Writer, label, def string, numericOnly bool) (answer string, ok bool, err error) {
	p := tea.NewProgram(NewTextPrompt(label, def, numericOnly), tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return "", false, fmt.Errorf("run prompt: %w", err)
	}
	m := final.(TextPrompt)
	if !m.Submitted {
		return "", false, nil
	}
	return m.Value(), true, nil
}
