package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nasir-khan01/dsaprep/internal/spacedrep"
	"github.com/nasir-khan01/dsaprep/internal/ui/components"
	"github.com/nasir-khan01/dsaprep/internal/ui/theme"
)

var errCancelled = errors.New("cancelled")

// prompter asks questions with bubbletea widgets on a terminal and with
// plain line prompts otherwise (pipes, scripts, tests).
type prompter struct {
	a     *app
	lines *bufio.Reader
}

func newPrompter(a *app) *prompter {
	return &prompter{a: a, lines: bufio.NewReader(a.in)}
}

// ask returns the answer, or def when the answer is empty.
func (p *prompter) ask(label, def string) (string, error) {
	if p.a.interactive() {
		ans, ok, err := components.Ask(p.a.in, p.a.out, label, def, false)
		if err != nil {
			return "", err
		}
		if !ok {
			return "", errCancelled
		}
		return ans, nil
	}

	if def != "" {
		fmt.Fprintf(p.a.out, "%s [%s]: ", label, def)
	} else {
		fmt.Fprintf(p.a.out, "%s: ", label)
	}
	line, err := p.lines.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read answer: %w", err)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		if errors.Is(err, io.EOF) && def == "" {
			return "", fmt.Errorf("read answer: %w", io.ErrUnexpectedEOF)
		}
		return def, nil
	}
	return line, nil
}

// confirm asks a yes/no question; only "y" or "yes" count as yes.
func (p *prompter) confirm(question string) (bool, error) {
	ans, err := p.ask(question+" (y/N)", "n")
	if err != nil {
		return false, err
	}
	ans = strings.ToLower(ans)
	return ans == "y" || ans == "yes", nil
}

// rating asks for a 0-5 recall rating, with the picker on a terminal.
func (p *prompter) rating(title string) (spacedrep.Quality, error) {
	if p.a.interactive() {
		q, ok, err := components.PickRating(p.a.in, p.a.out, title)
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, errCancelled
		}
		return q, nil
	}

	fmt.Fprintln(p.a.out, "Rate how it went:")
	for _, q := range spacedrep.AllQualities() {
		fmt.Fprintf(p.a.out, "  %s - %s\n", theme.Bold.Render(strconv.Itoa(int(q))), q.Describe())
	}
	for {
		ans, err := p.ask("Your rating (0-5)", strconv.Itoa(int(spacedrep.Hard)))
		if err != nil {
			return 0, err
		}
		q, err := spacedrep.ParseQuality(ans)
		if err == nil {
			return q, nil
		}
		fmt.Fprintln(p.a.out, theme.Bad.Render("Please enter a number between 0 and 5"))
	}
}
