package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nasir-khan01/dsaprep/internal/catalog"
	"github.com/nasir-khan01/dsaprep/internal/problem"
	"github.com/nasir-khan01/dsaprep/internal/store"
	"github.com/nasir-khan01/dsaprep/internal/ui/theme"
)

var addProblemCmd = &cobra.Command{
	Use:   "add-problem",
	Short: "Add a custom problem",
	Long:  "Adds one problem in NEW state. Values not given as flags are asked for.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		np, err := collectNewProblem(cmd, newPrompter(a), a)
		if err != nil {
			return err
		}
		p, err := a.st.Problems().Add(cmd.Context(), np)
		if errors.Is(err, store.ErrDuplicate) {
			return fmt.Errorf("%q already exists in %s", np.Name, np.List)
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(a.out, "\n%s Added problem %s: %s\n", theme.Good.Render("✓"), theme.Bold.Render(fmt.Sprintf("#%d", p.ID)), p.Name)
		fmt.Fprintf(a.out, "  Pattern: %s\n  List: %s\n  Difficulty: %s\n", p.Pattern, p.List, theme.Difficulty(p.Difficulty).Render(p.Difficulty))
		return nil
	},
}

func init() {
	addProblemCmd.Flags().StringP("title", "t", "", "Problem title")
	addProblemCmd.Flags().StringP("url", "u", "", "Problem URL")
	addProblemCmd.Flags().StringP("pattern", "p", "", "Algorithm pattern (name or number)")
	addProblemCmd.Flags().StringP("list", "l", "", "Source list name")
	addProblemCmd.Flags().StringP("difficulty", "d", "", "Easy, Medium or Hard")
}

func collectNewProblem(cmd *cobra.Command, p *prompter, a *app) (store.NewProblem, error) {
	flag := func(name string) string {
		v, _ := cmd.Flags().GetString(name)
		return strings.TrimSpace(v)
	}
	np := store.NewProblem{
		Name:       flag("title"),
		URL:        flag("url"),
		Pattern:    flag("pattern"),
		List:       flag("list"),
		Difficulty: flag("difficulty"),
	}

	var err error
	if np.Name == "" {
		fmt.Fprintln(a.out, theme.Title.Render("➕ Add New Problem"))
		if np.Name, err = p.ask("Problem title", ""); err != nil {
			return np, err
		}
	}
	if np.Name == "" {
		return np, errors.New("problem title is required")
	}
	if np.URL == "" && !cmd.Flags().Changed("url") {
		if np.URL, err = p.ask("Problem URL", ""); err != nil {
			return np, err
		}
	}
	if np.Pattern == "" {
		fmt.Fprintln(a.out, theme.Hint.Render("Available patterns:"))
		for i, name := range catalog.PatternOrder {
			fmt.Fprintf(a.out, "  %2d. %s\n", i+1, name)
		}
		ans, err := p.ask("Pattern (name or number)", problem.DefaultPattern)
		if err != nil {
			return np, err
		}
		np.Pattern = patternChoice(ans)
	} else {
		np.Pattern = patternChoice(np.Pattern)
	}
	if np.List == "" {
		if np.List, err = p.ask("Source list", problem.DefaultList); err != nil {
			return np, err
		}
	}
	if np.Difficulty == "" {
		if np.Difficulty, err = p.ask("Difficulty (Easy/Medium/Hard)", "Medium"); err != nil {
			return np, err
		}
	}
	np.Difficulty, err = normalizeDifficulty(np.Difficulty)
	return np, err
}

// patternChoice maps a 1-based number onto the pattern list; anything
// else is taken as a pattern name.
func patternChoice(ans string) string {
	if n, err := strconv.Atoi(ans); err == nil && n >= 1 && n <= len(catalog.PatternOrder) {
		return catalog.PatternOrder[n-1]
	}
	return ans
}

func normalizeDifficulty(d string) (string, error) {
	for _, want := range []string{"Easy", "Medium", "Hard"} {
		if strings.EqualFold(d, want) {
			return want, nil
		}
	}
	return "", fmt.Errorf("difficulty must be Easy, Medium or Hard, got %q", d)
}
