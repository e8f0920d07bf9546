package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nasir-khan01/dsaprep/internal/session"
	"github.com/nasir-khan01/dsaprep/internal/spacedrep"
	"github.com/nasir-khan01/dsaprep/internal/ui/cheer"
	"github.com/nasir-khan01/dsaprep/internal/ui/components"
	"github.com/nasir-khan01/dsaprep/internal/ui/theme"
)

var solveCmd = &cobra.Command{
	Use:   "solve <id|title>",
	Short: "Solve a problem and rate how it went",
	Long: "Prints the problem link, waits for you to solve it and records a 0-5 rating.\n" +
		"Pass --quality to record the rating without a prompt.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		p, err := findProblem(cmd.Context(), a, args[0])
		if err != nil {
			return err
		}

		fmt.Fprintln(a.out, theme.Title.Render("🎯 Solving: "+p.Name))
		fmt.Fprintln(a.out, theme.Hint.Render(fmt.Sprintf("Pattern: %s | Difficulty: %s", p.Pattern, p.Difficulty)))
		if p.URL != "" {
			fmt.Fprintln(a.out, "Open: "+theme.Link.Render(p.URL))
		}
		fmt.Fprintln(a.out)

		var q spacedrep.Quality
		if cmd.Flags().Changed("quality") {
			n, _ := cmd.Flags().GetInt("quality")
			q = spacedrep.Quality(n)
		} else {
			fmt.Fprintln(a.out, theme.Bold.Render("Take your time to solve the problem."))
			q, err = newPrompter(a).rating(p.Name)
			if errors.Is(err, errCancelled) {
				fmt.Fprintln(a.out, theme.Hint.Render("Nothing recorded."))
				return nil
			}
			if err != nil {
				return err
			}
		}

		out, err := a.svc.Record(cmd.Context(), p.ID, q)
		if err != nil {
			return err
		}
		printOutcome(a, out)
		return nil
	},
}

var logCmd = &cobra.Command{
	Use:   "log <id|title> <again|hard|good|easy|0-5>",
	Short: "Quickly rate a problem without the solve flow",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		q, err := answerQuality(args[1])
		if err != nil {
			return err
		}
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		p, err := findProblem(cmd.Context(), a, args[0])
		if err != nil {
			return err
		}
		out, err := a.svc.Record(cmd.Context(), p.ID, q)
		if err != nil {
			return err
		}
		printOutcome(a, out)
		return nil
	},
}

// answerQuality reads a 0-5 score or an answer word. Scores out of range
// are rejected; unknown words are recorded as hard.
func answerQuality(s string) (spacedrep.Quality, error) {
	if _, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		return spacedrep.ParseQuality(s)
	}
	q := spacedrep.QualityFromAnswer(s)
	if _, err := spacedrep.ParseQuality(s); err != nil {
		warn(fmt.Errorf("unknown answer %q, recorded as %s", s, strings.ToLower(q.String())))
	}
	return q, nil
}

func init() {
	solveCmd.Flags().IntP("quality", "q", 0, "Record this 0-5 rating without prompting")
}

func printOutcome(a *app, out session.Outcome) {
	for _, w := range out.Warnings {
		warn(w)
	}

	res := out.Result
	fmt.Fprintln(a.out)
	if out.Quality.IsSuccess() {
		body := theme.Good.Render("Great job! Problem logged successfully.") + "\n\n" +
			fmt.Sprintf("Next review: %s (in %d days)\nEase factor: %.2f", theme.Bold.Render(res.NextReview.String()), res.IntervalDays, res.EaseFactor)
		fmt.Fprintln(a.out, components.Panel("✅ Problem Solved", body, 0))
	} else {
		body := theme.Warn.Render("The problem will reappear tomorrow for reinforcement.") + "\n\n" +
			fmt.Sprintf("Next review: %s", theme.Bold.Render(res.NextReview.String()))
		fmt.Fprintln(a.out, components.Panel("📝 Keep Practicing", body, 0))
	}

	fmt.Fprintln(a.out, "\n"+theme.Bold.Render(cheer.Celebration(a.rnd, out.Quality)))
	printMilestones(a.out, out.Milestones)
	if tip := cheer.Tip(a.rnd); tip != "" {
		fmt.Fprintln(a.out, "\n"+theme.Hint.Render(tip))
	}
}
