package cmd

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/nasir-khan01/dsaprep/internal/config"
	"github.com/nasir-khan01/dsaprep/internal/session"
	"github.com/nasir-khan01/dsaprep/internal/store"
)

// app bundles what every command needs once the database is open.
type app struct {
	cfg config.Resolved
	st  *store.Store
	svc *session.Service
	in  io.Reader
	out io.Writer
	rnd *rand.Rand
}

func (a *app) Close() error {
	return a.st.Close()
}

// interactive reports whether both stdin and stdout are terminals.
func (a *app) interactive() bool {
	in, ok := a.in.(*os.File)
	if !ok {
		return false
	}
	out, ok := a.out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(in.Fd()) && isatty.IsTerminal(out.Fd())
}

// resolveConfig applies --db and --config on top of the environment and
// config file.
func resolveConfig(cmd *cobra.Command) (config.Resolved, error) {
	db, _ := cmd.Flags().GetString("db")
	cfgPath, _ := cmd.Flags().GetString("config")
	return config.Resolve(config.Options{DBPath: db, ConfigPath: cfgPath})
}

func openApp(cmd *cobra.Command) (*app, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}
	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return &app{
		cfg: cfg,
		st:  st,
		svc: session.New(session.FromStore(st), cfg.Config, nil),
		in:  cmd.InOrStdin(),
		out: cmd.OutOrStdout(),
		rnd: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}, nil
}

// listFlag returns --list, falling back to the configured default list.
func listFlag(cmd *cobra.Command, a *app) string {
	if l, _ := cmd.Flags().GetString("list"); l != "" {
		return l
	}
	return a.cfg.DefaultList
}

func warn(err error) {
	fmt.Fprintln(os.Stderr, "warning:", err)
}
