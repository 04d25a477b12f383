package main

import (
	"fmt"
	"runtime"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dori/wille/internal/app"
	"github.com/dori/wille/internal/ui"
	"github.com/dori/wille/internal/ui/theme"
	"github.com/spf13/cobra"
)

// options are the flags shared by every command
type options struct {
	configPath string
	dataDir    string
	storage    string
	theme      string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "wille",
		Short: "Plans grouped by what they are for",
		Long: `wille keeps plans (todos) in named groups and saves every change as it happens.

Run without arguments to start the terminal UI, or use the subcommands
to script the same list.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.runTUI()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", app.DefaultConfigPath(), "config file")
	flags.StringVar(&opts.dataDir, "data-dir", "", "directory holding the database, log and lock")
	flags.StringVar(&opts.storage, "storage", "", "storage backend (sqlite, memory)")
	root.Flags().StringVar(&opts.theme, "theme", "", "theme name (nord, dracula)")

	root.AddCommand(
		newListCmd(opts),
		newSubjectCmd(opts),
		newAddCmd(opts),
		newRemoveCmd(opts),
		newDoneCmd(opts),
		newRenameCmd(opts),
		newMoveCmd(opts),
		newResetCmd(opts),
		newVersionCmd(),
	)
	return root
}

// config loads the config file and applies flag overrides
func (o *options) config() (*app.Config, error) {
	cfg, err := app.LoadConfig(o.configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Override(o.dataDir, o.storage); err != nil {
		return nil, err
	}
	if o.theme != "" {
		cfg.Theme = o.theme
	}
	return cfg, nil
}

// withApp runs fn against a freshly opened application
func (o *options) withApp(fn func(*app.App) error) error {
	cfg, err := o.config()
	if err != nil {
		return err
	}

	a, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	return fn(a)
}

func (o *options) runTUI() error {
	return o.withApp(func(a *app.App) error {
		if t, ok := theme.ByName(a.Config.Theme); ok {
			theme.SetTheme(t)
		} else {
			a.Logger.Warn("unknown theme, using default", "theme", a.Config.Theme)
		}

		p := tea.NewProgram(
			ui.NewRootModel(a.Store, a.Logger),
			tea.WithAltScreen(),
		)
		_, err := p.Run()
		return err
	})
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "wille v%s\n", version)
			fmt.Fprintf(out, "  Go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
