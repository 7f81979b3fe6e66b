package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/jpapex/internal/config"
	"github.com/jask/jpapex/internal/logging"
	"github.com/jask/jpapex/internal/mapview"
	"github.com/jask/jpapex/internal/predator"
	"github.com/jask/jpapex/internal/service"
	"github.com/jask/jpapex/internal/tui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// cli carries the resolved config and logger from PersistentPreRunE to
// the command bodies.
type cli struct {
	configPath string
	logLevel   string

	// cfgFile is --config, or config.Path() when the flag is unset.
	cfgFile string

	cfg    config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:   "jpapex",
		Short: "Browse the Jurassic Park apex predators",
		Long: `jpapex is a terminal catalog of the apex predators from the Jurassic Park films.

Run without arguments to open the interactive browser. The list can be
filtered by type, sorted by name and searched; selecting a predator shows
its films, notable scenes and a map of where it lived.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBrowser(cmd.Context())
		},
	}
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $JPAPEX_CONFIG or ~/.config/jpapex/config.toml)")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "override log.level (debug, info, warn, error)")

	root.AddCommand(
		c.listCmd(),
		c.showCmd(),
		c.typesCmd(),
		c.seedCmd(),
		c.configCmd(),
	)
	return root
}

func (c *cli) setup() error {
	c.cfgFile = c.configPath
	if c.cfgFile == "" {
		c.cfgFile = config.Path()
	}
	cfg, err := config.LoadFile(c.cfgFile)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.logLevel != "" {
		cfg.Log.Level = c.logLevel
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	c.cfg = cfg
	c.logger = logger
	return nil
}

// openStack opens the store and loads the catalog. The returned stack must
// be closed by the caller.
func (c *cli) openStack(ctx context.Context) (*service.Stack, *predator.Catalog, error) {
	st, err := service.Open(ctx, c.cfg, c.logger)
	if err != nil {
		return nil, nil, err
	}
	cat, err := st.Catalog.Load(ctx)
	if err != nil {
		_ = st.Close()
		return nil, nil, err
	}
	return st, cat, nil
}

func (c *cli) runBrowser(ctx context.Context) error {
	st, cat, err := c.openStack(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	m := c.cfg.Map
	app := tui.New(cat, tui.Options{
		Overview: mapview.Preset{Distance: m.OverviewDistance},
		CloseUp:  mapview.Preset{Distance: m.CloseupDistance, Heading: m.CloseupHeading, Pitch: m.CloseupPitch},
		Theme:    c.cfg.UI.Theme,
		Opener:   tui.SystemOpener{},
		Log:      c.logger,
	})
	c.logger.Info("starting browser", zap.Int("predators", cat.Len()))
	if _, err := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
