package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/jask/jpapex/internal/config"
	"github.com/jask/jpapex/internal/database/repository"
	"github.com/jask/jpapex/internal/dataset"
	"github.com/jask/jpapex/internal/predator"
)

var errNotFound = errors.New("no such predator")

func (c *cli) listCmd() *cobra.Command {
	var (
		typ    string
		alpha  bool
		search string
		format string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the predator list",
		Long: `Prints predators the way the browser lists them: filtered by type,
then optionally sorted by name, then narrowed by a case-insensitive
name search.

Example:
  jpapex list --type sea --alpha
  jpapex list --search rex --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := predator.ParseType(typ)
			if err != nil {
				return err
			}
			st, cat, err := c.openStack(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			q := predator.Query{Selection: sel, Alphabetical: alpha, SearchText: search}
			records := cat.View(q)
			c.logger.Debug("list", zap.String("type", string(sel)), zap.Bool("alpha", alpha), zap.String("search", search), zap.Int("matches", len(records)))

			out := cmd.OutOrStdout()
			if len(records) == 0 && format == "table" {
				fmt.Fprint(out, "No predators match.")
				if s, ok := predator.Suggest(cat.Filter(sel), search); ok {
					fmt.Fprintf(out, " Did you mean %s?", s)
				}
				fmt.Fprintln(out)
				return nil
			}
			return writeRecords(out, records, format)
		},
	}
	cmd.Flags().StringVarP(&typ, "type", "t", string(predator.TypeAll), "filter by type (all, land, air, sea)")
	cmd.Flags().BoolVarP(&alpha, "alpha", "a", false, "sort by name")
	cmd.Flags().StringVarP(&search, "search", "s", "", "case-insensitive name search")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format (table, json, yaml)")
	return cmd
}

func (c *cli) showCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "show <id|name>",
		Short: "Print one predator in full",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, cat, err := c.openStack(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			key := strings.Join(args, " ")
			p, err := st.Catalog.Predator(cmd.Context(), key)
			if errors.Is(err, repository.ErrNotFound) {
				var ok bool
				if p, ok = cat.Lookup(key); !ok {
					if s, ok := predator.Suggest(cat.All(), key); ok {
						return fmt.Errorf("%w: %q (did you mean %s?)", errNotFound, key, s)
					}
					return fmt.Errorf("%w: %q", errNotFound, key)
				}
			} else if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if format == "text" {
				writeDetail(out, p)
				return nil
			}
			return encode(out, p, format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text, json, yaml)")
	return cmd
}

func (c *cli) typesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List predator types with their record counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, cat, err := c.openStack(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			t := table.New().Border(lipgloss.NormalBorder()).Headers("", "TYPE", "ICON", "COLOR", "COUNT")
			for _, typ := range predator.Types() {
				d := typ.Display()
				t.Row(d.Glyph, d.Label, d.Icon, d.Background, strconv.Itoa(len(cat.Filter(typ))))
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.String())
			return nil
		},
	}
}

func (c *cli) seedCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace the stored catalog with a dataset",
		Long: `Deletes every stored predator and loads the given dataset file, or
catalog.seed_file, or the bundled dataset when neither is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				file = c.cfg.Catalog.SeedFile
			}
			entries, err := dataset.Load(file)
			if err != nil {
				return err
			}
			st, _, err := c.openStack(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			n, err := st.Maintenance.Reseed(cmd.Context(), entries)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d predators (schema v%d).\n", n, st.Schema)
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "dataset JSON file")
	return cmd
}

func (c *cli) configCmd() *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the config file",
	}
	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := c.cfgFile
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := config.Save(config.Default(), path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), c.cfgFile)
		},
	}
	cfgCmd.AddCommand(initCmd, pathCmd)
	return cfgCmd
}

func writeRecords(w io.Writer, records []predator.ApexPredator, format string) error {
	if format != "table" {
		return encode(w, records, format)
	}
	t := table.New().Border(lipgloss.NormalBorder()).Headers("NAME", "TYPE", "LOCATION", "MOVIES")
	for _, p := range records {
		t.Row(p.Name, p.Type.Display().Label, p.Location.String(), strconv.Itoa(len(p.Movies)))
	}
	_, err := fmt.Fprintln(w, t.String())
	return err
}

func encode(w io.Writer, v any, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func writeDetail(w io.Writer, p predator.ApexPredator) {
	d := p.Type.Display()
	fmt.Fprintf(w, "%s  [%s %s]\n", p.Name, d.Glyph, d.Label)
	fmt.Fprintf(w, "Location: %s\n\n", p.Location)

	fmt.Fprintln(w, "Appears In:")
	for _, m := range p.Movies {
		fmt.Fprintf(w, "  • %s\n", m)
	}

	fmt.Fprintln(w, "\nMovie Moments:")
	for _, g := range p.ScenesByMovie() {
		fmt.Fprintf(w, "  %s\n", g.Movie)
		for _, s := range g.Scenes {
			fmt.Fprintf(w, "    %s\n", s.SceneDescription)
		}
	}

	fmt.Fprintln(w, "\nRead More:")
	if u, err := p.LinkURL(); err == nil {
		fmt.Fprintf(w, "  %s\n", u)
	} else {
		fmt.Fprintln(w, "  (unavailable)")
	}
}
