package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"lca/internal/config"
	"lca/internal/driver"
	"lca/internal/logging"
	"lca/internal/render"
	"lca/internal/settings"

	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Read a configuration and print every generation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd)
			if err != nil {
				return &invalidArgument{err}
			}
			log := logging.NewLogger(s.Logging.Level, cmd.ErrOrStderr())

			in, closeIn, err := openInput(cmd)
			if err != nil {
				return err
			}
			defer closeIn()

			hood, _ := s.Neighborhood()
			setup, err := config.Decode(in,
				config.WithNeighborhood(hood),
				config.WithMaxCells(s.Limits.MaxCells),
			)
			if err != nil {
				return &invalidArgument{err}
			}
			log.Debug("configured automaton",
				"type", setup.Automaton.Type().String(),
				"cells", setup.Automaton.Len(),
				"generations", setup.Generations,
				"rules", setup.Automaton.Rules().String(),
				"neighborhood", hood.String(),
				"active", setup.Active,
				"dropped", setup.Dropped,
			)
			return runSetup(setup, s, cmd.OutOrStdout(), log)
		},
	}
	cmd.Flags().StringP("input", "i", "-", "Configuration file (- for stdin)")
	cmd.Flags().BoolP("quiet", "q", false, "Evolve without printing generations")
	cmd.Flags().String("neighborhood", "", "Neighborhood: pair or triple")
	cmd.Flags().String("dead", "", "Glyph for dead cells")
	cmd.Flags().String("alive", "", "Glyph for live cells")
	cmd.Flags().Int("max-cells", 0, "Reject configurations with more cells (0 = no limit)")
	return cmd
}

func runSetup(setup *config.Setup, s *settings.Settings, out io.Writer, log *slog.Logger) error {
	if !s.Output.Enabled {
		return driver.Run(setup.Automaton, setup.Generations, render.Discard{}, log)
	}
	glyphs, _ := s.Glyphs()
	txt := render.NewText(out, glyphs)
	if err := driver.Run(setup.Automaton, setup.Generations, txt, log); err != nil {
		return err
	}
	if err := txt.Flush(); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// loadSettings reads the settings file, then applies command-line flags.
func loadSettings(cmd *cobra.Command) (*settings.Settings, error) {
	path, _ := cmd.Flags().GetString("config")
	var (
		s   *settings.Settings
		err error
	)
	if path != "" {
		s, err = settings.LoadFromFile(path)
	} else {
		s, err = settings.Load()
	}
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if v, _ := flags.GetString("log-level"); v != "" {
		s.Logging.Level = v
	}
	if flags.Changed("quiet") {
		quiet, _ := flags.GetBool("quiet")
		s.Output.Enabled = !quiet
	}
	if flags.Changed("neighborhood") {
		s.Evolve.Neighborhood, _ = flags.GetString("neighborhood")
	}
	if flags.Changed("dead") {
		s.Output.Dead, _ = flags.GetString("dead")
	}
	if flags.Changed("alive") {
		s.Output.Alive, _ = flags.GetString("alive")
	}
	if flags.Changed("max-cells") {
		s.Limits.MaxCells, _ = flags.GetInt("max-cells")
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func openInput(cmd *cobra.Command) (io.Reader, func(), error) {
	path, _ := cmd.Flags().GetString("input")
	if path == "" || path == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening input: %w", err)
	}
	return f, func() { f.Close() }, nil
}
