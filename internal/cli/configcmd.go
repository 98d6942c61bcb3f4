package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/IVANSLASH/framegen/pkg/config"
)

// configCommand creates the config management command.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Scaffold and inspect configuration files",
	}

	cmd.AddCommand(c.configInitCommand())
	cmd.AddCommand(c.configShowCommand())

	return cmd
}

// configInitCommand creates the "config init" subcommand.
func (c *CLI) configInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [file]",
		Short: "Write a starter configuration file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "framegen.toml"
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := config.Save(path, config.Default()); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			printSuccess("Wrote starter configuration")
			printFile(path)
			printNextStep("Generate the model", "framegen generate --config "+path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

// configShowCommand creates the "config show" subcommand.
func (c *CLI) configShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show [file]",
		Short: "Validate a configuration and print its geometry",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			cfg, err := loadConfig(path)
			if err != nil {
				return err
			}

			printKeyValue("bays", fmt.Sprintf("%d x %d", cfg.Bays.X, cfg.Bays.Y))
			printKeyValue("widths X", fmt.Sprintf("%v m", cfg.Bays.WidthsX))
			printKeyValue("widths Y", fmt.Sprintf("%v m", cfg.Bays.WidthsY))
			printKeyValue("stories", fmt.Sprintf("%d", cfg.Stories.Count))
			printKeyValue("heights", fmt.Sprintf("%v m", cfg.Stories.Heights))
			printKeyValue("columns", columnScheme(cfg.Columns))
			sides := []struct {
				name string
				cfg  *config.SideCfg
			}{
				{"front", cfg.Cantilevers.Front},
				{"right", cfg.Cantilevers.Right},
				{"left", cfg.Cantilevers.Left},
			}
			for _, s := range sides {
				if s.cfg != nil {
					printKeyValue(s.name, fmt.Sprintf("%.2fm cantilever", s.cfg.Length))
				}
			}
			printSuccess("Configuration is valid")
			return nil
		},
	}
}

func columnScheme(cols config.Columns) string {
	switch cols.Type {
	case "", "uniform":
		return fmt.Sprintf("uniform %.2fx%.2f", cols.Section.Width, cols.Section.Depth)
	case "exterior-interior":
		return fmt.Sprintf("exterior %.2fx%.2f, interior %.2fx%.2f",
			cols.Exterior.Width, cols.Exterior.Depth, cols.Interior.Width, cols.Interior.Depth)
	default:
		return fmt.Sprintf("%s (%d groups)", cols.Type, len(cols.Groups))
	}
}
