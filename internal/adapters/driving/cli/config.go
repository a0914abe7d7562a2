package cli

import (
	"errors"
	"strconv"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage application settings",
	Long: `View and change pdbkit settings stored in the config file.

Keys use dot notation, e.g.:
  split.window      residues per window
  split.pattern     glob for structure files
  split.output_dir  default output directory
  fetch.url         download URL template with one %s placeholder
  workers           concurrent worker count`,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print one setting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		if cfg == nil {
			return errors.New("config not available")
		}
		val, ok := cfg.Get(args[0])
		if !ok {
			cmd.Println("(not set)")
			return nil
		}
		cmd.Println(val)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		if cfg == nil {
			return errors.New("config not available")
		}

		// Store numbers as integers so GetInt finds them.
		if n, err := strconv.Atoi(args[1]); err == nil {
			return cfg.Set(args[0], n)
		}
		return cfg.Set(args[0], args[1])
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg := loadConfig()
		if cfg == nil {
			return errors.New("config not available")
		}
		cmd.Println(cfg.Path())
		return nil
	},
}

func init() {
	configCmd.AddCommand(configGetCmd, configSetCmd, configPathCmd)
	rootCmd.AddCommand(configCmd)
}
