package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Build-time variables set via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Global flags.
var (
	configPath string
	rootDir    string
	noInherit  bool
	verbose    bool
	quiet      bool
)

var rootCmd = &cobra.Command{
	Use:   "craftboot",
	Short: "Install and launch game versions",
	Long: `craftboot prepares a game version for launch. It checks the version's
client jar against its expected SHA-1, fetches whatever is missing or
corrupt, stages native libraries, and builds the JVM command line that
starts the game.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("craftboot %s\n", version)
		fmt.Printf("  commit:  %s\n", commit)
		fmt.Printf("  built:   %s\n", date)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "craftboot.yaml", "path to config file")
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", "", "game root directory (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&noInherit, "no-inherit", false, "ignore the user-level config")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "detailed output")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "minimal output (errors only)")

	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}
