package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var initForce bool

// initTemplate is the default craftboot.yaml scaffold.
// Optional settings are listed commented out with their defaults.
const initTemplate = `# craftboot configuration
version: 1

# Game root. Defaults to the platform's standard game directory.
# root: ~/.minecraft

# Version descriptor to install and launch, relative to the game root.
descriptor: versions/1.16.5/1.16.5.yaml

# Skip failed downloads instead of aborting the run.
tolerate_errors: true

# Verify the client jar against its expected SHA-1.
check_hash: true

session:
  username: Player
  # uuid: ""            # empty derives the offline UUID from the username
  # access_token: ""

launch:
  max_ram_mb: 2048
  # min_ram_mb: 512
  # screen_width: 1280
  # screen_height: 720
  # fullscreen: false
  # server_ip: play.example.com
  # server_port: 25565
  # jvm_arguments: "-Xss1M"   # replaces the default GC preset and memory flags
  # java_path: /usr/bin/java
  # launcher_name: craftboot
  # version_type: release
`

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter craftboot.yaml configuration",
	Long: `Creates a craftboot.yaml file in the current directory with a
commented template covering the descriptor, session and launch settings.

Use --force to overwrite an existing configuration file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		outPath := configPath
		if !filepath.IsAbs(outPath) {
			abs, err := filepath.Abs(outPath)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			outPath = abs
		}

		if !initForce {
			if _, err := os.Stat(outPath); err == nil {
				return fmt.Errorf("%s already exists (use --force to overwrite)", outPath)
			}
		}

		if err := os.WriteFile(outPath, []byte(initTemplate), 0644); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}

		info("Created %s", outPath)
		info("")
		info("Next steps:")
		info("  1. Point 'descriptor' at the version you want to play")
		info("  2. Run 'craftboot install' to fetch missing files")
		info("  3. Run 'craftboot args' to print the launch command")
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite existing config file")
	rootCmd.AddCommand(initCmd)
}
