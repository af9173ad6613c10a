package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bianoble/craftboot/internal/config"
	"github.com/bianoble/craftboot/internal/minepath"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show craftboot configuration and game paths",
	Long: `Displays the craftboot version, the configuration chain, and the game
directories derived from the configured root.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		hr, err := loadConfigHierarchical()
		if err != nil {
			detail("config: %v", err)
		}

		var cfg *config.Config
		if hr != nil {
			cfg = hr.Config
		}

		root := rootDir
		if root == "" {
			if cfg != nil {
				root = cfg.RootPath()
			} else {
				root = minepath.DefaultRoot()
			}
		}
		layout, err := minepath.New(root)
		if err != nil {
			return err
		}

		fmt.Printf("craftboot %s\n", version)

		if hr != nil && len(hr.Layers) > 1 {
			fmt.Println("  config chain:")
			for _, layer := range hr.Layers {
				status := "not found"
				if layer.Loaded {
					status = "loaded"
				}
				fmt.Printf("    %-10s %s (%s)\n", string(layer.Level)+":", layer.Path, status)
			}
		} else {
			fmt.Printf("  config:        %s\n", configPath)
		}

		fmt.Printf("  game root:     %s\n", layout.BasePath)
		fmt.Printf("  libraries:     %s\n", layout.Library)
		fmt.Printf("  assets:        %s\n", layout.Assets)
		fmt.Printf("  versions:      %s\n", layout.Versions)
		fmt.Printf("  install lock:  %s\n", layout.LockPath())

		if cfg != nil {
			fmt.Printf("  descriptor:    %s\n", cfg.Descriptor)
			fmt.Printf("  player:        %s\n", cfg.Session.Username)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
