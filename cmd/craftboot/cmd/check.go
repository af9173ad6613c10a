package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "List the files the configured version still needs",
	Long: `Checks the configured version's client jar and required libraries
against their expected SHA-1. Lists every file that is missing or corrupt.
Exit 0 if nothing needs fetching; exit non-zero otherwise.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, v, err := loadClientAndDescriptor()
		if err != nil {
			return err
		}

		list, err := client.Check(cmd.Context(), v, nil)
		if err != nil {
			return err
		}

		if len(list) == 0 {
			info("Version %s is complete.", v.ID)
			return nil
		}

		for _, f := range list {
			info("  %-8s %s", f.Kind, f.Name)
			detail("path: %s", f.Path)
			detail("url:  %s", f.URL)
		}

		return fmt.Errorf("check failed: %d file(s) need fetching", len(list))
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
