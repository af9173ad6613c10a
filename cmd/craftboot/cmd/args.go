package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var argsLine bool

var argsCmd = &cobra.Command{
	Use:   "args",
	Short: "Print the launch command for the configured version",
	Long: `Builds the JVM command line for the configured version and prints it.
Native libraries are extracted into the version's natives directory as part
of this step, so the printed command is ready to run.

By default the executable, working directory and each launch token are
printed on their own line. A token may hold a flag together with its value,
so tokens are not separate argv entries: the game is started with all tokens
joined by spaces. Use --line to print that joined line.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, v, err := loadClientAndDescriptor()
		if err != nil {
			return err
		}

		launchCmd, err := client.Command(v)
		if err != nil {
			return err
		}

		if argsLine {
			fmt.Printf("%s %s\n", launchCmd.JavaPath, launchCmd.String())
			return nil
		}

		fmt.Printf("executable: %s\n", launchCmd.JavaPath)
		fmt.Printf("directory:  %s\n", launchCmd.WorkDir)
		fmt.Println("tokens (joined with spaces at launch):")
		for _, a := range launchCmd.Args {
			fmt.Printf("  %s\n", a)
		}
		return nil
	},
}

func init() {
	argsCmd.Flags().BoolVar(&argsLine, "line", false, "print the command as one line")
	rootCmd.AddCommand(argsCmd)
}
