package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/bianoble/craftboot/pkg/craftboot"
)

var installStrict bool

// installReporter turns download events into output lines. A file's byte
// total is printed when the next file-changed event arrives.
type installReporter struct {
	active bool
	done   int64
	total  int64
}

func (r *installReporter) fileChanged(e craftboot.FileChanged) {
	r.flush()
	if e.Index >= e.Total {
		return
	}
	info("[%d/%d] %s %s", e.Index+1, e.Total, e.Kind, e.Name)
	r.active = true
	r.done, r.total = 0, -1
}

func (r *installReporter) progress(done, total int64) {
	r.done, r.total = done, total
}

func (r *installReporter) flush() {
	if r.active && r.done > 0 {
		detail("%s", progressLine(r.done, r.total))
	}
	r.active = false
}

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Fetch every file the configured version is missing",
	Long: `Checks the configured version and downloads every missing or corrupt
file, one at a time. Failed files are logged and skipped unless
tolerate_errors is false in the config or --strict is given, in which case
the first failure aborts the run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, v, err := loadClientAndDescriptor()
		if err != nil {
			return err
		}

		r := &installReporter{}
		result, err := client.Install(cmd.Context(), v, craftboot.InstallOptions{
			Strict:        installStrict,
			OnFileChanged: r.fileChanged,
			OnProgress:    r.progress,
		})
		if err != nil {
			var fatal *craftboot.FatalError
			if errors.As(err, &fatal) {
				errorf("%s: %v", fatal.File.Name, fatal.Err)
			}
			return err
		}

		if len(result.Requested) == 0 {
			info("Version %s is already complete.", v.ID)
			return nil
		}
		info("")
		info("Install complete: %d file(s) processed.", len(result.Requested))
		return nil
	},
}

func init() {
	installCmd.Flags().BoolVar(&installStrict, "strict", false, "abort on the first failed download")
	rootCmd.AddCommand(installCmd)
}
