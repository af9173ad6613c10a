package cmd

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/bianoble/craftboot/internal/config"
	"github.com/bianoble/craftboot/pkg/craftboot"
)

// loadConfigHierarchical loads the user and project layers.
func loadConfigHierarchical() (*config.HierarchicalResult, error) {
	hr, err := config.LoadHierarchical(config.HierarchicalOptions{
		ProjectPath: configPath,
		NoInherit:   noInherit || config.EnvNoInherit(),
	})
	if err != nil {
		return nil, fmt.Errorf("loading config %s: %w", configPath, err)
	}
	return hr, nil
}

// loadConfig reads, merges and validates the config.
func loadConfig() (*config.Config, error) {
	hr, err := loadConfigHierarchical()
	if err != nil {
		return nil, err
	}
	return hr.Config, nil
}

// newLogger builds the logger handed to the library. Its level follows
// --verbose and --quiet.
func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(logLevel())
	return log
}

func logLevel() logrus.Level {
	switch {
	case quiet:
		return logrus.ErrorLevel
	case verbose:
		return logrus.DebugLevel
	default:
		return logrus.WarnLevel
	}
}

// newClient loads the config and creates a library client for it.
func newClient() (*craftboot.Client, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return craftboot.New(craftboot.Options{
		Root:   rootDir,
		Config: cfg,
		Logger: newLogger(),
	})
}

// loadClientAndDescriptor is the common setup of commands that act on the
// configured version.
func loadClientAndDescriptor() (*craftboot.Client, *craftboot.Descriptor, error) {
	client, err := newClient()
	if err != nil {
		return nil, nil, err
	}
	v, err := client.LoadDescriptor()
	if err != nil {
		return nil, nil, err
	}
	return client, v, nil
}

// progressLine formats byte progress. total < 0 means unknown length.
func progressLine(done, total int64) string {
	if total < 0 {
		return humanize.Bytes(uint64(done))
	}
	return fmt.Sprintf("%s / %s", humanize.Bytes(uint64(done)), humanize.Bytes(uint64(total)))
}

// info prints a line unless quiet mode is active.
func info(format string, args ...any) {
	if !quiet {
		fmt.Printf(format+"\n", args...)
	}
}

// detail prints a line only in verbose mode.
func detail(format string, args ...any) {
	if verbose {
		fmt.Printf("  "+format+"\n", args...)
	}
}

// errorf prints an error message to stderr.
func errorf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}
