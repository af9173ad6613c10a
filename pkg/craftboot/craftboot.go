// Package craftboot provides the public Go library API for craftboot.
//
// craftboot prepares a game version for launch: it checks which files of
// the version are missing or corrupt, fetches them, and builds the JVM
// command line that starts the game.
//
// # Basic Usage
//
//	cfg, err := config.Load("craftboot.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	client, err := craftboot.New(craftboot.Options{Config: cfg})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	v, err := client.LoadDescriptor()
//
//	// Fetch whatever the version is missing
//	result, err := client.Install(ctx, v, craftboot.InstallOptions{})
//
//	// Build the launch command
//	cmd, err := client.Command(v)
package craftboot

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gofrs/flock"
	"github.com/sirupsen/logrus"

	"github.com/bianoble/craftboot/internal/config"
	"github.com/bianoble/craftboot/internal/download"
	"github.com/bianoble/craftboot/internal/files"
	"github.com/bianoble/craftboot/internal/launch"
	"github.com/bianoble/craftboot/internal/minepath"
	"github.com/bianoble/craftboot/internal/native"
	"github.com/bianoble/craftboot/internal/version"
)

// DefaultLockTimeout bounds how long Install waits for another process
// holding the game root.
const DefaultLockTimeout = 30 * time.Second

// ErrLocked is returned when the install lock could not be acquired in time.
var ErrLocked = errors.New("game root is locked by another install")

// Options configures a craftboot client.
type Options struct {
	// Root is the game root directory. Empty means Config's root, then the
	// platform default.
	Root string

	// Config supplies launch settings, session and check/download policy.
	// Nil means defaults with hash checking and tolerant downloads.
	Config *config.Config

	// Logger receives download warnings. Default: logrus.StandardLogger().
	Logger logrus.FieldLogger

	// Transfer fetches files. Default: download.HTTPTransfer.
	Transfer download.Transfer

	// LockTimeout overrides DefaultLockTimeout.
	LockTimeout time.Duration
}

// InstallOptions configures an install run.
type InstallOptions struct {
	// Strict aborts on the first failed file regardless of configuration.
	Strict bool

	// OnCheck receives the client and library check events.
	OnCheck FileChangedFunc

	// OnFileChanged and OnProgress receive download events.
	OnFileChanged FileChangedFunc
	OnProgress    download.ProgressFunc
}

// InstallResult holds the outcome of an install run.
type InstallResult struct {
	// Requested lists every file the check found missing or invalid.
	Requested []DownloadFile
}

// Client is the main entry point for the craftboot library.
type Client struct {
	layout      *minepath.Layout
	cfg         *config.Config
	log         logrus.FieldLogger
	transfer    download.Transfer
	lockTimeout time.Duration
}

// New creates a new craftboot Client.
func New(opts Options) (*Client, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = &config.Config{Version: 1}
	}

	root := opts.Root
	if root == "" {
		root = cfg.RootPath()
	}
	layout, err := minepath.New(root)
	if err != nil {
		return nil, fmt.Errorf("resolving game root: %w", err)
	}

	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	transfer := opts.Transfer
	if transfer == nil {
		transfer = &download.HTTPTransfer{}
	}

	lockTimeout := opts.LockTimeout
	if lockTimeout <= 0 {
		lockTimeout = DefaultLockTimeout
	}

	return &Client{
		layout:      layout,
		cfg:         cfg,
		log:         log,
		transfer:    transfer,
		lockTimeout: lockTimeout,
	}, nil
}

// Layout returns the resolved game directory layout.
func (c *Client) Layout() *minepath.Layout {
	return c.layout
}

// LoadDescriptor loads the version descriptor named by the configuration.
// Relative paths are resolved against the game root.
func (c *Client) LoadDescriptor() (*Descriptor, error) {
	if c.cfg.Descriptor == "" {
		return nil, fmt.Errorf("no descriptor configured")
	}
	return version.Load(c.cfg.DescriptorPath(c.layout.BasePath))
}

// Check returns the files of v that must be fetched: the client jar first,
// then required libraries in declaration order. onFileChanged receives the
// client check's events followed by the library check's.
//
// When ctx is cancelled Check still waits for the running check to finish,
// so onFileChanged is never called after Check returns.
func (c *Client) Check(ctx context.Context, v *Descriptor, onFileChanged FileChangedFunc) ([]DownloadFile, error) {
	checkers := []files.Checker{
		&files.ClientChecker{CheckHash: c.cfg.ShouldCheckHash(), OnFileChanged: onFileChanged},
		&files.LibraryChecker{CheckHash: c.cfg.ShouldCheckHash(), OnFileChanged: onFileChanged},
	}

	var list []DownloadFile
	for _, checker := range checkers {
		results := checker.CheckAsync(ctx, c.layout, v)
		select {
		case res := <-results:
			if res.Err != nil {
				return nil, res.Err
			}
			list = append(list, res.Files...)
		case <-ctx.Done():
			<-results
			return nil, ctx.Err()
		}
	}
	return list, nil
}

// Install checks v and fetches every missing or invalid file. The game root
// is locked for the duration so concurrent installs do not interleave.
func (c *Client) Install(ctx context.Context, v *Descriptor, opts InstallOptions) (*InstallResult, error) {
	unlock, err := c.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	list, err := c.Check(ctx, v, opts.OnCheck)
	if err != nil {
		return nil, fmt.Errorf("checking %s: %w", v.ID, err)
	}

	d := &download.SequenceDownloader{
		Transfer:           c.transfer,
		IgnoreInvalidFiles: c.cfg.ShouldTolerateErrors() && !opts.Strict,
		OnFileChanged:      opts.OnFileChanged,
		OnProgress:         opts.OnProgress,
		Log:                c.log.WithField("version", v.ID),
	}
	if err := d.Download(ctx, list); err != nil {
		return nil, err
	}

	return &InstallResult{Requested: list}, nil
}

func (c *Client) lock(ctx context.Context) (func(), error) {
	if err := os.MkdirAll(c.layout.BasePath, 0755); err != nil {
		return nil, fmt.Errorf("creating game root: %w", err)
	}

	fileLock := flock.New(c.layout.LockPath())
	lockCtx, cancel := context.WithTimeout(ctx, c.lockTimeout)
	defer cancel()

	locked, err := fileLock.TryLockContext(lockCtx, 100*time.Millisecond)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			return nil, ErrLocked
		}
		return nil, fmt.Errorf("locking %s: %w", fileLock.Path(), err)
	}
	if !locked {
		return nil, ErrLocked
	}
	return func() {
		if err := fileLock.Unlock(); err != nil {
			c.log.WithError(err).Warn("releasing install lock")
		}
	}, nil
}

// Command builds the launch command for v using the configured launch
// options and session. Natives are re-staged on every call; native archives
// that are not installed are skipped with a warning.
func (c *Client) Command(v *Descriptor) (*Command, error) {
	opts, err := c.cfg.LaunchOptions()
	if err != nil {
		return nil, err
	}
	b := launch.NewBuilder(c.layout, opts, c.cfg.PlayerSession())
	b.Natives = &native.Stager{Layout: c.layout, Log: c.log.WithField("version", v.ID)}
	return b.Command(v)
}
