package download

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/bianoble/craftboot/internal/files"
)

// SequenceDownloader fetches files one at a time, in list order.
//
// Transfers never overlap. This keeps load on the distribution point low
// and makes file-changed indices monotonic and reproducible. A parallel
// implementation would have to buffer completions and replay events in list
// order to keep that guarantee.
type SequenceDownloader struct {
	// Transfer is shared by every file of a run. Defaults to HTTPTransfer.
	Transfer Transfer

	// IgnoreInvalidFiles logs a failed file and continues with the next.
	// When false the first failure aborts the run with a *FatalError.
	IgnoreInvalidFiles bool

	OnFileChanged files.FileChangedFunc
	OnProgress    ProgressFunc

	Log logrus.FieldLogger
}

// NewSequenceDownloader returns a downloader that tolerates failed files.
func NewSequenceDownloader(transfer Transfer) *SequenceDownloader {
	return &SequenceDownloader{Transfer: transfer, IgnoreInvalidFiles: true}
}

// Download fetches every file in order. An empty list returns immediately
// without firing any event. Otherwise one file-changed event fires before
// each file (index 0..N-1) and a final one with index N once the loop ends,
// even if every file failed in tolerant mode.
func (d *SequenceDownloader) Download(ctx context.Context, list []files.DownloadFile) error {
	if len(list) == 0 {
		return nil
	}

	transfer := d.Transfer
	if transfer == nil {
		transfer = &HTTPTransfer{}
	}
	log := d.Log
	if log == nil {
		log = logrus.StandardLogger()
	}

	total := len(list)
	for i, file := range list {
		d.fireFileChanged(file, total, i)

		if err := d.fetch(ctx, transfer, file); err != nil {
			if !d.IgnoreInvalidFiles {
				return &FatalError{File: file, Err: err}
			}
			log.WithFields(logrus.Fields{
				"kind": file.Kind,
				"file": file.Name,
				"url":  file.URL,
			}).WithError(err).Warn("download failed, skipping")
		}
	}

	d.fireFileChanged(list[total-1], total, total)
	return nil
}

func (d *SequenceDownloader) fetch(ctx context.Context, transfer Transfer, file files.DownloadFile) error {
	dir := filepath.Dir(file.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	// Progress is relayed synchronously, so every byte event for this file
	// is delivered before the next file-changed event.
	if err := transfer.Fetch(ctx, file.URL, file.Path, true, d.OnProgress); err != nil {
		return err
	}

	for i, after := range file.AfterDownload {
		if after == nil {
			continue
		}
		if err := after(); err != nil {
			return fmt.Errorf("post-download step %d: %w", i, err)
		}
	}
	return nil
}

func (d *SequenceDownloader) fireFileChanged(file files.DownloadFile, total, index int) {
	if d.OnFileChanged != nil {
		d.OnFileChanged(files.FileChanged{Kind: file.Kind, Name: file.Name, Total: total, Index: index})
	}
}
