package download

import (
	"fmt"

	"github.com/bianoble/craftboot/internal/files"
)

// TransferError represents a network or I/O failure while fetching one URL.
type TransferError struct {
	URL       string
	Operation string
	Err       error
	Hint      string
}

func (e *TransferError) Error() string {
	msg := fmt.Sprintf("%s: %s failed: %s", e.URL, e.Operation, e.Err)
	if e.Hint != "" {
		msg += " (" + e.Hint + ")"
	}
	return msg
}

func (e *TransferError) Unwrap() error {
	return e.Err
}

// FatalError aborts a run when invalid files are not tolerated. It carries
// the first failing request and its cause.
type FatalError struct {
	File files.DownloadFile
	Err  error
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("downloading %s %s to %s: %s", e.File.Kind, e.File.Name, e.File.Path, e.Err)
}

func (e *FatalError) Unwrap() error {
	return e.Err
}
