package craftboot

import (
	"github.com/bianoble/craftboot/internal/download"
	"github.com/bianoble/craftboot/internal/files"
	"github.com/bianoble/craftboot/internal/launch"
	"github.com/bianoble/craftboot/internal/version"
)

// Type aliases re-export internal types as the public API.
// Users import "github.com/bianoble/craftboot/pkg/craftboot" and use
// craftboot.Descriptor, craftboot.Command, etc.

type Descriptor = version.Descriptor
type Library = version.Library
type DownloadFile = files.DownloadFile
type FileChanged = files.FileChanged
type FileChangedFunc = files.FileChangedFunc
type Command = launch.Command
type FatalError = download.FatalError
type TransferError = download.TransferError
