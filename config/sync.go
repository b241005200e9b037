package config

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/RustedBytes/file-syncer/constants"
)

// Configuration for a single push or pull invocation.
type SyncConfig struct {
	// Path to the local folder being mirrored.
	FolderPath string `validate:"required"`
	// Git repository URL.
	RepoURL string `validate:"required"`
	// Branch to push to or pull from.
	Branch string
	// SSH private key used for git transport. Optional.
	SSHKeyPath string
	// Whether files are compressed on push and decompressed on pull.
	Compress bool
	// Compression level for the gzip codec.
	Level CompressionLevel
	// Worker pool size for parallel file transfers.
	Workers int
}

// Validate a sync config model.
func (c SyncConfig) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		switch fieldErrs[0].Field() {
		case "FolderPath":
			return errors.New(constants.ErrMsgFolderRequired)
		case "RepoURL":
			return errors.New(constants.ErrMsgRepoRequired)
		}
	}

	return err
}
