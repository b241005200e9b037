package constants

// Config
const VerboseEnvVar = "VERBOSE"
const GlobalConfigFileName = "~/.file-syncer/config.yml"

// File system
const GitDirName = ".git"

// Compressed files are stored under their original name plus this marker.
const GzipSuffix = "-gzipped.txt"

// Defaults
const DefaultBranch = "main"

// Error messages
const ErrMsgFolderRequired = "folder path is required"
const ErrMsgRepoRequired = "repository URL is required"
const ErrMsgLevelConflict = "only one of --fast and --max may be used"
