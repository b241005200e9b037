package config

import (
	"errors"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/RustedBytes/file-syncer/constants"
)

// Compression level selection for the gzip codec.
type CompressionLevel string

const (
	LevelFast    CompressionLevel = "fast"
	LevelDefault CompressionLevel = "default"
	LevelMax     CompressionLevel = "max"
)

// Global (per-user) configuration, read from ~/.file-syncer/config.yml.
// Everything in here only supplies defaults; CLI flags win.
type GlobalConfig struct {
	// Whether or not to print verbose output.
	Verbose bool `yaml:",omitempty"`
	// Default worker pool size for parallel file transfers.
	Workers int `yaml:"workers,omitempty"`
	// Default compression level ("fast", "default" or "max").
	CompressionLevel CompressionLevel `yaml:"compression_level,omitempty"`
}

// Singleton CLI config instance.
var I GlobalConfig

// Returns path to the file-syncer global config file.
func GetConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatal(err)
	}

	return filepath.Join(homeDir, ".file-syncer/config.yml")
}

// Initialize the CLI config.
func InitConfig() GlobalConfig {
	cpath := GetConfigPath()

	// Create default config file if it doesn't exist yet
	if _, err := os.Stat(cpath); errors.Is(err, os.ErrNotExist) {
		// Create directories if they don't exist
		err := os.MkdirAll(filepath.Dir(cpath), 0755)
		if err != nil {
			log.Fatal(err)
		}

		I = GlobalConfig{
			Workers:          1,
			CompressionLevel: LevelDefault,
		}

		// Write default config to file
		cYaml, err := yaml.Marshal(I)
		if err != nil {
			log.Fatal(err)
		}

		err = os.WriteFile(cpath, cYaml, 0644)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		// Open file
		gcBytes, err := os.ReadFile(cpath)
		if err != nil {
			log.Fatal(err)
		}

		// Decode file contents
		var config GlobalConfig
		err = yaml.Unmarshal(gcBytes, &config)
		if err != nil {
			log.Fatal(err)
		}

		// Set config instance
		I = config
	}

	// Fill in defaults for missing fields
	if I.Workers <= 0 {
		I.Workers = 1
	}
	if I.CompressionLevel == "" {
		I.CompressionLevel = LevelDefault
	}

	if I.Verbose {
		os.Setenv(constants.VerboseEnvVar, "1")
	}

	return I
}
