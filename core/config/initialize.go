package config

import (
	"errors"
	"io/fs"
	"log"

	"github.com/spf13/afero"
)

// Initialize writes the default configuration to dir if one doesn't already
// exist, then loads it.
func Initialize(dir string, logger *log.Logger) (*Configuration, error) {
	if err := afero.NewOsFs().MkdirAll(dir, 0700); err != nil {
		return nil, err
	}
	return InitializeFs(afero.NewBasePathFs(afero.NewOsFs(), dir), logger)
}

// InitializeFs is Initialize for an arbitrary filesystem root.
func InitializeFs(configFs afero.Fs, logger *log.Logger) (*Configuration, error) {
	_, err := configFs.Stat(ConfigurationName)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logger.Printf("Writing %s", ConfigurationName)
		if err := afero.WriteFile(configFs, ConfigurationName, defaultConfigData, 0600); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		logger.Printf("Keeping existing %s", ConfigurationName)
	}

	return LoadFs(configFs)
}
