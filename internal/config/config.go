package config

import (
	"fmt"
	"os"
	"path/filepath"

	"bikeshare/internal/catalog"
	explorerErrors "bikeshare/internal/errors"

	"github.com/Ignaciocl/tp1SisdisCommons/configloader"
	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigFilepath = "./config/config.yaml"
	defaultDataDir        = "."
	defaultPageSize       = 5
	defaultSeparatorWidth = 40
)

type ExplorerConfig struct {
	DataDir        string            `yaml:"data_dir" validate:"required"`
	Cities         map[string]string `yaml:"cities" validate:"required,dive,keys,required,endkeys,required"`
	PageSize       int               `yaml:"page_size" validate:"gt=0"`
	SeparatorWidth int               `yaml:"separator_width" validate:"gt=0"`
}

// Default returns the configuration used when no config file is present. It resolves
// every city file in the working directory
func Default() *ExplorerConfig {
	cities := make(map[string]string, len(catalog.CityFiles))
	for city, file := range catalog.CityFiles {
		cities[city] = file
	}

	return &ExplorerConfig{
		DataDir:        defaultDataDir,
		Cities:         cities,
		PageSize:       defaultPageSize,
		SeparatorWidth: defaultSeparatorWidth,
	}
}

// LoadConfig reads the yaml file at path. A missing file is not an error, the defaults are
// returned instead. Values absent from the file keep their default
func LoadConfig(path string) (*ExplorerConfig, error) {
	explorerConfig := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.Debugf("config file %s not found, using defaults", path)
		return explorerConfig, nil
	}

	configFile, err := configloader.GetConfigFileAsBytes(path)
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(configFile, explorerConfig)
	if err != nil {
		return nil, fmt.Errorf("error parsing explorer config file: %s", err)
	}

	if err := explorerConfig.Validate(); err != nil {
		return nil, err
	}

	return explorerConfig, nil
}

// Validate checks the struct tags and that every known city has a file
func (c *ExplorerConfig) Validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("%w: %s", explorerErrors.ErrInvalidConfig, err)
	}

	for _, city := range catalog.Cities {
		if _, ok := c.Cities[city.Name]; !ok {
			return fmt.Errorf("%w: missing file for city %s", explorerErrors.ErrInvalidConfig, city.Name)
		}
	}

	for city := range c.Cities {
		if !catalog.IsCity(city) {
			return fmt.Errorf("%w: %s", explorerErrors.ErrUnknownCity, city)
		}
	}

	return nil
}

// CityFilepath returns the path of the trips file of the given city
func (c *ExplorerConfig) CityFilepath(city string) (string, error) {
	file, ok := c.Cities[city]
	if !ok {
		return "", fmt.Errorf("%w: %s", explorerErrors.ErrUnknownCity, city)
	}

	if filepath.IsAbs(file) {
		return file, nil
	}
	return filepath.Join(c.DataDir, file), nil
}
