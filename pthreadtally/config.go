//go:build !solution

package pthreadtally

import (
	"errors"
	"fmt"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v2"

	"gitlab.com/slon/pthreadtally/linetally"
)

// Platform is one input symbol list.
type Platform struct {
	Name string `yaml:"name"`
	File string `yaml:"file"`
}

// DefaultPlatforms are read from the working directory when no config overrides them.
var DefaultPlatforms = []Platform{
	{Name: "dragonfly", File: "pthread_dfly.txt"},
	{Name: "freebsd", File: "pthread_freebsd.txt"},
	{Name: "linux", File: "pthread_linux.txt"},
	{Name: "netbsd", File: "pthread_netbsd.txt"},
}

// Config описывает входные списки и политику подсчёта
type Config struct {
	Platforms []Platform          `yaml:"platforms"`
	Order     linetally.Order     `yaml:"order"`
	Count     linetally.Mode      `yaml:"count"`
	Sections  []linetally.Section `yaml:"-"`
}

var ErrInvalidConfig = errors.New("invalid config")

func DefaultConfig() Config {
	platforms := make([]Platform, len(DefaultPlatforms))
	copy(platforms, DefaultPlatforms)
	return Config{
		Platforms: platforms,
		Order:     linetally.Insertion,
		Count:     linetally.Occurrences,
		Sections:  linetally.DefaultSections,
	}
}

func (c Config) Validate() error {
	if len(c.Platforms) == 0 {
		return fmt.Errorf("%w: no platforms", ErrInvalidConfig)
	}
	for i, p := range c.Platforms {
		if p.File == "" {
			return fmt.Errorf("%w: platform #%d (%q) has no file", ErrInvalidConfig, i, p.Name)
		}
	}
	if len(c.Sections) == 0 {
		return fmt.Errorf("%w: no sections", ErrInvalidConfig)
	}
	return nil
}

// LoadConfig reads a YAML config from fs. Fields missing in the file keep their defaults.
func LoadConfig(fs afero.Fs, path string) (Config, error) {
	config := DefaultConfig()

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	// Пустой файл означает конфигурацию по умолчанию
	if len(data) == 0 {
		return config, nil
	}

	var file struct {
		Platforms []Platform       `yaml:"platforms"`
		Order     *linetally.Order `yaml:"order"`
		Count     *linetally.Mode  `yaml:"count"`
	}
	if err := yaml.UnmarshalStrict(data, &file); err != nil {
		return Config{}, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if file.Platforms != nil {
		config.Platforms = file.Platforms
	}
	if file.Order != nil {
		config.Order = *file.Order
	}
	if file.Count != nil {
		config.Count = *file.Count
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}
