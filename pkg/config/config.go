// Package config loads service configuration from a file plus
// COURSESCOUT_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"CourseScout/pkg/catalog"
)

const termDateLayout = "01/02/2006"

type Config struct {
	Server  ServerConfig       `mapstructure:"server"`
	Chrome  ChromeConfig       `mapstructure:"chrome"`
	Catalog CatalogConfig      `mapstructure:"catalog"`
	Terms   []TermWindowConfig `mapstructure:"terms"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

type ChromeConfig struct {
	ExecPath string `mapstructure:"exec_path"`
	Headless bool   `mapstructure:"headless"`
}

type CatalogConfig struct {
	// SearchURL is the catalog search page with a %s placeholder for the
	// url-escaped keyword parameter.
	SearchURL         string        `mapstructure:"search_url"`
	NavigationTimeout time.Duration `mapstructure:"navigation_timeout"`
}

// TermWindowConfig is one row of the academic calendar table. The table is
// deployment data: whoever runs the service refreshes it each academic
// year, nothing derives it from the page.
type TermWindowConfig struct {
	Term  string `mapstructure:"term"`
	Start string `mapstructure:"start"`
	End   string `mapstructure:"end"`
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Server.Address) == "" {
		return errors.New("server.address is required")
	}
	if !strings.Contains(c.Catalog.SearchURL, "%s") {
		return errors.New("catalog.search_url must contain a %s keyword placeholder")
	}
	if c.Catalog.NavigationTimeout <= 0 {
		return errors.New("catalog.navigation_timeout must be positive")
	}
	if len(c.Terms) == 0 {
		return errors.New("at least one term window is required")
	}
	return nil
}

// TermWindows converts the configured table into the ordered window list
// the classifier consumes.
func (c *Config) TermWindows() ([]catalog.TermWindow, error) {
	windows := make([]catalog.TermWindow, 0, len(c.Terms))
	for _, entry := range c.Terms {
		start, err := time.Parse(termDateLayout, entry.Start)
		if err != nil {
			return nil, fmt.Errorf("term %q start: %w", entry.Term, err)
		}
		end, err := time.Parse(termDateLayout, entry.End)
		if err != nil {
			return nil, fmt.Errorf("term %q end: %w", entry.Term, err)
		}
		windows = append(windows, catalog.TermWindow{Term: entry.Term, Start: start, End: end})
	}
	return windows, nil
}

// LoadConfig reads the config file at path, or searches the usual spots
// when path is empty. A missing file is fine without an explicit path; the
// defaults below describe the 2024-25 academic year.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetDefault("server.address", ":8080")
	v.SetDefault("chrome.headless", true)
	v.SetDefault("catalog.search_url", "https://catalog.example.edu/courses/search?keyword=%s")
	v.SetDefault("catalog.navigation_timeout", 25*time.Second)
	v.SetDefault("terms", defaultTermTable())

	if path == "" {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	} else {
		v.SetConfigFile(path)
	}

	v.SetEnvPrefix("COURSESCOUT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func defaultTermTable() []map[string]string {
	return []map[string]string{
		{"term": "Spring 2024", "start": "01/08/2024", "end": "05/10/2024"},
		{"term": "Summer 2024", "start": "05/20/2024", "end": "08/16/2024"},
		{"term": "Fall 2024", "start": "09/01/2024", "end": "12/20/2024"},
		{"term": "Spring 2025", "start": "01/06/2025", "end": "05/09/2025"},
	}
}
