package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"sync"

	"github.com/google/subcommands"
	"gopkg.in/yaml.v2"
)

const (
	envConfig         = "ASISTAN_CONFIG"
	envPrices         = "ASISTAN_PRICES"
	envInitialBalance = "ASISTAN_INITIAL_BALANCE"
	envPlain          = "ASISTAN_PLAIN"

	defaultConfigFile = "asistan.yaml"
)

// Settings is the application configuration.
//
// Values come from the YAML configuration file, then environment
// variables, then command line flags, each one overriding the previous.
type Settings struct {
	// Prices is the path to a JSON price document. Empty means the built-in market data.
	Prices string `yaml:"prices"`
	// JSONPath selects the assets in the price document.
	JSONPath string `yaml:"jsonpath"`
	// Currency of the prices, when the document does not say.
	Currency string `yaml:"currency"`
	// InitialBalance is the cash the simulator starts with.
	InitialBalance string `yaml:"initial_balance"`
	// Plain disables terminal rendering of markdown.
	Plain bool `yaml:"plain"`
	// Model is the Gemini model of the tutor.
	Model string `yaml:"model"`
}

// LoadSettings reads a YAML configuration file. A missing file is not an
// error unless required.
func LoadSettings(path string, required bool) (Settings, error) {
	var s Settings
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !required {
		log.Printf("no configuration file %q, using defaults", path)
		return s, nil
	}
	if err != nil {
		return s, err
	}
	if err := yaml.UnmarshalStrict(content, &s); err != nil {
		return s, fmt.Errorf("invalid configuration file %q: %w", path, err)
	}
	return s, nil
}

// applyEnv overrides settings with the environment.
func (s *Settings) applyEnv(getenv func(string) string) {
	if v := getenv(envPrices); v != "" {
		s.Prices = v
	}
	if v := getenv(envInitialBalance); v != "" {
		s.InitialBalance = v
	}
	switch getenv(envPlain) {
	case "1", "true", "yes":
		s.Plain = true
	case "0", "false", "no":
		s.Plain = false
	}
}

// applyFlags overrides settings with the global flags set on the command line.
func (s *Settings) applyFlags() {
	if *pricesFlag != "" {
		s.Prices = *pricesFlag
	}
	if *jsonPathFlag != "" {
		s.JSONPath = *jsonPathFlag
	}
	if *initialBalanceFlag != "" {
		s.InitialBalance = *initialBalanceFlag
	}
	if *plainFlag {
		s.Plain = true
	}
}

// resolveSettings computes the settings from all sources.
func resolveSettings(getenv func(string) string) (Settings, error) {
	path, required := *configFlag, true
	if path == "" {
		path = getenv(envConfig)
	}
	if path == "" {
		path, required = defaultConfigFile, false
	}
	s, err := LoadSettings(path, required)
	if err != nil {
		return s, err
	}
	s.applyEnv(getenv)
	s.applyFlags()
	return s, nil
}

var (
	settingsOnce sync.Once
	current      Settings
)

// settings returns the application settings. A broken configuration is
// fatal, there is nothing sensible to do without it.
func settings() Settings {
	settingsOnce.Do(func() {
		var err error
		current, err = resolveSettings(os.Getenv)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading configuration: %v\n", err)
			os.Exit(int(subcommands.ExitUsageError))
		}
	})
	return current
}
