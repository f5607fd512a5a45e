package connections

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/travigo/ferrybus/pkg/util"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

const DefaultMinTravelMinutes = 10
const DefaultTimezone = "UTC"

var DefaultFerryMinutes = []int{5, 20, 35, 50}

type Config struct {
	// Minutes past every hour that a ferry leaves
	FerryMinutes []int `yaml:"ferryMinutes"`

	// Minimum time between a bus arriving and the ferry leaving
	MinTravelMinutes int `yaml:"minTravelMinutes"`

	// Location used to pin ferry times to a calendar day and to format times
	Timezone string `yaml:"timezone"`
}

type ConfigError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid config %s: %s", e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func DefaultConfig() Config {
	return Config{
		FerryMinutes:     slices.Clone(DefaultFerryMinutes),
		MinTravelMinutes: DefaultMinTravelMinutes,
		Timezone:         DefaultTimezone,
	}
}

// LoadConfig reads the optional YAML file at path over the defaults, applies the
// FERRYBUS_* environment overrides and validates the result
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	if path != "" {
		configYaml, err := os.ReadFile(path)
		if err != nil {
			return config, &ConfigError{Field: "file", Reason: err.Error(), Err: err}
		}

		if err := yaml.Unmarshal(configYaml, &config); err != nil {
			return config, &ConfigError{Field: "file", Reason: err.Error()}
		}
	}

	config, err := config.ApplyEnvironment(util.GetEnvironmentVariables())
	if err != nil {
		return config, err
	}

	return config, config.Validate()
}

func (c Config) ApplyEnvironment(env map[string]string) (Config, error) {
	if env["FERRYBUS_FERRY_MINUTES"] != "" {
		var minutes []int

		for _, item := range util.SplitTrimmed(env["FERRYBUS_FERRY_MINUTES"], ",") {
			minute, err := strconv.Atoi(item)
			if err != nil {
				return c, &ConfigError{Field: "ferryMinutes", Reason: fmt.Sprintf("%q is not an integer", item)}
			}

			minutes = append(minutes, minute)
		}

		c.FerryMinutes = minutes
	}

	if env["FERRYBUS_MIN_TRAVEL_MINUTES"] != "" {
		minTravelMinutes, err := strconv.Atoi(env["FERRYBUS_MIN_TRAVEL_MINUTES"])
		if err != nil {
			return c, &ConfigError{Field: "minTravelMinutes", Reason: fmt.Sprintf("%q is not an integer", env["FERRYBUS_MIN_TRAVEL_MINUTES"])}
		}

		c.MinTravelMinutes = minTravelMinutes
	}

	if env["FERRYBUS_TIMEZONE"] != "" {
		c.Timezone = env["FERRYBUS_TIMEZONE"]
	}

	return c, nil
}

func (c Config) Validate() error {
	if len(c.FerryMinutes) == 0 {
		return &ConfigError{Field: "ferryMinutes", Reason: "at least one minute offset is required"}
	}

	var seen []int
	for _, minute := range c.FerryMinutes {
		if minute < 0 || minute > 59 {
			return &ConfigError{Field: "ferryMinutes", Reason: fmt.Sprintf("minute %d is outside 0-59", minute)}
		}

		if slices.Contains(seen, minute) {
			return &ConfigError{Field: "ferryMinutes", Reason: fmt.Sprintf("minute %d is listed twice", minute)}
		}

		seen = append(seen, minute)
	}

	if c.MinTravelMinutes < 0 {
		return &ConfigError{Field: "minTravelMinutes", Reason: "must not be negative"}
	}

	if _, err := c.Location(); err != nil {
		return err
	}

	return nil
}

func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}

	location, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, &ConfigError{Field: "timezone", Reason: err.Error()}
	}

	return location, nil
}

func (c Config) MinTravelTime() time.Duration {
	return time.Duration(c.MinTravelMinutes) * time.Minute
}
