package connections

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	require.NoError(t, config.Validate())
	assert.Equal(t, []int{5, 20, 35, 50}, config.FerryMinutes)
	assert.Equal(t, 10*time.Minute, config.MinTravelTime())

	location, err := config.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, location)

	config.FerryMinutes[0] = 6
	assert.Equal(t, 5, DefaultFerryMinutes[0])
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(config *Config)
		field  string
	}{
		{
			name:   "EmptyFerryMinutes",
			modify: func(config *Config) { config.FerryMinutes = []int{} },
			field:  "ferryMinutes",
		},
		{
			name:   "FerryMinuteOutOfRange",
			modify: func(config *Config) { config.FerryMinutes = []int{5, 60} },
			field:  "ferryMinutes",
		},
		{
			name:   "NegativeFerryMinute",
			modify: func(config *Config) { config.FerryMinutes = []int{-1} },
			field:  "ferryMinutes",
		},
		{
			name:   "DuplicateFerryMinute",
			modify: func(config *Config) { config.FerryMinutes = []int{5, 20, 5} },
			field:  "ferryMinutes",
		},
		{
			name:   "NegativeMinTravel",
			modify: func(config *Config) { config.MinTravelMinutes = -1 },
			field:  "minTravelMinutes",
		},
		{
			name:   "UnknownTimezone",
			modify: func(config *Config) { config.Timezone = "Lake/Constance" },
			field:  "timezone",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			config := DefaultConfig()
			test.modify(&config)

			err := config.Validate()

			var configError *ConfigError
			require.True(t, errors.As(err, &configError))
			assert.Equal(t, test.field, configError.Field)

			_, err = NewBuilder(config)
			assert.Error(t, err)
		})
	}
}

func TestConfigZeroMinTravelIsValid(t *testing.T) {
	config := DefaultConfig()
	config.MinTravelMinutes = 0

	assert.NoError(t, config.Validate())
}

func TestConfigApplyEnvironment(t *testing.T) {
	config, err := DefaultConfig().ApplyEnvironment(map[string]string{
		"FERRYBUS_FERRY_MINUTES":      "0, 30",
		"FERRYBUS_MIN_TRAVEL_MINUTES": "15",
		"FERRYBUS_TIMEZONE":           "Europe/Berlin",
	})
	require.NoError(t, err)

	assert.Equal(t, []int{0, 30}, config.FerryMinutes)
	assert.Equal(t, 15, config.MinTravelMinutes)
	assert.Equal(t, "Europe/Berlin", config.Timezone)

	_, err = DefaultConfig().ApplyEnvironment(map[string]string{"FERRYBUS_FERRY_MINUTES": "5,x"})
	var configError *ConfigError
	require.True(t, errors.As(err, &configError))
	assert.Equal(t, "ferryMinutes", configError.Field)

	_, err = DefaultConfig().ApplyEnvironment(map[string]string{"FERRYBUS_MIN_TRAVEL_MINUTES": "ten"})
	require.True(t, errors.As(err, &configError))
	assert.Equal(t, "minTravelMinutes", configError.Field)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ferrybus.yaml")
	err := os.WriteFile(path, []byte("ferryMinutes: [0, 30]\ntimezone: Europe/Berlin\n"), 0o644)
	require.NoError(t, err)

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 30}, config.FerryMinutes)
	assert.Equal(t, DefaultMinTravelMinutes, config.MinTravelMinutes)
	assert.Equal(t, "Europe/Berlin", config.Timezone)
	assert.Len(t, GenerateFerrySchedule(config.FerryMinutes), 48)
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ferrybus.yaml")
	err := os.WriteFile(path, []byte("minTravelMinutes: -5\n"), 0o644)
	require.NoError(t, err)

	_, err = LoadConfig(path)

	var configError *ConfigError
	require.True(t, errors.As(err, &configError))
	assert.Equal(t, "minTravelMinutes", configError.Field)

}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))

	var configError *ConfigError
	require.True(t, errors.As(err, &configError))
	assert.Equal(t, "file", configError.Field)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
