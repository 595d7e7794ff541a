package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"bikeshare/domain/filter"
	"bikeshare/utils"
)

// DefaultConfigFilepath is used when no config file is given and it exists
const DefaultConfigFilepath = "./config/config.yaml"

const (
	dataDirEnv  = "BIKESHARE_DATA_DIR"
	logLevelEnv = "LOG_LEVEL"
)

// Columns contains the header name of each field to analyze
type Columns struct {
	StartTime    string `yaml:"start_time" validate:"required"`
	StartStation string `yaml:"start_station" validate:"required"`
	EndStation   string `yaml:"end_station" validate:"required"`
	Duration     string `yaml:"trip_duration" validate:"required"`
	UserType     string `yaml:"user_type" validate:"required"`
	Gender       string `yaml:"gender" validate:"required"`
	BirthYear    string `yaml:"birth_year" validate:"required"`
}

// Required returns the columns every dataset must have. Gender and birth year
// are only required for cities with demographics
func (c Columns) Required(withDemographics bool) []string {
	required := []string{c.StartTime, c.StartStation, c.EndStation, c.Duration, c.UserType}
	if withDemographics {
		required = append(required, c.Gender, c.BirthYear)
	}
	return required
}

type Config struct {
	DataDir      string            `yaml:"data_dir" validate:"required"`
	Datasets     map[string]string `yaml:"datasets" validate:"required,dive,required"`
	TimeLayout   string            `yaml:"time_layout" validate:"required"`
	PageSize     int               `yaml:"page_size" validate:"gt=0"`
	StationsFile string            `yaml:"stations_file"`
	Columns      Columns           `yaml:"columns"`
	LogLevel     string            `yaml:"log_level" validate:"omitempty,oneof=trace debug info warn warning error fatal panic"`
}

// Default returns the configuration used when no config file is present
func Default() *Config {
	return &Config{
		DataDir: ".",
		Datasets: map[string]string{
			filter.DatasetChicago:     "chicago.csv",
			filter.DatasetNewYorkCity: "new_york_city.csv",
			filter.DatasetWashington:  "washington.csv",
		},
		TimeLayout: "2006-01-02 15:04:05",
		PageSize:   5,
		Columns: Columns{
			StartTime:    "Start Time",
			StartStation: "Start Station",
			EndStation:   "End Station",
			Duration:     "Trip Duration",
			UserType:     "User Type",
			Gender:       "Gender",
			BirthYear:    "Birth Year",
		},
		LogLevel: "warning",
	}
}

// LoadConfig returns the default configuration overlaid with the yaml file at configFilepath
// and with the environment. An empty configFilepath skips the file
func LoadConfig(configFilepath string) (*Config, error) {
	cfg := Default()

	if configFilepath != "" {
		configFile, err := utils.GetConfigFile(configFilepath)
		if err != nil {
			return nil, err
		}

		err = yaml.Unmarshal(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("error parsing config file: %w", err)
		}
	}

	cfg.DataDir = getEnv(dataDirEnv, cfg.DataDir)
	cfg.LogLevel = strings.ToLower(getEnv(logLevelEnv, cfg.LogLevel))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the struct tags and that every known dataset has a file
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	var missing []string
	for _, dataset := range filter.Datasets() {
		if _, ok := c.Datasets[dataset]; !ok {
			missing = append(missing, dataset)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("invalid config: datasets without file: %s", strings.Join(missing, ", "))
	}

	return nil
}

// DatasetPath returns the path to the .csv file of a dataset key
func (c *Config) DatasetPath(dataset string) (string, bool) {
	filename, ok := c.Datasets[dataset]
	if !ok {
		return "", false
	}
	if filepath.IsAbs(filename) {
		return filename, true
	}
	return filepath.Join(c.DataDir, filename), true
}

// StationsPath returns the path to the station coordinates file, if any
func (c *Config) StationsPath() (string, bool) {
	if c.StationsFile == "" {
		return "", false
	}
	if filepath.IsAbs(c.StationsFile) {
		return c.StationsFile, true
	}
	return filepath.Join(c.DataDir, c.StationsFile), true
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key string, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
