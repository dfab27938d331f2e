// Package config loads and validates the screening configuration from a
// YAML file with environment-variable overrides.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config is the full screening configuration.
type Config struct {
	Matching MatchingConfig `mapstructure:"matching"`
	HTTP     HTTPConfig     `mapstructure:"http"`
	Sources  SourcesConfig  `mapstructure:"sources"`
	Input    InputConfig    `mapstructure:"input"`
	Output   OutputConfig   `mapstructure:"output"`
}

// MatchingConfig tunes the name-matching engine. The engine itself
// tolerates an unknown algorithm (degrading to ratio); validation here
// rejects typos before a run starts.
type MatchingConfig struct {
	Threshold float64 `mapstructure:"threshold" validate:"gte=0,lte=100"`
	Algorithm string  `mapstructure:"algorithm" validate:"oneof=ratio token_sort_ratio token_set_ratio"`
	Workers   int     `mapstructure:"workers" validate:"gte=1"`
}

// HTTPConfig tunes sanctions list downloads.
type HTTPConfig struct {
	TimeoutSeconds    int `mapstructure:"timeout_seconds" validate:"gte=1"`
	MaxRetries        int `mapstructure:"max_retries" validate:"gte=1"`
	RetryDelaySeconds int `mapstructure:"retry_delay_seconds" validate:"gte=0"`
}

// SourceConfig is one sanctions list endpoint.
type SourceConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	URL     string `mapstructure:"url" validate:"required_if=Enabled true,omitempty,url"`
}

// SourcesConfig names the supported sanctions sources.
type SourcesConfig struct {
	UNConsolidated SourceConfig `mapstructure:"un_consolidated"`
	EUConsolidated SourceConfig `mapstructure:"eu_consolidated"`
	OFACSDN        SourceConfig `mapstructure:"ofac_sdn"`
}

// InputConfig locates the company roster.
type InputConfig struct {
	CompaniesFile string `mapstructure:"companies_file" validate:"required"`
}

// OutputConfig locates run outputs.
type OutputConfig struct {
	ReportDir string `mapstructure:"report_dir" validate:"required"`
	// DataDir, when set, receives a copy of each downloaded list payload.
	DataDir string `mapstructure:"data_dir"`
}

// Load reads configuration from path (or the default search locations when
// path is empty), applies SCREENER_* environment overrides, and validates
// the result.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("SCREENER")

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
			// Defaults plus environment overrides only.
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("matching.threshold", 85)
	v.SetDefault("matching.algorithm", "token_sort_ratio")
	v.SetDefault("matching.workers", 4)

	v.SetDefault("http.timeout_seconds", 30)
	v.SetDefault("http.max_retries", 3)
	v.SetDefault("http.retry_delay_seconds", 5)

	v.SetDefault("sources.un_consolidated.enabled", true)
	v.SetDefault("sources.un_consolidated.url", "https://scsanctions.un.org/resources/xml/en/consolidated.xml")
	v.SetDefault("sources.eu_consolidated.enabled", false)
	v.SetDefault("sources.ofac_sdn.enabled", false)

	v.SetDefault("input.companies_file", "data/companies.csv")
	v.SetDefault("output.report_dir", "reports")
	v.SetDefault("output.data_dir", "data/sanctions_lists")
}
