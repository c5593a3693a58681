package main

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// config holds the smoke test settings loaded from flags, environment and .env.
type config struct {
	APIKey        string        `mapstructure:"api_key"`
	ApplicationID string        `mapstructure:"application_id"`
	BaseURL       string        `mapstructure:"base_url"`
	RawClusters   string        `mapstructure:"clusters"`
	Timeout       time.Duration `mapstructure:"timeout"`
	Verbose       bool          `mapstructure:"verbose"`

	Clusters []string `mapstructure:"-"`
}

// settings maps viper keys to their flag names and environment variables.
var settings = []struct {
	key  string
	flag string
	env  string
}{
	{"api_key", "api-key", "ALGOLIA_API_KEY"},
	{"application_id", "app-id", "ALGOLIA_APPLICATION_ID"},
	{"base_url", "base-url", "ALGOLIA_MONITORING_BASE_URL"},
	{"clusters", "clusters", "ALGOLIA_CLUSTERS"},
	{"timeout", "timeout", "ALGOLIA_MONITORING_TIMEOUT"},
	{"verbose", "verbose", "ALGOLIA_MONITORING_VERBOSE"},
}

// bindSettings wires every setting to its flag and environment variable.
func bindSettings(v *viper.Viper, flags *pflag.FlagSet) error {
	for _, s := range settings {
		if err := v.BindEnv(s.key, s.env); err != nil {
			return errors.Wrapf(err, "failed to bind env %s", s.env)
		}
		if err := v.BindPFlag(s.key, flags.Lookup(s.flag)); err != nil {
			return errors.Wrapf(err, "failed to bind flag --%s", s.flag)
		}
	}
	return nil
}

// loadConfig reads envFile (if it exists) into the process environment,
// then resolves settings with flag > env > default precedence.
func loadConfig(v *viper.Viper, envFile string) (*config, error) {
	if envFile != "" {
		// A missing .env is fine; variables may come from the environment.
		_ = godotenv.Load(envFile)
	}

	v.SetDefault("base_url", "https://status.algolia.com")
	v.SetDefault("timeout", 30*time.Second)

	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}

	if cfg.APIKey == "" {
		return nil, errors.New("API key is required: use --api-key or ALGOLIA_API_KEY")
	}
	if cfg.ApplicationID == "" {
		return nil, errors.New("application ID is required: use --app-id or ALGOLIA_APPLICATION_ID")
	}
	if cfg.Timeout <= 0 {
		return nil, errors.Newf("invalid timeout %s (must be positive)", cfg.Timeout)
	}

	cfg.Clusters = splitClusters(cfg.RawClusters)

	return &cfg, nil
}

// splitClusters parses a comma separated cluster list, dropping blanks.
func splitClusters(raw string) []string {
	var clusters []string
	for _, name := range strings.Split(raw, ",") {
		if name = strings.TrimSpace(name); name != "" {
			clusters = append(clusters, name)
		}
	}
	return clusters
}
