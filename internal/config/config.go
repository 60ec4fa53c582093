package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultEnvFile is loaded when present; its absence is not an error.
const DefaultEnvFile = ".env"

// Config represents the effective prreview configuration.
type Config struct {
	GitHubToken   string   `env:"GH_TOKEN" json:"-"`
	OpenAIAPIKey  string   `env:"OPENAI_API_KEY" json:"-"`
	Repository    string   `env:"GITHUB_REPOSITORY" json:"repository"`
	GitHubAPIURL  string   `env:"GITHUB_API_URL" envDefault:"https://api.github.com" json:"githubApiUrl"`
	OpenAIBaseURL string   `env:"PRREVIEW_OPENAI_BASE_URL" envDefault:"https://api.openai.com/v1/chat/completions" json:"openaiBaseUrl"`
	Model         string   `env:"PRREVIEW_MODEL" envDefault:"gpt-4o-mini" json:"model"`
	Temperature   float64  `env:"PRREVIEW_TEMPERATURE" envDefault:"0.2" json:"temperature"`
	RedactSecrets bool     `env:"PRREVIEW_REDACT_SECRETS" envDefault:"false" json:"redactSecrets"`
	RedactPaths   []string `env:"PRREVIEW_REDACT_PATHS" envSeparator:"," envDefault:"**/.env,**/*secrets*" json:"redactPaths"`
	LogLevel      string   `env:"PRREVIEW_LOG_LEVEL" envDefault:"info" json:"logLevel"`
}

// Options control where configuration is read from.
type Options struct {
	// EnvFile is the .env file to load. Empty means DefaultEnvFile, which may be absent.
	EnvFile string
	// Environment replaces os.Environ when non-nil. The env file then fills
	// keys missing from the map instead of the process environment.
	Environment map[string]string
}

// ConfigError reports missing or malformed configuration.
type ConfigError struct {
	Missing []string
	Reason  string
	Err     error
}

func (e *ConfigError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("missing required environment variables (%s)", strings.Join(e.Missing, ", "))
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *ConfigError) Unwrap() error { return e.Err }

var requiredVars = []struct {
	name  string
	value func(Config) string
}{
	{"GH_TOKEN", func(c Config) string { return c.GitHubToken }},
	{"OPENAI_API_KEY", func(c Config) string { return c.OpenAIAPIKey }},
	{"GITHUB_REPOSITORY", func(c Config) string { return c.Repository }},
}

var repoRe = regexp.MustCompile(`^[A-Za-z0-9_.-]+/[A-Za-z0-9_.-]+$`)

// Load builds the effective config: defaults <- .env file <- environment.
func Load(opts Options) (Config, error) {
	envOpts := env.Options{}
	if opts.Environment != nil {
		envOpts.Environment = make(map[string]string, len(opts.Environment))
		for k, v := range opts.Environment {
			envOpts.Environment[k] = v
		}
	}

	if err := loadEnvFile(opts.EnvFile, envOpts.Environment); err != nil {
		return Config{}, err
	}

	cfg, err := env.ParseAsWithOptions[Config](envOpts)
	if err != nil {
		return Config{}, &ConfigError{Reason: "parsing environment", Err: err}
	}
	cfg.GitHubToken = strings.TrimSpace(cfg.GitHubToken)
	cfg.OpenAIAPIKey = strings.TrimSpace(cfg.OpenAIAPIKey)
	cfg.Repository = strings.TrimSpace(cfg.Repository)

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that all credentials are present and the repository is owner/name.
func Validate(cfg Config) error {
	var missing []string
	for _, rv := range requiredVars {
		if rv.value(cfg) == "" {
			missing = append(missing, rv.name)
		}
	}
	if len(missing) > 0 {
		return &ConfigError{Missing: missing}
	}
	if !repoRe.MatchString(cfg.Repository) {
		return &ConfigError{Reason: fmt.Sprintf("GITHUB_REPOSITORY must be owner/name, got %q", cfg.Repository)}
	}
	if cfg.Temperature < 0 || cfg.Temperature > 2 {
		return &ConfigError{Reason: fmt.Sprintf("PRREVIEW_TEMPERATURE must be between 0 and 2, got %g", cfg.Temperature)}
	}
	return nil
}

// loadEnvFile populates unset variables from path, in environ when it is
// non-nil and in the process environment otherwise. The default file is
// optional; an explicitly named file must exist.
func loadEnvFile(path string, environ map[string]string) error {
	explicit := path != ""
	if !explicit {
		path = DefaultEnvFile
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return nil
		}
		return &ConfigError{Reason: fmt.Sprintf("reading env file %s", path), Err: err}
	}

	if environ == nil {
		if err := godotenv.Load(path); err != nil {
			return &ConfigError{Reason: fmt.Sprintf("loading env file %s", path), Err: err}
		}
		return nil
	}

	values, err := godotenv.Read(path)
	if err != nil {
		return &ConfigError{Reason: fmt.Sprintf("loading env file %s", path), Err: err}
	}
	for k, v := range values {
		if _, ok := environ[k]; !ok {
			environ[k] = v
		}
	}
	return nil
}
