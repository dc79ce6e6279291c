package config

import (
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/pagesconf/internal/foundation/errors"
)

// Load reads the project file at configPath, expanding ${VAR} references from env.
// When the file does not exist and required is false, defaults are returned.
func Load(configPath string, env Environment, required bool) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) && !required {
			slog.Debug("No configuration file, using defaults", "path", configPath)
			return Default(), nil
		}
		if os.IsNotExist(err) {
			return nil, errors.ConfigError("configuration file not found").
				WithContext("path", configPath).
				Build()
		}
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to read config file").
			WithContext("path", configPath).
			Build()
	}
	return Parse(data, env)
}

// Parse decodes a project file, applies defaults and normalizes the prerender section.
func Parse(data []byte, env Environment) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal([]byte(env.Expand(string(data))), &cfg); err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "failed to unmarshal config").Fatal().Build()
	}

	res, err := cfg.Prerender.Normalize()
	if err != nil {
		return nil, err
	}
	for _, w := range res.Warnings {
		slog.Warn("Configuration normalized", "detail", w)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Init writes example (or the defaults when nil) to configPath.
func Init(configPath string, force bool, example *Config) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return errors.ValidationError("configuration file already exists (use --force to overwrite)").
			WithContext("path", configPath).
			Build()
	}

	if example == nil {
		example = Default()
	}
	data, err := yaml.Marshal(example)
	if err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "failed to marshal config").Build()
	}

	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write config file").
			WithContext("path", configPath).
			Build()
	}
	return nil
}
