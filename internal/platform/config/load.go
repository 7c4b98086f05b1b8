package config

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "APP_"

// profileName keeps profiles to plain file stems inside the config directory.
var profileName = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)

// Option adjusts where Load reads from.
type Option func(*loader)

type loader struct {
	dir string
}

// WithConfigDir sets the directory holding base.yaml and the profile files.
// The default is "configs" under the working directory.
func WithConfigDir(dir string) Option {
	return func(l *loader) { l.dir = dir }
}

// source is one layer of the configuration stack. Each layer overrides the
// keys it sets and leaves the rest alone.
type source struct {
	name string
	load func(k *koanf.Koanf) error
}

// Load builds the configuration for profile from, in increasing precedence:
// built-in defaults, {dir}/base.yaml, {dir}/{profile}.yaml and APP_-prefixed
// environment variables, then validates it.
//
//	APP_SERVER_PORT                          -> server.port
//	APP_PLANNER_MAX_DELEGATIONS              -> planner.max_delegations
//	APP_REFERENCE_CLIENT_RETRY_MAX_ATTEMPTS  -> reference.client.retry.max_attempts
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	l := loader{dir: "configs"}
	for _, opt := range opts {
		opt(&l)
	}

	k := koanf.New(".")
	for _, src := range l.sources(profile) {
		if err := src.load(k); err != nil {
			return nil, fmt.Errorf("loading %s: %w", src.name, err)
		}
	}

	cfg := new(Config)
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("decoding configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s configuration: %w", profile, err)
	}
	return cfg, nil
}

func (l loader) sources(profile string) []source {
	yamlFile := func(path string) func(*koanf.Koanf) error {
		return func(k *koanf.Koanf) error { return k.Load(file.Provider(path), yaml.Parser()) }
	}
	base := filepath.Join(l.dir, "base.yaml")
	overlay := filepath.Join(l.dir, profile+".yaml")

	return []source{
		{name: "defaults", load: func(k *koanf.Koanf) error {
			return k.Load(confmap.Provider(defaults(), "."), nil)
		}},
		{name: base, load: yamlFile(base)},
		{name: overlay, load: yamlFile(overlay)},
		{name: "environment", load: func(k *koanf.Koanf) error {
			// Every known key exists by now because defaults loaded first.
			return k.Load(env.Provider(".", env.Opt{
				Prefix:        envPrefix,
				TransformFunc: envKeyMapper(k.Keys()),
			}), nil)
		}},
	}
}

func validateProfile(profile string) error {
	if !profileName.MatchString(profile) {
		return fmt.Errorf("profile %q must be a plain name of letters, digits, '-' or '_' with no path elements", profile)
	}
	return nil
}

// envKeyMapper maps APP_SERVER_READ_TIMEOUT to the known key
// "server.read_timeout" rather than "server.read.timeout". Variables that
// match no known key have every underscore turned into a dot.
func envKeyMapper(known []string) func(key, value string) (string, any) {
	byEnvName := make(map[string]string, len(known))
	for _, key := range known {
		byEnvName[strings.ReplaceAll(key, ".", "_")] = key
	}

	return func(key, value string) (string, any) {
		name := strings.ToLower(strings.TrimPrefix(key, envPrefix))
		if known, ok := byEnvName[name]; ok {
			return known, value
		}
		return strings.ReplaceAll(name, "_", "."), value
	}
}
