// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog/log"

	"codeberg.org/scholarpage/scholarpage/core/idgen"
)

// Global exposes the server configuration.
var Global ServerConfig

// configFileEnv names the environment variable that points at a YAML config file.
const configFileEnv = "SCHOLARPAGE_CONFIGFILE"

// ServerConfig holds the application configuration.
type ServerConfig struct {
	Build buildInfo `yaml:"-"`

	Basic struct {
		Host                     string      `env:"SCHOLARPAGE_HOST" yaml:"host"`
		Port                     string      `env:"SCHOLARPAGE_PORT" yaml:"port"`
		UnixSocket               string      `env:"SCHOLARPAGE_UNIXSOCKET" yaml:"unixSocket"`
		RawUnixSocketPermissions string      `env:"SCHOLARPAGE_UNIXSOCKET_PERMISSIONS" yaml:"unixSocketPermissions"`
		UnixSocketPermissions    os.FileMode `yaml:"-"`
	} `yaml:"basic"`

	Site struct {
		// BaseURL is the public origin used for canonical links. Optional.
		BaseURL string `env:"SCHOLARPAGE_BASE_URL" yaml:"baseUrl"`
		// CatalogFile overrides the built-in catalog with a YAML file on disk.
		CatalogFile string `env:"SCHOLARPAGE_CATALOG_FILE" yaml:"catalogFile"`
		// PublicDir holds images referenced by the catalog, served under /images/.
		PublicDir string `env:"SCHOLARPAGE_PUBLIC_DIR" yaml:"publicDir"`
	} `yaml:"site"`

	Cache struct {
		Enabled  bool `env:"SCHOLARPAGE_CACHE" yaml:"enabled"`
		Size     int  `env:"SCHOLARPAGE_CACHE_SIZE" yaml:"cacheSize"`
		Compress bool `env:"SCHOLARPAGE_CACHE_COMPRESS" yaml:"compress"`
	} `yaml:"cache"`

	HTTPCache struct {
		MaxAge               time.Duration `env:"SCHOLARPAGE_CACHE_CONTROL_MAX_AGE" yaml:"cacheControlMaxAge"`
		StaleWhileRevalidate time.Duration `env:"SCHOLARPAGE_CACHE_CONTROL_STALE_WHILE_REVALIDATE" yaml:"cacheControlStaleWhileRevalidate"`
	} `yaml:"httpCache"`

	Response struct {
		Compression bool `env:"SCHOLARPAGE_RESPONSE_COMPRESSION" yaml:"compression"`
	} `yaml:"response"`

	Instance struct {
		StartingTime      string `yaml:"-"`
		FileServerCacheID string `yaml:"-"`
		RepoURL           string `env:"SCHOLARPAGE_REPO_URL" yaml:"repoUrl"`
	} `yaml:"instance"`

	Development struct {
		InDevelopment bool `env:"SCHOLARPAGE_DEV" yaml:"inDevelopment"`
	} `yaml:"development"`

	Log struct {
		Level   string   `env:"SCHOLARPAGE_LOG_LEVEL" yaml:"logLevel"`
		Outputs []string `env:"SCHOLARPAGE_LOG_OUTPUTS" yaml:"logOutputs"`
		Format  string   `env:"SCHOLARPAGE_LOG_FORMAT" yaml:"logFormat"`
	} `yaml:"log"`

	Limiter struct {
		Enabled     bool          `env:"SCHOLARPAGE_LIMITER" yaml:"enabled"`
		Rate        float64       `env:"SCHOLARPAGE_LIMITER_RATE" yaml:"rate"`
		Burst       int           `env:"SCHOLARPAGE_LIMITER_BURST" yaml:"burst"`
		FilterLocal bool          `env:"SCHOLARPAGE_LIMITER_FILTER_LOCAL" yaml:"filterLocal"`
		IPv4Prefix  int           `env:"SCHOLARPAGE_LIMITER_IPV4_PREFIX" yaml:"ipv4Prefix"`
		IPv6Prefix  int           `env:"SCHOLARPAGE_LIMITER_IPV6_PREFIX" yaml:"ipv6Prefix"`
		IdleTimeout time.Duration `env:"SCHOLARPAGE_LIMITER_IDLE_TIMEOUT" yaml:"idleTimeout"`
	} `yaml:"limiter"`

	Internationalization struct {
		// Strict mode for missing keys.
		//
		// When enabled, missing keys are logged (deduplicated per locale+key) and
		// visibly wrapped using markers.
		StrictMissingKeys bool `env:"SCHOLARPAGE_STRICT_MISSING_KEYS" yaml:"strictMissingKeys"`
	} `yaml:"internationalization"`
}

// LoadConfig loads the configuration from various sources.
func (cfg *ServerConfig) LoadConfig() error {
	parsedConfigFlagValue := parseCommandLineArgs()

	configFlagUserSet := false

	flag.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			configFlagUserSet = true
		}
	})

	return cfg.load(resolveConfigFilePath(parsedConfigFlagValue, configFlagUserSet))
}

// resolveConfigFilePath picks the YAML file to read, in order of precedence:
// the -config flag, then SCHOLARPAGE_CONFIGFILE, then ./config.yaml with a
// fallback to ./config.yml.
func resolveConfigFilePath(flagValue string, flagUserSet bool) string {
	if flagUserSet {
		return flagValue
	}

	if envVar := os.Getenv(configFileEnv); envVar != "" {
		return envVar
	}

	if _, err := os.Stat(flagValue); os.IsNotExist(err) {
		if _, statErr := os.Stat("./config.yml"); statErr == nil {
			return "./config.yml"
		}
	}

	return flagValue
}

// load runs every configuration stage against a known file path.
func (cfg *ServerConfig) load(configFilePath string) error {
	cfg.SetDefaults()

	cfg.Build.load()

	cfg.Instance.FileServerCacheID = idgen.Make()
	cfg.Instance.StartingTime = time.Now().UTC().Format("2006-01-02 15:04")

	if err := cfg.readYAML(configFilePath); err != nil {
		return fmt.Errorf("error loading YAML config: %w", err)
	}

	if err := useDotEnv(); err != nil {
		return fmt.Errorf("error using .env file: %w", err)
	}

	if err := readEnv(cfg); err != nil {
		return fmt.Errorf("error loading environment variables: %w", err)
	}

	if err := cfg.validateAndSet(); err != nil {
		return fmt.Errorf("configuration invalid: %w", err)
	}

	cfg.setupAudit()

	cfg.print()

	if isContainerized() && cfg.Basic.UnixSocket == "" && cfg.Basic.Host != "0.0.0.0" && cfg.Basic.Host != "::" {
		log.Warn().
			Str("host", cfg.Basic.Host).
			Msg("Running in a containerized environment but host is not a wildcard address (e.g., '0.0.0.0' or '::'). This may prevent the service from being accessible outside the container.")
	}

	return nil
}

var staticSkippedPathPrefixes = []string{"/css/", "/images/", "/robots.txt", "/healthz"}

// ShouldSkipServerLogging reports whether a request to path should bypass request logging.
func (cfg *ServerConfig) ShouldSkipServerLogging(path string) bool {
	if cfg.Development.InDevelopment {
		return false
	}

	for _, prefix := range staticSkippedPathPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}

	return false
}

// isContainerized checks for common indicators of a containerized environment.
//
// This is a heuristic and may not be 100% accurate.
func isContainerized() bool {
	if os.Getenv("KUBERNETES_SERVICE_HOST") != "" {
		return true
	}

	for _, marker := range []string{"/.dockerenv", "/.containerenv"} {
		if _, err := os.Stat(marker); err == nil {
			return true
		}
	}

	// #nosec G304 -- well-known system file, read for heuristics only.
	cgroup, err := os.ReadFile("/proc/self/cgroup")
	if err != nil {
		return false
	}

	content := string(cgroup)

	for _, keyword := range []string{"docker", "kubepods", "containerd", "lxc", "crio", ".machine"} {
		if strings.Contains(content, keyword) {
			return true
		}
	}

	return false
}

// GetDurationEncoderOption returns a YAML encoder option that marshals
// time.Duration into a human-readable string format (e.g., "30m", "1h").
func GetDurationEncoderOption() yaml.EncodeOption {
	return yaml.CustomMarshaler[time.Duration](
		func(d time.Duration) ([]byte, error) {
			return yaml.Marshal(d.String())
		},
	)
}
