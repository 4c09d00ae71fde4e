// Package config loads application configuration from the environment and
// resolves GitHub basic-authentication credentials.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Credential sources recognized by the historical yagpy CLI.
const (
	ConfigPathEnvVar = "YAGPY_CONFIG_PATH"

	defaultConfigDir  = ".yagpy"
	defaultConfigFile = "config"

	credentialsSection = "default"
	userKey            = "github_user"
	passwordKey        = "github_password"
)

// ErrMalformedCredentials reports a --basic-auth value that is not a
// colon-separated user:password pair.
var ErrMalformedCredentials = errors.New("expected colon-separated user:password credentials")

// ConfigError reports a credentials file that cannot be loaded or parsed.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("credentials file %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Config holds application configuration loaded from environment variables.
type Config struct {
	ConfigPath    string
	ConfigPathSet bool // ConfigPath came from YAGPY_CONFIG_PATH
	GitHubToken   string
	DebugMode     bool
}

// FromEnvironment creates a Config from environment variables. The
// credentials file path comes from YAGPY_CONFIG_PATH, defaulting to
// ~/.yagpy/config.
func FromEnvironment() Config {
	debug := os.Getenv("DEBUG")
	debugMode := debug != "" && debug != "0" && strings.ToLower(debug) != "false"

	path := os.Getenv(ConfigPathEnvVar)
	pathSet := path != ""
	if !pathSet {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, defaultConfigDir, defaultConfigFile)
		}
	}

	return Config{
		ConfigPath:    path,
		ConfigPathSet: pathSet,
		GitHubToken:   os.Getenv("GITHUB_TOKEN"),
		DebugMode:     debugMode,
	}
}

// Credentials is a GitHub basic-authentication user/password pair.
type Credentials struct {
	User     string
	Password string
}

// ParseBasicAuth parses a --basic-auth flag value by splitting on the first
// colon; a user name containing colons is not supported. A bare ":" means
// "not provided" and yields nil credentials, matching the historical CLI's
// default flag value.
func ParseBasicAuth(value string) (*Credentials, error) {
	user, password, found := strings.Cut(value, ":")
	if !found {
		return nil, fmt.Errorf("%w, got %q", ErrMalformedCredentials, value)
	}
	if user == "" && password == "" {
		return nil, nil
	}
	if user == "" || password == "" {
		return nil, fmt.Errorf("%w: user and password must both be non-empty, got %q",
			ErrMalformedCredentials, value)
	}
	return &Credentials{User: user, Password: password}, nil
}

// ResolveCredentials determines basic-auth credentials. A --basic-auth value
// always wins; otherwise the INI credentials file is consulted. The two
// sources are never merged. A nil result means unauthenticated access.
func ResolveCredentials(basicAuth string, cfg Config) (*Credentials, error) {
	if basicAuth != "" {
		creds, err := ParseBasicAuth(basicAuth)
		if err != nil || creds != nil {
			return creds, err
		}
		// A bare ":" falls through to the credentials file.
	}
	return loadFromFile(cfg)
}

// loadFromFile reads the [default] section of the INI credentials file. A
// missing file is an error when the path was set explicitly via the
// environment; otherwise it selects unauthenticated mode with a warning.
func loadFromFile(cfg Config) (*Credentials, error) {
	if _, err := os.Stat(cfg.ConfigPath); err != nil {
		if !os.IsNotExist(err) {
			return nil, &ConfigError{Path: cfg.ConfigPath, Err: err}
		}
		if cfg.ConfigPathSet {
			return nil, &ConfigError{
				Path: cfg.ConfigPath,
				Err:  fmt.Errorf("no file at location provided by %s", ConfigPathEnvVar),
			}
		}
		fmt.Fprintf(os.Stderr,
			"WARNING: GitHub credentials file not found at %s, running unauthenticated at reduced rate quota.\n",
			cfg.ConfigPath)
		return nil, nil
	}

	v := viper.New()
	v.SetConfigFile(cfg.ConfigPath)
	v.SetConfigType("ini")
	if err := v.ReadInConfig(); err != nil {
		return nil, &ConfigError{Path: cfg.ConfigPath, Err: err}
	}

	recognized := map[string]bool{
		credentialsSection + "." + userKey:     true,
		credentialsSection + "." + passwordKey: true,
	}
	for _, key := range v.AllKeys() {
		if !recognized[key] {
			return nil, &ConfigError{Path: cfg.ConfigPath, Err: fmt.Errorf("unrecognized key %q", key)}
		}
	}

	user := v.GetString(credentialsSection + "." + userKey)
	password := v.GetString(credentialsSection + "." + passwordKey)
	if user == "" || password == "" {
		return nil, &ConfigError{
			Path: cfg.ConfigPath,
			Err: fmt.Errorf("section [%s] must define %s and %s",
				credentialsSection, userKey, passwordKey),
		}
	}
	return &Credentials{User: user, Password: password}, nil
}
