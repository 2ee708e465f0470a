// Package config reads client configuration from the environment and
// optional .env files.
//
// Variables already present in the process environment win over values
// read from files; the files never modify the process environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/xhit/go-str2duration/v2"

	"github.com/adamwoolhether/plaid"
)

const (
	EnvEnvironment = "PLAID_ENV"
	EnvClientID    = "PLAID_CLIENT_ID"
	EnvPublicKey   = "PLAID_PUBLIC_KEY"
	EnvSecret      = "PLAID_SECRET"
	EnvBaseURL     = "PLAID_BASE_URL"
	EnvTimeout     = "PLAID_TIMEOUT"
	EnvRateLimit   = "PLAID_RATE_LIMIT"
	EnvRateBurst   = "PLAID_RATE_BURST"
	EnvUserAgent   = "PLAID_USER_AGENT"
	EnvAPIVersion  = "PLAID_API_VERSION"
)

// Config is the resolved client configuration.
type Config struct {
	Environment plaid.Environment
	ClientID    string
	PublicKey   string
	Secret      string

	// BaseURL overrides Environment when set.
	BaseURL string

	Timeout    time.Duration
	RateLimit  int
	RateBurst  int
	UserAgent  string
	APIVersion string
}

// Load reads the named .env files and the process environment. With no
// files it reads ".env" from the working directory when one exists.
func Load(files ...string) (Config, error) {
	fileEnv, err := godotenv.Read(files...)
	if err != nil {
		if len(files) > 0 || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("reading env files: %w", err)
		}
		fileEnv = map[string]string{}
	}

	lookup := func(key string) string {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v
		}
		return fileEnv[key]
	}

	cfg := Config{
		Environment: plaid.Sandbox,
		ClientID:    lookup(EnvClientID),
		PublicKey:   lookup(EnvPublicKey),
		Secret:      lookup(EnvSecret),
		BaseURL:     lookup(EnvBaseURL),
		UserAgent:   lookup(EnvUserAgent),
		APIVersion:  lookup(EnvAPIVersion),
	}

	if v := lookup(EnvEnvironment); v != "" {
		env, err := plaid.ParseEnvironment(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvEnvironment, err)
		}
		cfg.Environment = env
	}

	if v := lookup(EnvTimeout); v != "" {
		d, err := str2duration.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvTimeout, err)
		}
		if d < 0 {
			return Config{}, fmt.Errorf("%s: must not be negative", EnvTimeout)
		}
		cfg.Timeout = d
	}

	if cfg.RateLimit, err = readInt(lookup, EnvRateLimit); err != nil {
		return Config{}, err
	}
	if cfg.RateBurst, err = readInt(lookup, EnvRateBurst); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func readInt(lookup func(string) string, key string) (int, error) {
	v := strings.TrimSpace(lookup(key))
	if v == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("%s: must not be negative", key)
	}

	return n, nil
}

// Credentials builds the credentials described by the configuration.
func (c Config) Credentials() (plaid.Credentials, error) {
	if c.BaseURL != "" {
		return plaid.NewCredentialsForURL(c.BaseURL, c.ClientID, c.PublicKey, c.Secret)
	}
	return plaid.NewCredentials(c.Environment, c.ClientID, c.PublicKey, c.Secret)
}

// Options translates the configuration into client options. A rate limit
// without a burst uses the rate as the burst.
func (c Config) Options() []plaid.Option {
	var opts []plaid.Option

	if c.Timeout > 0 {
		opts = append(opts, plaid.WithTimeout(c.Timeout))
	}

	if c.RateLimit > 0 {
		burst := c.RateBurst
		if burst == 0 {
			burst = c.RateLimit
		}
		opts = append(opts, plaid.WithThrottle(c.RateLimit, burst))
	}

	if c.UserAgent != "" {
		opts = append(opts, plaid.WithUserAgent(c.UserAgent))
	}
	if c.APIVersion != "" {
		opts = append(opts, plaid.WithAPIVersion(c.APIVersion))
	}

	return opts
}

// Client is shorthand for building a client from the configuration plus
// any extra options.
func (c Config) Client(extra ...plaid.Option) (*plaid.Client, error) {
	creds, err := c.Credentials()
	if err != nil {
		return nil, err
	}
	return plaid.New(creds, append(c.Options(), extra...)...)
}
