package gengo

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Version of this library, reported in the default User-Agent header.
const Version = "1.0.0"

// API base URL templates. {{version}} is replaced with "v" + Config.APIVersion
// when the client is constructed.
const (
	productionURL = "http://api.gengo.com/{{version}}"
	sandboxURL    = "http://api.sandbox.mygengo.com/{{version}}"
)

// Config holds the construction-time settings of a Client. It is copied by
// New and never mutated afterwards, so a single Client is safe for
// concurrent use.
type Config struct {
	// PublicKey is the account's public API key, sent as the api_key
	// parameter on every call when set.
	PublicKey string `env:"GENGO_PUBLIC_KEY"`

	// PrivateKey signs requests. When set, every request carries an
	// api_sig parameter: the hex HMAC-SHA1 of the request timestamp keyed
	// by this value. Never transmitted.
	PrivateKey string `env:"GENGO_PRIVATE_KEY"`

	// Sandbox selects the sandbox environment instead of production.
	Sandbox bool `env:"GENGO_SANDBOX"`

	// APIVersion is the remote API version, "1.1" or "2". Empty means "2".
	// Any other value is rejected by New.
	APIVersion string `env:"GENGO_API_VERSION"`

	// BaseURL overrides the environment-derived base URL template. It may
	// contain a {{version}} mustache. Mostly useful for tests.
	BaseURL string `env:"GENGO_BASE_URL"`

	// Headers are extra HTTP headers sent with every request. They are
	// merged with the library defaults; Accept is always forced to
	// application/json since the pipeline decodes JSON envelopes.
	Headers map[string]string

	// Debug makes the client log every fully-constructed request (method,
	// URL, signature) to stderr before dispatching it.
	Debug bool `env:"GENGO_DEBUG"`
}

// FromEnv populates a Config from GENGO_* environment variables. Headers
// cannot be supplied via the environment; set them on the returned value if
// needed.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("error getting env configs: %w", err)
	}

	return cfg, nil
}

// defaultHeaders returns the headers applied when the caller does not
// override them.
func defaultHeaders() map[string]string {
	return map[string]string{
		"User-Agent": fmt.Sprintf("Gengo Go Library; Version %s; http://gengo.com/", Version),
	}
}
