package plaid

import (
	"fmt"
	"net/url"
	"strings"
)

// Credentials holds the base URL and the secrets a Client injects into
// every payload. The zero value is not usable; build one with
// NewCredentials or NewCredentialsForURL.
type Credentials struct {
	baseURL   string
	clientID  string
	publicKey string
	secret    string
}

// NewCredentials resolves env to its base URL and binds the given secrets to it.
func NewCredentials(env Environment, clientID, publicKey, secret string) (Credentials, error) {
	u, err := env.URL()
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{
		baseURL:   u,
		clientID:  clientID,
		publicKey: publicKey,
		secret:    secret,
	}, nil
}

// NewCredentialsForURL binds the secrets to an explicit base URL, such as a
// proxy or a fake server. The URL must be absolute http or https.
func NewCredentialsForURL(baseURL, clientID, publicKey, secret string) (Credentials, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return Credentials{}, fmt.Errorf("%w: parsing base url: %w", ErrInvalidConfiguration, err)
	}

	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return Credentials{}, fmt.Errorf("%w: base url %q must be absolute http(s)", ErrInvalidConfiguration, baseURL)
	}

	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	return Credentials{
		baseURL:   baseURL,
		clientID:  clientID,
		publicKey: publicKey,
		secret:    secret,
	}, nil
}

func (c Credentials) BaseURL() string   { return c.baseURL }
func (c Credentials) ClientID() string  { return c.clientID }
func (c Credentials) PublicKey() string { return c.publicKey }

// String omits the secret.
func (c Credentials) String() string {
	return fmt.Sprintf("Credentials{url: %s, client_id: %s}", c.baseURL, c.clientID)
}

// clientAuth is embedded by payloads of endpoints authenticated with
// client_id and secret.
type clientAuth struct {
	ClientID string `json:"client_id"`
	Secret   string `json:"secret"`
}

// publicKeyAuth is embedded by payloads of endpoints authenticated with
// the public key.
type publicKeyAuth struct {
	PublicKey string `json:"public_key"`
}

func (c Credentials) clientAuth() clientAuth {
	return clientAuth{ClientID: c.clientID, Secret: c.secret}
}

func (c Credentials) publicKeyAuth() publicKeyAuth {
	return publicKeyAuth{PublicKey: c.publicKey}
}
