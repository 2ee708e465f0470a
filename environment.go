package plaid

import (
	"fmt"
	"strings"
)

// Environment selects the API deployment a Client talks to.
type Environment int

const (
	Sandbox Environment = iota + 1
	Development
	Production
)

var environmentURLs = map[Environment]string{
	Sandbox:     "https://sandbox.plaid.com/",
	Development: "https://development.plaid.com/",
	Production:  "https://production.plaid.com/",
}

// URL returns the base URL of the environment, always ending in "/".
func (e Environment) URL() (string, error) {
	u, ok := environmentURLs[e]
	if !ok {
		return "", fmt.Errorf("%w: unknown environment %d", ErrInvalidConfiguration, int(e))
	}

	return u, nil
}

func (e Environment) String() string {
	switch e {
	case Sandbox:
		return "sandbox"
	case Development:
		return "development"
	case Production:
		return "production"
	default:
		return fmt.Sprintf("Environment(%d)", int(e))
	}
}

// ParseEnvironment maps an environment name to its Environment.
func ParseEnvironment(name string) (Environment, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sandbox":
		return Sandbox, nil
	case "development":
		return Development, nil
	case "production":
		return Production, nil
	default:
		return 0, fmt.Errorf("%w: unknown environment %q", ErrInvalidConfiguration, name)
	}
}
