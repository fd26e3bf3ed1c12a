package paystation

import "strings"

// Environment selects which PayStation host the client talks to.
type Environment string

const (
	EnvironmentSandbox Environment = "sandbox"
	EnvironmentLive    Environment = "live"
)

// The two hosts are independent deployments: the sandbox serves the API
// under a path prefix that the live host does not use. Keep them as two
// literal constants, never derive one from the other.
const (
	sandboxBaseURL = "https://sandbox.paystation.com.bd/public/api"
	liveBaseURL    = "https://api.paystation.com.bd"
)

// Config holds the merchant credentials and target environment. It is
// validated eagerly by [New] and immutable afterwards. The password is held
// only to be sent with each request and is never logged by the SDK.
type Config struct {
	MerchantID  string
	Password    string
	Environment Environment
}

func (c Config) validate() error {
	if strings.TrimSpace(c.MerchantID) == "" {
		return NewConfigurationError("merchant_id is required")
	}
	if strings.TrimSpace(c.Password) == "" {
		return NewConfigurationError("password is required")
	}
	switch c.Environment {
	case EnvironmentSandbox, EnvironmentLive:
		return nil
	default:
		return NewConfigurationError(`environment must be "sandbox" or "live"`)
	}
}

func (c Config) baseURL() string {
	if c.Environment == EnvironmentLive {
		return liveBaseURL
	}
	return sandboxBaseURL
}
