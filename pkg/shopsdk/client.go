package shopsdk

import (
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout bounds every backend request when no timeout is given.
const DefaultTimeout = 10 * time.Second

// SDKClient is a client for the Tomato market backend.
// It provides unauthenticated operations and creates authenticated Sessions.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a backend client whose requests time out after timeout
// (DefaultTimeout when zero or negative).
func NewSDKClient(baseURL string, timeout time.Duration) *SDKClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &SDKClient{
		BaseURL:    strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// NewSession binds credential to a new Session. All requests made through the
// session carry it in the Authorization header.
func (c *SDKClient) NewSession(credential string) *Session {
	return &Session{
		client:     c,
		credential: strings.TrimSpace(credential),
	}
}
