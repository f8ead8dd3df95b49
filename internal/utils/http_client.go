package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:8000", 10*time.Second)
//	resp, err := client.R().Get("/health")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient whose requests are
// resolved against baseURL.
//
// The client makes single-attempt calls: retries are off and resty's own
// warnings are silenced. A zero timeout means none; the request context
// still applies. Each call returns an independent client with its own
// connection pool.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:8000", 10*time.Second)
//	resp, err := client.R().
//	    SetContext(ctx).
//	    SetHeader("Accept", "application/json").
//	    Get("/users/me")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetDisableWarn(true)

	return &HTTPClient{Client: client}
}
