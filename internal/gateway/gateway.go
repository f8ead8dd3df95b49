// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/kardash/internal/config"
	"github.com/MKhiriev/kardash/internal/logger"
	"github.com/MKhiriev/kardash/internal/utils"
)

// Requester issues one call to the KARDASH API.
type Requester interface {
	Request(ctx context.Context, endpoint string, opts Options) (*Response, error)
}

// Response is a successful (2xx) reply.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Gateway is a [Requester] over HTTP. It is safe for concurrent use.
type Gateway struct {
	client *utils.HTTPClient
	tokens TokenProvider
	logger *logger.Logger
}

// New builds a Gateway for the base address in cfg. A nil tokens means every
// call without an explicit token is anonymous.
func New(cfg config.ClientAdapter, tokens TokenProvider, log *logger.Logger) (*Gateway, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	if tokens == nil {
		tokens = noToken{}
	}
	if log == nil {
		log = logger.Nop()
	}

	return &Gateway{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		tokens: tokens,
		logger: log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// BaseURL returns the normalized base address.
func (g *Gateway) BaseURL() string {
	return g.client.BaseURL
}

// Request implements [Requester]. Non-2xx replies are returned as
// [*APIError]; transport errors are returned as the transport produced them.
func (g *Gateway) Request(ctx context.Context, endpoint string, opts Options) (*Response, error) {
	if err := checkEndpoint(endpoint); err != nil {
		return nil, err
	}

	method := strings.ToUpper(opts.method())

	req := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")
	for key, value := range opts.Headers {
		req.SetHeader(key, value)
	}

	token, ok := g.resolveToken(ctx, opts)
	if ok {
		req.SetHeader("Authorization", "Bearer "+token)
	}

	if opts.Body != nil {
		req.SetBody(opts.Body)
	}

	start := time.Now()
	resp, err := req.Execute(method, endpoint)
	if err != nil {
		g.logger.Debug().
			Err(err).
			Str("method", method).
			Str("endpoint", endpoint).
			Bool("authorized", ok).
			Dur("duration", time.Since(start)).
			Msg("api request failed")
		return nil, err
	}

	g.logger.Debug().
		Str("method", method).
		Str("endpoint", endpoint).
		Bool("authorized", ok).
		Int("status", resp.StatusCode()).
		Dur("duration", time.Since(start)).
		Msg("api request")

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return nil, newAPIError(resp.StatusCode(), resp.Body())
	}

	return &Response{
		StatusCode: resp.StatusCode(),
		Header:     resp.Header(),
		Body:       resp.Body(),
	}, nil
}

// checkEndpoint rejects endpoints that would leave the base address. resty
// sends an absolute URL as is, and the bearer token would go with it.
func checkEndpoint(endpoint string) error {
	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEndpoint, err)
	}
	if u.IsAbs() || u.Host != "" {
		return fmt.Errorf("%w: %q is not a path under the base address", ErrInvalidEndpoint, endpoint)
	}
	return nil
}

// resolveToken prefers any non-empty explicit token, then the provider.
func (g *Gateway) resolveToken(ctx context.Context, opts Options) (string, bool) {
	if opts.Token != "" {
		return opts.Token, true
	}
	if opts.Anonymous {
		return "", false
	}

	return g.tokens.GetToken(ctx)
}
