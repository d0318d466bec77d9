// Package w3c implements the Validator port against the W3C markup and CSS validation services.
package w3c

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"

	"go.trai.ch/markcheck/internal/build"
	"go.trai.ch/markcheck/internal/core/domain"
	"go.trai.ch/markcheck/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Validator = (*Client)(nil)

// Client submits documents to the W3C validators. Every Submit is exactly one HTTP request;
// failures are returned to the caller without retrying.
type Client struct {
	httpClient *http.Client
	markup     domain.MarkupConfig
	css        domain.CSSConfig
	userAgent  string
}

// NewClient creates a Client with a transport built from cfg.
func NewClient(cfg domain.Config) *Client {
	return NewClientWithHTTP(cfg, NewHTTPClient(cfg))
}

// NewClientWithHTTP creates a Client that sends its requests through httpClient.
func NewClientWithHTTP(cfg domain.Config, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = NewHTTPClient(cfg)
	}
	return &Client{
		httpClient: httpClient,
		markup:     cfg.Markup,
		css:        cfg.CSS,
		userAgent:  domain.AppName + "/" + build.Version,
	}
}

// Submit sends doc to the validator for kind and returns the raw reply.
func (c *Client) Submit(ctx context.Context, kind domain.Kind, doc []byte) (*domain.Response, error) {
	var (
		req *http.Request
		err error
	)

	switch kind {
	case domain.KindMarkup:
		req, err = newMarkupRequest(ctx, c.markup.Endpoint, doc)
	case domain.KindCSS:
		req, err = newCSSRequest(ctx, c.css, doc)
	default:
		return nil, zerr.With(domain.ErrUnknownKind, "kind", kind.String())
	}
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", c.userAgent)
	return c.do(req)
}

func (c *Client) do(req *http.Request) (*domain.Response, error) {
	endpoint := req.URL.String()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Join(domain.ErrTransport,
			zerr.With(zerr.Wrap(err, domain.ErrRequestFailed.Error()), "endpoint", endpoint))
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Join(domain.ErrTransport,
			zerr.With(zerr.Wrap(err, domain.ErrResponseReadFailed.Error()), "endpoint", endpoint))
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		statusErr := zerr.With(domain.ErrUnexpectedStatus, "endpoint", endpoint)
		statusErr = zerr.With(statusErr, "expected", "2xx")
		return nil, errors.Join(domain.ErrProtocol, zerr.With(statusErr, "status_code", resp.StatusCode))
	}

	return &domain.Response{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Header:     map[string][]string(resp.Header.Clone()),
		Body:       body,
	}, nil
}

func newRequest(ctx context.Context, endpoint, contentType string, body []byte) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Join(domain.ErrTransport,
			zerr.With(zerr.Wrap(err, domain.ErrRequestBuildFailed.Error()), "endpoint", endpoint))
	}
	req.Header.Set("Content-Type", contentType)
	return req, nil
}
