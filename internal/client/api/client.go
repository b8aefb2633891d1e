// Package api is the typed gateway to the Ágora backend REST surface. One
// method per server resource; every method takes a context, returns typed
// results and fails with one of the sentinel errors from internal/common.
//
// The gateway applies a fixed request timeout and performs no retries:
// retry, if desired at all, is the caller's responsibility.
package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/agoramujeres/agora-client/internal/common"
	"github.com/agoramujeres/agora-client/internal/logging"
)

// RequestTimeout applies uniformly to every call.
const RequestTimeout = 30 * time.Second

type Client struct {
	http *resty.Client
	log  logging.Logger
}

// New builds a gateway for the given base URL. An empty base URL produces
// relative request paths (same-origin use behind a proxy). The "/api"
// prefix of the backend surface is appended here, once.
func New(baseURL string, log logging.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/") + "/api").
		SetTimeout(RequestTimeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{http: httpClient, log: log.With("component", "api")}
}

// check translates a resty outcome into the sentinel error taxonomy.
// Transport failures (timeout, refused, DNS) become ErrNetwork; a 404
// becomes ErrNotFound; any other non-2xx becomes ErrServer.
func (c *Client) check(resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrNetwork, err)
	}
	switch {
	case resp.IsSuccess():
		return nil
	case resp.StatusCode() == http.StatusNotFound:
		return common.ErrNotFound
	default:
		return fmt.Errorf("%w: %s", common.ErrServer, resp.Status())
	}
}

// Health probes the backend health endpoint.
func (c *Client) Health(ctx context.Context) error {
	resp, err := c.http.R().SetContext(ctx).Get("/health")
	return c.check(resp, err)
}
