// Package jsonrpc provides a client for JSON-RPC-style gateways that expose
// one HTTP POST route per query kind, each taking a small JSON body and
// answering with a JSON document. Every request carries an X-Request-ID and
// is wrapped in a client span.
package jsonrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	tracerName = "github.com/gabapcia/blockscope/internal/pkg/transport/jsonrpc"

	// maxResponseSize bounds how much of a response body is read.
	maxResponseSize = 32 << 20
)

var (
	// ErrProviderReturnedError indicates the gateway answered with an error document.
	ErrProviderReturnedError = errors.New("provider error")

	// ErrUnexpectedStatus indicates a non-2xx HTTP status.
	ErrUnexpectedStatus = errors.New("unexpected status code")
)

// errorResponse is the error document gateways send with non-2xx statuses.
// Older gateways use "error" instead of "msg".
type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"msg"`
	Error   string `json:"error"`
}

// Err converts the document into an error wrapping ErrProviderReturnedError,
// or nil when it carries no message.
func (r errorResponse) Err() error {
	msg := r.Message
	if msg == "" {
		msg = r.Error
	}

	if msg == "" {
		return nil
	}

	return fmt.Errorf("%w: [%d] - %s", ErrProviderReturnedError, r.Code, msg)
}

// Client sends queries to a gateway.
type Client interface {
	// Query posts params as JSON to route (e.g. "/v1/query/block-by-height")
	// and returns the raw JSON response.
	Query(ctx context.Context, route string, params any) (json.RawMessage, error)

	// Endpoint returns the base URL the client talks to.
	Endpoint() string
}

type client struct {
	endpoint   string
	httpClient *retryablehttp.Client
	tracer     trace.Tracer
}

var _ Client = (*client)(nil)

func (c *client) Endpoint() string {
	return c.endpoint
}

func (c *client) Query(ctx context.Context, route string, params any) (json.RawMessage, error) {
	ctx, span := c.tracer.Start(ctx, "rpc "+route,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("rpc.route", route),
			attribute.String("server.address", c.endpoint),
		),
	)
	defer span.End()

	data, err := c.query(ctx, span, route, params)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	return data, nil
}

func (c *client) query(ctx context.Context, span trace.Span, route string, params any) (json.RawMessage, error) {
	body, err := json.Marshal(params)
	if err != nil {
		return nil, err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+route, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	span.SetAttributes(attribute.Int("http.response.status_code", res.StatusCode))

	payload, err := io.ReadAll(io.LimitReader(res.Body, maxResponseSize))
	if err != nil {
		return nil, err
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		var errRes errorResponse
		if json.Unmarshal(payload, &errRes) == nil {
			if providerErr := errRes.Err(); providerErr != nil {
				return nil, fmt.Errorf("%w %d: %w", ErrUnexpectedStatus, res.StatusCode, providerErr)
			}
		}

		return nil, fmt.Errorf("%w %d", ErrUnexpectedStatus, res.StatusCode)
	}

	var data json.RawMessage
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, err
	}

	return data, nil
}

// NewClient returns a Client posting to endpoint through httpClient.
// A trailing slash on endpoint is ignored.
func NewClient(httpClient *retryablehttp.Client, endpoint string) *client {
	return &client{
		endpoint:   strings.TrimRight(endpoint, "/"),
		httpClient: httpClient,
		tracer:     otel.Tracer(tracerName),
	}
}
