package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/piresc/lastmile/internal/pkg/circuitbreaker"
	nrpkg "github.com/piresc/lastmile/internal/pkg/newrelic"
	"github.com/piresc/lastmile/internal/pkg/retry"
)

// HTTPError is returned for non-2xx responses
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s (HTTP %d)", e.Message, e.StatusCode)
}

// EnhancedClient wraps http.Client with retry and circuit breaker protection
type EnhancedClient struct {
	client  *http.Client
	retrier *retry.Retrier
	breaker *circuitbreaker.CircuitBreaker
}

// NewEnhancedClient creates a client for one upstream named name
func NewEnhancedClient(name string, timeout time.Duration, retryCfg retry.Config, breakerCfg circuitbreaker.Config) *EnhancedClient {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	breakerCfg.Name = name
	return &EnhancedClient{
		client:  &http.Client{Timeout: timeout},
		retrier: retry.New(name, retryCfg),
		breaker: circuitbreaker.New(breakerCfg),
	}
}

// GetBody performs a GET and returns the body of a 2xx response. 5xx and
// transport errors are retried; 4xx responses are not.
func (c *EnhancedClient) GetBody(ctx context.Context, url string) ([]byte, error) {
	var body []byte

	err := c.breaker.Execute(ctx, func(ctx context.Context) error {
		return c.retrier.Execute(ctx, func(ctx context.Context) error {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
			if err != nil {
				return retry.Permanent(err)
			}

			resp, err := nrpkg.InstrumentHTTPRequest(ctx, req, func() (*http.Response, error) {
				return c.client.Do(req)
			})
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			data, err := io.ReadAll(resp.Body)
			if err != nil {
				return err
			}

			switch {
			case resp.StatusCode >= 500:
				return &HTTPError{StatusCode: resp.StatusCode, Message: "upstream server error"}
			case resp.StatusCode >= 400:
				return retry.Permanent(&HTTPError{StatusCode: resp.StatusCode, Message: string(data)})
			}

			body = data
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return body, nil
}

// BreakerState exposes the circuit state for health reporting
func (c *EnhancedClient) BreakerState() circuitbreaker.State {
	return c.breaker.State()
}
