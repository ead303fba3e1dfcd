package upstream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/time/rate"
)

// HTTPClient is satisfied by *http.Client.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// StatusError is a non-2xx upstream response.
type StatusError struct {
	URL    string
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: status %d body=%s", e.URL, e.Status, e.Body)
}

// retryable reports whether another attempt may succeed.
func retryable(err error) bool {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Status == http.StatusTooManyRequests || se.Status >= 500
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

type ClientConfig struct {
	BaseURL     string
	Timeout     time.Duration
	RPS         float64
	Retries     int
	BackoffBase time.Duration

	// SigningSecret signs the service token sent as a bearer credential.
	// Empty disables the Authorization header.
	SigningSecret string
	Issuer        string
}

// Client issues rate-limited, retried GET requests against the salon
// platform services and decodes JSON bodies.
type Client struct {
	http    HTTPClient
	cfg     ClientConfig
	limiter *rate.Limiter
	now     func() time.Time
}

func NewClient(cfg ClientConfig, httpc HTTPClient) *Client {
	if httpc == nil {
		httpc = &http.Client{Timeout: cfg.Timeout}
	}
	if cfg.BackoffBase <= 0 {
		cfg.BackoffBase = 200 * time.Millisecond
	}
	if cfg.Issuer == "" {
		cfg.Issuer = "salon-dashboard"
	}

	limit := rate.Inf
	if cfg.RPS > 0 {
		limit = rate.Limit(cfg.RPS)
	}

	return &Client{
		http:    httpc,
		cfg:     cfg,
		limiter: rate.NewLimiter(limit, 1+int(cfg.RPS)),
		now:     time.Now,
	}
}

// GetJSON fetches path relative to the base URL into v, retrying
// transport errors and 5xx/429 responses with exponential backoff.
func (c *Client) GetJSON(ctx context.Context, path string, v any) error {
	url := c.cfg.BaseURL + path

	var err error
	for attempt := 0; attempt <= c.cfg.Retries; attempt++ {
		if attempt > 0 {
			wait := time.Duration(1<<(attempt-1)) * c.cfg.BackoffBase
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
		}

		err = c.getOnce(ctx, url, v)
		if err == nil || !retryable(err) {
			return err
		}
	}
	return err
}

func (c *Client) getOnce(ctx context.Context, url string, v any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	if c.cfg.SigningSecret != "" {
		token, err := c.serviceToken()
		if err != nil {
			return fmt.Errorf("sign service token: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return &StatusError{URL: url, Status: resp.StatusCode, Body: string(b)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s: %w", url, err)
	}
	return decodeInto(body, v)
}

func (c *Client) serviceToken() (string, error) {
	now := c.now()
	claims := jwt.MapClaims{
		"sub":  c.cfg.Issuer,
		"role": "SERVICE",
		"iat":  now.Unix(),
		"exp":  now.Add(5 * time.Minute).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(c.cfg.SigningSecret))
}
