// Package identity resolves session tokens to trusted user ids through the
// external identity service. The core never parses tokens itself.
package identity

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/go-resty/resty/v2"

	"github.com/solvedaily/backend/internal/config"
)

//go:generate mockgen -source=client.go -destination=../mocks/identity/mock_client.go -package=mock_identity

// ErrInvalidToken is returned when the identity service rejects the token.
var ErrInvalidToken = errors.New("invalid session token")

// Verifier resolves a bearer token to a user id.
type Verifier interface {
	Verify(ctx context.Context, token string) (string, error)
}

// Client calls the identity service over HTTP.
type Client struct {
	client      *resty.Client
	maxAttempts uint
}

type verifyResponse struct {
	UserID string `json:"user_id"`
}

// NewClient creates a new Client.
func NewClient(cfg config.IdentityConfig) *Client {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(time.Duration(cfg.TimeoutSeconds) * time.Second)
	return &Client{
		client:      client,
		maxAttempts: cfg.MaxRetries + 1,
	}
}

// Verify resolves the token to a user id. A rejected token is unrecoverable;
// transient network and server failures are retried with backoff.
func (c *Client) Verify(ctx context.Context, token string) (string, error) {
	var userID string
	if err := retry.Do(
		func() error {
			resolved, err := c.verify(ctx, token)
			if err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			userID = resolved
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(c.maxAttempts),
		retry.DelayType(retry.BackOffDelay),
	); err != nil {
		return "", err
	}
	return userID, nil
}

func (c *Client) verify(ctx context.Context, token string) (string, error) {
	var response verifyResponse
	res, err := c.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+token).
		SetResult(&response).
		Get("/v1/sessions/verify")
	if err != nil {
		return "", fmt.Errorf("client.R.Get > %w", err)
	}
	if res.StatusCode() == http.StatusUnauthorized || res.StatusCode() == http.StatusForbidden {
		return "", ErrInvalidToken
	}
	if res.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("response error %d, body: %s", res.StatusCode(), string(res.Body()))
	}
	if response.UserID == "" {
		return "", fmt.Errorf("identity response missing user id, body: %s", string(res.Body()))
	}
	return response.UserID, nil
}

func isRetryableError(err error) bool {
	if errors.Is(err, ErrInvalidToken) {
		return false
	}

	errStr := err.Error()
	if strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "i/o timeout") {
		return true
	}
	if strings.Contains(errStr, "response error 5") {
		return true
	}
	if strings.Contains(errStr, "response error 429") {
		return true
	}
	return false
}
