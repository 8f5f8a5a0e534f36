package supabase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"medicare-companion/internal/platform/httpclient"
	"medicare-companion/internal/ports/auth"
)

var (
	ErrNotConfigured = errors.New("auth provider not configured")
	ErrUnauthorized  = errors.New("auth provider unauthorized")
	ErrUpstream      = errors.New("auth provider upstream error")
)

// Config del proveedor de identidad (Supabase GoTrue o compatible).
type Config struct {
	BaseURL string
	APIKey  string

	// Timeout HTTP; <= 0 usa httpclient.DefaultTimeout.
	Timeout time.Duration
}

type Client struct {
	http   *httpclient.Client
	apiKey string
}

func NewClient(cfg Config) (*Client, error) {
	hc, err := httpclient.NewWithBaseURL(strings.TrimSpace(cfg.BaseURL), cfg.Timeout)
	if err != nil {
		return nil, err
	}
	return &Client{
		http:   hc,
		apiKey: strings.TrimSpace(cfg.APIKey),
	}, nil
}

// NewClientWithHTTP permite inyectar el httpclient (tests).
func NewClientWithHTTP(hc *httpclient.Client, apiKey string) *Client {
	return &Client{http: hc, apiKey: strings.TrimSpace(apiKey)}
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.http != nil && c.http.BaseURL != "" && c.apiKey != ""
}

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// GetUser resuelve el usuario dueño del access token (GET /auth/v1/user).
func (c *Client) GetUser(ctx context.Context, token string) (auth.Claims, error) {
	if !c.IsConfigured() {
		return auth.Claims{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrUnauthorized
	}

	var out userResponse
	err := c.http.DoJSON(ctx, http.MethodGet, "/auth/v1/user", map[string]string{
		"apikey":        c.apiKey,
		"Authorization": "Bearer " + token,
	}, nil, &out)
	if err != nil {
		var herr *httpclient.HTTPError
		if errors.As(err, &herr) {
			switch herr.StatusCode {
			case http.StatusUnauthorized, http.StatusForbidden:
				return auth.Claims{}, ErrUnauthorized
			default:
				return auth.Claims{}, fmt.Errorf("%w: status=%d", ErrUpstream, herr.StatusCode)
			}
		}
		return auth.Claims{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	out.ID = strings.TrimSpace(out.ID)
	if out.ID == "" {
		return auth.Claims{}, fmt.Errorf("%w: response missing id", ErrUpstream)
	}

	return auth.Claims{
		UserID: out.ID,
		Email:  strings.TrimSpace(out.Email),
	}, nil
}
