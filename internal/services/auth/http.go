package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/typefight/typefighter-go/internal/model"
)

// HTTPConfig holds settings for the remote identity provider
type HTTPConfig struct {
	// BaseURL is the identity provider root (e.g. https://xyz.supabase.co)
	BaseURL string
	// APIKey is sent alongside the user token, as the provider requires
	APIKey string
	// Timeout bounds each verification request
	Timeout time.Duration
}

// DefaultHTTPConfig returns default settings for the HTTP verifier
func DefaultHTTPConfig() HTTPConfig {
	return HTTPConfig{
		Timeout: 5 * time.Second,
	}
}

// HTTPVerifier verifies access tokens against a remote identity provider's
// user-info endpoint
type HTTPVerifier struct {
	cfg    HTTPConfig
	client *http.Client
}

// Ensure HTTPVerifier implements Verifier
var _ Verifier = (*HTTPVerifier)(nil)

// NewHTTPVerifier creates a verifier backed by the remote provider
func NewHTTPVerifier(cfg HTTPConfig) *HTTPVerifier {
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultHTTPConfig().Timeout
	}
	return &HTTPVerifier{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

// userInfo is the subset of the provider's user payload we care about
type userInfo struct {
	ID string `json:"id"`
}

// Verify resolves the token to a user id via GET /auth/v1/user
func (v *HTTPVerifier) Verify(ctx context.Context, accessToken string) (string, error) {
	if v.cfg.BaseURL == "" {
		return "", model.ErrAuthUnavailable
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.cfg.BaseURL+"/auth/v1/user", nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("apikey", v.cfg.APIKey)

	resp, err := v.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("auth request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", model.ErrTokenInvalid
	}

	var user userInfo
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return "", fmt.Errorf("decoding auth response: %w", err)
	}
	if user.ID == "" {
		return "", model.ErrTokenInvalid
	}

	return user.ID, nil
}
