package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/typefight/typefighter-go/internal/model"
)

type HTTPVerifierSuite struct {
	suite.Suite
	ctx context.Context
}

func TestHTTPVerifierSuite(t *testing.T) {
	suite.Run(t, new(HTTPVerifierSuite))
}

func (s *HTTPVerifierSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *HTTPVerifierSuite) newProvider(handler http.HandlerFunc) *HTTPVerifier {
	server := httptest.NewServer(handler)
	s.T().Cleanup(server.Close)

	cfg := DefaultHTTPConfig()
	cfg.BaseURL = server.URL
	cfg.APIKey = "anon-key"
	return NewHTTPVerifier(cfg)
}

func (s *HTTPVerifierSuite) TestVerifyResolvesUser() {
	v := s.newProvider(func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/auth/v1/user", r.URL.Path)
		s.Equal("Bearer tok-1", r.Header.Get("Authorization"))
		s.Equal("anon-key", r.Header.Get("apikey"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "user-1", "email": "a@example.com"}`))
	})

	userID, err := v.Verify(s.ctx, "tok-1")
	s.Require().NoError(err)
	s.Equal("user-1", userID)
}

func (s *HTTPVerifierSuite) TestVerifyRejectedToken() {
	v := s.newProvider(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := v.Verify(s.ctx, "tok-1")
	s.ErrorIs(err, model.ErrTokenInvalid)
}

func (s *HTTPVerifierSuite) TestVerifyEmptyID() {
	v := s.newProvider(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	_, err := v.Verify(s.ctx, "tok-1")
	s.ErrorIs(err, model.ErrTokenInvalid)
}

func (s *HTTPVerifierSuite) TestVerifyWithoutBaseURL() {
	v := NewHTTPVerifier(HTTPConfig{})

	_, err := v.Verify(s.ctx, "tok-1")
	s.ErrorIs(err, model.ErrAuthUnavailable)
}
