package auth

import (
	"context"
	"log/slog"

	"github.com/typefight/typefighter-go/internal/model"
)

// Verifier confirms that an access token is valid and resolves the external
// user id it belongs to. Implementations must be safe for concurrent use by
// many rooms.
type Verifier interface {
	Verify(ctx context.Context, accessToken string) (string, error)
}

// Service wraps a Verifier with the claim check: a token is only trusted
// when the identity it resolves to matches the id the client claimed.
type Service struct {
	verifier Verifier
	logger   *slog.Logger
}

// New creates a new auth service
func New(verifier Verifier, logger *slog.Logger) *Service {
	return &Service{
		verifier: verifier,
		logger:   logger.With(slog.String("component", "auth")),
	}
}

// VerifyClaim checks that accessToken resolves to claimedUserID. It returns
// the verified user id, or an error when the token is invalid, unverifiable,
// or belongs to a different user.
func (s *Service) VerifyClaim(ctx context.Context, claimedUserID, accessToken string) (string, error) {
	if accessToken == "" || claimedUserID == "" {
		return "", model.ErrTokenInvalid
	}

	userID, err := s.verifier.Verify(ctx, accessToken)
	if err != nil {
		return "", err
	}

	if userID != claimedUserID {
		s.logger.Warn("token user mismatch", slog.String("claimed", claimedUserID))
		return "", model.ErrUserMismatch
	}

	return userID, nil
}
