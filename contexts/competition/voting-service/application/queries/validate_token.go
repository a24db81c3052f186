package queries

import (
	"context"
	"errors"
	"log/slog"
	"time"

	application "ignite/contexts/competition/voting-service/application"
	"ignite/contexts/competition/voting-service/domain/entities"
	domainerrors "ignite/contexts/competition/voting-service/domain/errors"
	"ignite/contexts/competition/voting-service/ports"
)

// TokenVerdict is the read-only classification of a voting code.
type TokenVerdict string

const (
	TokenVerdictValid   TokenVerdict = "valid"
	TokenVerdictInvalid TokenVerdict = "invalid"
	TokenVerdictUsed    TokenVerdict = "used"
	TokenVerdictExpired TokenVerdict = "expired"
)

// ValidateTokenUseCase answers the UX pre-check with the same rules as the
// cast-vote advisory checks, without claiming anything.
type ValidateTokenUseCase struct {
	Tokens ports.TokenStore
	Clock  ports.Clock
	Logger *slog.Logger
}

func (uc ValidateTokenUseCase) ValidateToken(ctx context.Context, code string) (TokenVerdict, error) {
	logger := application.ResolveLogger(uc.Logger)
	normalized := entities.NormalizeCode(code)
	if normalized == "" {
		return TokenVerdictInvalid, nil
	}

	token, err := uc.Tokens.GetTokenByCode(ctx, normalized)
	if err != nil {
		if errors.Is(err, domainerrors.ErrTokenInvalid) {
			return TokenVerdictInvalid, nil
		}
		logger.Error("token validation lookup failed",
			"event", "voting_validate_token_lookup_failed",
			"module", "competition/voting-service",
			"layer", "application",
			"error", err.Error(),
		)
		return "", err
	}

	now := time.Now().UTC()
	if uc.Clock != nil {
		now = uc.Clock.Now().UTC()
	}
	// Expiry is reported independently of use state.
	if token.Expired(now) {
		return TokenVerdictExpired, nil
	}
	if token.IsUsed {
		return TokenVerdictUsed, nil
	}
	return TokenVerdictValid, nil
}
