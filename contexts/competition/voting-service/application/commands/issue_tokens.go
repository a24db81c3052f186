package commands

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

const (
	maxTokenBatch   = 1000
	defaultValidity = 90 * 24 * time.Hour
	issueAttempts   = 3
)

// TokenIssueUseCase bulk-generates single-use voting tokens sharing one
// expiry. Codes are derived from generated unique identifiers and are unique
// within the store at issuance; the store signals collisions and the whole
// batch is regenerated.
type TokenIssueUseCase struct {
	Tokens   ports.TokenStore
	Clock    ports.Clock
	IDGen    ports.IDGenerator
	Validity time.Duration
	Logger   *slog.Logger
}

func (uc TokenIssueUseCase) IssueTokens(ctx context.Context, count int, validity time.Duration) ([]entities.VotingToken, error) {
	logger := application.ResolveLogger(uc.Logger)
	if count <= 0 || count > maxTokenBatch {
		return nil, domainerrors.ErrInvalidTokenBatch
	}
	if validity <= 0 {
		validity = uc.resolveValidity()
	}

	now := uc.now()
	expiresAt := now.Add(validity)

	for attempt := 1; attempt <= issueAttempts; attempt++ {
		batch, err := uc.buildBatch(ctx, count, now, expiresAt)
		if err != nil {
			return nil, err
		}
		err = uc.Tokens.IssueTokens(ctx, batch)
		if err == nil {
			logger.Info("voting tokens issued",
				"event", "voting_tokens_issued",
				"module", "competition/voting-service",
				"layer", "application",
				"count", len(batch),
				"expires_at", expiresAt.Format(time.RFC3339),
			)
			return batch, nil
		}
		if !errors.Is(err, domainerrors.ErrCodeCollision) {
			return nil, err
		}
		logger.Warn("voting code collision; regenerating batch",
			"event", "voting_code_collision",
			"module", "competition/voting-service",
			"layer", "application",
			"attempt", attempt,
		)
	}
	return nil, domainerrors.ErrCodeCollision
}

func (uc TokenIssueUseCase) buildBatch(
	ctx context.Context,
	count int,
	now time.Time,
	expiresAt time.Time,
) ([]entities.VotingToken, error) {
	batch := make([]entities.VotingToken, 0, count)
	seen := make(map[string]struct{}, count)
	for len(batch) < count {
		id, err := uc.IDGen.NewID(ctx)
		if err != nil {
			return nil, err
		}
		code := entities.CodeFromID(id)
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		batch = append(batch, entities.VotingToken{
			TokenID:   id,
			Code:      code,
			ExpiresAt: expiresAt,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return batch, nil
}

func (uc TokenIssueUseCase) resolveValidity() time.Duration {
	if uc.Validity <= 0 {
		return defaultValidity
	}
	return uc.Validity
}

func (uc TokenIssueUseCase) now() time.Time {
	now := time.Now().UTC()
	if uc.Clock != nil {
		now = uc.Clock.Now().UTC()
	}
	return now
}
