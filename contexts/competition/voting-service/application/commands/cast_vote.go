package commands

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	application "ignite/contexts/competition/voting-service/application"
	"ignite/contexts/competition/voting-service/domain/entities"
	domainerrors "ignite/contexts/competition/voting-service/domain/errors"
	"ignite/contexts/competition/voting-service/ports"
)

// CastVoteCommand is the write-model input for spending a voting token.
type CastVoteCommand struct {
	Code         string
	NominationID string
	IPAddress    string
	UserAgent    string
}

// CastVoteResult returns the appended vote and the nomination tally after the
// increment.
type CastVoteResult struct {
	Vote        entities.Vote
	PublicVotes int
}

// CastVoteUseCase orchestrates validate, claim, and record as one logical
// operation. Steps 1-4 (lookup, used/expiry checks, nomination eligibility)
// are advisory; the ledger's conditional claim is the authoritative gate, so
// two racers on the same code cannot both record a vote.
type CastVoteUseCase struct {
	Tokens      ports.TokenStore
	Ledger      ports.VoteLedger
	Nominations ports.NominationDirectory
	Outbox      ports.OutboxWriter
	Clock       ports.Clock
	IDGen       ports.IDGenerator
	Logger      *slog.Logger
}

func (uc CastVoteUseCase) CastVote(ctx context.Context, cmd CastVoteCommand) (CastVoteResult, error) {
	logger := application.ResolveLogger(uc.Logger)
	code := entities.NormalizeCode(cmd.Code)
	nominationID := strings.TrimSpace(cmd.NominationID)
	if code == "" || nominationID == "" {
		logger.Warn("cast vote validation failed",
			"event", "voting_cast_vote_validation_failed",
			"module", "competition/voting-service",
			"layer", "application",
			"nomination_id", nominationID,
		)
		return CastVoteResult{}, domainerrors.ErrInvalidVoteInput
	}

	token, err := uc.Tokens.GetTokenByCode(ctx, code)
	if err != nil {
		return CastVoteResult{}, err
	}

	now := uc.now()
	if token.IsUsed {
		return CastVoteResult{}, domainerrors.ErrTokenAlreadyUsed
	}
	if token.Expired(now) {
		return CastVoteResult{}, domainerrors.ErrTokenExpired
	}

	nomination, err := uc.Nominations.GetNomination(ctx, nominationID)
	if err != nil {
		return CastVoteResult{}, err
	}
	if !IsVoteEligible(nomination.Status) {
		return CastVoteResult{}, domainerrors.ErrNominationNotEligible
	}

	voteID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return CastVoteResult{}, err
	}
	vote := entities.Vote{
		VoteID:       voteID,
		TokenID:      token.TokenID,
		NominationID: nominationID,
		IPAddress:    strings.TrimSpace(cmd.IPAddress),
		UserAgent:    strings.TrimSpace(cmd.UserAgent),
		VotedAt:      now,
	}

	tally, err := uc.Ledger.ClaimAndRecord(ctx, ports.TokenClaim{
		TokenID:      token.TokenID,
		NominationID: nominationID,
		IPAddress:    strings.TrimSpace(cmd.IPAddress),
		VotedAt:      now,
	}, vote)
	if err != nil {
		if errors.Is(err, domainerrors.ErrTokenAlreadyUsed) {
			// Lost the race after the advisory checks; no state changed.
			logger.Info("cast vote lost claim race",
				"event", "voting_cast_vote_claim_raced",
				"module", "competition/voting-service",
				"layer", "application",
				"token_id", token.TokenID,
				"nomination_id", nominationID,
			)
		}
		return CastVoteResult{}, err
	}

	// The vote is durable once the claim transaction commits; a lost audit
	// event is logged rather than surfaced as a failure.
	if err := uc.appendVoteEvent(ctx, vote, now); err != nil {
		logger.Error("cast vote audit event append failed",
			"event", "voting_cast_vote_outbox_failed",
			"module", "competition/voting-service",
			"layer", "application",
			"vote_id", vote.VoteID,
			"error", err.Error(),
		)
	}

	logger.Info("vote cast",
		"event", "voting_vote_cast",
		"module", "competition/voting-service",
		"layer", "application",
		"vote_id", vote.VoteID,
		"token_id", token.TokenID,
		"nomination_id", nominationID,
		"public_votes", tally,
	)
	return CastVoteResult{Vote: vote, PublicVotes: tally}, nil
}

func (uc CastVoteUseCase) now() time.Time {
	now := time.Now().UTC()
	if uc.Clock != nil {
		now = uc.Clock.Now().UTC()
	}
	return now
}

func (uc CastVoteUseCase) appendVoteEvent(ctx context.Context, vote entities.Vote, occurredAt time.Time) error {
	// Outbox is optional for pure read/test wiring, so nil is treated as no-op.
	if uc.Outbox == nil {
		return nil
	}
	eventID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return err
	}
	envelope, err := newVotingEnvelope(eventID, "vote.cast", vote.NominationID, occurredAt, map[string]any{
		"vote_id":       vote.VoteID,
		"token_id":      vote.TokenID,
		"nomination_id": vote.NominationID,
		"voted_at":      occurredAt.Format(time.RFC3339),
	})
	if err != nil {
		return err
	}
	return uc.Outbox.AppendOutbox(ctx, envelope)
}

// IsVoteEligible mirrors the nomination states where public voting is open.
// Winner/rejected nominations intentionally fail eligibility.
func IsVoteEligible(status string) bool {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "nominated", "shortlisted":
		return true
	default:
		return false
	}
}
