package commands

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	application "ignite/contexts/competition/progression-service/application"
	"ignite/contexts/competition/progression-service/domain/entities"
	domainerrors "ignite/contexts/competition/progression-service/domain/errors"
	"ignite/contexts/competition/progression-service/ports"
)

type SubmitWinnersCommand struct {
	SchoolID string
	Category string
	Level    string
	Winners  []entities.Winner
}

type SubmitWinnersResult struct {
	Category       string
	Level          string
	WinnersCount   int
	AdvancingCount int
	NextLevel      string
}

type SubmitWinnersUseCase struct {
	Participants ports.ParticipantRepository
	Clock        ports.Clock
	IDGen        ports.IDGenerator
	Logger       *slog.Logger
}

// Submit attaches winners to an existing registration, marks the round
// completed, and opens the next-level registration when any winner advances.
// Resubmission replaces the winner list; the next-level record is created at
// most once, so the operation is idempotent per (category, level).
func (uc SubmitWinnersUseCase) Submit(ctx context.Context, cmd SubmitWinnersCommand) (SubmitWinnersResult, error) {
	logger := application.ResolveLogger(uc.Logger)

	schoolID := strings.TrimSpace(cmd.SchoolID)
	if schoolID == "" || len(cmd.Winners) == 0 {
		return SubmitWinnersResult{}, domainerrors.ErrInvalidWinners
	}
	category := entities.Category(strings.ToLower(strings.TrimSpace(cmd.Category)))
	if !category.IsValid() {
		return SubmitWinnersResult{}, domainerrors.ErrInvalidCategory
	}
	level := entities.Level(strings.ToLower(strings.TrimSpace(cmd.Level)))
	if !level.IsValid() {
		return SubmitWinnersResult{}, domainerrors.ErrInvalidLevel
	}
	for _, winner := range cmd.Winners {
		if strings.TrimSpace(winner.Name) == "" || winner.Position < 1 {
			return SubmitWinnersResult{}, domainerrors.ErrInvalidWinners
		}
	}

	participant, found, err := uc.Participants.GetParticipant(ctx, schoolID, category, level)
	if err != nil {
		return SubmitWinnersResult{}, err
	}
	if !found {
		return SubmitWinnersResult{}, domainerrors.ErrRegistrationNotFound
	}

	now := uc.now()
	participant.Winners = cmd.Winners
	participant.IsCompleted = true
	participant.UpdatedAt = now
	if err := uc.Participants.SaveParticipant(ctx, participant); err != nil {
		return SubmitWinnersResult{}, err
	}

	result := SubmitWinnersResult{
		Category:     string(category),
		Level:        string(level),
		WinnersCount: len(cmd.Winners),
	}
	advancing := participant.AdvancingWinners()
	result.AdvancingCount = len(advancing)

	nextLevel, hasNext := level.Next()
	if hasNext && len(advancing) > 0 {
		created, err := uc.openNextLevel(ctx, participant, nextLevel, len(advancing), now)
		if err != nil {
			return SubmitWinnersResult{}, err
		}
		if created {
			result.NextLevel = string(nextLevel)
		}
	}

	logger.Info("winners submitted",
		"event", "progression_winners_submitted",
		"module", "competition/progression-service",
		"layer", "application",
		"school_id", schoolID,
		"category", string(category),
		"level", string(level),
		"winners_count", result.WinnersCount,
		"advancing_count", result.AdvancingCount,
	)
	return result, nil
}

// openNextLevel creates the next-level registration unless it already exists.
// A duplicate-key conflict from a concurrent submit is treated the same as an
// existing row.
func (uc SubmitWinnersUseCase) openNextLevel(
	ctx context.Context,
	participant entities.DrawingParticipant,
	nextLevel entities.Level,
	advancingCount int,
	now time.Time,
) (bool, error) {
	_, exists, err := uc.Participants.GetParticipant(ctx, participant.SchoolID, participant.Category, nextLevel)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	participantID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return false, err
	}
	fromLevel := participant.Level
	next := entities.DrawingParticipant{
		ParticipantID:     participantID,
		SchoolID:          participant.SchoolID,
		Category:          participant.Category,
		Level:             nextLevel,
		ParticipantCount:  advancingCount,
		SubmissionDate:    now,
		FromPreviousLevel: true,
		AdvancedFrom:      &fromLevel,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.Participants.SaveParticipant(ctx, next); err != nil {
		if errors.Is(err, domainerrors.ErrConflict) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (uc SubmitWinnersUseCase) now() time.Time {
	now := time.Now().UTC()
	if uc.Clock != nil {
		now = uc.Clock.Now().UTC()
	}
	return now
}
