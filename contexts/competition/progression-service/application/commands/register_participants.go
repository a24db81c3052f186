package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "ignite/contexts/competition/progression-service/application"
	"ignite/contexts/competition/progression-service/domain/entities"
	domainerrors "ignite/contexts/competition/progression-service/domain/errors"
	"ignite/contexts/competition/progression-service/ports"
)

type RegisterParticipantsCommand struct {
	SchoolID     string
	Level        string
	Participants map[string]int
}

type RegistrationOutcome struct {
	Category string
	Count    int
	Action   string
}

type RegisterParticipantsUseCase struct {
	Participants ports.ParticipantRepository
	Clock        ports.Clock
	IDGen        ports.IDGenerator
	Logger       *slog.Logger
}

// Register upserts participant counts per category at one level. A category
// with an existing registration gets its count replaced; zero and negative
// counts are skipped.
func (uc RegisterParticipantsUseCase) Register(
	ctx context.Context,
	cmd RegisterParticipantsCommand,
) ([]RegistrationOutcome, error) {
	logger := application.ResolveLogger(uc.Logger)

	schoolID := strings.TrimSpace(cmd.SchoolID)
	if schoolID == "" || len(cmd.Participants) == 0 {
		return nil, domainerrors.ErrInvalidRegistrationInput
	}
	level := entities.Level(strings.ToLower(strings.TrimSpace(cmd.Level)))
	if level == "" {
		level = entities.LevelSchool
	}
	if !level.IsValid() {
		return nil, domainerrors.ErrInvalidLevel
	}

	outcomes := make([]RegistrationOutcome, 0, len(cmd.Participants))
	for rawCategory, count := range cmd.Participants {
		if count <= 0 {
			continue
		}
		category := entities.Category(strings.ToLower(strings.TrimSpace(rawCategory)))
		if !category.IsValid() {
			return nil, domainerrors.ErrInvalidCategory
		}

		existing, found, err := uc.Participants.GetParticipant(ctx, schoolID, category, level)
		if err != nil {
			return nil, err
		}
		now := uc.now()
		if found {
			existing.ParticipantCount = count
			existing.UpdatedAt = now
			if err := uc.Participants.SaveParticipant(ctx, existing); err != nil {
				return nil, err
			}
			outcomes = append(outcomes, RegistrationOutcome{
				Category: string(category),
				Count:    count,
				Action:   "updated",
			})
			continue
		}

		participantID, err := uc.IDGen.NewID(ctx)
		if err != nil {
			return nil, err
		}
		participant := entities.DrawingParticipant{
			ParticipantID:    participantID,
			SchoolID:         schoolID,
			Category:         category,
			Level:            level,
			ParticipantCount: count,
			SubmissionDate:   now,
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		if err := uc.Participants.SaveParticipant(ctx, participant); err != nil {
			return nil, err
		}
		outcomes = append(outcomes, RegistrationOutcome{
			Category: string(category),
			Count:    count,
			Action:   "registered",
		})
	}

	logger.Info("participants registered",
		"event", "progression_participants_registered",
		"module", "competition/progression-service",
		"layer", "application",
		"school_id", schoolID,
		"level", string(level),
		"category_count", len(outcomes),
	)
	return outcomes, nil
}

func (uc RegisterParticipantsUseCase) now() time.Time {
	now := time.Now().UTC()
	if uc.Clock != nil {
		now = uc.Clock.Now().UTC()
	}
	return now
}
