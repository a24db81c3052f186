package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "ignite/contexts/competition/nomination-service/application"
	"ignite/contexts/competition/nomination-service/domain/entities"
	domainerrors "ignite/contexts/competition/nomination-service/domain/errors"
	"ignite/contexts/competition/nomination-service/ports"
)

type NominateCommand struct {
	SchoolID         string
	TeacherName      string
	Category         string
	AwardType        string
	Email            string
	Phone            string
	ExperienceYears  int
	CurrentPosition  string
	Qualifications   string
	SubjectsTaught   []string
	Achievements     string
	NominationLetter string
}

type NominateUseCase struct {
	Nominations ports.NominationRepository
	Clock       ports.Clock
	IDGen       ports.IDGenerator
	Logger      *slog.Logger
}

// Nominate creates a new teacher nomination in the "nominated" state.
func (uc NominateUseCase) Nominate(ctx context.Context, cmd NominateCommand) (entities.TeacherNomination, error) {
	logger := application.ResolveLogger(uc.Logger)

	schoolID := strings.TrimSpace(cmd.SchoolID)
	teacherName := strings.TrimSpace(cmd.TeacherName)
	awardType := strings.TrimSpace(cmd.AwardType)
	if schoolID == "" || teacherName == "" || awardType == "" ||
		strings.TrimSpace(cmd.CurrentPosition) == "" ||
		strings.TrimSpace(cmd.Achievements) == "" ||
		cmd.ExperienceYears < 0 {
		logger.Warn("nomination validation failed",
			"event", "nomination_create_validation_failed",
			"module", "competition/nomination-service",
			"layer", "application",
			"school_id", schoolID,
		)
		return entities.TeacherNomination{}, domainerrors.ErrInvalidNominationInput
	}

	category := entities.AwardCategory(strings.ToLower(strings.TrimSpace(cmd.Category)))
	if !category.IsValid() {
		return entities.TeacherNomination{}, domainerrors.ErrInvalidCategory
	}

	nominationID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return entities.TeacherNomination{}, err
	}
	now := uc.now()
	nomination := entities.TeacherNomination{
		NominationID:     nominationID,
		SchoolID:         schoolID,
		TeacherName:      teacherName,
		Category:         category,
		AwardType:        awardType,
		Email:            strings.TrimSpace(cmd.Email),
		Phone:            strings.TrimSpace(cmd.Phone),
		ExperienceYears:  cmd.ExperienceYears,
		CurrentPosition:  strings.TrimSpace(cmd.CurrentPosition),
		Qualifications:   strings.TrimSpace(cmd.Qualifications),
		SubjectsTaught:   normalizeList(cmd.SubjectsTaught),
		Achievements:     strings.TrimSpace(cmd.Achievements),
		NominationLetter: strings.TrimSpace(cmd.NominationLetter),
		EvaluatorScores:  map[string]int{},
		Status:           entities.StatusNominated,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.Nominations.SaveNomination(ctx, nomination); err != nil {
		return entities.TeacherNomination{}, err
	}

	logger.Info("teacher nominated",
		"event", "nomination_created",
		"module", "competition/nomination-service",
		"layer", "application",
		"nomination_id", nomination.NominationID,
		"school_id", schoolID,
		"category", string(category),
	)
	return nomination, nil
}

func (uc NominateUseCase) now() time.Time {
	now := time.Now().UTC()
	if uc.Clock != nil {
		now = uc.Clock.Now().UTC()
	}
	return now
}

func normalizeList(values []string) []string {
	items := make([]string, 0, len(values))
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
