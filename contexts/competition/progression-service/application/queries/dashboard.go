package queries

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"ignite/contexts/competition/progression-service/domain/entities"
	domainerrors "ignite/contexts/competition/progression-service/domain/errors"
	"ignite/contexts/competition/progression-service/ports"
)

type SchoolDashboard struct {
	TotalParticipants    int
	CategoriesRegistered []string
	WinnersSubmitted     int
	TeacherNominations   int
	CurrentLevel         string
}

type DashboardUseCase struct {
	Participants ports.ParticipantRepository
	Nominations  ports.NominationCounter
	Logger       *slog.Logger
}

func (uc DashboardUseCase) SchoolParticipants(ctx context.Context, schoolID string) ([]entities.DrawingParticipant, error) {
	if strings.TrimSpace(schoolID) == "" {
		return nil, domainerrors.ErrInvalidRegistrationInput
	}
	return uc.Participants.ListParticipantsBySchool(ctx, strings.TrimSpace(schoolID))
}

// Dashboard aggregates the school view: totals across registrations, the
// distinct categories entered, completed rounds, and the nomination count.
func (uc DashboardUseCase) Dashboard(ctx context.Context, schoolID string) (SchoolDashboard, error) {
	if strings.TrimSpace(schoolID) == "" {
		return SchoolDashboard{}, domainerrors.ErrInvalidRegistrationInput
	}
	participants, err := uc.Participants.ListParticipantsBySchool(ctx, strings.TrimSpace(schoolID))
	if err != nil {
		return SchoolDashboard{}, err
	}

	stats := SchoolDashboard{CurrentLevel: string(entities.LevelSchool)}
	seen := map[string]struct{}{}
	for _, participant := range participants {
		stats.TotalParticipants += participant.ParticipantCount
		seen[string(participant.Category)] = struct{}{}
		if len(participant.Winners) > 0 {
			stats.WinnersSubmitted++
		}
	}
	for category := range seen {
		stats.CategoriesRegistered = append(stats.CategoriesRegistered, category)
	}
	sort.Strings(stats.CategoriesRegistered)

	if uc.Nominations != nil {
		count, err := uc.Nominations.CountNominationsBySchool(ctx, strings.TrimSpace(schoolID))
		if err != nil {
			return SchoolDashboard{}, err
		}
		stats.TeacherNominations = count
	}
	return stats, nil
}
