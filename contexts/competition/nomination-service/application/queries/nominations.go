package queries

import (
	"context"
	"log/slog"
	"strings"

	"ignite/contexts/competition/nomination-service/domain/entities"
	domainerrors "ignite/contexts/competition/nomination-service/domain/errors"
	"ignite/contexts/competition/nomination-service/ports"
)

type NominationQueryUseCase struct {
	Nominations ports.NominationRepository
	Logger      *slog.Logger
}

func (uc NominationQueryUseCase) Nomination(ctx context.Context, nominationID string) (entities.TeacherNomination, error) {
	if strings.TrimSpace(nominationID) == "" {
		return entities.TeacherNomination{}, domainerrors.ErrInvalidNominationInput
	}
	return uc.Nominations.GetNomination(ctx, strings.TrimSpace(nominationID))
}

func (uc NominationQueryUseCase) NominationsBySchool(ctx context.Context, schoolID string) ([]entities.TeacherNomination, error) {
	if strings.TrimSpace(schoolID) == "" {
		return nil, domainerrors.ErrInvalidNominationInput
	}
	return uc.Nominations.ListNominationsBySchool(ctx, strings.TrimSpace(schoolID))
}

// AllNominations lists every nomination for admin and evaluator views.
func (uc NominationQueryUseCase) AllNominations(ctx context.Context) ([]entities.TeacherNomination, error) {
	return uc.Nominations.ListNominations(ctx)
}
