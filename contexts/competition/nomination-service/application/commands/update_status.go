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

type UpdateStatusCommand struct {
	NominationID string
	Status       string
}

type UpdateStatusUseCase struct {
	Nominations ports.NominationRepository
	Clock       ports.Clock
	Logger      *slog.Logger
}

// UpdateStatus moves a nomination through its lifecycle. Winner and rejected
// are terminal; transitions only start from nominated or shortlisted.
func (uc UpdateStatusUseCase) UpdateStatus(ctx context.Context, cmd UpdateStatusCommand) (entities.TeacherNomination, error) {
	logger := application.ResolveLogger(uc.Logger)

	nominationID := strings.TrimSpace(cmd.NominationID)
	if nominationID == "" {
		return entities.TeacherNomination{}, domainerrors.ErrInvalidNominationInput
	}
	next := entities.NominationStatus(strings.ToLower(strings.TrimSpace(cmd.Status)))
	if !next.IsValid() {
		return entities.TeacherNomination{}, domainerrors.ErrInvalidStatus
	}

	nomination, err := uc.Nominations.GetNomination(ctx, nominationID)
	if err != nil {
		return entities.TeacherNomination{}, err
	}
	if nomination.Status == entities.StatusWinner || nomination.Status == entities.StatusRejected {
		return entities.TeacherNomination{}, domainerrors.ErrStatusLocked
	}

	previous := nomination.Status
	nomination.Status = next
	nomination.UpdatedAt = uc.now()
	if err := uc.Nominations.SaveNomination(ctx, nomination); err != nil {
		return entities.TeacherNomination{}, err
	}

	logger.Info("nomination status updated",
		"event", "nomination_status_updated",
		"module", "competition/nomination-service",
		"layer", "application",
		"nomination_id", nominationID,
		"from_status", string(previous),
		"to_status", string(next),
	)
	return nomination, nil
}

func (uc UpdateStatusUseCase) now() time.Time {
	now := time.Now().UTC()
	if uc.Clock != nil {
		now = uc.Clock.Now().UTC()
	}
	return now
}
