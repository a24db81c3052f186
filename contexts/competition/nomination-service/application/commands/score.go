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

type ScoreCommand struct {
	EvaluatorID  string
	NominationID string
	Score        int
}

type ScoreUseCase struct {
	Nominations ports.NominationRepository
	Clock       ports.Clock
	Logger      *slog.Logger
}

// Score records one evaluator's score on a nomination. A repeat call by the
// same evaluator overwrites that evaluator's earlier score; the final score is
// always the mean across evaluators.
func (uc ScoreUseCase) Score(ctx context.Context, cmd ScoreCommand) (entities.TeacherNomination, error) {
	logger := application.ResolveLogger(uc.Logger)

	evaluatorID := strings.TrimSpace(cmd.EvaluatorID)
	nominationID := strings.TrimSpace(cmd.NominationID)
	if evaluatorID == "" || nominationID == "" {
		return entities.TeacherNomination{}, domainerrors.ErrInvalidNominationInput
	}
	if cmd.Score < 0 || cmd.Score > 100 {
		return entities.TeacherNomination{}, domainerrors.ErrInvalidScore
	}

	nomination, err := uc.Nominations.GetNomination(ctx, nominationID)
	if err != nil {
		return entities.TeacherNomination{}, err
	}

	nomination.RecordScore(evaluatorID, cmd.Score)
	nomination.UpdatedAt = uc.now()
	if err := uc.Nominations.SaveNomination(ctx, nomination); err != nil {
		return entities.TeacherNomination{}, err
	}

	logger.Info("nomination scored",
		"event", "nomination_scored",
		"module", "competition/nomination-service",
		"layer", "application",
		"nomination_id", nominationID,
		"evaluator_id", evaluatorID,
		"score", cmd.Score,
		"final_score", *nomination.FinalScore,
	)
	return nomination, nil
}

func (uc ScoreUseCase) now() time.Time {
	now := time.Now().UTC()
	if uc.Clock != nil {
		now = uc.Clock.Now().UTC()
	}
	return now
}
