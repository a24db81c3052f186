package queries

import (
	"context"
	"log/slog"

	application "ignite/contexts/competition/voting-service/application"
	"ignite/contexts/competition/voting-service/ports"
)

// achievementsPreviewLimit bounds free-text length on the public board.
const achievementsPreviewLimit = 200

// BoardUseCase serves the public voting board: open nominations and per-
// nomination tallies. Reads go through the nomination directory projection;
// the cached public_votes counter is authoritative for display.
type BoardUseCase struct {
	Nominations ports.NominationDirectory
	Logger      *slog.Logger
}

func (uc BoardUseCase) OpenNominations(ctx context.Context) ([]ports.NominationSummary, error) {
	logger := application.ResolveLogger(uc.Logger)
	items, err := uc.Nominations.ListOpenNominations(ctx)
	if err != nil {
		logger.Error("open nominations listing failed",
			"event", "voting_board_list_failed",
			"module", "competition/voting-service",
			"layer", "application",
			"error", err.Error(),
		)
		return nil, err
	}
	for i := range items {
		items[i].Achievements = truncateWithEllipsis(items[i].Achievements, achievementsPreviewLimit)
	}
	return items, nil
}

func (uc BoardUseCase) Results(ctx context.Context, nominationID string) (ports.NominationSummary, error) {
	return uc.Nominations.GetNomination(ctx, nominationID)
}

func truncateWithEllipsis(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
