package workers

import (
	"context"
	"log/slog"

	application "ignite/contexts/competition/voting-service/application"
	"ignite/contexts/competition/voting-service/ports"
)

// TallyReconciler audits the cached public_votes counter against the ledger
// count for nominations still open for voting, and repairs drift. The ledger
// count is the source of truth for reconciliation; the cached counter serves
// the hot path.
type TallyReconciler struct {
	Ledger      ports.VoteLedger
	Nominations ports.NominationDirectory
	Logger      *slog.Logger
}

func (r TallyReconciler) RunOnce(ctx context.Context) error {
	logger := application.ResolveLogger(r.Logger)
	items, err := r.Nominations.ListOpenNominations(ctx)
	if err != nil {
		logger.Error("tally reconciler listing failed",
			"event", "voting_tally_reconcile_list_failed",
			"module", "competition/voting-service",
			"layer", "worker",
			"error", err.Error(),
		)
		return err
	}

	repaired := 0
	for _, item := range items {
		counted, err := r.Ledger.CountVotesByNomination(ctx, item.NominationID)
		if err != nil {
			logger.Error("tally reconciler count failed",
				"event", "voting_tally_reconcile_count_failed",
				"module", "competition/voting-service",
				"layer", "worker",
				"nomination_id", item.NominationID,
				"error", err.Error(),
			)
			return err
		}
		if counted == item.PublicVotes {
			continue
		}
		logger.Warn("vote tally drift detected",
			"event", "voting_tally_drift_detected",
			"module", "competition/voting-service",
			"layer", "worker",
			"nomination_id", item.NominationID,
			"cached", item.PublicVotes,
			"counted", counted,
		)
		if err := r.Nominations.SetPublicVotes(ctx, item.NominationID, counted); err != nil {
			return err
		}
		repaired++
	}

	if repaired > 0 {
		logger.Info("vote tally reconciliation repaired counters",
			"event", "voting_tally_reconciled",
			"module", "competition/voting-service",
			"layer", "worker",
			"repaired_count", repaired,
		)
	}
	return nil
}
