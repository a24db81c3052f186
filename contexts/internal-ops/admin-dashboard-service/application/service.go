package application

import (
	"context"
	"log/slog"

	"ignite/contexts/internal-ops/admin-dashboard-service/ports"
)

type DashboardStats struct {
	TotalSchools        int
	TotalParticipants   int
	TotalNominations    int
	ActiveEvaluators    int
	VotesCast           int
	CompetitionsByLevel map[string]int
}

type EnrichedParticipant struct {
	ports.ParticipantRecord
	SchoolName string
	District   string
	Taluk      string
}

type EnrichedNomination struct {
	ports.NominationRecord
	SchoolName string
	District   string
	Taluk      string
}

type Service struct {
	Directory ports.Directory
	Logger    *slog.Logger
}

// Stats aggregates the platform-wide totals for the admin dashboard.
func (s Service) Stats(ctx context.Context) (DashboardStats, error) {
	schools, err := s.Directory.CountSchools(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	evaluators, err := s.Directory.CountActiveEvaluators(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	votes, err := s.Directory.CountVotes(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	participants, err := s.Directory.ListParticipants(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	nominations, err := s.Directory.ListNominations(ctx)
	if err != nil {
		return DashboardStats{}, err
	}

	stats := DashboardStats{
		TotalSchools:        schools,
		TotalNominations:    len(nominations),
		ActiveEvaluators:    evaluators,
		VotesCast:           votes,
		CompetitionsByLevel: map[string]int{},
	}
	for _, participant := range participants {
		stats.TotalParticipants += participant.ParticipantCount
		stats.CompetitionsByLevel[participant.Level]++
	}
	return stats, nil
}

// AllParticipants lists every registration with its school details attached.
func (s Service) AllParticipants(ctx context.Context) ([]EnrichedParticipant, error) {
	participants, err := s.Directory.ListParticipants(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]EnrichedParticipant, 0, len(participants))
	for _, participant := range participants {
		item := EnrichedParticipant{ParticipantRecord: participant}
		if info, found, err := s.Directory.GetSchoolInfo(ctx, participant.SchoolID); err != nil {
			return nil, err
		} else if found {
			item.SchoolName = info.SchoolName
			item.District = info.District
			item.Taluk = info.Taluk
		}
		items = append(items, item)
	}
	return items, nil
}

// AllNominations lists every nomination with its school details attached.
func (s Service) AllNominations(ctx context.Context) ([]EnrichedNomination, error) {
	nominations, err := s.Directory.ListNominations(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]EnrichedNomination, 0, len(nominations))
	for _, nomination := range nominations {
		item := EnrichedNomination{NominationRecord: nomination}
		if info, found, err := s.Directory.GetSchoolInfo(ctx, nomination.SchoolID); err != nil {
			return nil, err
		} else if found {
			item.SchoolName = info.SchoolName
			item.District = info.District
			item.Taluk = info.Taluk
		}
		items = append(items, item)
	}
	return items, nil
}
