package httpadapter

import (
	"context"
	"log/slog"

	"ignite/contexts/internal-ops/admin-dashboard-service/application"
	httptransport "ignite/contexts/internal-ops/admin-dashboard-service/transport/http"
)

type Handler struct {
	Dashboard application.Service
	Logger    *slog.Logger
}

func (h Handler) StatsHandler(ctx context.Context) (httptransport.DashboardStatsResponse, error) {
	stats, err := h.Dashboard.Stats(ctx)
	if err != nil {
		return httptransport.DashboardStatsResponse{}, err
	}
	return httptransport.DashboardStatsResponse{
		TotalSchools:        stats.TotalSchools,
		TotalParticipants:   stats.TotalParticipants,
		TotalNominations:    stats.TotalNominations,
		ActiveEvaluators:    stats.ActiveEvaluators,
		VotesCast:           stats.VotesCast,
		CompetitionsByLevel: stats.CompetitionsByLevel,
	}, nil
}

func (h Handler) AllParticipantsHandler(ctx context.Context) (httptransport.ParticipantOverviewResponse, error) {
	participants, err := h.Dashboard.AllParticipants(ctx)
	if err != nil {
		return httptransport.ParticipantOverviewResponse{}, err
	}
	items := make([]httptransport.ParticipantOverviewItem, 0, len(participants))
	for _, participant := range participants {
		items = append(items, httptransport.ParticipantOverviewItem{
			ParticipantID:    participant.ParticipantID,
			SchoolID:         participant.SchoolID,
			SchoolName:       participant.SchoolName,
			District:         participant.District,
			Taluk:            participant.Taluk,
			Category:         participant.Category,
			Level:            participant.Level,
			ParticipantCount: participant.ParticipantCount,
			WinnersDeclared:  participant.WinnersDeclared,
			IsCompleted:      participant.IsCompleted,
		})
	}
	return httptransport.ParticipantOverviewResponse{
		Participants: items,
		Count:        len(items),
	}, nil
}

func (h Handler) AllNominationsHandler(ctx context.Context) (httptransport.NominationOverviewResponse, error) {
	nominations, err := h.Dashboard.AllNominations(ctx)
	if err != nil {
		return httptransport.NominationOverviewResponse{}, err
	}
	items := make([]httptransport.NominationOverviewItem, 0, len(nominations))
	for _, nomination := range nominations {
		items = append(items, httptransport.NominationOverviewItem{
			NominationID: nomination.NominationID,
			SchoolID:     nomination.SchoolID,
			SchoolName:   nomination.SchoolName,
			District:     nomination.District,
			Taluk:        nomination.Taluk,
			TeacherName:  nomination.TeacherName,
			Category:     nomination.Category,
			AwardType:    nomination.AwardType,
			PublicVotes:  nomination.PublicVotes,
			Status:       nomination.Status,
			FinalScore:   nomination.FinalScore,
		})
	}
	return httptransport.NominationOverviewResponse{
		Nominations: items,
		Count:       len(items),
	}, nil
}
