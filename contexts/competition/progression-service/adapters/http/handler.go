package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"ignite/contexts/competition/progression-service/application/commands"
	"ignite/contexts/competition/progression-service/application/queries"
	"ignite/contexts/competition/progression-service/domain/entities"
	httptransport "ignite/contexts/competition/progression-service/transport/http"
)

type Handler struct {
	Register  commands.RegisterParticipantsUseCase
	Winners   commands.SubmitWinnersUseCase
	Dashboard queries.DashboardUseCase
	Logger    *slog.Logger
}

func (h Handler) RegisterParticipantsHandler(
	ctx context.Context,
	schoolID string,
	req httptransport.RegisterParticipantsRequest,
) (httptransport.RegisterParticipantsResponse, error) {
	outcomes, err := h.Register.Register(ctx, commands.RegisterParticipantsCommand{
		SchoolID:     schoolID,
		Level:        req.Level,
		Participants: req.Participants,
	})
	if err != nil {
		return httptransport.RegisterParticipantsResponse{}, err
	}
	items := make([]httptransport.RegistrationOutcomeItem, 0, len(outcomes))
	for _, outcome := range outcomes {
		items = append(items, httptransport.RegistrationOutcomeItem{
			Category: outcome.Category,
			Count:    outcome.Count,
			Action:   outcome.Action,
		})
	}
	return httptransport.RegisterParticipantsResponse{Participants: items}, nil
}

func (h Handler) SubmitWinnersHandler(
	ctx context.Context,
	schoolID string,
	req httptransport.SubmitWinnersRequest,
) (httptransport.SubmitWinnersResponse, error) {
	winners := make([]entities.Winner, 0, len(req.Winners))
	for _, item := range req.Winners {
		winners = append(winners, entities.Winner(item))
	}
	result, err := h.Winners.Submit(ctx, commands.SubmitWinnersCommand{
		SchoolID: schoolID,
		Category: req.Category,
		Level:    req.Level,
		Winners:  winners,
	})
	if err != nil {
		return httptransport.SubmitWinnersResponse{}, err
	}
	return httptransport.SubmitWinnersResponse{
		Category:       result.Category,
		Level:          result.Level,
		WinnersCount:   result.WinnersCount,
		AdvancingCount: result.AdvancingCount,
		NextLevel:      result.NextLevel,
	}, nil
}

func (h Handler) SchoolParticipantsHandler(ctx context.Context, schoolID string) (httptransport.ParticipantListResponse, error) {
	participants, err := h.Dashboard.SchoolParticipants(ctx, schoolID)
	if err != nil {
		return httptransport.ParticipantListResponse{}, err
	}
	return toParticipantListResponse(participants), nil
}

func (h Handler) SchoolDashboardHandler(ctx context.Context, schoolID string) (httptransport.SchoolDashboardResponse, error) {
	stats, err := h.Dashboard.Dashboard(ctx, schoolID)
	if err != nil {
		return httptransport.SchoolDashboardResponse{}, err
	}
	return httptransport.SchoolDashboardResponse{
		TotalParticipants:    stats.TotalParticipants,
		CategoriesRegistered: stats.CategoriesRegistered,
		WinnersSubmitted:     stats.WinnersSubmitted,
		TeacherNominations:   stats.TeacherNominations,
		CurrentLevel:         stats.CurrentLevel,
	}, nil
}

func toParticipantListResponse(participants []entities.DrawingParticipant) httptransport.ParticipantListResponse {
	items := make([]httptransport.ParticipantResponse, 0, len(participants))
	for _, participant := range participants {
		items = append(items, toParticipantResponse(participant))
	}
	return httptransport.ParticipantListResponse{
		Participants: items,
		Count:        len(items),
	}
}

func toParticipantResponse(participant entities.DrawingParticipant) httptransport.ParticipantResponse {
	winners := make([]httptransport.WinnerItem, 0, len(participant.Winners))
	for _, winner := range participant.Winners {
		winners = append(winners, httptransport.WinnerItem(winner))
	}
	item := httptransport.ParticipantResponse{
		ParticipantID:     participant.ParticipantID,
		SchoolID:          participant.SchoolID,
		Category:          string(participant.Category),
		Level:             string(participant.Level),
		ParticipantCount:  participant.ParticipantCount,
		Winners:           winners,
		IsCompleted:       participant.IsCompleted,
		FromPreviousLevel: participant.FromPreviousLevel,
		SubmissionDate:    participant.SubmissionDate.UTC().Format(time.RFC3339),
	}
	if participant.AdvancedFrom != nil {
		item.AdvancedFrom = string(*participant.AdvancedFrom)
	}
	return item
}
