package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"ignite/contexts/competition/nomination-service/application/commands"
	"ignite/contexts/competition/nomination-service/application/queries"
	"ignite/contexts/competition/nomination-service/domain/entities"
	httptransport "ignite/contexts/competition/nomination-service/transport/http"
)

type Handler struct {
	Nominate     commands.NominateUseCase
	Score        commands.ScoreUseCase
	UpdateStatus commands.UpdateStatusUseCase
	Queries      queries.NominationQueryUseCase
	Logger       *slog.Logger
}

func (h Handler) NominateTeacherHandler(
	ctx context.Context,
	schoolID string,
	req httptransport.NominateTeacherRequest,
) (httptransport.NominateTeacherResponse, error) {
	nomination, err := h.Nominate.Nominate(ctx, commands.NominateCommand{
		SchoolID:         schoolID,
		TeacherName:      req.TeacherName,
		Category:         req.Category,
		AwardType:        req.AwardType,
		Email:            req.Email,
		Phone:            req.Phone,
		ExperienceYears:  req.ExperienceYears,
		CurrentPosition:  req.CurrentPosition,
		Qualifications:   req.Qualifications,
		SubjectsTaught:   req.SubjectsTaught,
		Achievements:     req.Achievements,
		NominationLetter: req.NominationLetter,
	})
	if err != nil {
		return httptransport.NominateTeacherResponse{}, err
	}
	return httptransport.NominateTeacherResponse{
		NominationID: nomination.NominationID,
		TeacherName:  nomination.TeacherName,
		Category:     string(nomination.Category),
		Status:       string(nomination.Status),
	}, nil
}

func (h Handler) ScoreNominationHandler(
	ctx context.Context,
	evaluatorID string,
	nominationID string,
	req httptransport.ScoreNominationRequest,
) (httptransport.NominationResponse, error) {
	nomination, err := h.Score.Score(ctx, commands.ScoreCommand{
		EvaluatorID:  evaluatorID,
		NominationID: nominationID,
		Score:        req.Score,
	})
	if err != nil {
		return httptransport.NominationResponse{}, err
	}
	return toNominationResponse(nomination), nil
}

func (h Handler) UpdateStatusHandler(
	ctx context.Context,
	nominationID string,
	req httptransport.UpdateStatusRequest,
) (httptransport.NominationResponse, error) {
	nomination, err := h.UpdateStatus.UpdateStatus(ctx, commands.UpdateStatusCommand{
		NominationID: nominationID,
		Status:       req.Status,
	})
	if err != nil {
		return httptransport.NominationResponse{}, err
	}
	return toNominationResponse(nomination), nil
}

func (h Handler) SchoolNominationsHandler(ctx context.Context, schoolID string) (httptransport.NominationListResponse, error) {
	nominations, err := h.Queries.NominationsBySchool(ctx, schoolID)
	if err != nil {
		return httptransport.NominationListResponse{}, err
	}
	return toNominationListResponse(nominations), nil
}

func (h Handler) AllNominationsHandler(ctx context.Context) (httptransport.NominationListResponse, error) {
	nominations, err := h.Queries.AllNominations(ctx)
	if err != nil {
		return httptransport.NominationListResponse{}, err
	}
	return toNominationListResponse(nominations), nil
}

func (h Handler) NominationHandler(ctx context.Context, nominationID string) (httptransport.NominationResponse, error) {
	nomination, err := h.Queries.Nomination(ctx, nominationID)
	if err != nil {
		return httptransport.NominationResponse{}, err
	}
	return toNominationResponse(nomination), nil
}

func toNominationListResponse(nominations []entities.TeacherNomination) httptransport.NominationListResponse {
	items := make([]httptransport.NominationResponse, 0, len(nominations))
	for _, nomination := range nominations {
		items = append(items, toNominationResponse(nomination))
	}
	return httptransport.NominationListResponse{
		Nominations: items,
		Count:       len(items),
	}
}

func toNominationResponse(nomination entities.TeacherNomination) httptransport.NominationResponse {
	return httptransport.NominationResponse{
		NominationID:     nomination.NominationID,
		SchoolID:         nomination.SchoolID,
		TeacherName:      nomination.TeacherName,
		Category:         string(nomination.Category),
		AwardType:        nomination.AwardType,
		Email:            nomination.Email,
		Phone:            nomination.Phone,
		ExperienceYears:  nomination.ExperienceYears,
		CurrentPosition:  nomination.CurrentPosition,
		Qualifications:   nomination.Qualifications,
		SubjectsTaught:   nomination.SubjectsTaught,
		Achievements:     nomination.Achievements,
		NominationLetter: nomination.NominationLetter,
		PublicVotes:      nomination.PublicVotes,
		EvaluatorScores:  nomination.EvaluatorScores,
		Status:           string(nomination.Status),
		FinalScore:       nomination.FinalScore,
		CreatedAt:        nomination.CreatedAt.UTC().Format(time.RFC3339),
	}
}
