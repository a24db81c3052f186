package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"ignite/contexts/competition/voting-service/application/commands"
	"ignite/contexts/competition/voting-service/application/queries"
	httptransport "ignite/contexts/competition/voting-service/transport/http"
)

type Handler struct {
	Issuer    commands.TokenIssueUseCase
	Votes     commands.CastVoteUseCase
	Validator queries.ValidateTokenUseCase
	Board     queries.BoardUseCase
	Logger    *slog.Logger
}

func (h Handler) GenerateTokensHandler(
	ctx context.Context,
	req httptransport.GenerateTokensRequest,
) (httptransport.GenerateTokensResponse, error) {
	validity := time.Duration(req.ValidityDays) * 24 * time.Hour
	tokens, err := h.Issuer.IssueTokens(ctx, req.Count, validity)
	if err != nil {
		return httptransport.GenerateTokensResponse{}, err
	}
	items := make([]httptransport.TokenItem, 0, len(tokens))
	for _, token := range tokens {
		items = append(items, httptransport.TokenItem{
			TokenID:   token.TokenID,
			Code:      token.Code,
			IsUsed:    token.IsUsed,
			ExpiresAt: token.ExpiresAt.UTC().Format(time.RFC3339),
		})
	}
	return httptransport.GenerateTokensResponse{
		Tokens: items,
		Count:  len(items),
	}, nil
}

func (h Handler) CastVoteHandler(
	ctx context.Context,
	ipAddress string,
	userAgent string,
	req httptransport.CastVoteRequest,
) (httptransport.CastVoteResponse, error) {
	result, err := h.Votes.CastVote(ctx, commands.CastVoteCommand{
		Code:         req.Code,
		NominationID: req.NominationID,
		IPAddress:    ipAddress,
		UserAgent:    userAgent,
	})
	if err != nil {
		return httptransport.CastVoteResponse{}, err
	}
	return httptransport.CastVoteResponse{
		VoteID:       result.Vote.VoteID,
		NominationID: result.Vote.NominationID,
		PublicVotes:  result.PublicVotes,
		VotedAt:      result.Vote.VotedAt.UTC().Format(time.RFC3339),
	}, nil
}

func (h Handler) ValidateTokenHandler(ctx context.Context, code string) (httptransport.ValidateTokenResponse, error) {
	verdict, err := h.Validator.ValidateToken(ctx, code)
	if err != nil {
		return httptransport.ValidateTokenResponse{}, err
	}
	return httptransport.ValidateTokenResponse{
		Valid:  verdict == queries.TokenVerdictValid,
		Status: string(verdict),
	}, nil
}

func (h Handler) NominationBoardHandler(ctx context.Context) (httptransport.NominationBoardResponse, error) {
	nominations, err := h.Board.OpenNominations(ctx)
	if err != nil {
		return httptransport.NominationBoardResponse{}, err
	}
	items := make([]httptransport.NominationBoardItem, 0, len(nominations))
	for _, nomination := range nominations {
		items = append(items, httptransport.NominationBoardItem{
			NominationID:    nomination.NominationID,
			TeacherName:     nomination.TeacherName,
			Category:        nomination.Category,
			AwardType:       nomination.AwardType,
			SchoolName:      nomination.SchoolName,
			District:        nomination.District,
			ExperienceYears: nomination.ExperienceYears,
			CurrentPosition: nomination.CurrentPosition,
			Achievements:    nomination.Achievements,
			PublicVotes:     nomination.PublicVotes,
		})
	}
	return httptransport.NominationBoardResponse{Nominations: items}, nil
}

func (h Handler) VotingResultsHandler(ctx context.Context, nominationID string) (httptransport.VotingResultsResponse, error) {
	nomination, err := h.Board.Results(ctx, nominationID)
	if err != nil {
		return httptransport.VotingResultsResponse{}, err
	}
	return httptransport.VotingResultsResponse{
		NominationID: nomination.NominationID,
		TeacherName:  nomination.TeacherName,
		PublicVotes:  nomination.PublicVotes,
		Status:       nomination.Status,
	}, nil
}
