package httpserver

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	votingerrors "ignite/contexts/competition/voting-service/domain/errors"
	votinghttp "ignite/contexts/competition/voting-service/transport/http"
	"ignite/contexts/identity-access/account-service/domain/entities"
)

func writeVotingError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, votinghttp.ErrorResponse{Code: code, Message: message})
}

func writeVotingDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, votingerrors.ErrInvalidVoteInput),
		errors.Is(err, votingerrors.ErrInvalidTokenBatch):
		writeVotingError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, votingerrors.ErrTokenInvalid):
		writeVotingError(w, http.StatusNotFound, "token_invalid", err.Error())
	case errors.Is(err, votingerrors.ErrTokenAlreadyUsed):
		writeVotingError(w, http.StatusBadRequest, "token_already_used", err.Error())
	case errors.Is(err, votingerrors.ErrTokenExpired):
		writeVotingError(w, http.StatusBadRequest, "token_expired", err.Error())
	case errors.Is(err, votingerrors.ErrNominationNotFound),
		errors.Is(err, votingerrors.ErrVoteNotFound):
		writeVotingError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, votingerrors.ErrNominationNotEligible):
		writeVotingError(w, http.StatusConflict, "nomination_not_eligible", err.Error())
	case errors.Is(err, votingerrors.ErrCodeCollision),
		errors.Is(err, votingerrors.ErrConflict):
		writeVotingError(w, http.StatusConflict, "conflict", err.Error())
	default:
		writeVotingError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleGenerateTokens(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.authenticate(w, r, entities.RoleAdmin); !ok {
		return
	}
	count, err := strconv.Atoi(strings.TrimSpace(r.URL.Query().Get("count")))
	if err != nil {
		writeVotingError(w, http.StatusBadRequest, "invalid_request", "count query parameter is required")
		return
	}
	req := votinghttp.GenerateTokensRequest{Count: count}
	if raw := strings.TrimSpace(r.URL.Query().Get("validity_days")); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil {
			writeVotingError(w, http.StatusBadRequest, "invalid_request", "validity_days must be an integer")
			return
		}
		req.ValidityDays = days
	}
	resp, err := s.voting.Handler.GenerateTokensHandler(r.Context(), req)
	if err != nil {
		writeVotingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

// Vote casting is public by design; the single-use token is the credential.
func (s *Server) handleCastVote(w http.ResponseWriter, r *http.Request) {
	var req votinghttp.CastVoteRequest
	if !s.decodeJSON(w, r, &req, writeVotingError) {
		return
	}
	resp, err := s.voting.Handler.CastVoteHandler(
		r.Context(),
		resolveClientIP(r),
		r.UserAgent(),
		req,
	)
	if err != nil {
		writeVotingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleValidateToken(w http.ResponseWriter, r *http.Request) {
	var req votinghttp.ValidateTokenRequest
	if !s.decodeJSON(w, r, &req, writeVotingError) {
		return
	}
	code := strings.TrimSpace(req.Code)
	if code == "" {
		writeVotingError(w, http.StatusBadRequest, "invalid_request", "token is required")
		return
	}
	resp, err := s.voting.Handler.ValidateTokenHandler(r.Context(), code)
	if err != nil {
		writeVotingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleNominationBoard(w http.ResponseWriter, r *http.Request) {
	resp, err := s.voting.Handler.NominationBoardHandler(r.Context())
	if err != nil {
		writeVotingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleVotingResults(w http.ResponseWriter, r *http.Request) {
	nominationID := strings.TrimSpace(r.PathValue("nomination_id"))
	if nominationID == "" {
		writeVotingError(w, http.StatusBadRequest, "invalid_request", "nomination_id is required")
		return
	}
	resp, err := s.voting.Handler.VotingResultsHandler(r.Context(), nominationID)
	if err != nil {
		writeVotingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
