package httpserver

import (
	"net/http"
	"strings"

	nominationhttp "ignite/contexts/competition/nomination-service/transport/http"
	"ignite/contexts/identity-access/account-service/domain/entities"
)

func (s *Server) handleEvaluatorNominations(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.authenticate(w, r, entities.RoleEvaluator, entities.RoleAdmin); !ok {
		return
	}
	resp, err := s.nominations.Handler.AllNominationsHandler(r.Context())
	if err != nil {
		writeNominationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleEvaluatorNomination(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.authenticate(w, r, entities.RoleEvaluator, entities.RoleAdmin); !ok {
		return
	}
	nominationID := strings.TrimSpace(r.PathValue("nomination_id"))
	if nominationID == "" {
		writeNominationError(w, http.StatusBadRequest, "invalid_request", "nomination_id is required")
		return
	}
	resp, err := s.nominations.Handler.NominationHandler(r.Context(), nominationID)
	if err != nil {
		writeNominationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleScoreNomination(w http.ResponseWriter, r *http.Request) {
	identity, ok := s.authenticate(w, r, entities.RoleEvaluator)
	if !ok {
		return
	}
	nominationID := strings.TrimSpace(r.PathValue("nomination_id"))
	if nominationID == "" {
		writeNominationError(w, http.StatusBadRequest, "invalid_request", "nomination_id is required")
		return
	}
	var req nominationhttp.ScoreNominationRequest
	if !s.decodeJSON(w, r, &req, writeNominationError) {
		return
	}
	resp, err := s.nominations.Handler.ScoreNominationHandler(r.Context(), identity.UserID, nominationID, req)
	if err != nil {
		writeNominationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
