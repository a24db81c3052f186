package httpserver

import (
	"net/http"
	"strings"

	nominationhttp "ignite/contexts/competition/nomination-service/transport/http"
	"ignite/contexts/identity-access/account-service/domain/entities"
	accounthttp "ignite/contexts/identity-access/account-service/transport/http"
	dashboardhttp "ignite/contexts/internal-ops/admin-dashboard-service/transport/http"
)

func writeDashboardError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, dashboardhttp.ErrorResponse{Code: code, Message: message})
}

func (s *Server) handleAdminDashboard(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.authenticate(w, r, entities.RoleAdmin); !ok {
		return
	}
	resp, err := s.dashboard.Handler.StatsHandler(r.Context())
	if err != nil {
		writeDashboardError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListEvaluators(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.authenticate(w, r, entities.RoleAdmin); !ok {
		return
	}
	resp, err := s.accounts.Handler.ListEvaluatorsHandler(r.Context())
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateEvaluator(w http.ResponseWriter, r *http.Request) {
	identity, ok := s.authenticate(w, r, entities.RoleAdmin)
	if !ok {
		return
	}
	var req accounthttp.CreateEvaluatorRequest
	if !s.decodeJSON(w, r, &req, writeAccountError) {
		return
	}
	resp, err := s.accounts.Handler.CreateEvaluatorHandler(r.Context(), identity.UserID, req)
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleAllParticipants(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.authenticate(w, r, entities.RoleAdmin); !ok {
		return
	}
	resp, err := s.dashboard.Handler.AllParticipantsHandler(r.Context())
	if err != nil {
		writeDashboardError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAllNominations(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.authenticate(w, r, entities.RoleAdmin); !ok {
		return
	}
	resp, err := s.dashboard.Handler.AllNominationsHandler(r.Context())
	if err != nil {
		writeDashboardError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateNominationStatus(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.authenticate(w, r, entities.RoleAdmin); !ok {
		return
	}
	nominationID := strings.TrimSpace(r.PathValue("nomination_id"))
	if nominationID == "" {
		writeNominationError(w, http.StatusBadRequest, "invalid_request", "nomination_id is required")
		return
	}
	var req nominationhttp.UpdateStatusRequest
	if !s.decodeJSON(w, r, &req, writeNominationError) {
		return
	}
	resp, err := s.nominations.Handler.UpdateStatusHandler(r.Context(), nominationID, req)
	if err != nil {
		writeNominationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
