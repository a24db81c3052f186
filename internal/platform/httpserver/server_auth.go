package httpserver

import (
	"errors"
	"net/http"
	"strings"

	accounterrors "ignite/contexts/identity-access/account-service/domain/errors"
	"ignite/contexts/identity-access/account-service/domain/entities"
	accounthttp "ignite/contexts/identity-access/account-service/transport/http"
)

func writeAccountError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, accounthttp.ErrorResponse{Code: code, Message: message})
}

func writeAccountDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, accounterrors.ErrInvalidAccountInput):
		writeAccountError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, accounterrors.ErrEmailTaken):
		writeAccountError(w, http.StatusConflict, "email_taken", err.Error())
	case errors.Is(err, accounterrors.ErrInvalidCredentials):
		writeAccountError(w, http.StatusUnauthorized, "invalid_credentials", err.Error())
	case errors.Is(err, accounterrors.ErrAccountDisabled):
		writeAccountError(w, http.StatusForbidden, "account_disabled", err.Error())
	case errors.Is(err, accounterrors.ErrTokenInvalid):
		writeAccountError(w, http.StatusUnauthorized, "invalid_token", err.Error())
	case errors.Is(err, accounterrors.ErrAccountNotFound):
		writeAccountError(w, http.StatusNotFound, "account_not_found", err.Error())
	case errors.Is(err, accounterrors.ErrForbidden):
		writeAccountError(w, http.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, accounterrors.ErrConflict):
		writeAccountError(w, http.StatusConflict, "conflict", err.Error())
	default:
		writeAccountError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleSchoolRegister(w http.ResponseWriter, r *http.Request) {
	var req accounthttp.SchoolRegistrationRequest
	if !s.decodeJSON(w, r, &req, writeAccountError) {
		return
	}
	resp, err := s.accounts.Handler.RegisterSchoolHandler(r.Context(), req)
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request, role entities.Role) {
	var req accounthttp.LoginRequest
	if !s.decodeJSON(w, r, &req, writeAccountError) {
		return
	}
	resp, err := s.accounts.Handler.LoginHandler(r.Context(), role, req)
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSchoolLogin(w http.ResponseWriter, r *http.Request) {
	s.handleLogin(w, r, entities.RoleSchool)
}

func (s *Server) handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	s.handleLogin(w, r, entities.RoleAdmin)
}

func (s *Server) handleEvaluatorLogin(w http.ResponseWriter, r *http.Request) {
	s.handleLogin(w, r, entities.RoleEvaluator)
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	identity, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	resp, err := s.accounts.Handler.ProfileHandler(r.Context(), identity)
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Tokens are stateless; logout exists so clients have a uniform sign-out
// call and is a no-op server side.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.authenticate(w, r); !ok {
		return
	}
	writeJSON(w, http.StatusOK, accounthttp.LogoutResponse{Message: "logged out"})
}

func (s *Server) handleSeedAdmin(w http.ResponseWriter, r *http.Request) {
	if strings.TrimSpace(s.seedAdmin.Email) == "" {
		writeAccountError(w, http.StatusServiceUnavailable, "seed_disabled", "seed admin credentials are not configured")
		return
	}
	resp, err := s.accounts.Handler.SeedAdminHandler(
		r.Context(),
		s.seedAdmin.Name,
		s.seedAdmin.Email,
		s.seedAdmin.Password,
	)
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
