package httpserver

import (
	"errors"
	"net/http"

	nominationerrors "ignite/contexts/competition/nomination-service/domain/errors"
	nominationhttp "ignite/contexts/competition/nomination-service/transport/http"
	progressionerrors "ignite/contexts/competition/progression-service/domain/errors"
	progressionhttp "ignite/contexts/competition/progression-service/transport/http"
	"ignite/contexts/identity-access/account-service/domain/entities"
)

func writeProgressionError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, progressionhttp.ErrorResponse{Code: code, Message: message})
}

func writeProgressionDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, progressionerrors.ErrInvalidRegistrationInput),
		errors.Is(err, progressionerrors.ErrInvalidLevel),
		errors.Is(err, progressionerrors.ErrInvalidCategory),
		errors.Is(err, progressionerrors.ErrInvalidWinners):
		writeProgressionError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, progressionerrors.ErrRegistrationNotFound):
		writeProgressionError(w, http.StatusNotFound, "registration_not_found", err.Error())
	case errors.Is(err, progressionerrors.ErrConflict):
		writeProgressionError(w, http.StatusConflict, "conflict", err.Error())
	default:
		writeProgressionError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeNominationError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, nominationhttp.ErrorResponse{Code: code, Message: message})
}

func writeNominationDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, nominationerrors.ErrInvalidNominationInput),
		errors.Is(err, nominationerrors.ErrInvalidCategory),
		errors.Is(err, nominationerrors.ErrInvalidStatus),
		errors.Is(err, nominationerrors.ErrInvalidScore):
		writeNominationError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, nominationerrors.ErrNominationNotFound):
		writeNominationError(w, http.StatusNotFound, "nomination_not_found", err.Error())
	case errors.Is(err, nominationerrors.ErrStatusLocked),
		errors.Is(err, nominationerrors.ErrConflict):
		writeNominationError(w, http.StatusConflict, "conflict", err.Error())
	case errors.Is(err, nominationerrors.ErrForbidden):
		writeNominationError(w, http.StatusForbidden, "forbidden", err.Error())
	default:
		writeNominationError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleSchoolDashboard(w http.ResponseWriter, r *http.Request) {
	identity, ok := s.authenticate(w, r, entities.RoleSchool)
	if !ok {
		return
	}
	resp, err := s.progression.Handler.SchoolDashboardHandler(r.Context(), identity.UserID)
	if err != nil {
		writeProgressionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRegisterParticipants(w http.ResponseWriter, r *http.Request) {
	identity, ok := s.authenticate(w, r, entities.RoleSchool)
	if !ok {
		return
	}
	var req progressionhttp.RegisterParticipantsRequest
	if !s.decodeJSON(w, r, &req, writeProgressionError) {
		return
	}
	resp, err := s.progression.Handler.RegisterParticipantsHandler(r.Context(), identity.UserID, req)
	if err != nil {
		writeProgressionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSchoolParticipants(w http.ResponseWriter, r *http.Request) {
	identity, ok := s.authenticate(w, r, entities.RoleSchool)
	if !ok {
		return
	}
	resp, err := s.progression.Handler.SchoolParticipantsHandler(r.Context(), identity.UserID)
	if err != nil {
		writeProgressionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSubmitWinners(w http.ResponseWriter, r *http.Request) {
	identity, ok := s.authenticate(w, r, entities.RoleSchool)
	if !ok {
		return
	}
	var req progressionhttp.SubmitWinnersRequest
	if !s.decodeJSON(w, r, &req, writeProgressionError) {
		return
	}
	resp, err := s.progression.Handler.SubmitWinnersHandler(r.Context(), identity.UserID, req)
	if err != nil {
		writeProgressionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleNominateTeacher(w http.ResponseWriter, r *http.Request) {
	identity, ok := s.authenticate(w, r, entities.RoleSchool)
	if !ok {
		return
	}
	var req nominationhttp.NominateTeacherRequest
	if !s.decodeJSON(w, r, &req, writeNominationError) {
		return
	}
	resp, err := s.nominations.Handler.NominateTeacherHandler(r.Context(), identity.UserID, req)
	if err != nil {
		writeNominationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleSchoolNominations(w http.ResponseWriter, r *http.Request) {
	identity, ok := s.authenticate(w, r, entities.RoleSchool)
	if !ok {
		return
	}
	resp, err := s.nominations.Handler.SchoolNominationsHandler(r.Context(), identity.UserID)
	if err != nil {
		writeNominationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
