package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	nominationservice "ignite/contexts/competition/nomination-service"
	progressionservice "ignite/contexts/competition/progression-service"
	votingservice "ignite/contexts/competition/voting-service"
	accountservice "ignite/contexts/identity-access/account-service"
	accounterrors "ignite/contexts/identity-access/account-service/domain/errors"
	"ignite/contexts/identity-access/account-service/domain/entities"
	admindashboardservice "ignite/contexts/internal-ops/admin-dashboard-service"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "ignite/internal/platform/httpserver/docs"
)

// SeedAdmin holds the bootstrap credentials used by the seed-admin endpoint.
type SeedAdmin struct {
	Name     string
	Email    string
	Password string
}

type Server struct {
	mux         *http.ServeMux
	logger      *slog.Logger
	addr        string
	accounts    accountservice.Module
	progression progressionservice.Module
	nominations nominationservice.Module
	voting      votingservice.Module
	dashboard   admindashboardservice.Module
	seedAdmin   SeedAdmin
}

func New(
	accounts accountservice.Module,
	progression progressionservice.Module,
	nominations nominationservice.Module,
	voting votingservice.Module,
	dashboard admindashboardservice.Module,
	seedAdmin SeedAdmin,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:         http.NewServeMux(),
		logger:      logger,
		addr:        addr,
		accounts:    accounts,
		progression: progression,
		nominations: nominations,
		voting:      voting,
		dashboard:   dashboard,
		seedAdmin:   seedAdmin,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("POST /api/auth/school/register", s.handleSchoolRegister)
	s.mux.HandleFunc("POST /api/auth/school/login", s.handleSchoolLogin)
	s.mux.HandleFunc("POST /api/auth/admin/login", s.handleAdminLogin)
	s.mux.HandleFunc("POST /api/auth/evaluator/login", s.handleEvaluatorLogin)
	s.mux.HandleFunc("GET /api/auth/profile", s.handleProfile)
	s.mux.HandleFunc("POST /api/auth/logout", s.handleLogout)

	s.mux.HandleFunc("GET /api/school/dashboard", s.handleSchoolDashboard)
	s.mux.HandleFunc("POST /api/school/participants/register", s.handleRegisterParticipants)
	s.mux.HandleFunc("GET /api/school/participants", s.handleSchoolParticipants)
	s.mux.HandleFunc("POST /api/school/participants/winners", s.handleSubmitWinners)
	s.mux.HandleFunc("POST /api/school/teacher-nominations", s.handleNominateTeacher)
	s.mux.HandleFunc("GET /api/school/teacher-nominations", s.handleSchoolNominations)

	s.mux.HandleFunc("POST /api/voting/generate-tokens", s.handleGenerateTokens)
	s.mux.HandleFunc("POST /api/voting/cast-vote", s.handleCastVote)
	s.mux.HandleFunc("POST /api/voting/validate-token", s.handleValidateToken)
	s.mux.HandleFunc("GET /api/voting/nominations", s.handleNominationBoard)
	s.mux.HandleFunc("GET /api/voting/results/{nomination_id}", s.handleVotingResults)

	s.mux.HandleFunc("GET /api/admin/dashboard", s.handleAdminDashboard)
	s.mux.HandleFunc("GET /api/admin/evaluators", s.handleListEvaluators)
	s.mux.HandleFunc("POST /api/admin/evaluators", s.handleCreateEvaluator)
	s.mux.HandleFunc("GET /api/admin/all-participants", s.handleAllParticipants)
	s.mux.HandleFunc("GET /api/admin/all-nominations", s.handleAllNominations)
	s.mux.HandleFunc("POST /api/admin/teacher-nominations/{nomination_id}/status", s.handleUpdateNominationStatus)
	s.mux.HandleFunc("POST /api/admin/seed-admin", s.handleSeedAdmin)

	s.mux.HandleFunc("GET /api/evaluator/nominations", s.handleEvaluatorNominations)
	s.mux.HandleFunc("GET /api/evaluator/nominations/{nomination_id}", s.handleEvaluatorNomination)
	s.mux.HandleFunc("POST /api/evaluator/nominations/{nomination_id}/score", s.handleScoreNomination)
}

// authenticate verifies the bearer token and checks the caller role when
// roles are given. A nil Identity return means the response is written.
func (s *Server) authenticate(
	w http.ResponseWriter,
	r *http.Request,
	roles ...entities.Role,
) (entities.Identity, bool) {
	authHeader := strings.TrimSpace(r.Header.Get("Authorization"))
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		writeAccountError(w, http.StatusUnauthorized, "unauthorized", "Authorization bearer token is required")
		return entities.Identity{}, false
	}

	identity, err := s.accounts.Handler.VerifyAccessToken(strings.TrimSpace(parts[1]))
	if err != nil {
		writeAccountError(w, http.StatusUnauthorized, "invalid_token", accounterrors.ErrTokenInvalid.Error())
		return entities.Identity{}, false
	}

	if len(roles) == 0 {
		return identity, true
	}
	for _, role := range roles {
		if identity.Role == role {
			return identity, true
		}
	}
	writeAccountError(w, http.StatusForbidden, "forbidden", accounterrors.ErrForbidden.Error())
	return entities.Identity{}, false
}

func (s *Server) decodeJSON(
	w http.ResponseWriter,
	r *http.Request,
	target any,
	writeError func(http.ResponseWriter, int, string, string),
) bool {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func resolveClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return forwarded
	}
	return r.RemoteAddr
}
