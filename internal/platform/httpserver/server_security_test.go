package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	nominationservice "ignite/contexts/competition/nomination-service"
	progressionservice "ignite/contexts/competition/progression-service"
	votingservice "ignite/contexts/competition/voting-service"
	votingentities "ignite/contexts/competition/voting-service/domain/entities"
	votingports "ignite/contexts/competition/voting-service/ports"
	accountservice "ignite/contexts/identity-access/account-service"
	admindashboardservice "ignite/contexts/internal-ops/admin-dashboard-service"
)

type testFixture struct {
	server *Server
	voting votingservice.Module
}

func newTestFixture(seedAdmin SeedAdmin) testFixture {
	voting := votingservice.NewInMemoryModule(nil, slog.Default())
	server := New(
		accountservice.NewInMemoryModule("test-secret", slog.Default()),
		progressionservice.NewInMemoryModule(nil, slog.Default()),
		nominationservice.NewInMemoryModule(nil, slog.Default()),
		voting,
		admindashboardservice.NewInMemoryModule(slog.Default()),
		seedAdmin,
		slog.Default(),
		":0",
	)
	return testFixture{server: server, voting: voting}
}

func (f testFixture) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	f.server.mux.ServeHTTP(rr, req)
	return rr
}

func (f testFixture) registerAndLoginSchool(t *testing.T) string {
	t.Helper()
	rr := f.do(t, http.MethodPost, "/api/auth/school/register", "", map[string]any{
		"school_name":            "Sunrise School",
		"authorized_person_name": "R. Gowda",
		"email":                  "office@sunrise.example",
		"password":               "s3cret-pass",
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}
	rr = f.do(t, http.MethodPost, "/api/auth/school/login", "", map[string]any{
		"email":    "office@sunrise.example",
		"password": "s3cret-pass",
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	var login struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &login); err != nil || login.AccessToken == "" {
		t.Fatalf("login response missing token: %s", rr.Body.String())
	}
	return login.AccessToken
}

func TestProtectedRoutesRequireBearerToken(t *testing.T) {
	fixture := newTestFixture(SeedAdmin{})

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/auth/profile"},
		{http.MethodGet, "/api/school/dashboard"},
		{http.MethodPost, "/api/school/participants/register"},
		{http.MethodPost, "/api/school/teacher-nominations"},
		{http.MethodPost, "/api/voting/generate-tokens?count=5"},
		{http.MethodGet, "/api/admin/dashboard"},
		{http.MethodPost, "/api/admin/evaluators"},
		{http.MethodGet, "/api/evaluator/nominations"},
	}
	for _, route := range routes {
		rr := fixture.do(t, route.method, route.path, "", nil)
		if rr.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401, got %d body=%s", route.method, route.path, rr.Code, rr.Body.String())
		}
	}
}

func TestMalformedTokenIsRejected(t *testing.T) {
	fixture := newTestFixture(SeedAdmin{})

	rr := fixture.do(t, http.MethodGet, "/api/school/dashboard", "not-a-real-token", nil)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
	var resp struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil || resp.Code != "invalid_token" {
		t.Fatalf("expected invalid_token error, got %s", rr.Body.String())
	}
}

func TestSchoolTokenCannotReachAdminRoutes(t *testing.T) {
	fixture := newTestFixture(SeedAdmin{})
	token := fixture.registerAndLoginSchool(t)

	for _, path := range []string{
		"/api/admin/dashboard",
		"/api/admin/all-participants",
		"/api/admin/all-nominations",
	} {
		rr := fixture.do(t, http.MethodGet, path, token, nil)
		if rr.Code != http.StatusForbidden {
			t.Fatalf("%s: expected 403 for school token, got %d body=%s", path, rr.Code, rr.Body.String())
		}
	}
	rr := fixture.do(t, http.MethodPost, "/api/voting/generate-tokens?count=5", token, nil)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("generate-tokens: expected 403 for school token, got %d", rr.Code)
	}
}

func TestPublicVotingRoutesNeedNoAuth(t *testing.T) {
	fixture := newTestFixture(SeedAdmin{})

	rr := fixture.do(t, http.MethodGet, "/api/voting/nominations", "", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("nomination board: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	rr = fixture.do(t, http.MethodPost, "/api/voting/validate-token", "", map[string]any{"token": ""})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("validate with blank token: expected 400, got %d", rr.Code)
	}
}

func TestSeedAdminDisabledWithoutCredentials(t *testing.T) {
	fixture := newTestFixture(SeedAdmin{})

	rr := fixture.do(t, http.MethodPost, "/api/admin/seed-admin", "", nil)
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 when seed credentials are unset, got %d", rr.Code)
	}
}

func TestSeededAdminCanRunVotingRound(t *testing.T) {
	fixture := newTestFixture(SeedAdmin{
		Name:     "Competition Admin",
		Email:    "admin@ignite.local",
		Password: "admin123",
	})

	rr := fixture.do(t, http.MethodPost, "/api/admin/seed-admin", "", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("seed admin: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr = fixture.do(t, http.MethodPost, "/api/auth/admin/login", "", map[string]any{
		"email":    "admin@ignite.local",
		"password": "admin123",
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("admin login: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	var login struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &login); err != nil || login.AccessToken == "" {
		t.Fatalf("admin login response missing token: %s", rr.Body.String())
	}

	rr = fixture.do(t, http.MethodPost, "/api/voting/generate-tokens?count=2", login.AccessToken, nil)
	if rr.Code != http.StatusCreated {
		t.Fatalf("generate tokens: expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}
	var batch struct {
		Tokens []struct {
			Code string `json:"code"`
		} `json:"tokens"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &batch); err != nil || len(batch.Tokens) != 2 {
		t.Fatalf("expected 2 tokens, got %s", rr.Body.String())
	}

	fixture.voting.Store.SetNomination(votingports.NominationSummary{
		NominationID: "nomination-1",
		SchoolID:     "school-1",
		TeacherName:  "A. Rao",
		Category:     "inspirational-teaching",
		AwardType:    "best-teacher",
		Status:       "nominated",
	})

	rr = fixture.do(t, http.MethodPost, "/api/voting/cast-vote", "", map[string]any{
		"token":         batch.Tokens[0].Code,
		"nomination_id": "nomination-1",
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("cast vote: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	var cast struct {
		PublicVotes int `json:"public_votes"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &cast); err != nil || cast.PublicVotes != 1 {
		t.Fatalf("expected tally of 1, got %s", rr.Body.String())
	}

	rr = fixture.do(t, http.MethodPost, "/api/voting/cast-vote", "", map[string]any{
		"token":         batch.Tokens[0].Code,
		"nomination_id": "nomination-1",
	})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("replayed token: expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestVotingErrorStatuses(t *testing.T) {
	fixture := newTestFixture(SeedAdmin{})
	fixture.voting.Store.SetNomination(votingports.NominationSummary{
		NominationID: "nomination-1",
		SchoolID:     "school-1",
		TeacherName:  "A. Rao",
		Category:     "inspirational-teaching",
		AwardType:    "best-teacher",
		Status:       "nominated",
	})
	now := time.Now().UTC()
	if err := fixture.voting.Store.IssueTokens(context.Background(), []votingentities.VotingToken{
		{TokenID: "token-live", Code: "LIVETOKN", ExpiresAt: now.Add(24 * time.Hour), CreatedAt: now, UpdatedAt: now},
		{TokenID: "token-stale", Code: "STALETOK", ExpiresAt: now.Add(-time.Hour), CreatedAt: now, UpdatedAt: now},
	}); err != nil {
		t.Fatalf("seed tokens: %v", err)
	}

	cast := func(code string) *httptest.ResponseRecorder {
		return fixture.do(t, http.MethodPost, "/api/voting/cast-vote", "", map[string]any{
			"token":         code,
			"nomination_id": "nomination-1",
		})
	}

	if rr := cast("NOSUCHTK"); rr.Code != http.StatusNotFound {
		t.Fatalf("unknown token: expected 404, got %d body=%s", rr.Code, rr.Body.String())
	}
	if rr := cast("STALETOK"); rr.Code != http.StatusBadRequest {
		t.Fatalf("expired token: expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
	if rr := cast("LIVETOKN"); rr.Code != http.StatusOK {
		t.Fatalf("first cast: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	if rr := cast("LIVETOKN"); rr.Code != http.StatusBadRequest {
		t.Fatalf("used token: expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr := fixture.do(t, http.MethodPost, "/api/voting/validate-token", "", map[string]any{"token": "STALETOK"})
	if rr.Code != http.StatusOK {
		t.Fatalf("validate expired token: expected 200 verdict, got %d body=%s", rr.Code, rr.Body.String())
	}
	var verdict struct {
		Valid  bool   `json:"valid"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &verdict); err != nil || verdict.Valid || verdict.Status != "expired" {
		t.Fatalf("expected expired verdict, got %s", rr.Body.String())
	}
}
