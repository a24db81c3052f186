package unit

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	votingservice "ignite/contexts/competition/voting-service"
	"ignite/contexts/competition/voting-service/domain/entities"
	domainerrors "ignite/contexts/competition/voting-service/domain/errors"
	"ignite/contexts/competition/voting-service/ports"
	httptransport "ignite/contexts/competition/voting-service/transport/http"
)

func seedVotingToken(code string, expiresAt time.Time) entities.VotingToken {
	now := time.Now().UTC()
	return entities.VotingToken{
		TokenID:   "token-" + code,
		Code:      code,
		ExpiresAt: expiresAt,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func openNomination(id string, votes int) ports.NominationSummary {
	return ports.NominationSummary{
		NominationID: id,
		SchoolID:     "school-1",
		TeacherName:  "A Teacher",
		Category:     "inspirational-teaching",
		AwardType:    "best-teacher",
		SchoolName:   "Sunrise School",
		District:     "North",
		PublicVotes:  votes,
		Status:       "nominated",
	}
}

func TestGenerateTokensBatch(t *testing.T) {
	module := votingservice.NewInMemoryModule(nil, nil)

	resp, err := module.Handler.GenerateTokensHandler(context.Background(), httptransport.GenerateTokensRequest{
		Count: 25,
	})
	if err != nil {
		t.Fatalf("generate tokens failed: %v", err)
	}
	if resp.Count != 25 || len(resp.Tokens) != 25 {
		t.Fatalf("expected 25 tokens, got count=%d len=%d", resp.Count, len(resp.Tokens))
	}

	seen := make(map[string]struct{}, len(resp.Tokens))
	for _, token := range resp.Tokens {
		if len(token.Code) != entities.CodeLength {
			t.Fatalf("expected %d-char code, got %q", entities.CodeLength, token.Code)
		}
		if token.Code != entities.NormalizeCode(token.Code) {
			t.Fatalf("expected uppercase code, got %q", token.Code)
		}
		if _, dup := seen[token.Code]; dup {
			t.Fatalf("duplicate code %q in batch", token.Code)
		}
		seen[token.Code] = struct{}{}
		if token.IsUsed {
			t.Fatalf("freshly issued token %q marked used", token.Code)
		}
	}
}

func TestGenerateTokensRejectsBadBatchSize(t *testing.T) {
	module := votingservice.NewInMemoryModule(nil, nil)

	for _, count := range []int{0, -5, 1001} {
		_, err := module.Handler.GenerateTokensHandler(context.Background(), httptransport.GenerateTokensRequest{
			Count: count,
		})
		if !errors.Is(err, domainerrors.ErrInvalidTokenBatch) {
			t.Fatalf("count=%d: expected ErrInvalidTokenBatch, got %v", count, err)
		}
	}
}

func TestCastVoteSpendsTokenAndBumpsTally(t *testing.T) {
	future := time.Now().UTC().Add(24 * time.Hour)
	module := votingservice.NewInMemoryModule([]entities.VotingToken{
		seedVotingToken("AAAA1111", future),
	}, nil)
	module.Store.SetNomination(openNomination("nomination-1", 4))

	resp, err := module.Handler.CastVoteHandler(context.Background(), "10.0.0.1", "unit-test", httptransport.CastVoteRequest{
		Code:         "aaaa1111",
		NominationID: "nomination-1",
	})
	if err != nil {
		t.Fatalf("cast vote failed: %v", err)
	}
	if resp.PublicVotes != 5 {
		t.Fatalf("expected tally 5, got %d", resp.PublicVotes)
	}

	validate, err := module.Handler.ValidateTokenHandler(context.Background(), "AAAA1111")
	if err != nil {
		t.Fatalf("validate after cast failed: %v", err)
	}
	if validate.Valid || validate.Status != "used" {
		t.Fatalf("expected used verdict, got valid=%v status=%s", validate.Valid, validate.Status)
	}

	_, err = module.Handler.CastVoteHandler(context.Background(), "10.0.0.1", "unit-test", httptransport.CastVoteRequest{
		Code:         "AAAA1111",
		NominationID: "nomination-1",
	})
	if !errors.Is(err, domainerrors.ErrTokenAlreadyUsed) {
		t.Fatalf("expected ErrTokenAlreadyUsed on replay, got %v", err)
	}

	tally, err := module.Handler.VotingResultsHandler(context.Background(), "nomination-1")
	if err != nil {
		t.Fatalf("results failed: %v", err)
	}
	if tally.PublicVotes != 5 {
		t.Fatalf("replay must not change tally, got %d", tally.PublicVotes)
	}
}

func TestCastVoteRejectsUnknownAndExpiredTokens(t *testing.T) {
	past := time.Now().UTC().Add(-time.Hour)
	module := votingservice.NewInMemoryModule([]entities.VotingToken{
		seedVotingToken("OLDT0KEN", past),
	}, nil)
	module.Store.SetNomination(openNomination("nomination-1", 0))

	_, err := module.Handler.CastVoteHandler(context.Background(), "", "", httptransport.CastVoteRequest{
		Code:         "NOSUCHCD",
		NominationID: "nomination-1",
	})
	if !errors.Is(err, domainerrors.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}

	_, err = module.Handler.CastVoteHandler(context.Background(), "", "", httptransport.CastVoteRequest{
		Code:         "OLDT0KEN",
		NominationID: "nomination-1",
	})
	if !errors.Is(err, domainerrors.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestCastVoteRequiresOpenNomination(t *testing.T) {
	future := time.Now().UTC().Add(24 * time.Hour)
	module := votingservice.NewInMemoryModule([]entities.VotingToken{
		seedVotingToken("BBBB2222", future),
	}, nil)
	closed := openNomination("nomination-2", 0)
	closed.Status = "winner"
	module.Store.SetNomination(closed)

	_, err := module.Handler.CastVoteHandler(context.Background(), "", "", httptransport.CastVoteRequest{
		Code:         "BBBB2222",
		NominationID: "nomination-2",
	})
	if !errors.Is(err, domainerrors.ErrNominationNotEligible) {
		t.Fatalf("expected ErrNominationNotEligible, got %v", err)
	}

	verdict, err := module.Handler.ValidateTokenHandler(context.Background(), "BBBB2222")
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if !verdict.Valid {
		t.Fatalf("token must stay usable after rejected cast, got status=%s", verdict.Status)
	}
}

func TestValidateTokenVerdicts(t *testing.T) {
	future := time.Now().UTC().Add(24 * time.Hour)
	past := time.Now().UTC().Add(-time.Hour)
	used := seedVotingToken("USEDUSED", future)
	used.IsUsed = true
	expiredUsed := seedVotingToken("EXPDUSED", past)
	expiredUsed.IsUsed = true

	module := votingservice.NewInMemoryModule([]entities.VotingToken{
		seedVotingToken("FRESHTOK", future),
		used,
		expiredUsed,
	}, nil)

	cases := []struct {
		code   string
		valid  bool
		status string
	}{
		{"FRESHTOK", true, "valid"},
		{"freshtok", true, "valid"},
		{"USEDUSED", false, "used"},
		{"MISSING1", false, "invalid"},
		// Expiry wins over use state.
		{"EXPDUSED", false, "expired"},
	}
	for _, tc := range cases {
		resp, err := module.Handler.ValidateTokenHandler(context.Background(), tc.code)
		if err != nil {
			t.Fatalf("validate %q failed: %v", tc.code, err)
		}
		if resp.Valid != tc.valid || resp.Status != tc.status {
			t.Fatalf("code %q: expected (%v,%s), got (%v,%s)", tc.code, tc.valid, tc.status, resp.Valid, resp.Status)
		}
	}
}

func TestConcurrentCastsSpendTokenOnce(t *testing.T) {
	future := time.Now().UTC().Add(24 * time.Hour)
	module := votingservice.NewInMemoryModule([]entities.VotingToken{
		seedVotingToken("RACE0001", future),
	}, nil)
	module.Store.SetNomination(openNomination("nomination-1", 0))

	const voters = 32
	var wg sync.WaitGroup
	results := make(chan error, voters)
	for i := 0; i < voters; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := module.Handler.CastVoteHandler(context.Background(), "10.0.0.2", "race-test", httptransport.CastVoteRequest{
				Code:         "RACE0001",
				NominationID: "nomination-1",
			})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, domainerrors.ErrTokenAlreadyUsed):
		default:
			t.Fatalf("unexpected cast error: %v", err)
		}
	}
	if succeeded != 1 {
		t.Fatalf("expected exactly one successful cast, got %d", succeeded)
	}

	tally, err := module.Handler.VotingResultsHandler(context.Background(), "nomination-1")
	if err != nil {
		t.Fatalf("results failed: %v", err)
	}
	if tally.PublicVotes != 1 {
		t.Fatalf("expected tally 1 after race, got %d", tally.PublicVotes)
	}
}

func TestNominationBoardTruncatesAchievements(t *testing.T) {
	module := votingservice.NewInMemoryModule(nil, nil)

	long := make([]rune, 0, 260)
	for i := 0; i < 260; i++ {
		long = append(long, 'a')
	}
	item := openNomination("nomination-long", 2)
	item.Achievements = string(long)
	module.Store.SetNomination(item)

	closed := openNomination("nomination-closed", 9)
	closed.Status = "rejected"
	module.Store.SetNomination(closed)

	resp, err := module.Handler.NominationBoardHandler(context.Background())
	if err != nil {
		t.Fatalf("board failed: %v", err)
	}
	if len(resp.Nominations) != 1 {
		t.Fatalf("expected only open nominations on board, got %d", len(resp.Nominations))
	}
	got := resp.Nominations[0].Achievements
	if len([]rune(got)) != 203 || got[len(got)-3:] != "..." {
		t.Fatalf("expected 200-rune preview with ellipsis, got %d runes", len([]rune(got)))
	}
}
