package unit

import (
	"context"
	"errors"
	"testing"

	nominationservice "ignite/contexts/competition/nomination-service"
	domainerrors "ignite/contexts/competition/nomination-service/domain/errors"
	httptransport "ignite/contexts/competition/nomination-service/transport/http"
)

func validNominationRequest() httptransport.NominateTeacherRequest {
	return httptransport.NominateTeacherRequest{
		TeacherName:     "Meera Sharma",
		Category:        "inspirational-teaching",
		AwardType:       "best-teacher",
		Email:           "meera@school.example",
		ExperienceYears: 12,
		CurrentPosition: "Senior Art Teacher",
		Qualifications:  "MA Fine Arts",
		SubjectsTaught:  []string{"art", "craft"},
		Achievements:    "State award 2021",
	}
}

func TestNominateTeacherCreatesNominatedRecord(t *testing.T) {
	module := nominationservice.NewInMemoryModule(nil, nil)

	resp, err := module.Handler.NominateTeacherHandler(context.Background(), "school-1", validNominationRequest())
	if err != nil {
		t.Fatalf("nominate failed: %v", err)
	}
	if resp.NominationID == "" {
		t.Fatalf("expected nomination id")
	}
	if resp.Status != "nominated" {
		t.Fatalf("expected status nominated, got %s", resp.Status)
	}

	list, err := module.Handler.SchoolNominationsHandler(context.Background(), "school-1")
	if err != nil {
		t.Fatalf("school nominations failed: %v", err)
	}
	if list.Count != 1 || len(list.Nominations) != 1 {
		t.Fatalf("expected one nomination, got count=%d", list.Count)
	}
	if list.Nominations[0].PublicVotes != 0 {
		t.Fatalf("new nomination must start with zero votes")
	}
}

func TestNominateTeacherValidation(t *testing.T) {
	module := nominationservice.NewInMemoryModule(nil, nil)

	missingName := validNominationRequest()
	missingName.TeacherName = "  "
	if _, err := module.Handler.NominateTeacherHandler(context.Background(), "school-1", missingName); !errors.Is(err, domainerrors.ErrInvalidNominationInput) {
		t.Fatalf("expected ErrInvalidNominationInput for blank name, got %v", err)
	}

	badCategory := validNominationRequest()
	badCategory.Category = "best-at-everything"
	if _, err := module.Handler.NominateTeacherHandler(context.Background(), "school-1", badCategory); !errors.Is(err, domainerrors.ErrInvalidCategory) {
		t.Fatalf("expected ErrInvalidCategory, got %v", err)
	}

	negativeExperience := validNominationRequest()
	negativeExperience.ExperienceYears = -1
	if _, err := module.Handler.NominateTeacherHandler(context.Background(), "school-1", negativeExperience); !errors.Is(err, domainerrors.ErrInvalidNominationInput) {
		t.Fatalf("expected ErrInvalidNominationInput for negative experience, got %v", err)
	}
}

func TestScoreNominationRecomputesMean(t *testing.T) {
	module := nominationservice.NewInMemoryModule(nil, nil)
	created, err := module.Handler.NominateTeacherHandler(context.Background(), "school-1", validNominationRequest())
	if err != nil {
		t.Fatalf("nominate failed: %v", err)
	}

	first, err := module.Handler.ScoreNominationHandler(context.Background(), "evaluator-1", created.NominationID, httptransport.ScoreNominationRequest{Score: 80})
	if err != nil {
		t.Fatalf("first score failed: %v", err)
	}
	if first.FinalScore == nil || *first.FinalScore != 80 {
		t.Fatalf("expected final score 80, got %v", first.FinalScore)
	}

	second, err := module.Handler.ScoreNominationHandler(context.Background(), "evaluator-2", created.NominationID, httptransport.ScoreNominationRequest{Score: 60})
	if err != nil {
		t.Fatalf("second score failed: %v", err)
	}
	if second.FinalScore == nil || *second.FinalScore != 70 {
		t.Fatalf("expected mean 70, got %v", second.FinalScore)
	}
	if len(second.EvaluatorScores) != 2 {
		t.Fatalf("expected two evaluator scores, got %d", len(second.EvaluatorScores))
	}

	// Re-scoring by the same evaluator overwrites, not appends.
	rescored, err := module.Handler.ScoreNominationHandler(context.Background(), "evaluator-2", created.NominationID, httptransport.ScoreNominationRequest{Score: 100})
	if err != nil {
		t.Fatalf("rescore failed: %v", err)
	}
	if len(rescored.EvaluatorScores) != 2 {
		t.Fatalf("rescore must not add a score entry, got %d", len(rescored.EvaluatorScores))
	}
	if rescored.FinalScore == nil || *rescored.FinalScore != 90 {
		t.Fatalf("expected mean 90 after rescore, got %v", rescored.FinalScore)
	}
}

func TestScoreNominationBounds(t *testing.T) {
	module := nominationservice.NewInMemoryModule(nil, nil)
	created, err := module.Handler.NominateTeacherHandler(context.Background(), "school-1", validNominationRequest())
	if err != nil {
		t.Fatalf("nominate failed: %v", err)
	}

	for _, score := range []int{-1, 101} {
		_, err := module.Handler.ScoreNominationHandler(context.Background(), "evaluator-1", created.NominationID, httptransport.ScoreNominationRequest{Score: score})
		if !errors.Is(err, domainerrors.ErrInvalidScore) {
			t.Fatalf("score=%d: expected ErrInvalidScore, got %v", score, err)
		}
	}

	if _, err := module.Handler.ScoreNominationHandler(context.Background(), "evaluator-1", "missing-id", httptransport.ScoreNominationRequest{Score: 50}); !errors.Is(err, domainerrors.ErrNominationNotFound) {
		t.Fatalf("expected ErrNominationNotFound, got %v", err)
	}
}

func TestUpdateStatusTransitions(t *testing.T) {
	module := nominationservice.NewInMemoryModule(nil, nil)
	created, err := module.Handler.NominateTeacherHandler(context.Background(), "school-1", validNominationRequest())
	if err != nil {
		t.Fatalf("nominate failed: %v", err)
	}

	shortlisted, err := module.Handler.UpdateStatusHandler(context.Background(), created.NominationID, httptransport.UpdateStatusRequest{Status: "shortlisted"})
	if err != nil {
		t.Fatalf("shortlist failed: %v", err)
	}
	if shortlisted.Status != "shortlisted" {
		t.Fatalf("expected shortlisted, got %s", shortlisted.Status)
	}

	if _, err := module.Handler.UpdateStatusHandler(context.Background(), created.NominationID, httptransport.UpdateStatusRequest{Status: "champion"}); !errors.Is(err, domainerrors.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}

	winner, err := module.Handler.UpdateStatusHandler(context.Background(), created.NominationID, httptransport.UpdateStatusRequest{Status: "winner"})
	if err != nil {
		t.Fatalf("winner transition failed: %v", err)
	}
	if winner.Status != "winner" {
		t.Fatalf("expected winner, got %s", winner.Status)
	}

	// Winner is terminal.
	if _, err := module.Handler.UpdateStatusHandler(context.Background(), created.NominationID, httptransport.UpdateStatusRequest{Status: "nominated"}); !errors.Is(err, domainerrors.ErrStatusLocked) {
		t.Fatalf("expected ErrStatusLocked, got %v", err)
	}
}
