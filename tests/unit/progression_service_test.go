package unit

import (
	"context"
	"errors"
	"testing"

	progressionservice "ignite/contexts/competition/progression-service"
	domainerrors "ignite/contexts/competition/progression-service/domain/errors"
	httptransport "ignite/contexts/competition/progression-service/transport/http"
)

func TestRegisterParticipantsCreatesAndUpdates(t *testing.T) {
	module := progressionservice.NewInMemoryModule(nil, nil)

	first, err := module.Handler.RegisterParticipantsHandler(context.Background(), "school-1", httptransport.RegisterParticipantsRequest{
		Participants: map[string]int{
			"junior-artists": 10,
			"young-creators": 5,
			"pre-school":     0,
		},
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if len(first.Participants) != 2 {
		t.Fatalf("zero counts must be skipped, got %d outcomes", len(first.Participants))
	}
	for _, outcome := range first.Participants {
		if outcome.Action != "registered" {
			t.Fatalf("expected registered action, got %s", outcome.Action)
		}
	}

	second, err := module.Handler.RegisterParticipantsHandler(context.Background(), "school-1", httptransport.RegisterParticipantsRequest{
		Participants: map[string]int{"junior-artists": 12},
	})
	if err != nil {
		t.Fatalf("re-register failed: %v", err)
	}
	if len(second.Participants) != 1 || second.Participants[0].Action != "updated" {
		t.Fatalf("expected update outcome, got %+v", second.Participants)
	}
	if second.Participants[0].Count != 12 {
		t.Fatalf("expected replaced count 12, got %d", second.Participants[0].Count)
	}

	list, err := module.Handler.SchoolParticipantsHandler(context.Background(), "school-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if list.Count != 2 {
		t.Fatalf("re-registration must not add rows, got %d", list.Count)
	}
}

func TestRegisterParticipantsValidation(t *testing.T) {
	module := progressionservice.NewInMemoryModule(nil, nil)

	if _, err := module.Handler.RegisterParticipantsHandler(context.Background(), "school-1", httptransport.RegisterParticipantsRequest{}); !errors.Is(err, domainerrors.ErrInvalidRegistrationInput) {
		t.Fatalf("expected ErrInvalidRegistrationInput for empty body, got %v", err)
	}

	if _, err := module.Handler.RegisterParticipantsHandler(context.Background(), "school-1", httptransport.RegisterParticipantsRequest{
		Participants: map[string]int{"finger-painting": 3},
	}); !errors.Is(err, domainerrors.ErrInvalidCategory) {
		t.Fatalf("expected ErrInvalidCategory, got %v", err)
	}

	if _, err := module.Handler.RegisterParticipantsHandler(context.Background(), "school-1", httptransport.RegisterParticipantsRequest{
		Participants: map[string]int{"junior-artists": 3},
		Level:        "galaxy",
	}); !errors.Is(err, domainerrors.ErrInvalidLevel) {
		t.Fatalf("expected ErrInvalidLevel, got %v", err)
	}
}

func TestSubmitWinnersOpensNextLevelOnce(t *testing.T) {
	module := progressionservice.NewInMemoryModule(nil, nil)

	if _, err := module.Handler.RegisterParticipantsHandler(context.Background(), "school-1", httptransport.RegisterParticipantsRequest{
		Participants: map[string]int{"junior-artists": 10},
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	winners := []httptransport.WinnerItem{
		{Name: "Asha", Grade: "4", Age: 9, Theme: "forest", Position: 1, AdvancesToNext: true},
		{Name: "Kiran", Grade: "4", Age: 10, Theme: "rivers", Position: 2, AdvancesToNext: true},
		{Name: "Devi", Grade: "3", Age: 9, Theme: "birds", Position: 3},
	}
	resp, err := module.Handler.SubmitWinnersHandler(context.Background(), "school-1", httptransport.SubmitWinnersRequest{
		Category: "junior-artists",
		Level:    "school",
		Winners:  winners,
	})
	if err != nil {
		t.Fatalf("submit winners failed: %v", err)
	}
	if resp.WinnersCount != 3 || resp.AdvancingCount != 2 {
		t.Fatalf("expected 3 winners 2 advancing, got %d/%d", resp.WinnersCount, resp.AdvancingCount)
	}
	if resp.NextLevel != "taluk" {
		t.Fatalf("expected taluk entry opened, got %q", resp.NextLevel)
	}

	list, err := module.Handler.SchoolParticipantsHandler(context.Background(), "school-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if list.Count != 2 {
		t.Fatalf("expected school and taluk rows, got %d", list.Count)
	}
	var taluk *httptransport.ParticipantResponse
	for i := range list.Participants {
		if list.Participants[i].Level == "taluk" {
			taluk = &list.Participants[i]
		}
	}
	if taluk == nil {
		t.Fatalf("taluk registration missing")
	}
	if !taluk.FromPreviousLevel || taluk.AdvancedFrom != "school" {
		t.Fatalf("expected advancement provenance, got %+v", taluk)
	}
	if taluk.ParticipantCount != 2 {
		t.Fatalf("next level seeds with advancing count, got %d", taluk.ParticipantCount)
	}

	// Resubmission replaces winners without opening another taluk row.
	again, err := module.Handler.SubmitWinnersHandler(context.Background(), "school-1", httptransport.SubmitWinnersRequest{
		Category: "junior-artists",
		Level:    "school",
		Winners:  winners[:2],
	})
	if err != nil {
		t.Fatalf("resubmit failed: %v", err)
	}
	if again.NextLevel != "" {
		t.Fatalf("resubmit must not report a new next level, got %q", again.NextLevel)
	}
	list, err = module.Handler.SchoolParticipantsHandler(context.Background(), "school-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if list.Count != 2 {
		t.Fatalf("resubmit must not duplicate next-level rows, got %d", list.Count)
	}
}

func TestSubmitWinnersAtStateHasNoNextLevel(t *testing.T) {
	module := progressionservice.NewInMemoryModule(nil, nil)

	if _, err := module.Handler.RegisterParticipantsHandler(context.Background(), "school-1", httptransport.RegisterParticipantsRequest{
		Participants: map[string]int{"young-creators": 4},
		Level:        "state",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	resp, err := module.Handler.SubmitWinnersHandler(context.Background(), "school-1", httptransport.SubmitWinnersRequest{
		Category: "young-creators",
		Level:    "state",
		Winners: []httptransport.WinnerItem{
			{Name: "Asha", Position: 1, AdvancesToNext: true},
		},
	})
	if err != nil {
		t.Fatalf("state winners failed: %v", err)
	}
	if resp.NextLevel != "" {
		t.Fatalf("state is terminal, got next level %q", resp.NextLevel)
	}

	list, err := module.Handler.SchoolParticipantsHandler(context.Background(), "school-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if list.Count != 1 {
		t.Fatalf("no next-level row may exist past state, got %d", list.Count)
	}
}

func TestSubmitWinnersRequiresRegistration(t *testing.T) {
	module := progressionservice.NewInMemoryModule(nil, nil)

	_, err := module.Handler.SubmitWinnersHandler(context.Background(), "school-1", httptransport.SubmitWinnersRequest{
		Category: "junior-artists",
		Level:    "school",
		Winners:  []httptransport.WinnerItem{{Name: "Asha", Position: 1}},
	})
	if !errors.Is(err, domainerrors.ErrRegistrationNotFound) {
		t.Fatalf("expected ErrRegistrationNotFound, got %v", err)
	}

	if _, err := module.Handler.SubmitWinnersHandler(context.Background(), "school-1", httptransport.SubmitWinnersRequest{
		Category: "junior-artists",
		Level:    "school",
		Winners:  []httptransport.WinnerItem{{Name: "", Position: 1}},
	}); !errors.Is(err, domainerrors.ErrInvalidWinners) {
		t.Fatalf("expected ErrInvalidWinners for blank name, got %v", err)
	}
}

func TestSchoolDashboardAggregates(t *testing.T) {
	module := progressionservice.NewInMemoryModule(nil, nil)
	module.Store.SetNominationCount("school-1", 3)

	if _, err := module.Handler.RegisterParticipantsHandler(context.Background(), "school-1", httptransport.RegisterParticipantsRequest{
		Participants: map[string]int{
			"junior-artists": 10,
			"pre-school":     6,
		},
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, err := module.Handler.SubmitWinnersHandler(context.Background(), "school-1", httptransport.SubmitWinnersRequest{
		Category: "junior-artists",
		Level:    "school",
		Winners:  []httptransport.WinnerItem{{Name: "Asha", Position: 1}},
	}); err != nil {
		t.Fatalf("submit winners failed: %v", err)
	}

	dashboard, err := module.Handler.SchoolDashboardHandler(context.Background(), "school-1")
	if err != nil {
		t.Fatalf("dashboard failed: %v", err)
	}
	if dashboard.TotalParticipants != 16 {
		t.Fatalf("expected 16 participants, got %d", dashboard.TotalParticipants)
	}
	if dashboard.WinnersSubmitted != 1 {
		t.Fatalf("expected 1 completed round, got %d", dashboard.WinnersSubmitted)
	}
	if dashboard.TeacherNominations != 3 {
		t.Fatalf("expected nomination count 3, got %d", dashboard.TeacherNominations)
	}
	if len(dashboard.CategoriesRegistered) != 2 {
		t.Fatalf("expected 2 categories, got %v", dashboard.CategoriesRegistered)
	}
}
