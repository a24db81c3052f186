package unit

import (
	"context"
	"testing"

	admindashboardservice "ignite/contexts/internal-ops/admin-dashboard-service"
	"ignite/contexts/internal-ops/admin-dashboard-service/ports"
)

func seededDashboardModule(t *testing.T) admindashboardservice.Module {
	t.Helper()
	module := admindashboardservice.NewInMemoryModule(nil)
	module.Store.SeedSchool(ports.SchoolInfo{
		SchoolID:   "school-1",
		SchoolName: "Sunrise School",
		District:   "North",
		Taluk:      "Central",
	})
	module.Store.SeedSchool(ports.SchoolInfo{
		SchoolID:   "school-2",
		SchoolName: "Lakeside School",
		District:   "South",
		Taluk:      "Harbour",
	})
	module.Store.SeedParticipant(ports.ParticipantRecord{
		ParticipantID:    "part-1",
		SchoolID:         "school-1",
		Category:         "junior-artists",
		Level:            "school",
		ParticipantCount: 12,
		WinnersDeclared:  3,
		IsCompleted:      true,
	})
	module.Store.SeedParticipant(ports.ParticipantRecord{
		ParticipantID:    "part-2",
		SchoolID:         "school-2",
		Category:         "young-creators",
		Level:            "school",
		ParticipantCount: 8,
	})
	module.Store.SeedParticipant(ports.ParticipantRecord{
		ParticipantID:    "part-3",
		SchoolID:         "school-1",
		Category:         "junior-artists",
		Level:            "taluk",
		ParticipantCount: 3,
	})
	module.Store.SeedNomination(ports.NominationRecord{
		NominationID: "nom-1",
		SchoolID:     "school-2",
		TeacherName:  "A. Rao",
		Category:     "inspirational-teaching",
		AwardType:    "best-teacher",
		PublicVotes:  14,
		Status:       "shortlisted",
	})
	module.Store.SetCounts(4, 14)
	return module
}

func TestDashboardStatsAggregates(t *testing.T) {
	module := seededDashboardModule(t)

	stats, err := module.Handler.StatsHandler(context.Background())
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.TotalSchools != 2 {
		t.Fatalf("expected 2 schools, got %d", stats.TotalSchools)
	}
	if stats.TotalParticipants != 23 {
		t.Fatalf("expected 23 participants, got %d", stats.TotalParticipants)
	}
	if stats.TotalNominations != 1 || stats.ActiveEvaluators != 4 || stats.VotesCast != 14 {
		t.Fatalf("unexpected totals: %+v", stats)
	}
	if stats.CompetitionsByLevel["school"] != 2 || stats.CompetitionsByLevel["taluk"] != 1 {
		t.Fatalf("unexpected level breakdown: %v", stats.CompetitionsByLevel)
	}
}

func TestAllParticipantsJoinsSchoolDetails(t *testing.T) {
	module := seededDashboardModule(t)

	resp, err := module.Handler.AllParticipantsHandler(context.Background())
	if err != nil {
		t.Fatalf("all participants failed: %v", err)
	}
	if resp.Count != 3 {
		t.Fatalf("expected 3 rows, got %d", resp.Count)
	}
	byID := map[string]string{}
	for _, item := range resp.Participants {
		byID[item.ParticipantID] = item.SchoolName
	}
	if byID["part-1"] != "Sunrise School" || byID["part-2"] != "Lakeside School" {
		t.Fatalf("school names not joined: %v", byID)
	}
	for _, item := range resp.Participants {
		if item.ParticipantID == "part-2" && item.District != "South" {
			t.Fatalf("expected district joined for part-2, got %q", item.District)
		}
	}
}

func TestAllNominationsJoinsSchoolDetails(t *testing.T) {
	module := seededDashboardModule(t)

	resp, err := module.Handler.AllNominationsHandler(context.Background())
	if err != nil {
		t.Fatalf("all nominations failed: %v", err)
	}
	if resp.Count != 1 {
		t.Fatalf("expected 1 nomination, got %d", resp.Count)
	}
	row := resp.Nominations[0]
	if row.SchoolName != "Lakeside School" || row.Taluk != "Harbour" {
		t.Fatalf("school details not joined: %+v", row)
	}
	if row.PublicVotes != 14 || row.Status != "shortlisted" {
		t.Fatalf("nomination fields lost in enrichment: %+v", row)
	}
	if row.FinalScore != nil {
		t.Fatalf("expected unscored nomination, got %v", *row.FinalScore)
	}
}
