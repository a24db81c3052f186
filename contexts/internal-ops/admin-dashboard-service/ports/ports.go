package ports

import "context"

// ParticipantRecord is the flattened cross-school registration row.
type ParticipantRecord struct {
	ParticipantID    string
	SchoolID         string
	Category         string
	Level            string
	ParticipantCount int
	WinnersDeclared  int
	IsCompleted      bool
}

// NominationRecord is the flattened cross-school nomination row.
type NominationRecord struct {
	NominationID string
	SchoolID     string
	TeacherName  string
	Category     string
	AwardType    string
	PublicVotes  int
	Status       string
	FinalScore   *float64
}

// SchoolInfo is the school detail attached to enriched listings.
type SchoolInfo struct {
	SchoolID   string
	SchoolName string
	District   string
	Taluk      string
}

// Directory is the read-only view over competition state owned by the other
// modules.
type Directory interface {
	CountSchools(ctx context.Context) (int, error)
	CountActiveEvaluators(ctx context.Context) (int, error)
	CountVotes(ctx context.Context) (int, error)
	ListParticipants(ctx context.Context) ([]ParticipantRecord, error)
	ListNominations(ctx context.Context) ([]NominationRecord, error)
	GetSchoolInfo(ctx context.Context, schoolID string) (SchoolInfo, bool, error)
}
