package ports

import (
	"context"
	"time"

	"ignite/contexts/competition/progression-service/domain/entities"
)

// ParticipantRepository persists drawing registrations. SaveParticipant is an
// upsert keyed by participant id; the store also enforces the one-row
// invariant per (school, category, level) so a concurrent duplicate insert
// surfaces as ErrConflict.
type ParticipantRepository interface {
	SaveParticipant(ctx context.Context, participant entities.DrawingParticipant) error
	GetParticipant(ctx context.Context, schoolID string, category entities.Category, level entities.Level) (entities.DrawingParticipant, bool, error)
	ListParticipantsBySchool(ctx context.Context, schoolID string) ([]entities.DrawingParticipant, error)
	ListParticipants(ctx context.Context) ([]entities.DrawingParticipant, error)
}

// NominationCounter exposes the nomination count for the school dashboard
// without pulling the whole nomination module in.
type NominationCounter interface {
	CountNominationsBySchool(ctx context.Context, schoolID string) (int, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
