package ports

import (
	"context"
	"time"

	"ignite/contexts/competition/nomination-service/domain/entities"
)

// NominationRepository persists teacher nominations. SaveNomination is an
// upsert keyed by nomination id.
type NominationRepository interface {
	SaveNomination(ctx context.Context, nomination entities.TeacherNomination) error
	GetNomination(ctx context.Context, nominationID string) (entities.TeacherNomination, error)
	ListNominationsBySchool(ctx context.Context, schoolID string) ([]entities.TeacherNomination, error)
	ListNominations(ctx context.Context) ([]entities.TeacherNomination, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
