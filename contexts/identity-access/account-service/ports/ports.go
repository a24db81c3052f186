package ports

import (
	"context"
	"time"

	"ignite/contexts/identity-access/account-service/domain/entities"
)

// AccountRepository persists the three account kinds. Save operations fail
// with ErrEmailTaken when the email is already registered within the same
// role table.
type AccountRepository interface {
	SaveSchool(ctx context.Context, account entities.SchoolAccount) error
	GetSchoolByEmail(ctx context.Context, email string) (entities.SchoolAccount, bool, error)
	GetSchool(ctx context.Context, accountID string) (entities.SchoolAccount, error)

	SaveAdmin(ctx context.Context, account entities.AdminAccount) error
	GetAdminByEmail(ctx context.Context, email string) (entities.AdminAccount, bool, error)
	GetAdmin(ctx context.Context, accountID string) (entities.AdminAccount, error)

	SaveEvaluator(ctx context.Context, account entities.EvaluatorAccount) error
	GetEvaluatorByEmail(ctx context.Context, email string) (entities.EvaluatorAccount, bool, error)
	GetEvaluator(ctx context.Context, accountID string) (entities.EvaluatorAccount, error)
	ListEvaluators(ctx context.Context) ([]entities.EvaluatorAccount, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
