package nominationservice

import (
	"log/slog"

	httpadapter "ignite/contexts/competition/nomination-service/adapters/http"
	"ignite/contexts/competition/nomination-service/adapters/memory"
	"ignite/contexts/competition/nomination-service/application/commands"
	"ignite/contexts/competition/nomination-service/application/queries"
	"ignite/contexts/competition/nomination-service/domain/entities"
	"ignite/contexts/competition/nomination-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Nominations ports.NominationRepository
	Clock       ports.Clock
	IDGen       ports.IDGenerator
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	nominateUseCase := commands.NominateUseCase{
		Nominations: deps.Nominations,
		Clock:       deps.Clock,
		IDGen:       deps.IDGen,
		Logger:      deps.Logger,
	}
	scoreUseCase := commands.ScoreUseCase{
		Nominations: deps.Nominations,
		Clock:       deps.Clock,
		Logger:      deps.Logger,
	}
	statusUseCase := commands.UpdateStatusUseCase{
		Nominations: deps.Nominations,
		Clock:       deps.Clock,
		Logger:      deps.Logger,
	}
	queryUseCase := queries.NominationQueryUseCase{
		Nominations: deps.Nominations,
		Logger:      deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Nominate:     nominateUseCase,
			Score:        scoreUseCase,
			UpdateStatus: statusUseCase,
			Queries:      queryUseCase,
			Logger:       deps.Logger,
		},
	}
}

func NewInMemoryModule(seed []entities.TeacherNomination, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Nominations: store,
		Clock:       store,
		IDGen:       store,
		Logger:      logger,
	})
	module.Store = store
	return module
}
