package progressionservice

import (
	"log/slog"

	httpadapter "ignite/contexts/competition/progression-service/adapters/http"
	"ignite/contexts/competition/progression-service/adapters/memory"
	"ignite/contexts/competition/progression-service/application/commands"
	"ignite/contexts/competition/progression-service/application/queries"
	"ignite/contexts/competition/progression-service/domain/entities"
	"ignite/contexts/competition/progression-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Participants ports.ParticipantRepository
	Nominations  ports.NominationCounter
	Clock        ports.Clock
	IDGen        ports.IDGenerator
	Logger       *slog.Logger
}

func NewModule(deps Dependencies) Module {
	registerUseCase := commands.RegisterParticipantsUseCase{
		Participants: deps.Participants,
		Clock:        deps.Clock,
		IDGen:        deps.IDGen,
		Logger:       deps.Logger,
	}
	winnersUseCase := commands.SubmitWinnersUseCase{
		Participants: deps.Participants,
		Clock:        deps.Clock,
		IDGen:        deps.IDGen,
		Logger:       deps.Logger,
	}
	dashboardUseCase := queries.DashboardUseCase{
		Participants: deps.Participants,
		Nominations:  deps.Nominations,
		Logger:       deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Register:  registerUseCase,
			Winners:   winnersUseCase,
			Dashboard: dashboardUseCase,
			Logger:    deps.Logger,
		},
	}
}

func NewInMemoryModule(seed []entities.DrawingParticipant, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Participants: store,
		Nominations:  store,
		Clock:        store,
		IDGen:        store,
		Logger:       logger,
	})
	module.Store = store
	return module
}
