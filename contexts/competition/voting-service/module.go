package votingservice

import (
	"log/slog"
	"time"

	httpadapter "ignite/contexts/competition/voting-service/adapters/http"
	"ignite/contexts/competition/voting-service/adapters/memory"
	"ignite/contexts/competition/voting-service/application/commands"
	"ignite/contexts/competition/voting-service/application/queries"
	"ignite/contexts/competition/voting-service/domain/entities"
	"ignite/contexts/competition/voting-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Tokens        ports.TokenStore
	Ledger        ports.VoteLedger
	Nominations   ports.NominationDirectory
	Outbox        ports.OutboxWriter
	Clock         ports.Clock
	IDGen         ports.IDGenerator
	TokenValidity time.Duration
	Logger        *slog.Logger
}

func NewModule(deps Dependencies) Module {
	issueUseCase := commands.TokenIssueUseCase{
		Tokens:   deps.Tokens,
		Clock:    deps.Clock,
		IDGen:    deps.IDGen,
		Validity: deps.TokenValidity,
		Logger:   deps.Logger,
	}
	castUseCase := commands.CastVoteUseCase{
		Tokens:      deps.Tokens,
		Ledger:      deps.Ledger,
		Nominations: deps.Nominations,
		Outbox:      deps.Outbox,
		Clock:       deps.Clock,
		IDGen:       deps.IDGen,
		Logger:      deps.Logger,
	}
	validateUseCase := queries.ValidateTokenUseCase{
		Tokens: deps.Tokens,
		Clock:  deps.Clock,
		Logger: deps.Logger,
	}
	boardUseCase := queries.BoardUseCase{
		Nominations: deps.Nominations,
		Logger:      deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Issuer:    issueUseCase,
			Votes:     castUseCase,
			Validator: validateUseCase,
			Board:     boardUseCase,
			Logger:    deps.Logger,
		},
	}
}

func NewInMemoryModule(seed []entities.VotingToken, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Tokens:        store,
		Ledger:        store,
		Nominations:   store,
		Outbox:        store,
		Clock:         store,
		IDGen:         store,
		TokenValidity: 90 * 24 * time.Hour,
		Logger:        logger,
	})
	module.Store = store
	return module
}
