package accountservice

import (
	"log/slog"
	"time"

	httpadapter "ignite/contexts/identity-access/account-service/adapters/http"
	"ignite/contexts/identity-access/account-service/adapters/memory"
	"ignite/contexts/identity-access/account-service/application"
	"ignite/contexts/identity-access/account-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Accounts ports.AccountRepository
	Clock    ports.Clock
	IDGen    ports.IDGenerator
	Secret   string
	TokenTTL time.Duration
	Logger   *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Accounts: deps.Accounts,
		Clock:    deps.Clock,
		IDGen:    deps.IDGen,
		Secret:   []byte(deps.Secret),
		TokenTTL: deps.TokenTTL,
		Logger:   deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Accounts: service,
			Logger:   deps.Logger,
		},
	}
}

func NewInMemoryModule(secret string, logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Accounts: store,
		Clock:    store,
		IDGen:    store,
		Secret:   secret,
		TokenTTL: 24 * time.Hour,
		Logger:   logger,
	})
	module.Store = store
	return module
}
