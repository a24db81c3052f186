package admindashboardservice

import (
	"log/slog"

	httpadapter "ignite/contexts/internal-ops/admin-dashboard-service/adapters/http"
	"ignite/contexts/internal-ops/admin-dashboard-service/adapters/memory"
	"ignite/contexts/internal-ops/admin-dashboard-service/application"
	"ignite/contexts/internal-ops/admin-dashboard-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Directory ports.Directory
	Logger    *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Directory: deps.Directory,
		Logger:    deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Dashboard: service,
			Logger:    deps.Logger,
		},
	}
}

func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Directory: store,
		Logger:    logger,
	})
	module.Store = store
	return module
}
