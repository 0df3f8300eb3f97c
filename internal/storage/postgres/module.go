package postgres

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/ChristianPavilonis/orderdesk/internal/config"
	"github.com/ChristianPavilonis/orderdesk/internal/domain/repository"
)

// Module wires PostgreSQL storage and the order repository.
var Module = fx.Options(
	fx.Provide(
		newStorage,
		func(s *Storage) repository.OrderRepository { return s.Orders() },
	),
	fx.Invoke(registerShutdown),
)

type storageParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newStorage(p storageParams) (*Storage, error) {
	return New(p.Ctx, p.Config.DatabaseURI, p.Logger)
}

func registerShutdown(lc fx.Lifecycle, storage *Storage) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			storage.Close()
			return nil
		},
	})
}
