package di

import (
	"go.uber.org/fx"

	"github.com/ChristianPavilonis/orderdesk/internal/app"
	"github.com/ChristianPavilonis/orderdesk/internal/config"
	"github.com/ChristianPavilonis/orderdesk/internal/logger"
	"github.com/ChristianPavilonis/orderdesk/internal/server/http/handlers"
	"github.com/ChristianPavilonis/orderdesk/internal/server/http/router"
	"github.com/ChristianPavilonis/orderdesk/internal/storage/postgres"
	"github.com/ChristianPavilonis/orderdesk/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(func(s *postgres.Storage) app.HealthChecker { return s }),
		fx.Provide(func(f *app.OrdersFacade) handlers.OrdersFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
