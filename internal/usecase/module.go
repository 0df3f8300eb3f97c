package usecase

import "go.uber.org/fx"

// Module provides the order use case to the fx container.
var Module = fx.Provide(
	NewOrderUseCase,
)
