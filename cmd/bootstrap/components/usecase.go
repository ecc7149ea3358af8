package components

import (
	"laundryhub/internal/pkg/clock"
	"laundryhub/internal/pkg/jwt"
	"laundryhub/internal/usecase/commands"
	"laundryhub/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(s *jwt.Service) commands.TokenIssuer { return s },
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewCategoryQueries,
		queries.NewOrderQueries,
		queries.NewReceiptQueries,
		queries.NewNotificationQueries,
		queries.NewUserQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewUserCommands,
		commands.NewBookingUseCase,
		commands.NewCategoryCommands,
		commands.NewAdminCommands,
	),
)
