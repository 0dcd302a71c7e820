package components

import (
	"storefront-rules/internal/domain/pricing"
	"storefront-rules/internal/pkg/clock"
	"storefront-rules/internal/pkg/config"
	"storefront-rules/internal/usecase"
	"storefront-rules/internal/usecase/commands"
	"storefront-rules/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
	usecaseValidatorsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewPricingEngine,
	usecase.NewAuthUseCase,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewPricingQueries,
		queries.NewAnnouncementQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAnnouncementUseCase,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewPricingEngine(cfg config.Config) *pricing.Engine {
	return pricing.NewEngine(
		cfg.Pricing.PointValueRate,
		cfg.Pricing.MaxDiscountFraction,
		cfg.Pricing.DisplayMarkup,
	)
}
