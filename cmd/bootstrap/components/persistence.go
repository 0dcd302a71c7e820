package components

import (
	"storefront-rules/internal/infra"
	"storefront-rules/internal/infra/readstore"
	"storefront-rules/internal/infra/writerepo"
	"storefront-rules/internal/usecase"
	"storefront-rules/internal/usecase/commands"
	"storefront-rules/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	writerepoModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Product
		fx.Annotate(
			readstore.NewProductReadStore,
			fx.As(new(queries.ProductReadStore)),
		),
		// Announcement
		fx.Annotate(
			readstore.NewAnnouncementReadStore,
			fx.As(new(queries.AnnouncementReadStore)),
		),
		// User serves both the auth flow and the quote balance lookup
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(usecase.UserReadStore)),
			fx.As(new(queries.ShopperBalanceReadStore)),
		),
	),
)

var writerepoModule = fx.Module("persistence/writerepo",
	fx.Provide(
		// Announcement
		fx.Annotate(
			writerepo.NewAnnouncementRepository,
			fx.As(new(commands.AnnouncementRepository)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) infra.DBTX {
	return pool
}
