package components

import (
	"kantine-order-api/internal/infra/memory"
	repo_impl "kantine-order-api/internal/infra/repository"
	"kantine-order-api/internal/pkg/config"
	"kantine-order-api/internal/usecase/commands"
	"kantine-order-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// RepositoryModule binds the write and read ports to the configured store
// driver. Each store serves both sides; the pair of returns keeps the
// bindings explicit.
var RepositoryModule = fx.Module("repository",
	fx.Provide(
		memory.NewStore,
		NewRoomStore,
		NewProductStore,
		NewOptionStore,
		NewOrderStore,
	),
)

func NewRoomStore(cfg config.Config, pool *pgxpool.Pool, mem *memory.Store) (commands.RoomRepository, queries.RoomReader) {
	if cfg.Store.Driver == config.StoreDriverMemory {
		repo := mem.Rooms()
		return repo, repo
	}
	repo := repo_impl.NewRoomRepository(pool)
	return repo, repo
}

func NewProductStore(cfg config.Config, pool *pgxpool.Pool, mem *memory.Store) (commands.ProductRepository, queries.ProductReader) {
	if cfg.Store.Driver == config.StoreDriverMemory {
		repo := mem.Products()
		return repo, repo
	}
	repo := repo_impl.NewProductRepository(pool)
	return repo, repo
}

func NewOptionStore(cfg config.Config, pool *pgxpool.Pool, mem *memory.Store) (commands.OptionRepository, queries.OptionReader) {
	if cfg.Store.Driver == config.StoreDriverMemory {
		repo := mem.Options()
		return repo, repo
	}
	repo := repo_impl.NewOptionRepository(pool)
	return repo, repo
}

func NewOrderStore(cfg config.Config, pool *pgxpool.Pool, mem *memory.Store) (commands.OrderRepository, queries.OrderReader) {
	if cfg.Store.Driver == config.StoreDriverMemory {
		repo := mem.Orders()
		return repo, repo
	}
	repo := repo_impl.NewOrderRepository(pool)
	return repo, repo
}
