package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/giftroll/internal/database/postgres"
)

// Store is the union of the Postgres repositories. Each service receives it through the
// narrow repository interface it declares.
type Store struct {
	*postgres.UserRepository
	*postgres.GameRepository
	*postgres.WalletRepository
}

// InitializeRepositories creates all repository implementations over one pool
func InitializeRepositories(dbPool *pgxpool.Pool) *Store {
	return &Store{
		UserRepository:   postgres.NewUserRepository(dbPool),
		GameRepository:   postgres.NewGameRepository(dbPool),
		WalletRepository: postgres.NewWalletRepository(dbPool),
	}
}
