package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/osse101/BuyerMerchant_Go/internal/config"
	"github.com/osse101/BuyerMerchant_Go/internal/database"
	"github.com/osse101/BuyerMerchant_Go/internal/database/dynamostore"
	"github.com/osse101/BuyerMerchant_Go/internal/database/filestore"
	"github.com/osse101/BuyerMerchant_Go/internal/database/postgres"
	"github.com/osse101/BuyerMerchant_Go/internal/database/redisstore"
	"github.com/osse101/BuyerMerchant_Go/internal/database/sqlite"
	"github.com/osse101/BuyerMerchant_Go/internal/handler"
	"github.com/osse101/BuyerMerchant_Go/internal/repository"
)

// Repositories holds the store implementations chosen by configuration.
// Buyers and templates always live in the relational database; price lists
// live there too unless another store is configured.
type Repositories struct {
	Buyers     repository.Buyer
	Templates  repository.Template
	PriceLists repository.PriceListStore

	// Readiness names every store the readiness probe pings.
	Readiness map[string]handler.Pinger

	closers []func()
}

// Close releases every connection in reverse opening order.
func (r *Repositories) Close() {
	for i := len(r.closers) - 1; i >= 0; i-- {
		r.closers[i]()
	}
	r.closers = nil
}

// InitializeRepositories opens the relational database, applies migrations and
// opens the configured price list store. On error anything already opened is closed.
func InitializeRepositories(ctx context.Context, cfg *config.Config) (*Repositories, error) {
	ctx, cancel := context.WithTimeout(ctx, StoreConnectTimeout)
	defer cancel()

	repos := &Repositories{Readiness: make(map[string]handler.Pinger, 2)}
	if err := repos.openDatabase(ctx, cfg); err != nil {
		repos.Close()
		return nil, err
	}
	if err := repos.openPriceLists(ctx, cfg); err != nil {
		repos.Close()
		return nil, err
	}

	slog.Info(LogMsgStoresReady, "db_driver", cfg.DBDriver, "price_list_store", cfg.PriceListStore)
	return repos, nil
}

// track registers a connection for readiness probing and shutdown.
func (r *Repositories) track(name string, p database.Pool) {
	r.closers = append(r.closers, p.Close)
	r.Readiness[name] = p
}

func (r *Repositories) openDatabase(ctx context.Context, cfg *config.Config) error {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
		}
		r.track(ReadinessDatabase, pool)
		if err := database.MigratePostgres(ctx, pool); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
		}
		r.Buyers = postgres.NewBuyerRepository(pool)
		r.Templates = postgres.NewTemplateRepository(pool)
		r.PriceLists = postgres.NewPriceListRepository(pool)

	case config.DriverSQLite:
		db, err := database.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
		}
		r.track(ReadinessDatabase, database.SQLPool{DB: db})
		if err := database.MigrateSQLite(ctx, db); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
		}
		store := sqlite.NewStore(db)
		r.Buyers = store
		r.Templates = store
		r.PriceLists = store

	default:
		return fmt.Errorf(ErrMsgUnknownDriver, cfg.DBDriver)
	}

	slog.Info(LogMsgMigrationsApplied, "driver", cfg.DBDriver)
	return nil
}

func (r *Repositories) openPriceLists(ctx context.Context, cfg *config.Config) error {
	switch cfg.PriceListStore {
	case config.StoreSQL:
		// already set by openDatabase
		return nil

	case config.StoreRedis:
		if cfg.RedisAddr == "" {
			return errors.New(ErrMsgRedisAddrRequired)
		}
		client, err := redisstore.NewClient(ctx, redisstore.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedConnectRedis, err)
		}
		store := redisstore.New(client)
		r.track(ReadinessPriceLists, store)
		r.PriceLists = store

	case config.StoreDynamoDB:
		if cfg.DynamoDBTable == "" {
			return errors.New(ErrMsgDynamoTableRequired)
		}
		client, err := dynamostore.NewClient(ctx, dynamostore.Options{
			Region:   cfg.AWSRegion,
			Endpoint: cfg.DynamoDBEndpoint,
		})
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedConnectDynamo, err)
		}
		store := dynamostore.New(client, cfg.DynamoDBTable)
		r.PriceLists = store
		r.Readiness[ReadinessPriceLists] = store

	case config.StoreFile:
		store, err := filestore.New(cfg.PriceListDir)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedOpenFileStore, err)
		}
		r.PriceLists = store
		r.Readiness[ReadinessPriceLists] = store

	default:
		return fmt.Errorf(ErrMsgUnknownListStore, cfg.PriceListStore)
	}
	return nil
}
