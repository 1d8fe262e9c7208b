package cmd

import (
	"fmt"
	"log/slog"
	"time"

	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	httpin "github.com/biruk-abayneh/Restaurant-app/internal/adapters/in/http"
	"github.com/biruk-abayneh/Restaurant-app/internal/adapters/in/ws"
	"github.com/biruk-abayneh/Restaurant-app/internal/adapters/out/memrepo"
	"github.com/biruk-abayneh/Restaurant-app/internal/adapters/out/menucatalog"
	"github.com/biruk-abayneh/Restaurant-app/internal/adapters/out/postgres"
	"github.com/biruk-abayneh/Restaurant-app/internal/adapters/out/postgres/orderrepo"
	"github.com/biruk-abayneh/Restaurant-app/internal/core/application/orderflow"
	"github.com/biruk-abayneh/Restaurant-app/internal/core/application/usecases/commands"
	"github.com/biruk-abayneh/Restaurant-app/internal/core/application/usecases/queries"
	"github.com/biruk-abayneh/Restaurant-app/internal/core/ports"
	"github.com/biruk-abayneh/Restaurant-app/internal/feed"
	"github.com/biruk-abayneh/Restaurant-app/internal/jobs"
)

type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	catalog    *menucatalog.Catalog
	uowFactory ports.UnitOfWorkFactory
	reader     ports.OrderRepository
}

// NewCompositionRoot wires the storage backend named by the config and the
// shared collaborators everything else hangs off.
func NewCompositionRoot(config Config, logger *slog.Logger) (*CompositionRoot, error) {
	root := &CompositionRoot{
		config:  config,
		logger:  logger,
		catalog: menucatalog.NewSeededCatalog(),
	}

	switch config.Storage {
	case StorageMemory:
		store := memrepo.NewStore()
		root.uowFactory = memrepo.NewUnitOfWorkFactory(store)
		root.reader = memrepo.NewRepository(store)
	case StoragePostgres:
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName, config.DBSslMode)
		db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := db.AutoMigrate(&orderrepo.OrderDTO{}); err != nil {
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		factory := postgres.NewGormUnitOfWorkFactory(db)
		root.uowFactory = factory
		root.reader = factory.Create().OrderRepository()
	default:
		return nil, fmt.Errorf("unknown storage backend %q", config.Storage)
	}

	return root, nil
}

func (c *CompositionRoot) CreateSubmitOrderCommandHandler() commands.SubmitOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitOrderCommandHandler(f, c.catalog)
}

func (c *CompositionRoot) CreateAmendOrderCommandHandler() commands.AmendOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAmendOrderCommandHandler(f, c.catalog)
}

func (c *CompositionRoot) CreateAdvanceOrderStatusCommandHandler() commands.AdvanceOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveOrderCommandHandler() commands.RemoveOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.reader)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.reader)
}

// CreateHub builds the change feed hub over the active order snapshot.
// The caller owns its run loop.
func (c *CompositionRoot) CreateHub() *feed.Hub {
	source := orderflow.NewSnapshotQuery(c.CreateGetActiveOrdersQueryHandler())
	return feed.NewHub(source, feed.NewRegistry(), c.logger)
}

// CreateFlow builds the single write path, publishing committed changes to
// the hub.
func (c *CompositionRoot) CreateFlow(hub *feed.Hub) *orderflow.Flow {
	return orderflow.NewFlow(
		hub,
		c.CreateSubmitOrderCommandHandler(),
		c.CreateAmendOrderCommandHandler(),
		c.CreateAdvanceOrderStatusCommandHandler(),
		c.CreateRemoveOrderCommandHandler(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateHTTPServer(flow *orderflow.Flow) *httpin.Server {
	return httpin.NewServer(flow, c.CreateGetActiveOrdersQueryHandler(), c.CreateGetOrderQueryHandler())
}

func (c *CompositionRoot) CreateWSHandler(hub *feed.Hub) *ws.Handler {
	return ws.NewHandler(hub, c.logger)
}

func (c *CompositionRoot) CreateJobManager(flow *orderflow.Flow) *jobs.JobManager {
	retention := time.Duration(c.config.ReadyRetentionMinutes) * time.Minute
	cleanupJob := jobs.NewReadyOrderCleanupJob(c.reader, flow, retention, c.config.CleanupSchedule, c.logger)
	return jobs.NewJobManager(cleanupJob)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
