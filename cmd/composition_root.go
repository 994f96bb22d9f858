package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	httpin "chapatis/internal/adapters/in/http"
	"chapatis/internal/adapters/out/boltstore"
	"chapatis/internal/adapters/out/lognotifier"
	"chapatis/internal/adapters/out/memory"
	"chapatis/internal/adapters/out/postgres"
	"chapatis/internal/adapters/out/rabbitmq"
	"chapatis/internal/core/application/usecases/commands"
	"chapatis/internal/core/application/usecases/queries"
	"chapatis/internal/core/domain/model/kernel"
	"chapatis/internal/core/domain/model/order"
	"chapatis/internal/core/domain/model/session"
	"chapatis/internal/core/domain/model/slot"
	"chapatis/internal/core/ports"
	"chapatis/internal/jobs"
)

// CompositionRoot builds the handlers from configuration and owns the
// resources they share.
type CompositionRoot struct {
	cfg        Config
	logger     *slog.Logger
	clock      kernel.Clock
	location   *time.Location
	catalog    order.Catalog
	generator  slot.Generator
	uowFactory ports.UnitOfWorkFactory
	notifier   ports.OrderNotifier
	closers    []func() error
}

// Option overrides a dependency of the composition root.
type Option func(*CompositionRoot)

// WithClock replaces the system clock.
func WithClock(clock kernel.Clock) Option {
	return func(c *CompositionRoot) {
		c.clock = clock
	}
}

// WithNotifier replaces the notifier selected from configuration.
func WithNotifier(notifier ports.OrderNotifier) Option {
	return func(c *CompositionRoot) {
		c.notifier = notifier
	}
}

// NewCompositionRoot opens the session store and the notifier chosen by cfg.
// Close releases them.
func NewCompositionRoot(ctx context.Context, cfg Config, logger *slog.Logger, opts ...Option) (*CompositionRoot, error) {
	if logger == nil {
		logger = slog.Default()
	}

	c := &CompositionRoot{cfg: cfg, logger: logger, clock: kernel.SystemClock{}}
	for _, opt := range opts {
		opt(c)
	}

	policy, err := cfg.SlotPolicy()
	if err != nil {
		return nil, fmt.Errorf("delivery policy: %w", err)
	}
	c.location = policy.Location()
	c.generator = slot.NewGenerator(policy, c.clock)

	if c.catalog, err = cfg.Catalog(); err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}

	if err = c.openStore(ctx); err != nil {
		return nil, err
	}

	if c.notifier == nil {
		if err = c.openNotifier(); err != nil {
			_ = c.Close()
			return nil, err
		}
	}

	return c, nil
}

func (c *CompositionRoot) openStore(ctx context.Context) error {
	switch c.cfg.StorageDriver {
	case StoragePostgres:
		db, err := postgres.Open(ctx, c.cfg.DSN())
		if err != nil {
			return err
		}
		if err = postgres.Migrate(db); err != nil {
			_ = postgres.Close(db)
			return err
		}
		c.uowFactory = postgres.NewGormUnitOfWorkFactory(db, c.location)
		c.closers = append(c.closers, func() error { return postgres.Close(db) })
		c.logger.Info("session store ready", "driver", StoragePostgres, "host", c.cfg.DBHost, "db", c.cfg.DBName)
	case StorageBolt:
		store, err := boltstore.Open(c.cfg.BoltPath, c.location)
		if err != nil {
			return err
		}
		c.uowFactory = boltstore.NewUnitOfWorkFactory(store)
		c.closers = append(c.closers, store.Close)
		c.logger.Info("session store ready", "driver", StorageBolt, "path", c.cfg.BoltPath)
	default:
		c.uowFactory = memory.NewUnitOfWorkFactory(memory.NewStore())
		c.logger.Info("session store ready", "driver", StorageMemory)
	}
	return nil
}

func (c *CompositionRoot) openNotifier() error {
	if c.cfg.AMQPURL == "" {
		c.notifier = lognotifier.New(c.logger)
		return nil
	}

	publisher, err := rabbitmq.Dial(c.cfg.AMQPURL, c.cfg.AMQPExchange)
	if err != nil {
		return err
	}
	c.notifier = publisher
	c.closers = append(c.closers, publisher.Close)
	c.logger.Info("order notifications enabled", "exchange", publisher.Exchange())
	return nil
}

// Close releases resources in reverse order of acquisition.
func (c *CompositionRoot) Close() error {
	var err error
	for i := len(c.closers) - 1; i >= 0; i-- {
		err = errors.Join(err, c.closers[i]())
	}
	c.closers = nil
	return err
}

func (c *CompositionRoot) Location() *time.Location {
	return c.location
}

func (c *CompositionRoot) commandUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) sessionReader() queries.SessionReader {
	return FuncSessionReader(func(ctx context.Context, id kernel.UUID) (*session.Session, error) {
		return c.uowFactory.Create().SessionRepository().Get(ctx, id)
	})
}

func (c *CompositionRoot) CreateCreateSessionCommandHandler() commands.CreateSessionCommandHandler {
	return commands.NewCreateSessionCommandHandler(c.commandUoWFactory(), c.catalog.Limits(), c.clock)
}

func (c *CompositionRoot) CreateSelectDeliveryDateCommandHandler() commands.SelectDeliveryDateCommandHandler {
	return commands.NewSelectDeliveryDateCommandHandler(c.commandUoWFactory(), c.generator, c.clock)
}

func (c *CompositionRoot) CreateAdjustQuantityCommandHandler() commands.AdjustQuantityCommandHandler {
	return commands.NewAdjustQuantityCommandHandler(c.commandUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateUpdateCustomerCommandHandler() commands.UpdateCustomerCommandHandler {
	return commands.NewUpdateCustomerCommandHandler(c.commandUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateSubmitOrderCommandHandler() commands.SubmitOrderCommandHandler {
	return commands.NewSubmitOrderCommandHandler(c.commandUoWFactory(), c.catalog, c.clock, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateStartNewOrderCommandHandler() commands.StartNewOrderCommandHandler {
	return commands.NewStartNewOrderCommandHandler(c.commandUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateChangeViewCommandHandler() commands.ChangeViewCommandHandler {
	return commands.NewChangeViewCommandHandler(c.commandUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreatePurgeExpiredSessionsCommandHandler() commands.PurgeExpiredSessionsCommandHandler {
	return commands.NewPurgeExpiredSessionsCommandHandler(c.commandUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateGetDeliverySlotsQueryHandler() queries.GetDeliverySlotsQueryHandler {
	return queries.NewGetDeliverySlotsQueryHandler(c.generator)
}

func (c *CompositionRoot) CreateGetSessionQueryHandler() queries.GetSessionQueryHandler {
	return queries.NewGetSessionQueryHandler(c.sessionReader(), c.catalog)
}

func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	return queries.NewGetOrderHistoryQueryHandler(c.sessionReader())
}

// CreateHTTPServer wires every use case into the API server.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateSession:      c.CreateCreateSessionCommandHandler(),
		SelectDeliveryDate: c.CreateSelectDeliveryDateCommandHandler(),
		AdjustQuantity:     c.CreateAdjustQuantityCommandHandler(),
		UpdateCustomer:     c.CreateUpdateCustomerCommandHandler(),
		SubmitOrder:        c.CreateSubmitOrderCommandHandler(),
		StartNewOrder:      c.CreateStartNewOrderCommandHandler(),
		ChangeView:         c.CreateChangeViewCommandHandler(),
		GetDeliverySlots:   c.CreateGetDeliverySlotsQueryHandler(),
		GetSession:         c.CreateGetSessionQueryHandler(),
		GetOrderHistory:    c.CreateGetOrderHistoryQueryHandler(),
	}, c.location, c.logger)
}

// CreateJobManager schedules the idle-session purge.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	purgeHandler := c.CreatePurgeExpiredSessionsCommandHandler()
	purge := jobs.NewSessionPurgeJob(&purgeHandler, c.cfg.SessionTTL, c.cfg.SessionPurgeSchedule, c.logger)
	return jobs.NewJobManager(purge)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncSessionReader func(ctx context.Context, id kernel.UUID) (*session.Session, error)

func (f FuncSessionReader) Get(ctx context.Context, id kernel.UUID) (*session.Session, error) {
	return f(ctx, id)
}
