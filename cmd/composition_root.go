package cmd

import (
	"errors"
	"fmt"

	httpadapter "laundry/internal/adapters/in/http"
	"laundry/internal/adapters/in/worker"
	"laundry/internal/adapters/out/authz"
	"laundry/internal/adapters/out/events"
	"laundry/internal/adapters/out/locking"
	"laundry/internal/adapters/out/notification"
	"laundry/internal/adapters/out/postgres"
	"laundry/internal/adapters/out/postgres/orderrepo"
	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/application/workflow"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/services"
	"laundry/internal/core/ports"
	"laundry/internal/jobs"
	"laundry/internal/pkg/metrics"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CompositionRoot owns every long-lived dependency of the process and
// builds the handlers from them. Close releases what it opened.
type CompositionRoot struct {
	cfg      Config
	gormDB   *gorm.DB
	logger   *zap.Logger
	clock    kernel.Clock
	registry *prometheus.Registry

	uowFactory *postgres.GormUnitOfWorkFactory
	engine     services.AssignmentEngine

	redis     *redis.Client
	queue     *asynq.Client
	publisher *events.KafkaPublisher
	facade    *workflow.Facade
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, l *zap.Logger) *CompositionRoot {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	clock := kernel.SystemClock{}
	return &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		logger:     l,
		clock:      clock,
		registry:   registry,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, clock),
		engine:     services.NewAssignmentEngine(),
	}
}

func (c *CompositionRoot) Handlers() workflow.Handlers {
	reader := orderrepo.NewGormOrderReader(c.gormDB)
	return workflow.Handlers{
		CreateOrder:      commands.NewCreateOrderCommandHandler(c.uowFactory.Placement(), c.clock),
		AssignBranch:     commands.NewAssignBranchCommandHandler(c.uowFactory.Workflow(), c.engine, c.clock),
		AssignLogistics:  commands.NewAssignLogisticsCommandHandler(c.uowFactory.Workflow(), c.engine, c.clock),
		AssignStaff:      commands.NewAssignStaffCommandHandler(c.uowFactory.Workflow(), c.engine, c.clock),
		TransitionStatus: commands.NewTransitionStatusCommandHandler(c.uowFactory.Workflow(), c.engine, c.clock),
		Branches:         commands.NewBranchCommandsHandler(c.uowFactory.Branches()),
		Staff:            commands.NewStaffCommandsHandler(c.uowFactory.Staff()),
		Partners:         commands.NewPartnerCommandsHandler(c.uowFactory.Partners()),
		GetOrder:         queries.NewGetOrderQueryHandler(reader, c.engine.Policy()),
		ListOrders:       queries.NewListOrdersQueryHandler(reader),
		StatusSummary:    queries.NewOrderStatusSummaryQueryHandler(c.gormDB),
	}
}

func (c *CompositionRoot) CreateReleaseStaffWorkloadCommandHandler() commands.ReleaseStaffWorkloadCommandHandler {
	return commands.NewReleaseStaffWorkloadCommandHandler(c.uowFactory.Workflow())
}

// Facade builds the workflow façade once. Later calls return the same one.
func (c *CompositionRoot) Facade() (*workflow.Facade, error) {
	if c.facade != nil {
		return c.facade, nil
	}

	authorizer, err := authz.NewCasbinAuthorizer(c.gormDB)
	if err != nil {
		return nil, err
	}
	if err := authorizer.Seed(); err != nil {
		return nil, fmt.Errorf("seed authorization policies: %w", err)
	}

	facade, err := workflow.NewFacade(c.Handlers(), workflow.Dependencies{
		Authorizer:        authorizer,
		Locker:            c.locker(),
		Notifier:          notification.NewAsynqNotifier(c.queueClient()),
		Events:            c.events(),
		Metrics:           metrics.NewWorkflow(c.registry, metrics.DefaultConfig()),
		Logger:            c.logger,
		SideEffectTimeout: c.cfg.SideEffectTimeout,
	})
	if err != nil {
		return nil, err
	}
	c.facade = facade
	return facade, nil
}

// Router serves the façade over HTTP.
func (c *CompositionRoot) Router() (*echo.Echo, error) {
	facade, err := c.Facade()
	if err != nil {
		return nil, err
	}
	identity, err := httpadapter.NewIdentity(c.cfg.JWTSecret)
	if err != nil {
		return nil, fmt.Errorf("JWT_SECRET: %w", err)
	}
	return httpadapter.NewRouter(httpadapter.NewServer(facade), httpadapter.RouterConfig{
		Identity: identity,
		Logger:   c.logger,
		Metrics:  metrics.NewHTTP(c.registry, metrics.DefaultConfig()),
		Gatherer: c.registry,
	})
}

func (c *CompositionRoot) JobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.logger,
		jobs.NewStaffWorkloadJob(c.CreateReleaseStaffWorkloadCommandHandler(), c.cfg.ReconcileSchedule, c.logger),
	)
}

// NewNotificationWorker consumes the status notification queue. It needs
// no database. Delivery to customers is logged until a real channel is
// plugged into the dispatcher.
func NewNotificationWorker(cfg Config, l *zap.Logger) *worker.Server {
	consumer := worker.NewNotificationConsumer(worker.NewLogDispatcher(l), l)
	return worker.NewServer(cfg.QueueConnOpt(), cfg.WorkerConcurrency, consumer)
}

func (c *CompositionRoot) locker() ports.OrderLocker {
	if c.cfg.LockMode == LockModeLocal {
		c.logger.Warn("order locks are process-local; run a single instance")
		return locking.NewKeyedMutex()
	}
	if c.redis == nil {
		c.redis = redis.NewClient(&redis.Options{
			Addr:     c.cfg.RedisAddr,
			Password: c.cfg.RedisPassword,
			DB:       c.cfg.RedisDB,
		})
	}
	return locking.NewRedisLocker(c.redis, c.cfg.LockTTL, c.cfg.LockWait)
}

func (c *CompositionRoot) queueClient() *asynq.Client {
	if c.queue == nil {
		c.queue = asynq.NewClient(c.cfg.QueueConnOpt())
	}
	return c.queue
}

func (c *CompositionRoot) events() ports.EventPublisher {
	if len(c.cfg.KafkaBrokers) == 0 {
		c.logger.Info("KAFKA_BROKERS is empty, order change events are discarded")
		return events.Discard{}
	}
	if c.publisher == nil {
		c.publisher = events.NewKafkaPublisher(events.NewKafkaWriter(c.cfg.KafkaBrokers, c.cfg.KafkaOrderChangedTopic))
	}
	return c.publisher
}

// Close waits for in-flight side effects and then closes the clients.
func (c *CompositionRoot) Close() error {
	if c.facade != nil {
		c.facade.Wait()
	}

	var closeErrs []error
	if c.publisher != nil {
		closeErrs = append(closeErrs, c.publisher.Close())
	}
	if c.queue != nil {
		closeErrs = append(closeErrs, c.queue.Close())
	}
	if c.redis != nil {
		closeErrs = append(closeErrs, c.redis.Close())
	}
	if sqlDB, err := c.gormDB.DB(); err == nil {
		closeErrs = append(closeErrs, sqlDB.Close())
	}
	_ = c.logger.Sync()
	return errors.Join(closeErrs...)
}
