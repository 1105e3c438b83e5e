package cmd

import (
	"context"
	"fmt"
	"log/slog"

	httpadapter "procurement/internal/adapters/in/http"
	"procurement/internal/adapters/out/memory/sessiontracker"
	"procurement/internal/adapters/out/postgres"
	"procurement/internal/adapters/out/postgres/docnumberrepo"
	"procurement/internal/adapters/out/postgres/userrepo"
	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/application/usecases/queries"
	"procurement/internal/core/ports"
	"procurement/internal/jobs"
	"procurement/internal/pkg/retry"

	memoryregistry "procurement/internal/adapters/out/memory/sessionregistry"
	redisregistry "procurement/internal/adapters/out/redis/sessionregistry"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// sessionActivity tracks idle sessions and sweeps the expired ones.
type sessionActivity interface {
	ports.SessionActivity
	jobs.ExpiredSessionSweeper
}

// CompositionRoot builds every adapter and use case handler of the service
// from Config. The session backend decides where bindings and idle state
// live: in process memory, or in Redis shared by all instances.
//
// Example:
//
//	app, err := cmd.NewCompositionRoot(ctx, config, gormDB, logger)
//	if err != nil {
//		return err
//	}
//	defer app.Close()
//	server := app.CreateServer()
type CompositionRoot struct {
	config      Config
	gormDB      *gorm.DB
	logger      *slog.Logger
	uowFactory  *postgres.GormUnitOfWorkFactory
	allocator   *docnumberrepo.GormAllocator
	credentials *userrepo.BcryptCredentialVerifier
	registry    ports.SessionRegistry
	activity    sessionActivity
	redisClient *redis.Client
}

// NewCompositionRoot wires the adapters selected by config. With the redis
// session backend it connects to Redis before returning.
func NewCompositionRoot(ctx context.Context, config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	c := &CompositionRoot{
		config:      config,
		gormDB:      gormDB,
		logger:      logger,
		uowFactory:  postgres.NewGormUnitOfWorkFactory(gormDB, config.LockTimeout),
		allocator:   docnumberrepo.NewGormAllocator(gormDB, config.LockTimeout),
		credentials: userrepo.NewBcryptCredentialVerifier(gormDB),
	}

	switch config.SessionBackend {
	case SessionBackendRedis:
		client, err := redisregistry.Connect(ctx, config.RedisAddress)
		if err != nil {
			return nil, fmt.Errorf("failed to connect redis at %s: %w", config.RedisAddress, err)
		}
		c.redisClient = client
		c.registry = redisregistry.New(client, redisregistry.DefaultPrefix)
		c.activity = redisregistry.NewActivity(client, redisregistry.DefaultPrefix, config.SessionIdleTimeout, logger)
	default:
		registry := memoryregistry.New()
		c.registry = registry
		c.activity = sessiontracker.New(config.SessionIdleTimeout, registry, logger)
	}

	return c, nil
}

// Bootstrap creates the configured startup account, if any.
func (c *CompositionRoot) Bootstrap(ctx context.Context) error {
	if c.config.BootstrapUserID == "" {
		return nil
	}
	return c.credentials.SetPassword(ctx, c.config.BootstrapUserID, c.config.BootstrapPassword)
}

// Close releases the Redis client, if one was opened.
func (c *CompositionRoot) Close() error {
	if c.redisClient != nil {
		return c.redisClient.Close()
	}
	return nil
}

// RetryPolicy is the contention retry policy shared by the HTTP server and
// the fulfillment sweep.
func (c *CompositionRoot) RetryPolicy() retry.Policy {
	policy := retry.DefaultPolicy()
	policy.MaxAttempts = c.config.ReceiptRetryAttempts
	return policy
}

func (c *CompositionRoot) purchaseOrderUoWFactory() commands.PurchaseOrderUoWFactory {
	return FuncPurchaseOrderUoWFactory(func() commands.PurchaseOrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) receivingUoWFactory() commands.ReceivingUoWFactory {
	return FuncReceivingUoWFactory(func() commands.ReceivingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) rfqUoWFactory() commands.RfqUoWFactory {
	return FuncRfqUoWFactory(func() commands.RfqUoW {
		return c.uowFactory.Create()
	})
}

// CreateLoginCommandHandler returns a handler on the configured session
// backend.
func (c *CompositionRoot) CreateLoginCommandHandler() commands.LoginCommandHandler {
	return commands.NewLoginCommandHandler(c.credentials, c.registry, c.activity, c.logger)
}

// CreateLogoutCommandHandler returns a handler on the configured session
// backend.
func (c *CompositionRoot) CreateLogoutCommandHandler() commands.LogoutCommandHandler {
	return commands.NewLogoutCommandHandler(c.registry, c.activity)
}

// CreateCreatePurchaseOrderCommandHandler builds the handler with a unit of work per call.
func (c *CompositionRoot) CreateCreatePurchaseOrderCommandHandler() commands.CreatePurchaseOrderCommandHandler {
	return commands.NewCreatePurchaseOrderCommandHandler(c.allocator, c.purchaseOrderUoWFactory())
}

// CreateTransitionPurchaseOrderCommandHandler builds the handler with a unit of work per call.
func (c *CompositionRoot) CreateTransitionPurchaseOrderCommandHandler() commands.TransitionPurchaseOrderCommandHandler {
	return commands.NewTransitionPurchaseOrderCommandHandler(c.purchaseOrderUoWFactory())
}

// CreatePostGoodsReceiptCommandHandler builds the handler with a unit of work per call.
func (c *CompositionRoot) CreatePostGoodsReceiptCommandHandler() commands.PostGoodsReceiptCommandHandler {
	return commands.NewPostGoodsReceiptCommandHandler(c.allocator, c.receivingUoWFactory(), c.logger)
}

// CreateCancelReceiptLineCommandHandler builds the handler with a unit of work per call.
func (c *CompositionRoot) CreateCancelReceiptLineCommandHandler() commands.CancelReceiptLineCommandHandler {
	return commands.NewCancelReceiptLineCommandHandler(c.receivingUoWFactory(), c.logger)
}

// CreateRecomputeFulfillmentCommandHandler builds the handler with a unit of work per call.
func (c *CompositionRoot) CreateRecomputeFulfillmentCommandHandler() commands.RecomputeFulfillmentCommandHandler {
	return commands.NewRecomputeFulfillmentCommandHandler(c.receivingUoWFactory(), c.logger)
}

// CreateCreateRfqCommandHandler builds the handler with a unit of work per call.
func (c *CompositionRoot) CreateCreateRfqCommandHandler() commands.CreateRfqCommandHandler {
	return commands.NewCreateRfqCommandHandler(c.allocator, c.rfqUoWFactory())
}

// CreateUpdateRfqVendorsCommandHandler builds the handler with a unit of work per call.
func (c *CompositionRoot) CreateUpdateRfqVendorsCommandHandler() commands.UpdateRfqVendorsCommandHandler {
	return commands.NewUpdateRfqVendorsCommandHandler(c.rfqUoWFactory())
}

// CreateSendRfqCommandHandler builds the handler with a unit of work per call.
func (c *CompositionRoot) CreateSendRfqCommandHandler() commands.SendRfqCommandHandler {
	return commands.NewSendRfqCommandHandler(c.rfqUoWFactory())
}

// CreateTransitionRfqCommandHandler builds the handler with a unit of work per call.
func (c *CompositionRoot) CreateTransitionRfqCommandHandler() commands.TransitionRfqCommandHandler {
	return commands.NewTransitionRfqCommandHandler(c.rfqUoWFactory())
}

// CreateRespondToRfqCommandHandler builds the handler with a unit of work per call.
func (c *CompositionRoot) CreateRespondToRfqCommandHandler() commands.RespondToRfqCommandHandler {
	return commands.NewRespondToRfqCommandHandler(c.rfqUoWFactory())
}

// CreateGetPurchaseOrderFulfillmentQueryHandler builds the handler on the shared gorm handle.
func (c *CompositionRoot) CreateGetPurchaseOrderFulfillmentQueryHandler() queries.GetPurchaseOrderFulfillmentQueryHandler {
	return queries.NewGetPurchaseOrderFulfillmentQueryHandler(c.gormDB)
}

// CreateGetOpenPurchaseOrdersQueryHandler builds the handler on the shared gorm handle.
func (c *CompositionRoot) CreateGetOpenPurchaseOrdersQueryHandler() queries.GetOpenPurchaseOrdersQueryHandler {
	return queries.NewGetOpenPurchaseOrdersQueryHandler(c.gormDB)
}

// CreateServer wires every use case into the HTTP server.
func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	handlers := httpadapter.Handlers{
		Login:                    c.CreateLoginCommandHandler(),
		Logout:                   c.CreateLogoutCommandHandler(),
		CreatePurchaseOrder:      c.CreateCreatePurchaseOrderCommandHandler(),
		TransitionPurchaseOrder:  c.CreateTransitionPurchaseOrderCommandHandler(),
		PostGoodsReceipt:         c.CreatePostGoodsReceiptCommandHandler(),
		CancelReceiptLine:        c.CreateCancelReceiptLineCommandHandler(),
		RecomputeFulfillment:     c.CreateRecomputeFulfillmentCommandHandler(),
		CreateRfq:                c.CreateCreateRfqCommandHandler(),
		UpdateRfqVendors:         c.CreateUpdateRfqVendorsCommandHandler(),
		SendRfq:                  c.CreateSendRfqCommandHandler(),
		TransitionRfq:            c.CreateTransitionRfqCommandHandler(),
		RespondToRfq:             c.CreateRespondToRfqCommandHandler(),
		PurchaseOrderFulfillment: c.CreateGetPurchaseOrderFulfillmentQueryHandler(),
		OpenPurchaseOrders:       c.CreateGetOpenPurchaseOrdersQueryHandler(),
	}
	return httpadapter.NewServer(handlers, c.registry, c.activity, c.RetryPolicy(), c.logger)
}

// CreateJobManager schedules the session expiry sweep and the fulfillment
// sweep.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		jobs.NewSessionExpiryJob(c.activity, c.logger),
		jobs.NewFulfillmentSweepJob(
			c.CreateGetOpenPurchaseOrdersQueryHandler(),
			c.CreateRecomputeFulfillmentCommandHandler(),
			c.RetryPolicy(),
			c.config.SweepSchedule,
			c.logger,
		),
	)
}

// FuncPurchaseOrderUoWFactory adapts a function to commands.PurchaseOrderUoWFactory.
type FuncPurchaseOrderUoWFactory func() commands.PurchaseOrderUoW

// Create calls f.
func (f FuncPurchaseOrderUoWFactory) Create() commands.PurchaseOrderUoW {
	return f()
}

// FuncReceivingUoWFactory adapts a function to commands.ReceivingUoWFactory.
type FuncReceivingUoWFactory func() commands.ReceivingUoW

// Create calls f.
func (f FuncReceivingUoWFactory) Create() commands.ReceivingUoW {
	return f()
}

// FuncRfqUoWFactory adapts a function to commands.RfqUoWFactory.
type FuncRfqUoWFactory func() commands.RfqUoW

// Create calls f.
func (f FuncRfqUoWFactory) Create() commands.RfqUoW {
	return f()
}
