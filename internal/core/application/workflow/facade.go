// Package workflow is the entry point of the order workflow engine. The Facade
// puts operation-level authorization, per-order locking, metrics and logging
// around the command and query handlers, and hands committed changes to the
// notification dispatcher and the event stream.
package workflow

import (
	"context"
	"errors"
	"sync"
	"time"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/access"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/logger"
	"laundry/internal/pkg/metrics"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultSideEffectTimeout = 5 * time.Second

// Recorder receives operation outcomes. *metrics.Workflow implements it.
type Recorder interface {
	ObserveOperation(operation, outcome string, elapsed time.Duration)
	CountOverride(to string)
	CountSideEffectFailure(kind string)
}

// Handlers groups the use case handlers the façade dispatches to.
type Handlers struct {
	CreateOrder      commands.CreateOrderCommandHandler
	AssignBranch     commands.AssignBranchCommandHandler
	AssignLogistics  commands.AssignLogisticsCommandHandler
	AssignStaff      commands.AssignStaffCommandHandler
	TransitionStatus commands.TransitionStatusCommandHandler
	Branches         commands.BranchCommandsHandler
	Staff            commands.StaffCommandsHandler
	Partners         commands.PartnerCommandsHandler

	GetOrder      queries.GetOrderQueryHandler
	ListOrders    queries.ListOrdersQueryHandler
	StatusSummary queries.OrderStatusSummaryQueryHandler
}

type Dependencies struct {
	Authorizer ports.OperationAuthorizer
	Locker     ports.OrderLocker
	Notifier   ports.Notifier
	Events     ports.EventPublisher
	Metrics    Recorder
	Logger     *zap.Logger

	// SideEffectTimeout bounds each post-commit hand-off. Zero means 5s.
	SideEffectTimeout time.Duration
}

type Facade struct {
	handlers   Handlers
	authorizer ports.OperationAuthorizer
	locker     ports.OrderLocker
	notifier   ports.Notifier
	events     ports.EventPublisher
	metrics    Recorder
	logger     *zap.Logger

	sideEffectTimeout time.Duration
	pending           sync.WaitGroup
}

func NewFacade(handlers Handlers, deps Dependencies) (*Facade, error) {
	var missing []error
	if deps.Authorizer == nil {
		missing = append(missing, errs.NewValueIsRequiredError("authorizer"))
	}
	if deps.Locker == nil {
		missing = append(missing, errs.NewValueIsRequiredError("locker"))
	}
	if deps.Notifier == nil {
		missing = append(missing, errs.NewValueIsRequiredError("notifier"))
	}
	if deps.Events == nil {
		missing = append(missing, errs.NewValueIsRequiredError("events"))
	}
	if deps.Metrics == nil {
		missing = append(missing, errs.NewValueIsRequiredError("metrics"))
	}
	if deps.Logger == nil {
		missing = append(missing, errs.NewValueIsRequiredError("logger"))
	}
	if err := errors.Join(missing...); err != nil {
		return nil, err
	}

	timeout := deps.SideEffectTimeout
	if timeout <= 0 {
		timeout = defaultSideEffectTimeout
	}

	return &Facade{
		handlers:          handlers,
		authorizer:        deps.Authorizer,
		locker:            deps.Locker,
		notifier:          deps.Notifier,
		events:            deps.Events,
		metrics:           deps.Metrics,
		logger:            logger.Component(deps.Logger, "workflow"),
		sideEffectTimeout: timeout,
	}, nil
}

// Wait blocks until every notification and event handed off so far has
// finished. Call it on shutdown after the HTTP server stopped.
func (f *Facade) Wait() {
	f.pending.Wait()
}

func (f *Facade) authorize(ctx context.Context, scope access.Scope, op ports.Operation) error {
	if err := scope.Validate(); err != nil {
		return errs.NewForbiddenError("request scope is missing")
	}
	return f.authorizer.Authorize(ctx, scope.Role(), op)
}

// withOrderLock runs fn while holding the lock of orderID. The lock is released
// with a detached context so a cancelled request still frees it.
func (f *Facade) withOrderLock(
	ctx context.Context,
	orderID kernel.UUID,
	fn func() (commands.Result, error),
) (commands.Result, error) {
	unlock, err := f.locker.Lock(ctx, orderID)
	if err != nil {
		return commands.Result{}, errs.NewInfrastructureError("lock order", err)
	}
	defer func() {
		if err := unlock(context.WithoutCancel(ctx)); err != nil {
			f.logger.Warn("order unlock failed", zap.String("order_id", orderID.String()), zap.Error(err))
		}
	}()
	return fn()
}

// observe wraps one façade call with authorization, metrics and an outcome
// log line. Generic methods are not allowed, hence the free function.
func observe[T any](
	ctx context.Context,
	f *Facade,
	scope access.Scope,
	op ports.Operation,
	name string,
	call func() (T, error),
	fields func(T) []zap.Field,
) (T, error) {
	start := time.Now()

	var out T
	err := f.authorize(ctx, scope, op)
	if err == nil {
		out, err = call()
	}
	elapsed := time.Since(start)

	base := []zap.Field{
		zap.String("operation", name),
		zap.String("role", scope.Role().String()),
		zap.String("actor_id", scope.ActorID().String()),
		zap.Duration("elapsed", elapsed),
	}

	if err != nil {
		code := errs.CodeOf(err)
		f.metrics.ObserveOperation(name, code, elapsed)
		f.logger.Log(rejectionLevel(err), "workflow operation rejected",
			append(base, zap.String("code", code), zap.Error(err))...)
		var zero T
		return zero, err
	}

	f.metrics.ObserveOperation(name, metrics.OutcomeOK, elapsed)
	if fields != nil {
		base = append(base, fields(out)...)
	}
	f.logger.Debug("workflow operation completed", base...)
	return out, nil
}

// rejectionLevel keeps business rejections out of the error log.
func rejectionLevel(err error) zapcore.Level {
	switch errs.KindOf(err) {
	case errs.KindInfrastructure, errs.KindUnknown:
		return zapcore.ErrorLevel
	case errs.KindForbidden:
		return zapcore.WarnLevel
	default:
		return zapcore.InfoLevel
	}
}
