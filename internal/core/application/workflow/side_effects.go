package workflow

import (
	"context"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/access"
	"laundry/internal/core/ports"

	"go.uber.org/zap"
)

const (
	sideEffectEvent        = "event"
	sideEffectNotification = "notification"
)

// afterCommit publishes the change and, for customer-facing statuses, asks
// for a notification. Both run detached from the request; a failure is logged
// and counted but the committed change stands.
func (f *Facade) afterCommit(ctx context.Context, scope access.Scope, kind ports.ChangeKind, res commands.Result) {
	o := res.Order
	event := ports.OrderChanged{
		OrderID:   o.ID(),
		Number:    o.Number().String(),
		Kind:      kind,
		From:      res.From,
		To:        o.Status(),
		ActorID:   scope.ActorID(),
		ActorRole: scope.Role(),
		Override:  res.Override,
		Version:   o.Version(),
		At:        res.At,
	}

	var notification *ports.StatusNotification
	if res.From != o.Status() && ports.Notifies(o.Status()) {
		notification = &ports.StatusNotification{
			OrderID:    o.ID(),
			Number:     event.Number,
			CustomerID: o.CustomerID(),
			Status:     o.Status(),
			At:         event.At,
		}
	}

	detached := context.WithoutCancel(ctx)
	f.pending.Go(func() {
		ctx, cancel := context.WithTimeout(detached, f.sideEffectTimeout)
		defer cancel()

		log := f.logger.With(
			zap.String("order_id", event.OrderID.String()),
			zap.String("kind", string(event.Kind)),
		)

		if err := f.events.PublishOrderChanged(ctx, event); err != nil {
			f.metrics.CountSideEffectFailure(sideEffectEvent)
			log.Error("publish order change failed", zap.Error(err))
		}

		if notification == nil {
			return
		}
		if err := f.notifier.NotifyStatusChanged(ctx, *notification); err != nil {
			f.metrics.CountSideEffectFailure(sideEffectNotification)
			log.Error("status notification hand-off failed",
				zap.String("status", notification.Status.String()), zap.Error(err))
		}
	})
}
