// Package reconcile polls the payment gateway for orders whose payment has
// not yet been settled by a callback.
package reconcile

import (
	"context"
	"fmt"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/kanchiweaves/storefront.api/models"
	"github.com/kanchiweaves/storefront.api/service"
)

// PaymentSyncer lists unsettled payments and settles them against their
// gateway. It is satisfied by *service.PaymentService.
type PaymentSyncer interface {
	PendingPayments() ([]models.Order, error)
	SyncPayment(ctx context.Context, order *models.Order) (*models.PaymentStatus, bool, service.ResponseType, error)
}

// Worker re-checks payment_pending orders on a fixed interval
type Worker struct {
	Payments PaymentSyncer
	Interval time.Duration

	// OnSettled, when set, is called for every order a poll settles
	OnSettled func(order *models.Order)
}

// Run polls until ctx is cancelled. A non-positive interval disables
// polling and Run returns immediately.
func (w *Worker) Run(ctx context.Context) {
	if w.Interval <= 0 {
		log.Info("payment reconciliation disabled")
		return
	}

	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()

	log.Info("payment reconciliation started", log.Data{"interval": w.Interval.String()})

	for {
		select {
		case <-ctx.Done():
			log.Info("payment reconciliation stopped")
			return
		case <-ticker.C:
			w.Poll(ctx)
		}
	}
}

// Poll checks every payment_pending order once and returns how many were
// settled. A failure on one order does not stop the others.
func (w *Worker) Poll(ctx context.Context) int {
	orders, err := w.Payments.PendingPayments()
	if err != nil {
		log.Error(fmt.Errorf("error listing pending payments: [%w]", err))
		return 0
	}

	settled := 0
	for i := range orders {
		if ctx.Err() != nil {
			break
		}

		order := &orders[i]
		status, moved, _, err := w.Payments.SyncPayment(ctx, order)
		if err != nil {
			log.Error(err, log.Data{"order_id": order.ID, "payment_reference": order.PaymentReference})
			continue
		}
		if !moved {
			continue
		}

		settled++
		log.Info("payment settled by poll", log.Data{"order_id": order.ID, "code": status.Code, "order_status": order.Status})
		if w.OnSettled != nil {
			w.OnSettled(order)
		}
	}

	log.Debug("payment reconciliation poll finished", log.Data{"pending": len(orders), "settled": settled})

	return settled
}
