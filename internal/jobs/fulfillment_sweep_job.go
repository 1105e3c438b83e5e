package jobs

import (
	"context"
	"errors"
	"log/slog"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/application/usecases/queries"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/retry"

	"github.com/robfig/cron/v3"
)

// OpenPurchaseOrdersLister lists the orders the sweep visits.
type OpenPurchaseOrdersLister interface {
	Handle(ctx context.Context, query queries.GetOpenPurchaseOrdersQuery) ([]queries.GetOpenPurchaseOrdersQueryResponse, error)
}

// FulfillmentRecomputer recomputes one order.
type FulfillmentRecomputer interface {
	Handle(ctx context.Context, cmd commands.RecomputeFulfillmentCommand) (commands.ReconcileOutcome, error)
}

// FulfillmentSweepJob recomputes the fulfillment of every open purchase
// order. It repairs derived figures left behind by manual data fixes; in
// normal operation every run is a no-op.
type FulfillmentSweepJob struct {
	lister     OpenPurchaseOrdersLister
	recomputer FulfillmentRecomputer
	policy     retry.Policy
	schedule   string
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewFulfillmentSweepJob creates the job. schedule is a standard five-field
// cron expression.
func NewFulfillmentSweepJob(
	lister OpenPurchaseOrdersLister,
	recomputer FulfillmentRecomputer,
	policy retry.Policy,
	schedule string,
	logger *slog.Logger,
) *FulfillmentSweepJob {
	return &FulfillmentSweepJob{
		lister:     lister,
		recomputer: recomputer,
		policy:     policy,
		schedule:   schedule,
		cron:       cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:     logger.With("component", "fulfillment_sweep_job"),
	}
}

// Start schedules the sweep. It fails on an invalid cron expression.
func (j *FulfillmentSweepJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Fulfillment sweep job started", "schedule", j.schedule)
	return nil
}

// Stop waits for a running sweep to finish.
func (j *FulfillmentSweepJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Fulfillment sweep job stopped")
}

// Run performs one sweep and returns the number of orders recomputed.
// A failure on one order is logged and the sweep moves on.
func (j *FulfillmentSweepJob) Run(ctx context.Context) int {
	orders, err := j.lister.Handle(ctx, queries.NewGetOpenPurchaseOrdersQuery(""))
	if err != nil {
		j.logger.ErrorContext(ctx, "Fulfillment sweep could not list open orders", "error", err)
		return 0
	}

	recomputed := 0
	for _, order := range orders {
		cmd, err := commands.NewRecomputeFulfillmentCommand(order.Number)
		if err != nil {
			j.logger.ErrorContext(ctx, "Fulfillment sweep skipped order", "purchase_order", order.Number, "error", err)
			continue
		}

		var outcome commands.ReconcileOutcome
		err = retry.OnContention(ctx, j.policy, func(ctx context.Context) error {
			outcome, err = j.recomputer.Handle(ctx, cmd)
			return err
		})
		switch {
		case err == nil:
			recomputed++
			if outcome.Fulfillment != order.Fulfillment {
				j.logger.WarnContext(ctx, "Fulfillment sweep corrected order",
					"purchase_order", order.Number,
					"from", order.Fulfillment.String(),
					"to", outcome.Fulfillment.String())
			}
		case errors.Is(err, errs.ErrTransientContention):
			j.logger.InfoContext(ctx, "Fulfillment sweep skipped busy order", "purchase_order", order.Number)
		default:
			j.logger.ErrorContext(ctx, "Fulfillment sweep failed", "purchase_order", order.Number, "error", err)
		}
	}
	return recomputed
}
