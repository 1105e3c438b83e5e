package http

import (
	"time"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/application/usecases/queries"
	"procurement/internal/generated/servers"

	"github.com/samber/lo"
)

// Error is the body of every failed request.
type Error = servers.Error

// toLineInputs converts request lines into command inputs. Quantities are
// already decimals; range checks happen in the command constructors.
func toLineInputs(lines []servers.Line) []commands.LineInput {
	return lo.Map(lines, func(l servers.Line, _ int) commands.LineInput {
		return commands.LineInput{ItemCode: l.ItemCode, Quantity: l.Quantity}
	})
}

func toReconcileResponse(outcome commands.ReconcileOutcome) servers.ReconcileResponse {
	response := servers.ReconcileResponse{
		PurchaseOrderNo: outcome.PurchaseOrderNo,
		Status:          outcome.Status.String(),
		Fulfillment:     outcome.Fulfillment.String(),
	}
	if outcome.ReceiptNo != "" {
		response.ReceiptNo = lo.ToPtr(outcome.ReceiptNo)
	}
	return response
}

func toFulfillmentResponse(view queries.GetPurchaseOrderFulfillmentQueryResponse) servers.FulfillmentResponse {
	lines := lo.Map(view.Lines, func(l queries.FulfillmentLine, _ int) servers.FulfillmentLine {
		return servers.FulfillmentLine{
			ItemCode:    l.ItemCode,
			Ordered:     l.Ordered,
			Received:    l.Received,
			Outstanding: l.Outstanding(),
		}
	})
	return servers.FulfillmentResponse{
		Number:      view.Number,
		VendorId:    view.VendorID,
		Status:      view.Status.String(),
		Fulfillment: view.Fulfillment.String(),
		Lines:       lines,
	}
}

func toOpenPurchaseOrders(orders []queries.GetOpenPurchaseOrdersQueryResponse) []servers.OpenPurchaseOrder {
	return lo.Map(orders, func(o queries.GetOpenPurchaseOrdersQueryResponse, _ int) servers.OpenPurchaseOrder {
		return servers.OpenPurchaseOrder{
			Number:      o.Number,
			VendorId:    o.VendorID,
			Status:      o.Status.String(),
			Fulfillment: o.Fulfillment.String(),
		}
	})
}

// parseBusinessDate reads a YYYY-MM-DD date, or returns today in UTC when
// the value is absent.
func parseBusinessDate(value *servers.BusinessDate, now func() time.Time) (time.Time, error) {
	if value == nil || *value == "" {
		return now().UTC(), nil
	}
	return time.Parse(time.DateOnly, *value)
}
