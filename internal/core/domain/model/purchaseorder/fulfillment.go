package purchaseorder

import (
	"fmt"

	"procurement/internal/pkg/errs"
)

// Fulfillment is derived from receipts; it is never set by users.
type Fulfillment int

// Fulfillment values. FulfillmentUnknown catches uninitialized values.
const (
	FulfillmentUnknown Fulfillment = iota
	NotReceived
	Partial
	Completed
)

var fulfillmentNames = map[Fulfillment]string{
	FulfillmentUnknown: "UNKNOWN",
	NotReceived:        "NOT_RECEIVED",
	Partial:            "PARTIAL",
	Completed:          "COMPLETED",
}

// String returns the wire name, for example NOT_RECEIVED.
func (f Fulfillment) String() string {
	if name, ok := fulfillmentNames[f]; ok {
		return name
	}
	return fulfillmentNames[FulfillmentUnknown]
}

// Validate rejects FulfillmentUnknown and out-of-range values.
func (f Fulfillment) Validate() error {
	if f < NotReceived || f > Completed {
		return errs.NewValueIsInvalidErrorWithCause("fulfillment", fmt.Errorf("%d is not a valid fulfillment", f))
	}
	return nil
}
