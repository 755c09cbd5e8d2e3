// Package payment adapts the external card payment gateway. The service layer
// only sees the Gateway port; settlement state is always pulled from the
// gateway, never asserted by the client.
package payment

import "context"

// Intent is the gateway's handle for one payment attempt. ClientSecret is
// handed to the payer's device to drive the card flow.
type Intent struct {
	ID           string
	ClientSecret string
}

// StatusSucceeded is the one gateway answer that marks an order paid.
// Every other terminal status maps to a failed payment.
const StatusSucceeded = "succeeded"

// Gateway creates payment intents and reports their settlement state.
// Amounts are expressed in the gateway's minor unit (cents).
type Gateway interface {
	CreateIntent(ctx context.Context, amountCents int64, currency string, metadata map[string]string) (*Intent, error)
	RetrieveIntent(ctx context.Context, id string) (status string, err error)
}
