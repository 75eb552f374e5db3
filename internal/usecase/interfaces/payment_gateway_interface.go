package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway abstracts the checkout payment provider (Mercado Pago).
//
// The review step hands a finished build to it; the provider response is
// returned raw for traceability.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
