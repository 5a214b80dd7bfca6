package payments

import "context"

type ChargeRequest struct {
	Amount        float64
	Method        string // card | upi | wallet
	CustomerEmail string
	Description   string
}

type ChargeResult struct {
	Success   bool
	PaymentID string
	Method    string
}

// Gateway is the external payment processor. The booking core only cares
// about success/failure plus a payment reference.
type Gateway interface {
	Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error)
}
