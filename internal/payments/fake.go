package payments

import (
	"context"

	"github.com/google/uuid"
)

// FakeGateway approves every charge with a generated payment reference.
// Dev and test only; must never be enabled in production.
type FakeGateway struct {
	Fail bool // force declines when set
}

func NewFakeGateway() *FakeGateway {
	return &FakeGateway{}
}

func (g *FakeGateway) Charge(
	ctx context.Context,
	req ChargeRequest,
) (*ChargeResult, error) {

	if g.Fail {
		return &ChargeResult{Success: false, Method: req.Method}, nil
	}

	return &ChargeResult{
		Success:   true,
		PaymentID: "pay_" + uuid.NewString()[:8],
		Method:    req.Method,
	}, nil
}

var _ Gateway = (*FakeGateway)(nil)
