package payments

import (
	"context"
	"fmt"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

// MercadoPagoGateway charges through the Mercado Pago payments API.
type MercadoPagoGateway struct {
	client payment.Client
}

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("payments: mercadopago config: %w", err)
	}
	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) Charge(
	ctx context.Context,
	req ChargeRequest,
) (*ChargeResult, error) {

	res, err := g.client.Create(ctx, payment.Request{
		TransactionAmount: req.Amount,
		Description:       req.Description,
		PaymentMethodID:   req.Method,
		Payer: &payment.PayerRequest{
			Email: req.CustomerEmail,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("payments: mercadopago create: %w", err)
	}

	return &ChargeResult{
		Success:   res.Status == "approved",
		PaymentID: fmt.Sprintf("%d", res.ID),
		Method:    req.Method,
	}, nil
}

var _ Gateway = (*MercadoPagoGateway)(nil)
