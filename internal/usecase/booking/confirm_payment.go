package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/smartq-app/booking-api/internal/audit"
	domain "github.com/smartq-app/booking-api/internal/domain/booking"
	"github.com/smartq-app/booking-api/internal/httperr"
	"github.com/smartq-app/booking-api/internal/models"
	"github.com/smartq-app/booking-api/internal/payments"
)

type ConfirmPaymentInput struct {
	ConfirmationID string
	Method         string // card | upi | wallet
	Customer       string
}

// ConfirmPayment charges the gateway for a pending confirmation and, on
// success, stamps the payment reference onto both the artifact and the
// underlying booking. A declined charge leaves the reservation intact; the
// reaper is the only release path.
type ConfirmPayment struct {
	repo    domain.Repository
	gateway payments.Gateway
	audit   *audit.Dispatcher
}

func NewConfirmPayment(
	repo domain.Repository,
	gateway payments.Gateway,
	auditor *audit.Dispatcher,
) *ConfirmPayment {
	return &ConfirmPayment{
		repo:    repo,
		gateway: gateway,
		audit:   auditor,
	}
}

func (uc *ConfirmPayment) Execute(
	ctx context.Context,
	in ConfirmPaymentInput,
) (*models.Confirmation, error) {

	conf, err := uc.repo.GetConfirmation(ctx, in.ConfirmationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness("confirmation_not_found")
		}
		return nil, err
	}

	if conf.Customer != in.Customer {
		return nil, httperr.ErrBusiness("confirmation_not_found")
	}

	if err := domain.CanConfirmPayment(domain.PaymentState(conf.Status)); err != nil {
		return nil, err
	}

	result, err := uc.gateway.Charge(ctx, payments.ChargeRequest{
		Amount:        conf.Price,
		Method:        in.Method,
		CustomerEmail: conf.Customer,
		Description:   fmt.Sprintf("%s at %s on %s %s", conf.Service, conf.VendorName, conf.Date, conf.Time),
	})
	if err != nil {
		return nil, httperr.ErrBusiness("payment_failed")
	}
	if !result.Success {
		return nil, httperr.ErrBusiness("payment_failed")
	}

	conf.Status = string(domain.PaymentConfirmed)
	conf.PaymentID = result.PaymentID
	conf.Amount = conf.Price
	conf.PaymentMethod = result.Method

	// Conditional on the stored status still being pending: if the reaper
	// abandoned the reservation while the gateway was charging, the
	// terminal state stands and this payment does not resurrect it.
	won, err := uc.repo.TransitionConfirmation(ctx, conf, string(domain.PaymentPending))
	if err != nil {
		return nil, err
	}
	if !won {
		return nil, httperr.ErrBusiness("invalid_state")
	}

	booking, err := uc.repo.GetBookingByID(ctx, conf.BookingID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
	} else {
		booking.PaymentStatus = domain.BookingPaymentPaid
		booking.PaymentID = result.PaymentID
		booking.Amount = conf.Price
		booking.PaymentMethod = result.Method
		if err := uc.repo.UpdateBooking(ctx, booking); err != nil {
			return nil, err
		}
	}

	uc.audit.Dispatch(audit.Event{
		VendorID: conf.VendorID,
		Actor:    conf.Customer,
		Action:   "payment_confirmed",
		Entity:   "booking",
		EntityID: &conf.BookingID,
		Metadata: map[string]any{"payment_id": result.PaymentID, "method": result.Method},
	})

	return conf, nil
}
