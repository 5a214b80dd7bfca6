package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartq-app/booking-api/internal/httperr"
	"github.com/smartq-app/booking-api/internal/middleware"
	ucBooking "github.com/smartq-app/booking-api/internal/usecase/booking"
)

// BookingHandler covers the customer-facing booking transaction and the
// payment confirmation callback.
type BookingHandler struct {
	create  *ucBooking.CreateBooking
	confirm *ucBooking.ConfirmPayment
}

func NewBookingHandler(
	create *ucBooking.CreateBooking,
	confirm *ucBooking.ConfirmPayment,
) *BookingHandler {
	return &BookingHandler{create: create, confirm: confirm}
}

// --------- Requests ---------

type CreateBookingRequest struct {
	VendorID uint   `json:"vendor_id" binding:"required"`
	Service  string `json:"service" binding:"required"`
	Date     string `json:"date" binding:"required"` // YYYY-MM-DD
	Time     string `json:"time" binding:"required"` // HH:MM
}

type ConfirmPaymentRequest struct {
	Method string `json:"method" binding:"required,oneof=card upi wallet"`
}

// --------- Handlers ---------

func (h *BookingHandler) Create(c *gin.Context) {
	ident, ok := middleware.IdentityFrom(c)
	if !ok {
		httperr.Unauthorized(c, "missing_identity", "Login required.")
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	conf, err := h.create.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		VendorID: req.VendorID,
		Service:  req.Service,
		Date:     req.Date,
		Time:     req.Time,
		Customer: ident.Email,
	})
	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, conf)
}

func (h *BookingHandler) ConfirmPayment(c *gin.Context) {
	ident, ok := middleware.IdentityFrom(c)
	if !ok {
		httperr.Unauthorized(c, "missing_identity", "Login required.")
		return
	}

	var req ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	conf, err := h.confirm.Execute(c.Request.Context(), ucBooking.ConfirmPaymentInput{
		ConfirmationID: c.Param("id"),
		Method:         req.Method,
		Customer:       ident.Email,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "confirmation_not_found"):
			httperr.NotFound(c, "confirmation_not_found", "Confirmation not found.")
		case httperr.IsBusiness(err, "invalid_state"):
			httperr.Conflict(c, "invalid_state", "Payment already settled.")
		case httperr.IsBusiness(err, "payment_failed"):
			// Reservation stays; the customer may retry with another method.
			httperr.Write(c, http.StatusPaymentRequired, "payment_failed", "Payment was declined.")
		default:
			httperr.Internal(c, "payment_error", "Could not process payment.")
		}
		return
	}

	c.JSON(http.StatusOK, conf)
}

func mapBookingError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "vendor_not_found"):
		httperr.NotFound(c, "vendor_not_found", "Vendor not found.")
	case httperr.IsBusiness(err, "service_not_found"):
		httperr.BadRequest(c, "service_not_found", "Vendor does not offer this service.")
	case httperr.IsBusiness(err, "invalid_date"):
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
	case httperr.IsBusiness(err, "date_out_of_range"):
		httperr.BadRequest(c, "date_out_of_range", "Date is outside the booking window.")
	case httperr.IsBusiness(err, "closed_day"):
		httperr.BadRequest(c, "closed_day", "Vendor is closed on this day.")
	case httperr.IsBusiness(err, "slot_unavailable"):
		httperr.Conflict(c, "slot_unavailable", "Slot is no longer available.")
	case httperr.IsBusiness(err, "invalid_range"), httperr.IsBusiness(err, "invalid_duration"):
		httperr.Internal(c, httperr.BusinessCode(err), "Vendor schedule is misconfigured.")
	default:
		httperr.Internal(c, "failed_to_create_booking", "Could not create booking.")
	}
}
