package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/smartq-app/booking-api/internal/domain/booking"
	"github.com/smartq-app/booking-api/internal/httperr"
	ucBooking "github.com/smartq-app/booking-api/internal/usecase/booking"
)

// DirectoryHandler is the public read side: browse vendors by service
// category and look up availability for a day.
type DirectoryHandler struct {
	listVendors  *ucBooking.ListVendors
	availability *ucBooking.GetAvailability
}

func NewDirectoryHandler(
	listVendors *ucBooking.ListVendors,
	availability *ucBooking.GetAvailability,
) *DirectoryHandler {
	return &DirectoryHandler{
		listVendors:  listVendors,
		availability: availability,
	}
}

func (h *DirectoryHandler) ListVendors(c *gin.Context) {
	service := c.Param("service")
	query := c.Query("query")

	vendors, err := h.listVendors.Execute(c.Request.Context(), service, query)
	if err != nil {
		httperr.Internal(c, "failed_to_list_vendors", "Could not list vendors.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"service": service,
		"vendors": vendors,
	})
}

func (h *DirectoryHandler) Availability(c *gin.Context) {
	vendorIDStr := c.Param("id")
	date := c.Query("date")

	if date == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	vendorID, err := strconv.ParseUint(vendorIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_vendor_id", "Invalid vendor id.")
		return
	}

	day, err := h.availability.Execute(
		c.Request.Context(),
		domain.AvailabilityInput{VendorID: uint(vendorID), Date: date},
	)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "vendor_not_found"):
			httperr.NotFound(c, "vendor_not_found", "Vendor not found.")
		case httperr.IsBusiness(err, "invalid_date"):
			httperr.BadRequest(c, "invalid_date", "Invalid date.")
		case httperr.IsBusiness(err, "invalid_range"), httperr.IsBusiness(err, "invalid_duration"):
			httperr.Internal(c, httperr.BusinessCode(err), "Vendor schedule is misconfigured.")
		default:
			httperr.Internal(c, "availability_failed", "Could not compute availability.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":   date,
		"closed": day.Closed,
		"slots":  day.Slots,
	})
}
