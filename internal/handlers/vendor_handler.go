package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/smartq-app/booking-api/internal/domain/booking"
	"github.com/smartq-app/booking-api/internal/dto"
	"github.com/smartq-app/booking-api/internal/httperr"
	"github.com/smartq-app/booking-api/internal/httpresp"
	"github.com/smartq-app/booking-api/internal/middleware"
	"github.com/smartq-app/booking-api/internal/models"
	ucBooking "github.com/smartq-app/booking-api/internal/usecase/booking"
)

// VendorHandler is the vendor dashboard: weekly schedule management,
// the per-day and per-month ledger views, and slot block/unblock.
type VendorHandler struct {
	db      *gorm.DB
	list    *ucBooking.ListBookings
	block   *ucBooking.BlockSlot
	unblock *ucBooking.UnblockSlot
}

func NewVendorHandler(
	db *gorm.DB,
	list *ucBooking.ListBookings,
	block *ucBooking.BlockSlot,
	unblock *ucBooking.UnblockSlot,
) *VendorHandler {
	return &VendorHandler{db: db, list: list, block: block, unblock: unblock}
}

// --------- Requests ---------

type WorkingDayConfig struct {
	Weekday   int    `json:"weekday" binding:"min=0,max=6"`
	Active    bool   `json:"active"`
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
}

type WorkingHoursUpdateRequest struct {
	Days []WorkingDayConfig `json:"days" binding:"required,len=7"`
}

type SlotRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

// --------- Working hours ---------

func (h *VendorHandler) GetWorkingHours(c *gin.Context) {
	ident, _ := middleware.IdentityFrom(c)

	var hours []models.WorkingHours
	if err := h.db.
		Where("vendor_id = ?", ident.VendorID).
		Order("weekday ASC").
		Find(&hours).Error; err != nil {
		httperr.Internal(c, "failed_to_get_working_hours", "Could not load schedule.")
		return
	}

	c.JSON(http.StatusOK, hours)
}

// UpdateWorkingHours replaces the full week. Every active day must carry a
// window the grid generator accepts (close strictly after open), checked
// against the vendor's slot duration before anything is written.
func (h *VendorHandler) UpdateWorkingHours(c *gin.Context) {
	ident, _ := middleware.IdentityFrom(c)

	var req WorkingHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var vendor models.Vendor
	if err := h.db.First(&vendor, ident.VendorID).Error; err != nil {
		httperr.NotFound(c, "vendor_not_found", "Vendor not found.")
		return
	}

	seen := make(map[int]bool, 7)
	for _, d := range req.Days {
		if seen[d.Weekday] {
			httperr.BadRequest(c, "duplicate_weekday", "Each weekday must appear once.")
			return
		}
		seen[d.Weekday] = true

		if !d.Active {
			continue
		}
		if _, err := domain.GenerateGrid(d.OpenTime, d.CloseTime, vendor.SlotDurationMinutes); err != nil {
			httperr.BadRequest(c, httperr.BusinessCode(err), "Invalid working hours.")
			return
		}
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("vendor_id = ?", ident.VendorID).
			Delete(&models.WorkingHours{}).Error; err != nil {
			return err
		}

		for _, d := range req.Days {
			wh := models.WorkingHours{
				VendorID:  ident.VendorID,
				Weekday:   d.Weekday,
				Active:    d.Active,
				OpenTime:  d.OpenTime,
				CloseTime: d.CloseTime,
			}
			if !d.Active {
				wh.OpenTime = ""
				wh.CloseTime = ""
			}
			if err := tx.Create(&wh).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		httperr.Internal(c, "failed_to_save_working_hours", "Could not save schedule.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// --------- Ledger views ---------

func (h *VendorHandler) ListBookings(c *gin.Context) {
	ident, _ := middleware.IdentityFrom(c)

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	bookings, err := h.list.Execute(c.Request.Context(), ident.VendorID, date)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_date") {
			httperr.BadRequest(c, "invalid_date", "Invalid date.")
			return
		}
		httperr.Internal(c, "failed_to_list_bookings", "Could not list bookings.")
		return
	}

	httpresp.List(c, dto.FromBookings(bookings))
}

func (h *VendorHandler) ListBookingsByMonth(c *gin.Context) {
	ident, _ := middleware.IdentityFrom(c)

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Invalid year.")
		return
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Invalid month.")
		return
	}

	bookings, err := h.list.ByMonth(c.Request.Context(), ident.VendorID, year, month)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Could not list bookings.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":     year,
		"month":    month,
		"bookings": dto.FromBookings(bookings),
	})
}

// --------- Block / unblock ---------

func (h *VendorHandler) BlockSlot(c *gin.Context) {
	ident, _ := middleware.IdentityFrom(c)

	var req SlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	b, err := h.block.Execute(c.Request.Context(), ucBooking.BlockSlotInput{
		VendorID: ident.VendorID,
		Date:     req.Date,
		Time:     req.Time,
		Actor:    ident.Email,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "slot_unavailable"):
			httperr.Conflict(c, "slot_unavailable", "Slot is already taken.")
		case httperr.IsBusiness(err, "invalid_date"):
			httperr.BadRequest(c, "invalid_date", "Invalid date.")
		default:
			httperr.Internal(c, "failed_to_block_slot", "Could not block slot.")
		}
		return
	}

	c.JSON(http.StatusCreated, b)
}

func (h *VendorHandler) UnblockSlot(c *gin.Context) {
	ident, _ := middleware.IdentityFrom(c)

	var req SlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	err := h.unblock.Execute(c.Request.Context(), ucBooking.UnblockSlotInput{
		VendorID: ident.VendorID,
		Date:     req.Date,
		Time:     req.Time,
		Actor:    ident.Email,
	})
	if err != nil {
		if httperr.IsBusiness(err, "invalid_date") {
			httperr.BadRequest(c, "invalid_date", "Invalid date.")
			return
		}
		httperr.Internal(c, "failed_to_unblock_slot", "Could not unblock slot.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
