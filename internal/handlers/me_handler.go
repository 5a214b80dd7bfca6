package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/smartq-app/booking-api/internal/httperr"
	"github.com/smartq-app/booking-api/internal/middleware"
	"github.com/smartq-app/booking-api/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

// GetMe returns the caller's identity and, for vendor accounts, the full
// vendor record.
func (h *MeHandler) GetMe(c *gin.Context) {
	ident, ok := middleware.IdentityFrom(c)
	if !ok {
		httperr.Unauthorized(c, "missing_identity", "Login required.")
		return
	}

	resp := gin.H{"identity": ident}

	if ident.IsVendor() {
		var vendor models.Vendor
		if err := h.db.
			Preload("Services").
			Preload("WorkingHours").
			First(&vendor, ident.VendorID).Error; err != nil {
			httperr.Internal(c, "vendor_not_found", "Vendor record missing.")
			return
		}
		resp["vendor"] = vendor
	}

	c.JSON(http.StatusOK, resp)
}
