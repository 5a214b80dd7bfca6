package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/smartq-app/booking-api/internal/httperr"
	"github.com/smartq-app/booking-api/internal/httpresp"
	"github.com/smartq-app/booking-api/internal/middleware"
	"github.com/smartq-app/booking-api/internal/models"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

// List returns the vendor's audit trail, newest first, with optional
// action/date filters. Admin callers pick the vendor via the vendor_id
// query parameter.
func (h *AuditLogsHandler) List(c *gin.Context) {
	ident, _ := middleware.IdentityFrom(c)

	vendorID := ident.VendorID
	if ident.IsAdmin() {
		v, err := strconv.ParseUint(c.Query("vendor_id"), 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_vendor_id", "vendor_id is required for admin queries.")
			return
		}
		vendorID = uint(v)
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	q := h.db.
		Model(&models.AuditLog{}).
		Where("vendor_id = ?", vendorID)

	if action := c.Query("action"); action != "" {
		q = q.Where("action = ?", action)
	}

	if fromStr := c.Query("from"); fromStr != "" {
		if from, err := time.Parse("2006-01-02", fromStr); err == nil {
			q = q.Where("created_at >= ?", from)
		}
	}

	if toStr := c.Query("to"); toStr != "" {
		if to, err := time.Parse("2006-01-02", toStr); err == nil {
			q = q.Where("created_at < ?", to.Add(24*time.Hour))
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "audit_count_failed", "Could not count logs.")
		return
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&logs).Error; err != nil {
		httperr.Internal(c, "audit_list_failed", "Could not list logs.")
		return
	}

	httpresp.Page(c, logs, page, limit, total)
}
