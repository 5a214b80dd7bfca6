package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/smartq-app/booking-api/internal/config"
	domain "github.com/smartq-app/booking-api/internal/domain/booking"
	"github.com/smartq-app/booking-api/internal/httperr"
	"github.com/smartq-app/booking-api/internal/models"
	"github.com/smartq-app/booking-api/internal/session"
	"github.com/smartq-app/booking-api/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, config: cfg}
}

// --------- Requests ---------

type RegisterUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type RegisterVendorRequest struct {
	VendorName  string `json:"vendor_name" binding:"required"`
	VendorSlug  string `json:"vendor_slug" binding:"required"`
	Phone       string `json:"phone"`
	Location    string `json:"location"`
	Description string `json:"description"`

	SlotDurationMinutes int `json:"slot_duration_minutes"`

	Services []struct {
		Name  string  `json:"name" binding:"required"`
		Price float64 `json:"price" binding:"min=0"`
	} `json:"services" binding:"required,min=1"`

	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) RegisterUser(c *gin.Context) {
	var req RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validators.IsEmailValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "Email domain does not resolve.")
		return
	}

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.Conflict(c, "email_already_registered", "Account already exists.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Could not register.")
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hashed),
		Kind:         string(session.KindUser),
	}
	if err := h.db.Create(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_create_user", "Could not register.")
		return
	}

	token, err := h.issueToken(user)
	if err != nil {
		httperr.Internal(c, "failed_to_issue_token", "Could not register.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token, "kind": user.Kind})
}

func (h *AuthHandler) RegisterVendor(c *gin.Context) {
	var req RegisterVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validators.IsEmailValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "Email domain does not resolve.")
		return
	}

	slug := strings.ToLower(strings.TrimSpace(req.VendorSlug))

	var count int64
	h.db.Model(&models.Vendor{}).Where("slug = ?", slug).Count(&count)
	if count > 0 {
		httperr.Conflict(c, "slug_already_exists", "Vendor slug taken.")
		return
	}

	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.Conflict(c, "email_already_registered", "Account already exists.")
		return
	}

	duration := req.SlotDurationMinutes
	if duration <= 0 {
		duration = domain.DefaultSlotDuration
	}

	vendor := models.Vendor{
		Name:                req.VendorName,
		Slug:                slug,
		Email:               email,
		Phone:               req.Phone,
		Location:            req.Location,
		Description:         req.Description,
		SlotDurationMinutes: duration,
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Could not register.")
		return
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&vendor).Error; err != nil {
			return err
		}

		for _, s := range req.Services {
			svc := models.VendorService{
				VendorID: vendor.ID,
				Name:     strings.ToLower(strings.TrimSpace(s.Name)),
				Price:    s.Price,
				Active:   true,
			}
			if err := tx.Create(&svc).Error; err != nil {
				return err
			}
		}

		// Default schedule: Monday through Saturday 09:00-18:00, Sunday
		// always closed. All seven weekdays get a row.
		for weekday := 0; weekday < 7; weekday++ {
			wh := models.WorkingHours{
				VendorID:  vendor.ID,
				Weekday:   weekday,
				OpenTime:  "09:00",
				CloseTime: "18:00",
				Active:    weekday != 0,
			}
			if !wh.Active {
				wh.OpenTime = ""
				wh.CloseTime = ""
			}
			if err := tx.Create(&wh).Error; err != nil {
				return err
			}
		}

		user := models.User{
			Name:         req.VendorName,
			Email:        email,
			PasswordHash: string(hashed),
			Kind:         string(session.KindVendor),
			VendorID:     &vendor.ID,
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_create_vendor", "Could not register.")
		return
	}

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_create_vendor", "Could not register.")
		return
	}

	token, err := h.issueToken(user)
	if err != nil {
		httperr.Internal(c, "failed_to_issue_token", "Could not register.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token":  token,
		"kind":   user.Kind,
		"vendor": vendor,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Wrong email or password.")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Wrong email or password.")
		return
	}

	token, err := h.issueToken(user)
	if err != nil {
		httperr.Internal(c, "failed_to_issue_token", "Could not log in.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "kind": user.Kind})
}

func (h *AuthHandler) issueToken(user models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.Email,
		"kind": user.Kind,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
	}
	if user.VendorID != nil {
		claims["vendorId"] = *user.VendorID
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
