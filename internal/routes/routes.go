package routes

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/smartq-app/booking-api/internal/audit"
	"github.com/smartq-app/booking-api/internal/cache"
	"github.com/smartq-app/booking-api/internal/config"
	"github.com/smartq-app/booking-api/internal/handlers"
	infraRepo "github.com/smartq-app/booking-api/internal/infra/repository"
	"github.com/smartq-app/booking-api/internal/middleware"
	"github.com/smartq-app/booking-api/internal/payments"
	"github.com/smartq-app/booking-api/internal/session"
	ucBooking "github.com/smartq-app/booking-api/internal/usecase/booking"
)

// Deps carries the wired application graph. main owns process lifecycle;
// everything below the HTTP surface is assembled here.
type Deps struct {
	Release *ucBooking.ReleaseExpired
}

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) *Deps {

	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	repo := infraRepo.NewBookingGormRepository(db)

	availabilityCache := (*cache.Availability)(nil)
	if rdb != nil {
		availabilityCache = cache.NewAvailability(rdb, 30*time.Second)
	}

	auditDispatcher := audit.NewDispatcher(audit.New(db))

	var gateway payments.Gateway
	if cfg.FakePayments {
		gateway = payments.NewFakeGateway()
	} else {
		mp, err := payments.NewMercadoPagoGateway(cfg.MPAccessToken)
		if err != nil {
			log.Fatalf("failed to init payment gateway: %v", err)
		}
		gateway = mp
	}

	// ======================================================
	// USE CASES
	// ======================================================
	availabilityUC := ucBooking.NewGetAvailability(repo, availabilityCache)
	listVendorsUC := ucBooking.NewListVendors(repo)
	createBookingUC := ucBooking.NewCreateBooking(repo, auditDispatcher, availabilityCache, cfg.BookingWindowDays)
	confirmPaymentUC := ucBooking.NewConfirmPayment(repo, gateway, auditDispatcher)
	listBookingsUC := ucBooking.NewListBookings(repo)
	blockSlotUC := ucBooking.NewBlockSlot(repo, auditDispatcher, availabilityCache)
	unblockSlotUC := ucBooking.NewUnblockSlot(repo, auditDispatcher, availabilityCache)
	releaseExpiredUC := ucBooking.NewReleaseExpired(
		repo,
		auditDispatcher,
		availabilityCache,
		time.Duration(cfg.PendingTTLMinutes)*time.Minute,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	directoryHandler := handlers.NewDirectoryHandler(listVendorsUC, availabilityUC)
	bookingHandler := handlers.NewBookingHandler(createBookingUC, confirmPaymentUC)
	vendorHandler := handlers.NewVendorHandler(db, listBookingsUC, blockSlotUC, unblockSlotUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		public := api.Group("/public")
		{
			public.GET("/services/:service/vendors", directoryHandler.ListVendors)
			public.GET("/vendors/:id/availability", directoryHandler.Availability)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.RegisterUser)
		api.POST("/auth/register-vendor", authHandler.RegisterVendor)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// Customer booking flow.
			secured.POST("/bookings", bookingHandler.Create)
			secured.POST("/bookings/confirmations/:id/pay", bookingHandler.ConfirmPayment)

			// Vendor dashboard.
			vendorAPI := secured.Group("/me")
			vendorAPI.Use(middleware.RequireKind(session.KindVendor))
			{
				vendorAPI.GET("/working-hours", vendorHandler.GetWorkingHours)
				vendorAPI.PUT("/working-hours", vendorHandler.UpdateWorkingHours)

				vendorAPI.GET("/bookings", vendorHandler.ListBookings)
				vendorAPI.GET("/bookings/month", vendorHandler.ListBookingsByMonth)
				vendorAPI.POST("/bookings/block", vendorHandler.BlockSlot)
				vendorAPI.POST("/bookings/unblock", vendorHandler.UnblockSlot)

				vendorAPI.GET("/audit-logs", auditLogsHandler.List)
			}

			// Admin: cross-vendor audit access.
			adminAPI := secured.Group("/admin")
			adminAPI.Use(middleware.RequireKind(session.KindAdmin))
			{
				adminAPI.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}

	return &Deps{Release: releaseExpiredUC}
}
