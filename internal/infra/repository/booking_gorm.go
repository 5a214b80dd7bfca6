package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/smartq-app/booking-api/internal/domain/booking"
	"github.com/smartq-app/booking-api/internal/httperr"
	"github.com/smartq-app/booking-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}

// --------------------------------------------------
// Vendor directory
// --------------------------------------------------

func (r *BookingGormRepository) GetVendorByID(
	ctx context.Context,
	id uint,
) (*models.Vendor, error) {

	var vendor models.Vendor
	if err := r.db.WithContext(ctx).
		Preload("Services").
		First(&vendor, id).Error; err != nil {
		return nil, translate(err)
	}
	return &vendor, nil
}

func (r *BookingGormRepository) GetVendorBySlug(
	ctx context.Context,
	slug string,
) (*models.Vendor, error) {

	var vendor models.Vendor
	if err := r.db.WithContext(ctx).
		Preload("Services").
		Where("slug = ?", slug).
		First(&vendor).Error; err != nil {
		return nil, translate(err)
	}
	return &vendor, nil
}

func (r *BookingGormRepository) ListVendorsByService(
	ctx context.Context,
	service string,
	query string,
) ([]models.Vendor, error) {

	q := r.db.WithContext(ctx).
		Preload("Services").
		Joins("JOIN vendor_services ON vendor_services.vendor_id = vendors.id").
		Where("vendor_services.name = ? AND vendor_services.active = true", service)

	if query = strings.TrimSpace(strings.ToLower(query)); query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(vendors.name) LIKE ? OR LOWER(vendors.location) LIKE ? OR LOWER(vendors.description) LIKE ?",
			like, like, like,
		)
	}

	var vendors []models.Vendor
	if err := q.Order("vendors.id ASC").Find(&vendors).Error; err != nil {
		return nil, err
	}
	return vendors, nil
}

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	vendorID uint,
	name string,
) (*models.VendorService, error) {

	var svc models.VendorService
	if err := r.db.WithContext(ctx).
		Where("vendor_id = ? AND name = ? AND active = true", vendorID, name).
		First(&svc).Error; err != nil {
		return nil, translate(err)
	}
	return &svc, nil
}

func (r *BookingGormRepository) GetWorkingHours(
	ctx context.Context,
	vendorID uint,
	weekday int,
) (*models.WorkingHours, error) {

	var wh models.WorkingHours
	if err := r.db.WithContext(ctx).
		Where("vendor_id = ? AND weekday = ?", vendorID, weekday).
		First(&wh).Error; err != nil {
		return nil, translate(err)
	}
	return &wh, nil
}

// --------------------------------------------------
// Ledger
// --------------------------------------------------

// CreateBooking serializes the uniqueness check and the insert in one
// transaction, locking existing rows for the slot so two concurrent
// writers cannot both pass the check.
func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var count int64
		if err := tx.
			Model(&models.Booking{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"vendor_id = ? AND date = ? AND time = ? AND status IN ?",
				b.VendorID, b.Date, b.Time,
				[]string{string(domain.StatusConfirmed), string(domain.StatusBlocked)},
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return httperr.ErrBusiness("slot_unavailable")
		}

		return tx.Create(b).Error
	})
}

func (r *BookingGormRepository) DeleteBooking(
	ctx context.Context,
	key domain.SlotKey,
) error {

	// Idempotent: gorm reports zero affected rows without an error.
	return r.db.WithContext(ctx).
		Where("vendor_id = ? AND date = ? AND time = ?", key.VendorID, key.Date, key.Time).
		Delete(&models.Booking{}).Error
}

func (r *BookingGormRepository) GetBookingByID(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, translate(err)
	}
	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BookingGormRepository) ListBookingsForDate(
	ctx context.Context,
	vendorID uint,
	date string,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where("vendor_id = ? AND date = ?", vendorID, date).
		Order("time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) ListBookingsForRange(
	ctx context.Context,
	vendorID uint,
	from string,
	to string,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where("vendor_id = ? AND date >= ? AND date < ?", vendorID, from, to).
		Order("date ASC, time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// --------------------------------------------------
// Confirmations
// --------------------------------------------------

func (r *BookingGormRepository) CreateConfirmation(
	ctx context.Context,
	conf *models.Confirmation,
) error {
	return r.db.WithContext(ctx).Create(conf).Error
}

func (r *BookingGormRepository) GetConfirmation(
	ctx context.Context,
	id string,
) (*models.Confirmation, error) {

	var conf models.Confirmation
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&conf).Error; err != nil {
		return nil, translate(err)
	}
	return &conf, nil
}

// TransitionConfirmation is a conditional UPDATE keyed on the prior
// status, so a terminal row is never overwritten no matter how stale the
// caller's read was.
func (r *BookingGormRepository) TransitionConfirmation(
	ctx context.Context,
	conf *models.Confirmation,
	from string,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Confirmation{}).
		Where("id = ? AND status = ?", conf.ID, from).
		Updates(map[string]any{
			"status":         conf.Status,
			"payment_id":     conf.PaymentID,
			"amount":         conf.Amount,
			"payment_method": conf.PaymentMethod,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *BookingGormRepository) GetConfirmationForBooking(
	ctx context.Context,
	bookingID uint,
) (*models.Confirmation, error) {

	var conf models.Confirmation
	if err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		First(&conf).Error; err != nil {
		return nil, translate(err)
	}
	return &conf, nil
}

// --------------------------------------------------
// Pending-payment reaper
// --------------------------------------------------

func (r *BookingGormRepository) ListExpiredPending(
	ctx context.Context,
	olderThan time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where(
			"status = ? AND payment_status = ? AND created_at < ?",
			string(domain.StatusConfirmed), domain.BookingPaymentPending, olderThan,
		).
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
