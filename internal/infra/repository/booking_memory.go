package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	domain "github.com/smartq-app/booking-api/internal/domain/booking"
	"github.com/smartq-app/booking-api/internal/httperr"
	"github.com/smartq-app/booking-api/internal/models"
)

// BookingMemoryRepository keeps the whole vendor record set in memory.
// Writes to one vendor's ledger serialize on that vendor's mutex, which is
// the same at-most-one-writer-per-slot guarantee the gorm implementation
// gets from its transaction. Used in tests and for single-node dev runs.
type BookingMemoryRepository struct {
	mu      sync.RWMutex
	vendors map[uint]*vendorRecord

	confMu        sync.RWMutex
	confirmations map[string]*models.Confirmation

	idSeq atomic.Uint64
}

type vendorRecord struct {
	mu       sync.Mutex
	vendor   models.Vendor
	hours    map[int]models.WorkingHours
	bookings []models.Booking
}

func NewBookingMemoryRepository() *BookingMemoryRepository {
	return &BookingMemoryRepository{
		vendors:       make(map[uint]*vendorRecord),
		confirmations: make(map[string]*models.Confirmation),
	}
}

// AddVendor seeds a vendor together with its working hours. Not part of
// the domain repository contract; tests and dev bootstrap use it.
func (r *BookingMemoryRepository) AddVendor(v models.Vendor) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec := &vendorRecord{
		vendor: v,
		hours:  make(map[int]models.WorkingHours),
	}
	for _, wh := range v.WorkingHours {
		rec.hours[wh.Weekday] = wh
	}
	r.vendors[v.ID] = rec
}

func (r *BookingMemoryRepository) record(id uint) (*vendorRecord, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.vendors[id]
	return rec, ok
}

// --------------------------------------------------
// Vendor directory
// --------------------------------------------------

func (r *BookingMemoryRepository) GetVendorByID(
	ctx context.Context,
	id uint,
) (*models.Vendor, error) {

	rec, ok := r.record(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	v := rec.vendor
	return &v, nil
}

func (r *BookingMemoryRepository) GetVendorBySlug(
	ctx context.Context,
	slug string,
) (*models.Vendor, error) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rec := range r.vendors {
		if rec.vendor.Slug == slug {
			v := rec.vendor
			return &v, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *BookingMemoryRepository) ListVendorsByService(
	ctx context.Context,
	service string,
	query string,
) ([]models.Vendor, error) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	query = strings.TrimSpace(strings.ToLower(query))

	var out []models.Vendor
	for _, rec := range r.vendors {
		if !offersService(rec.vendor, service) {
			continue
		}
		if query != "" && !matchesQuery(rec.vendor, query) {
			continue
		}
		out = append(out, rec.vendor)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func offersService(v models.Vendor, service string) bool {
	for _, s := range v.Services {
		if s.Name == service && s.Active {
			return true
		}
	}
	return false
}

func matchesQuery(v models.Vendor, query string) bool {
	return strings.Contains(strings.ToLower(v.Name), query) ||
		strings.Contains(strings.ToLower(v.Location), query) ||
		strings.Contains(strings.ToLower(v.Description), query)
}

func (r *BookingMemoryRepository) GetService(
	ctx context.Context,
	vendorID uint,
	name string,
) (*models.VendorService, error) {

	rec, ok := r.record(vendorID)
	if !ok {
		return nil, domain.ErrNotFound
	}
	for _, s := range rec.vendor.Services {
		if s.Name == name && s.Active {
			svc := s
			return &svc, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *BookingMemoryRepository) GetWorkingHours(
	ctx context.Context,
	vendorID uint,
	weekday int,
) (*models.WorkingHours, error) {

	rec, ok := r.record(vendorID)
	if !ok {
		return nil, domain.ErrNotFound
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()

	wh, ok := rec.hours[weekday]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := wh
	return &out, nil
}

// --------------------------------------------------
// Ledger
// --------------------------------------------------

func (r *BookingMemoryRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	rec, ok := r.record(b.VendorID)
	if !ok {
		return domain.ErrNotFound
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()

	for _, existing := range rec.bookings {
		if existing.Date == b.Date && existing.Time == b.Time &&
			domain.IsActive(domain.Status(existing.Status)) {
			return httperr.ErrBusiness("slot_unavailable")
		}
	}

	b.ID = uint(r.idSeq.Add(1))
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	rec.bookings = append(rec.bookings, *b)
	return nil
}

func (r *BookingMemoryRepository) DeleteBooking(
	ctx context.Context,
	key domain.SlotKey,
) error {

	rec, ok := r.record(key.VendorID)
	if !ok {
		return nil
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()

	kept := rec.bookings[:0]
	for _, b := range rec.bookings {
		if b.Date == key.Date && b.Time == key.Time {
			continue
		}
		kept = append(kept, b)
	}
	rec.bookings = kept
	return nil
}

func (r *BookingMemoryRepository) GetBookingByID(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rec := range r.vendors {
		rec.mu.Lock()
		for _, b := range rec.bookings {
			if b.ID == id {
				out := b
				rec.mu.Unlock()
				return &out, nil
			}
		}
		rec.mu.Unlock()
	}
	return nil, domain.ErrNotFound
}

func (r *BookingMemoryRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	rec, ok := r.record(b.VendorID)
	if !ok {
		return domain.ErrNotFound
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()

	for i := range rec.bookings {
		if rec.bookings[i].ID == b.ID {
			b.UpdatedAt = time.Now()
			rec.bookings[i] = *b
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *BookingMemoryRepository) ListBookingsForDate(
	ctx context.Context,
	vendorID uint,
	date string,
) ([]models.Booking, error) {

	rec, ok := r.record(vendorID)
	if !ok {
		return nil, nil
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()

	var out []models.Booking
	for _, b := range rec.bookings {
		if b.Date == date {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out, nil
}

func (r *BookingMemoryRepository) ListBookingsForRange(
	ctx context.Context,
	vendorID uint,
	from string,
	to string,
) ([]models.Booking, error) {

	rec, ok := r.record(vendorID)
	if !ok {
		return nil, nil
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()

	var out []models.Booking
	for _, b := range rec.bookings {
		if b.Date >= from && b.Date < to {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})
	return out, nil
}

// --------------------------------------------------
// Confirmations
// --------------------------------------------------

func (r *BookingMemoryRepository) CreateConfirmation(
	ctx context.Context,
	conf *models.Confirmation,
) error {

	r.confMu.Lock()
	defer r.confMu.Unlock()

	c := *conf
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	r.confirmations[conf.ID] = &c
	return nil
}

func (r *BookingMemoryRepository) GetConfirmation(
	ctx context.Context,
	id string,
) (*models.Confirmation, error) {

	r.confMu.RLock()
	defer r.confMu.RUnlock()

	conf, ok := r.confirmations[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := *conf
	return &out, nil
}

// TransitionConfirmation compares the stored status and swaps in the new
// one under the confirmations lock. A stale caller whose expected prior
// status no longer matches loses without mutating anything.
func (r *BookingMemoryRepository) TransitionConfirmation(
	ctx context.Context,
	conf *models.Confirmation,
	from string,
) (bool, error) {

	r.confMu.Lock()
	defer r.confMu.Unlock()

	stored, ok := r.confirmations[conf.ID]
	if !ok || stored.Status != from {
		return false, nil
	}

	stored.Status = conf.Status
	stored.PaymentID = conf.PaymentID
	stored.Amount = conf.Amount
	stored.PaymentMethod = conf.PaymentMethod
	stored.UpdatedAt = time.Now()
	return true, nil
}

func (r *BookingMemoryRepository) GetConfirmationForBooking(
	ctx context.Context,
	bookingID uint,
) (*models.Confirmation, error) {

	r.confMu.RLock()
	defer r.confMu.RUnlock()

	for _, conf := range r.confirmations {
		if conf.BookingID == bookingID {
			out := *conf
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

// --------------------------------------------------
// Pending-payment reaper
// --------------------------------------------------

func (r *BookingMemoryRepository) ListExpiredPending(
	ctx context.Context,
	olderThan time.Time,
) ([]models.Booking, error) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Booking
	for _, rec := range r.vendors {
		rec.mu.Lock()
		for _, b := range rec.bookings {
			if b.Status == string(domain.StatusConfirmed) &&
				b.PaymentStatus == domain.BookingPaymentPending &&
				b.CreatedAt.Before(olderThan) {
				out = append(out, b)
			}
		}
		rec.mu.Unlock()
	}
	return out, nil
}

// Compile-time check
var _ domain.Repository = (*BookingMemoryRepository)(nil)
