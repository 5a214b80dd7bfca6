package booking

import (
	"context"

	domain "github.com/smartq-app/booking-api/internal/domain/booking"
	"github.com/smartq-app/booking-api/internal/models"
)

// ListVendors is the directory read side: service category -> vendors,
// optionally narrowed by a free-text search over name/location/description.
type ListVendors struct {
	repo domain.Repository
}

func NewListVendors(repo domain.Repository) *ListVendors {
	return &ListVendors{repo: repo}
}

func (uc *ListVendors) Execute(
	ctx context.Context,
	service string,
	query string,
) ([]models.Vendor, error) {
	return uc.repo.ListVendorsByService(ctx, service, query)
}
