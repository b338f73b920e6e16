package shared

import (
	"context"

	"scheme-console/internal/domain/scheme"

	"github.com/google/uuid"
)

// CatalogProvider is the read-only reference data the wizard and finalize draw from.
type CatalogProvider interface {
	ListRegions(ctx context.Context) ([]scheme.Region, error)
	// ListSKUs returns the SKU segment for a value type: standard products for
	// rupees, FOC products for points.
	ListSKUs(ctx context.Context, vt scheme.ValueType) ([]scheme.SKU, error)
	ListPackSizes(ctx context.Context, skuID string) ([]scheme.PackSize, error)
	ListCouponTypes(ctx context.Context) ([]scheme.CouponType, error)
}

type SchemeCodeGenerator interface {
	Generate(ctx context.Context) (string, error)
}

type SchemeRepository interface {
	// Save persists the scheme with its entries and overrides atomically.
	Save(ctx context.Context, def *scheme.Definition) error
	List(ctx context.Context) ([]*scheme.Definition, error)
	FindByID(ctx context.Context, id uuid.UUID) (*scheme.Definition, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	UpdateStatus(ctx context.Context, def *scheme.Definition) error
	Delete(ctx context.Context, id uuid.UUID) error
}
