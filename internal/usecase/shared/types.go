package shared

import (
	"scheme-console/internal/domain/scheme"
)

// CatalogSnapshot is everything a wizard session keeps loaded between edits.
type CatalogSnapshot struct {
	Regions     []scheme.Region
	SKUs        []scheme.SKU
	CouponTypes []scheme.CouponType
}

func (s CatalogSnapshot) RegionNames() scheme.RegionNames {
	return scheme.RegionNamesOf(s.Regions)
}

func FindSKU(skus []scheme.SKU, id string) (scheme.SKU, bool) {
	for _, s := range skus {
		if s.ID == id {
			return s, true
		}
	}
	return scheme.SKU{}, false
}

func FindPackSize(sizes []scheme.PackSize, id string) (scheme.PackSize, bool) {
	for _, p := range sizes {
		if p.ID == id {
			return p, true
		}
	}
	return scheme.PackSize{}, false
}

func FindCouponType(types []scheme.CouponType, id string) (scheme.CouponType, bool) {
	for _, t := range types {
		if t.ID == id {
			return t, true
		}
	}
	return scheme.CouponType{}, false
}
