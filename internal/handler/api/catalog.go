package api

import (
	"net/http"

	"scheme-console/internal/domain/scheme"
	resdto "scheme-console/internal/handler/dto/response"
	"scheme-console/internal/handler/httperr"
	"scheme-console/internal/pkg/errs"
	"scheme-console/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalog shared.CatalogProvider
}

func NewCatalogHandler(catalog shared.CatalogProvider) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// @Summary List regions
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.RegionResponse
// @Router /api/catalog/regions [get]
func (h *CatalogHandler) Regions(c *gin.Context) {
	regions, err := h.catalog.ListRegions(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, errs.Mark(err, errs.ErrCatalogFailure))
		return
	}
	c.JSON(http.StatusOK, gin.H{"regions": resdto.FromRegions(regions)})
}

// @Summary List SKUs
// @Description Standard products for rupees, FOC products for points
// @Tags catalog
// @Produce json
// @Param value_type query string false "rupees (default) or points"
// @Success 200 {array} resdto.SKUResponse
// @Failure 400 {object} map[string]string
// @Router /api/catalog/skus [get]
func (h *CatalogHandler) SKUs(c *gin.Context) {
	vt, err := scheme.NewValueType(c.DefaultQuery("value_type", string(scheme.ValueTypeRupees)))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid value type", nil)
		return
	}
	skus, err := h.catalog.ListSKUs(c.Request.Context(), vt)
	if err != nil {
		abortWithUsecaseError(c, errs.Mark(err, errs.ErrCatalogFailure))
		return
	}
	c.JSON(http.StatusOK, gin.H{"skus": resdto.FromSKUs(skus)})
}

// @Summary List pack sizes of a SKU
// @Tags catalog
// @Produce json
// @Param id path string true "SKU ID"
// @Success 200 {array} resdto.PackSizeResponse
// @Router /api/catalog/skus/{id}/pack-sizes [get]
func (h *CatalogHandler) PackSizes(c *gin.Context) {
	sizes, err := h.catalog.ListPackSizes(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithUsecaseError(c, errs.Mark(err, errs.ErrCatalogFailure))
		return
	}
	c.JSON(http.StatusOK, gin.H{"pack_sizes": resdto.FromPackSizes(sizes)})
}

// @Summary List coupon types
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.CouponTypeResponse
// @Router /api/catalog/coupon-types [get]
func (h *CatalogHandler) CouponTypes(c *gin.Context) {
	types, err := h.catalog.ListCouponTypes(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, errs.Mark(err, errs.ErrCatalogFailure))
		return
	}
	c.JSON(http.StatusOK, gin.H{"coupon_types": resdto.FromCouponTypes(types)})
}
