package api

import (
	"errors"
	"net/http"

	"scheme-console/internal/domain/scheme"
	resdto "scheme-console/internal/handler/dto/response"
	"scheme-console/internal/handler/httperr"
	"scheme-console/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// hintDetail exposes error hints to the console; nil when there are none.
func hintDetail(err error) any {
	hints := errs.Hints(err)
	if len(hints) == 0 {
		return nil
	}
	return gin.H{"hints": hints}
}

// abortWithUsecaseError maps usecase and domain errors to HTTP statuses.
func abortWithUsecaseError(c *gin.Context, err error) {
	var verrs scheme.ValidationErrors
	if errors.As(err, &verrs) {
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", resdto.FromFieldErrors(verrs))
		return
	}

	switch {
	case errs.Is(err, errs.ErrSchemeNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Scheme not found", nil)
	case errs.Is(err, scheme.ErrRegionNotCovered):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Region not covered", nil)
	case errs.Is(err, scheme.ErrIndexOutOfRange):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Entry not found", nil)
	case errs.Is(err, errs.ErrDuplicateSchemeCode):
		httperr.AbortWithError(c, http.StatusConflict, err, "Scheme code already exists", hintDetail(err))
	case errs.Is(err, scheme.ErrSchemeExpired):
		httperr.AbortWithError(c, http.StatusConflict, err, "Scheme has expired", hintDetail(err))
	case errs.Is(err, scheme.ErrCodeSpaceExhausted):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Scheme code space exhausted for today", hintDetail(err))
	case errs.Is(err, scheme.ErrInvalidSchemeCode),
		errs.Is(err, scheme.ErrInvalidValueType),
		errs.Is(err, scheme.ErrInvalidDate):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
	case errs.Is(err, errs.ErrRepositoryFailure), errs.Is(err, errs.ErrCatalogFailure):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Storage unavailable", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
	}
}
