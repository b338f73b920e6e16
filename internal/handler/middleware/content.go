package middleware

import (
	"mime"
	"net/http"

	"scheme-console/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// RequireJSON rejects request bodies that are not declared as JSON.
func RequireJSON() gin.HandlerFunc {
	return func(c *gin.Context) {
		mt, _, err := mime.ParseMediaType(c.GetHeader("Content-Type"))
		if err != nil || mt != gin.MIMEJSON {
			httperr.AbortWithError(c, http.StatusUnsupportedMediaType, nil, "Content-Type must be application/json", nil)
			return
		}
		c.Next()
	}
}
