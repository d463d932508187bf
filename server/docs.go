package marketplaceserver

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"
)

//go:embed openapi.json
var openAPIDocument []byte

func openAPISpec(c *gin.Context) {
	c.Data(http.StatusOK, "application/json", openAPIDocument)
}

// swaggerUI serves the interactive documentation, pointed at the embedded
// spec instead of a swag-generated doc registry.
func swaggerUI() gin.HandlerFunc {
	handler := httpSwagger.Handler(httpSwagger.URL("/openapi.json"))
	return gin.WrapH(handler)
}
