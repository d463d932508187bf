package marketplaceserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Route is the information for every URI.
type Route struct {
	// Name is the name of this Route.
	Name string
	// Method is the string for the HTTP method. ex) GET, POST etc..
	Method string
	// Pattern is the pattern of the URI.
	Pattern string
	// HandlerFunc is the handler function of this route.
	HandlerFunc gin.HandlerFunc
}

// Routes is the list of the generated Route.
type Routes []Route

// ApiHandleFunctions bundles the per-context handler sets the router serves.
type ApiHandleFunctions struct {
	BuyersAPI    BuyersAPI
	SellersAPI   SellersAPI
	ItemsAPI     ItemsAPI
	PurchasesAPI PurchasesAPI
}

// NewRouter returns a new router with the route table registered.
// Middlewares are installed before route registration so every route,
// documentation included, passes through them.
func NewRouter(handleFunctions ApiHandleFunctions, middlewares ...gin.HandlerFunc) *gin.Engine {
	return NewRouterWithGinEngine(gin.Default(), handleFunctions, middlewares...)
}

// NewRouterWithGinEngine adds the route table to an existing gin engine.
func NewRouterWithGinEngine(router *gin.Engine, handleFunctions ApiHandleFunctions, middlewares ...gin.HandlerFunc) *gin.Engine {
	for _, middleware := range middlewares {
		if middleware != nil {
			router.Use(middleware)
		}
	}
	for _, route := range getRoutes(handleFunctions) {
		if route.HandlerFunc == nil {
			route.HandlerFunc = defaultHandleFunc
		}
		switch route.Method {
		case http.MethodGet:
			router.GET(route.Pattern, route.HandlerFunc)
		case http.MethodPost:
			router.POST(route.Pattern, route.HandlerFunc)
		case http.MethodPut:
			router.PUT(route.Pattern, route.HandlerFunc)
		case http.MethodDelete:
			router.DELETE(route.Pattern, route.HandlerFunc)
		}
	}
	return router
}

func defaultHandleFunc(c *gin.Context) {
	c.String(http.StatusNotImplemented, "501 not implemented")
}

func getRoutes(handleFunctions ApiHandleFunctions) Routes {
	return Routes{
		{"Healthz", http.MethodGet, "/healthz", healthz},
		{"OpenAPISpec", http.MethodGet, "/openapi.json", openAPISpec},
		{"SwaggerUI", http.MethodGet, "/docs/*any", swaggerUI()},

		{"ListBuyers", http.MethodGet, "/buyers", handleFunctions.BuyersAPI.ListBuyers},
		{"GetBuyerById", http.MethodGet, "/buyers/:buyerId", handleFunctions.BuyersAPI.GetBuyerById},
		{"CreateBuyer", http.MethodPost, "/buyers", handleFunctions.BuyersAPI.CreateBuyer},
		{"UpdateBuyer", http.MethodPut, "/buyers/:buyerId", handleFunctions.BuyersAPI.UpdateBuyer},
		{"DeleteBuyer", http.MethodDelete, "/buyers/:buyerId", handleFunctions.BuyersAPI.DeleteBuyer},

		{"ListSellers", http.MethodGet, "/sellers", handleFunctions.SellersAPI.ListSellers},
		{"GetSellerById", http.MethodGet, "/sellers/:sellerId", handleFunctions.SellersAPI.GetSellerById},
		{"CreateSeller", http.MethodPost, "/sellers", handleFunctions.SellersAPI.CreateSeller},
		{"UpdateSeller", http.MethodPut, "/sellers/:sellerId", handleFunctions.SellersAPI.UpdateSeller},
		{"DeleteSeller", http.MethodDelete, "/sellers/:sellerId", handleFunctions.SellersAPI.DeleteSeller},

		{"ListItems", http.MethodGet, "/items", handleFunctions.ItemsAPI.ListItems},
		{"GetItemById", http.MethodGet, "/items/:itemId", handleFunctions.ItemsAPI.GetItemById},
		{"ListItemsBySeller", http.MethodGet, "/items/sellers/:sellerId", handleFunctions.ItemsAPI.ListItemsBySeller},
		{"CreateItemForSeller", http.MethodPost, "/items/sellers/:sellerId", handleFunctions.ItemsAPI.CreateItemForSeller},
		{"UpdateItem", http.MethodPut, "/items/:itemId", handleFunctions.ItemsAPI.UpdateItem},
		{"DeleteItem", http.MethodDelete, "/items/:itemId", handleFunctions.ItemsAPI.DeleteItem},

		{"CreatePurchase", http.MethodPost, "/purchase", handleFunctions.PurchasesAPI.CreatePurchase},
		{"ListPurchases", http.MethodGet, "/purchase", handleFunctions.PurchasesAPI.ListPurchases},
	}
}

func healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
