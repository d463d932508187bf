package marketplaceserver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	buyersmemory "github.com/anycomp/marketplace-api/internal/domains/buyers/adapters/memory"
	buyersapp "github.com/anycomp/marketplace-api/internal/domains/buyers/application"
	itemsdirectory "github.com/anycomp/marketplace-api/internal/domains/items/adapters/directory"
	itemsmemory "github.com/anycomp/marketplace-api/internal/domains/items/adapters/memory"
	itemsapp "github.com/anycomp/marketplace-api/internal/domains/items/application"
	purchasesdirectory "github.com/anycomp/marketplace-api/internal/domains/purchases/adapters/directory"
	purchasesmemory "github.com/anycomp/marketplace-api/internal/domains/purchases/adapters/memory"
	purchasesapp "github.com/anycomp/marketplace-api/internal/domains/purchases/application"
	sellersmemory "github.com/anycomp/marketplace-api/internal/domains/sellers/adapters/memory"
	sellersapp "github.com/anycomp/marketplace-api/internal/domains/sellers/application"
)

func newTestRouter(t *testing.T, middlewares ...gin.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	buyerRepo := buyersmemory.NewRepository()
	sellerRepo := sellersmemory.NewRepository()
	itemRepo := itemsmemory.NewRepository()

	buyerService := buyersapp.NewService(buyerRepo)
	sellerService := sellersapp.NewService(sellerRepo)
	itemService := itemsapp.NewService(itemRepo, itemsdirectory.NewSellerLookup(sellerRepo))

	buyerLookup := purchasesdirectory.NewBuyerLookup(buyerRepo)
	catalog := purchasesdirectory.NewCatalogLookup(itemRepo)
	purchaseRepo := purchasesmemory.NewRepository(
		purchasesdirectory.NewStockGate(itemRepo), buyerLookup, catalog)
	purchaseService := purchasesapp.NewService(purchaseRepo, buyerLookup, catalog)

	handlers := ApiHandleFunctions{
		BuyersAPI:    NewBuyersAPI(buyerService),
		SellersAPI:   NewSellersAPI(sellerService),
		ItemsAPI:     NewItemsAPI(itemService),
		PurchasesAPI: NewPurchasesAPI(purchaseService),
	}
	return NewRouterWithGinEngine(gin.New(), handlers, middlewares...)
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decode(t *testing.T, recorder *httptest.ResponseRecorder, target any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), target))
}

func TestBuyerCRUDRoundTrip(t *testing.T) {
	router := newTestRouter(t)

	created := doJSON(t, router, http.MethodPost, "/buyers", gin.H{"name": "Ann", "email": "ann@example.com"})
	require.Equal(t, http.StatusOK, created.Code)
	var buyer Buyer
	decode(t, created, &buyer)
	require.NotZero(t, buyer.ID)

	fetched := doJSON(t, router, http.MethodGet, fmt.Sprintf("/buyers/%d", buyer.ID), nil)
	require.Equal(t, http.StatusOK, fetched.Code)
	var roundTrip Buyer
	decode(t, fetched, &roundTrip)
	assert.Equal(t, buyer, roundTrip)

	// Path id wins over any id in the body.
	updated := doJSON(t, router, http.MethodPut, fmt.Sprintf("/buyers/%d", buyer.ID), gin.H{"id": 999, "name": "Ann B", "email": "ann@example.com"})
	require.Equal(t, http.StatusOK, updated.Code)
	decode(t, updated, &roundTrip)
	assert.Equal(t, buyer.ID, roundTrip.ID)
	assert.Equal(t, "Ann B", roundTrip.Name)

	deleted := doJSON(t, router, http.MethodDelete, fmt.Sprintf("/buyers/%d", buyer.ID), nil)
	require.Equal(t, http.StatusNoContent, deleted.Code)

	again := doJSON(t, router, http.MethodDelete, fmt.Sprintf("/buyers/%d", buyer.ID), nil)
	assert.Equal(t, http.StatusNotFound, again.Code)
	assert.Equal(t, "application/problem+json", again.Header().Get("Content-Type"))
}

func TestCreateBuyerRejectsEmptyName(t *testing.T) {
	router := newTestRouter(t)

	resp := doJSON(t, router, http.MethodPost, "/buyers", gin.H{"name": "  "})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "application/problem+json", resp.Header().Get("Content-Type"))
}

func TestItemLifecycleUnderSeller(t *testing.T) {
	router := newTestRouter(t)

	created := doJSON(t, router, http.MethodPost, "/sellers", gin.H{"name": "Shop", "email": "shop@example.com"})
	require.Equal(t, http.StatusOK, created.Code)
	var seller Seller
	decode(t, created, &seller)

	itemResp := doJSON(t, router, http.MethodPost, fmt.Sprintf("/items/sellers/%d", seller.ID), gin.H{"name": "Widget", "price": 9.99, "quantity": 5})
	require.Equal(t, http.StatusCreated, itemResp.Code)
	var item struct {
		ID       int64   `json:"id"`
		Name     string  `json:"name"`
		Price    float64 `json:"price"`
		SellerID int64   `json:"sellerId"`
	}
	decode(t, itemResp, &item)
	assert.Equal(t, seller.ID, item.SellerID)

	missingSeller := doJSON(t, router, http.MethodPost, "/items/sellers/999", gin.H{"name": "Widget", "price": 1})
	assert.Equal(t, http.StatusNotFound, missingSeller.Code)

	bySeller := doJSON(t, router, http.MethodGet, fmt.Sprintf("/items/sellers/%d", seller.ID), nil)
	require.Equal(t, http.StatusOK, bySeller.Code)
	var page struct {
		Content       []json.RawMessage `json:"content"`
		TotalElements int64             `json:"totalElements"`
	}
	decode(t, bySeller, &page)
	assert.Equal(t, int64(1), page.TotalElements)

	updated := doJSON(t, router, http.MethodPut, fmt.Sprintf("/items/%d", item.ID), gin.H{"name": "Gadget", "price": 19.99})
	require.Equal(t, http.StatusOK, updated.Code)

	// Updating a missing item is a structured 404, not a blind failure.
	missing := doJSON(t, router, http.MethodPut, "/items/999", gin.H{"name": "Gadget", "price": 19.99})
	assert.Equal(t, http.StatusNotFound, missing.Code)
	assert.Equal(t, "application/problem+json", missing.Header().Get("Content-Type"))

	// Delete is idempotent at the HTTP surface.
	del := doJSON(t, router, http.MethodDelete, fmt.Sprintf("/items/%d", item.ID), nil)
	assert.Equal(t, http.StatusNoContent, del.Code)
	delAgain := doJSON(t, router, http.MethodDelete, fmt.Sprintf("/items/%d", item.ID), nil)
	assert.Equal(t, http.StatusNoContent, delAgain.Code)
}

func TestPurchaseScenario(t *testing.T) {
	router := newTestRouter(t)

	buyerResp := doJSON(t, router, http.MethodPost, "/buyers", gin.H{"name": "Ann", "email": "ann@example.com"})
	require.Equal(t, http.StatusOK, buyerResp.Code)
	var buyer Buyer
	decode(t, buyerResp, &buyer)

	sellerResp := doJSON(t, router, http.MethodPost, "/sellers", gin.H{"name": "Shop"})
	require.Equal(t, http.StatusOK, sellerResp.Code)
	var seller Seller
	decode(t, sellerResp, &seller)

	itemResp := doJSON(t, router, http.MethodPost, fmt.Sprintf("/items/sellers/%d", seller.ID), gin.H{"name": "Widget", "price": 9.99, "quantity": 5})
	require.Equal(t, http.StatusCreated, itemResp.Code)
	var item struct {
		ID int64 `json:"id"`
	}
	decode(t, itemResp, &item)

	first := doJSON(t, router, http.MethodPost, "/purchase", gin.H{"buyerId": buyer.ID, "itemId": item.ID, "quantity": 3})
	require.Equal(t, http.StatusOK, first.Code)
	var receipt struct {
		PurchaseID int64  `json:"purchaseId"`
		BuyerName  string `json:"buyerName"`
		ItemName   string `json:"itemName"`
		Quantity   int32  `json:"quantity"`
	}
	decode(t, first, &receipt)
	assert.NotZero(t, receipt.PurchaseID)
	assert.Equal(t, "Ann", receipt.BuyerName)
	assert.Equal(t, "Widget", receipt.ItemName)
	assert.Equal(t, int32(3), receipt.Quantity)

	second := doJSON(t, router, http.MethodPost, "/purchase", gin.H{"buyerId": buyer.ID, "itemId": item.ID, "quantity": 5})
	require.Equal(t, http.StatusBadRequest, second.Code)
	assert.Contains(t, second.Body.String(), "Available: 2")
	assert.Equal(t, "application/problem+json", second.Header().Get("Content-Type"))

	list := doJSON(t, router, http.MethodGet, "/purchase", nil)
	require.Equal(t, http.StatusOK, list.Code)
	var purchasePage struct {
		Content       []json.RawMessage `json:"content"`
		TotalElements int64             `json:"totalElements"`
	}
	decode(t, list, &purchasePage)
	assert.Equal(t, int64(1), purchasePage.TotalElements, "the rejected purchase must not be recorded")
}

func TestPurchaseValidationFailures(t *testing.T) {
	router := newTestRouter(t)

	sellerResp := doJSON(t, router, http.MethodPost, "/sellers", gin.H{"name": "Shop"})
	var seller Seller
	decode(t, sellerResp, &seller)
	itemResp := doJSON(t, router, http.MethodPost, fmt.Sprintf("/items/sellers/%d", seller.ID), gin.H{"name": "Widget", "price": 9.99, "quantity": 5})
	var item struct {
		ID int64 `json:"id"`
	}
	decode(t, itemResp, &item)
	buyerResp := doJSON(t, router, http.MethodPost, "/buyers", gin.H{"name": "Ann"})
	var buyer Buyer
	decode(t, buyerResp, &buyer)

	cases := []struct {
		name string
		body gin.H
	}{
		{"unknown buyer", gin.H{"buyerId": 999, "itemId": item.ID, "quantity": 1}},
		{"unknown item", gin.H{"buyerId": buyer.ID, "itemId": 999, "quantity": 1}},
		{"zero quantity", gin.H{"buyerId": buyer.ID, "itemId": item.ID, "quantity": 0}},
		{"negative quantity", gin.H{"buyerId": buyer.ID, "itemId": item.ID, "quantity": -2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doJSON(t, router, http.MethodPost, "/purchase", tc.body)
			assert.Equal(t, http.StatusBadRequest, resp.Code)
			assert.Equal(t, "application/problem+json", resp.Header().Get("Content-Type"))
		})
	}
}

func TestBearerAuthGate(t *testing.T) {
	router := newTestRouter(t, BearerAuth("sesame"))

	denied := doJSON(t, router, http.MethodGet, "/buyers", nil)
	assert.Equal(t, http.StatusUnauthorized, denied.Code)

	health := doJSON(t, router, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, health.Code, "health stays open")

	spec := doJSON(t, router, http.MethodGet, "/openapi.json", nil)
	assert.Equal(t, http.StatusOK, spec.Code, "documentation stays open")

	req := httptest.NewRequest(http.MethodGet, "/buyers", nil)
	req.Header.Set("Authorization", "Bearer sesame")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestRequestIDEchoed(t *testing.T) {
	router := newTestRouter(t, RequestID())

	generated := doJSON(t, router, http.MethodGet, "/healthz", nil)
	assert.NotEmpty(t, generated.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	assert.Equal(t, "req-42", recorder.Header().Get(RequestIDHeader))
}
