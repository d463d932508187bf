package marketplaceserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	sellersdomain "github.com/anycomp/marketplace-api/internal/domains/sellers/domain"
	sellersports "github.com/anycomp/marketplace-api/internal/domains/sellers/ports"
	"github.com/anycomp/marketplace-api/internal/shared/pagination"
)

// SellersAPI wires HTTP transport with the sellers bounded context service.
type SellersAPI struct {
	service sellersports.Service
}

// NewSellersAPI creates a SellersAPI backed by the provided service.
func NewSellersAPI(service sellersports.Service) SellersAPI {
	return SellersAPI{service: service}
}

// Seller is the wire representation of a seller.
type Seller struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func sellerFromDomain(seller *sellersdomain.Seller) Seller {
	if seller == nil {
		return Seller{}
	}
	return Seller{ID: seller.ID, Name: seller.Name, Email: seller.Email}
}

// Get /sellers
// List sellers, paginated
func (api *SellersAPI) ListSellers(c *gin.Context) {
	page, err := api.service.List(c.Request.Context(), pagination.Parse(pageFromQuery(c)))
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, pagination.Map(page, sellerFromDomain))
}

// Get /sellers/:sellerId
// Find seller by ID
func (api *SellersAPI) GetSellerById(c *gin.Context) {
	id, ok := parseIDParam(c, "sellerId")
	if !ok {
		return
	}
	seller, err := api.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, sellersports.ErrNotFound) {
			respondNotFound(c, "seller", id)
			return
		}
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, sellerFromDomain(seller))
}

// Post /sellers
// Register a new seller
func (api *SellersAPI) CreateSeller(c *gin.Context) {
	var payload Seller
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	seller, err := sellersdomain.NewSeller(payload.Name, payload.Email)
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	saved, err := api.service.Create(c.Request.Context(), seller)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, sellerFromDomain(saved))
}

// Put /sellers/:sellerId
// Update an existing seller
func (api *SellersAPI) UpdateSeller(c *gin.Context) {
	id, ok := parseIDParam(c, "sellerId")
	if !ok {
		return
	}
	var payload Seller
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	seller := &sellersdomain.Seller{Name: payload.Name, Email: payload.Email}
	updated, err := api.service.Update(c.Request.Context(), id, seller)
	if err != nil {
		switch {
		case errors.Is(err, sellersports.ErrNotFound):
			respondNotFound(c, "seller", id)
		case errors.Is(err, sellersdomain.ErrEmptyName):
			respondError(c, http.StatusBadRequest, err)
		default:
			respondError(c, http.StatusInternalServerError, err)
		}
		return
	}
	c.JSON(http.StatusOK, sellerFromDomain(updated))
}

// Delete /sellers/:sellerId
// Remove a seller
func (api *SellersAPI) DeleteSeller(c *gin.Context) {
	id, ok := parseIDParam(c, "sellerId")
	if !ok {
		return
	}
	if err := api.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, sellersports.ErrNotFound) {
			respondNotFound(c, "seller", id)
			return
		}
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.Status(http.StatusNoContent)
}
