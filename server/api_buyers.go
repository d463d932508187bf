package marketplaceserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	buyersdomain "github.com/anycomp/marketplace-api/internal/domains/buyers/domain"
	buyersports "github.com/anycomp/marketplace-api/internal/domains/buyers/ports"
	"github.com/anycomp/marketplace-api/internal/shared/pagination"
)

// BuyersAPI wires HTTP transport with the buyers bounded context service.
type BuyersAPI struct {
	service buyersports.Service
}

// NewBuyersAPI creates a BuyersAPI backed by the provided service.
func NewBuyersAPI(service buyersports.Service) BuyersAPI {
	return BuyersAPI{service: service}
}

// Buyer is the wire representation of a buyer. The id in mutation payloads
// is accepted but ignored; the path value wins.
type Buyer struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func buyerFromDomain(buyer *buyersdomain.Buyer) Buyer {
	if buyer == nil {
		return Buyer{}
	}
	return Buyer{ID: buyer.ID, Name: buyer.Name, Email: buyer.Email}
}

// Get /buyers
// List buyers, paginated
func (api *BuyersAPI) ListBuyers(c *gin.Context) {
	page, err := api.service.List(c.Request.Context(), pagination.Parse(pageFromQuery(c)))
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, pagination.Map(page, buyerFromDomain))
}

// Get /buyers/:buyerId
// Find buyer by ID
func (api *BuyersAPI) GetBuyerById(c *gin.Context) {
	id, ok := parseIDParam(c, "buyerId")
	if !ok {
		return
	}
	buyer, err := api.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, buyersports.ErrNotFound) {
			respondNotFound(c, "buyer", id)
			return
		}
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, buyerFromDomain(buyer))
}

// Post /buyers
// Register a new buyer
func (api *BuyersAPI) CreateBuyer(c *gin.Context) {
	var payload Buyer
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	buyer, err := buyersdomain.NewBuyer(payload.Name, payload.Email)
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	saved, err := api.service.Create(c.Request.Context(), buyer)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, buyerFromDomain(saved))
}

// Put /buyers/:buyerId
// Update an existing buyer
func (api *BuyersAPI) UpdateBuyer(c *gin.Context) {
	id, ok := parseIDParam(c, "buyerId")
	if !ok {
		return
	}
	var payload Buyer
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	buyer := &buyersdomain.Buyer{Name: payload.Name, Email: payload.Email}
	updated, err := api.service.Update(c.Request.Context(), id, buyer)
	if err != nil {
		switch {
		case errors.Is(err, buyersports.ErrNotFound):
			respondNotFound(c, "buyer", id)
		case errors.Is(err, buyersdomain.ErrEmptyName):
			respondError(c, http.StatusBadRequest, err)
		default:
			respondError(c, http.StatusInternalServerError, err)
		}
		return
	}
	c.JSON(http.StatusOK, buyerFromDomain(updated))
}

// Delete /buyers/:buyerId
// Remove a buyer
func (api *BuyersAPI) DeleteBuyer(c *gin.Context) {
	id, ok := parseIDParam(c, "buyerId")
	if !ok {
		return
	}
	if err := api.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, buyersports.ErrNotFound) {
			respondNotFound(c, "buyer", id)
			return
		}
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.Status(http.StatusNoContent)
}
