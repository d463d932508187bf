package marketplaceserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	itemhttpmapper "github.com/anycomp/marketplace-api/internal/domains/items/adapters/http/mapper"
	itemsdomain "github.com/anycomp/marketplace-api/internal/domains/items/domain"
	itemsports "github.com/anycomp/marketplace-api/internal/domains/items/ports"
	"github.com/anycomp/marketplace-api/internal/shared/pagination"
)

// ItemsAPI wires HTTP transport with the items bounded context service.
type ItemsAPI struct {
	service itemsports.Service
}

// NewItemsAPI creates an ItemsAPI backed by the provided service.
func NewItemsAPI(service itemsports.Service) ItemsAPI {
	return ItemsAPI{service: service}
}

// Get /items
// List items, paginated
func (api *ItemsAPI) ListItems(c *gin.Context) {
	page, err := api.service.List(c.Request.Context(), pagination.Parse(pageFromQuery(c)))
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, pagination.Map(page, itemhttpmapper.FromDomain))
}

// Get /items/:itemId
// Find item by ID
func (api *ItemsAPI) GetItemById(c *gin.Context) {
	id, ok := parseIDParam(c, "itemId")
	if !ok {
		return
	}
	item, err := api.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, itemsports.ErrNotFound) {
			respondNotFound(c, "item", id)
			return
		}
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, itemhttpmapper.FromDomain(item))
}

// Get /items/sellers/:sellerId
// List the seller's items, paginated
func (api *ItemsAPI) ListItemsBySeller(c *gin.Context) {
	sellerID, ok := parseIDParam(c, "sellerId")
	if !ok {
		return
	}
	page, err := api.service.ListBySeller(c.Request.Context(), sellerID, pagination.Parse(pageFromQuery(c)))
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, pagination.Map(page, itemhttpmapper.FromDomain))
}

// Post /items/sellers/:sellerId
// Create a new item owned by the seller
func (api *ItemsAPI) CreateItemForSeller(c *gin.Context) {
	sellerID, ok := parseIDParam(c, "sellerId")
	if !ok {
		return
	}
	var payload itemhttpmapper.ItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	item, err := itemsdomain.NewItem(payload.Name, payload.Price, payload.Quantity, sellerID)
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	saved, err := api.service.CreateForSeller(c.Request.Context(), sellerID, item)
	if err != nil {
		if errors.Is(err, itemsports.ErrSellerNotFound) {
			respondNotFound(c, "seller", sellerID)
			return
		}
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusCreated, itemhttpmapper.FromDomain(saved))
}

// Put /items/:itemId
// Update an existing item's name and price
func (api *ItemsAPI) UpdateItem(c *gin.Context) {
	id, ok := parseIDParam(c, "itemId")
	if !ok {
		return
	}
	var payload itemhttpmapper.ItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	updated, err := api.service.Update(c.Request.Context(), id, payload.Name, payload.Price)
	if err != nil {
		switch {
		case errors.Is(err, itemsports.ErrNotFound):
			respondNotFound(c, "item", id)
		case errors.Is(err, itemsdomain.ErrEmptyName), errors.Is(err, itemsdomain.ErrNegativePrice):
			respondError(c, http.StatusBadRequest, err)
		default:
			respondError(c, http.StatusInternalServerError, err)
		}
		return
	}
	c.JSON(http.StatusOK, itemhttpmapper.FromDomain(updated))
}

// Delete /items/:itemId
// Remove an item. Always 204, present or not.
func (api *ItemsAPI) DeleteItem(c *gin.Context) {
	id, ok := parseIDParam(c, "itemId")
	if !ok {
		return
	}
	if err := api.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.Status(http.StatusNoContent)
}
