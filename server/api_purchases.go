package marketplaceserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	purchasehttpmapper "github.com/anycomp/marketplace-api/internal/domains/purchases/adapters/http/mapper"
	purchasesapp "github.com/anycomp/marketplace-api/internal/domains/purchases/application"
	purchasesports "github.com/anycomp/marketplace-api/internal/domains/purchases/ports"
	apierrors "github.com/anycomp/marketplace-api/internal/shared/errors"
	"github.com/anycomp/marketplace-api/internal/shared/pagination"
)

// PurchasesAPI wires HTTP transport with the purchases bounded context service.
type PurchasesAPI struct {
	service purchasesports.Service
}

// NewPurchasesAPI creates a PurchasesAPI backed by the provided service.
func NewPurchasesAPI(service purchasesports.Service) PurchasesAPI {
	return PurchasesAPI{service: service}
}

// Post /purchase
// Record a purchase
func (api *PurchasesAPI) CreatePurchase(c *gin.Context) {
	var payload purchasehttpmapper.PurchaseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	receipt, err := api.service.Create(c.Request.Context(), purchasesports.CreateInput{
		BuyerID:  payload.BuyerID,
		ItemID:   payload.ItemID,
		Quantity: payload.Quantity,
	})
	if err != nil {
		if errors.Is(err, purchasesapp.ErrInvalidInput) {
			respondProblem(c, apierrors.ErrValidation.WithDetail(err.Error()))
			return
		}
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, purchasehttpmapper.FromDomain(receipt))
}

// Get /purchase
// List purchases, paginated
func (api *PurchasesAPI) ListPurchases(c *gin.Context) {
	page, err := api.service.List(c.Request.Context(), pagination.Parse(pageFromQuery(c)))
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, pagination.Map(page, purchasehttpmapper.FromDomain))
}
