package application

import (
	"errors"
	"fmt"

	"github.com/anycomp/marketplace-api/internal/domains/purchases/domain"
)

// ErrInvalidInput marks purchase requests rejected before any write.
var ErrInvalidInput = errors.New("invalid purchase input")

// mapError folds domain rejections into ErrInvalidInput so transport
// adapters can classify with a single errors.Is check.
func mapError(err error) error {
	var stockErr *domain.InsufficientStockError
	switch {
	case errors.Is(err, domain.ErrBuyerNotFound),
		errors.Is(err, domain.ErrItemNotFound),
		errors.Is(err, domain.ErrNonPositiveQuantity),
		errors.As(err, &stockErr):
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	default:
		return err
	}
}
