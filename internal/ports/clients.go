package ports

import (
	"context"

	"github.com/protocolo-ceremonial/flagplan/internal/domain/country"
)

// ReferenceClient defines the client port for country reference data.
// Implemented by the embedded table adapter and by the remote registry ACL;
// called by the application layer.
type ReferenceClient interface {
	// ListCountries returns every reference record in presentation order.
	// Returns domain.ErrUnavailable if the source cannot be reached.
	ListCountries(ctx context.Context) ([]country.Country, error)
}
