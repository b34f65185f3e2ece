// Package repository defines the persistence interfaces consumed by the
// domain and use case layers.
package repository

import (
	"context"

	"github.com/MelissaPascal/sulten-dms-ai/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrRetailerNotFound is returned when a retailer lookup yields no record.
var ErrRetailerNotFound = errors.New("retailer not found")

// RetailerRepository defines persistence operations for retailers.
type RetailerRepository interface {
	// CreateRetailer persists a new retailer.
	CreateRetailer(ctx context.Context, retailer *entity.Retailer) error

	// FindRetailerByID retrieves a retailer by its unique ID.
	FindRetailerByID(ctx context.Context, id uuid.UUID) (*entity.Retailer, error)

	// ListRetailers retrieves all retailers, newest first.
	ListRetailers(ctx context.Context) ([]*entity.Retailer, error)
}
