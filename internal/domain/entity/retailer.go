// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Retailer represents a retail outlet that places purchase orders with the distributor.
type Retailer struct {
	ID            uuid.UUID `json:"id"`                      // The unique identifier of the retailer.
	Name          string    `json:"name"`                    // Display name of the retailer.
	Location      string    `json:"location"`                // Region or town where the retailer operates.
	ContactNumber *string   `json:"contactNumber,omitempty"` // Optional phone number.
	Email         *string   `json:"email,omitempty"`         // Optional email used for order correspondence.
	CreatedAt     time.Time `json:"createdAt"`               // Timestamp of when the retailer was registered.
}
