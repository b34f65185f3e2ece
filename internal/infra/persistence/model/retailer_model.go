package model

import (
	"time"

	"github.com/google/uuid"
)

// RetailerModel is the GORM-specific struct for the 'retailers' table.
type RetailerModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name          string    `gorm:"type:text;not null"`
	Location      string    `gorm:"type:text;not null"`
	ContactNumber *string   `gorm:"type:text"`
	Email         *string   `gorm:"type:text"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (RetailerModel) TableName() string {
	return "retailers"
}
