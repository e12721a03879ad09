package model

import (
	"time"

	"github.com/google/uuid"
)

// LocationModel is the GORM-specific struct for the 'locations' table.
// name+address should be unique per venue, but the scraper produces
// near-duplicates, so uniqueness is not enforced at the schema level.
type LocationModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name       string    `gorm:"type:varchar(255);not null;index:idx_locations_on_name_address"`
	Address    string    `gorm:"type:varchar(255);index:idx_locations_on_name_address"`
	City       string    `gorm:"type:varchar(128);index"`
	Province   string    `gorm:"type:varchar(64)"`
	PostalCode string    `gorm:"type:varchar(16)"`
	Facility   string    `gorm:"type:varchar(128)"`
	Latitude   *float64  `gorm:"type:decimal(10,8)"`
	Longitude  *float64  `gorm:"type:decimal(11,8)"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (LocationModel) TableName() string {
	return "locations"
}
