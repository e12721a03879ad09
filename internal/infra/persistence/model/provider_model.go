package model

import (
	"time"

	"github.com/google/uuid"
)

// ProviderModel is the GORM-specific struct for the 'providers' table.
type ProviderModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name      string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Website   string    `gorm:"type:varchar(255)"`
	Region    string    `gorm:"type:varchar(128)"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProviderModel) TableName() string {
	return "providers"
}
