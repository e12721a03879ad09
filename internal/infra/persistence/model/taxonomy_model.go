package model

import (
	"time"

	"github.com/google/uuid"
)

// CategoryModel is the GORM-specific struct for the 'categories' table.
type CategoryModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name           string    `gorm:"type:varchar(128);not null;uniqueIndex"`
	AgeMin         int       `gorm:"not null;default:0"`
	AgeMax         int       `gorm:"not null;default:18"`
	RequiresParent bool      `gorm:"not null;default:false"`
	DisplayOrder   int       `gorm:"not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// ActivityTypeModel is the GORM-specific struct for the 'activity_types' table.
type ActivityTypeModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Code         string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	Name         string    `gorm:"type:varchar(128);not null"`
	DisplayOrder int       `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Subtypes []*ActivitySubtypeModel `gorm:"foreignKey:ActivityTypeID"`
}

// TableName explicitly sets the table name for GORM.
func (ActivityTypeModel) TableName() string {
	return "activity_types"
}

// ActivitySubtypeModel is the GORM-specific struct for the 'activity_subtypes' table.
type ActivitySubtypeModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	ActivityTypeID uuid.UUID `gorm:"type:uuid;not null;index"`
	Code           string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	Name           string    `gorm:"type:varchar(128);not null"`
	DisplayOrder   int       `gorm:"not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (ActivitySubtypeModel) TableName() string {
	return "activity_subtypes"
}
