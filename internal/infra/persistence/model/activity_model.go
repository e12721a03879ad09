package model

import (
	"time"

	"github.com/google/uuid"
)

// ActivityModel is the GORM-specific struct for the 'activities' table.
// DaysOfWeek is stored as the scraper emits it: a comma-separated list of
// day names ("Monday,Wednesday").
type ActivityModel struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name               string     `gorm:"type:varchar(255);not null;index:idx_activities_on_name"`
	Description        string     `gorm:"type:text"`
	Category           string     `gorm:"type:varchar(255)"`
	Subcategory        string     `gorm:"type:varchar(255)"`
	ActivityTypeID     *uuid.UUID `gorm:"type:uuid;index"`
	ActivitySubtypeID  *uuid.UUID `gorm:"type:uuid;index"`
	AgeMin             int        `gorm:"not null;default:0;index:idx_activities_on_age"`
	AgeMax             int        `gorm:"not null;default:18;index:idx_activities_on_age"`
	Cost               float64    `gorm:"type:decimal(10,2);not null;default:0"`
	DaysOfWeek         string     `gorm:"type:varchar(255)"`
	TimeStart          string     `gorm:"type:varchar(16)"`
	TimeEnd            string     `gorm:"type:varchar(16)"`
	DateStart          *time.Time `gorm:"index:idx_activities_on_date_start"`
	DateEnd            *time.Time
	RegistrationStatus string     `gorm:"type:varchar(32);not null;default:'Open'"`
	SpotsAvailable     int        `gorm:"not null;default:0"`
	TotalSpots         int        `gorm:"not null;default:0"`
	IsActive           bool       `gorm:"not null;default:true;index"`
	ExternalID         string     `gorm:"type:varchar(255);index:idx_activities_on_external,unique,composite:provider_external"`
	CourseID           string     `gorm:"type:varchar(255)"`
	LocationID         *uuid.UUID `gorm:"type:uuid;index"`
	ProviderID         uuid.UUID  `gorm:"type:uuid;not null;index:idx_activities_on_external,unique,composite:provider_external"`
	LastSeenAt         time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time

	Location   *LocationModel   `gorm:"foreignKey:LocationID"`
	Provider   *ProviderModel   `gorm:"foreignKey:ProviderID"`
	Categories []*CategoryModel `gorm:"many2many:activity_categories;joinForeignKey:ActivityID;joinReferences:CategoryID"`
}

// TableName explicitly sets the table name for GORM.
func (ActivityModel) TableName() string {
	return "activities"
}

// ActivityCategoryModel is the join table between activities and categories,
// carrying provenance for the inferred assignment.
type ActivityCategoryModel struct {
	ActivityID uuid.UUID `gorm:"type:uuid;primaryKey"`
	CategoryID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Confidence float64   `gorm:"type:decimal(4,3);not null;default:0"`
	Source     string    `gorm:"type:varchar(32);not null;default:'rules'"`
	IsPrimary  bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ActivityCategoryModel) TableName() string {
	return "activity_categories"
}
