package model

import (
	"time"

	"github.com/google/uuid"
)

// FavoriteModel mirrors the 'favorites' table. One row per (user, activity) pair.
type FavoriteModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorite_pair"`
	ActivityID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorite_pair"`
	CreatedAt  time.Time

	Activity *ActivityModel `gorm:"foreignKey:ActivityID"`
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "favorites"
}
