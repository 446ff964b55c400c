package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via
// uuid_generate_v4(); the unique index on email is the authority for
// email uniqueness.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	AgeConfirmed bool      `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Favorites []FavoriteModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// FavoriteModel mirrors the 'favorites' table. The bigserial primary key
// preserves append order, so listing by id ascending yields insertion order.
type FavoriteModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ContentID string    `gorm:"type:varchar(255);not null"`
	Title     string    `gorm:"type:varchar(255)"`
	Snippet   string    `gorm:"type:text"`
	URL       string    `gorm:"type:varchar(2048)"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "favorites"
}
