package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username  string    `gorm:"type:varchar(150);uniqueIndex;not null"`
	Email     string    `gorm:"type:varchar(255);index;not null;default:''"`
	FirstName string    `gorm:"type:varchar(150);not null;default:''"`
	LastName  string    `gorm:"type:varchar(150);not null;default:''"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Profile *UserProfileModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// BeforeCreate assigns a time-ordered UUID when the caller did not set one.
func (m *UserModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}

// UserProfileModel mirrors the 'user_profiles' table. UserID references users.id.
type UserProfileModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	AvatarURL string    `gorm:"type:varchar(512);not null;default:''"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserProfileModel) TableName() string {
	return "user_profiles"
}

func assignID(id *uuid.UUID) error {
	if *id != uuid.Nil {
		return nil
	}

	generated, err := uuid.NewV7()
	if err != nil {
		return err
	}
	*id = generated

	return nil
}
