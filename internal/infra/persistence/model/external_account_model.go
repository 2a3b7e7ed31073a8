package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExternalAccountLinkModel mirrors the 'external_account_links' table.
type ExternalAccountLinkModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_external_account_links_user_id"`
	Provider     string     `gorm:"type:varchar(32);not null;uniqueIndex:idx_external_account_links_provider_external_id"`
	ExternalID   string     `gorm:"type:varchar(255);not null;uniqueIndex:idx_external_account_links_provider_external_id"`
	AccessToken  string     `gorm:"type:text;not null"`
	RefreshToken string     `gorm:"type:text;not null;default:''"`
	ExpiresAt    *time.Time `gorm:"index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	User *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ExternalAccountLinkModel) TableName() string {
	return "external_account_links"
}

// BeforeCreate assigns a time-ordered UUID when the caller did not set one.
func (m *ExternalAccountLinkModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}
