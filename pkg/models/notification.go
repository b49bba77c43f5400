package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type RecipientType string

const (
	RecipientUser  RecipientType = "user"
	RecipientShop  RecipientType = "shop"
	RecipientAdmin RecipientType = "admin"
)

// Well-known notification type tags. The column stays a free-form string
// so new tags don't require a migration.
const (
	NotificationTypeNewSale             = "new_sale"
	NotificationTypeItemChangeRequest   = "item_change_request"
	NotificationTypeItemChangeRequested = "item_change_requested"
)

type Notification struct {
	ID            string            `gorm:"type:uuid;primary_key" json:"id"`
	RecipientType string            `gorm:"type:varchar(20);not null;index:idx_notifications_recipient" json:"recipient_type"`
	RecipientID   *string           `gorm:"type:uuid;index:idx_notifications_recipient" json:"recipient_id"`
	SenderType    string            `gorm:"type:varchar(20)" json:"sender_type"`
	SenderID      string            `gorm:"type:uuid" json:"sender_id"`
	Type          string            `gorm:"type:varchar(50);not null" json:"type"`
	Content       string            `gorm:"type:text" json:"content"`
	ExtraData     datatypes.JSONMap `gorm:"type:jsonb" json:"extra_data"`
	SaleID        *string           `gorm:"type:uuid;index" json:"sale_id"`
	ShopID        *string           `gorm:"type:uuid" json:"shop_id"`
	IsRead        bool              `gorm:"not null" json:"is_read"`
	ForAdmins     bool              `gorm:"not null" json:"for_admins"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	return nil
}
