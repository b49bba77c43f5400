package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type NotificationModel struct {
	ID            string            `gorm:"column:id;type:uuid;primaryKey"`
	RecipientType string            `gorm:"column:recipient_type;type:varchar(20);not null"`
	RecipientID   *string           `gorm:"column:recipient_id;type:uuid"`
	SenderType    string            `gorm:"column:sender_type;type:varchar(20)"`
	SenderID      string            `gorm:"column:sender_id;type:uuid"`
	Type          string            `gorm:"column:type;type:varchar(50);not null"`
	Content       string            `gorm:"column:content;type:text"`
	ExtraData     datatypes.JSONMap `gorm:"column:extra_data;type:jsonb"`
	SaleID        *string           `gorm:"column:sale_id;type:uuid"`
	ShopID        *string           `gorm:"column:shop_id;type:uuid"`
	IsRead        bool              `gorm:"column:is_read;not null"`
	ForAdmins     bool              `gorm:"column:for_admins;not null"`
	CreatedAt     time.Time         `gorm:"column:created_at"`
	UpdatedAt     time.Time         `gorm:"column:updated_at"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}

func (n *NotificationModel) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	return nil
}
