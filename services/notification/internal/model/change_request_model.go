package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ItemChangeRequestModel struct {
	ID               string    `gorm:"column:id;type:uuid;primaryKey"`
	BoxItemID        string    `gorm:"column:box_item_id;type:uuid;not null"`
	ShopID           string    `gorm:"column:shop_id;type:uuid;not null"`
	OriginalItemName string    `gorm:"column:original_item_name;not null"`
	ProposedItemName string    `gorm:"column:proposed_item_name;not null"`
	Reason           string    `gorm:"column:reason;type:text"`
	Status           string    `gorm:"column:status;type:varchar(20);not null"`
	CreatedAt        time.Time `gorm:"column:created_at"`
}

func (ItemChangeRequestModel) TableName() string {
	return "item_change_requests"
}

func (r *ItemChangeRequestModel) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}
