package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const ChangeRequestStatusPending = "pending"

type ItemChangeRequest struct {
	ID               string    `gorm:"type:uuid;primary_key" json:"id"`
	BoxItemID        string    `gorm:"type:uuid;not null;index" json:"box_item_id"`
	ShopID           string    `gorm:"type:uuid;not null;index" json:"shop_id"`
	OriginalItemName string    `gorm:"not null" json:"original_item_name"`
	ProposedItemName string    `gorm:"not null" json:"proposed_item_name"`
	Reason           string    `gorm:"type:text" json:"reason"`
	Status           string    `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}

func (r *ItemChangeRequest) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}
