package entity

import "time"

// Notification type tags used by the item-change workflow. The type field
// itself is free-form.
const (
	TypeNewSale             = "new_sale"
	TypeItemChangeRequest   = "item_change_request"
	TypeItemChangeRequested = "item_change_requested"
)

type Notification struct {
	ID            string                 `json:"id"`
	RecipientType string                 `json:"recipient_type"`
	RecipientID   *string                `json:"recipient_id"`
	SenderType    string                 `json:"sender_type"`
	SenderID      string                 `json:"sender_id"`
	Type          string                 `json:"type"`
	Content       string                 `json:"content"`
	ExtraData     map[string]interface{} `json:"extra_data"`
	SaleID        *string                `json:"sale_id"`
	ShopID        *string                `json:"shop_id"`
	IsRead        bool                   `json:"is_read"`
	ForAdmins     bool                   `json:"for_admins"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}
