package entity

import "time"

const ChangeRequestStatusPending = "pending"

const ShopSaleStatusChangesRequested = "changes_requested"

type ItemChangeRequest struct {
	ID               string    `json:"id"`
	BoxItemID        string    `json:"box_item_id"`
	ShopID           string    `json:"shop_id"`
	OriginalItemName string    `json:"original_item_name"`
	ProposedItemName string    `json:"proposed_item_name"`
	Reason           string    `json:"reason"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}

type Shop struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// BoxItem is an article within a sale box. SaleID and ShopID are derived
// from its sale-detail line; an empty SaleID means the item is not
// attached to any sale.
type BoxItem struct {
	ID           string `json:"id"`
	ItemName     string `json:"item_name"`
	SaleDetailID string `json:"sale_detail_id"`
	SaleID       string `json:"sale_id"`
	ShopID       string `json:"shop_id"`
}

type ShopSale struct {
	ID     string `json:"id"`
	SaleID string `json:"sale_id"`
	ShopID string `json:"shop_id"`
	Status string `json:"status"`
}
