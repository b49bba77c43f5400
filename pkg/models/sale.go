package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const ShopSaleStatusChangesRequested = "changes_requested"

type Sale struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;index" json:"user_id"`
	Total     int       `gorm:"not null" json:"total"` // cents
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ShopSale is the per-shop status record for a sale. At most one row
// exists per (sale_id, shop_id) pair.
type ShopSale struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	SaleID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_shop_sales_sale_shop" json:"sale_id"`
	ShopID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_shop_sales_sale_shop" json:"shop_id"`
	Status    string    `gorm:"type:varchar(30);not null" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SaleDetail is a line grouping within a sale, linking box items to the
// shop that fulfils them.
type SaleDetail struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	SaleID    string    `gorm:"type:uuid;not null;index" json:"sale_id"`
	ShopID    string    `gorm:"type:uuid;not null;index" json:"shop_id"`
	CreatedAt time.Time `json:"created_at"`
}

type BoxItem struct {
	ID           string    `gorm:"type:uuid;primary_key" json:"id"`
	SaleDetailID string    `gorm:"type:uuid;not null;index" json:"sale_detail_id"`
	ItemName     string    `gorm:"not null" json:"item_name"`
	CreatedAt    time.Time `json:"created_at"`
}

func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}

func (s *ShopSale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}

func (d *SaleDetail) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	return nil
}

func (b *BoxItem) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return nil
}
