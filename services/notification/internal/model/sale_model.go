package model

import "time"

type ShopSaleModel struct {
	ID        string    `gorm:"column:id;type:uuid;primaryKey"`
	SaleID    string    `gorm:"column:sale_id;type:uuid;not null"`
	ShopID    string    `gorm:"column:shop_id;type:uuid;not null"`
	Status    string    `gorm:"column:status;type:varchar(30);not null"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (ShopSaleModel) TableName() string {
	return "shop_sales"
}

type SaleDetailModel struct {
	ID     string `gorm:"column:id;type:uuid;primaryKey"`
	SaleID string `gorm:"column:sale_id;type:uuid;not null"`
	ShopID string `gorm:"column:shop_id;type:uuid;not null"`
}

func (SaleDetailModel) TableName() string {
	return "sale_details"
}

type BoxItemModel struct {
	ID           string          `gorm:"column:id;type:uuid;primaryKey"`
	SaleDetailID string          `gorm:"column:sale_detail_id;type:uuid;not null"`
	ItemName     string          `gorm:"column:item_name;not null"`
	SaleDetail   SaleDetailModel `gorm:"foreignKey:SaleDetailID"`
}

func (BoxItemModel) TableName() string {
	return "box_items"
}
