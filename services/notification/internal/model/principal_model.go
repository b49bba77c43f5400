package model

type UserModel struct {
	ID string `gorm:"column:id;type:uuid;primaryKey"`
}

func (UserModel) TableName() string {
	return "users"
}

type ShopModel struct {
	ID   string `gorm:"column:id;type:uuid;primaryKey"`
	Name string `gorm:"column:name;not null"`
}

func (ShopModel) TableName() string {
	return "shops"
}

type AdminUserModel struct {
	ID string `gorm:"column:id;type:uuid;primaryKey"`
}

func (AdminUserModel) TableName() string {
	return "admin_users"
}
