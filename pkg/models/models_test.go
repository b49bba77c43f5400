package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotification_BeforeCreate(t *testing.T) {
	notification := &Notification{
		RecipientType: string(RecipientUser),
		Type:          NotificationTypeNewSale,
		Content:       "Your order is on its way",
	}

	// BeforeCreate should set ID if empty
	err := notification.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, notification.ID)
}

func TestNotification_BeforeCreate_WithID(t *testing.T) {
	existingID := "existing-id-123"
	notification := &Notification{
		ID:            existingID,
		RecipientType: string(RecipientAdmin),
		Type:          NotificationTypeItemChangeRequest,
	}

	err := notification.BeforeCreate(nil)
	assert.NoError(t, err)
	// ID should remain unchanged if already set
	assert.Equal(t, existingID, notification.ID)
}

func TestItemChangeRequest_BeforeCreate(t *testing.T) {
	request := &ItemChangeRequest{
		BoxItemID:        "box-item-1",
		ShopID:           "shop-1",
		OriginalItemName: "Red Shirt",
		ProposedItemName: "Blue Shirt",
		Status:           ChangeRequestStatusPending,
	}

	err := request.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, request.ID)
}

func TestShopSale_BeforeCreate(t *testing.T) {
	shopSale := &ShopSale{
		SaleID: "sale-1",
		ShopID: "shop-1",
		Status: "confirmed",
	}

	err := shopSale.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, shopSale.ID)
}

func TestPrincipals_BeforeCreate(t *testing.T) {
	user := &User{Email: "user@test.com", Username: "user", Password: "x"}
	shop := &Shop{Email: "shop@test.com", Name: "Corner Shop", Password: "x"}
	admin := &AdminUser{Email: "admin@test.com", Username: "admin", Password: "x"}

	assert.NoError(t, user.BeforeCreate(nil))
	assert.NoError(t, shop.BeforeCreate(nil))
	assert.NoError(t, admin.BeforeCreate(nil))

	assert.NotEmpty(t, user.ID)
	assert.NotEmpty(t, shop.ID)
	assert.NotEmpty(t, admin.ID)
}

func TestRecipientType_Constants(t *testing.T) {
	assert.Equal(t, RecipientType("user"), RecipientUser)
	assert.Equal(t, RecipientType("shop"), RecipientShop)
	assert.Equal(t, RecipientType("admin"), RecipientAdmin)
}
