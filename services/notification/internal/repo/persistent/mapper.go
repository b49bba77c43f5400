package persistent

import (
	"boxmarket/services/notification/internal/entity"
	"boxmarket/services/notification/internal/model"

	"gorm.io/datatypes"
)

func ToNotificationEntity(m *model.NotificationModel) *entity.Notification {
	if m == nil {
		return nil
	}

	return &entity.Notification{
		ID:            m.ID,
		RecipientType: m.RecipientType,
		RecipientID:   m.RecipientID,
		SenderType:    m.SenderType,
		SenderID:      m.SenderID,
		Type:          m.Type,
		Content:       m.Content,
		ExtraData:     map[string]interface{}(m.ExtraData),
		SaleID:        m.SaleID,
		ShopID:        m.ShopID,
		IsRead:        m.IsRead,
		ForAdmins:     m.ForAdmins,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func ToNotificationModel(e *entity.Notification) *model.NotificationModel {
	if e == nil {
		return nil
	}

	return &model.NotificationModel{
		ID:            e.ID,
		RecipientType: e.RecipientType,
		RecipientID:   e.RecipientID,
		SenderType:    e.SenderType,
		SenderID:      e.SenderID,
		Type:          e.Type,
		Content:       e.Content,
		ExtraData:     datatypes.JSONMap(e.ExtraData),
		SaleID:        e.SaleID,
		ShopID:        e.ShopID,
		IsRead:        e.IsRead,
		ForAdmins:     e.ForAdmins,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func ToNotificationEntities(models []model.NotificationModel) []*entity.Notification {
	notifications := make([]*entity.Notification, len(models))
	for i := range models {
		notifications[i] = ToNotificationEntity(&models[i])
	}
	return notifications
}

func ToChangeRequestEntity(m *model.ItemChangeRequestModel) *entity.ItemChangeRequest {
	if m == nil {
		return nil
	}

	return &entity.ItemChangeRequest{
		ID:               m.ID,
		BoxItemID:        m.BoxItemID,
		ShopID:           m.ShopID,
		OriginalItemName: m.OriginalItemName,
		ProposedItemName: m.ProposedItemName,
		Reason:           m.Reason,
		Status:           m.Status,
		CreatedAt:        m.CreatedAt,
	}
}

func ToChangeRequestModel(e *entity.ItemChangeRequest) *model.ItemChangeRequestModel {
	if e == nil {
		return nil
	}

	return &model.ItemChangeRequestModel{
		ID:               e.ID,
		BoxItemID:        e.BoxItemID,
		ShopID:           e.ShopID,
		OriginalItemName: e.OriginalItemName,
		ProposedItemName: e.ProposedItemName,
		Reason:           e.Reason,
		Status:           e.Status,
		CreatedAt:        e.CreatedAt,
	}
}

func ToShopEntity(m *model.ShopModel) *entity.Shop {
	if m == nil {
		return nil
	}
	return &entity.Shop{ID: m.ID, Name: m.Name}
}

// ToBoxItemEntity flattens the sale-detail relation so callers see the
// owning shop and sale directly.
func ToBoxItemEntity(m *model.BoxItemModel) *entity.BoxItem {
	if m == nil {
		return nil
	}

	return &entity.BoxItem{
		ID:           m.ID,
		ItemName:     m.ItemName,
		SaleDetailID: m.SaleDetailID,
		SaleID:       m.SaleDetail.SaleID,
		ShopID:       m.SaleDetail.ShopID,
	}
}

func ToShopSaleEntity(m *model.ShopSaleModel) *entity.ShopSale {
	if m == nil {
		return nil
	}

	return &entity.ShopSale{
		ID:     m.ID,
		SaleID: m.SaleID,
		ShopID: m.ShopID,
		Status: m.Status,
	}
}
