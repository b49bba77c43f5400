package persistent

import (
	"errors"

	"boxmarket/services/notification/internal/entity"
	"boxmarket/services/notification/internal/model"

	"gorm.io/gorm"
)

// ChangeRequestTx is the set of writes available inside one transaction.
// Every method reads and writes through the same transaction handle, so a
// failure at any step rolls back all staged rows.
type ChangeRequestTx interface {
	// CreateRequest inserts the change request and returns it with its
	// identifier assigned, before the surrounding transaction commits.
	CreateRequest(request *entity.ItemChangeRequest) (*entity.ItemChangeRequest, error)
	FindShopSale(saleID, shopID string) (*entity.ShopSale, error)
	UpdateShopSaleStatus(id, status string) error
	CreateNotification(notification *entity.Notification) (*entity.Notification, error)
	FindLatestSaleNotification(notificationType, recipientType, recipientID, saleID string) (*entity.Notification, error)
	UpdateNotification(notification *entity.Notification) error
}

type ChangeRequestRepository interface {
	GetShop(id string) (*entity.Shop, error)
	GetBoxItem(id string) (*entity.BoxItem, error)
	InTransaction(fn func(tx ChangeRequestTx) error) error
}

type changeRequestRepository struct {
	db *gorm.DB
}

func NewChangeRequestRepository(db *gorm.DB) ChangeRequestRepository {
	return &changeRequestRepository{db: db}
}

// GetShop returns (nil, nil) when no row matches.
func (r *changeRequestRepository) GetShop(id string) (*entity.Shop, error) {
	var shopModel model.ShopModel
	err := r.db.Where("id = ?", id).First(&shopModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return ToShopEntity(&shopModel), nil
}

// GetBoxItem loads the box item with its sale-detail line, so the caller
// can check sale association and shop ownership. Returns (nil, nil) when
// no row matches.
func (r *changeRequestRepository) GetBoxItem(id string) (*entity.BoxItem, error) {
	var boxItemModel model.BoxItemModel
	err := r.db.Preload("SaleDetail").Where("id = ?", id).First(&boxItemModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return ToBoxItemEntity(&boxItemModel), nil
}

func (r *changeRequestRepository) InTransaction(fn func(tx ChangeRequestTx) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&changeRequestTx{db: tx})
	})
}

type changeRequestTx struct {
	db *gorm.DB
}

func (t *changeRequestTx) CreateRequest(request *entity.ItemChangeRequest) (*entity.ItemChangeRequest, error) {
	requestModel := ToChangeRequestModel(request)
	if err := t.db.Create(requestModel).Error; err != nil {
		return nil, err
	}
	return ToChangeRequestEntity(requestModel), nil
}

func (t *changeRequestTx) FindShopSale(saleID, shopID string) (*entity.ShopSale, error) {
	var shopSaleModel model.ShopSaleModel
	err := t.db.Where("sale_id = ? AND shop_id = ?", saleID, shopID).First(&shopSaleModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return ToShopSaleEntity(&shopSaleModel), nil
}

func (t *changeRequestTx) UpdateShopSaleStatus(id, status string) error {
	return t.db.Model(&model.ShopSaleModel{}).Where("id = ?", id).Update("status", status).Error
}

func (t *changeRequestTx) CreateNotification(notification *entity.Notification) (*entity.Notification, error) {
	notificationModel := ToNotificationModel(notification)
	if err := t.db.Create(notificationModel).Error; err != nil {
		return nil, err
	}
	return ToNotificationEntity(notificationModel), nil
}

func (t *changeRequestTx) FindLatestSaleNotification(notificationType, recipientType, recipientID, saleID string) (*entity.Notification, error) {
	var notificationModel model.NotificationModel
	err := t.db.
		Where("type = ? AND recipient_type = ? AND recipient_id = ? AND sale_id = ?",
			notificationType, recipientType, recipientID, saleID).
		Order("created_at DESC").
		First(&notificationModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return ToNotificationEntity(&notificationModel), nil
}

func (t *changeRequestTx) UpdateNotification(notification *entity.Notification) error {
	return t.db.Save(ToNotificationModel(notification)).Error
}
