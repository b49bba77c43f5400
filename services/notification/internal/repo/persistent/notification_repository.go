package persistent

import (
	"errors"

	"boxmarket/services/notification/internal/entity"
	"boxmarket/services/notification/internal/model"

	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(notification *entity.Notification) (*entity.Notification, error)
	GetByID(id string) (*entity.Notification, error)
	Save(notification *entity.Notification) (*entity.Notification, error)
	ListByRecipient(recipientType, recipientID string) ([]*entity.Notification, error)
	ListForAdmins() ([]*entity.Notification, error)
	ListAll() ([]*entity.Notification, error)
	UserExists(id string) (bool, error)
	ShopExists(id string) (bool, error)
	AdminExists(id string) (bool, error)
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(notification *entity.Notification) (*entity.Notification, error) {
	notificationModel := ToNotificationModel(notification)
	if err := r.db.Create(notificationModel).Error; err != nil {
		return nil, err
	}
	return ToNotificationEntity(notificationModel), nil
}

// GetByID returns (nil, nil) when no row matches.
func (r *notificationRepository) GetByID(id string) (*entity.Notification, error) {
	var notificationModel model.NotificationModel
	err := r.db.Where("id = ?", id).First(&notificationModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return ToNotificationEntity(&notificationModel), nil
}

func (r *notificationRepository) Save(notification *entity.Notification) (*entity.Notification, error) {
	notificationModel := ToNotificationModel(notification)
	if err := r.db.Save(notificationModel).Error; err != nil {
		return nil, err
	}
	return ToNotificationEntity(notificationModel), nil
}

func (r *notificationRepository) ListByRecipient(recipientType, recipientID string) ([]*entity.Notification, error) {
	var notificationModels []model.NotificationModel
	err := r.db.
		Where("recipient_type = ? AND recipient_id = ?", recipientType, recipientID).
		Order("created_at DESC").
		Find(&notificationModels).Error
	if err != nil {
		return nil, err
	}
	return ToNotificationEntities(notificationModels), nil
}

// ListForAdmins includes broadcast rows, which carry no recipient id.
func (r *notificationRepository) ListForAdmins() ([]*entity.Notification, error) {
	var notificationModels []model.NotificationModel
	err := r.db.
		Where("recipient_type = ?", string(entity.RoleAdmin)).
		Order("created_at DESC").
		Find(&notificationModels).Error
	if err != nil {
		return nil, err
	}
	return ToNotificationEntities(notificationModels), nil
}

func (r *notificationRepository) ListAll() ([]*entity.Notification, error) {
	var notificationModels []model.NotificationModel
	err := r.db.Order("created_at DESC").Find(&notificationModels).Error
	if err != nil {
		return nil, err
	}
	return ToNotificationEntities(notificationModels), nil
}

func (r *notificationRepository) UserExists(id string) (bool, error) {
	var count int64
	err := r.db.Model(&model.UserModel{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *notificationRepository) ShopExists(id string) (bool, error) {
	var count int64
	err := r.db.Model(&model.ShopModel{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *notificationRepository) AdminExists(id string) (bool, error) {
	var count int64
	err := r.db.Model(&model.AdminUserModel{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
