package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"boxmarket/pkg/apperr"
	"boxmarket/pkg/logger"
	"boxmarket/services/notification/internal/entity"
	"boxmarket/services/notification/internal/repo/persistent"

	"github.com/redis/go-redis/v9"
)

const listCacheTTL = 5 * time.Minute

type CreateNotificationInput struct {
	RecipientType string
	RecipientID   *string
	Type          string
	Content       string
	ExtraData     map[string]interface{}
}

type NotificationUseCase interface {
	Create(p entity.Principal, input CreateNotificationInput) (*entity.Notification, error)
	ListForUser(p entity.Principal) ([]*entity.Notification, error)
	ListForShop(p entity.Principal) ([]*entity.Notification, error)
	ListForAdmins(p entity.Principal) ([]*entity.Notification, error)
	ListAll(p entity.Principal) ([]*entity.Notification, error)
	MarkRead(notificationID string) (*entity.Notification, error)
	ChangeType(p entity.Principal, notificationID, newType string) (*entity.Notification, error)
}

type notificationUseCase struct {
	notificationRepo persistent.NotificationRepository
	redisClient      *redis.Client
	logger           *logger.Logger
}

func NewNotificationUseCase(notificationRepo persistent.NotificationRepository, redisClient *redis.Client, logger *logger.Logger) NotificationUseCase {
	return &notificationUseCase{
		notificationRepo: notificationRepo,
		redisClient:      redisClient,
		logger:           logger,
	}
}

func (uc *notificationUseCase) Create(p entity.Principal, input CreateNotificationInput) (*entity.Notification, error) {
	if !entity.ValidRecipientType(input.RecipientType) {
		return nil, apperr.Validation("Invalid recipient type")
	}

	notification := &entity.Notification{
		RecipientType: input.RecipientType,
		RecipientID:   input.RecipientID,
		SenderType:    string(p.Role),
		SenderID:      p.ID,
		Type:          input.Type,
		Content:       input.Content,
		ExtraData:     input.ExtraData,
		IsRead:        false,
		ForAdmins:     false,
	}

	created, err := uc.notificationRepo.Create(notification)
	if err != nil {
		uc.logger.Error("Failed to create notification: %v", err)
		return nil, apperr.Database(err)
	}

	uc.invalidateListCache(created.RecipientType, created.RecipientID)
	return created, nil
}

func (uc *notificationUseCase) ListForUser(p entity.Principal) ([]*entity.Notification, error) {
	exists, err := uc.notificationRepo.UserExists(p.ID)
	if err != nil {
		uc.logger.Error("Failed to resolve user %s: %v", p.ID, err)
		return nil, apperr.Database(err)
	}
	if !exists {
		return nil, apperr.Forbidden("User not found")
	}

	return uc.listCached(string(entity.RoleUser), p.ID, func() ([]*entity.Notification, error) {
		return uc.notificationRepo.ListByRecipient(string(entity.RoleUser), p.ID)
	})
}

func (uc *notificationUseCase) ListForShop(p entity.Principal) ([]*entity.Notification, error) {
	exists, err := uc.notificationRepo.ShopExists(p.ID)
	if err != nil {
		uc.logger.Error("Failed to resolve shop %s: %v", p.ID, err)
		return nil, apperr.Database(err)
	}
	if !exists {
		return nil, apperr.Forbidden("Shop not found")
	}

	return uc.listCached(string(entity.RoleShop), p.ID, func() ([]*entity.Notification, error) {
		return uc.notificationRepo.ListByRecipient(string(entity.RoleShop), p.ID)
	})
}

// ListForAdmins returns every admin-facing notification, broadcasts
// included, to any resolved admin.
func (uc *notificationUseCase) ListForAdmins(p entity.Principal) ([]*entity.Notification, error) {
	exists, err := uc.notificationRepo.AdminExists(p.ID)
	if err != nil {
		uc.logger.Error("Failed to resolve admin %s: %v", p.ID, err)
		return nil, apperr.Database(err)
	}
	if !exists {
		return nil, apperr.NotFound("Admin not found")
	}

	return uc.listCached(string(entity.RoleAdmin), "", func() ([]*entity.Notification, error) {
		return uc.notificationRepo.ListForAdmins()
	})
}

func (uc *notificationUseCase) ListAll(p entity.Principal) ([]*entity.Notification, error) {
	if err := requireRole(p, "Unauthorized. Only Super Admins can access all notifications.", entity.RoleSuperAdmin); err != nil {
		return nil, err
	}

	notifications, err := uc.notificationRepo.ListAll()
	if err != nil {
		uc.logger.Error("Failed to list all notifications: %v", err)
		return nil, apperr.Database(err)
	}
	return notifications, nil
}

// MarkRead is idempotent: marking an already-read notification succeeds.
func (uc *notificationUseCase) MarkRead(notificationID string) (*entity.Notification, error) {
	notification, err := uc.notificationRepo.GetByID(notificationID)
	if err != nil {
		uc.logger.Error("Failed to load notification %s: %v", notificationID, err)
		return nil, apperr.Database(err)
	}
	if notification == nil {
		return nil, apperr.NotFound("Notification not found")
	}

	notification.IsRead = true
	saved, err := uc.notificationRepo.Save(notification)
	if err != nil {
		uc.logger.Error("Failed to mark notification %s as read: %v", notificationID, err)
		return nil, apperr.Database(err)
	}

	uc.invalidateListCache(saved.RecipientType, saved.RecipientID)
	return saved, nil
}

func (uc *notificationUseCase) ChangeType(p entity.Principal, notificationID, newType string) (*entity.Notification, error) {
	if err := requireRole(p, "Only admins can change notification types", entity.RoleAdmin); err != nil {
		return nil, err
	}

	notification, err := uc.notificationRepo.GetByID(notificationID)
	if err != nil {
		uc.logger.Error("Failed to load notification %s: %v", notificationID, err)
		return nil, apperr.Database(err)
	}
	if notification == nil {
		return nil, apperr.NotFound("Notification not found")
	}

	notification.Type = newType
	saved, err := uc.notificationRepo.Save(notification)
	if err != nil {
		uc.logger.Error("Failed to change type of notification %s: %v", notificationID, err)
		return nil, apperr.Database(err)
	}

	uc.invalidateListCache(saved.RecipientType, saved.RecipientID)
	return saved, nil
}

// listCacheKey returns the redis key for a recipient's list. Admin
// notifications share one list regardless of recipient id.
func listCacheKey(recipientType string, recipientID string) string {
	if recipientType == string(entity.RoleAdmin) {
		return "notifications:admin"
	}
	return fmt.Sprintf("notifications:%s:%s", recipientType, recipientID)
}

func (uc *notificationUseCase) listCached(recipientType, recipientID string, load func() ([]*entity.Notification, error)) ([]*entity.Notification, error) {
	ctx := context.Background()
	key := listCacheKey(recipientType, recipientID)

	if cached, err := uc.redisClient.Get(ctx, key).Result(); err == nil {
		var notifications []*entity.Notification
		if err := json.Unmarshal([]byte(cached), &notifications); err == nil {
			return notifications, nil
		}
	}

	notifications, err := load()
	if err != nil {
		uc.logger.Error("Failed to list notifications for %s: %v", key, err)
		return nil, apperr.Database(err)
	}

	if payload, err := json.Marshal(notifications); err == nil {
		if err := uc.redisClient.Set(ctx, key, payload, listCacheTTL).Err(); err != nil {
			uc.logger.Warn("Failed to cache %s: %v", key, err)
		}
	}

	return notifications, nil
}

func (uc *notificationUseCase) invalidateListCache(recipientType string, recipientID *string) {
	id := ""
	if recipientID != nil {
		id = *recipientID
	}
	key := listCacheKey(recipientType, id)
	if err := uc.redisClient.Del(context.Background(), key).Err(); err != nil {
		uc.logger.Warn("Failed to invalidate %s: %v", key, err)
	}
}
