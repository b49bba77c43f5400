package usecase

import (
	"context"
	"fmt"

	"boxmarket/pkg/apperr"
	"boxmarket/pkg/logger"
	"boxmarket/services/notification/internal/entity"
	"boxmarket/services/notification/internal/repo/persistent"

	"github.com/redis/go-redis/v9"
)

type ChangeRequestUseCase interface {
	RequestItemChange(p entity.Principal, boxItemID, proposedItemName, reason string) (*entity.ItemChangeRequest, error)
}

type changeRequestUseCase struct {
	changeRepo  persistent.ChangeRequestRepository
	redisClient *redis.Client
	logger      *logger.Logger
}

func NewChangeRequestUseCase(changeRepo persistent.ChangeRequestRepository, redisClient *redis.Client, logger *logger.Logger) ChangeRequestUseCase {
	return &changeRequestUseCase{
		changeRepo:  changeRepo,
		redisClient: redisClient,
		logger:      logger,
	}
}

// RequestItemChange records a shop's request to substitute one item for
// another within a sale. The change request, the sale status update, the
// admin notification and the rewritten shop notification commit as one
// transaction; a failure at any step leaves no partial rows behind.
func (uc *changeRequestUseCase) RequestItemChange(p entity.Principal, boxItemID, proposedItemName, reason string) (*entity.ItemChangeRequest, error) {
	if err := requireRole(p, "You must be logged in as a shop", entity.RoleShop); err != nil {
		return nil, err
	}

	shop, err := uc.changeRepo.GetShop(p.ID)
	if err != nil {
		uc.logger.Error("Failed to resolve shop %s: %v", p.ID, err)
		return nil, apperr.Database(err)
	}
	if shop == nil {
		return nil, apperr.NotFound("Shop not found")
	}

	boxItem, err := uc.changeRepo.GetBoxItem(boxItemID)
	if err != nil {
		uc.logger.Error("Failed to load box item %s: %v", boxItemID, err)
		return nil, apperr.Database(err)
	}
	// Ownership check, not just existence: the box item's sale-detail line
	// must belong to the calling shop.
	if boxItem == nil || boxItem.ShopID != shop.ID {
		return nil, apperr.Validation("Invalid box item")
	}

	saleID := boxItem.SaleID
	if saleID == "" {
		return nil, apperr.Validation("Sale not found")
	}

	var created *entity.ItemChangeRequest
	err = uc.changeRepo.InTransaction(func(tx persistent.ChangeRequestTx) error {
		request := &entity.ItemChangeRequest{
			BoxItemID:        boxItemID,
			ShopID:           shop.ID,
			OriginalItemName: boxItem.ItemName,
			ProposedItemName: proposedItemName,
			Reason:           reason,
			Status:           entity.ChangeRequestStatusPending,
		}

		// The insert assigns the request id before commit so the admin
		// notification payload can reference it.
		created, err = tx.CreateRequest(request)
		if err != nil {
			return err
		}

		// Best effort: a missing shop-sale row is not an error.
		shopSale, err := tx.FindShopSale(saleID, shop.ID)
		if err != nil {
			return err
		}
		if shopSale != nil {
			if err := tx.UpdateShopSaleStatus(shopSale.ID, entity.ShopSaleStatusChangesRequested); err != nil {
				return err
			}
		}

		adminNotification := &entity.Notification{
			RecipientType: string(entity.RoleAdmin),
			SenderType:    string(entity.RoleShop),
			SenderID:      shop.ID,
			SaleID:        &saleID,
			ShopID:        &shop.ID,
			Type:          entity.TypeItemChangeRequest,
			Content: fmt.Sprintf("Shop %s has requested to change %s for %s in order #%s (sale detail #%s).",
				shop.Name, boxItem.ItemName, proposedItemName, saleID, boxItem.SaleDetailID),
			ExtraData: map[string]interface{}{
				"item_change_request_id": created.ID,
				"original_item_name":     boxItem.ItemName,
				"proposed_item_name":     proposedItemName,
			},
		}
		if _, err := tx.CreateNotification(adminNotification); err != nil {
			return err
		}

		// Rewrite the shop's original order notification if it still
		// exists; its absence is not an error either.
		original, err := tx.FindLatestSaleNotification(entity.TypeNewSale, string(entity.RoleShop), shop.ID, saleID)
		if err != nil {
			return err
		}
		if original != nil {
			original.Type = entity.TypeItemChangeRequested
			original.IsRead = false
			original.Content = fmt.Sprintf("You have requested to change item %s for %s in order #%s. Awaiting admin approval.",
				boxItem.ItemName, proposedItemName, saleID)
			if err := tx.UpdateNotification(original); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		uc.logger.Error("Item change request for box item %s rolled back: %v", boxItemID, err)
		return nil, apperr.Database(err)
	}

	uc.invalidateListCaches(shop.ID)
	return created, nil
}

func (uc *changeRequestUseCase) invalidateListCaches(shopID string) {
	ctx := context.Background()
	keys := []string{
		listCacheKey(string(entity.RoleShop), shopID),
		listCacheKey(string(entity.RoleAdmin), ""),
	}
	if err := uc.redisClient.Del(ctx, keys...).Err(); err != nil {
		uc.logger.Warn("Failed to invalidate notification caches for shop %s: %v", shopID, err)
	}
}
