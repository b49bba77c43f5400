package http

import (
	"net/http"

	"boxmarket/pkg/apperr"
	"boxmarket/pkg/logger"
	"boxmarket/services/notification/internal/entity"
	"boxmarket/services/notification/internal/usecase"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notificationUseCase usecase.NotificationUseCase
	logger              *logger.Logger
}

func NewNotificationHandler(notificationUseCase usecase.NotificationUseCase, logger *logger.Logger) *NotificationHandler {
	return &NotificationHandler{
		notificationUseCase: notificationUseCase,
		logger:              logger,
	}
}

type CreateNotificationRequest struct {
	RecipientType string                 `json:"recipient_type" binding:"required"`
	RecipientID   *string                `json:"recipient_id"`
	Type          string                 `json:"type" binding:"required"`
	Content       string                 `json:"content" binding:"required"`
	ExtraData     map[string]interface{} `json:"extra_data,omitempty"`
}

type ChangeTypeRequest struct {
	Type string `json:"type" binding:"required"`
}

// principalFromContext rebuilds the verified caller identity stored by the
// auth middleware.
func principalFromContext(c *gin.Context) entity.Principal {
	return entity.Principal{
		ID:   c.GetString("user_id"),
		Role: entity.Role(c.GetString("role")),
	}
}

// CreateNotification godoc
// @Summary      Create a notification
// @Description  Create a notification for a user, shop or the admin audience
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateNotificationRequest true "Notification data"
// @Success      201  {object}  entity.Notification
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /notifications/create [post]
func (h *NotificationHandler) CreateNotification(c *gin.Context) {
	var req CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	notification, err := h.notificationUseCase.Create(principalFromContext(c), usecase.CreateNotificationInput{
		RecipientType: req.RecipientType,
		RecipientID:   req.RecipientID,
		Type:          req.Type,
		Content:       req.Content,
		ExtraData:     req.ExtraData,
	})
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, notification)
}

// GetUserNotifications godoc
// @Summary      Get user notifications
// @Description  Get all notifications addressed to the authenticated user, most recent first
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   entity.Notification
// @Failure      403  {object}  map[string]string
// @Router       /notifications/user [get]
func (h *NotificationHandler) GetUserNotifications(c *gin.Context) {
	notifications, err := h.notificationUseCase.ListForUser(principalFromContext(c))
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, notifications)
}

// GetShopNotifications godoc
// @Summary      Get shop notifications
// @Description  Get all notifications addressed to the authenticated shop, most recent first
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   entity.Notification
// @Failure      403  {object}  map[string]string
// @Router       /notifications/shop [get]
func (h *NotificationHandler) GetShopNotifications(c *gin.Context) {
	notifications, err := h.notificationUseCase.ListForShop(principalFromContext(c))
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, notifications)
}

// GetAdminNotifications godoc
// @Summary      Get admin notifications
// @Description  Get all admin-facing notifications, broadcasts included, most recent first
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   entity.Notification
// @Failure      404  {object}  map[string]string
// @Router       /notifications/admin [get]
func (h *NotificationHandler) GetAdminNotifications(c *gin.Context) {
	notifications, err := h.notificationUseCase.ListForAdmins(principalFromContext(c))
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, notifications)
}

// GetAllNotifications godoc
// @Summary      Get every notification
// @Description  Unrestricted listing, super admins only
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   entity.Notification
// @Failure      403  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /notifications/all [get]
func (h *NotificationHandler) GetAllNotifications(c *gin.Context) {
	notifications, err := h.notificationUseCase.ListAll(principalFromContext(c))
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, notifications)
}

// MarkNotificationAsRead godoc
// @Summary      Mark a notification as read
// @Description  Idempotent: marking an already-read notification succeeds
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Notification ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /notifications/{id}/read [patch]
func (h *NotificationHandler) MarkNotificationAsRead(c *gin.Context) {
	if _, err := h.notificationUseCase.MarkRead(c.Param("id")); err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Notification marked as read"})
}

// ChangeNotificationType godoc
// @Summary      Change a notification's type
// @Description  Admin only
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Notification ID"
// @Param        request body ChangeTypeRequest true "New type"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /notifications/{id}/change_type [patch]
func (h *NotificationHandler) ChangeNotificationType(c *gin.Context) {
	var req ChangeTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if _, err := h.notificationUseCase.ChangeType(principalFromContext(c), c.Param("id"), req.Type); err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Notification type updated successfully"})
}
