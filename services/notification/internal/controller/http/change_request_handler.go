package http

import (
	"net/http"

	"boxmarket/pkg/apperr"
	"boxmarket/pkg/logger"
	"boxmarket/services/notification/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ChangeRequestHandler struct {
	changeRequestUseCase usecase.ChangeRequestUseCase
	logger               *logger.Logger
}

func NewChangeRequestHandler(changeRequestUseCase usecase.ChangeRequestUseCase, logger *logger.Logger) *ChangeRequestHandler {
	return &ChangeRequestHandler{
		changeRequestUseCase: changeRequestUseCase,
		logger:               logger,
	}
}

type CreateChangeRequestRequest struct {
	BoxItemID        string `json:"box_item_id" binding:"required"`
	ProposedItemName string `json:"proposed_item_name" binding:"required"`
	Reason           string `json:"reason" binding:"required"`
}

// CreateChangeRequest godoc
// @Summary      Request an item change
// @Description  Atomically record a shop's request to substitute an item within a sale: creates the change request, flips the sale status to changes_requested and synchronizes the shop and admin notifications
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateChangeRequestRequest true "Change request data"
// @Success      201  {object}  entity.ItemChangeRequest
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /notifications/change-request [post]
func (h *ChangeRequestHandler) CreateChangeRequest(c *gin.Context) {
	var req CreateChangeRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request, err := h.changeRequestUseCase.RequestItemChange(
		principalFromContext(c),
		req.BoxItemID,
		req.ProposedItemName,
		req.Reason,
	)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, request)
}
