package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"boxmarket/pkg/apperr"
	"boxmarket/pkg/logger"
	"boxmarket/services/notification/internal/entity"

	"github.com/stretchr/testify/assert"
)

type fakeChangeRequestUseCase struct {
	request *entity.ItemChangeRequest
	err     error

	lastPrincipal entity.Principal
	lastBoxItemID string
	lastProposed  string
	lastReason    string
}

func (f *fakeChangeRequestUseCase) RequestItemChange(p entity.Principal, boxItemID, proposedItemName, reason string) (*entity.ItemChangeRequest, error) {
	f.lastPrincipal = p
	f.lastBoxItemID = boxItemID
	f.lastProposed = proposedItemName
	f.lastReason = reason
	return f.request, f.err
}

func changeRequestBody() []byte {
	body, _ := json.Marshal(map[string]string{
		"box_item_id":        "item-1",
		"proposed_item_name": "Pears",
		"reason":             "out of stock",
	})
	return body
}

func TestCreateChangeRequest_Success(t *testing.T) {
	// Setup
	fake := &fakeChangeRequestUseCase{
		request: &entity.ItemChangeRequest{
			ID:               "req-1",
			BoxItemID:        "item-1",
			ShopID:           "shop-1",
			OriginalItemName: "Organic Apples",
			ProposedItemName: "Pears",
			Status:           entity.ChangeRequestStatusPending,
		},
	}
	handler := NewChangeRequestHandler(fake, logger.New())

	router := setupNotificationTestRouter()
	router.POST("/notifications/change-request", withPrincipal("shop-1", entity.RoleShop), handler.CreateChangeRequest)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/notifications/change-request", bytes.NewReader(changeRequestBody()))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	// Assertions
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "shop-1", fake.lastPrincipal.ID)
	assert.Equal(t, "item-1", fake.lastBoxItemID)
	assert.Equal(t, "Pears", fake.lastProposed)
	assert.Equal(t, "out of stock", fake.lastReason)

	var response entity.ItemChangeRequest
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "req-1", response.ID)
	assert.Equal(t, entity.ChangeRequestStatusPending, response.Status)
}

func TestCreateChangeRequest_MissingFields(t *testing.T) {
	fake := &fakeChangeRequestUseCase{}
	handler := NewChangeRequestHandler(fake, logger.New())

	router := setupNotificationTestRouter()
	router.POST("/notifications/change-request", withPrincipal("shop-1", entity.RoleShop), handler.CreateChangeRequest)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/notifications/change-request", bytes.NewReader([]byte(`{"box_item_id":"item-1"}`)))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, fake.lastBoxItemID)
}

func TestCreateChangeRequest_NotAShop(t *testing.T) {
	fake := &fakeChangeRequestUseCase{err: apperr.Forbidden("You must be logged in as a shop")}
	handler := NewChangeRequestHandler(fake, logger.New())

	router := setupNotificationTestRouter()
	router.POST("/notifications/change-request", withPrincipal("user-1", entity.RoleUser), handler.CreateChangeRequest)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/notifications/change-request", bytes.NewReader(changeRequestBody()))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "You must be logged in as a shop", response["error"])
}

func TestCreateChangeRequest_InvalidBoxItem(t *testing.T) {
	fake := &fakeChangeRequestUseCase{err: apperr.Validation("Invalid box item")}
	handler := NewChangeRequestHandler(fake, logger.New())

	router := setupNotificationTestRouter()
	router.POST("/notifications/change-request", withPrincipal("shop-1", entity.RoleShop), handler.CreateChangeRequest)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/notifications/change-request", bytes.NewReader(changeRequestBody()))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateChangeRequest_ShopNotFound(t *testing.T) {
	fake := &fakeChangeRequestUseCase{err: apperr.NotFound("Shop not found")}
	handler := NewChangeRequestHandler(fake, logger.New())

	router := setupNotificationTestRouter()
	router.POST("/notifications/change-request", withPrincipal("ghost", entity.RoleShop), handler.CreateChangeRequest)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/notifications/change-request", bytes.NewReader(changeRequestBody()))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
