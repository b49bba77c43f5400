package persistent

import (
	"testing"
	"time"

	"boxmarket/services/notification/internal/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func notificationColumns() []string {
	return []string{
		"id", "recipient_type", "recipient_id", "sender_type", "sender_id",
		"type", "content", "extra_data", "sale_id", "shop_id",
		"is_read", "for_admins", "created_at", "updated_at",
	}
}

func TestNotificationRepository_Create_AssignsID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewNotificationRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "notifications"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	shopID := "c0f5d1f2-0000-0000-0000-000000000001"
	created, err := repo.Create(&entity.Notification{
		RecipientType: string(entity.RoleShop),
		RecipientID:   &shopID,
		Type:          "new_sale",
		Content:       "You have a new sale!",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepository_GetByID_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewNotificationRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "notifications" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(notificationColumns()))

	notification, err := repo.GetByID("missing-id")

	require.NoError(t, err)
	assert.Nil(t, notification)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepository_GetByID_Found(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewNotificationRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows(notificationColumns()).
		AddRow("n-1", "shop", "shop-1", "user", "user-1",
			"new_sale", "You have a new sale!", []byte(`{"sale_id":"s-1"}`), "s-1", "shop-1",
			false, false, now, now)
	mock.ExpectQuery(`SELECT \* FROM "notifications" WHERE id = \$1`).
		WithArgs("n-1", 1).
		WillReturnRows(rows)

	notification, err := repo.GetByID("n-1")

	require.NoError(t, err)
	require.NotNil(t, notification)
	assert.Equal(t, "n-1", notification.ID)
	assert.Equal(t, "shop", notification.RecipientType)
	assert.Equal(t, "s-1", notification.ExtraData["sale_id"])
	assert.False(t, notification.IsRead)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepository_ListByRecipient_OrdersByNewest(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewNotificationRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows(notificationColumns()).
		AddRow("n-2", "user", "user-1", "shop", "shop-1",
			"order_update", "Second", nil, nil, nil, false, false, now, now).
		AddRow("n-1", "user", "user-1", "shop", "shop-1",
			"order_update", "First", nil, nil, nil, true, false, now.Add(-time.Hour), now.Add(-time.Hour))
	mock.ExpectQuery(`SELECT \* FROM "notifications" WHERE recipient_type = \$1 AND recipient_id = \$2 ORDER BY created_at DESC`).
		WithArgs("user", "user-1").
		WillReturnRows(rows)

	notifications, err := repo.ListByRecipient("user", "user-1")

	require.NoError(t, err)
	require.Len(t, notifications, 2)
	assert.Equal(t, "n-2", notifications[0].ID)
	assert.Equal(t, "n-1", notifications[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepository_ListForAdmins(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewNotificationRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows(notificationColumns()).
		AddRow("n-1", "admin", nil, "shop", "shop-1",
			"item_change_request", "Change requested", nil, nil, nil, false, false, now, now)
	mock.ExpectQuery(`SELECT \* FROM "notifications" WHERE recipient_type = \$1 ORDER BY created_at DESC`).
		WithArgs("admin").
		WillReturnRows(rows)

	notifications, err := repo.ListForAdmins()

	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Nil(t, notifications[0].RecipientID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepository_Save_Updates(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewNotificationRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "notifications" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	saved, err := repo.Save(&entity.Notification{
		ID:            "n-1",
		RecipientType: "user",
		Type:          "order_update",
		IsRead:        true,
	})

	require.NoError(t, err)
	assert.True(t, saved.IsRead)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepository_UserExists(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewNotificationRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE id = \$1`).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := repo.UserExists("user-1")

	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepository_ShopExists_Missing(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewNotificationRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "shops" WHERE id = \$1`).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	exists, err := repo.ShopExists("ghost")

	require.NoError(t, err)
	assert.False(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}
