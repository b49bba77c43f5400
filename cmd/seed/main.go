package main

import (
	"flag"
	"fmt"

	"boxmarket/pkg/config"
	"boxmarket/pkg/database"
	"boxmarket/pkg/logger"
	"boxmarket/pkg/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func main() {
	var cfgPath string
	flag.StringVar(&cfgPath, "config", "", "Path to config file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := seedDatabase(db, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, log *logger.Logger) error {
	testUsers := []struct {
		email    string
		username string
		password string
	}{
		{"alice@test.com", "alice_box", "password123"},
		{"bob@test.com", "bob_box", "password123"},
		{"charlie@test.com", "charlie_box", "password123"},
	}

	userIDs := make([]string, 0, len(testUsers))

	for _, userData := range testUsers {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(userData.password), bcrypt.DefaultCost)

		user := &models.User{
			Email:    userData.email,
			Username: userData.username,
			Password: string(hashedPassword),
			IsActive: true,
		}

		var existingUser models.User
		result := db.Where("email = ? OR username = ?", user.Email, user.Username).First(&existingUser)
		if result.Error == nil {
			log.Info("User %s already exists, skipping", user.Username)
			userIDs = append(userIDs, existingUser.ID)
			continue
		}

		if err := db.Create(user).Error; err != nil {
			log.Error("Failed to create user %s: %v", user.Username, err)
			continue
		}

		log.Info("Created user: %s (%s)", user.Username, user.Email)
		userIDs = append(userIDs, user.ID)
	}

	testShops := []struct {
		email    string
		name     string
		password string
	}{
		{"greenbox@test.com", "Green Box Grocers", "password123"},
		{"fruitful@test.com", "Fruitful Crates", "password123"},
	}

	shopIDs := make([]string, 0, len(testShops))

	for _, shopData := range testShops {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(shopData.password), bcrypt.DefaultCost)

		shop := &models.Shop{
			Email:    shopData.email,
			Name:     shopData.name,
			Password: string(hashedPassword),
			IsActive: true,
		}

		var existingShop models.Shop
		result := db.Where("email = ?", shop.Email).First(&existingShop)
		if result.Error == nil {
			log.Info("Shop %s already exists, skipping", shop.Name)
			shopIDs = append(shopIDs, existingShop.ID)
			continue
		}

		if err := db.Create(shop).Error; err != nil {
			log.Error("Failed to create shop %s: %v", shop.Name, err)
			continue
		}

		log.Info("Created shop: %s (%s)", shop.Name, shop.Email)
		shopIDs = append(shopIDs, shop.ID)
	}

	testAdmins := []struct {
		email      string
		username   string
		password   string
		superAdmin bool
	}{
		{"admin@test.com", "admin", "password123", false},
		{"root@test.com", "root", "password123", true},
	}

	for _, adminData := range testAdmins {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(adminData.password), bcrypt.DefaultCost)

		admin := &models.AdminUser{
			Email:        adminData.email,
			Username:     adminData.username,
			Password:     string(hashedPassword),
			IsSuperAdmin: adminData.superAdmin,
		}

		var existingAdmin models.AdminUser
		result := db.Where("email = ?", admin.Email).First(&existingAdmin)
		if result.Error == nil {
			log.Info("Admin %s already exists, skipping", admin.Username)
			continue
		}

		if err := db.Create(admin).Error; err != nil {
			log.Error("Failed to create admin %s: %v", admin.Username, err)
			continue
		}

		log.Info("Created admin: %s (%s)", admin.Username, admin.Email)
	}

	for i, userID := range userIDs {
		shopID := shopIDs[i%len(shopIDs)]
		if err := createSaleWithBoxItems(db, userID, shopID, i, log); err != nil {
			log.Error("Failed to create sale for user %s: %v", userID, err)
		}
	}

	return nil
}

func createSaleWithBoxItems(db *gorm.DB, userID, shopID string, index int, log *logger.Logger) error {
	var existingSale models.Sale
	result := db.Where("user_id = ?", userID).First(&existingSale)
	if result.Error == nil {
		log.Info("Sale for user %s already exists, skipping", userID)
		return nil
	}

	sale := &models.Sale{
		UserID: userID,
		Total:  2500 + index*500,
	}
	if err := db.Create(sale).Error; err != nil {
		return fmt.Errorf("failed to create sale: %w", err)
	}

	shopSale := &models.ShopSale{
		SaleID: sale.ID,
		ShopID: shopID,
		Status: "pending",
	}
	if err := db.Create(shopSale).Error; err != nil {
		return fmt.Errorf("failed to create shop sale: %w", err)
	}

	detail := &models.SaleDetail{
		SaleID: sale.ID,
		ShopID: shopID,
	}
	if err := db.Create(detail).Error; err != nil {
		return fmt.Errorf("failed to create sale detail: %w", err)
	}

	itemNames := []string{"Organic Apples", "Sourdough Loaf", "Free-range Eggs"}
	for _, name := range itemNames {
		item := &models.BoxItem{
			SaleDetailID: detail.ID,
			ItemName:     name,
		}
		if err := db.Create(item).Error; err != nil {
			return fmt.Errorf("failed to create box item: %w", err)
		}
	}

	notification := &models.Notification{
		RecipientType: string(models.RecipientShop),
		RecipientID:   &shopID,
		SenderType:    string(models.RecipientUser),
		SenderID:      userID,
		Type:          models.NotificationTypeNewSale,
		Content:       fmt.Sprintf("You have a new sale! Order #%s contains %d items.", sale.ID, len(itemNames)),
		ExtraData:     datatypes.JSONMap{"sale_id": sale.ID},
		SaleID:        &sale.ID,
		ShopID:        &shopID,
		IsRead:        false,
		ForAdmins:     false,
	}
	if err := db.Create(notification).Error; err != nil {
		return fmt.Errorf("failed to create sale notification: %w", err)
	}

	log.Info("Created sale %s with %d box items for shop %s", sale.ID, len(itemNames), shopID)
	return nil
}
