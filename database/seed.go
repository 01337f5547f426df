package database

import (
	"log"

	"leevienna_shop/config"
	"leevienna_shop/constants"
	"leevienna_shop/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	// Privileged predicate for the admin gate. SECURITY DEFINER runs with the
	// function owner's rights, so evaluating it never re-enters the row
	// policies that protect user_profiles itself.
	if err := db.Exec(`
		CREATE OR REPLACE FUNCTION is_admin(uid bigint) RETURNS boolean
		LANGUAGE sql SECURITY DEFINER STABLE AS $$
			SELECT COALESCE((SELECT is_admin FROM user_profiles WHERE id = uid), false)
		$$`).Error; err != nil {
		log.Println("failed to provision is_admin function:", err)
	}

	adminEmail := config.ConfigDefault("BOOTSTRAP_ADMIN_EMAIL", constants.DEFAULT_BOOTSTRAP_ADMIN_EMAIL)
	adminPassword := config.ConfigDefault("BOOTSTRAP_ADMIN_PASSWORD", "changeme123")

	bytes, err := bcrypt.GenerateFromPassword([]byte(adminPassword), 10)
	if err != nil {
		log.Println("failed to hash bootstrap admin password:", err)
		return
	}

	admin := model.UserProfile{
		Email:        adminEmail,
		PasswordHash: string(bytes),
		IsAdmin:      true,
	}
	if err := db.Where(model.UserProfile{Email: adminEmail}).FirstOrCreate(&admin).Error; err != nil {
		log.Println("failed to seed bootstrap admin:", err)
	}

	flowers := []model.FlowerProduct{
		{Title: "Sunflower Bouquet", Price: "₱299", DisplayOrder: 1, IsActive: true},
		{Title: "Rose Bouquet", Price: "₱399", DisplayOrder: 2, IsActive: true},
		{Title: "Tulip Bouquet", Price: "₱349", DisplayOrder: 3, IsActive: true},
	}
	for _, flower := range flowers {
		flower.PublicId = NewPublicId()
		if err := db.Where(model.FlowerProduct{Title: flower.Title}).FirstOrCreate(&flower).Error; err != nil {
			log.Println("failed to seed flower product:", flower.Title, "error:", err)
		}
	}

	keychains := []model.KeychainProduct{
		{Code: "K1", Title: "Crochet Flower Keychain", Price: "₱99", DisplayOrder: 1, IsActive: true},
		{Code: "K2", Title: "Bead Letter Keychain", Price: "₱79", DisplayOrder: 2, IsActive: true},
	}
	for _, keychain := range keychains {
		keychain.PublicId = NewPublicId()
		if err := db.Where(model.KeychainProduct{Code: keychain.Code}).FirstOrCreate(&keychain).Error; err != nil {
			log.Println("failed to seed keychain product:", keychain.Code, "error:", err)
		}
	}
}
