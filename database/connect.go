package database

import (
	"fmt"
	"strconv"

	"leevienna_shop/config"
	"leevienna_shop/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	p := config.Config("DB_PORT")
	port, err := strconv.ParseUint(p, 10, 32)

	if err != nil {
		panic("failed to parse database port")
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable", config.Config("DB_HOST"), port, config.Config("DB_USER"), config.Config("DB_PASSWORD"), config.Config("DB_NAME"))
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		panic("failed to connect database")
	}

	fmt.Println("Connection Opened to Database")
	DB.AutoMigrate(
		&model.UserProfile{},
		&model.FlowerProduct{},
		&model.KeychainProduct{},
		&model.FlowerCustomization{},
		&model.Order{},
		&model.OrderItem{},
		&model.ChatRoom{},
		&model.ChatMessage{},
	)

	// One general room per customer. AutoMigrate cannot express a partial
	// index, so it is created directly.
	DB.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_chat_rooms_one_general
		ON chat_rooms (customer_id) WHERE room_type = 'general'`)

	fmt.Println("Database Migrated")

	SeedData(DB)
}
