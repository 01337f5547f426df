package handler

import (
	"net/http/httptest"
	"testing"

	"leevienna_shop/constants"
	"leevienna_shop/database"
	"leevienna_shop/model"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupOrderTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.UserProfile{},
		&model.Order{},
		&model.OrderItem{},
		&model.ChatRoom{},
		&model.ChatMessage{},
	))

	database.DB = db
	return db
}

func signedInApp(t *testing.T, profile model.UserProfile, input model.CreateOrderInput) *fiber.App {
	app := fiber.New()
	app.Post("/order", func(c *fiber.Ctx) error {
		token := jwt.New(jwt.SigningMethodHS256)
		claims := token.Claims.(jwt.MapClaims)
		claims["userId"] = float64(profile.ID)
		claims["email"] = profile.Email
		c.Locals("user", token)
		c.Locals("CreateOrderInput", input)
		return CreateOrder(c)
	})
	return app
}

func TestCreateOrderWritesHeaderItemsAndAnnouncement(t *testing.T) {
	db := setupOrderTestDB(t)

	customer := model.UserProfile{Email: "ana@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&customer).Error)

	flowerId := "8f14e45f-ceea-467f-a1d6-91b50e4103a5"
	junkId := "3"
	input := model.CreateOrderInput{
		Items: []model.OrderItemInput{
			{ProductType: "flower", ProductId: &flowerId, ProductTitle: "Sunflower Bouquet", Price: 299, Quantity: 1},
			{ProductType: "keychain", ProductId: &junkId, ProductTitle: "Bead Letter Keychain", Price: 99, Quantity: 2},
		},
		PickupLocation: "Baliuag",
		QuickOrder:     true,
	}

	resp, err := signedInApp(t, customer, input).Test(httptest.NewRequest("POST", "/order", nil), 10000)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var orders []model.Order
	require.NoError(t, db.Find(&orders).Error)
	require.Len(t, orders, 1)
	order := orders[0]
	assert.Equal(t, constants.ORDER_PENDING, order.Status)
	assert.Equal(t, constants.PAYMENT_CASH_ON_PICKUP, order.PaymentMethod)
	assert.Equal(t, "Baliuag", order.PickupLocation)
	assert.Equal(t, 497.0, order.Total)
	assert.Regexp(t, `^ORD-\d{8}-[0-9A-F]{6}$`, order.OrderNumber)

	var items []model.OrderItem
	require.NoError(t, db.Where("order_id = ?", order.ID).Order("id asc").Find(&items).Error)
	require.Len(t, items, 2)

	require.NotNil(t, items[0].ProductId)
	assert.Equal(t, flowerId, *items[0].ProductId)
	assert.Equal(t, 299.0, items[0].PriceAtOrder)

	// A reference that is not UUID-shaped is stored absent, never as garbage.
	assert.Nil(t, items[1].ProductId)
	assert.Equal(t, 99.0, items[1].PriceAtOrder)
	assert.Equal(t, 2, items[1].Quantity)

	var room model.ChatRoom
	require.NoError(t, db.Where("customer_id = ? AND room_type = ?", customer.ID, constants.ROOM_GENERAL).First(&room).Error)

	var messages []model.ChatMessage
	require.NoError(t, db.Where("room_id = ?", room.ID).Find(&messages).Error)
	require.Len(t, messages, 1)
	assert.Equal(t, customer.ID, messages[0].SenderId)
	assert.Contains(t, messages[0].Message, "New order "+order.OrderNumber)
	assert.Contains(t, messages[0].Message, "Baliuag")
}

func TestCreateOrderFrozenPricesSurviveCatalogEdits(t *testing.T) {
	db := setupOrderTestDB(t)

	customer := model.UserProfile{Email: "ben@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&customer).Error)

	input := model.CreateOrderInput{
		Items: []model.OrderItemInput{
			{ProductType: "flower", ProductTitle: "Rose Bouquet", Price: 399, Quantity: 1},
		},
		PickupLocation: "Catacte",
		QuickOrder:     true,
	}

	resp, err := signedInApp(t, customer, input).Test(httptest.NewRequest("POST", "/order", nil), 10000)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// Nothing recomputes from the catalog: the snapshot is the only price.
	var item model.OrderItem
	require.NoError(t, db.First(&item).Error)
	assert.Equal(t, 399.0, item.PriceAtOrder)
}

func TestCreateOrderReusesExistingGeneralRoom(t *testing.T) {
	db := setupOrderTestDB(t)

	customer := model.UserProfile{Email: "cara@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&customer).Error)

	existing := model.ChatRoom{CustomerId: customer.ID, RoomType: constants.ROOM_GENERAL}
	require.NoError(t, db.Create(&existing).Error)

	input := model.CreateOrderInput{
		Items: []model.OrderItemInput{
			{ProductType: "keychain", ProductTitle: "Crochet Flower Keychain", Price: 99, Quantity: 1},
		},
		PickupLocation: "Plaridel",
		QuickOrder:     true,
	}

	resp, err := signedInApp(t, customer, input).Test(httptest.NewRequest("POST", "/order", nil), 10000)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var roomCount int64
	require.NoError(t, db.Model(&model.ChatRoom{}).Where("customer_id = ?", customer.ID).Count(&roomCount).Error)
	assert.Equal(t, int64(1), roomCount)
}
