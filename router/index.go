package router

import (
	"leevienna_shop/handler"
	"leevienna_shop/middleware"
	"leevienna_shop/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/register", validate.Register(), handler.Register)
	auth.Post("/login", validate.Login(), handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)
	auth.Post("/logout", handler.Logout)
	auth.Get("/me", middleware.Protected(), handler.Me)
	auth.Put("/profile", middleware.Protected(), validate.EditProfile(), handler.EditProfile)

	// Public storefront.
	public := v1.Group("/public")
	public.Get("/flowers", handler.GetFlowers)
	public.Get("/keychains", handler.GetKeychains)
	public.Get("/customizations", handler.GetCustomizations)
	public.Get("/pickup-locations", handler.GetPickupLocations)
	public.Get("/privacy-policy", handler.GetPrivacyPolicy)
	public.Get("/data-deletion", handler.GetDataDeletion)

	cart := v1.Group("/cart", logger.New())
	cart.Get("/", middleware.Protected(), handler.GetCart)
	cart.Post("/items", middleware.Protected(), validate.AddCartItem(), handler.AddCartItem)
	cart.Patch("/items/:itemId", middleware.Protected(), validate.UpdateCartQuantity(), handler.UpdateCartQuantity)
	cart.Delete("/items/:itemId", middleware.Protected(), handler.RemoveCartItem)
	cart.Delete("/", middleware.Protected(), handler.ClearCart)

	order := v1.Group("/order", logger.New())
	order.Post("/", middleware.Protected(), validate.CreateOrder(), handler.CreateOrder)
	order.Get("/mine", middleware.Protected(), handler.GetMyOrders)

	chat := v1.Group("/chat", logger.New())
	chat.Get("/room", middleware.Protected(), handler.GetOrCreateRoom)
	chat.Get("/room/:roomId/messages", middleware.Protected(), validate.GetById("roomId"), handler.GetRoomMessages)
	chat.Post("/room/:roomId/messages", middleware.Protected(), validate.GetById("roomId"), validate.SendMessage(), handler.SendMessage)
	chat.Get("/room/:roomId/unread", middleware.Protected(), validate.GetById("roomId"), handler.GetUnreadCount)

	upload := v1.Group("/upload")
	upload.Post("/", middleware.Protected(), handler.UploadFile)

	// Back office. AdminOnly resolves through the three-tier gate.
	admin := v1.Group("/admin", logger.New(), middleware.Protected(), middleware.AdminOnly())
	admin.Get("/dashboard", handler.GetDashboard)

	admin.Get("/orders", handler.GetOrders)
	admin.Get("/orders/:orderNumber", handler.GetOrderDetail)
	admin.Patch("/orders/:orderId/status", validate.UpdateOrderStatus("orderId"), handler.UpdateOrderStatus)

	admin.Get("/chat/rooms", handler.GetChatRooms)

	admin.Get("/flowers", handler.GetAllFlowers)
	admin.Post("/flowers", validate.CreateFlower(), handler.CreateFlower)
	admin.Put("/flowers/:flowerId", validate.EditProduct("flowerId"), handler.EditFlower)
	admin.Patch("/flowers/:flowerId/toggle", validate.GetById("flowerId"), handler.ToggleFlower)
	admin.Delete("/flowers", validate.Delete(), handler.DeleteFlowers)

	admin.Get("/keychains", handler.GetAllKeychains)
	admin.Post("/keychains", validate.CreateKeychain(), handler.CreateKeychain)
	admin.Put("/keychains/:keychainId", validate.EditProduct("keychainId"), handler.EditKeychain)
	admin.Patch("/keychains/:keychainId/toggle", validate.GetById("keychainId"), handler.ToggleKeychain)
	admin.Delete("/keychains", validate.Delete(), handler.DeleteKeychains)

	admin.Get("/customizations", handler.GetAllCustomizations)
	admin.Post("/customizations", validate.CreateCustomization(), handler.CreateCustomization)
	admin.Put("/customizations/:customizationId", validate.EditProduct("customizationId"), handler.EditCustomization)
	admin.Patch("/customizations/:customizationId/toggle", validate.GetById("customizationId"), handler.ToggleCustomization)
	admin.Delete("/customizations", validate.Delete(), handler.DeleteCustomizations)

	// Live chat socket. OptionalAuth resolves the viewer id; the handler then
	// enforces the same room-access rule as the HTTP endpoints.
	v1.Get("/ws/chat/:roomId", middleware.OptionalAuth(), websocket.New(handler.ChatWebSocket))
}
