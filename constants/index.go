package constants

// Bootstrap admin: the first operator is recognized by email before any
// profile row exists. Overridable via BOOTSTRAP_ADMIN_EMAIL.
const DEFAULT_BOOTSTRAP_ADMIN_EMAIL = "leeviennafs@gmail.com"

// Order statuses. Transitions happen only through admin action.
const (
	ORDER_PENDING    = "pending"
	ORDER_CONFIRMED  = "confirmed"
	ORDER_PROCESSING = "processing"
	ORDER_READY      = "ready"
	ORDER_COMPLETED  = "completed"
	ORDER_CANCELLED  = "cancelled"
)

var OrderStatuses = []string{
	ORDER_PENDING,
	ORDER_CONFIRMED,
	ORDER_PROCESSING,
	ORDER_READY,
	ORDER_COMPLETED,
	ORDER_CANCELLED,
}

// Pickup locations offered at checkout.
var PickupLocations = []string{"Catacte", "Plaridel", "Baliuag"}

const PAYMENT_CASH_ON_PICKUP = "cash_on_pickup"

// Product types carried on cart lines and order items.
const (
	PRODUCT_FLOWER        = "flower"
	PRODUCT_KEYCHAIN      = "keychain"
	PRODUCT_CUSTOMIZATION = "customization"
)

var ProductTypes = []string{PRODUCT_FLOWER, PRODUCT_KEYCHAIN, PRODUCT_CUSTOMIZATION}

// Chat room types. Order rooms are a legacy shape kept readable for old data;
// new conversations always go to the customer's general room.
const (
	ROOM_GENERAL = "general"
	ROOM_ORDER   = "order"
)

// Response messages.
const (
	MISSING_LOGIN_INPUT  = "Email and password are required"
	INVALID_EMAIL        = "No account with that email"
	INVALID_PASSWORD     = "Incorrect password"
	ERROR_INTERNAL_ERROR = "Something went wrong, please try again"
	UNAUTHORIZED         = "Please sign in"
	FORBIDDEN_ADMIN      = "Admin access required"
)
