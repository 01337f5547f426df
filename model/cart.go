package model

// CartItem is one line of a customer's cart. Lines merge on
// (ProductType, ProductId, ProductCode, Customization); adding the same
// combination again only increments Quantity.
type CartItem struct {
	Id            string  `json:"id"`
	ProductType   string  `json:"productType"`
	ProductId     *string `json:"productId,omitempty"`
	ProductCode   *string `json:"productCode,omitempty"`
	ProductTitle  string  `json:"productTitle"`
	ProductImage  string  `json:"productImage"`
	Price         float64 `json:"price"`
	Quantity      int     `json:"quantity"`
	Customization *string `json:"customization,omitempty"`
}

// CartSnapshot is the persisted form of a cart. Version guards future format
// migrations: an unknown version loads as an empty cart instead of corrupting
// saved lines.
type CartSnapshot struct {
	Version int        `json:"version"`
	Items   []CartItem `json:"items"`
}

const CartSnapshotVersion = 1

type AddCartItemInput struct {
	ProductType   string  `validate:"required,oneof=flower keychain customization" json:"productType"`
	ProductId     *string `json:"productId"`
	ProductCode   *string `json:"productCode"`
	ProductTitle  string  `validate:"required" json:"productTitle"`
	ProductImage  string  `json:"productImage"`
	Price         float64 `validate:"gte=0" json:"price"`
	Quantity      int     `validate:"required,gte=1" json:"quantity"`
	Customization *string `json:"customization"`
}

type UpdateCartQuantityInput struct {
	Quantity int `json:"quantity"`
}
