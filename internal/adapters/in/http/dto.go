package http

import (
	"time"
)

// Error is the uniform error payload for every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Address carries a validated address in requests and responses.
// City must be one of the supported city names.
type Address struct {
	Line string `json:"line"`
	City string `json:"city"`
}

// RegisterRequest is the payload for POST /api/v1/users.
type RegisterRequest struct {
	Username string  `json:"username"`
	Password string  `json:"password"`
	Name     string  `json:"name"`
	Phone    string  `json:"phone"`
	Address  Address `json:"address"`
	Role     string  `json:"role"`
}

// RegisterResponse returns the id assigned to a new user.
type RegisterResponse struct {
	ID uint64 `json:"id"`
}

// LoginRequest is the payload for POST /api/v1/sessions.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse returns the session token for subsequent requests.
type LoginResponse struct {
	Token string `json:"token"`
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// CreateShopRequest is the payload for POST /api/v1/shops.
type CreateShopRequest struct {
	Name    string  `json:"name"`
	Address Address `json:"address"`
}

// CreateShopResponse returns the id assigned to a new shop.
type CreateShopResponse struct {
	ID uint64 `json:"id"`
}

// Shop is one entry in shop search results.
type Shop struct {
	ID      uint64 `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// AddStockItemRequest is the payload for POST /api/v1/shops/:id/stock.
type AddStockItemRequest struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// AddStockItemResponse returns the id assigned to a new stock item.
type AddStockItemResponse struct {
	ID uint64 `json:"id"`
}

// StockItem is one entry in the catalog.
type StockItem struct {
	ID       uint64  `json:"id"`
	ShopID   uint64  `json:"shopId"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// CartLineRequest is the payload for cart add and remove operations.
type CartLineRequest struct {
	StockItemID uint64 `json:"stockItemId"`
	Quantity    int    `json:"quantity"`
}

// CheckoutResponse returns the orders produced by a checkout.
type CheckoutResponse struct {
	OrderIDs []uint64 `json:"orderIds"`
}

// Order is the read model returned by every order-listing endpoint.
type Order struct {
	ID         uint64    `json:"id"`
	OrderedAt  time.Time `json:"orderedAt"`
	CustomerID uint64    `json:"customerId"`
	ShopID     uint64    `json:"shopId"`
	ShipperID  *uint64   `json:"shipperId,omitempty"`
	Status     string    `json:"status"`
	Location   string    `json:"location"`
	TotalPrice float64   `json:"totalPrice"`
}

// FinishOrderResponse reports where the finished leg left the order.
type FinishOrderResponse struct {
	Delivered bool `json:"delivered"`
}

// ConfirmOrderResponse reports whether the confirmation took effect.
type ConfirmOrderResponse struct {
	Confirmed bool `json:"confirmed"`
}

// AmountRequest is the payload for deposit, withdraw, and payout operations.
type AmountRequest struct {
	Amount float64 `json:"amount"`
}

// AmountResponse returns the amount actually moved.
type AmountResponse struct {
	Amount float64 `json:"amount"`
}
