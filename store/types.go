package store

import (
	"time"

	"github.com/google/uuid"
)

// Product is an item available for sale. Prices are integer cents.
type Product struct {
	ID          uuid.UUID `yaml:"id"`
	SKU         string    `yaml:"sku"          populate:"{numerify:SKU-#####}"`
	Name        string    `yaml:"name"         populate:"productname"`
	Description string    `yaml:"description"  populate:"productdescription"`
	PriceCents  int64     `yaml:"price_cents"`
	Inventory   int       `yaml:"inventory"`
	Tags        []string  `yaml:"tags"         populate:"productcategory"`
	CreatedAt   time.Time `yaml:"created_at"`
}

// Customer places orders. Orders point back at their customer.
type Customer struct {
	ID       uuid.UUID `yaml:"id"        populate:"sequentialguid"`
	Email    string    `yaml:"email"     populate:"email"`
	FullName string    `yaml:"full_name" populate:"name"`
	Phone    *string   `yaml:"phone"     populate:"phone"`
	Address  *Address  `yaml:"address"`
	IsActive bool      `yaml:"is_active"`
	Orders   []*Order  `yaml:"orders"`
	Password string    `yaml:"-"         populate:"-"`
}

type Address struct {
	Street     string `yaml:"street"      populate:"street"`
	City       string `yaml:"city"        populate:"city"`
	PostalCode string `yaml:"postal_code" populate:"zip"`
	Country    string `yaml:"country"     populate:"countryabr"`
}

// Order is a purchase made by a customer.
type Order struct {
	ID         uuid.UUID     `yaml:"id"`
	Customer   *Customer     `yaml:"customer,omitempty"`
	Status     OrderStatus   `yaml:"status"`
	Items      []OrderItem   `yaml:"items"`
	Card       string        `yaml:"card"        populate:"creditcard"`
	ClientIP   string        `yaml:"client_ip"   populate:"ipv4"`
	OrderedAt  time.Time     `yaml:"ordered_at"`
	Processing time.Duration `yaml:"processing"`
}

// OrderItem is one product line of an order. It snapshots the unit price at the time of purchase.
type OrderItem struct {
	Product   *Product `yaml:"product"`
	Quantity  uint8    `yaml:"quantity"`
	UnitPrice int64    `yaml:"unit_price"`
}

type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPaid      OrderStatus = "PAID"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusCancelled OrderStatus = "CANCELLED"
)
