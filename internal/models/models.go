package models

import (
	"time"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
)

type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string    `gorm:"unique;not null"          json:"username"`
	Email        string    `gorm:"unique;not null"          json:"email"`
	PasswordHash string    `gorm:"not null"                 json:"-"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	CreatedAt    time.Time `json:"-"`
}

type Product struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"not null"                 json:"name"`
	Description string    `gorm:"not null"                 json:"description"`
	Price       float64   `gorm:"not null"                 json:"price"`
	ImageURL    string    `gorm:"not null"                 json:"imageUrl"`
	Category    string    `json:"category"`
	InStock     bool      `gorm:"default:true"             json:"inStock"`
	CreatedAt   time.Time `json:"-"`
}

// Address is snapshotted onto the order row with a column prefix per side,
// so the order keeps the address it was placed with.
type Address struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
	Country   string `json:"country"`
}

type Order struct {
	ID              uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          uint        `gorm:"index;not null"           json:"userId"`
	TotalAmount     float64     `gorm:"not null"                 json:"totalAmount"`
	Status          string      `gorm:"not null;default:pending" json:"status"`
	PaymentStatus   string      `gorm:"not null;default:pending" json:"paymentStatus"`
	PaymentMethod   string      `json:"paymentMethod"`
	ShippingAddress Address     `gorm:"embedded;embeddedPrefix:shipping_" json:"shippingAddress"`
	BillingAddress  Address     `gorm:"embedded;embeddedPrefix:billing_"  json:"billingAddress"`
	CreatedAt       time.Time   `json:"createdAt"`
	Items           []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
}

type OrderItem struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   uint    `gorm:"index;not null"           json:"-"`
	ProductID uint    `gorm:"not null"                 json:"productId"`
	Name      string  `gorm:"not null"                 json:"name"`
	Price     float64 `gorm:"not null"                 json:"price"`
	Quantity  uint    `gorm:"not null"                 json:"quantity"`
}
