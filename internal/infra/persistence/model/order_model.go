package model

import (
	"time"
)

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID              int64      `gorm:"primaryKey;autoIncrement"`
	PaymentMethod   string     `gorm:"type:varchar(20);not null;default:'counterDelivery'"`
	DeliveryType    string     `gorm:"type:varchar(10);not null;default:'delivery'"`
	Status          string     `gorm:"type:varchar(15);not null;default:'inReview';index"`
	Address         string     `gorm:"type:text;not null"`
	Request         string     `gorm:"type:text"`
	CompletedAt     *time.Time `gorm:"index"`
	CustomerID      int64      `gorm:"not null;index"`
	DeliveryAgentID *int64     `gorm:"index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Customer      *CustomerModel      `gorm:"foreignKey:CustomerID"`
	DeliveryAgent *DeliveryAgentModel `gorm:"foreignKey:DeliveryAgentID"`
	Lines         []*OrderLineModel   `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderLineModel mirrors the 'order_lines' table. There is no price
// snapshot column; totals join to the product's current price.
type OrderLineModel struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	OrderID   int64 `gorm:"not null;index"`
	ProductID int64 `gorm:"not null;index"`
	Quantity  int   `gorm:"not null;default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderLineModel) TableName() string {
	return "order_lines"
}
