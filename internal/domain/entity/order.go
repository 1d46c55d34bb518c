package entity

import "time"

// PaymentMethod is how an order will be paid.
type PaymentMethod string

const (
	// PaymentCounterDelivery is cash on delivery.
	PaymentCounterDelivery PaymentMethod = "counterDelivery"
	// PaymentCredit is payment on credit.
	PaymentCredit PaymentMethod = "credit"
)

// IsValid checks if the PaymentMethod is a known value.
func (m PaymentMethod) IsValid() bool {
	return m == PaymentCounterDelivery || m == PaymentCredit
}

// DeliveryType is how an order reaches the customer.
type DeliveryType string

const (
	// DeliveryTypeDelivery means the order is couriered to the customer.
	DeliveryTypeDelivery DeliveryType = "delivery"
	// DeliveryTypePickup means the customer collects the order.
	DeliveryTypePickup DeliveryType = "pickup"
)

// IsValid checks if the DeliveryType is a known value.
func (t DeliveryType) IsValid() bool {
	return t == DeliveryTypeDelivery || t == DeliveryTypePickup
}

// OrderStatus is the lifecycle state of an order. Transitions are not
// restricted to a strict graph: any authorized caller may set any valid
// status at any time. The only status-triggered side effect is stamping
// CompletedAt on a transition into StatusCompleted.
type OrderStatus string

const (
	StatusInReview  OrderStatus = "inReview"
	StatusPending   OrderStatus = "pending"
	StatusPackaging OrderStatus = "packaging"
	StatusSending   OrderStatus = "sending"
	StatusReady     OrderStatus = "ready"
	StatusCompleted OrderStatus = "completed"
	StatusReturn    OrderStatus = "return"
	StatusCancel    OrderStatus = "cancel"
)

// IsValid checks if the OrderStatus is a known value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusInReview, StatusPending, StatusPackaging, StatusSending,
		StatusReady, StatusCompleted, StatusReturn, StatusCancel:
		return true
	default:
		return false
	}
}

// Order is the central transactional entity. It belongs to exactly one
// customer and, once assigned, to at most one delivery agent.
type Order struct {
	ID              int64
	PaymentMethod   PaymentMethod
	DeliveryType    DeliveryType
	Status          OrderStatus
	Address         string
	Request         string     // Optional free-text instructions.
	CompletedAt     *time.Time // Set once on transition into completed, never cleared.
	CustomerID      int64
	DeliveryAgentID *int64
	Customer        *Customer
	DeliveryAgent   *DeliveryAgent
	Lines           []*OrderLine
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OrderLine is a product-quantity pair attached to an order. No price
// snapshot is stored; line totals always join to the product's current
// price, so historical totals drift if the price changes later.
type OrderLine struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Quantity  int
	Product   *Product
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Subtotal computes quantity times the product's current price for every
// line with a loaded product.
func (o *Order) Subtotal() float64 {
	var total float64
	for _, line := range o.Lines {
		if line.Product == nil {
			continue
		}
		total += float64(line.Quantity) * line.Product.PriceAfter
	}

	return total
}
