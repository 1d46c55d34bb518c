package entity

import "time"

// Review is a customer's one-shot rating of the store. Each customer can
// hold at most one review; reviews start hidden and only become public
// after an admin flips Visibility.
type Review struct {
	ID            int64
	CustomerID    int64
	Description   string
	Qualification int // 0..5 star rating.
	Visibility    bool
	Customer      *Customer
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
