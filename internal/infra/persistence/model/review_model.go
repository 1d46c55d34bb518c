package model

import (
	"time"
)

// ReviewModel mirrors the 'reviews' table. The unique index on customer_id
// enforces the one-review-per-customer rule at the database level.
type ReviewModel struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	CustomerID    int64  `gorm:"not null;uniqueIndex"`
	Description   string `gorm:"type:text;not null"`
	Qualification int    `gorm:"not null;default:0"`
	Visibility    bool   `gorm:"not null;default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Customer *CustomerModel `gorm:"foreignKey:CustomerID"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
