// Package model holds the GORM-specific structs mirroring the database tables.
package model

import (
	"time"
)

// AccountModel mirrors the 'accounts' table. One account carries at most
// one customer profile and at most one delivery agent profile.
type AccountModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Email        string `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null;column:password_hash"`
	Name         string `gorm:"type:varchar(100);not null"`
	Role         string `gorm:"type:varchar(20);not null;default:'customer'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Customer      *CustomerModel      `gorm:"foreignKey:AccountID"`
	DeliveryAgent *DeliveryAgentModel `gorm:"foreignKey:AccountID"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}

// CustomerModel mirrors the 'customers' table.
type CustomerModel struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	AccountID      int64  `gorm:"not null;uniqueIndex"`
	ClientType     string `gorm:"type:varchar(10);not null;default:'natural'"`
	Identification string `gorm:"type:varchar(30);not null;index"`
	Phone          string `gorm:"type:varchar(10);not null"`
	Address        string `gorm:"type:text"`
	Confirmed      bool   `gorm:"not null;default:false"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Account *AccountModel `gorm:"foreignKey:AccountID"`
	Review  *ReviewModel  `gorm:"foreignKey:CustomerID"`
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}

// DeliveryAgentModel mirrors the 'delivery_agents' table.
type DeliveryAgentModel struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	AccountID      int64  `gorm:"not null;uniqueIndex"`
	Availability   bool   `gorm:"not null;default:false"`
	Status         string `gorm:"type:varchar(10);not null;default:'active'"`
	Phone          string `gorm:"type:varchar(10);not null"`
	Identification string `gorm:"type:varchar(30);not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Account *AccountModel `gorm:"foreignKey:AccountID"`
}

// TableName explicitly sets the table name for GORM.
func (DeliveryAgentModel) TableName() string {
	return "delivery_agents"
}
