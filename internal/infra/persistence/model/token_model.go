package model

import (
	"time"
)

// TokenModel mirrors the 'tokens' table of single-use action tokens.
type TokenModel struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	Value      string `gorm:"type:varchar(64);not null;uniqueIndex"`
	CustomerID int64  `gorm:"not null;index"`
	CreatedAt  time.Time
	ExpiresAt  time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (TokenModel) TableName() string {
	return "tokens"
}
