package model

import (
	"time"
)

// CategoryModel mirrors the 'categories' table.
type CategoryModel struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	Name       string `gorm:"type:varchar(100);not null"`
	Visibility bool   `gorm:"not null;default:true"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	SubCategories []*SubCategoryModel `gorm:"foreignKey:CategoryID"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// SubCategoryModel mirrors the 'sub_categories' table.
type SubCategoryModel struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	CategoryID int64  `gorm:"not null;index"`
	Name       string `gorm:"type:varchar(100);not null"`
	Visibility bool   `gorm:"not null;default:true"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (SubCategoryModel) TableName() string {
	return "sub_categories"
}

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID            int64   `gorm:"primaryKey;autoIncrement"`
	SubCategoryID int64   `gorm:"not null;index"`
	Name          string  `gorm:"type:varchar(150);not null"`
	NIT           string  `gorm:"type:varchar(30);column:nit"`
	Description   string  `gorm:"type:text"`
	ImgURL        string  `gorm:"type:text;column:img_url"`
	Availability  bool    `gorm:"not null;default:true"`
	PriceBefore   float64 `gorm:"not null;default:0"`
	PriceAfter    float64 `gorm:"not null;default:0"`
	IVA           float64 `gorm:"not null;default:0;column:iva"`
	Offer         bool    `gorm:"not null;default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// MessageModel mirrors the 'messages' table of storefront announcements.
type MessageModel struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	Message    string `gorm:"type:text;not null"`
	Visibility bool   `gorm:"not null;default:false"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (MessageModel) TableName() string {
	return "messages"
}
