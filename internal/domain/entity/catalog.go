package entity

import "time"

// Category is the root node of the three-level catalog tree.
// Hiding a category cascades down to its subcategories and products;
// showing it again does not cascade back.
type Category struct {
	ID            int64
	Name          string
	Visibility    bool
	SubCategories []*SubCategory
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// SubCategory is the middle node of the catalog tree.
type SubCategory struct {
	ID         int64
	CategoryID int64
	Name       string
	Visibility bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Product is a sellable item under a subcategory. Products carry
// Availability instead of Visibility; a hidden parent forces it to false.
type Product struct {
	ID            int64
	SubCategoryID int64
	Name          string
	NIT           string
	Description   string
	ImgURL        string
	Availability  bool
	PriceBefore   float64
	PriceAfter    float64
	IVA           float64 // Tax rate, 0-100.
	Offer         bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Message is a storefront announcement managed by administrators.
// Only messages with Visibility=true are meant for public display.
type Message struct {
	ID         int64
	Message    string
	Visibility bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
