package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Price       float64            `bson:"price" json:"price"`
	Description string             `bson:"description" json:"description"`
	Category    string             `bson:"category" json:"category"`
	Image       string             `bson:"image" json:"image"`
	Sold        bool               `bson:"sold" json:"sold"`
	DateOfSale  time.Time          `bson:"dateOfSale" json:"dateOfSale"`
}

type MonthlySales struct {
	TotalSales     float64 `bson:"totalSales"`
	TotalSoldItems int64   `bson:"totalSoldItems"`
}

type PriceRangeCount struct {
	PriceRange     string `bson:"priceRange" json:"priceRange"`
	TotalSoldItems int64  `bson:"totalSoldItems" json:"totalSoldItems"`
}

type CategoryCount struct {
	Category  string `bson:"category" json:"category"`
	ItemCount int64  `bson:"itemCount" json:"itemCount"`
}
