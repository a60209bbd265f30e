package dto

import "time"

// ProductRecord is the shape of one element of the upstream product
// transaction document. The upstream id is ignored; the store assigns its
// own on insert.
type ProductRecord struct {
	Title       string    `json:"title"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Image       string    `json:"image"`
	Sold        bool      `json:"sold"`
	DateOfSale  time.Time `json:"dateOfSale"`
}
