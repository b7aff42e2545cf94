package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is a stocked item. PriceUSD is the supplier's unit cost in
// the source currency, PriceLocal the same cost converted at the
// purchase exchange rate. Margin and Markup are derived on write.
type Product struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name             string             `bson:"name" json:"name"`
	PriceUSD         float64            `bson:"priceUSD" json:"priceUSD"`
	PriceLocal       float64            `bson:"priceLocal" json:"priceLocal"`
	Quantity         float64            `bson:"quantity" json:"quantity"`
	ReorderThreshold float64            `bson:"reorderThreshold,omitempty" json:"reorderThreshold,omitempty"`
	SellingPrice     float64            `bson:"sellingPrice,omitempty" json:"sellingPrice,omitempty"`
	Margin           float64            `bson:"margin,omitempty" json:"margin,omitempty"`
	Markup           float64            `bson:"markup,omitempty" json:"markup,omitempty"`
	CreatedAt        time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt        time.Time          `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

type ProductInput struct {
	Name             string  `json:"name" binding:"required"`
	PriceUSD         float64 `json:"priceUSD"`
	PriceLocal       float64 `json:"priceLocal"`
	Quantity         float64 `json:"quantity"`
	ReorderThreshold float64 `json:"reorderThreshold"`
	SellingPrice     float64 `json:"sellingPrice"`
}

// DeriveMargin fills Margin and Markup from cost and selling price.
// Zero denominators leave the fields at zero.
func (p *Product) DeriveMargin() {
	if p.SellingPrice > 0 {
		p.Margin = (p.SellingPrice - p.PriceLocal) / p.SellingPrice * 100
	}
	if p.PriceLocal > 0 {
		p.Markup = (p.SellingPrice - p.PriceLocal) / p.PriceLocal * 100
	}
}
