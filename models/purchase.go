package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PurchaseStatus string

const (
	PurchasePending   PurchaseStatus = "pending"
	PurchaseInTransit PurchaseStatus = "in_transit"
	PurchaseDelivered PurchaseStatus = "delivered"
	PurchasePartial   PurchaseStatus = "partial"
)

var purchaseStatusLabels = map[PurchaseStatus]string{
	PurchasePending:   "Pending",
	PurchaseInTransit: "In transit",
	PurchaseDelivered: "Delivered",
	PurchasePartial:   "Partially received",
}

func (s PurchaseStatus) Valid() bool {
	_, ok := purchaseStatusLabels[s]
	return ok
}

func (s PurchaseStatus) Label() string {
	if l, ok := purchaseStatusLabels[s]; ok {
		return l
	}
	return string(s)
}

type PurchaseItem struct {
	ProductName string  `bson:"productName" json:"productName"`
	Quantity    float64 `bson:"quantity" json:"quantity"`
	UnitCost    float64 `bson:"unitCost" json:"unitCost"`
}

// Purchase is an inbound supplier order. ExchangeRate converts the
// items' unit costs into local currency.
type Purchase struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Supplier     string             `bson:"supplier" json:"supplier"`
	Date         string             `bson:"date" json:"date"`
	ExchangeRate float64            `bson:"exchangeRate" json:"exchangeRate"`
	Items        []PurchaseItem     `bson:"items" json:"items"`
	Status       PurchaseStatus     `bson:"status" json:"status"`
	CreatedAt    time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt    time.Time          `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

type PurchaseInput struct {
	Supplier     string         `json:"supplier" binding:"required"`
	Date         string         `json:"date"`
	ExchangeRate float64        `json:"exchangeRate"`
	Items        []PurchaseItem `json:"items" binding:"required"`
	Status       PurchaseStatus `json:"status"`
}

// Total is the purchase cost in local currency.
func (p Purchase) Total() float64 {
	rate := p.ExchangeRate
	if rate == 0 {
		rate = 1
	}
	var sum float64
	for _, it := range p.Items {
		sum += it.Quantity * it.UnitCost * rate
	}
	return sum
}
