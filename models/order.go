package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderStatus is the closed set of lifecycle states a customer order
// moves through. Stored as-is in Mongo and on the wire.
type OrderStatus string

const (
	StatusUnpaid     OrderStatus = "unpaid"
	StatusPaid       OrderStatus = "paid"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusCancelled  OrderStatus = "cancelled"
	StatusOverdue    OrderStatus = "overdue"
	StatusRefunded   OrderStatus = "refunded"
)

var orderStatusLabels = map[OrderStatus]string{
	StatusUnpaid:     "Not paid",
	StatusPaid:       "Paid",
	StatusProcessing: "Processing",
	StatusShipped:    "Shipped",
	StatusCancelled:  "Cancelled",
	StatusOverdue:    "Overdue",
	StatusRefunded:   "Refunded",
}

func (s OrderStatus) Valid() bool {
	_, ok := orderStatusLabels[s]
	return ok
}

// Label returns the display name shown in the dashboard tables.
func (s OrderStatus) Label() string {
	if l, ok := orderStatusLabels[s]; ok {
		return l
	}
	return string(s)
}

// OrderStatusLabels is the translation table the UI renders status
// chips from; served alongside order lists so the strings live in one
// place.
func OrderStatusLabels() map[OrderStatus]string {
	out := make(map[OrderStatus]string, len(orderStatusLabels))
	for k, v := range orderStatusLabels {
		out[k] = v
	}
	return out
}

// CustomerOrder is a single sale line. PaymentDate is kept as the raw
// string the upstream systems produce: either ISO-8601 or
// "DD.MM.YYYY HH:mm:ss". Parsing happens in the analytics package.
type CustomerOrder struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	CustomerName string             `bson:"customerName" json:"customerName"`
	ProductName  string             `bson:"productName" json:"productName"`
	Quantity     float64            `bson:"quantity" json:"quantity"`
	Price        float64            `bson:"price" json:"price"`
	PaymentDate  string             `bson:"paymentDate" json:"paymentDate"`
	Address      string             `bson:"address,omitempty" json:"address,omitempty"`
	Status       OrderStatus        `bson:"status" json:"status"`
	DeliveryCost float64            `bson:"deliveryCost,omitempty" json:"deliveryCost,omitempty"`
	CreatedAt    time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt    time.Time          `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// CustomerOrderInput is the create/update payload. All fields optional
// on update; create requires the basics via binding tags.
type CustomerOrderInput struct {
	CustomerName string      `json:"customerName" binding:"required"`
	ProductName  string      `json:"productName" binding:"required"`
	Quantity     float64     `json:"quantity" binding:"required"`
	Price        float64     `json:"price" binding:"required"`
	PaymentDate  string      `json:"paymentDate"`
	Address      string      `json:"address"`
	Status       OrderStatus `json:"status"`
	DeliveryCost float64     `json:"deliveryCost"`
}
