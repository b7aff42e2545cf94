package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ExpenseCategory string

const (
	ExpenseLogistics   ExpenseCategory = "logistics"
	ExpenseAdvertising ExpenseCategory = "advertising"
	ExpensePayroll     ExpenseCategory = "payroll"
	ExpenseGoods       ExpenseCategory = "goods"
	ExpenseOther       ExpenseCategory = "other"
)

var expenseCategoryLabels = map[ExpenseCategory]string{
	ExpenseLogistics:   "Logistics",
	ExpenseAdvertising: "Advertising",
	ExpensePayroll:     "Payroll",
	ExpenseGoods:       "Purchase of goods",
	ExpenseOther:       "Other",
}

func (c ExpenseCategory) Valid() bool {
	_, ok := expenseCategoryLabels[c]
	return ok
}

func (c ExpenseCategory) Label() string {
	if l, ok := expenseCategoryLabels[c]; ok {
		return l
	}
	return string(c)
}

// Expense is immutable once created: there is no update route.
type Expense struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Date        string             `bson:"date" json:"date"`
	Category    ExpenseCategory    `bson:"category" json:"category"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Amount      float64            `bson:"amount" json:"amount"`
	ProductName string             `bson:"productName,omitempty" json:"productName,omitempty"`
	CreatedAt   time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
}

type ExpenseInput struct {
	Date        string          `json:"date" binding:"required"`
	Category    ExpenseCategory `json:"category" binding:"required"`
	Description string          `json:"description"`
	Amount      float64         `json:"amount" binding:"required"`
	ProductName string          `json:"productName"`
}
