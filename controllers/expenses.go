package controllers

import (
	"net/http"
	"time"

	"backend/config"
	"backend/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (ctl *Controller) ListExpenses(c *gin.Context) {
	page, limit := pageParams(c)

	db, ctx, cancel, err := ctl.database(c)
	if err != nil {
		demo := models.DemoExpenses()
		demoFallback(c, err, gin.H{"data": demo, "page": page, "limit": limit, "total": len(demo)})
		return
	}
	defer cancel()

	filter := bson.M{}
	if category := c.Query("category"); category != "" && models.ExpenseCategory(category).Valid() {
		filter["category"] = category
	}

	coll := db.Collection(config.ExpenseCollection)
	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		demo := models.DemoExpenses()
		demoFallback(c, err, gin.H{"data": demo, "page": page, "limit": limit, "total": len(demo)})
		return
	}

	cursor, err := coll.Find(ctx, filter, options.Find().
		SetSort(bson.M{"date": -1}).
		SetSkip((page-1)*limit).
		SetLimit(limit))
	if err != nil {
		demo := models.DemoExpenses()
		demoFallback(c, err, gin.H{"data": demo, "page": page, "limit": limit, "total": len(demo)})
		return
	}
	defer cursor.Close(ctx)

	expenses := []models.Expense{}
	if err := cursor.All(ctx, &expenses); err != nil {
		demo := models.DemoExpenses()
		demoFallback(c, err, gin.H{"data": demo, "page": page, "limit": limit, "total": len(demo)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": expenses, "page": page, "limit": limit, "total": total})
}

// CreateExpense is the only expense write; expenses are immutable once
// recorded.
func (ctl *Controller) CreateExpense(c *gin.Context) {
	var input models.ExpenseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid expense payload", "error": err.Error()})
		return
	}
	if !input.Category.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Unknown expense category", "error": string(input.Category)})
		return
	}

	expense := models.Expense{
		Date:        input.Date,
		Category:    input.Category,
		Description: input.Description,
		Amount:      input.Amount,
		ProductName: input.ProductName,
		CreatedAt:   time.Now(),
	}

	db, ctx, cancel, err := ctl.database(c)
	if err != nil {
		writeFailure(c, "Failed to create expense", err)
		return
	}
	defer cancel()

	res, err := db.Collection(config.ExpenseCollection).InsertOne(ctx, expense)
	if err != nil {
		writeFailure(c, "Failed to create expense", err)
		return
	}
	expense.ID = res.InsertedID.(primitive.ObjectID)

	c.JSON(http.StatusCreated, gin.H{"data": expense})
}
