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

func (ctl *Controller) ListPurchases(c *gin.Context) {
	page, limit := pageParams(c)

	db, ctx, cancel, err := ctl.database(c)
	if err != nil {
		demo := models.DemoPurchases()
		demoFallback(c, err, gin.H{"data": demo, "page": page, "limit": limit, "total": len(demo)})
		return
	}
	defer cancel()

	filter := bson.M{}
	if supplier := c.Query("supplier"); supplier != "" {
		filter["supplier"] = bson.M{"$regex": supplier, "$options": "i"}
	}
	if status := c.Query("status"); status != "" && models.PurchaseStatus(status).Valid() {
		filter["status"] = status
	}

	coll := db.Collection(config.PurchaseCollection)
	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		demo := models.DemoPurchases()
		demoFallback(c, err, gin.H{"data": demo, "page": page, "limit": limit, "total": len(demo)})
		return
	}

	cursor, err := coll.Find(ctx, filter, options.Find().
		SetSort(bson.M{"date": -1}).
		SetSkip((page-1)*limit).
		SetLimit(limit))
	if err != nil {
		demo := models.DemoPurchases()
		demoFallback(c, err, gin.H{"data": demo, "page": page, "limit": limit, "total": len(demo)})
		return
	}
	defer cursor.Close(ctx)

	purchases := []models.Purchase{}
	if err := cursor.All(ctx, &purchases); err != nil {
		demo := models.DemoPurchases()
		demoFallback(c, err, gin.H{"data": demo, "page": page, "limit": limit, "total": len(demo)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": purchases, "page": page, "limit": limit, "total": total})
}

func (ctl *Controller) CreatePurchase(c *gin.Context) {
	var input models.PurchaseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid purchase payload", "error": err.Error()})
		return
	}

	status := input.Status
	if status == "" {
		status = models.PurchasePending
	}
	if !status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Unknown purchase status", "error": string(status)})
		return
	}

	purchase := models.Purchase{
		Supplier:     input.Supplier,
		Date:         input.Date,
		ExchangeRate: input.ExchangeRate,
		Items:        input.Items,
		Status:       status,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if purchase.Date == "" {
		purchase.Date = time.Now().UTC().Format("2006-01-02")
	}

	db, ctx, cancel, err := ctl.database(c)
	if err != nil {
		writeFailure(c, "Failed to create purchase", err)
		return
	}
	defer cancel()

	res, err := db.Collection(config.PurchaseCollection).InsertOne(ctx, purchase)
	if err != nil {
		writeFailure(c, "Failed to create purchase", err)
		return
	}
	purchase.ID = res.InsertedID.(primitive.ObjectID)

	c.JSON(http.StatusCreated, gin.H{"data": purchase})
}

// ReceivePurchase marks a delivery as received: the purchase flips to
// delivered and every line item's quantity lands on the product stock.
func (ctl *Controller) ReceivePurchase(c *gin.Context) {
	db, ctx, cancel, err := ctl.database(c)
	if err != nil {
		writeFailure(c, "Failed to receive purchase", err)
		return
	}
	defer cancel()

	filter := idFilter(c.Param("id"))

	var purchase models.Purchase
	if err := db.Collection(config.PurchaseCollection).FindOne(ctx, filter).Decode(&purchase); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Purchase not found", "error": err.Error()})
		return
	}
	if purchase.Status == models.PurchaseDelivered {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Purchase already received"})
		return
	}

	_, err = db.Collection(config.PurchaseCollection).UpdateOne(ctx, filter, bson.M{
		"$set": bson.M{"status": models.PurchaseDelivered, "updated_at": time.Now()},
	})
	if err != nil {
		writeFailure(c, "Failed to receive purchase", err)
		return
	}

	for _, item := range purchase.Items {
		_, err := db.Collection(config.ProductCollection).UpdateOne(ctx,
			bson.M{"name": item.ProductName},
			bson.M{"$inc": bson.M{"quantity": item.Quantity}, "$set": bson.M{"updated_at": time.Now()}})
		if err != nil {
			writeFailure(c, "Failed to increment stock", err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Purchase received", "items": len(purchase.Items)})
}
