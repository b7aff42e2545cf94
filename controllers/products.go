package controllers

import (
	"net/http"
	"time"

	"backend/config"
	"backend/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (ctl *Controller) ListProducts(c *gin.Context) {
	db, ctx, cancel, err := ctl.database(c)
	if err != nil {
		demoFallback(c, err, gin.H{"data": models.DemoProducts()})
		return
	}
	defer cancel()

	cursor, err := db.Collection(config.ProductCollection).Find(ctx, bson.M{},
		options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		demoFallback(c, err, gin.H{"data": models.DemoProducts()})
		return
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		demoFallback(c, err, gin.H{"data": models.DemoProducts()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": products})
}

func (ctl *Controller) CreateProduct(c *gin.Context) {
	var input models.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product payload", "error": err.Error()})
		return
	}

	product := models.Product{
		Name:             input.Name,
		PriceUSD:         input.PriceUSD,
		PriceLocal:       input.PriceLocal,
		Quantity:         input.Quantity,
		ReorderThreshold: input.ReorderThreshold,
		SellingPrice:     input.SellingPrice,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}
	product.DeriveMargin()

	db, ctx, cancel, err := ctl.database(c)
	if err != nil {
		writeFailure(c, "Failed to create product", err)
		return
	}
	defer cancel()

	res, err := db.Collection(config.ProductCollection).InsertOne(ctx, product)
	if err != nil {
		writeFailure(c, "Failed to create product", err)
		return
	}
	product.ID = res.InsertedID.(primitive.ObjectID)

	c.JSON(http.StatusCreated, gin.H{"data": product})
}

func (ctl *Controller) UpdateProduct(c *gin.Context) {
	var input models.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product payload", "error": err.Error()})
		return
	}

	update := models.Product{
		Name:             input.Name,
		PriceUSD:         input.PriceUSD,
		PriceLocal:       input.PriceLocal,
		Quantity:         input.Quantity,
		ReorderThreshold: input.ReorderThreshold,
		SellingPrice:     input.SellingPrice,
		UpdatedAt:        time.Now(),
	}
	update.DeriveMargin()

	db, ctx, cancel, err := ctl.database(c)
	if err != nil {
		writeFailure(c, "Failed to update product", err)
		return
	}
	defer cancel()

	res, err := db.Collection(config.ProductCollection).UpdateOne(ctx,
		idFilter(c.Param("id")),
		bson.M{"$set": bson.M{
			"name":             update.Name,
			"priceUSD":         update.PriceUSD,
			"priceLocal":       update.PriceLocal,
			"quantity":         update.Quantity,
			"reorderThreshold": update.ReorderThreshold,
			"sellingPrice":     update.SellingPrice,
			"margin":           update.Margin,
			"markup":           update.Markup,
			"updated_at":       update.UpdatedAt,
		}})
	if err != nil {
		writeFailure(c, "Failed to update product", err)
		return
	}
	if res.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product updated"})
}

func (ctl *Controller) DeleteProduct(c *gin.Context) {
	db, ctx, cancel, err := ctl.database(c)
	if err != nil {
		writeFailure(c, "Failed to delete product", err)
		return
	}
	defer cancel()

	res, err := db.Collection(config.ProductCollection).DeleteOne(ctx, idFilter(c.Param("id")))
	if err != nil {
		writeFailure(c, "Failed to delete product", err)
		return
	}
	if res.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}

// SyncProducts pulls the catalog from the remote service and upserts
// it by product name. The remote leg is best-effort; the store leg is
// a hard failure.
func (ctl *Controller) SyncProducts(c *gin.Context) {
	products, err := ctl.Remote.FetchProducts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"count": 0, "warning": err.Error()})
		return
	}

	db, ctx, cancel, err := ctl.database(c)
	if err != nil {
		writeFailure(c, "Failed to store synced products", err)
		return
	}
	defer cancel()

	writes := make([]mongo.WriteModel, 0, len(products))
	for _, p := range products {
		p.UpdatedAt = time.Now()
		p.DeriveMargin()
		writes = append(writes, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"name": p.Name}).
			SetUpdate(bson.M{"$set": bson.M{
				"name":         p.Name,
				"priceUSD":     p.PriceUSD,
				"priceLocal":   p.PriceLocal,
				"quantity":     p.Quantity,
				"sellingPrice": p.SellingPrice,
				"margin":       p.Margin,
				"markup":       p.Markup,
				"updated_at":   p.UpdatedAt,
			}}).
			SetUpsert(true))
	}

	count := 0
	if len(writes) > 0 {
		res, err := db.Collection(config.ProductCollection).BulkWrite(ctx, writes)
		if err != nil {
			writeFailure(c, "Failed to store synced products", err)
			return
		}
		count = int(res.UpsertedCount + res.ModifiedCount + res.MatchedCount)
	}

	c.JSON(http.StatusOK, gin.H{"count": count, "batchId": uuid.NewString()})
}

// idFilter accepts both a 24-hex Mongo ObjectID and an arbitrary
// opaque string id; callers cannot assume one or the other.
func idFilter(id string) bson.M {
	if objID, err := primitive.ObjectIDFromHex(id); err == nil {
		return bson.M{"_id": objID}
	}
	return bson.M{"_id": id}
}
