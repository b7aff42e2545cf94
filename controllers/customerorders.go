package controllers

import (
	"net/http"
	"strings"
	"time"

	"backend/config"
	"backend/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// orderListFilter builds the Mongo filter from the query string. All
// filters compose with AND. Date bounds compare lexicographically
// against the stored payment-date string, which works for ISO prefixes.
func orderListFilter(c *gin.Context) bson.M {
	filter := bson.M{}

	from := c.Query("from")
	to := c.Query("to")
	if from != "" || to != "" {
		bounds := bson.M{}
		if from != "" {
			bounds["$gte"] = from
		}
		if to != "" {
			bounds["$lte"] = to
		}
		filter["paymentDate"] = bounds
	}

	if search := c.Query("search"); search != "" {
		filter["$or"] = []bson.M{
			{"customerName": bson.M{"$regex": search, "$options": "i"}},
			{"productName": bson.M{"$regex": search, "$options": "i"}},
		}
	}

	if raw := c.Query("status"); raw != "" {
		var statuses []string
		for _, s := range strings.Split(raw, ",") {
			s = strings.TrimSpace(s)
			if models.OrderStatus(s).Valid() {
				statuses = append(statuses, s)
			}
		}
		if len(statuses) > 0 {
			filter["status"] = bson.M{"$in": statuses}
		}
	}

	return filter
}

func (ctl *Controller) ListCustomerOrders(c *gin.Context) {
	page, limit := pageParams(c)

	db, ctx, cancel, err := ctl.database(c)
	if err != nil {
		demo := models.DemoCustomerOrders()
		demoFallback(c, err, gin.H{"data": demo, "page": page, "limit": limit, "total": len(demo)})
		return
	}
	defer cancel()

	filter := orderListFilter(c)
	coll := db.Collection(config.OrderCollection)

	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		demo := models.DemoCustomerOrders()
		demoFallback(c, err, gin.H{"data": demo, "page": page, "limit": limit, "total": len(demo)})
		return
	}

	cursor, err := coll.Find(ctx, filter, options.Find().
		SetSort(bson.M{"paymentDate": -1}).
		SetSkip((page-1)*limit).
		SetLimit(limit))
	if err != nil {
		demo := models.DemoCustomerOrders()
		demoFallback(c, err, gin.H{"data": demo, "page": page, "limit": limit, "total": len(demo)})
		return
	}
	defer cursor.Close(ctx)

	orders := []models.CustomerOrder{}
	if err := cursor.All(ctx, &orders); err != nil {
		demo := models.DemoCustomerOrders()
		demoFallback(c, err, gin.H{"data": demo, "page": page, "limit": limit, "total": len(demo)})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":         orders,
		"page":         page,
		"limit":        limit,
		"total":        total,
		"statusLabels": models.OrderStatusLabels(),
	})
}

func (ctl *Controller) CreateCustomerOrder(c *gin.Context) {
	var input models.CustomerOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order payload", "error": err.Error()})
		return
	}

	status := input.Status
	if status == "" {
		status = models.StatusUnpaid
	}
	if !status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Unknown order status", "error": string(status)})
		return
	}

	order := models.CustomerOrder{
		CustomerName: input.CustomerName,
		ProductName:  input.ProductName,
		Quantity:     input.Quantity,
		Price:        input.Price,
		PaymentDate:  input.PaymentDate,
		Address:      input.Address,
		Status:       status,
		DeliveryCost: input.DeliveryCost,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if order.PaymentDate == "" {
		order.PaymentDate = time.Now().UTC().Format(time.RFC3339)
	}

	db, ctx, cancel, err := ctl.database(c)
	if err != nil {
		writeFailure(c, "Failed to create order", err)
		return
	}
	defer cancel()

	res, err := db.Collection(config.OrderCollection).InsertOne(ctx, order)
	if err != nil {
		writeFailure(c, "Failed to create order", err)
		return
	}
	order.ID = res.InsertedID.(primitive.ObjectID)

	c.JSON(http.StatusCreated, gin.H{"data": order})
}

func (ctl *Controller) UpdateCustomerOrder(c *gin.Context) {
	var input struct {
		CustomerName *string             `json:"customerName"`
		ProductName  *string             `json:"productName"`
		Quantity     *float64            `json:"quantity"`
		Price        *float64            `json:"price"`
		PaymentDate  *string             `json:"paymentDate"`
		Address      *string             `json:"address"`
		Status       *models.OrderStatus `json:"status"`
		DeliveryCost *float64            `json:"deliveryCost"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order payload", "error": err.Error()})
		return
	}

	set := bson.M{"updated_at": time.Now()}
	if input.CustomerName != nil {
		set["customerName"] = *input.CustomerName
	}
	if input.ProductName != nil {
		set["productName"] = *input.ProductName
	}
	if input.Quantity != nil {
		set["quantity"] = *input.Quantity
	}
	if input.Price != nil {
		set["price"] = *input.Price
	}
	if input.PaymentDate != nil {
		set["paymentDate"] = *input.PaymentDate
	}
	if input.Address != nil {
		set["address"] = *input.Address
	}
	if input.DeliveryCost != nil {
		set["deliveryCost"] = *input.DeliveryCost
	}
	if input.Status != nil {
		if !input.Status.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Unknown order status", "error": string(*input.Status)})
			return
		}
		set["status"] = *input.Status
	}

	db, ctx, cancel, err := ctl.database(c)
	if err != nil {
		writeFailure(c, "Failed to update order", err)
		return
	}
	defer cancel()

	res, err := db.Collection(config.OrderCollection).UpdateOne(ctx, idFilter(c.Param("id")), bson.M{"$set": set})
	if err != nil {
		writeFailure(c, "Failed to update order", err)
		return
	}
	if res.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order updated"})
}

func (ctl *Controller) DeleteCustomerOrder(c *gin.Context) {
	db, ctx, cancel, err := ctl.database(c)
	if err != nil {
		writeFailure(c, "Failed to delete order", err)
		return
	}
	defer cancel()

	res, err := db.Collection(config.OrderCollection).DeleteOne(ctx, idFilter(c.Param("id")))
	if err != nil {
		writeFailure(c, "Failed to delete order", err)
		return
	}
	if res.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order deleted"})
}

// ClearCustomerOrders wipes the collection. Used by the dashboard
// before a manual re-import.
func (ctl *Controller) ClearCustomerOrders(c *gin.Context) {
	db, ctx, cancel, err := ctl.database(c)
	if err != nil {
		writeFailure(c, "Failed to clear orders", err)
		return
	}
	defer cancel()

	res, err := db.Collection(config.OrderCollection).DeleteMany(ctx, bson.M{})
	if err != nil {
		writeFailure(c, "Failed to clear orders", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": res.DeletedCount})
}

// ListCustomers returns the distinct customer names for filter
// dropdowns.
func (ctl *Controller) ListCustomers(c *gin.Context) {
	db, ctx, cancel, err := ctl.database(c)
	if err != nil {
		demoFallback(c, err, gin.H{"data": models.DemoCustomers()})
		return
	}
	defer cancel()

	values, err := db.Collection(config.OrderCollection).Distinct(ctx, "customerName", bson.M{})
	if err != nil {
		demoFallback(c, err, gin.H{"data": models.DemoCustomers()})
		return
	}

	names := []string{}
	for _, v := range values {
		if s, ok := v.(string); ok && s != "" {
			names = append(names, s)
		}
	}

	c.JSON(http.StatusOK, gin.H{"data": names})
}

// ResyncCustomerOrders pulls the authoritative order list from the
// remote service and replaces the stored copy wholesale. Two separate
// failure boundaries: the remote fetch is best-effort (200 with a
// warning so the UI is never blocked), the store write is a hard 500.
func (ctl *Controller) ResyncCustomerOrders(c *gin.Context) {
	orders, err := ctl.Remote.FetchOrders(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"count": 0, "warning": err.Error()})
		return
	}

	db, ctx, cancel, err := ctl.database(c)
	if err != nil {
		writeFailure(c, "Failed to store synced orders", err)
		return
	}
	defer cancel()

	coll := db.Collection(config.OrderCollection)
	if _, err := coll.DeleteMany(ctx, bson.M{}); err != nil {
		writeFailure(c, "Failed to store synced orders", err)
		return
	}

	count := 0
	if len(orders) > 0 {
		docs := make([]interface{}, 0, len(orders))
		for _, o := range orders {
			o.ID = primitive.NilObjectID
			if o.Status == "" || !o.Status.Valid() {
				o.Status = models.StatusUnpaid
			}
			o.UpdatedAt = time.Now()
			docs = append(docs, o)
		}
		res, err := coll.InsertMany(ctx, docs)
		if err != nil {
			writeFailure(c, "Failed to store synced orders", err)
			return
		}
		count = len(res.InsertedIDs)
	}

	c.JSON(http.StatusOK, gin.H{"count": count, "batchId": uuid.NewString()})
}
