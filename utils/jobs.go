package utils

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"backend/analytics"
	"backend/config"
	"backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"gopkg.in/gomail.v2"
)

// overdueAfter is how long an unpaid order may sit before the nightly
// sweep flips it to overdue.
const overdueAfter = 14 * 24 * time.Hour

// SweepOverdueOrders marks unpaid orders whose payment date is past
// the grace window. Runs daily from the scheduler in main.
func SweepOverdueOrders(db config.Provider) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	database, err := db.Get(ctx)
	if err != nil {
		log.Printf("overdue sweep skipped: %v", err)
		return
	}

	coll := database.Collection(config.OrderCollection)
	cursor, err := coll.Find(ctx, bson.M{"status": models.StatusUnpaid})
	if err != nil {
		log.Printf("overdue sweep failed: %v", err)
		return
	}
	defer cursor.Close(ctx)

	cutoff := time.Now().Add(-overdueAfter)
	flipped := 0
	for cursor.Next(ctx) {
		var order models.CustomerOrder
		if err := cursor.Decode(&order); err != nil {
			continue
		}
		due, ok := analytics.ParsePaymentDate(order.PaymentDate)
		if !ok || due.After(cutoff) {
			continue
		}
		_, err := coll.UpdateOne(ctx, bson.M{"_id": order.ID}, bson.M{
			"$set": bson.M{"status": models.StatusOverdue, "updated_at": time.Now()},
		})
		if err != nil {
			log.Printf("overdue sweep: order %s: %v", order.ID.Hex(), err)
			continue
		}
		flipped++
	}
	if flipped > 0 {
		log.Printf("overdue sweep: %d orders marked overdue", flipped)
	}
}

// SendLowStockDigest emails the products at or under their reorder
// threshold. Skipped entirely when SMTP is not configured.
func SendLowStockDigest(db config.Provider) {
	host := os.Getenv("SMTP_HOST")
	to := os.Getenv("STOCK_ALERT_EMAIL")
	if host == "" || to == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	database, err := db.Get(ctx)
	if err != nil {
		log.Printf("low-stock digest skipped: %v", err)
		return
	}

	cursor, err := database.Collection(config.ProductCollection).Find(ctx, bson.M{
		"reorderThreshold": bson.M{"$gt": 0},
		"$expr":            bson.M{"$lte": []string{"$quantity", "$reorderThreshold"}},
	})
	if err != nil {
		log.Printf("low-stock digest failed: %v", err)
		return
	}
	defer cursor.Close(ctx)

	var low []models.Product
	if err := cursor.All(ctx, &low); err != nil {
		log.Printf("low-stock digest failed: %v", err)
		return
	}
	if len(low) == 0 {
		return
	}

	body := "Products at or under reorder threshold:\n\n"
	for _, p := range low {
		body += fmt.Sprintf("- %s: %.0f on hand (threshold %.0f)\n", p.Name, p.Quantity, p.ReorderThreshold)
	}

	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if port == 0 {
		port = 587
	}

	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_FROM"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Low stock: %d products", len(low)))
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(host, port, os.Getenv("SMTP_USER"), os.Getenv("SMTP_PASS"))
	if err := d.DialAndSend(m); err != nil {
		log.Printf("low-stock digest send failed: %v", err)
		return
	}
	log.Printf("low-stock digest sent: %d products", len(low))
}
