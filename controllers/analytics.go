package controllers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"backend/analytics"
	"backend/config"
	"backend/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func fetchAll[T any](ctx context.Context, db *mongo.Database, collection string) ([]T, error) {
	cursor, err := db.Collection(collection).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	out := []T{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// dashboardInputs loads the three collections feeding the pipeline.
// The reads are independent, so they run concurrently and aggregation
// starts only after all have resolved.
func dashboardInputs(ctx context.Context, db *mongo.Database) ([]models.CustomerOrder, []models.Expense, []models.Purchase, error) {
	var (
		orders    []models.CustomerOrder
		expenses  []models.Expense
		purchases []models.Purchase

		errOrders, errExpenses, errPurchases error
	)

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		orders, errOrders = fetchAll[models.CustomerOrder](ctx, db, config.OrderCollection)
	}()
	go func() {
		defer wg.Done()
		expenses, errExpenses = fetchAll[models.Expense](ctx, db, config.ExpenseCollection)
	}()
	go func() {
		defer wg.Done()
		purchases, errPurchases = fetchAll[models.Purchase](ctx, db, config.PurchaseCollection)
	}()
	wg.Wait()

	for _, err := range []error{errOrders, errExpenses, errPurchases} {
		if err != nil {
			return nil, nil, nil, err
		}
	}
	return orders, expenses, purchases, nil
}

// DashboardSummary answers the main dashboard fetch: summary metrics,
// the daily series and all three leaderboards for the requested
// period. A dead store feeds the same pipeline with demo fixtures so
// the response shape never changes.
func (ctl *Controller) DashboardSummary(c *gin.Context) {
	period := analytics.PeriodByName(c.Query("period"))
	now := time.Now()

	respond := func(report analytics.Report, purchases analytics.PurchaseTotals) gin.H {
		return gin.H{
			"period":       period.Name,
			"summary":      report.Summary,
			"dailySeries":  report.Daily,
			"topCustomers": report.TopCustomers,
			"topCities":    report.TopCities,
			"topProducts":  report.TopProducts,
			"purchases":    purchases,
		}
	}

	db, ctx, cancel, err := ctl.database(c)
	if err != nil {
		report := analytics.Aggregate(models.DemoCustomerOrders(), models.DemoExpenses(), period, now)
		demoFallback(c, err, respond(report, analytics.AggregatePurchases(models.DemoPurchases())))
		return
	}
	defer cancel()

	orders, expenses, purchases, err := dashboardInputs(ctx, db)
	if err != nil {
		report := analytics.Aggregate(models.DemoCustomerOrders(), models.DemoExpenses(), period, now)
		demoFallback(c, err, respond(report, analytics.AggregatePurchases(models.DemoPurchases())))
		return
	}

	report := analytics.Aggregate(orders, expenses, period, now)
	c.JSON(http.StatusOK, respond(report, analytics.AggregatePurchases(purchases)))
}

// ProfitSeries returns just the daily revenue/expenses/profit series.
func (ctl *Controller) ProfitSeries(c *gin.Context) {
	period := analytics.PeriodByName(c.Query("period"))
	now := time.Now()

	db, ctx, cancel, err := ctl.database(c)
	if err != nil {
		report := analytics.Aggregate(models.DemoCustomerOrders(), models.DemoExpenses(), period, now)
		demoFallback(c, err, gin.H{"period": period.Name, "data": report.Daily})
		return
	}
	defer cancel()

	orders, err := fetchAll[models.CustomerOrder](ctx, db, config.OrderCollection)
	if err == nil {
		var expenses []models.Expense
		expenses, err = fetchAll[models.Expense](ctx, db, config.ExpenseCollection)
		if err == nil {
			report := analytics.Aggregate(orders, expenses, period, now)
			c.JSON(http.StatusOK, gin.H{"period": period.Name, "data": report.Daily})
			return
		}
	}

	report := analytics.Aggregate(models.DemoCustomerOrders(), models.DemoExpenses(), period, now)
	demoFallback(c, err, gin.H{"period": period.Name, "data": report.Daily})
}

// PurchaseAnalytics rolls purchases up by supplier and status.
func (ctl *Controller) PurchaseAnalytics(c *gin.Context) {
	db, ctx, cancel, err := ctl.database(c)
	if err != nil {
		demoFallback(c, err, gin.H{"data": analytics.AggregatePurchases(models.DemoPurchases())})
		return
	}
	defer cancel()

	purchases, err := fetchAll[models.Purchase](ctx, db, config.PurchaseCollection)
	if err != nil {
		demoFallback(c, err, gin.H{"data": analytics.AggregatePurchases(models.DemoPurchases())})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": analytics.AggregatePurchases(purchases)})
}
