package analytics

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"backend/models"
)

var testNow = time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

func TestAggregateScenario(t *testing.T) {
	orders := []models.CustomerOrder{
		{CustomerName: "A", ProductName: "Widget", Quantity: 2, Price: 100, PaymentDate: "01.01.2024 10:00:00", Status: models.StatusShipped},
		{CustomerName: "A", ProductName: "Widget", Quantity: 1, Price: 50, PaymentDate: "2024-01-02T10:00:00Z", Status: models.StatusShipped},
	}

	rep := Aggregate(orders, nil, Period30Days, testNow)

	if rep.Summary.TotalRevenue != 250 {
		t.Errorf("totalRevenue = %v, want 250", rep.Summary.TotalRevenue)
	}
	if rep.Summary.NetProfit != 250 {
		t.Errorf("netProfit = %v, want 250", rep.Summary.NetProfit)
	}
	if rep.Summary.TotalExpenses != 0 {
		t.Errorf("totalExpenses = %v, want 0", rep.Summary.TotalExpenses)
	}
	if rep.Summary.TotalOrders != 2 {
		t.Errorf("totalOrders = %d, want 2", rep.Summary.TotalOrders)
	}
	if rep.Summary.UniqueCustomers != 1 {
		t.Errorf("uniqueCustomers = %d, want 1", rep.Summary.UniqueCustomers)
	}
	want := []Entry{{Name: "A", Value: 250}}
	if !reflect.DeepEqual(rep.TopCustomers, want) {
		t.Errorf("topCustomers = %+v, want %+v", rep.TopCustomers, want)
	}
}

func TestAggregateEmptyInput(t *testing.T) {
	rep := Aggregate(nil, nil, Period30Days, testNow)

	zero := Summary{}
	if rep.Summary != zero {
		t.Errorf("summary = %+v, want zero values", rep.Summary)
	}
	if len(rep.Daily) != 0 || rep.Daily == nil {
		t.Errorf("dailySeries = %v, want empty non-nil slice", rep.Daily)
	}
	for name, lb := range map[string][]Entry{
		"customers": rep.TopCustomers,
		"cities":    rep.TopCities,
		"products":  rep.TopProducts,
	} {
		if lb == nil || len(lb) != 0 {
			t.Errorf("%s leaderboard = %v, want empty non-nil slice", name, lb)
		}
	}
}

func TestAggregateSkipsMalformedDates(t *testing.T) {
	orders := []models.CustomerOrder{
		{CustomerName: "A", ProductName: "Widget", Quantity: 2, Price: 100, PaymentDate: "01.01.2024 10:00:00", Status: models.StatusShipped},
		{CustomerName: "B", ProductName: "Widget", Quantity: 99, Price: 99, PaymentDate: "never", Status: models.StatusShipped},
	}

	rep := Aggregate(orders, nil, Period30Days, testNow)

	if rep.Summary.TotalRevenue != 200 {
		t.Errorf("totalRevenue = %v, want 200 (malformed record must be excluded)", rep.Summary.TotalRevenue)
	}
	if rep.Summary.TotalOrders != 1 {
		t.Errorf("totalOrders = %d, want 1", rep.Summary.TotalOrders)
	}
	if len(rep.Daily) != 1 {
		t.Errorf("dailySeries has %d points, want 1", len(rep.Daily))
	}
}

func TestAggregateIdempotent(t *testing.T) {
	orders := []models.CustomerOrder{
		{CustomerName: "A", ProductName: "Widget", Quantity: 2, Price: 100, PaymentDate: "01.01.2024 10:00:00", Address: "Tashkent, Chilonzor", Status: models.StatusShipped},
		{CustomerName: "B", ProductName: "Gadget", Quantity: 3, Price: 40, PaymentDate: "2024-01-03T08:00:00Z", Address: "Samarkand, Registon", Status: models.StatusPaid},
	}
	expenses := []models.Expense{
		{Date: "2024-01-02", Category: models.ExpenseLogistics, Amount: 30},
	}

	first := Aggregate(orders, expenses, Period30Days, testNow)
	second := Aggregate(orders, expenses, Period30Days, testNow)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("aggregation is not idempotent:\nfirst  %+v\nsecond %+v", first, second)
	}
}

func TestDailySeriesProfitInvariant(t *testing.T) {
	orders := []models.CustomerOrder{
		{CustomerName: "A", ProductName: "Widget", Quantity: 2, Price: 100, PaymentDate: "2024-01-01T10:00:00Z", Status: models.StatusShipped},
		{CustomerName: "B", ProductName: "Widget", Quantity: 1, Price: 75, PaymentDate: "2024-01-01T15:00:00Z", Status: models.StatusPaid},
		{CustomerName: "C", ProductName: "Gadget", Quantity: 5, Price: 20, PaymentDate: "2024-01-05T09:00:00Z", Status: models.StatusShipped},
	}
	expenses := []models.Expense{
		{Date: "2024-01-01", Category: models.ExpenseAdvertising, Amount: 50},
		{Date: "2024-01-03", Category: models.ExpensePayroll, Amount: 200},
	}

	rep := Aggregate(orders, expenses, Period30Days, testNow)

	var sumRevenue, sumExpenses, sumProfit float64
	for _, pt := range rep.Daily {
		sumRevenue += pt.Revenue
		sumExpenses += pt.Expenses
		sumProfit += pt.Profit
	}
	if sumProfit != sumRevenue-sumExpenses {
		t.Errorf("sum(profit) = %v, want %v", sumProfit, sumRevenue-sumExpenses)
	}

	// Expense-only days still appear in the series.
	if len(rep.Daily) != 3 {
		t.Fatalf("dailySeries has %d points, want 3", len(rep.Daily))
	}
	for i := 1; i < len(rep.Daily); i++ {
		if rep.Daily[i-1].Date >= rep.Daily[i].Date {
			t.Errorf("series not sorted: %s before %s", rep.Daily[i-1].Date, rep.Daily[i].Date)
		}
	}
}

func TestLeaderboardTruncationAndOrder(t *testing.T) {
	var orders []models.CustomerOrder
	for i := 0; i < 8; i++ {
		orders = append(orders, models.CustomerOrder{
			CustomerName: fmt.Sprintf("Customer %d", i),
			ProductName:  fmt.Sprintf("Product %d", i),
			Quantity:     float64(i + 1),
			Price:        10,
			PaymentDate:  "2024-01-05T10:00:00Z",
			Address:      fmt.Sprintf("City %d, Street", i),
			Status:       models.StatusShipped,
		})
	}

	rep := Aggregate(orders, nil, Period30Days, testNow)

	if len(rep.TopCustomers) != 5 {
		t.Errorf("topCustomers length = %d, want 5", len(rep.TopCustomers))
	}
	if len(rep.TopCities) != 3 {
		t.Errorf("topCities length = %d, want 3", len(rep.TopCities))
	}
	if len(rep.TopProducts) != 5 {
		t.Errorf("topProducts length = %d, want 5", len(rep.TopProducts))
	}
	for _, lb := range [][]Entry{rep.TopCustomers, rep.TopCities, rep.TopProducts} {
		for i := 1; i < len(lb); i++ {
			if lb[i-1].Value < lb[i].Value {
				t.Errorf("leaderboard not descending at %d: %+v", i, lb)
			}
		}
	}
	if rep.TopCustomers[0].Name != "Customer 7" || rep.TopCustomers[0].Value != 80 {
		t.Errorf("topCustomers[0] = %+v, want Customer 7 / 80", rep.TopCustomers[0])
	}
}

func TestCustomerLeaderboardShippedOnly(t *testing.T) {
	orders := []models.CustomerOrder{
		{CustomerName: "Shipped", ProductName: "Widget", Quantity: 1, Price: 100, PaymentDate: "2024-01-05T10:00:00Z", Status: models.StatusShipped},
		{CustomerName: "Cancelled", ProductName: "Widget", Quantity: 9, Price: 100, PaymentDate: "2024-01-05T11:00:00Z", Status: models.StatusCancelled},
	}

	rep := Aggregate(orders, nil, Period30Days, testNow)

	if len(rep.TopCustomers) != 1 || rep.TopCustomers[0].Name != "Shipped" {
		t.Errorf("topCustomers = %+v, want only the shipped customer", rep.TopCustomers)
	}
	// Revenue and the product board still count the cancelled order.
	if rep.Summary.TotalRevenue != 1000 {
		t.Errorf("totalRevenue = %v, want 1000", rep.Summary.TotalRevenue)
	}
	if len(rep.TopProducts) != 1 {
		t.Fatalf("topProducts = %+v, want one product", rep.TopProducts)
	}
}

func TestCityGrouping(t *testing.T) {
	orders := []models.CustomerOrder{
		{CustomerName: "A", ProductName: "W", Quantity: 1, Price: 100, PaymentDate: "2024-01-05T10:00:00Z", Address: "Tashkent, Chilonzor 5", Status: models.StatusShipped},
		{CustomerName: "B", ProductName: "W", Quantity: 1, Price: 60, PaymentDate: "2024-01-05T11:00:00Z", Address: " Tashkent , Yunusobod", Status: models.StatusPaid},
		{CustomerName: "C", ProductName: "W", Quantity: 1, Price: 40, PaymentDate: "2024-01-05T12:00:00Z", Status: models.StatusPaid},
	}

	rep := Aggregate(orders, nil, Period30Days, testNow)

	want := []Entry{{Name: "Tashkent", Value: 160}, {Name: "Unknown", Value: 40}}
	if !reflect.DeepEqual(rep.TopCities, want) {
		t.Errorf("topCities = %+v, want %+v", rep.TopCities, want)
	}
}

func TestProductConsumptionRate(t *testing.T) {
	orders := []models.CustomerOrder{
		{CustomerName: "A", ProductName: "Widget", Quantity: 30, Price: 10, PaymentDate: "2024-01-05T10:00:00Z", Status: models.StatusShipped},
		{CustomerName: "B", ProductName: "Widget", Quantity: 30, Price: 10, PaymentDate: "2024-01-06T10:00:00Z", Status: models.StatusPaid},
	}

	rep := Aggregate(orders, nil, Period30Days, testNow)

	// 60 units over the 30-day window's nominal day count.
	want := []Entry{{Name: "Widget", Value: 2}}
	if !reflect.DeepEqual(rep.TopProducts, want) {
		t.Errorf("topProducts = %+v, want %+v", rep.TopProducts, want)
	}
}

func TestProfitMarginZeroRevenue(t *testing.T) {
	expenses := []models.Expense{
		{Date: "2024-01-02", Category: models.ExpenseOther, Amount: 500},
	}

	rep := Aggregate(nil, expenses, Period30Days, testNow)

	if rep.Summary.ProfitMargin != 0 {
		t.Errorf("profitMargin = %v, want 0 when revenue is zero", rep.Summary.ProfitMargin)
	}
	if rep.Summary.NetProfit != -500 {
		t.Errorf("netProfit = %v, want -500", rep.Summary.NetProfit)
	}
}

func TestAggregatePurchases(t *testing.T) {
	purchases := []models.Purchase{
		{Supplier: "Acme", ExchangeRate: 2, Status: models.PurchaseDelivered,
			Items: []models.PurchaseItem{{ProductName: "W", Quantity: 10, UnitCost: 5}}},
		{Supplier: "Acme", ExchangeRate: 1, Status: models.PurchasePending,
			Items: []models.PurchaseItem{{ProductName: "W", Quantity: 4, UnitCost: 25}}},
		{Supplier: "Globex", Status: models.PurchaseDelivered,
			Items: []models.PurchaseItem{{ProductName: "G", Quantity: 2, UnitCost: 30}}},
	}

	totals := AggregatePurchases(purchases)

	if totals.Count != 3 {
		t.Errorf("count = %d, want 3", totals.Count)
	}
	if totals.TotalSpend != 260 {
		t.Errorf("totalSpend = %v, want 260", totals.TotalSpend)
	}
	if len(totals.BySupplier) != 2 || totals.BySupplier[0].Name != "Acme" || totals.BySupplier[0].Value != 200 {
		t.Errorf("bySupplier = %+v", totals.BySupplier)
	}
}

func TestAggregatePurchasesEmpty(t *testing.T) {
	totals := AggregatePurchases(nil)
	if totals.Count != 0 || totals.TotalSpend != 0 {
		t.Errorf("totals = %+v, want zeros", totals)
	}
	if totals.BySupplier == nil || totals.ByStatus == nil {
		t.Error("rollup slices must be non-nil")
	}
}
