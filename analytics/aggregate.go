package analytics

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"backend/models"
)

const (
	topCustomers = 5
	topCities    = 3
	topProducts  = 5
)

type Summary struct {
	TotalRevenue    float64 `json:"totalRevenue"`
	TotalExpenses   float64 `json:"totalExpenses"`
	NetProfit       float64 `json:"netProfit"`
	ProfitMargin    float64 `json:"profitMargin"`
	TotalOrders     int     `json:"totalOrders"`
	UniqueCustomers int     `json:"uniqueCustomers"`
}

type DailyPoint struct {
	Date       string  `json:"date"`
	Revenue    float64 `json:"revenue"`
	Expenses   float64 `json:"expenses"`
	Profit     float64 `json:"profit"`
	OrderCount int     `json:"orderCount"`
}

// Entry is one leaderboard row.
type Entry struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type Report struct {
	Summary      Summary      `json:"summary"`
	Daily        []DailyPoint `json:"dailySeries"`
	TopCustomers []Entry      `json:"topCustomers"`
	TopCities    []Entry      `json:"topCities"`
	TopProducts  []Entry      `json:"topProducts"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Aggregate derives the full dashboard report from the in-scope orders
// and expenses. Pure: no I/O, no mutation of its inputs, and the same
// inputs always produce the same report. Records whose date cannot be
// parsed are skipped rather than aborting the run.
func Aggregate(orders []models.CustomerOrder, expenses []models.Expense, p Period, now time.Time) Report {
	from, to := p.Resolve(now)

	type dated struct {
		order models.CustomerOrder
		day   string
	}
	var inScope []dated
	for _, o := range orders {
		t, ok := ParsePaymentDate(o.PaymentDate)
		if !ok || t.Before(from) || t.After(to) {
			continue
		}
		inScope = append(inScope, dated{order: o, day: t.Format("2006-01-02")})
	}

	type datedExpense struct {
		expense models.Expense
		day     string
	}
	var expensesInScope []datedExpense
	for _, e := range expenses {
		t, ok := ParsePaymentDate(e.Date)
		if !ok || t.Before(from) || t.After(to) {
			continue
		}
		expensesInScope = append(expensesInScope, datedExpense{expense: e, day: t.Format("2006-01-02")})
	}

	report := Report{
		Daily:        []DailyPoint{},
		TopCustomers: []Entry{},
		TopCities:    []Entry{},
		TopProducts:  []Entry{},
	}

	// Summary. Order ids go through a set because upstream joins can
	// duplicate an order header across lines; revenue intentionally
	// counts every line.
	orderIDs := map[string]struct{}{}
	customers := map[string]struct{}{}
	for i, d := range inScope {
		o := d.order
		report.Summary.TotalRevenue += o.Quantity * o.Price
		if !o.ID.IsZero() {
			orderIDs[o.ID.Hex()] = struct{}{}
		} else {
			orderIDs[fmt.Sprintf("row-%d", i)] = struct{}{}
		}
		if o.CustomerName != "" {
			customers[o.CustomerName] = struct{}{}
		}
	}
	for _, d := range expensesInScope {
		report.Summary.TotalExpenses += d.expense.Amount
	}
	report.Summary.TotalOrders = len(orderIDs)
	report.Summary.UniqueCustomers = len(customers)
	report.Summary.NetProfit = report.Summary.TotalRevenue - report.Summary.TotalExpenses
	if report.Summary.TotalRevenue > 0 {
		report.Summary.ProfitMargin = round2(report.Summary.NetProfit / report.Summary.TotalRevenue * 100)
	}

	// Daily series: revenue and expenses accumulate independently per
	// calendar day; profit is a final-pass subtraction, never an
	// incremental sum.
	daily := map[string]*DailyPoint{}
	dayFor := func(key string) *DailyPoint {
		if pt, ok := daily[key]; ok {
			return pt
		}
		pt := &DailyPoint{Date: key}
		daily[key] = pt
		return pt
	}
	for _, d := range inScope {
		pt := dayFor(d.day)
		pt.Revenue += d.order.Quantity * d.order.Price
		pt.OrderCount++
	}
	for _, d := range expensesInScope {
		pt := dayFor(d.day)
		pt.Expenses += d.expense.Amount
	}
	for _, pt := range daily {
		pt.Profit = pt.Revenue - pt.Expenses
		report.Daily = append(report.Daily, *pt)
	}
	sort.Slice(report.Daily, func(i, j int) bool {
		return report.Daily[i].Date < report.Daily[j].Date
	})

	// Customer leaderboard counts shipped orders only, so in-flight and
	// cancelled orders never inflate a ranking.
	customerTotals := map[string]float64{}
	for _, d := range inScope {
		if d.order.Status != models.StatusShipped {
			continue
		}
		name := d.order.CustomerName
		if name == "" {
			name = "Unknown"
		}
		customerTotals[name] += d.order.Quantity * d.order.Price
	}
	report.TopCustomers = rank(customerTotals, topCustomers)

	// City and product leaderboards use the full filtered set.
	cityTotals := map[string]float64{}
	for _, d := range inScope {
		cityTotals[cityOf(d.order.Address)] += d.order.Quantity * d.order.Price
	}
	report.TopCities = rank(cityTotals, topCities)

	// Product ranking is average daily consumption over the window's
	// nominal day count, normalizing across differently sized windows.
	productQty := map[string]float64{}
	for _, d := range inScope {
		name := d.order.ProductName
		if name == "" {
			continue
		}
		productQty[name] += d.order.Quantity
	}
	productRates := make(map[string]float64, len(productQty))
	days := float64(p.Days)
	if days < 1 {
		days = 1
	}
	for name, qty := range productQty {
		productRates[name] = round2(qty / days)
	}
	report.TopProducts = rank(productRates, topProducts)

	return report
}

// cityOf takes the address prefix before the first comma. Missing or
// blank addresses group under "Unknown".
func cityOf(address string) string {
	city := address
	if i := strings.Index(address, ","); i >= 0 {
		city = address[:i]
	}
	city = strings.TrimSpace(city)
	if city == "" {
		return "Unknown"
	}
	return city
}

func rank(totals map[string]float64, n int) []Entry {
	entries := make([]Entry, 0, len(totals))
	for name, value := range totals {
		entries = append(entries, Entry{Name: name, Value: round2(value)})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Value > entries[j].Value
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// PurchaseTotals rolls purchases up by supplier and status for the
// purchases analytics route.
type PurchaseTotals struct {
	TotalSpend float64 `json:"totalSpend"`
	Count      int     `json:"count"`
	BySupplier []Entry `json:"bySupplier"`
	ByStatus   []Entry `json:"byStatus"`
}

func AggregatePurchases(purchases []models.Purchase) PurchaseTotals {
	totals := PurchaseTotals{BySupplier: []Entry{}, ByStatus: []Entry{}}
	bySupplier := map[string]float64{}
	byStatus := map[string]float64{}
	for _, p := range purchases {
		total := p.Total()
		totals.TotalSpend += total
		totals.Count++
		supplier := p.Supplier
		if supplier == "" {
			supplier = "Unknown"
		}
		bySupplier[supplier] += total
		byStatus[string(p.Status)] += total
	}
	totals.TotalSpend = round2(totals.TotalSpend)
	totals.BySupplier = rank(bySupplier, len(bySupplier))
	totals.ByStatus = rank(byStatus, len(byStatus))
	return totals
}
