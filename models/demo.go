package models

import "time"

// Demo fixtures returned by degraded reads. Every fallback branch in
// the gateway pulls from here so the placeholder payloads stay in one
// place and keep the same shape as real store documents.

func DemoProducts() []Product {
	now := time.Now()
	return []Product{
		{Name: "Araqqoz 70x21", PriceUSD: 4.2, PriceLocal: 52.5, Quantity: 120, ReorderThreshold: 40, SellingPrice: 68, CreatedAt: now},
		{Name: "Termo stakan 450ml", PriceUSD: 2.1, PriceLocal: 26.3, Quantity: 35, ReorderThreshold: 50, SellingPrice: 39, CreatedAt: now},
		{Name: "Filtr qog'ozi A4", PriceUSD: 1.4, PriceLocal: 17.5, Quantity: 400, ReorderThreshold: 100, SellingPrice: 24, CreatedAt: now},
	}
}

func DemoCustomerOrders() []CustomerOrder {
	now := time.Now()
	day := now.Format("2006-01-02")
	return []CustomerOrder{
		{CustomerName: "Demo Customer A", ProductName: "Araqqoz 70x21", Quantity: 10, Price: 68, PaymentDate: day + "T09:15:00Z", Address: "Tashkent, Chilonzor 5", Status: StatusShipped, CreatedAt: now},
		{CustomerName: "Demo Customer B", ProductName: "Termo stakan 450ml", Quantity: 4, Price: 39, PaymentDate: now.Format("02.01.2006") + " 11:30:00", Address: "Samarkand, Registon 1", Status: StatusPaid, CreatedAt: now},
		{CustomerName: "Demo Customer C", ProductName: "Filtr qog'ozi A4", Quantity: 25, Price: 24, PaymentDate: day + "T14:00:00Z", Address: "Tashkent, Yunusobod 19", Status: StatusProcessing, CreatedAt: now},
	}
}

func DemoPurchases() []Purchase {
	now := time.Now()
	return []Purchase{
		{Supplier: "Demo Supplier LLC", Date: now.AddDate(0, 0, -10).Format("2006-01-02"), ExchangeRate: 12.5, Status: PurchaseDelivered, CreatedAt: now,
			Items: []PurchaseItem{{ProductName: "Araqqoz 70x21", Quantity: 200, UnitCost: 4.2}}},
		{Supplier: "Demo Imports Co", Date: now.AddDate(0, 0, -3).Format("2006-01-02"), ExchangeRate: 12.5, Status: PurchaseInTransit, CreatedAt: now,
			Items: []PurchaseItem{{ProductName: "Termo stakan 450ml", Quantity: 100, UnitCost: 2.1}}},
	}
}

func DemoExpenses() []Expense {
	now := time.Now()
	return []Expense{
		{Date: now.AddDate(0, 0, -2).Format("2006-01-02"), Category: ExpenseLogistics, Description: "Demo courier run", Amount: 120, CreatedAt: now},
		{Date: now.AddDate(0, 0, -1).Format("2006-01-02"), Category: ExpenseAdvertising, Description: "Demo ad spend", Amount: 75, CreatedAt: now},
	}
}

// DemoCustomers matches the distinct-customers route shape.
func DemoCustomers() []string {
	return []string{"Demo Customer A", "Demo Customer B", "Demo Customer C"}
}
