package pipeline

import (
	"testing"
	"time"

	"github.com/dgeast/jeju-sale1/models"
)

func orderRow(seller, customer string, paid float64) models.OrderRow {
	return models.OrderRow{
		CustomerID: customer,
		SellerName: seller,
		Variety:    "한라봉",
		Region:     "서울특별시",
		Channel:    "네이버",
		OrderedAt:  time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
		OrderDate:  time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		PaidAmount: paid,
		OrderedQty: 1,
		NetQty:     1,
	}
}

func derivedRows(rows ...models.OrderRow) []models.DerivedRow {
	return DeriveRows(rows)
}

func TestAggregateByFirstSeenOrder(t *testing.T) {
	rows := derivedRows(
		orderRow("B", "c1", 100),
		orderRow("A", "c2", 900),
		orderRow("B", "c3", 100),
	)
	aggs := AggregateBy(rows, DimensionSeller)
	if len(aggs) != 2 {
		t.Fatalf("expected 2 aggregates, got %d", len(aggs))
	}
	if aggs[0].Key != "B" || aggs[1].Key != "A" {
		t.Fatalf("keys = %q, %q; want first-seen order B, A", aggs[0].Key, aggs[1].Key)
	}
}

func TestAggregateByRatios(t *testing.T) {
	r1 := orderRow("A", "c1", 1000)
	r1.OrderedQty = 4
	r1.CancelledQty = 1
	r1.NetQty = 3
	r2 := orderRow("A", "c1", 500)
	r3 := orderRow("A", "c2", 500)
	aggs := AggregateBy(derivedRows(r1, r2, r3), DimensionSeller)
	a := aggs[0]

	if a.UniqueCustomers != 2 {
		t.Errorf("unique customers = %d, want 2", a.UniqueCustomers)
	}
	if a.OrdersPerCustomer != 1.5 {
		t.Errorf("orders per customer = %v, want 1.5", a.OrdersPerCustomer)
	}
	// c1 ordered twice, c2 once
	if a.RepeatCustomerRate != 50 {
		t.Errorf("repeat customer rate = %v, want 50", a.RepeatCustomerRate)
	}
	// 1 cancelled of 6 ordered
	wantCancel := 100.0 / 6
	if diff := a.CancelRatePct - wantCancel; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("cancel rate = %v, want %v", a.CancelRatePct, wantCancel)
	}
	if a.SalesSharePct != 100 {
		t.Errorf("sales share = %v, want 100 for the only seller", a.SalesSharePct)
	}
}

func TestAggregateByZeroDenominators(t *testing.T) {
	r := orderRow("A", "c1", 0)
	r.OrderedQty = 0
	r.NetQty = 0
	aggs := AggregateBy(derivedRows(r), DimensionSeller)
	a := aggs[0]
	if a.MarginPct != 0 || a.CancelRatePct != 0 || a.SalesSharePct != 0 {
		t.Fatalf("zero-denominator ratios must be 0, got margin=%v cancel=%v share=%v",
			a.MarginPct, a.CancelRatePct, a.SalesSharePct)
	}
}

func TestSortBySalesDescStableTies(t *testing.T) {
	aggs := []models.Aggregate{
		{Key: "x", TotalSales: 100},
		{Key: "y", TotalSales: 300},
		{Key: "z", TotalSales: 100},
	}
	sorted := SortBySalesDesc(aggs)
	if sorted[0].Key != "y" || sorted[1].Key != "x" || sorted[2].Key != "z" {
		t.Fatalf("got order %q %q %q, want y x z", sorted[0].Key, sorted[1].Key, sorted[2].Key)
	}
	// input untouched
	if aggs[0].Key != "x" {
		t.Fatal("input slice was mutated")
	}
}

func TestTopNShorterThanN(t *testing.T) {
	aggs := []models.Aggregate{{Key: "only", TotalSales: 10}}
	if got := TopN(aggs, 5); len(got) != 1 {
		t.Fatalf("expected 1 aggregate, got %d", len(got))
	}
}

func TestOverview(t *testing.T) {
	r1 := orderRow("A", "c1", 1000)
	r1.SupplyPrice = 400
	r1.OrderedQty = 2
	r1.NetQty = 2
	r2 := orderRow("A", "c2", 2000)
	r2.SupplyPrice = 500
	o := Overview(derivedRows(r1, r2))
	if o.TotalSales != 3000 || o.OrderCount != 2 {
		t.Fatalf("sales=%v orders=%d, want 3000 and 2", o.TotalSales, o.OrderCount)
	}
	if o.TotalProfit != 2100 {
		t.Errorf("profit = %v, want 2100", o.TotalProfit)
	}
	if o.AvgOrderValue != 1500 {
		t.Errorf("avg order value = %v, want 1500", o.AvgOrderValue)
	}
	if o.AvgMarginPct != 70 {
		t.Errorf("avg margin = %v, want 70", o.AvgMarginPct)
	}
}

func TestOverviewEmptySubset(t *testing.T) {
	o := Overview(nil)
	if o.TotalSales != 0 || o.AvgOrderValue != 0 || o.AvgMarginPct != 0 || o.CancelRatePct != 0 {
		t.Fatalf("empty subset must produce all-zero overview, got %+v", o)
	}
}
