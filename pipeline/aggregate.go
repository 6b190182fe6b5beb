package pipeline

import (
	"sort"
	"strconv"

	"github.com/dgeast/jeju-sale1/models"
)

// Dimension is a grouping key for aggregation
type Dimension string

const (
	DimensionSeller    Dimension = "seller"
	DimensionVariety   Dimension = "variety"
	DimensionRegion    Dimension = "region"
	DimensionChannel   Dimension = "channel"
	DimensionCustomer  Dimension = "customer"
	DimensionDate      Dimension = "date"
	DimensionWeekday   Dimension = "weekday"
	DimensionHour      Dimension = "hour"
	DimensionPriceBand Dimension = "price_band"
)

func dimensionKey(r models.OrderRow, dim Dimension) string {
	switch dim {
	case DimensionSeller:
		return r.SellerName
	case DimensionVariety:
		return r.Variety
	case DimensionRegion:
		return r.Region
	case DimensionChannel:
		return r.Channel
	case DimensionCustomer:
		return r.CustomerID
	case DimensionDate:
		return r.OrderDate.Format("2006-01-02")
	case DimensionWeekday:
		return r.OrderedAt.Weekday().String()
	case DimensionHour:
		return strconv.Itoa(r.OrderedAt.Hour())
	case DimensionPriceBand:
		return r.PriceBand
	}
	return ""
}

type accumulator struct {
	agg            models.Aggregate
	customerOrders map[string]int
}

// AggregateBy folds the filtered subset into one summary row per distinct
// key value, in first-seen key order. Every ratio resolves to 0 on a zero
// denominator.
func AggregateBy(rows []models.DerivedRow, dim Dimension) []models.Aggregate {
	byKey := map[string]*accumulator{}
	order := []string{}
	var subsetSales float64

	for _, r := range rows {
		k := dimensionKey(r.OrderRow, dim)
		acc, ok := byKey[k]
		if !ok {
			acc = &accumulator{
				agg:            models.Aggregate{Key: k},
				customerOrders: map[string]int{},
			}
			byKey[k] = acc
			order = append(order, k)
		}
		acc.agg.TotalSales += r.PaidAmount
		acc.agg.TotalProfit += r.Profit
		acc.agg.OrderCount++
		acc.agg.OrderedQty += r.OrderedQty
		acc.agg.CancelledQty += r.CancelledQty
		acc.agg.NetQty += r.NetQty
		acc.customerOrders[r.CustomerID]++
		subsetSales += r.PaidAmount
	}

	out := make([]models.Aggregate, 0, len(order))
	for _, k := range order {
		acc := byKey[k]
		a := acc.agg
		a.UniqueCustomers = len(acc.customerOrders)
		repeat := 0
		for _, n := range acc.customerOrders {
			if n >= 2 {
				repeat++
			}
		}
		a.MarginPct = safePct(a.TotalProfit, a.TotalSales)
		a.CancelRatePct = safePct(a.CancelledQty, a.OrderedQty)
		a.OrdersPerCustomer = safeDiv(float64(a.OrderCount), float64(a.UniqueCustomers))
		a.RepeatCustomerRate = safePct(float64(repeat), float64(a.UniqueCustomers))
		a.SalesSharePct = safePct(a.TotalSales, subsetSales)
		out = append(out, a)
	}
	return out
}

// SortBySalesDesc orders aggregates by revenue, descending. The sort is
// stable: ties keep first-seen order, since no explicit tiebreak exists in
// the data.
func SortBySalesDesc(aggs []models.Aggregate) []models.Aggregate {
	out := make([]models.Aggregate, len(aggs))
	copy(out, aggs)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalSales > out[j].TotalSales
	})
	return out
}

// TopN returns the n highest-revenue aggregates
func TopN(aggs []models.Aggregate, n int) []models.Aggregate {
	sorted := SortBySalesDesc(aggs)
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// Overview collapses the subset into the KPI strip
func Overview(rows []models.DerivedRow) models.DashboardOverview {
	var o models.DashboardOverview
	var orderedQty, cancelledQty float64
	for _, r := range rows {
		o.TotalSales += r.PaidAmount
		o.TotalProfit += r.Profit
		o.NetQty += r.NetQty
		orderedQty += r.OrderedQty
		cancelledQty += r.CancelledQty
	}
	o.OrderCount = len(rows)
	o.AvgOrderValue = safeDiv(o.TotalSales, float64(o.OrderCount))
	o.AvgMarginPct = safePct(o.TotalProfit, o.TotalSales)
	o.CancelRatePct = safePct(cancelledQty, orderedQty)
	return o
}
