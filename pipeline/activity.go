package pipeline

import (
	"sort"
	"time"

	"github.com/dgeast/jeju-sale1/models"
)

// SellerActivity classifies every seller by days since their last order,
// measured against the dataset's own latest order date. This runs on the
// full dataset, not the filtered subset: a seller filtered out of view is
// still either active or drifting away.
func SellerActivity(rows []models.OrderRow) []models.SellerActivity {
	type sellerAgg struct {
		lastOrder  time.Time
		totalSales float64
		orderCount int
	}
	bySeller := map[string]*sellerAgg{}
	order := []string{}
	var maxDate time.Time

	for _, r := range rows {
		s, ok := bySeller[r.SellerName]
		if !ok {
			s = &sellerAgg{}
			bySeller[r.SellerName] = s
			order = append(order, r.SellerName)
		}
		if r.OrderDate.After(s.lastOrder) {
			s.lastOrder = r.OrderDate
		}
		s.totalSales += r.PaidAmount
		s.orderCount++
		if r.OrderDate.After(maxDate) {
			maxDate = r.OrderDate
		}
	}

	out := make([]models.SellerActivity, len(order))
	for i, name := range order {
		s := bySeller[name]
		dormant := int(maxDate.Sub(s.lastOrder).Hours() / 24)
		out[i] = models.SellerActivity{
			SellerName:    name,
			LastOrderDate: s.lastOrder,
			DormantDays:   dormant,
			RiskBucket:    RiskBucket(dormant),
			TotalSales:    s.totalSales,
			OrderCount:    s.orderCount,
		}
	}
	return out
}

// RiskBucket maps dormant days to a terminal churn-risk bucket
func RiskBucket(dormantDays int) string {
	switch {
	case dormantDays <= 7:
		return models.RiskStable
	case dormantDays <= 14:
		return models.RiskCaution
	case dormantDays <= 30:
		return models.RiskAtRisk
	default:
		return models.RiskChurnedLikely
	}
}

// SortByDormantDesc lists the most dormant sellers first
func SortByDormantDesc(activity []models.SellerActivity) []models.SellerActivity {
	out := make([]models.SellerActivity, len(activity))
	copy(out, activity)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DormantDays > out[j].DormantDays
	})
	return out
}
