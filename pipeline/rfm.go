package pipeline

import (
	"sort"
	"time"

	"github.com/dgeast/jeju-sale1/models"
)

// BuildRFM scores every unique customer in the filtered subset. Recency is
// measured against the subset's own latest order date plus one day, so the
// freshest customer still has a positive recency.
func BuildRFM(rows []models.DerivedRow) []models.CustomerRFM {
	if len(rows) == 0 {
		return nil
	}

	type custAgg struct {
		frequency int
		monetary  float64
		lastOrder time.Time
	}
	byCustomer := map[string]*custAgg{}
	order := []string{}
	var maxDate time.Time

	for _, r := range rows {
		c, ok := byCustomer[r.CustomerID]
		if !ok {
			c = &custAgg{}
			byCustomer[r.CustomerID] = c
			order = append(order, r.CustomerID)
		}
		c.frequency++
		c.monetary += r.PaidAmount
		if r.OrderDate.After(c.lastOrder) {
			c.lastOrder = r.OrderDate
		}
		if r.OrderDate.After(maxDate) {
			maxDate = r.OrderDate
		}
	}

	reference := maxDate.AddDate(0, 0, 1)
	out := make([]models.CustomerRFM, len(order))
	for i, id := range order {
		c := byCustomer[id]
		out[i] = models.CustomerRFM{
			CustomerID:  id,
			RecencyDays: int(reference.Sub(c.lastOrder).Hours() / 24),
			Frequency:   c.frequency,
			Monetary:    c.monetary,
		}
	}

	// Quintile scoring. Each measure is ranked independently; the stable
	// sort gives every customer a distinct rank before bucketing, so
	// duplicate raw values cannot collapse bucket boundaries.
	scoreQuintiles(out,
		func(r models.CustomerRFM) float64 { return float64(r.RecencyDays) },
		func(r *models.CustomerRFM, s int) { r.RScore = s },
		true) // smaller recency is better
	scoreQuintiles(out,
		func(r models.CustomerRFM) float64 { return float64(r.Frequency) },
		func(r *models.CustomerRFM, s int) { r.FScore = s },
		false)
	scoreQuintiles(out,
		func(r models.CustomerRFM) float64 { return r.Monetary },
		func(r *models.CustomerRFM, s int) { r.MScore = s },
		false)

	for i := range out {
		out[i].TotalScore = out[i].RScore + out[i].FScore + out[i].MScore
		out[i].Segment = Segment(out[i].TotalScore, out[i].RScore)
	}
	return out
}

// scoreQuintiles assigns 1-5 by equal-population rank bucketing. With
// invert set, the smallest value scores 5 (recency inversion).
func scoreQuintiles(rfm []models.CustomerRFM, measure func(models.CustomerRFM) float64, assign func(*models.CustomerRFM, int), invert bool) {
	n := len(rfm)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return measure(rfm[idx[a]]) < measure(rfm[idx[b]])
	})
	for rank, i := range idx {
		bucket := rank*5/n + 1
		if invert {
			bucket = 5 - rank*5/n
		}
		assign(&rfm[i], bucket)
	}
}

// Segment maps an RFM score to a terminal customer segment. Rules are
// evaluated top-down, first match wins, and every customer lands in exactly
// one segment.
func Segment(totalScore, rScore int) string {
	switch {
	case totalScore >= 13:
		return models.SegmentVIP
	case totalScore >= 10:
		return models.SegmentLoyal
	case rScore >= 4:
		return models.SegmentNew
	case rScore <= 2:
		return models.SegmentAtRisk
	default:
		return models.SegmentRegular
	}
}

// SegmentDistribution counts customers per segment, in a fixed display order
func SegmentDistribution(rfm []models.CustomerRFM) []models.SegmentCount {
	counts := map[string]int{}
	for _, r := range rfm {
		counts[r.Segment]++
	}
	segs := []string{models.SegmentVIP, models.SegmentLoyal, models.SegmentNew, models.SegmentAtRisk, models.SegmentRegular}
	out := make([]models.SegmentCount, 0, len(segs))
	for _, s := range segs {
		out = append(out, models.SegmentCount{
			Segment:   s,
			Customers: counts[s],
			SharePct:  safePct(float64(counts[s]), float64(len(rfm))),
		})
	}
	return out
}

// CustomerSummary reports the canonical repurchase metric: the share of
// customers who ordered at least twice within the subset.
func CustomerSummary(rows []models.DerivedRow) models.CustomerSummary {
	orders := map[string]int{}
	for _, r := range rows {
		orders[r.CustomerID]++
	}
	repeat := 0
	for _, n := range orders {
		if n >= 2 {
			repeat++
		}
	}
	return models.CustomerSummary{
		UniqueCustomers:    len(orders),
		RepeatCustomers:    repeat,
		RepeatCustomerRate: safePct(float64(repeat), float64(len(orders))),
	}
}

// FrequencyDistribution buckets customers by order count, ascending
func FrequencyDistribution(rows []models.DerivedRow) []models.FrequencyBucket {
	orders := map[string]int{}
	for _, r := range rows {
		orders[r.CustomerID]++
	}
	counts := map[int]int{}
	for _, n := range orders {
		counts[n]++
	}
	keys := make([]int, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	out := make([]models.FrequencyBucket, len(keys))
	for i, k := range keys {
		out[i] = models.FrequencyBucket{Orders: k, Customers: counts[k]}
	}
	return out
}
