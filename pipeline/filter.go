package pipeline

import (
	"sort"
	"time"

	"github.com/dgeast/jeju-sale1/models"
)

// DefaultTopN is the option-list size for the seller and variety filters
const DefaultTopN = 10

// Filter describes the active row subset. Zero dates mean unbounded; empty
// selections mean "all". Seller and variety selections operate on Top-N
// relabeled values, so the catch-all bucket itself is selectable.
type Filter struct {
	From      time.Time
	To        time.Time
	Sellers   []string
	Varieties []string
	TopN      int // 0 -> DefaultTopN
}

// ApplyFilter returns the rows matching the filter, in original order.
// Top-N relabeling is computed over the full unfiltered dataset first, per
// the dashboard's filter-column behaviour.
func ApplyFilter(rows []models.OrderRow, f Filter) []models.OrderRow {
	n := f.TopN
	if n <= 0 {
		n = DefaultTopN
	}

	topSellers := topNSet(rows, DimensionSeller, n)
	topVarieties := topNSet(rows, DimensionVariety, n)
	sellerSel := toSet(f.Sellers)
	varietySel := toSet(f.Varieties)

	out := make([]models.OrderRow, 0, len(rows))
	for _, r := range rows {
		if !f.From.IsZero() && r.OrderDate.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && r.OrderDate.After(f.To) {
			continue
		}
		if len(sellerSel) > 0 {
			if _, ok := sellerSel[relabel(r.SellerName, topSellers)]; !ok {
				continue
			}
		}
		if len(varietySel) > 0 {
			if _, ok := varietySel[relabel(r.Variety, topVarieties)]; !ok {
				continue
			}
		}
		out = append(out, r)
	}
	return out
}

// FilterValues returns the option list for a dimension filter: the top-N
// values by revenue, sorted by name, followed by the catch-all label.
func FilterValues(rows []models.OrderRow, dim Dimension, n int) []string {
	if n <= 0 {
		n = DefaultTopN
	}
	top := TopNKeys(rows, dim, n)
	sort.Strings(top)
	return append(top, models.OutsideTopNLabel)
}

// RelabelOutsideTopN rewrites a dimension's values outside the revenue
// top-N to the catch-all label. The union of top-N labels and the catch-all
// bucket exactly partitions the original values.
func RelabelOutsideTopN(rows []models.OrderRow, dim Dimension, n int) []models.OrderRow {
	if n <= 0 {
		n = DefaultTopN
	}
	top := topNSet(rows, dim, n)
	out := make([]models.OrderRow, len(rows))
	for i, r := range rows {
		switch dim {
		case DimensionSeller:
			r.SellerName = relabel(r.SellerName, top)
		case DimensionVariety:
			r.Variety = relabel(r.Variety, top)
		case DimensionRegion:
			r.Region = relabel(r.Region, top)
		case DimensionChannel:
			r.Channel = relabel(r.Channel, top)
		}
		out[i] = r
	}
	return out
}

// TopNKeys ranks a dimension's values by total revenue, descending, ties
// broken by first appearance in the data (stable sort).
func TopNKeys(rows []models.OrderRow, dim Dimension, n int) []string {
	totals := map[string]float64{}
	order := []string{}
	for _, r := range rows {
		k := dimensionKey(r, dim)
		if _, seen := totals[k]; !seen {
			order = append(order, k)
		}
		totals[k] += r.PaidAmount
	}
	sort.SliceStable(order, func(i, j int) bool {
		return totals[order[i]] > totals[order[j]]
	})
	if len(order) > n {
		order = order[:n]
	}
	return order
}

func topNSet(rows []models.OrderRow, dim Dimension, n int) map[string]struct{} {
	set := map[string]struct{}{}
	for _, k := range TopNKeys(rows, dim, n) {
		set[k] = struct{}{}
	}
	return set
}

func relabel(value string, top map[string]struct{}) string {
	if _, ok := top[value]; ok {
		return value
	}
	return models.OutsideTopNLabel
}

func toSet(values []string) map[string]struct{} {
	set := map[string]struct{}{}
	for _, v := range values {
		if v != "" {
			set[v] = struct{}{}
		}
	}
	return set
}
