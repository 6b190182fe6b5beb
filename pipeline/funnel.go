package pipeline

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/dgeast/jeju-sale1/models"
)

var leadingIntRe = regexp.MustCompile(`^(\d+)`)

// ExtractLeadingInt pulls the first contiguous digit run out of a free-text
// count cell, after stripping thousands-separator commas. The log exports
// pack several numbers into one cell ("16649 1551 (9.32%)" means 16649
// visits); only the leading run counts. Anything else extracts to 0.
func ExtractLeadingInt(s string) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	m := leadingIntRe.FindString(s)
	if m == "" {
		return 0
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return v
}

// FunnelRates computes the two sequential conversion rates plus the
// end-to-end one. Zero denominators resolve to 0, as everywhere else.
func FunnelRates(visits, clicks float64, orders int) models.FunnelReport {
	return models.FunnelReport{
		Visits:          visits,
		Clicks:          clicks,
		Orders:          orders,
		VisitToClickPct: safePct(clicks, visits),
		ClickToOrderPct: safePct(float64(orders), clicks),
		VisitToOrderPct: safePct(float64(orders), visits),
	}
}

// ClickCount is a per-product click total from the click log
type ClickCount struct {
	ProductCode string
	Clicks      float64
}

// SellerCVRs joins click counts to sellers through the first-seen
// product-code mapping of the full dataset, then computes each seller's
// click-to-order conversion over the filtered subset. Sellers without a
// single click are dropped: a rate with no exposure is meaningless.
func SellerCVRs(allRows []models.OrderRow, filtered []models.DerivedRow, clicks []ClickCount) []models.SellerCVR {
	productSeller := map[string]string{}
	for _, r := range allRows {
		if r.ProductCode == "" {
			continue
		}
		if _, ok := productSeller[r.ProductCode]; !ok {
			productSeller[r.ProductCode] = r.SellerName
		}
	}

	sellerClicks := map[string]float64{}
	for _, c := range clicks {
		if seller, ok := productSeller[c.ProductCode]; ok {
			sellerClicks[seller] += c.Clicks
		}
	}

	sellerOrders := map[string]int{}
	order := []string{}
	for _, r := range filtered {
		if _, seen := sellerOrders[r.SellerName]; !seen {
			order = append(order, r.SellerName)
		}
		sellerOrders[r.SellerName]++
	}

	out := make([]models.SellerCVR, 0, len(order))
	for _, seller := range order {
		cl := sellerClicks[seller]
		if cl <= 0 {
			continue
		}
		out = append(out, models.SellerCVR{
			SellerName: seller,
			Clicks:     cl,
			Orders:     sellerOrders[seller],
			CVRPct:     safePct(float64(sellerOrders[seller]), cl),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CVRPct > out[j].CVRPct
	})
	return out
}
