package pipeline

import "github.com/dgeast/jeju-sale1/models"

// HHI thresholds on the 0-10000 scale
const (
	hhiHighThreshold       = 5000
	hhiFragmentedThreshold = 2000
)

// HHI sums the squared percentage shares (0-100 scale), so a single entity
// holding 100% yields 10000 and an infinitely fragmented group tends to 0.
func HHI(shares []models.GroupShare) float64 {
	var hhi float64
	for _, s := range shares {
		hhi += s.SharePct * s.SharePct
	}
	return hhi
}

// HHIBand classifies a concentration index: high means single-entity
// dependency risk, fragmented means dilution risk.
func HHIBand(hhi float64) string {
	switch {
	case hhi > hhiHighThreshold:
		return models.BandHighConcentration
	case hhi < hhiFragmentedThreshold:
		return models.BandFragmented
	default:
		return models.BandBalanced
	}
}

// Concentration computes a group's revenue shares over a sub-dimension and
// the resulting HHI. A group with zero total sales reports HHI 0.
func Concentration(group string, rows []models.DerivedRow, subDim Dimension) models.ConcentrationReport {
	aggs := SortBySalesDesc(AggregateBy(rows, subDim))

	var total float64
	for _, a := range aggs {
		total += a.TotalSales
	}

	shares := make([]models.GroupShare, 0, len(aggs))
	for _, a := range aggs {
		shares = append(shares, models.GroupShare{
			Name:     a.Key,
			Total:    a.TotalSales,
			SharePct: safePct(a.TotalSales, total),
		})
	}

	hhi := HHI(shares)
	return models.ConcentrationReport{
		Group:  group,
		HHI:    hhi,
		Band:   HHIBand(hhi),
		Shares: shares,
	}
}
