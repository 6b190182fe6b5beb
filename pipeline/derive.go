package pipeline

import "github.com/dgeast/jeju-sale1/models"

// Derive computes the per-row profit fields. The unit supply price divides
// by the pre-cancellation order quantity (cost basis is what was procured),
// while profit applies that unit cost only to units that were not cancelled.
func Derive(row models.OrderRow) models.DerivedRow {
	unit := safeDiv(row.SupplyPrice, row.OrderedQty)
	profit := row.PaidAmount - unit*row.NetQty
	return models.DerivedRow{
		OrderRow:        row,
		UnitSupplyPrice: unit,
		Profit:          profit,
		MarginPct:       safePct(profit, row.PaidAmount),
	}
}

// DeriveRows derives the whole subset in original order
func DeriveRows(rows []models.OrderRow) []models.DerivedRow {
	out := make([]models.DerivedRow, len(rows))
	for i, r := range rows {
		out[i] = Derive(r)
	}
	return out
}
