package pipeline

import (
	"strings"
	"time"

	"github.com/dgeast/jeju-sale1/models"
)

// Column headers of the preprocessed sales export (Korean-language source)
const (
	ColOrderID     = "주문번호"
	ColCustomerID  = "UID"
	ColSeller      = "셀러명"
	ColVariety     = "품종"
	ColChannel     = "주문경로"
	ColRegion      = "광역지역(정식)"
	ColOrderedAt   = "주문일"
	ColPaidAmount  = "실결제 금액"
	ColUnifiedPay  = "결제금액"
	ColSupplyPrice = "공급단가"
	ColOrderedQty  = "주문수량"
	ColCancelQty   = "취소수량"
	ColNetQty      = "주문-취소 수량"
	ColProductCode = "상품코드"
	ColGiftSet     = "선물세트_여부"
	ColEventItem   = "이벤트 여부"
	ColFruitSize   = "과수 크기"
	ColPriceBand   = "가격대"
	ColGradeGroup  = "상품등급군"
)

// Options selects which cleaning-policy variant is active. The historical
// dashboards disagreed on these points; one parameterized pipeline replaces
// them.
type Options struct {
	// PreferUnifiedAmount falls back to the unified payment column when the
	// primary paid amount cleans to <= 0, but only if the fallback value is
	// itself positive.
	PreferUnifiedAmount bool
}

// CleanStats reports what the cleaner had to do to the raw records
type CleanStats struct {
	TotalRecords     int `json:"total_records"`
	DroppedBadDates  int `json:"dropped_bad_dates"`
	UnifiedFallbacks int `json:"unified_fallbacks"`
}

// datetime layouts seen in the exports, most specific first
var orderedAtLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02 15:04:05",
	"2006/01/02",
}

// CleanRows turns raw CSV records into typed order rows. It never fails on
// malformed input: bad numbers become 0, missing categoricals get their
// sentinel label, and only rows whose order datetime cannot be parsed are
// dropped, since every date-keyed aggregate downstream assumes a valid date.
func CleanRows(records []map[string]string, opts Options) ([]models.OrderRow, CleanStats) {
	rows := make([]models.OrderRow, 0, len(records))
	stats := CleanStats{TotalRecords: len(records)}

	for _, rec := range records {
		orderedAt, ok := parseOrderedAt(rec[ColOrderedAt])
		if !ok {
			stats.DroppedBadDates++
			continue
		}

		paid := parseMoney(rec[ColPaidAmount])
		if opts.PreferUnifiedAmount && paid <= 0 {
			if unified := parseMoney(rec[ColUnifiedPay]); unified > 0 {
				paid = unified
				stats.UnifiedFallbacks++
			}
		}

		ordered := parseQty(rec[ColOrderedQty])
		cancelled := parseQty(rec[ColCancelQty])
		net := ordered - cancelled
		if net < 0 {
			net = 0
		}

		rows = append(rows, models.OrderRow{
			OrderID:      strings.TrimSpace(rec[ColOrderID]),
			CustomerID:   fillCategory(rec[ColCustomerID], models.UnassignedCustomer),
			SellerName:   fillCategory(rec[ColSeller], models.UnassignedSeller),
			Variety:      fillCategory(rec[ColVariety], models.OtherVariety),
			Region:       fillCategory(rec[ColRegion], models.UndeterminedRegion),
			Channel:      fillCategory(rec[ColChannel], models.OtherChannel),
			ProductCode:  strings.TrimSpace(rec[ColProductCode]),
			OrderedAt:    orderedAt,
			OrderDate:    orderedAt.Truncate(24 * time.Hour),
			PaidAmount:   paid,
			SupplyPrice:  parseMoney(rec[ColSupplyPrice]),
			OrderedQty:   ordered,
			CancelledQty: cancelled,
			NetQty:       net,
			GiftSet:      normalizeGiftSet(rec[ColGiftSet]),
			EventItem:    strings.TrimSpace(rec[ColEventItem]),
			FruitSize:    strings.TrimSpace(rec[ColFruitSize]),
			PriceBand:    strings.TrimSpace(rec[ColPriceBand]),
			GradeGroup:   strings.TrimSpace(rec[ColGradeGroup]),
		})
	}

	return rows, stats
}

func parseOrderedAt(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range orderedAtLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func fillCategory(s, sentinel string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return sentinel
	}
	return s
}

// normalizeGiftSet maps the export's gift-set marker (Korean or English) to
// the canonical "gift" label
func normalizeGiftSet(s string) string {
	s = strings.TrimSpace(s)
	if s == "선물세트" || strings.EqualFold(s, models.GiftSetLabel) {
		return models.GiftSetLabel
	}
	return s
}
