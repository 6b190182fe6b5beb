package models

import "time"

// Categorical sentinel labels substituted during cleaning. Filling happens
// before any grouping so missing values never drop rows out of an aggregate.
const (
	UnassignedSeller   = "unassigned"
	UnassignedCustomer = "unassigned"
	OtherVariety       = "other"
	OtherChannel       = "other"
	UndeterminedRegion = "undetermined"
	OutsideTopNLabel   = "Other (outside top 10)"
	GiftSetLabel       = "gift"
)

// OrderRow is one cleaned transaction-line record from the preprocessed
// sales export. One order number may span several rows.
type OrderRow struct {
	OrderID      string    `json:"order_id"`
	CustomerID   string    `json:"customer_id"` // "unassigned" when the export has no UID
	SellerName   string    `json:"seller_name"`
	Variety      string    `json:"variety"`
	Region       string    `json:"region"`
	Channel      string    `json:"channel"`
	ProductCode  string    `json:"product_code"`
	OrderedAt    time.Time `json:"ordered_at"`
	OrderDate    time.Time `json:"order_date"` // OrderedAt truncated to day, for date-keyed grouping
	PaidAmount   float64   `json:"paid_amount"`
	SupplyPrice  float64   `json:"supply_price"` // supply unit price as exported, pre-division
	OrderedQty   float64   `json:"ordered_qty"`
	CancelledQty float64   `json:"cancelled_qty"`
	NetQty       float64   `json:"net_qty"`    // ordered - cancelled
	GiftSet      string    `json:"gift_set"`   // "gift" or anything else
	EventItem    string    `json:"event_item"` // boolean-like category from the export
	FruitSize    string    `json:"fruit_size"`
	PriceBand    string    `json:"price_band"`
	GradeGroup   string    `json:"grade_group"`
}

// DerivedRow is an OrderRow plus the computed per-row fields. Recomputed on
// every change to the active filter, never persisted.
type DerivedRow struct {
	OrderRow
	UnitSupplyPrice float64 `json:"unit_supply_price"` // supply price / ordered qty, 0 on zero qty
	Profit          float64 `json:"profit"`            // paid - unit supply price * net qty
	MarginPct       float64 `json:"margin_pct"`        // profit / paid * 100, 0 on zero paid
}
