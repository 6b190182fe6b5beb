package models

import "time"

// DashboardOverview is the KPI strip shown at the top of every dashboard view
type DashboardOverview struct {
	TotalSales    float64 `json:"total_sales"`     // Sum of paid amounts in the filtered subset
	TotalProfit   float64 `json:"total_profit"`    // Sum of per-row profit
	OrderCount    int     `json:"order_count"`     // Number of order rows
	NetQty        float64 `json:"net_qty"`         // Units actually shipped (ordered - cancelled)
	AvgOrderValue float64 `json:"avg_order_value"` // Total sales / order count
	AvgMarginPct  float64 `json:"avg_margin_pct"`  // Total profit / total sales * 100
	CancelRatePct float64 `json:"cancel_rate_pct"` // Cancelled qty / ordered qty * 100
}

// Aggregate is one summary row for a grouping dimension (seller, variety,
// region, channel, date, weekday, hour, customer).
type Aggregate struct {
	Key                string  `json:"key"`
	TotalSales         float64 `json:"total_sales"`
	TotalProfit        float64 `json:"total_profit"`
	OrderCount         int     `json:"order_count"`
	UniqueCustomers    int     `json:"unique_customers"`
	OrderedQty         float64 `json:"ordered_qty"`
	CancelledQty       float64 `json:"cancelled_qty"`
	NetQty             float64 `json:"net_qty"`
	MarginPct          float64 `json:"margin_pct"`
	CancelRatePct      float64 `json:"cancel_rate_pct"`
	OrdersPerCustomer  float64 `json:"orders_per_customer"`  // order count / unique customers
	RepeatCustomerRate float64 `json:"repeat_customer_rate"` // customers with 2+ orders / unique customers * 100
	SalesSharePct      float64 `json:"sales_share_pct"`      // share of subset revenue
}

// DailySales is one point of the revenue trend line
type DailySales struct {
	Date       string  `json:"date"` // YYYY-MM-DD
	TotalSales float64 `json:"total_sales"`
	OrderCount int     `json:"order_count"`
}

// HeatmapCell is one weekday x hour revenue cell of the purchase-pattern view
type HeatmapCell struct {
	Weekday    string  `json:"weekday"`
	Hour       int     `json:"hour"`
	TotalSales float64 `json:"total_sales"`
}

// CustomerRFM scores one customer within the filtered subset
type CustomerRFM struct {
	CustomerID  string  `json:"customer_id"`
	RecencyDays int     `json:"recency_days"` // days since the customer's last order, vs subset max date + 1
	Frequency   int     `json:"frequency"`    // order count
	Monetary    float64 `json:"monetary"`     // total paid
	RScore      int     `json:"r_score"`      // 1-5, 5 = most recent
	FScore      int     `json:"f_score"`      // 1-5, 5 = most frequent
	MScore      int     `json:"m_score"`      // 1-5, 5 = highest spend
	TotalScore  int     `json:"total_score"`  // R + F + M, 3-15
	Segment     string  `json:"segment"`
}

// RFM segment labels, also used when a precomputed segment file is consumed
const (
	SegmentVIP     = "VIP"
	SegmentLoyal   = "Loyal"
	SegmentNew     = "New"
	SegmentAtRisk  = "At-risk"
	SegmentRegular = "Regular"
)

// SegmentCount is one slice of the segment-distribution chart
type SegmentCount struct {
	Segment   string  `json:"segment"`
	Customers int     `json:"customers"`
	SharePct  float64 `json:"share_pct"`
}

// CustomerSummary reports repurchase behaviour over the filtered subset
type CustomerSummary struct {
	UniqueCustomers    int     `json:"unique_customers"`
	RepeatCustomers    int     `json:"repeat_customers"`     // customers with 2+ orders
	RepeatCustomerRate float64 `json:"repeat_customer_rate"` // repeat / unique * 100
}

// FrequencyBucket counts customers by how many orders they placed
type FrequencyBucket struct {
	Orders    int `json:"orders"`
	Customers int `json:"customers"`
}

// SellerActivity classifies a seller by days since their last order.
// Independent of customer RFM segmentation: different entity, different buckets.
type SellerActivity struct {
	SellerName    string    `json:"seller_name"`
	LastOrderDate time.Time `json:"last_order_date"`
	DormantDays   int       `json:"dormant_days"` // dataset max date - seller max order date
	RiskBucket    string    `json:"risk_bucket"`
	TotalSales    float64   `json:"total_sales"`
	OrderCount    int       `json:"order_count"`
}

// Churn-risk buckets for seller activity
const (
	RiskStable        = "stable"          // last order within 7 days
	RiskCaution       = "caution"         // 8-14 days
	RiskAtRisk        = "at-risk"         // 15-30 days
	RiskChurnedLikely = "churned-suspect" // over 30 days
)

// ConcentrationReport is the HHI of a group over a sub-dimension
type ConcentrationReport struct {
	Group  string       `json:"group"`
	HHI    float64      `json:"hhi"`  // sum of squared percentage shares, 0-10000
	Band   string       `json:"band"` // high / balanced / fragmented
	Shares []GroupShare `json:"shares"`
}

// GroupShare is one sub-entity's revenue share within a group
type GroupShare struct {
	Name     string  `json:"name"`
	Total    float64 `json:"total"`
	SharePct float64 `json:"share_pct"` // 0-100
}

// HHI concentration bands
const (
	BandHighConcentration = "high" // HHI > 5000, single-seller/channel dependency risk
	BandBalanced          = "balanced"
	BandFragmented        = "fragmented" // HHI < 2000, dilution risk
)

// FunnelReport holds the three-stage visit -> click -> order conversion
type FunnelReport struct {
	Visits          float64 `json:"visits"`
	Clicks          float64 `json:"clicks"`
	Orders          int     `json:"orders"`
	VisitToClickPct float64 `json:"visit_to_click_pct"`
	ClickToOrderPct float64 `json:"click_to_order_pct"`
	VisitToOrderPct float64 `json:"visit_to_order_pct"`
}

// SellerCVR is one seller's click -> order conversion rate
type SellerCVR struct {
	SellerName string  `json:"seller_name"`
	Clicks     float64 `json:"clicks"`
	Orders     int     `json:"orders"`
	CVRPct     float64 `json:"cvr_pct"`
}

// RegionProfile describes one of the top revenue regions
type RegionProfile struct {
	Region          string              `json:"region"`
	TotalSales      float64             `json:"total_sales"`
	VarietyShares   []Aggregate         `json:"variety_shares"`
	PriceBandOrders []Aggregate         `json:"price_band_orders"`
	SellerHHI       ConcentrationReport `json:"seller_hhi"`
}

// SellerChannelMatrix is the top-seller x channel revenue heatmap
type SellerChannelMatrix struct {
	Sellers  []string    `json:"sellers"`
	Channels []string    `json:"channels"`
	Revenue  [][]float64 `json:"revenue"` // [seller][channel]
}

// GiftSetBreakdown is one variety/size cell of the gift-set sunburst
type GiftSetBreakdown struct {
	Variety    string  `json:"variety"`
	FruitSize  string  `json:"fruit_size"`
	TotalSales float64 `json:"total_sales"`
}

// ── Composite endpoint payloads ──────────────────────────────────────────────

// SalesTrendResponse backs the sales-trend tab
type SalesTrendResponse struct {
	Daily           []DailySales `json:"daily"`
	WeekdayTotals   []Aggregate  `json:"weekday_totals"`
	PriceBandShares []Aggregate  `json:"price_band_shares"`
}

// VarietyMixResponse backs the product/variety tab
type VarietyMixResponse struct {
	Shares        []Aggregate        `json:"shares"`
	Profitability []Aggregate        `json:"profitability"` // varieties above the revenue floor, by margin desc
	GiftSets      []GiftSetBreakdown `json:"gift_sets"`
}

// SellerActivityResponse backs the seller churn-risk tab
type SellerActivityResponse struct {
	BucketCounts []SegmentCount   `json:"bucket_counts"` // reused shape: bucket name + seller count + share
	MostDormant  []SellerActivity `json:"most_dormant"`
}

// PurchasePatternResponse backs the weekday/hour heatmap tab
type PurchasePatternResponse struct {
	Cells       []HeatmapCell `json:"cells"`
	PeakWeekday string        `json:"peak_weekday"`
	PeakHour    int           `json:"peak_hour"`
}

// CustomerInsightsResponse backs the customer/repurchase tab
type CustomerInsightsResponse struct {
	Summary       CustomerSummary   `json:"summary"`
	Frequency     []FrequencyBucket `json:"frequency"`
	Segments      []SegmentCount    `json:"segments"`
	SegmentSource string            `json:"segment_source"` // "rfm" or "precomputed"
	Customers     []CustomerRFM     `json:"customers,omitempty"`
}

// FunnelResponse backs the conversion tab
type FunnelResponse struct {
	Funnel     FunnelReport `json:"funnel"`
	SellerCVRs []SellerCVR  `json:"seller_cvrs"`
}

// RegionalResponse backs the regional-characteristics tab
type RegionalResponse struct {
	Regions []RegionProfile `json:"regions"`
}

// SellerPerformanceResponse backs the seller deep-dive tab
type SellerPerformanceResponse struct {
	Sellers []Aggregate `json:"sellers"`
	Top     []Aggregate `json:"top"`
}
