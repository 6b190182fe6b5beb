package main

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/dgeast/jeju-sale1/config"
	"github.com/dgeast/jeju-sale1/controllers/dashboard/report_controller"
	"github.com/dgeast/jeju-sale1/models"
	"github.com/dgeast/jeju-sale1/pipeline"
	"github.com/dgeast/jeju-sale1/services"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main runs the one-shot batch analysis: seller comprehensive metrics,
// channel and region breakdowns as CSVs, plus the KPI summary PDF.
// Usage: go run cmd/report/main.go
// This is a standalone CLI tool, not part of the API server.
func main() {
	runID := uuid.New().String()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("JEJU SALES - Batch Report Generator")
	fmt.Println("run " + runID)
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	rows, stats, err := services.LoadDataset(config.DataDir(), config.PipelineOptions())
	if err != nil {
		log.Fatalf("❌ Sales dataset not found under %s: %v", config.DataDir(), err)
	}
	log.Printf("✓ Dataset loaded: %d rows (%d dropped for bad dates)", len(rows), stats.DroppedBadDates)

	analysisDir := config.AnalysisDir()
	reportDir := config.ReportDir()
	for _, dir := range []string{analysisDir, reportDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("❌ Failed to create output directory %s: %v", dir, err)
		}
	}

	derived := pipeline.DeriveRows(rows)

	if err := writeSellerMetrics(filepath.Join(analysisDir, "seller_comprehensive_metrics.csv"), rows); err != nil {
		log.Fatalf("❌ Failed to write seller metrics: %v", err)
	}
	log.Println("✓ Seller comprehensive metrics written")

	for _, breakdown := range []struct {
		file string
		dim  pipeline.Dimension
	}{
		{"channel_analysis.csv", pipeline.DimensionChannel},
		{"region_analysis.csv", pipeline.DimensionRegion},
	} {
		aggs := pipeline.SortBySalesDesc(pipeline.AggregateBy(derived, breakdown.dim))
		if err := writeBreakdown(filepath.Join(analysisDir, breakdown.file), string(breakdown.dim), aggs); err != nil {
			log.Fatalf("❌ Failed to write %s: %v", breakdown.file, err)
		}
		log.Printf("✓ %s written", breakdown.file)
	}

	// KPI summary PDF, same layout the dashboard download serves
	overview := pipeline.Overview(derived)
	topSellers := pipeline.TopN(pipeline.AggregateBy(derived, pipeline.DimensionSeller), 10)
	pdfBuffer, err := report_controller.BuildSummaryPDF(overview, topSellers)
	if err != nil {
		log.Fatalf("❌ Failed to build summary PDF: %v", err)
	}
	pdfPath := filepath.Join(reportDir, "sales_summary.pdf")
	if err := os.WriteFile(pdfPath, pdfBuffer.Bytes(), 0o644); err != nil {
		log.Fatalf("❌ Failed to write summary PDF: %v", err)
	}
	log.Printf("✓ Summary PDF written to %s", pdfPath)

	fmt.Println()
	fmt.Println("Analysis complete.")
}

// writeSellerMetrics reproduces the comprehensive seller table: revenue,
// order and customer counts plus reorder/churn rates. A reorder is any
// order past a customer's first with that seller.
func writeSellerMetrics(path string, rows []models.OrderRow) error {
	type sellerMetrics struct {
		seller              string
		totalSales          float64
		totalOrders         int
		customerOrders      map[string]int
		reorderingCustomers int
		totalReorders       int
	}

	bySeller := map[string]*sellerMetrics{}
	order := []string{}
	for _, r := range rows {
		m, ok := bySeller[r.SellerName]
		if !ok {
			m = &sellerMetrics{seller: r.SellerName, customerOrders: map[string]int{}}
			bySeller[r.SellerName] = m
			order = append(order, r.SellerName)
		}
		m.totalSales += r.PaidAmount
		m.totalOrders++
		m.customerOrders[r.CustomerID]++
	}

	for _, m := range bySeller {
		for _, n := range m.customerOrders {
			if n > 1 {
				m.reorderingCustomers++
				m.totalReorders += n - 1
			}
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return bySeller[order[i]].totalSales > bySeller[order[j]].totalSales
	})

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"seller", "total_sales", "total_orders", "unique_customers", "reordering_customers", "total_reorders", "reorder_rate", "churn_rate"}); err != nil {
		return err
	}
	for _, name := range order {
		m := bySeller[name]
		unique := len(m.customerOrders)
		reorderRate := 0.0
		if unique > 0 {
			reorderRate = float64(m.reorderingCustomers) / float64(unique) * 100
		}
		if err := w.Write([]string{
			m.seller,
			strconv.FormatFloat(m.totalSales, 'f', 0, 64),
			strconv.Itoa(m.totalOrders),
			strconv.Itoa(unique),
			strconv.Itoa(m.reorderingCustomers),
			strconv.Itoa(m.totalReorders),
			strconv.FormatFloat(reorderRate, 'f', 2, 64),
			strconv.FormatFloat(100-reorderRate, 'f', 2, 64),
		}); err != nil {
			return err
		}
	}
	return w.Error()
}

// writeBreakdown writes one dimension's revenue-sorted summary table
func writeBreakdown(path, dimension string, aggs []models.Aggregate) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{dimension, "total_sales", "total_profit", "order_count", "unique_customers", "margin_pct", "cancel_rate_pct"}); err != nil {
		return err
	}
	for _, a := range aggs {
		if err := w.Write([]string{
			a.Key,
			strconv.FormatFloat(a.TotalSales, 'f', 0, 64),
			strconv.FormatFloat(a.TotalProfit, 'f', 0, 64),
			strconv.Itoa(a.OrderCount),
			strconv.Itoa(a.UniqueCustomers),
			strconv.FormatFloat(a.MarginPct, 'f', 2, 64),
			strconv.FormatFloat(a.CancelRatePct, 'f', 2, 64),
		}); err != nil {
			return err
		}
	}
	return w.Error()
}
