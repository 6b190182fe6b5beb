package analytics_controller

import (
	"log"
	"net/http"
	"sort"

	"github.com/dgeast/jeju-sale1/models"
	"github.com/dgeast/jeju-sale1/pipeline"
	"github.com/gin-gonic/gin"
)

// chart ordering for the weekday bar, Monday first
var weekdayOrder = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// GetSalesTrend godoc
// @Summary Get sales trend
// @Description Returns daily revenue/order counts, weekday totals and price-band revenue shares for the filtered subset
// @Tags Dashboard - Analytics
// @Produce json
// @Param start query string false "Start date (YYYY-MM-DD)"
// @Param end query string false "End date (YYYY-MM-DD)"
// @Param sellers query string false "Comma-separated seller filter values"
// @Param varieties query string false "Comma-separated variety filter values"
// @Success 200 {object} models.ApiResponse{data=models.SalesTrendResponse}
// @Failure 500 {object} models.ApiResponse
// @Router /dashboard/sales-trend [get]
func GetSalesTrend(c *gin.Context) {
	log.Printf("[dashboard.sales-trend] start")

	_, rows, ok := loadFiltered(c, "dashboard.sales-trend")
	if !ok {
		return
	}

	// ================================
	// Daily revenue trend (chronological)
	// ================================
	dailyAggs := pipeline.AggregateBy(rows, pipeline.DimensionDate)
	sort.SliceStable(dailyAggs, func(i, j int) bool { return dailyAggs[i].Key < dailyAggs[j].Key })
	daily := make([]models.DailySales, len(dailyAggs))
	for i, a := range dailyAggs {
		daily[i] = models.DailySales{Date: a.Key, TotalSales: a.TotalSales, OrderCount: a.OrderCount}
	}

	// ================================
	// Weekday totals (fixed Monday-first order)
	// ================================
	weekdayAggs := pipeline.AggregateBy(rows, pipeline.DimensionWeekday)
	byDay := map[string]models.Aggregate{}
	for _, a := range weekdayAggs {
		byDay[a.Key] = a
	}
	weekdays := make([]models.Aggregate, 0, len(weekdayOrder))
	for _, day := range weekdayOrder {
		a := byDay[day]
		a.Key = day
		weekdays = append(weekdays, a)
	}

	// ================================
	// Price-band revenue shares
	// ================================
	bands := pipeline.SortBySalesDesc(pipeline.AggregateBy(rows, pipeline.DimensionPriceBand))

	resp := models.SalesTrendResponse{
		Daily:           daily,
		WeekdayTotals:   weekdays,
		PriceBandShares: bands,
	}

	log.Printf("[dashboard.sales-trend] respond 200 days=%d", len(daily))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Sales trend retrieved successfully", resp))
}
