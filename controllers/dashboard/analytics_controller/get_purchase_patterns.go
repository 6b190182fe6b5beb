package analytics_controller

import (
	"log"
	"net/http"

	"github.com/dgeast/jeju-sale1/models"
	"github.com/gin-gonic/gin"
)

// GetPurchasePatterns godoc
// @Summary Get weekday/hour purchase patterns
// @Description Returns the weekday x hour revenue heatmap for the filtered subset plus its peak cell
// @Tags Dashboard - Analytics
// @Produce json
// @Param start query string false "Start date (YYYY-MM-DD)"
// @Param end query string false "End date (YYYY-MM-DD)"
// @Param sellers query string false "Comma-separated seller filter values"
// @Param varieties query string false "Comma-separated variety filter values"
// @Success 200 {object} models.ApiResponse{data=models.PurchasePatternResponse}
// @Failure 500 {object} models.ApiResponse
// @Router /dashboard/purchase-patterns [get]
func GetPurchasePatterns(c *gin.Context) {
	log.Printf("[dashboard.purchase-patterns] start")

	_, rows, ok := loadFiltered(c, "dashboard.purchase-patterns")
	if !ok {
		return
	}

	// 7x24 dense grid so the heatmap renders empty cells as zero
	totals := map[string][24]float64{}
	for _, day := range weekdayOrder {
		totals[day] = [24]float64{}
	}
	for _, r := range rows {
		day := r.OrderedAt.Weekday().String()
		hour := r.OrderedAt.Hour()
		cells := totals[day]
		cells[hour] += r.PaidAmount
		totals[day] = cells
	}

	cells := make([]models.HeatmapCell, 0, 7*24)
	peak := models.HeatmapCell{Hour: -1}
	for _, day := range weekdayOrder {
		for hour := 0; hour < 24; hour++ {
			cell := models.HeatmapCell{Weekday: day, Hour: hour, TotalSales: totals[day][hour]}
			cells = append(cells, cell)
			if cell.TotalSales > peak.TotalSales {
				peak = cell
			}
		}
	}

	resp := models.PurchasePatternResponse{
		Cells:       cells,
		PeakWeekday: peak.Weekday,
		PeakHour:    peak.Hour,
	}

	log.Printf("[dashboard.purchase-patterns] respond 200 peak=%s %dh", peak.Weekday, peak.Hour)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Purchase patterns retrieved successfully", resp))
}
