package analytics_controller

import (
	"log"
	"net/http"

	"github.com/dgeast/jeju-sale1/models"
	"github.com/dgeast/jeju-sale1/pipeline"
	"github.com/gin-gonic/gin"
)

// GetOverview godoc
// @Summary Get KPI overview
// @Description Returns the KPI strip for the filtered subset: total sales, profit, order count, net quantity, average order value, margin and cancel rate
// @Tags Dashboard - Analytics
// @Produce json
// @Param start query string false "Start date (YYYY-MM-DD)"
// @Param end query string false "End date (YYYY-MM-DD)"
// @Param sellers query string false "Comma-separated seller filter values"
// @Param varieties query string false "Comma-separated variety filter values"
// @Success 200 {object} models.ApiResponse{data=models.DashboardOverview}
// @Failure 500 {object} models.ApiResponse
// @Router /dashboard/overview [get]
func GetOverview(c *gin.Context) {
	log.Printf("[dashboard.overview] start")

	_, rows, ok := loadFiltered(c, "dashboard.overview")
	if !ok {
		return
	}

	overview := pipeline.Overview(rows)

	log.Printf("[dashboard.overview] respond 200 sales=%.0f orders=%d margin=%.1f%%",
		overview.TotalSales, overview.OrderCount, overview.AvgMarginPct)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Overview retrieved successfully", overview))
}
