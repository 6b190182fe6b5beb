package analytics_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/dgeast/jeju-sale1/models"
	"github.com/dgeast/jeju-sale1/pipeline"
	"github.com/gin-gonic/gin"
)

// GetSellerPerformance godoc
// @Summary Get seller performance
// @Description Returns the per-seller deep table (revenue, profit, margin, cancel rate, repeat-customer rate) plus the top-N selection used by the scatter charts
// @Tags Dashboard - Analytics
// @Produce json
// @Param start query string false "Start date (YYYY-MM-DD)"
// @Param end query string false "End date (YYYY-MM-DD)"
// @Param sellers query string false "Comma-separated seller filter values"
// @Param varieties query string false "Comma-separated variety filter values"
// @Param top query int false "Top-N seller count for the chart selection (default 15)"
// @Success 200 {object} models.ApiResponse{data=models.SellerPerformanceResponse}
// @Failure 500 {object} models.ApiResponse
// @Router /dashboard/seller-performance [get]
func GetSellerPerformance(c *gin.Context) {
	log.Printf("[dashboard.seller-performance] start")

	_, rows, ok := loadFiltered(c, "dashboard.seller-performance")
	if !ok {
		return
	}

	topN := 15
	if v, err := strconv.Atoi(c.DefaultQuery("top", "15")); err == nil && v > 0 {
		topN = v
	}

	sellers := pipeline.SortBySalesDesc(pipeline.AggregateBy(rows, pipeline.DimensionSeller))
	top := sellers
	if len(top) > topN {
		top = top[:topN]
	}

	resp := models.SellerPerformanceResponse{Sellers: sellers, Top: top}

	log.Printf("[dashboard.seller-performance] respond 200 sellers=%d", len(sellers))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Seller performance retrieved successfully", resp))
}
