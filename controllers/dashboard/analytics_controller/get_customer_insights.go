package analytics_controller

import (
	"log"
	"net/http"

	"github.com/dgeast/jeju-sale1/config"
	"github.com/dgeast/jeju-sale1/models"
	"github.com/dgeast/jeju-sale1/pipeline"
	"github.com/dgeast/jeju-sale1/services"
	"github.com/gin-gonic/gin"
)

// GetCustomerInsights godoc
// @Summary Get customer insights
// @Description Returns the repurchase summary, order-frequency distribution and RFM segment distribution for the filtered subset. A precomputed segment file bypasses RFM when present.
// @Tags Dashboard - Analytics
// @Produce json
// @Param start query string false "Start date (YYYY-MM-DD)"
// @Param end query string false "End date (YYYY-MM-DD)"
// @Param sellers query string false "Comma-separated seller filter values"
// @Param varieties query string false "Comma-separated variety filter values"
// @Param detail query bool false "Include per-customer RFM rows"
// @Success 200 {object} models.ApiResponse{data=models.CustomerInsightsResponse}
// @Failure 500 {object} models.ApiResponse
// @Router /dashboard/customer-insights [get]
func GetCustomerInsights(c *gin.Context) {
	log.Printf("[dashboard.customer-insights] start")

	_, rows, ok := loadFiltered(c, "dashboard.customer-insights")
	if !ok {
		return
	}

	resp := models.CustomerInsightsResponse{
		Summary:   pipeline.CustomerSummary(rows),
		Frequency: pipeline.FrequencyDistribution(rows),
	}

	// ================================
	// Segment distribution: precomputed file wins over RFM scoring
	// ================================
	if segments, err := services.LoadSegmentDistribution(config.DataDir()); err == nil {
		resp.Segments = segments
		resp.SegmentSource = "precomputed"
	} else {
		rfm := pipeline.BuildRFM(rows)
		resp.Segments = pipeline.SegmentDistribution(rfm)
		resp.SegmentSource = "rfm"
		if c.Query("detail") == "true" {
			resp.Customers = rfm
		}
	}

	log.Printf("[dashboard.customer-insights] respond 200 customers=%d source=%s",
		resp.Summary.UniqueCustomers, resp.SegmentSource)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Customer insights retrieved successfully", resp))
}
