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

// GetFunnel godoc
// @Summary Get funnel conversion
// @Description Returns visit->click->order conversion rates and per-seller CVRs. Degrades to an unavailable response when the click or visit logs are missing.
// @Tags Dashboard - Analytics
// @Produce json
// @Param start query string false "Start date (YYYY-MM-DD)"
// @Param end query string false "End date (YYYY-MM-DD)"
// @Param sellers query string false "Comma-separated seller filter values"
// @Param varieties query string false "Comma-separated variety filter values"
// @Success 200 {object} models.ApiResponse{data=models.FunnelResponse}
// @Failure 500 {object} models.ApiResponse
// @Router /dashboard/funnel [get]
func GetFunnel(c *gin.Context) {
	log.Printf("[dashboard.funnel] start")

	all, rows, ok := loadFiltered(c, "dashboard.funnel")
	if !ok {
		return
	}

	clicks, err := services.LoadClickCounts(config.DataDir())
	if err != nil {
		log.Printf("[dashboard.funnel] click log unavailable err=%v", err)
		c.JSON(http.StatusOK, models.UnavailableResponse(c, "Click log not found; conversion analysis is unavailable"))
		return
	}

	// visit log is optional on top of the click log: without it only the
	// click->order stage can be reported
	visits, err := services.LoadVisitTotal(config.DataDir())
	if err != nil {
		log.Printf("[dashboard.funnel] visit log unavailable err=%v", err)
		visits = 0
	}

	resp := models.FunnelResponse{
		Funnel:     pipeline.FunnelRates(visits, services.TotalClicks(clicks), len(rows)),
		SellerCVRs: pipeline.SellerCVRs(all, rows, clicks),
	}
	if len(resp.SellerCVRs) > 15 {
		resp.SellerCVRs = resp.SellerCVRs[:15]
	}

	log.Printf("[dashboard.funnel] respond 200 visits=%.0f clicks=%.0f orders=%d",
		resp.Funnel.Visits, resp.Funnel.Clicks, resp.Funnel.Orders)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Funnel conversion retrieved successfully", resp))
}
