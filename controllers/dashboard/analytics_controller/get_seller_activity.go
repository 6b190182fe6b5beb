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

// GetSellerActivity godoc
// @Summary Get seller churn-risk classification
// @Description Returns churn-risk bucket counts and the most dormant sellers, computed over the full dataset regardless of the active filter
// @Tags Dashboard - Analytics
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.SellerActivityResponse}
// @Failure 500 {object} models.ApiResponse
// @Router /dashboard/seller-activity [get]
func GetSellerActivity(c *gin.Context) {
	log.Printf("[dashboard.seller-activity] start")

	// full dataset on purpose: dormancy is measured against the dataset's
	// own latest order date, not the filtered window
	all, _, err := services.LoadDataset(config.DataDir(), config.PipelineOptions())
	if err != nil {
		log.Printf("[dashboard.seller-activity] ERROR dataset load err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Sales dataset is not available"))
		return
	}

	activity := pipeline.SellerActivity(all)

	buckets := []string{models.RiskStable, models.RiskCaution, models.RiskAtRisk, models.RiskChurnedLikely}
	counts := map[string]int{}
	for _, a := range activity {
		counts[a.RiskBucket]++
	}
	bucketCounts := make([]models.SegmentCount, len(buckets))
	for i, b := range buckets {
		share := 0.0
		if len(activity) > 0 {
			share = float64(counts[b]) / float64(len(activity)) * 100
		}
		bucketCounts[i] = models.SegmentCount{Segment: b, Customers: counts[b], SharePct: share}
	}

	dormant := pipeline.SortByDormantDesc(activity)
	if len(dormant) > 10 {
		dormant = dormant[:10]
	}

	resp := models.SellerActivityResponse{BucketCounts: bucketCounts, MostDormant: dormant}

	log.Printf("[dashboard.seller-activity] respond 200 sellers=%d", len(activity))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Seller activity retrieved successfully", resp))
}
