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

// GetFilterOptions godoc
// @Summary Get sidebar filter options
// @Description Returns the date bounds and the Top-10-plus-other seller and variety option lists, computed over the full dataset
// @Tags Dashboard - Analytics
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /dashboard/filter-options [get]
func GetFilterOptions(c *gin.Context) {
	log.Printf("[dashboard.filter-options] start")

	all, stats, err := services.LoadDataset(config.DataDir(), config.PipelineOptions())
	if err != nil {
		log.Printf("[dashboard.filter-options] ERROR dataset load err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Sales dataset is not available"))
		return
	}

	minDate, maxDate := "", ""
	for _, r := range all {
		d := r.OrderDate.Format("2006-01-02")
		if minDate == "" || d < minDate {
			minDate = d
		}
		if d > maxDate {
			maxDate = d
		}
	}

	options := gin.H{
		"min_date":  minDate,
		"max_date":  maxDate,
		"sellers":   pipeline.FilterValues(all, pipeline.DimensionSeller, pipeline.DefaultTopN),
		"varieties": pipeline.FilterValues(all, pipeline.DimensionVariety, pipeline.DefaultTopN),
		"row_count": len(all),
		"clean":     stats,
	}

	log.Printf("[dashboard.filter-options] respond 200 rows=%d range=%s..%s", len(all), minDate, maxDate)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter options retrieved successfully", options))
}
