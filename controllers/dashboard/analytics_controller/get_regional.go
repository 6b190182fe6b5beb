package analytics_controller

import (
	"log"
	"net/http"

	"github.com/dgeast/jeju-sale1/models"
	"github.com/dgeast/jeju-sale1/pipeline"
	"github.com/gin-gonic/gin"
)

// GetRegional godoc
// @Summary Get regional characteristics
// @Description Returns the top-3 revenue regions with their preferred varieties, price bands and seller-concentration HHI
// @Tags Dashboard - Analytics
// @Produce json
// @Param start query string false "Start date (YYYY-MM-DD)"
// @Param end query string false "End date (YYYY-MM-DD)"
// @Param sellers query string false "Comma-separated seller filter values"
// @Param varieties query string false "Comma-separated variety filter values"
// @Success 200 {object} models.ApiResponse{data=models.RegionalResponse}
// @Failure 500 {object} models.ApiResponse
// @Router /dashboard/regional [get]
func GetRegional(c *gin.Context) {
	log.Printf("[dashboard.regional] start")

	_, rows, ok := loadFiltered(c, "dashboard.regional")
	if !ok {
		return
	}

	topRegions := pipeline.TopN(pipeline.AggregateBy(rows, pipeline.DimensionRegion), 3)

	profiles := make([]models.RegionProfile, 0, len(topRegions))
	for _, region := range topRegions {
		regionRows := make([]models.DerivedRow, 0)
		for _, r := range rows {
			if r.Region == region.Key {
				regionRows = append(regionRows, r)
			}
		}

		profiles = append(profiles, models.RegionProfile{
			Region:          region.Key,
			TotalSales:      region.TotalSales,
			VarietyShares:   pipeline.SortBySalesDesc(pipeline.AggregateBy(regionRows, pipeline.DimensionVariety)),
			PriceBandOrders: pipeline.AggregateBy(regionRows, pipeline.DimensionPriceBand),
			SellerHHI:       pipeline.Concentration(region.Key, regionRows, pipeline.DimensionSeller),
		})
	}

	log.Printf("[dashboard.regional] respond 200 regions=%d", len(profiles))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Regional characteristics retrieved successfully", models.RegionalResponse{Regions: profiles}))
}
