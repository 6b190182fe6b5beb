package analytics_controller

import (
	"log"
	"net/http"

	"github.com/dgeast/jeju-sale1/models"
	"github.com/dgeast/jeju-sale1/pipeline"
	"github.com/gin-gonic/gin"
)

// GetSellerChannels godoc
// @Summary Get seller/channel revenue matrix
// @Description Returns the top-10 sellers' revenue broken down by acquisition channel, for the channel heatmap
// @Tags Dashboard - Analytics
// @Produce json
// @Param start query string false "Start date (YYYY-MM-DD)"
// @Param end query string false "End date (YYYY-MM-DD)"
// @Param sellers query string false "Comma-separated seller filter values"
// @Param varieties query string false "Comma-separated variety filter values"
// @Success 200 {object} models.ApiResponse{data=models.SellerChannelMatrix}
// @Failure 500 {object} models.ApiResponse
// @Router /dashboard/seller-channels [get]
func GetSellerChannels(c *gin.Context) {
	log.Printf("[dashboard.seller-channels] start")

	_, rows, ok := loadFiltered(c, "dashboard.seller-channels")
	if !ok {
		return
	}

	topSellers := pipeline.TopN(pipeline.AggregateBy(rows, pipeline.DimensionSeller), 10)
	sellerIdx := map[string]int{}
	sellerNames := make([]string, len(topSellers))
	for i, a := range topSellers {
		sellerIdx[a.Key] = i
		sellerNames[i] = a.Key
	}

	channelIdx := map[string]int{}
	channels := []string{}
	revenue := make([][]float64, len(sellerNames))

	for _, r := range rows {
		si, ok := sellerIdx[r.SellerName]
		if !ok {
			continue
		}
		ci, ok := channelIdx[r.Channel]
		if !ok {
			ci = len(channels)
			channelIdx[r.Channel] = ci
			channels = append(channels, r.Channel)
		}
		for len(revenue[si]) <= ci {
			revenue[si] = append(revenue[si], 0)
		}
		revenue[si][ci] += r.PaidAmount
	}

	// pad rows so every seller has one cell per channel
	for i := range revenue {
		for len(revenue[i]) < len(channels) {
			revenue[i] = append(revenue[i], 0)
		}
	}

	matrix := models.SellerChannelMatrix{Sellers: sellerNames, Channels: channels, Revenue: revenue}

	log.Printf("[dashboard.seller-channels] respond 200 sellers=%d channels=%d", len(sellerNames), len(channels))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Seller channel matrix retrieved successfully", matrix))
}
