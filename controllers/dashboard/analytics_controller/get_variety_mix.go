package analytics_controller

import (
	"log"
	"net/http"
	"sort"

	"github.com/dgeast/jeju-sale1/models"
	"github.com/dgeast/jeju-sale1/pipeline"
	"github.com/gin-gonic/gin"
)

// varieties below this revenue floor are excluded from the profitability
// ranking; tiny sellers make margin percentages meaningless
const profitabilityRevenueFloor = 1_000_000

// GetVarietyMix godoc
// @Summary Get variety mix
// @Description Returns variety revenue shares, per-variety profitability above a revenue floor, and the gift-set variety/size breakdown
// @Tags Dashboard - Analytics
// @Produce json
// @Param start query string false "Start date (YYYY-MM-DD)"
// @Param end query string false "End date (YYYY-MM-DD)"
// @Param sellers query string false "Comma-separated seller filter values"
// @Param varieties query string false "Comma-separated variety filter values"
// @Success 200 {object} models.ApiResponse{data=models.VarietyMixResponse}
// @Failure 500 {object} models.ApiResponse
// @Router /dashboard/variety-mix [get]
func GetVarietyMix(c *gin.Context) {
	log.Printf("[dashboard.variety-mix] start")

	_, rows, ok := loadFiltered(c, "dashboard.variety-mix")
	if !ok {
		return
	}

	shares := pipeline.SortBySalesDesc(pipeline.AggregateBy(rows, pipeline.DimensionVariety))

	// ================================
	// Profitability ranking above the revenue floor
	// ================================
	profitability := make([]models.Aggregate, 0, len(shares))
	for _, a := range shares {
		if a.TotalSales > profitabilityRevenueFloor {
			profitability = append(profitability, a)
		}
	}
	sort.SliceStable(profitability, func(i, j int) bool {
		return profitability[i].MarginPct > profitability[j].MarginPct
	})

	// ================================
	// Gift-set variety/size breakdown
	// ================================
	giftTotals := map[[2]string]float64{}
	giftOrder := [][2]string{}
	for _, r := range rows {
		if r.GiftSet != models.GiftSetLabel {
			continue
		}
		k := [2]string{r.Variety, r.FruitSize}
		if _, seen := giftTotals[k]; !seen {
			giftOrder = append(giftOrder, k)
		}
		giftTotals[k] += r.PaidAmount
	}
	giftSets := make([]models.GiftSetBreakdown, len(giftOrder))
	for i, k := range giftOrder {
		giftSets[i] = models.GiftSetBreakdown{Variety: k[0], FruitSize: k[1], TotalSales: giftTotals[k]}
	}

	resp := models.VarietyMixResponse{
		Shares:        shares,
		Profitability: profitability,
		GiftSets:      giftSets,
	}

	log.Printf("[dashboard.variety-mix] respond 200 varieties=%d gift_cells=%d", len(shares), len(giftSets))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Variety mix retrieved successfully", resp))
}
