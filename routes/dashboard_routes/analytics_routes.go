package dashboard_routes

import (
	"github.com/dgeast/jeju-sale1/controllers/dashboard/analytics_controller"
	"github.com/gin-gonic/gin"
)

func SetupAnalyticsRoutes(rg *gin.RouterGroup) {
	analytics := rg.Group("")

	analytics.GET("/overview", analytics_controller.GetOverview)
	analytics.GET("/filter-options", analytics_controller.GetFilterOptions)
	analytics.GET("/sales-trend", analytics_controller.GetSalesTrend)
	analytics.GET("/variety-mix", analytics_controller.GetVarietyMix)
	analytics.GET("/seller-performance", analytics_controller.GetSellerPerformance)
	analytics.GET("/seller-channels", analytics_controller.GetSellerChannels)
	analytics.GET("/seller-activity", analytics_controller.GetSellerActivity)
	analytics.GET("/purchase-patterns", analytics_controller.GetPurchasePatterns)
	analytics.GET("/customer-insights", analytics_controller.GetCustomerInsights)
	analytics.GET("/funnel", analytics_controller.GetFunnel)
	analytics.GET("/regional", analytics_controller.GetRegional)
}
