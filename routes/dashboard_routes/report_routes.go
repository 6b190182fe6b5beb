package dashboard_routes

import (
	"github.com/dgeast/jeju-sale1/controllers/dashboard/report_controller"
	"github.com/gin-gonic/gin"
)

func SetupReportRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("")

	reports.GET("/reports", report_controller.ListReports)
	reports.GET("/reports/:name", report_controller.GetReport)
	reports.GET("/summary/pdf", report_controller.DownloadSummaryPDF)
}
