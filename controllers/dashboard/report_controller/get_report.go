package report_controller

import (
	"log"
	"net/http"

	"github.com/dgeast/jeju-sale1/config"
	"github.com/dgeast/jeju-sale1/models"
	"github.com/dgeast/jeju-sale1/services"
	"github.com/gin-gonic/gin"
)

// GetReport godoc
// @Summary Get a strategy report
// @Description Returns the raw markdown of a strategy report by its whitelisted name
// @Tags Dashboard - Reports
// @Produce json
// @Param name path string true "Report name (marketing-strategy, eda-comprehensive)"
// @Success 200 {object} models.ApiResponse
// @Router /dashboard/reports/{name} [get]
func GetReport(c *gin.Context) {
	name := c.Param("name")
	log.Printf("[dashboard.report] request name=%s", name)

	content, err := services.LoadMarkdownReport(config.ReportDir(), name)
	if err != nil {
		// a missing report degrades the panel, it is not an error
		log.Printf("[dashboard.report] report unavailable name=%s err=%v", name, err)
		c.JSON(http.StatusOK, models.UnavailableResponse(c, "Report file not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Report retrieved successfully", gin.H{
		"name":     name,
		"markdown": content,
	}))
}

// ListReports godoc
// @Summary List available strategy reports
// @Tags Dashboard - Reports
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /dashboard/reports [get]
func ListReports(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Reports listed successfully", services.ReportNames()))
}
