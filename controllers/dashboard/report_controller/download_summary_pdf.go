package report_controller

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"

	"github.com/dgeast/jeju-sale1/config"
	"github.com/dgeast/jeju-sale1/models"
	"github.com/dgeast/jeju-sale1/pipeline"
	"github.com/dgeast/jeju-sale1/services"
	"github.com/dgeast/jeju-sale1/utils"
	"github.com/gin-gonic/gin"
)

// DownloadSummaryPDF godoc
// @Summary Download the KPI summary PDF
// @Description Generates and downloads a one-page KPI summary over the full dataset
// @Tags Dashboard - Reports
// @Produce octet-stream
// @Success 200 "PDF file"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /dashboard/summary/pdf [get]
func DownloadSummaryPDF(c *gin.Context) {
	log.Printf("[dashboard.summary-pdf] start")

	all, _, err := services.LoadDataset(config.DataDir(), config.PipelineOptions())
	if err != nil {
		log.Printf("[dashboard.summary-pdf] ERROR dataset load err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Sales dataset is not available"))
		return
	}

	rows := pipeline.DeriveRows(all)
	overview := pipeline.Overview(rows)
	topSellers := pipeline.TopN(pipeline.AggregateBy(rows, pipeline.DimensionSeller), 10)

	pdfBuffer, err := BuildSummaryPDF(overview, topSellers)
	if err != nil {
		log.Printf("[dashboard.summary-pdf] ERROR pdf build err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate summary PDF"))
		return
	}

	filename := fmt.Sprintf("sales-summary-%s.pdf", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Length", fmt.Sprintf("%d", pdfBuffer.Len()))

	c.Data(http.StatusOK, "application/pdf", pdfBuffer.Bytes())

	log.Printf("[dashboard.summary-pdf] summary PDF downloaded")
}

// BuildSummaryPDF lays out the one-page KPI summary. Shared with the batch
// report generator.
func BuildSummaryPDF(overview models.DashboardOverview, topSellers []models.Aggregate) (*bytes.Buffer, error) {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	darkGray := color.Color{Red: 38, Green: 38, Blue: 34}
	mediumGray := color.Color{Red: 121, Green: 119, Blue: 109}

	m.Row(15, func() {
		m.Col(12, func() {
			m.Text("SALES SUMMARY", props.Text{
				Size:  24,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	m.Row(6, func() {
		m.Col(12, func() {
			m.Text(fmt.Sprintf("Generated %s", time.Now().Format("Jan 02, 2006")), props.Text{
				Size:  9,
				Color: mediumGray,
			})
		})
	})

	m.Row(8, func() {})

	kpis := []struct {
		label string
		value string
	}{
		{"Total sales", utils.FormatKRW(overview.TotalSales)},
		{"Total profit", utils.FormatKRW(overview.TotalProfit)},
		{"Orders", utils.FormatCount(overview.OrderCount)},
		{"Average order value", utils.FormatKRW(overview.AvgOrderValue)},
		{"Average margin", utils.FormatPct(overview.AvgMarginPct)},
		{"Cancel rate", utils.FormatPct(overview.CancelRatePct)},
	}
	for _, kpi := range kpis {
		m.Row(6, func() {
			m.Col(6, func() {
				m.Text(kpi.label, props.Text{
					Size:  10,
					Color: mediumGray,
				})
			})
			m.Col(6, func() {
				m.Text(kpi.value, props.Text{
					Size:  10,
					Style: consts.Bold,
					Color: darkGray,
					Align: consts.Right,
				})
			})
		})
	}

	m.Row(8, func() {})

	m.Row(6, func() {
		m.Col(12, func() {
			m.Text("TOP SELLERS BY REVENUE", props.Text{
				Size:  10,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	for i, s := range topSellers {
		m.Row(5, func() {
			m.Col(8, func() {
				m.Text(fmt.Sprintf("%d. %s", i+1, s.Key), props.Text{
					Size:  9,
					Color: darkGray,
				})
			})
			m.Col(4, func() {
				m.Text(utils.FormatKRW(s.TotalSales), props.Text{
					Size:  9,
					Color: mediumGray,
					Align: consts.Right,
				})
			})
		})
	}

	buf, err := m.Output()
	if err != nil {
		return nil, err
	}
	return &buf, nil
}
